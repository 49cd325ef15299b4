package extract

import (
	"iter"
	"slices"
	"strings"
)

// DefaultBook is the book assumed for a chapter that appears before any book
// name.
const DefaultBook = "Genesis"

// newRecordMarkers start a new record when they occur in any token.
var newRecordMarkers = []string{",", ";", " and ", " y ", " e "}

// Parser assembles tokens into CrossReference records. It never fails:
// anything it cannot place is left for the Resolver to reject. A Parser is
// safe for concurrent use.
type Parser struct {
	tokenizer   *Tokenizer
	resolver    *Resolver
	defaultBook string
}

// NewParser creates a parser. tok is used by ParseText; res extracts book
// names from book tokens. An empty defaultBook means DefaultBook.
func NewParser(tok *Tokenizer, res *Resolver, defaultBook string) *Parser {
	if tok == nil {
		tok = NewTokenizer(nil)
	}
	if defaultBook == "" {
		defaultBook = DefaultBook
	}
	return &Parser{tokenizer: tok, resolver: res, defaultBook: defaultBook}
}

// DefaultBook returns the book used when a chapter has no book in scope.
func (p *Parser) DefaultBook() string {
	return p.defaultBook
}

// Tokenizer returns the tokenizer used by ParseText.
func (p *Parser) Tokenizer() *Tokenizer {
	return p.tokenizer
}

func startsRecord(tok Token) bool {
	if tok.Kind == KindBook {
		return true
	}
	for _, marker := range newRecordMarkers {
		if strings.Contains(tok.Text, marker) {
			return true
		}
	}
	return false
}

// Parse returns a lazy sequence of the records in tokens. A record is
// yielded once the next record starts or the tokens run out, so a non-empty
// token sequence always yields at least one record.
func (p *Parser) Parse(tokens iter.Seq[Token]) iter.Seq[*CrossReference] {
	return func(yield func(*CrossReference) bool) {
		var (
			current   *CrossReference
			lastBook  string
			lastChapt string
			haveBook  bool
		)

		for tok := range tokens {
			if current != nil && startsRecord(tok) {
				if !yield(current) {
					return
				}
				current = nil
			}
			if current == nil {
				current = &CrossReference{}
			}

			switch tok.Kind {
			case KindAnd:
				current.glue(KindAnd, "", tok.Text)
			case KindBook:
				lastBook = p.extractBook(tok.Text)
				haveBook = true
				current.glue(KindBook, lastBook, tok.Text)
			case KindChapter:
				if !haveBook {
					lastBook, haveBook = p.defaultBook, true
				}
				current.glue(KindBook, lastBook, "")
				current.glue(KindChapter, tok.Text, tok.Text)
				lastChapt = tok.Text
			case KindVerse:
				current.glue(KindBook, lastBook, "")
				current.glue(KindChapter, lastChapt, "")
				current.glue(KindVerse, tok.Text, tok.Text)
			default:
				current.glue(tok.Kind, "", tok.Text)
			}
		}

		if current != nil {
			yield(current)
		}
	}
}

func (p *Parser) extractBook(text string) string {
	if p.resolver == nil {
		return strings.TrimSpace(text)
	}
	name, _ := p.resolver.ExtractBook(text)
	return name
}

// ParseText tokenizes all of text and assembles the tokens. Nothing is
// assembled when tokenizing fails.
func (p *Parser) ParseText(text string) ([]*CrossReference, error) {
	tokens, err := p.tokenizer.Tokens(text)
	if err != nil {
		return nil, err
	}

	var refs []*CrossReference
	for ref := range p.Parse(slices.Values(tokens)) {
		refs = append(refs, ref)
	}
	return refs, nil
}
