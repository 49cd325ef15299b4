package extract

import (
	"iter"
	"strings"
	"unicode/utf8"
)

// contextLen bounds the text carried by an UnrecognizedTokenError.
const contextLen = 24

// Tokenizer splits reference text into tokens. It holds no state between
// calls and is safe for concurrent use.
type Tokenizer struct {
	patterns *Patterns
}

// NewTokenizer creates a tokenizer for a pattern set. A nil set means
// EnglishPatterns.
func NewTokenizer(p *Patterns) *Tokenizer {
	if p == nil {
		p = EnglishPatterns()
	}
	return &Tokenizer{patterns: p}
}

// Patterns returns the tokenizer's pattern set.
func (t *Tokenizer) Patterns() *Patterns {
	return t.patterns
}

// Tokenize returns a lazy sequence of the tokens of text. At each position
// the patterns are tried in order: conjunction, book, number, continuation,
// half-verse. A number is a verse when a chapter:verse colon is active and
// the number carries no colon itself; otherwise it is a chapter. A book token
// clears the colon. A book match whose name is a conjunction word is skipped,
// so "1 and 2" reads as numbers around a conjunction.
//
// When nothing matches, the sequence yields an *UnrecognizedTokenError and
// stops. Each call starts over from the beginning of text.
func (t *Tokenizer) Tokenize(text string) iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		p := t.patterns
		pos := 0
		activeColon := false

		for pos < len(text) {
			rest := text[pos:]

			if m := p.Conjunction.FindString(rest); m != "" {
				if !yield(Token{Kind: KindAnd, Offset: pos, Text: m}, nil) {
					return
				}
				pos += len(m)
				continue
			}

			if m, name := p.BookName(rest); m != "" && !p.Conjunctions[strings.ToLower(name)] {
				if !yield(Token{Kind: KindBook, Offset: pos, Text: m}, nil) {
					return
				}
				pos += len(m)
				activeColon = false
				continue
			}

			if m := p.Number.FindString(rest); m != "" {
				hasColon := strings.Contains(m, ":")
				kind := KindChapter
				if activeColon && !hasColon {
					kind = KindVerse
				} else if hasColon {
					activeColon = true
				}
				if !yield(Token{Kind: kind, Offset: pos, Text: m}, nil) {
					return
				}
				pos += len(m)
				continue
			}

			if m := p.Continuation.FindString(rest); m != "" {
				if !yield(Token{Kind: KindContinuation, Offset: pos, Text: m}, nil) {
					return
				}
				pos += len(m)
				continue
			}

			if m := p.HalfVerse.FindString(rest); m != "" {
				if !yield(Token{Kind: KindHalfVerse, Offset: pos, Text: m}, nil) {
					return
				}
				pos += len(m)
				continue
			}

			yield(Token{}, &UnrecognizedTokenError{Offset: pos, Text: clip(rest, contextLen)})
			return
		}
	}
}

// Tokens tokenizes all of text. It returns the tokens read so far together
// with the error when tokenizing fails.
func (t *Tokenizer) Tokens(text string) ([]Token, error) {
	var tokens []Token
	for tok, err := range t.Tokenize(text) {
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// Only returns the tokens of seq, dropping the error side. Callers that need
// the error should range over the Seq2 directly.
func Only(seq iter.Seq2[Token, error]) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for tok, err := range seq {
			if err != nil || !yield(tok) {
				return
			}
		}
	}
}

// clip shortens s to at most n bytes without splitting a rune.
func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
