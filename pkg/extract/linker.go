package extract

import (
	"html"
	"log/slog"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/coolbeans/bibleref/pkg/pattern"
)

// Normalize puts text in Unicode normalization form C so that decomposed
// accents match the composed letters in book names and patterns.
func Normalize(text string) string {
	return norm.NFC.String(text)
}

// Found is one reference match in a text together with the records parsed
// from it. Err is set when the match could not be tokenized.
type Found struct {
	Match      pattern.Match     `json:"match"`
	References []*CrossReference `json:"references,omitempty"`
	Err        error             `json:"-"`
}

// Linker finds references in free text and turns them into links.
type Linker struct {
	matcher  *pattern.Matcher
	parser   *Parser
	resolver *Resolver
	logger   *slog.Logger
}

// NewLinker creates a linker. The parser should share the resolver.
func NewLinker(matcher *pattern.Matcher, parser *Parser, resolver *Resolver) *Linker {
	return &Linker{
		matcher:  matcher,
		parser:   parser,
		resolver: resolver,
		logger:   slog.Default(),
	}
}

// SetLogger sets the logger used to report matches that could not be parsed.
func (l *Linker) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	l.logger = logger
}

// Find returns every reference match in text with its parsed records. The
// text is normalized first, so offsets refer to Normalize(text).
func (l *Linker) Find(text string) []Found {
	text = Normalize(text)

	var found []Found
	for _, m := range l.matcher.FindAll(text) {
		refs, err := l.parser.ParseText(m.Text)
		found = append(found, Found{Match: m, References: refs, Err: err})
	}
	return found
}

// Link wraps every resolvable reference in text in an anchor pointing at its
// lookup key:
//
//	See Heb 5:5; 2 Pet 1:17.
//	See <a href="hebr_5_5">Heb 5:5</a>; <a href="pet2_1_17">2 Pet 1:17</a>.
//
// Separators before a reference stay outside its anchor. References that
// cannot be parsed or resolved are left as they are.
func (l *Linker) Link(text string) string {
	text = Normalize(text)
	return l.matcher.ReplaceAll(text, func(m pattern.Match) string {
		refs, err := l.parser.ParseText(m.Text)
		if err != nil {
			l.logger.Debug("leaving reference unlinked", "text", m.Text, "offset", m.Offset, "error", err)
			return m.Text
		}

		var b strings.Builder
		for _, ref := range refs {
			b.WriteString(l.anchor(ref))
		}
		return b.String()
	})
}

func (l *Linker) anchor(ref *CrossReference) string {
	if ref.Ignore {
		return ref.Original
	}
	key, err := l.resolver.LookupKey(ref)
	if err != nil {
		l.logger.Debug("leaving reference unlinked", "text", ref.Original, "error", err)
		return ref.Original
	}

	start := strings.IndexFunc(ref.Original, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	})
	if start < 0 {
		return ref.Original
	}
	lead, body := ref.Original[:start], ref.Original[start:]
	return lead + `<a href="` + html.EscapeString(key) + `">` + body + `</a>`
}
