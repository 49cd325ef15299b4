package pattern

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Match is one reference found in a text.
type Match struct {
	Text   string `json:"text"`
	Offset int    `json:"offset"`
}

// End returns the byte offset just past the match.
func (m Match) End() int {
	return m.Offset + len(m.Text)
}

// Matcher finds references in text. Matching is case-insensitive and a match
// must start and end on a word boundary. Go's \b only knows ASCII, so the
// boundaries are checked here against Unicode letters and digits. A Matcher is
// safe for concurrent use.
type Matcher struct {
	expr     string
	re       *regexp.Regexp
	anchored *regexp.Regexp
}

// NewMatcher compiles a reference expression.
func NewMatcher(expr string) (*Matcher, error) {
	re, err := regexp.Compile("(?i)" + expr)
	if err != nil {
		return nil, fmt.Errorf("compiling reference pattern: %w", err)
	}
	anchored, err := regexp.Compile("(?i)^(?:" + expr + ")$")
	if err != nil {
		return nil, fmt.Errorf("compiling anchored reference pattern: %w", err)
	}
	return &Matcher{expr: expr, re: re, anchored: anchored}, nil
}

// MustMatcher is NewMatcher panicking on error.
func MustMatcher(expr string) *Matcher {
	m, err := NewMatcher(expr)
	if err != nil {
		panic(err)
	}
	return m
}

// NewReferenceMatcher compiles p.Pattern(complete).
func NewReferenceMatcher(p *ReferencePattern, complete bool) (*Matcher, error) {
	return NewMatcher(p.Pattern(complete))
}

// String returns the expression the matcher was compiled from.
func (m *Matcher) String() string {
	return m.expr
}

// FindAll returns every non-overlapping match in text, left to right.
func (m *Matcher) FindAll(text string) []Match {
	var matches []Match
	pos := 0
	for pos < len(text) {
		loc := m.re.FindStringIndex(text[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]

		if end > start && isBoundary(text, start) {
			if end = m.shrinkToBoundary(text, start, end); end > start {
				matches = append(matches, Match{Text: text[start:end], Offset: start})
				pos = end
				continue
			}
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		pos = start + max(size, 1)
	}
	return matches
}

// shrinkToBoundary returns end when it is a word boundary, otherwise the end
// of the longest shorter match from start that stops on one. It returns start
// when there is none.
func (m *Matcher) shrinkToBoundary(text string, start, end int) int {
	if isBoundary(text, end) {
		return end
	}
	for e := end - 1; e > start; e-- {
		if !utf8.RuneStart(text[e]) || !isBoundary(text, e) {
			continue
		}
		if m.anchored.MatchString(text[start:e]) {
			return e
		}
	}
	return start
}

// ReplaceAll replaces every match with the result of fn.
func (m *Matcher) ReplaceAll(text string, fn func(Match) string) string {
	matches := m.FindAll(text)
	if len(matches) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, match := range matches {
		b.WriteString(text[last:match.Offset])
		b.WriteString(fn(match))
		last = match.End()
	}
	b.WriteString(text[last:])
	return b.String()
}

// isBoundary reports whether exactly one side of byte offset i is a word
// character.
func isBoundary(text string, i int) bool {
	before, after := false, false
	if i > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:i])
		before = isWordRune(r)
	}
	if i < len(text) {
		r, _ := utf8.DecodeRuneInString(text[i:])
		after = isWordRune(r)
	}
	return before != after
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}
