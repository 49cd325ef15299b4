// Package pattern builds the regular expressions that find Bible references
// in free text.
//
// A Term turns a set of literal options into one alternation or character
// class. ReferencePattern composes terms for book names, numbers, range
// markers and separators into the full reference grammar, and Matcher runs a
// compiled reference pattern over text.
package pattern

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Ordering selects how a Term orders its options before compiling.
type Ordering int

const (
	// ByLength tries longer options first, ties in string order. Several book
	// names are proper prefixes of others ("Jn" and "Jon", "Phil" and
	// "Philem"), and Go's alternation takes the first option that matches.
	ByLength Ordering = iota

	// ByCodePoint sorts options by raw code point.
	ByCodePoint
)

// Term is one component of a reference pattern: a set of options compiled
// into an alternation, or into a character class when every option is a
// single character.
type Term struct {
	options  []string
	optional bool
	ordering Ordering
	raw      bool
}

// NewTerm creates an empty term of literal options.
func NewTerm(optional bool) *Term {
	return &Term{optional: optional}
}

// Include adds options. Options are NFC-normalized; duplicates collapse.
func (t *Term) Include(options ...string) *Term {
	for _, o := range options {
		if o == "" {
			continue
		}
		t.options = append(t.options, norm.NFC.String(o))
	}
	return t
}

// Optional reports whether the compiled term may match nothing.
func (t *Term) Optional() bool {
	return t.optional
}

// Options returns the deduplicated options in the order they are tried.
func (t *Term) Options() []string {
	seen := make(map[string]bool, len(t.options))
	out := make([]string, 0, len(t.options))
	for _, o := range t.options {
		if !seen[o] {
			seen[o] = true
			out = append(out, o)
		}
	}

	switch t.ordering {
	case ByCodePoint:
		sort.Strings(out)
	default:
		sort.Slice(out, func(i, j int) bool {
			li, lj := utf8.RuneCountInString(out[i]), utf8.RuneCountInString(out[j])
			if li != lj {
				return li > lj
			}
			return out[i] < out[j]
		})
	}
	return out
}

// Compile renders the term as a regular expression fragment. A term with no
// options compiles to a fragment that never matches.
func (t *Term) Compile() string {
	options := t.Options()

	var result string
	switch {
	case len(options) == 0:
		result = `[^\x00-\x{10FFFF}]`
	case !t.raw && singleRunes(options):
		result = characterClass(options)
	default:
		parts := make([]string, len(options))
		for i, o := range options {
			if t.raw {
				parts[i] = o
			} else {
				parts[i] = regexp.QuoteMeta(o)
			}
		}
		result = "(?:" + strings.Join(parts, "|") + ")"
	}

	if t.optional {
		result += "?"
	}
	return result
}

func singleRunes(options []string) bool {
	for _, o := range options {
		if utf8.RuneCountInString(o) != 1 {
			return false
		}
	}
	return true
}

// characterClass escapes the class metacharacters. A hyphen stays bare only
// in first position, where it is a literal.
func characterClass(options []string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, o := range options {
		switch o {
		case `\`, `]`, `[`, `^`:
			b.WriteByte('\\')
		case "-":
			if i > 0 {
				b.WriteByte('\\')
			}
		}
		b.WriteString(o)
	}
	b.WriteByte(']')
	return b.String()
}

// SpaceTerm matches the space between a book name and its chapter: a plain
// space or a non-breaking space.
func SpaceTerm() *Term {
	return NewTerm(false).Include(" ", "\u00a0")
}

// RangeMarkerTerm matches the marker between the two ends of a range. Its
// options are ordered by code point so the plain hyphen comes first: it is
// tried before the look-alike dashes and reads as a literal at the start of
// the character class.
func RangeMarkerTerm() *Term {
	t := NewTerm(false).Include("-", "\u2011", "\u2013", "\u2014")
	t.ordering = ByCodePoint
	return t
}

// ChapterVerseSeparatorTerm matches the colon between chapter and verse.
func ChapterVerseSeparatorTerm() *Term {
	return NewTerm(false).Include(":")
}

// ReferenceSeparatorTerm matches the separators between chained references
// in English and Spanish.
func ReferenceSeparatorTerm() *Term {
	return NewTerm(false).Include(
		", ", "; ",
		" and ", ", and ", "; and ",
		" y ", " e ",
		", y ", "; y ", ", e ", "; e ",
	)
}

// BookNameTerm matches any of the given book names.
func BookNameTerm(names []string) *Term {
	return NewTerm(false).Include(names...)
}

// MaxNumber is the largest chapter or verse number a reference may carry.
// Psalm 119 has 176 verses.
const MaxNumber = 179

// NumberTerm matches a chapter or verse number in [1, MaxNumber], optionally
// followed by a half-verse letter and a continuation "f".
func NumberTerm() *NumberPattern {
	t := NewTerm(false).Include(`1[0-7][0-9]`, `[1-9][0-9]`, `[1-9]`)
	t.raw = true
	return &NumberPattern{term: t}
}

// NumberPattern is the compiled form of NumberTerm. The magnitude bands are
// disjoint so the alternation order only decides how many digits are taken.
type NumberPattern struct {
	term *Term
}

// Compile renders the number pattern.
func (n *NumberPattern) Compile() string {
	return n.term.Compile() + `[a-z]?f?`
}

// Bands returns the magnitude bands in the order they are tried.
func (n *NumberPattern) Bands() []string {
	return n.term.Options()
}
