package extract

import (
	"regexp"
	"strings"
)

// Patterns is the set of expressions a Tokenizer tries at each position. Each
// expression is anchored and matched against the rest of the input.
type Patterns struct {
	Name         string
	Conjunction  *regexp.Regexp
	Book         *regexp.Regexp
	Number       *regexp.Regexp
	Continuation *regexp.Regexp
	HalfVerse    *regexp.Regexp

	// Conjunctions are lower-case words the Book expression can capture as
	// a name ("1 and " looks like "1 John "). A book match whose name group
	// is one of them is not a book.
	Conjunctions map[string]bool
}

// BookName returns the name group of a Book match, or "" when rest does not
// start with a book.
func (p *Patterns) BookName(rest string) (match, name string) {
	m := p.Book.FindStringSubmatch(rest)
	if m == nil {
		return "", ""
	}
	return m[0], m[p.Book.SubexpIndex("name")]
}

func anchored(expr string) *regexp.Regexp {
	return regexp.MustCompile(`^(?:` + expr + `)`)
}

// EnglishPatterns returns the pattern set for English reference text.
func EnglishPatterns() *Patterns {
	return &Patterns{
		Name:         "en",
		Conjunction:  anchored(`([;,])?( and )`),
		Book:         anchored(`( and |[;,] ?)?([1-3]( |<nbs/>|\x{00a0})?)?(?P<name>[A-Za-z]{2,})\.?( |\x{00a0})(of (Songs|Solomon) )?`),
		Number:       anchored(`( and |[-\x{2011}\x{2013}\x{2014}]|[;,] ?)?(\d{1,3})(:)?`),
		Continuation: anchored(`[Ff]{1,2}`),
		HalfVerse:    anchored(`[A-Za-z]`),
		Conjunctions: map[string]bool{"and": true},
	}
}

// spanishLetters are the letters a Spanish book name may contain.
const spanishLetters = `A-Za-z\x{00c1}\x{00c9}\x{00cd}\x{00d3}\x{00da}\x{00e1}\x{00e9}\x{00ed}\x{00f3}\x{00fa}`

// SpanishPatterns returns the pattern set for Spanish reference text.
func SpanishPatterns() *Patterns {
	return &Patterns{
		Name:         "es",
		Conjunction:  anchored(`([;,])?( y )`),
		Book:         anchored(`( y |[;,] ?)?([1-3]( |<nbs/>|\x{00a0})?)?(?P<name>[` + spanishLetters + `]{2,})( |\x{00a0})(de los Cantares )?`),
		Number:       anchored(`( y |[-\x{2011}\x{2013}\x{2014}]|[;,] ?)?(\d{1,3})(:)?`),
		Continuation: anchored(` ?[Ss]{1,2}`),
		HalfVerse:    anchored(`[A-Za-z]`),
		Conjunctions: map[string]bool{"y": true, "e": true},
	}
}

var spanishVersions = map[string]bool{
	"ntv":  true,
	"rvr":  true,
	"rv60": true,
}

// PatternsForVersion picks the pattern set for a Bible version identifier.
// Spanish versions get SpanishPatterns, everything else EnglishPatterns.
func PatternsForVersion(version string) *Patterns {
	if spanishVersions[strings.ToLower(strings.TrimSpace(version))] {
		return SpanishPatterns()
	}
	return EnglishPatterns()
}
