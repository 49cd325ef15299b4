package pattern

import (
	"testing"
	"unicode/utf8"
)

// FuzzMatcherFindAll checks that matches are ordered, non-overlapping, lie
// on word boundaries and are complete references on their own.
func FuzzMatcherFindAll(f *testing.F) {
	seeds := []string{
		"Genesis 1:1",
		"Heb 5:5; 2 Pet 1:17",
		"John 3; 4",
		"Gen 1:1\u20132:3 and Ps 23",
		"1\u00a0Samuel\u00a03:10",
		"xGen 1:1y",
		"Genesis 1:1xy",
		"3:16 and John 1",
		"",
		"\xff\xfeGen 1:1",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	matcher := MustMatcher(testPattern(f).Pattern(true))

	f.Fuzz(func(t *testing.T, input string) {
		last := 0
		for _, m := range matcher.FindAll(input) {
			if m.Offset < last {
				t.Fatalf("match %q at %d overlaps previous ending at %d", m.Text, m.Offset, last)
			}
			if m.Text == "" {
				t.Fatalf("empty match at %d", m.Offset)
			}
			if input[m.Offset:m.End()] != m.Text {
				t.Fatalf("match text %q does not equal input slice", m.Text)
			}
			if utf8.ValidString(input) && (!isBoundary(input, m.Offset) || !isBoundary(input, m.End())) {
				t.Fatalf("match %q at %d is not on word boundaries", m.Text, m.Offset)
			}
			if !matcher.anchored.MatchString(m.Text) {
				t.Fatalf("match %q is not a complete reference", m.Text)
			}
			last = m.End()
		}
	})
}
