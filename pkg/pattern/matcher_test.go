package pattern

import (
	"strings"
	"sync"
	"testing"

	"github.com/coolbeans/bibleref/pkg/books"
)

var (
	defaultPatternOnce sync.Once
	defaultPattern     *ReferencePattern
)

func testPattern(t testing.TB) *ReferencePattern {
	t.Helper()
	defaultPatternOnce.Do(func() {
		defaultPattern = FromRegistry(books.DefaultRegistry())
	})
	return defaultPattern
}

func texts(matches []Match) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Text
	}
	return out
}

func TestMatcherFindAll(t *testing.T) {
	m, err := NewReferenceMatcher(testPattern(t), false)
	if err != nil {
		t.Fatalf("NewReferenceMatcher() error = %v", err)
	}

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"single", "In Genesis 1:1 God creates.", []string{"Genesis 1:1"}},
		{"chained", "See Hebrews 5:5; 2 Peter 1:17 for more.", []string{"Hebrews 5:5; 2 Peter 1:17"}},
		{"abbreviations", "Heb 5:5; 2 Pet 1:17", []string{"Heb 5:5; 2 Pet 1:17"}},
		{"verse range", "Read Gen 1:1-3 today", []string{"Gen 1:1-3"}},
		{"chapter range", "Gen 1:1\u20132:3", []string{"Gen 1:1\u20132:3"}},
		{"bare chapters", "John 3; 4", []string{"John 3; 4"}},
		{"and", "Ps 23 and 24:1", []string{"Ps 23 and 24:1"}},
		{"case insensitive", "GENESIS 1:1 and genesis 2:2", []string{"GENESIS 1:1 and genesis 2:2"}},
		{"nbsp", "1\u00a0Samuel\u00a03:10", []string{"1\u00a0Samuel\u00a03:10"}},
		{"placeholder", "1<nbs/>Samuel 3:10", []string{"1<nbs/>Samuel 3:10"}},
		{"two separate", "Gen 1:1 is like John 1:1.", []string{"Gen 1:1", "John 1:1"}},
		{"no book", "verse 3:16 alone", nil},
		{"glued to word", "xGen 1:1", nil},
		{"shrinks to boundary", "Genesis 1:1xy", []string{"Genesis 1"}},
		{"out of range", "Gen 180", nil},
		{"psalm synonym", "Psalm 119:176", []string{"Psalm 119:176"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := texts(m.FindAll(tt.input))
			if strings.Join(got, "|") != strings.Join(tt.want, "|") || len(got) != len(tt.want) {
				t.Errorf("FindAll(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMatcherOffsets(t *testing.T) {
	m := MustMatcher(testPattern(t).Pattern(false))
	input := "\u00c9l dijo: Gen 1:1 y John 3:16."

	for _, match := range m.FindAll(input) {
		if input[match.Offset:match.End()] != match.Text {
			t.Errorf("input[%d:%d] = %q, want %q", match.Offset, match.End(), input[match.Offset:match.End()], match.Text)
		}
	}
}

func TestCompleteMatcher(t *testing.T) {
	m, err := NewReferenceMatcher(testPattern(t), true)
	if err != nil {
		t.Fatalf("NewReferenceMatcher() error = %v", err)
	}

	tests := []struct {
		input string
		want  []string
	}{
		{"see 3:16 and John 1", []string{"3:16 and John 1"}},
		{"vv. 5:1-3", []string{"5:1-3"}},
		{"in 1990 there were 5 cases", nil},
		{"Gen 1:1", []string{"Gen 1:1"}},
		{"chapters 4-5", []string{"4-5"}},
	}

	for _, tt := range tests {
		got := texts(m.FindAll(tt.input))
		if strings.Join(got, "|") != strings.Join(tt.want, "|") || len(got) != len(tt.want) {
			t.Errorf("FindAll(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestMatcherReplaceAll(t *testing.T) {
	m := MustMatcher(testPattern(t).Pattern(false))

	got := m.ReplaceAll("Compare Gen 1:1 with John 1:1.", func(match Match) string {
		return "[" + match.Text + "]"
	})
	want := "Compare [Gen 1:1] with [John 1:1]."
	if got != want {
		t.Errorf("ReplaceAll() = %q, want %q", got, want)
	}

	if got := m.ReplaceAll("no references", func(Match) string { return "x" }); got != "no references" {
		t.Errorf("ReplaceAll() without matches = %q", got)
	}
}

func TestNewMatcherInvalid(t *testing.T) {
	if _, err := NewMatcher("(unclosed"); err == nil {
		t.Error("NewMatcher() with invalid expression should return error")
	}
}

func TestReferencePatternVariants(t *testing.T) {
	p := NewReferencePattern([]string{"Gen", "Genesis"})

	if !strings.HasPrefix(p.BookNames(), "(?:Genesis|Gen)") {
		t.Errorf("BookNames() = %q", p.BookNames())
	}
	if strings.HasSuffix(p.RequiredCoda(), "?") {
		t.Errorf("RequiredCoda() = %q, should not be optional", p.RequiredCoda())
	}
	if !strings.HasSuffix(p.Coda(), ")?") {
		t.Errorf("Coda() = %q, should be optional", p.Coda())
	}

	withBook := MustMatcher("^" + p.WithBook() + "$")
	optional := MustMatcher("^" + p.BookOptional() + "$")
	noBook := MustMatcher("^" + p.NoBook() + "$")

	tests := []struct {
		input                      string
		withBook, optional, noBook bool
	}{
		{"Gen 1", true, true, false},
		{"Gen 1:2", true, true, false},
		{"1:2", false, true, true},
		{"1-2", false, true, true},
		{"1", false, true, false},
		{"Genesis 1:2-3:4", true, true, false},
	}

	for _, tt := range tests {
		if got := len(withBook.FindAll(tt.input)) == 1; got != tt.withBook {
			t.Errorf("WithBook matches %q = %v, want %v", tt.input, got, tt.withBook)
		}
		if got := len(optional.FindAll(tt.input)) == 1; got != tt.optional {
			t.Errorf("BookOptional matches %q = %v, want %v", tt.input, got, tt.optional)
		}
		if got := len(noBook.FindAll(tt.input)) == 1; got != tt.noBook {
			t.Errorf("NoBook matches %q = %v, want %v", tt.input, got, tt.noBook)
		}
	}
}
