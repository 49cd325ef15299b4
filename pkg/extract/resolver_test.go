package extract

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/coolbeans/bibleref/pkg/books"
	"github.com/coolbeans/bibleref/pkg/versestore"
)

// testStore holds Genesis 1 (verses 1-5, IDs 1-5) and Genesis 2 (verses
// 1-3, IDs 6-8) in version "test". Gen 1:4 redirects to the previous verse
// and Gen 2:1 to the next. Version "edge" redirects past both ends.
func testStore(t *testing.T) *versestore.MemoryStore {
	t.Helper()
	gen := books.Book(1)
	verses := []*versestore.Verse{
		{ID: 1, Version: "test", Book: gen, Chapter: 1, Number: 1},
		{ID: 2, Version: "test", Book: gen, Chapter: 1, Number: 2},
		{ID: 3, Version: "test", Book: gen, Chapter: 1, Number: 3},
		{ID: 4, Version: "test", Book: gen, Chapter: 1, Number: 4, Redirect: versestore.RedirectPrevious},
		{ID: 5, Version: "test", Book: gen, Chapter: 1, Number: 5},
		{ID: 6, Version: "test", Book: gen, Chapter: 2, Number: 1, Redirect: versestore.RedirectNext},
		{ID: 7, Version: "test", Book: gen, Chapter: 2, Number: 2},
		{ID: 8, Version: "test", Book: gen, Chapter: 2, Number: 3},

		{ID: 1, Version: "edge", Book: gen, Chapter: 1, Number: 1, Redirect: versestore.RedirectPrevious},
		{ID: 2, Version: "edge", Book: gen, Chapter: 1, Number: 2, Redirect: versestore.RedirectNext},
	}

	store := versestore.NewMemoryStore()
	if err := store.Insert(context.Background(), verses...); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	return store
}

func parseOne(t *testing.T, text string) *CrossReference {
	t.Helper()
	refs := mustParse(t, testParser(t), text)
	if len(refs) != 1 {
		t.Fatalf("ParseText(%q) returned %d records, want 1", text, len(refs))
	}
	return refs[0]
}

func TestResolver_ExtractBook(t *testing.T) {
	testCases := []struct {
		raw    string
		want   string
		wantOK bool
	}{
		{"Genesis ", "Genesis", true},
		{"Gen ", "Gen", true},
		{"; 2 Pet ", "2 Pet", true},
		{" and 1 John ", "1 John", true},
		{"GENESIS ", "GENESIS", true},
		{"Song of Songs ", "Song", true},
		{"Xyz ", "", false},
	}

	res := testResolver(t)
	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			got, ok := res.ExtractBook(tc.raw)
			if got != tc.want || ok != tc.wantOK {
				t.Errorf("ExtractBook(%q) = %q, %v, want %q, %v", tc.raw, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestResolver_BookNumber(t *testing.T) {
	res := testResolver(t)

	id, err := res.BookNumber(parseOne(t, "2 Pet 1:17"))
	if err != nil {
		t.Fatalf("BookNumber() error = %v", err)
	}
	if id != books.Book(61) {
		t.Errorf("BookNumber() = %v, want 61", id)
	}

	_, err = res.BookNumber(&CrossReference{Book: "Hezekiah", Original: "Hezekiah 1:1"})
	var unresolvedErr *UnresolvedReferenceError
	if !errors.As(err, &unresolvedErr) {
		t.Fatalf("BookNumber() error = %v, want *UnresolvedReferenceError", err)
	}
	if unresolvedErr.Original != "Hezekiah 1:1" {
		t.Errorf("Original = %q, want %q", unresolvedErr.Original, "Hezekiah 1:1")
	}
	var unknown *books.UnknownBookNameError
	if !errors.As(err, &unknown) {
		t.Errorf("error does not wrap *books.UnknownBookNameError: %v", err)
	}
}

func TestResolver_Render(t *testing.T) {
	testCases := []struct {
		input string
		want  string
	}{
		{"Gen 1:1", "Genesis 1:1"},
		{"Gen 1:1-3", "Genesis 1:1-3"},
		{"Gen 1:1\u20132:3", "Genesis 1:1\u20132:3"},
		{"Gen 1-2", "Genesis 1\u20132"},
		{"John 3", "John 3"},
		{"2 Pet 1:17", "2 Peter 1:17"},
		{"Heb 5:5", "Hebrews 5:5"},
		{"1\u00a0Sam 3:4a", "1 Samuel 3:4"},
	}

	res := testResolver(t)
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := res.Render(parseOne(t, tc.input))
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if got != tc.want {
				t.Errorf("Render(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestResolver_RenderErrors(t *testing.T) {
	res := testResolver(t)

	if _, err := res.Render(&CrossReference{Book: "Gen", Original: "Gen"}); err == nil {
		t.Error("Render() without a chapter should fail")
	}
	if _, err := res.Render(&CrossReference{Original: " and ", Ignore: true}); err == nil {
		t.Error("Render() without a book should fail")
	}
}

func TestResolver_LookupKey(t *testing.T) {
	testCases := []struct {
		input string
		want  string
	}{
		{"Genesis 1:1", "gene_1_1"},
		{"Gen 2", "gene_2_1"},
		{"Heb 5:5", "hebr_5_5"},
		{"2 Pet 1:17-19", "pet2_1_17"},
	}

	res := testResolver(t)
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := res.LookupKey(parseOne(t, tc.input))
			if err != nil {
				t.Fatalf("LookupKey() error = %v", err)
			}
			if got != tc.want {
				t.Errorf("LookupKey(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestResolver_ResolveVerses(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		wantStart int64
		wantEnd   int64
	}{
		{"single_verse", "Gen 1:2", 2, 2},
		{"verse_range", "Gen 1:2-3", 2, 3},
		{"whole_chapter", "Gen 1", 1, 5},
		{"chapter_range", "Gen 1-2", 1, 8},
		{"start_redirects_to_previous", "Gen 1:4", 3, 4},
		{"end_redirects_to_next", "Gen 2:1", 6, 7},
		{"range_across_redirects", "Gen 1:4\u20132:1", 3, 7},
	}

	ctx := context.Background()
	res := testResolver(t)
	store := testStore(t)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			span, err := res.ResolveVerses(ctx, parseOne(t, tc.input), store, "test")
			if err != nil {
				t.Fatalf("ResolveVerses(%q) error = %v", tc.input, err)
			}
			if span.Start.ID != tc.wantStart || span.End.ID != tc.wantEnd {
				t.Errorf("ResolveVerses(%q) = #%d-#%d, want #%d-#%d",
					tc.input, span.Start.ID, span.End.ID, tc.wantStart, tc.wantEnd)
			}
		})
	}
}

func TestResolver_ResolveVersesSeeSpellings(t *testing.T) {
	gen := books.Book(1)
	verses := []*versestore.Verse{
		{ID: 1, Version: "alt", Book: gen, Chapter: 1, Number: 1},
		{ID: 2, Version: "alt", Book: gen, Chapter: 1, Number: 2, Redirect: "see-previous"},
		{ID: 3, Version: "alt", Book: gen, Chapter: 1, Number: 3, Redirect: "see-next"},
		{ID: 4, Version: "alt", Book: gen, Chapter: 1, Number: 4},
	}

	ctx := context.Background()
	for name, store := range map[string]interface {
		versestore.Store
		versestore.Writer
	}{
		"memory": versestore.NewMemoryStore(),
		"sqlite": openSQLiteStore(t),
	} {
		t.Run(name, func(t *testing.T) {
			if err := store.Insert(ctx, verses...); err != nil {
				t.Fatalf("Insert() error = %v", err)
			}

			res := testResolver(t)
			span, err := res.ResolveVerses(ctx, parseOne(t, "Gen 1:2-3"), store, "alt")
			if err != nil {
				t.Fatalf("ResolveVerses() error = %v", err)
			}
			if span.Start.ID != 1 || span.End.ID != 4 {
				t.Errorf("ResolveVerses(Gen 1:2-3) = #%d-#%d, want #1-#4", span.Start.ID, span.End.ID)
			}
		})
	}
}

func openSQLiteStore(t *testing.T) *versestore.SQLiteStore {
	t.Helper()
	store, err := versestore.OpenSQLite(filepath.Join(t.TempDir(), "verses.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	if err := store.Init(context.Background()); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	return store
}

func TestResolver_ResolveVersesErrors(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		version  string
		notFound bool
	}{
		{"missing_verse", "Gen 1:99", "test", true},
		{"missing_chapter", "Gen 50", "test", true},
		{"missing_version", "Gen 1:1", "none", true},
		{"start_redirect_out_of_bounds", "Gen 1:1", "edge", true},
		{"end_redirect_out_of_bounds", "Gen 1:2", "edge", true},
		{"backwards_range", "Gen 1:5-3", "test", false},
		{"unknown_book", "Xyz 1:1", "test", false},
	}

	ctx := context.Background()
	res := testResolver(t)
	store := testStore(t)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ref := parseOne(t, tc.input)
			_, err := res.ResolveVerses(ctx, ref, store, tc.version)

			var unresolvedErr *UnresolvedReferenceError
			if !errors.As(err, &unresolvedErr) {
				t.Fatalf("ResolveVerses(%q) error = %v, want *UnresolvedReferenceError", tc.input, err)
			}
			if unresolvedErr.Original != tc.input {
				t.Errorf("Original = %q, want %q", unresolvedErr.Original, tc.input)
			}
			if got := errors.Is(err, versestore.ErrNotFound); got != tc.notFound {
				t.Errorf("errors.Is(err, ErrNotFound) = %v, want %v (err: %v)", got, tc.notFound, err)
			}
		})
	}
}

func TestResolver_ResolveVersesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := testResolver(t).ResolveVerses(ctx, parseOne(t, "Gen 1:1"), testStore(t), "test")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ResolveVerses() error = %v, want context.Canceled", err)
	}
}

func TestResolver_Passage(t *testing.T) {
	verses, err := testResolver(t).Passage(context.Background(), parseOne(t, "Gen 1:4\u20132:1"), testStore(t), "test")
	if err != nil {
		t.Fatalf("Passage() error = %v", err)
	}
	var ids []int64
	for _, v := range verses {
		ids = append(ids, v.ID)
	}
	want := []int64{3, 4, 5, 6, 7}
	if len(ids) != len(want) {
		t.Fatalf("Passage() IDs = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("Passage() IDs = %v, want %v", ids, want)
			break
		}
	}
}

func TestResolver_Resolve(t *testing.T) {
	ctx := context.Background()
	res := testResolver(t)
	store := testStore(t)

	t.Run("resolved", func(t *testing.T) {
		r := res.Resolve(ctx, parseOne(t, "Gen 1:2-3"), store, "test")
		if !r.IsSuccess() {
			t.Fatalf("Status = %q, want resolved (err: %v)", r.Status, r.Err)
		}
		if r.Display != "Genesis 1:2-3" {
			t.Errorf("Display = %q, want %q", r.Display, "Genesis 1:2-3")
		}
		if r.Key != "gene_1_2" {
			t.Errorf("Key = %q, want gene_1_2", r.Key)
		}
		if r.Book != books.Book(1) {
			t.Errorf("Book = %v, want 1", r.Book)
		}
		if r.Span == nil || r.Span.Start.ID != 2 || r.Span.End.ID != 3 {
			t.Errorf("Span = %+v, want #2-#3", r.Span)
		}
	})

	t.Run("without_store", func(t *testing.T) {
		r := res.Resolve(ctx, parseOne(t, "Gen 1:99"), nil, "test")
		if !r.IsSuccess() {
			t.Fatalf("Status = %q, want resolved", r.Status)
		}
		if r.Span != nil {
			t.Errorf("Span = %+v, want nil", r.Span)
		}
	})

	t.Run("ignored", func(t *testing.T) {
		r := res.Resolve(ctx, &CrossReference{Original: "; and ", Ignore: true}, store, "test")
		if r.Status != ResolutionIgnored {
			t.Errorf("Status = %q, want ignored", r.Status)
		}
	})

	t.Run("unresolved", func(t *testing.T) {
		r := res.Resolve(ctx, parseOne(t, "Gen 1:5-3"), store, "test")
		if r.Status != ResolutionUnresolved {
			t.Fatalf("Status = %q, want unresolved", r.Status)
		}
		var unresolvedErr *UnresolvedReferenceError
		if !errors.As(r.Err, &unresolvedErr) || unresolvedErr.Original != "Gen 1:5-3" {
			t.Errorf("Err = %v, want unresolved Gen 1:5-3", r.Err)
		}
	})
}
