package batch

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/coolbeans/bibleref/pkg/books"
	"github.com/coolbeans/bibleref/pkg/extract"
	"github.com/coolbeans/bibleref/pkg/versestore"
)

func newTestResolver(t *testing.T, concurrency int) (*Resolver, *extract.Parser) {
	t.Helper()
	res, err := extract.NewResolver(books.DefaultRegistry())
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}

	store := versestore.NewMemoryStore()
	gen := books.Book(1)
	var verses []*versestore.Verse
	for i := 1; i <= 5; i++ {
		verses = append(verses, &versestore.Verse{ID: int64(i), Version: "test", Book: gen, Chapter: 1, Number: i})
	}
	if err := store.Insert(context.Background(), verses...); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	parser := extract.NewParser(nil, res, "")
	return NewResolver(res, store, &Config{Version: "test", Concurrency: concurrency}), parser
}

func parseAll(t *testing.T, parser *extract.Parser, text string) []*extract.CrossReference {
	t.Helper()
	refs, err := parser.ParseText(text)
	if err != nil {
		t.Fatalf("ParseText(%q) error = %v", text, err)
	}
	return refs
}

func TestResolveAll_PreservesOrder(t *testing.T) {
	batchResolver, parser := newTestResolver(t, 3)
	refs := parseAll(t, parser, "Gen 1:1; Gen 1:2; Gen 1:99; Gen 1:3-4; Gen 1:5")

	result := batchResolver.ResolveAll(context.Background(), refs)
	if len(result.Resolutions) != len(refs) {
		t.Fatalf("got %d resolutions, want %d", len(result.Resolutions), len(refs))
	}
	for i, res := range result.Resolutions {
		if res.Reference != refs[i] {
			t.Errorf("resolution %d belongs to %q, want %q", i, res.Reference.Original, refs[i].Original)
		}
	}

	if result.Resolutions[2].Status != extract.ResolutionUnresolved {
		t.Errorf("Gen 1:99 status = %q, want unresolved", result.Resolutions[2].Status)
	}
	if got := result.Resolutions[3].Span; got == nil || got.Start.ID != 3 || got.End.ID != 4 {
		t.Errorf("Gen 1:3-4 span = %+v, want #3-#4", got)
	}

	report := result.Report
	if report.TotalReferences != 5 || report.Resolved != 4 || report.Unresolved != 1 {
		t.Errorf("report = %+v, want 5 total, 4 resolved, 1 unresolved", report)
	}
}

func TestResolveAll_Progress(t *testing.T) {
	batchResolver, parser := newTestResolver(t, 2)
	refs := parseAll(t, parser, "Gen 1:1; Gen 1:2; Gen 1:3")

	var mu sync.Mutex
	var completed []int
	batchResolver.SetProgressCallback(func(progress *Progress) {
		mu.Lock()
		completed = append(completed, progress.Completed)
		mu.Unlock()
		if progress.Total != 3 {
			t.Errorf("Total = %d, want 3", progress.Total)
		}
	})

	batchResolver.ResolveAll(context.Background(), refs)

	if len(completed) != 3 {
		t.Fatalf("callback called %d times, want 3", len(completed))
	}
	for i, c := range completed {
		if c != i+1 {
			t.Errorf("completed = %v, want [1 2 3]", completed)
			break
		}
	}
}

func TestResolveAll_Cancelled(t *testing.T) {
	batchResolver, parser := newTestResolver(t, 1)
	refs := parseAll(t, parser, "Gen 1:1; Gen 1:2")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := batchResolver.ResolveAll(ctx, refs)
	for i, res := range result.Resolutions {
		if res.Status != extract.ResolutionUnresolved {
			t.Errorf("resolution %d status = %q, want unresolved", i, res.Status)
		}
		if !errors.Is(res.Err, context.Canceled) {
			t.Errorf("resolution %d error = %v, want context.Canceled", i, res.Err)
		}
	}
}

func TestResolveText(t *testing.T) {
	batchResolver, parser := newTestResolver(t, 4)

	result, err := batchResolver.ResolveText(context.Background(), parser, "Gen 1:1 and 2")
	if err != nil {
		t.Fatalf("ResolveText() error = %v", err)
	}
	if result.Report.Resolved != 2 {
		t.Errorf("Resolved = %d, want 2", result.Report.Resolved)
	}

	if _, err := batchResolver.ResolveText(context.Background(), parser, "Gen #"); err == nil {
		t.Error("ResolveText() with an unrecognized token should fail")
	}
}

func TestProgress_PercentComplete(t *testing.T) {
	testCases := []struct {
		total, completed int
		want             float64
	}{
		{0, 0, 100},
		{4, 1, 25},
		{4, 4, 100},
	}
	for _, tc := range testCases {
		progress := &Progress{Total: tc.total, Completed: tc.completed}
		if got := progress.PercentComplete(); got != tc.want {
			t.Errorf("PercentComplete(%d/%d) = %v, want %v", tc.completed, tc.total, got, tc.want)
		}
	}
}

func TestNewResolver_Defaults(t *testing.T) {
	batchResolver := NewResolver(nil, nil, &Config{Concurrency: 0})
	if batchResolver.config.Concurrency != 1 {
		t.Errorf("Concurrency = %d, want 1", batchResolver.config.Concurrency)
	}
	if NewResolver(nil, nil, nil).config.Version != "nlt" {
		t.Error("nil config should use DefaultConfig")
	}
}
