package batch

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/coolbeans/bibleref/pkg/extract"
	"github.com/coolbeans/bibleref/pkg/versestore"
)

// Resolver resolves cross-references concurrently. References share no
// state once parsed, so each is resolved on its own goroutine, bounded by
// Config.Concurrency. The verse store must be safe for concurrent reads.
type Resolver struct {
	config     *Config
	resolver   *extract.Resolver
	store      versestore.Store
	logger     *slog.Logger
	progressCb ProgressCallback
	mu         sync.Mutex
}

// NewResolver creates a batch resolver. A nil store resolves books and
// display forms only.
func NewResolver(resolver *extract.Resolver, store versestore.Store, config *Config) *Resolver {
	if config == nil {
		config = DefaultConfig()
	}
	if config.Concurrency < 1 {
		config.Concurrency = 1
	}
	return &Resolver{
		config:   config,
		resolver: resolver,
		store:    store,
		logger:   slog.Default(),
	}
}

// SetProgressCallback sets a callback function to receive progress updates.
func (batchResolver *Resolver) SetProgressCallback(callback ProgressCallback) {
	batchResolver.mu.Lock()
	batchResolver.progressCb = callback
	batchResolver.mu.Unlock()
}

// SetLogger sets the logger used for per-reference failures.
func (batchResolver *Resolver) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	batchResolver.mu.Lock()
	batchResolver.logger = logger
	batchResolver.mu.Unlock()
}

// ResolveAll resolves refs and returns their resolutions in input order with
// a report. A failing reference never stops the others. When ctx is
// cancelled, references not yet resolved are reported unresolved with the
// context error.
func (batchResolver *Resolver) ResolveAll(ctx context.Context, refs []*extract.CrossReference) *Result {
	result := &Result{
		Resolutions: make([]*extract.Resolution, len(refs)),
		StartedAt:   time.Now(),
	}

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, batchResolver.config.Concurrency)

	completedCount := 0
	progressMu := sync.Mutex{}

	for i, ref := range refs {
		wg.Add(1)
		go func(i int, ref *extract.CrossReference) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				result.Resolutions[i] = cancelled(ref, ctx.Err())
				return
			case semaphore <- struct{}{}:
			}
			defer func() { <-semaphore }()

			var res *extract.Resolution
			if err := ctx.Err(); err != nil {
				res = cancelled(ref, err)
			} else {
				res = batchResolver.resolver.Resolve(ctx, ref, batchResolver.store, batchResolver.config.Version)
			}
			if res.Err != nil {
				batchResolver.log().Debug("reference unresolved", "original", ref.Original, "error", res.Err)
			}
			result.Resolutions[i] = res

			progressMu.Lock()
			completedCount++
			batchResolver.reportProgress(len(refs), completedCount, ref.Original, result.StartedAt)
			progressMu.Unlock()
		}(i, ref)
	}

	wg.Wait()

	result.CompletedAt = time.Now()
	result.DurationMs = result.CompletedAt.Sub(result.StartedAt).Milliseconds()
	result.Report = extract.GenerateReport(result.Resolutions)
	return result
}

// ResolveText parses text and resolves every reference in it.
func (batchResolver *Resolver) ResolveText(ctx context.Context, parser *extract.Parser, text string) (*Result, error) {
	refs, err := parser.ParseText(text)
	if err != nil {
		return nil, err
	}
	return batchResolver.ResolveAll(ctx, refs), nil
}

func cancelled(ref *extract.CrossReference, err error) *extract.Resolution {
	return &extract.Resolution{
		Reference: ref,
		Status:    extract.ResolutionUnresolved,
		Err:       err,
	}
}

func (batchResolver *Resolver) log() *slog.Logger {
	batchResolver.mu.Lock()
	defer batchResolver.mu.Unlock()
	return batchResolver.logger
}

// reportProgress sends a progress update via the callback if set.
func (batchResolver *Resolver) reportProgress(total, completed int, current string, startedAt time.Time) {
	batchResolver.mu.Lock()
	callback := batchResolver.progressCb
	batchResolver.mu.Unlock()

	if callback == nil {
		return
	}

	callback(&Progress{
		Total:     total,
		Completed: completed,
		Current:   current,
		StartedAt: startedAt,
		Elapsed:   time.Since(startedAt).Milliseconds(),
	})
}
