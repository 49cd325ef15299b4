// Package batch resolves many cross-references concurrently against a verse
// store, with progress reporting and a summary report.
package batch

import (
	"time"

	"github.com/coolbeans/bibleref/pkg/extract"
)

// Config holds configuration for batch resolution.
type Config struct {
	// Version is the Bible version verses are looked up in.
	Version string `json:"version" yaml:"version"`

	// Concurrency is the maximum number of references resolved at once.
	Concurrency int `json:"concurrency" yaml:"concurrency"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:     "nlt",
		Concurrency: 4,
	}
}

// ProgressCallback is called to report resolution progress.
type ProgressCallback func(progress *Progress)

// Progress reports the current state of a batch.
type Progress struct {
	Total     int       `json:"total"`
	Completed int       `json:"completed"`
	Current   string    `json:"current,omitempty"`
	StartedAt time.Time `json:"started_at"`
	Elapsed   int64     `json:"elapsed_ms"`
}

// PercentComplete returns the completion percentage.
func (progress *Progress) PercentComplete() float64 {
	if progress.Total == 0 {
		return 100.0
	}
	return float64(progress.Completed) / float64(progress.Total) * 100.0
}

// Result is the outcome of one batch run. Resolutions are in input order.
type Result struct {
	Resolutions []*extract.Resolution    `json:"resolutions"`
	Report      *extract.ResolutionReport `json:"report"`
	StartedAt   time.Time                 `json:"started_at"`
	CompletedAt time.Time                 `json:"completed_at"`
	DurationMs  int64                     `json:"duration_ms"`
}
