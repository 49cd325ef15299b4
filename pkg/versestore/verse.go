// Package versestore holds verse records keyed by version, book, chapter and
// verse, and the Store interface reference resolution reads them through.
package versestore

import (
	"context"
	"errors"
	"fmt"

	"github.com/coolbeans/bibleref/pkg/books"
)

// ErrNotFound is returned when no verse matches a lookup.
var ErrNotFound = errors.New("verse not found")

// LastVerse asks Lookup for the last verse of a chapter.
const LastVerse = -1

// Redirect marks a verse that does not stand on its own in a version and
// points at its neighbour instead.
type Redirect string

const (
	RedirectNone     Redirect = ""
	RedirectPrevious Redirect = "previous"
	RedirectNext     Redirect = "next"
)

// ParseRedirect accepts "", "none", "previous", "see-previous", "next" and
// "see-next".
func ParseRedirect(s string) (Redirect, error) {
	switch s {
	case "", "none":
		return RedirectNone, nil
	case "previous", "see-previous":
		return RedirectPrevious, nil
	case "next", "see-next":
		return RedirectNext, nil
	}
	return "", fmt.Errorf("unknown redirect %q", s)
}

// UnmarshalText decodes any spelling ParseRedirect accepts, so imported
// records may use "see-previous" and "see-next".
func (r *Redirect) UnmarshalText(text []byte) error {
	parsed, err := ParseRedirect(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Verse is one stored verse. ID orders the verses of a version; neighbours
// in the text have consecutive IDs.
type Verse struct {
	ID       int64        `json:"id" yaml:"id"`
	Version  string       `json:"version" yaml:"version"`
	Book     books.BookID `json:"book" yaml:"book"`
	Chapter  int          `json:"chapter" yaml:"chapter"`
	Number   int          `json:"verse" yaml:"verse"`
	Redirect Redirect     `json:"see,omitempty" yaml:"see,omitempty"`
	Text     string       `json:"text" yaml:"text"`
}

func (v *Verse) String() string {
	return fmt.Sprintf("%s %s %d:%d (#%d)", v.Version, v.Book, v.Chapter, v.Number, v.ID)
}

// Store reads verses. Implementations return ErrNotFound, possibly wrapped,
// for misses and must be safe for concurrent reads.
type Store interface {
	// Lookup returns the verse at book, chapter, verse. verse may be
	// LastVerse.
	Lookup(ctx context.Context, version string, book books.BookID, chapter, verse int) (*Verse, error)

	// ByID returns the verse with the given ID.
	ByID(ctx context.Context, version string, id int64) (*Verse, error)

	// Range returns the verses with from <= ID <= to in ID order.
	Range(ctx context.Context, version string, from, to int64) ([]*Verse, error)
}

// Writer adds verses to a store.
type Writer interface {
	Insert(ctx context.Context, verses ...*Verse) error
}

// Validate checks the fields a store relies on.
func (v *Verse) Validate() error {
	switch {
	case v.Version == "":
		return fmt.Errorf("verse %d: version is required", v.ID)
	case v.Book.IsZero():
		return fmt.Errorf("verse %d: book is required", v.ID)
	case v.Chapter < 1:
		return fmt.Errorf("verse %d: chapter must be positive", v.ID)
	case v.Number < 1:
		return fmt.Errorf("verse %d: verse number must be positive", v.ID)
	}
	if _, err := ParseRedirect(string(v.Redirect)); err != nil {
		return fmt.Errorf("verse %d: %w", v.ID, err)
	}
	return nil
}

// canonical validates v and returns a copy with its redirect in canonical
// form.
func (v *Verse) canonical() (*Verse, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	c := *v
	c.Redirect, _ = ParseRedirect(string(v.Redirect))
	return &c, nil
}
