package extract

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/coolbeans/bibleref/pkg/books"
	"github.com/coolbeans/bibleref/pkg/pattern"
	"github.com/coolbeans/bibleref/pkg/versestore"
)

// ResolutionStatus indicates the outcome of resolving a reference.
type ResolutionStatus string

const (
	ResolutionResolved   ResolutionStatus = "resolved"
	ResolutionIgnored    ResolutionStatus = "ignored"
	ResolutionUnresolved ResolutionStatus = "unresolved"
)

// VerseSpan is the first and last stored verse of a reference after
// redirects have been followed.
type VerseSpan struct {
	Start *versestore.Verse `json:"start"`
	End   *versestore.Verse `json:"end"`
}

// Resolution is the result of resolving one CrossReference.
type Resolution struct {
	Reference *CrossReference  `json:"reference"`
	Status    ResolutionStatus `json:"status"`
	Book      books.BookID     `json:"book,omitzero"`
	Display   string           `json:"display,omitempty"`
	Key       string           `json:"key,omitempty"`
	Span      *VerseSpan       `json:"span,omitempty"`
	Err       error            `json:"-"`
}

// IsSuccess reports whether the reference resolved.
func (r *Resolution) IsSuccess() bool {
	return r.Status == ResolutionResolved
}

// Resolver maps CrossReference records to books, display forms and verses.
// It is immutable and safe for concurrent use.
type Resolver struct {
	registry *books.Registry
	names    *regexp.Regexp
	keys     *books.System
}

// NewResolver creates a resolver over a registry. Link keys come from the
// built-in bibletext key system.
func NewResolver(reg *books.Registry) (*Resolver, error) {
	keys, err := books.NewCatalog().System(books.BibleTextKeyDeuterocanon, books.SeparatorSpace)
	if err != nil {
		return nil, fmt.Errorf("building link key system: %w", err)
	}
	return NewResolverWithKeys(reg, keys)
}

// NewResolverWithKeys creates a resolver that takes link keys from keys.
func NewResolverWithKeys(reg *books.Registry, keys *books.System) (*Resolver, error) {
	if reg == nil {
		return nil, errors.New("registry is required")
	}
	expr := pattern.BookNameTerm(reg.BookList()).Compile()
	names, err := regexp.Compile("(?i)" + expr)
	if err != nil {
		return nil, fmt.Errorf("compiling book names: %w", err)
	}
	return &Resolver{registry: reg, names: names, keys: keys}, nil
}

// Registry returns the resolver's registry.
func (r *Resolver) Registry() *books.Registry {
	return r.registry
}

// ExtractBook finds a registry book name inside a raw book token. Names are
// matched case-insensitively, longest first, so leading separators and number
// prefixes in the token are skipped.
func (r *Resolver) ExtractBook(raw string) (string, bool) {
	m := r.names.FindString(raw)
	if m == "" {
		return "", false
	}
	return m, true
}

// BookNumber returns the BookID of the reference's book.
func (r *Resolver) BookNumber(ref *CrossReference) (books.BookID, error) {
	if ref.Book == "" {
		return books.BookID{}, unresolved(ref, "no book", nil)
	}
	id, err := r.registry.BookNumber(ref.Book)
	if err != nil {
		return books.BookID{}, unresolved(ref, "", err)
	}
	return id, nil
}

// Render returns the display form of ref: "Book Chapter[:Verse]" followed by
// an en dash and "Chapter[:Verse]" for a chapter range, or by "-Verse" for a
// verse range.
// The book is named by the registry's first system that knows it.
func (r *Resolver) Render(ref *CrossReference) (string, error) {
	id, err := r.BookNumber(ref)
	if err != nil {
		return "", err
	}
	if ref.ChapterFirst == "" {
		return "", unresolved(ref, "no chapter", nil)
	}
	name, ok := r.registry.DisplayName(id)
	if !ok {
		return "", unresolved(ref, fmt.Sprintf("no display name for book %s", id), nil)
	}

	var b strings.Builder
	b.WriteString(name)
	b.WriteByte(' ')
	b.WriteString(ref.ChapterFirst)
	if ref.VerseFirst != "" {
		b.WriteByte(':')
		b.WriteString(ref.VerseFirst)
	}
	switch {
	case ref.HasChapterRange():
		b.WriteString("\u2013")
		b.WriteString(ref.ChapterLast)
		if ref.VerseLast != "" {
			b.WriteByte(':')
			b.WriteString(ref.VerseLast)
		}
	case ref.HasVerseRange():
		b.WriteByte('-')
		b.WriteString(ref.VerseLast)
	}
	return b.String(), nil
}

// LookupKey returns the link target of the first verse of ref, for example
// "gene_1_1". A reference without a verse points at verse 1.
func (r *Resolver) LookupKey(ref *CrossReference) (string, error) {
	id, err := r.BookNumber(ref)
	if err != nil {
		return "", err
	}
	if ref.ChapterFirst == "" {
		return "", unresolved(ref, "no chapter", nil)
	}
	key, ok := r.keys.Name(id)
	if !ok {
		return "", unresolved(ref, fmt.Sprintf("no link key for book %s", id), nil)
	}
	verse := ref.VerseFirst
	if verse == "" {
		verse = "1"
	}
	return key + "_" + ref.ChapterFirst + "_" + verse, nil
}

// ResolveVerses looks up the first and last verse of ref in store. The start
// defaults to verse 1 and the end to the last verse of the final chapter. A
// start verse that redirects to its predecessor is replaced by it, and an end
// verse that redirects to its successor likewise, until no redirect remains.
func (r *Resolver) ResolveVerses(ctx context.Context, ref *CrossReference, store versestore.Store, version string) (*VerseSpan, error) {
	id, err := r.BookNumber(ref)
	if err != nil {
		return nil, err
	}

	chapterFirst, err := number(ref, ref.ChapterFirst, "chapter")
	if err != nil {
		return nil, err
	}
	chapterLast, err := number(ref, ref.ChapterLast, "chapter")
	if err != nil {
		return nil, err
	}
	verseFirst := 1
	if ref.VerseFirst != "" {
		if verseFirst, err = number(ref, ref.VerseFirst, "verse"); err != nil {
			return nil, err
		}
	}
	verseLast := versestore.LastVerse
	if ref.VerseLast != "" {
		if verseLast, err = number(ref, ref.VerseLast, "verse"); err != nil {
			return nil, err
		}
	}

	start, err := store.Lookup(ctx, version, id, chapterFirst, verseFirst)
	if err != nil {
		return nil, unresolved(ref, "start verse", err)
	}
	if start, err = chase(ctx, store, start, versestore.RedirectPrevious, -1); err != nil {
		return nil, unresolved(ref, "start verse redirect", err)
	}

	end, err := store.Lookup(ctx, version, id, chapterLast, verseLast)
	if err != nil {
		return nil, unresolved(ref, "end verse", err)
	}
	if end, err = chase(ctx, store, end, versestore.RedirectNext, 1); err != nil {
		return nil, unresolved(ref, "end verse redirect", err)
	}

	if start.ID > end.ID {
		return nil, unresolved(ref, fmt.Sprintf("start %s is after end %s", start, end), nil)
	}
	return &VerseSpan{Start: start, End: end}, nil
}

// chase follows redirects of kind dir from v, stepping step IDs each time.
func chase(ctx context.Context, store versestore.Store, v *versestore.Verse, dir versestore.Redirect, step int64) (*versestore.Verse, error) {
	for v.Redirect == dir {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		next, err := store.ByID(ctx, v.Version, v.ID+step)
		if err != nil {
			return nil, fmt.Errorf("following %s redirect of %s: %w", dir, v, err)
		}
		v = next
	}
	return v, nil
}

func number(ref *CrossReference, s, what string) (int, error) {
	if s == "" {
		return 0, unresolved(ref, "no "+what, nil)
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, unresolved(ref, fmt.Sprintf("invalid %s %q", what, s), err)
	}
	return n, nil
}

// Passage returns every stored verse from the start to the end of ref.
func (r *Resolver) Passage(ctx context.Context, ref *CrossReference, store versestore.Store, version string) ([]*versestore.Verse, error) {
	span, err := r.ResolveVerses(ctx, ref, store, version)
	if err != nil {
		return nil, err
	}
	verses, err := store.Range(ctx, version, span.Start.ID, span.End.ID)
	if err != nil {
		return nil, unresolved(ref, "reading passage", err)
	}
	return verses, nil
}

// Resolve resolves ref as far as it can and reports the outcome instead of
// failing. Records that hold only a conjunction are ignored. With a nil store
// the verse span is skipped.
func (r *Resolver) Resolve(ctx context.Context, ref *CrossReference, store versestore.Store, version string) *Resolution {
	res := &Resolution{Reference: ref}
	if ref.Ignore {
		res.Status = ResolutionIgnored
		return res
	}

	fail := func(err error) *Resolution {
		res.Status = ResolutionUnresolved
		res.Err = err
		return res
	}

	id, err := r.BookNumber(ref)
	if err != nil {
		return fail(err)
	}
	res.Book = id

	if res.Display, err = r.Render(ref); err != nil {
		return fail(err)
	}
	if res.Key, err = r.LookupKey(ref); err != nil {
		return fail(err)
	}
	if store != nil {
		if res.Span, err = r.ResolveVerses(ctx, ref, store, version); err != nil {
			return fail(err)
		}
	}

	res.Status = ResolutionResolved
	return res
}
