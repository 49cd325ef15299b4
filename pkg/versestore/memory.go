package versestore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/coolbeans/bibleref/pkg/books"
)

type position struct {
	book    books.BookID
	chapter int
	verse   int
}

type memoryVersion struct {
	byID       map[int64]*Verse
	byPosition map[position]*Verse
	last       map[position]*Verse // verse field is zero
	ids        []int64             // sorted
}

// MemoryStore keeps verses in maps. It is safe for concurrent use.
type MemoryStore struct {
	mu       sync.RWMutex
	versions map[string]*memoryVersion
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{versions: make(map[string]*memoryVersion)}
}

// Insert adds verses, replacing any verse with the same version and ID and
// any verse already stored at the same position. Either every verse is
// stored or none is.
func (s *MemoryStore) Insert(ctx context.Context, verses ...*Verse) error {
	prepared := make([]*Verse, 0, len(verses))
	for _, v := range verses {
		c, err := v.canonical()
		if err != nil {
			return err
		}
		prepared = append(prepared, c)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range prepared {
		mv, ok := s.versions[v.Version]
		if !ok {
			mv = &memoryVersion{
				byID:       make(map[int64]*Verse),
				byPosition: make(map[position]*Verse),
				last:       make(map[position]*Verse),
			}
			s.versions[v.Version] = mv
		}

		pos := position{v.Book, v.Chapter, v.Number}
		mv.remove(v.ID)
		if occupant, ok := mv.byPosition[pos]; ok {
			mv.remove(occupant.ID)
		}

		i := sort.Search(len(mv.ids), func(i int) bool { return mv.ids[i] >= v.ID })
		mv.ids = append(mv.ids, 0)
		copy(mv.ids[i+1:], mv.ids[i:])
		mv.ids[i] = v.ID

		mv.byID[v.ID] = v
		mv.byPosition[pos] = v

		key := position{book: v.Book, chapter: v.Chapter}
		if last, ok := mv.last[key]; !ok || last.Number <= v.Number {
			mv.last[key] = v
		}
	}
	return nil
}

// remove drops the verse with the given ID, if any.
func (mv *memoryVersion) remove(id int64) {
	old, ok := mv.byID[id]
	if !ok {
		return
	}
	delete(mv.byID, id)
	pos := position{old.Book, old.Chapter, old.Number}
	if mv.byPosition[pos] == old {
		delete(mv.byPosition, pos)
	}
	if i := sort.Search(len(mv.ids), func(i int) bool { return mv.ids[i] >= id }); i < len(mv.ids) && mv.ids[i] == id {
		mv.ids = append(mv.ids[:i], mv.ids[i+1:]...)
	}
	key := position{book: old.Book, chapter: old.Chapter}
	if mv.last[key] == old {
		mv.refreshLast(key)
	}
}

// refreshLast recomputes the last verse of a chapter after a removal.
func (mv *memoryVersion) refreshLast(key position) {
	delete(mv.last, key)
	for pos, v := range mv.byPosition {
		if pos.book != key.book || pos.chapter != key.chapter {
			continue
		}
		if last, ok := mv.last[key]; !ok || last.Number < v.Number {
			mv.last[key] = v
		}
	}
}

// Lookup implements Store.
func (s *MemoryStore) Lookup(ctx context.Context, version string, book books.BookID, chapter, verse int) (*Verse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	mv, ok := s.versions[version]
	if !ok {
		return nil, fmt.Errorf("%s %s %d:%d: %w", version, book, chapter, verse, ErrNotFound)
	}

	var v *Verse
	if verse == LastVerse {
		v = mv.last[position{book: book, chapter: chapter}]
	} else {
		v = mv.byPosition[position{book, chapter, verse}]
	}
	if v == nil {
		return nil, fmt.Errorf("%s %s %d:%d: %w", version, book, chapter, verse, ErrNotFound)
	}
	copied := *v
	return &copied, nil
}

// ByID implements Store.
func (s *MemoryStore) ByID(ctx context.Context, version string, id int64) (*Verse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if mv, ok := s.versions[version]; ok {
		if v, ok := mv.byID[id]; ok {
			copied := *v
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("%s #%d: %w", version, id, ErrNotFound)
}

// Range implements Store.
func (s *MemoryStore) Range(ctx context.Context, version string, from, to int64) ([]*Verse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	mv, ok := s.versions[version]
	if !ok {
		return nil, nil
	}

	var out []*Verse
	start := sort.Search(len(mv.ids), func(i int) bool { return mv.ids[i] >= from })
	for _, id := range mv.ids[start:] {
		if id > to {
			break
		}
		copied := *mv.byID[id]
		out = append(out, &copied)
	}
	return out, nil
}

// Len returns the number of verses stored for version.
func (s *MemoryStore) Len(version string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if mv, ok := s.versions[version]; ok {
		return len(mv.ids)
	}
	return 0
}
