package versestore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/coolbeans/bibleref/pkg/books"
)

// cacheEntry holds a cached verse and its expiration time.
type cacheEntry struct {
	verse     *Verse
	expiresAt time.Time
}

// CachedStore is a Store that keeps the verses it read from another Store
// for a fixed TTL. Misses are not cached. Entries expire lazily on access.
type CachedStore struct {
	next Store
	ttl  time.Duration
	now  func() time.Time

	mu      sync.RWMutex
	entries map[string]cacheEntry

	hits, misses int64
}

// NewCachedStore wraps next with a cache of the given TTL.
func NewCachedStore(next Store, ttl time.Duration) *CachedStore {
	return &CachedStore{
		next:    next,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
}

func positionKey(version string, book books.BookID, chapter, verse int) string {
	return fmt.Sprintf("%s/%s/%d/%d", version, book, chapter, verse)
}

func idKey(version string, id int64) string {
	return fmt.Sprintf("%s#%d", version, id)
}

func (c *CachedStore) get(key string) (*Verse, bool) {
	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()

	if !exists {
		c.count(false)
		return nil, false
	}

	if c.now().After(entry.expiresAt) {
		c.mu.Lock()
		// Re-check in case another goroutine already replaced it.
		if current, still := c.entries[key]; still && c.now().After(current.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		c.count(false)
		return nil, false
	}

	c.count(true)
	copied := *entry.verse
	return &copied, true
}

func (c *CachedStore) set(v *Verse, keys ...string) {
	stored := *v
	expiresAt := c.now().Add(c.ttl)
	c.mu.Lock()
	for _, key := range keys {
		c.entries[key] = cacheEntry{verse: &stored, expiresAt: expiresAt}
	}
	c.mu.Unlock()
}

func (c *CachedStore) count(hit bool) {
	c.mu.Lock()
	if hit {
		c.hits++
	} else {
		c.misses++
	}
	c.mu.Unlock()
}

// Lookup implements Store.
func (c *CachedStore) Lookup(ctx context.Context, version string, book books.BookID, chapter, verse int) (*Verse, error) {
	key := positionKey(version, book, chapter, verse)
	if v, ok := c.get(key); ok {
		return v, nil
	}

	v, err := c.next.Lookup(ctx, version, book, chapter, verse)
	if err != nil {
		return nil, err
	}
	c.set(v, key, idKey(version, v.ID), positionKey(version, v.Book, v.Chapter, v.Number))
	return v, nil
}

// ByID implements Store.
func (c *CachedStore) ByID(ctx context.Context, version string, id int64) (*Verse, error) {
	key := idKey(version, id)
	if v, ok := c.get(key); ok {
		return v, nil
	}

	v, err := c.next.ByID(ctx, version, id)
	if err != nil {
		return nil, err
	}
	c.set(v, key, positionKey(version, v.Book, v.Chapter, v.Number))
	return v, nil
}

// Range implements Store. Ranges go straight to the wrapped store.
func (c *CachedStore) Range(ctx context.Context, version string, from, to int64) ([]*Verse, error) {
	return c.next.Range(ctx, version, from, to)
}

// Clear removes all entries.
func (c *CachedStore) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]cacheEntry)
	c.mu.Unlock()
}

// Len returns the number of entries, including expired ones not yet
// removed.
func (c *CachedStore) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Cleanup removes expired entries and returns how many were removed.
func (c *CachedStore) Cleanup() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	now := c.now()
	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// Stats returns the number of cache hits and misses so far.
func (c *CachedStore) Stats() (hits, misses int64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
