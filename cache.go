package main

import (
	"log"
	"sync"
)

const defaultCacheMaxEntries = 1000

// ClassifyFunc answers whether a single token or bigram denotes a food
// item. Implementations call a remote classification source and may fail.
type ClassifyFunc func(term string) (bool, error)

// FoodTermCache memoizes remote food-term classifications. Entries are
// tracked in insertion order so the oldest half can be dropped when the
// cache grows past its limit. Safe for concurrent use.
type FoodTermCache struct {
	mu         sync.Mutex
	entries    map[string]bool
	order      []string
	maxEntries int
	classify   ClassifyFunc
}

func NewFoodTermCache(maxEntries int, classify ClassifyFunc) *FoodTermCache {
	if maxEntries < 1 {
		maxEntries = defaultCacheMaxEntries
	}
	return &FoodTermCache{
		entries:    make(map[string]bool),
		maxEntries: maxEntries,
		classify:   classify,
	}
}

// LookupOrClassify returns the cached verdict for term, or asks the
// classification source and caches the answer. A failed classification
// returns false and is not cached, so a later call can retry.
func (c *FoodTermCache) LookupOrClassify(term string) bool {
	term = normalizeTextToken(term)

	c.mu.Lock()
	if verdict, ok := c.entries[term]; ok {
		c.mu.Unlock()
		return verdict
	}
	c.mu.Unlock()

	// Classify outside the lock; a duplicate remote call under race is
	// acceptable, a blocked cache is not.
	verdict, err := c.classify(term)
	if err != nil {
		log.Printf("food-term classify failed term=%q err=%v", term, err)
		return false
	}

	c.Put(term, verdict)
	return verdict
}

// Put stores a verdict, evicting the oldest half of the cache first when
// the configured maximum is exceeded.
func (c *FoodTermCache) Put(term string, verdict bool) {
	term = normalizeTextToken(term)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[term]; !exists && len(c.entries) > c.maxEntries {
		c.evictOldestHalfLocked()
	}
	if _, exists := c.entries[term]; !exists {
		c.order = append(c.order, term)
	}
	c.entries[term] = verdict
}

func (c *FoodTermCache) evictOldestHalfLocked() {
	half := len(c.order) / 2
	evicted := c.order[:half]
	for _, term := range evicted {
		delete(c.entries, term)
	}
	c.order = append([]string(nil), c.order[half:]...)
	log.Printf("food-term cache evicted=%d remaining=%d", half, len(c.entries))
}

// Contains reports whether term has a cached verdict.
func (c *FoodTermCache) Contains(term string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[normalizeTextToken(term)]
	return ok
}

// Len returns the current entry count.
func (c *FoodTermCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Snapshot returns all entries in insertion order, for persistence.
func (c *FoodTermCache) Snapshot() []CachedTerm {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]CachedTerm, 0, len(c.order))
	for _, term := range c.order {
		verdict, ok := c.entries[term]
		if !ok {
			continue
		}
		out = append(out, CachedTerm{Term: term, IsFood: verdict})
	}
	return out
}

// Warm seeds the cache without triggering eviction bookkeeping beyond the
// usual Put path. Used for the common-term preload and snapshot restore.
func (c *FoodTermCache) Warm(terms []CachedTerm) {
	for _, t := range terms {
		c.Put(t.Term, t.IsFood)
	}
}
