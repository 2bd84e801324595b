// Package cache memoizes analysis results keyed by an input digest.
//
// The engine is pure: the same (resume, job description, strategy) triple
// always yields the same result, so serving a cached snapshot is safe and
// keeps repeated submissions cheap.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"sync/atomic"

	"github.com/resumatch/resumatch/internal/domain/model"
)

// Cache stores immutable analysis results under digest keys.
type Cache interface {
	// Get returns the cached result for key, if any.
	Get(ctx context.Context, key string) (*model.AnalysisResult, bool)

	// Put stores result under key, evicting when the cache is full.
	Put(ctx context.Context, key string, result *model.AnalysisResult)

	Size() int64
}

// Key digests the analysis inputs into a cache key. The strategy name is
// part of the key since strategies score texts differently.
func Key(resumeText, jobText, strategy string) string {
	h := sha256.New()
	h.Write([]byte(strategy))
	h.Write([]byte{0})
	h.Write([]byte(resumeText))
	h.Write([]byte{0})
	h.Write([]byte(jobText))
	return hex.EncodeToString(h.Sum(nil))
}

// entry is a single cache slot chained for LIFO eviction.
type entry struct {
	key    string
	result *model.AnalysisResult
	next   *entry
}

// inMemoryCache implements Cache with a map plus a LIFO-evicted chain, the
// cheapest policy that bounds memory without tracking access recency.
type inMemoryCache struct {
	mu      sync.RWMutex
	entries map[string]*entry
	head    *entry
	maxSize int
	size    atomic.Int64
}

// NewInMemory creates a bounded in-memory cache with configuration options.
func NewInMemory(opts ...Option) Cache {
	c := &inMemoryCache{
		maxSize: 1024, // default max entries
	}
	for _, opt := range opts {
		opt(c)
	}
	c.entries = make(map[string]*entry)
	return c
}

func (c *inMemoryCache) Get(_ context.Context, key string) (*model.AnalysisResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	return e.result, true
}

func (c *inMemoryCache) Put(_ context.Context, key string, result *model.AnalysisResult) {
	if result == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.entries[key]; ok {
		existing.result = result
		return
	}

	if len(c.entries) >= c.maxSize {
		c.evict()
	}

	e := &entry{key: key, result: result, next: c.head}
	c.head = e
	c.entries[key] = e
	c.size.Add(1)
}

func (c *inMemoryCache) Size() int64 {
	return c.size.Load()
}

// evict drops the most recently inserted entry (LIFO). Callers hold the lock.
func (c *inMemoryCache) evict() {
	if c.head == nil {
		return
	}
	victim := c.head
	c.head = victim.next
	delete(c.entries, victim.key)
	c.size.Add(-1)
}
