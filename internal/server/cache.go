package server

import (
	"sync"
	"time"

	"github.com/mj1618/xtree/internal/inspect"
	"github.com/mj1618/xtree/internal/model"
)

// cacheKey identifies a unique tree walk.
type cacheKey struct {
	Window     model.WindowID
	Recurse    bool
	MaxDepth   int
	Names      bool
	Attributes bool
	Geometry   bool
	Properties bool
}

func newCacheKey(id model.WindowID, opts inspect.BuildOptions) cacheKey {
	return cacheKey{
		Window:     id,
		Recurse:    opts.Recurse,
		MaxDepth:   opts.MaxDepth,
		Names:      opts.Toggles.Enabled(model.CategoryNames),
		Attributes: opts.Toggles.Enabled(model.CategoryAttributes),
		Geometry:   opts.Toggles.Enabled(model.CategoryGeometry),
		Properties: opts.Toggles.Enabled(model.CategoryProperties),
	}
}

// cacheEntry holds a built tree with its timestamp.
type cacheEntry struct {
	root      *model.WindowNode
	timestamp time.Time
}

// TreeCache provides a TTL-based cache for built window trees.
type TreeCache struct {
	mu      sync.Mutex
	entries map[cacheKey]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewTreeCache creates a new cache. A ttl of 0 disables caching.
func NewTreeCache(ttl time.Duration) *TreeCache {
	return &TreeCache{
		entries: make(map[cacheKey]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Build returns a cached tree if within TTL, otherwise runs build and
// stores its result. Failed builds are not cached.
// The caller must hold the directory mutex.
func (c *TreeCache) Build(id model.WindowID, opts inspect.BuildOptions, build func() (*model.WindowNode, error)) (*model.WindowNode, error) {
	if c.ttl == 0 {
		return build()
	}

	key := newCacheKey(id, opts)

	c.mu.Lock()
	if entry, ok := c.entries[key]; ok && c.now().Sub(entry.timestamp) < c.ttl {
		root := entry.root
		c.mu.Unlock()
		return root, nil
	}
	c.mu.Unlock()

	root, err := build()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = cacheEntry{root: root, timestamp: c.now()}
	c.mu.Unlock()

	return root, nil
}

// InvalidateAll clears the entire cache.
func (c *TreeCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[cacheKey]cacheEntry)
}
