package tenant

import (
	"context"
	"sync"
	"time"
)

// Cache stores resolved tenant snapshots keyed by lower-cased slug. A
// cached entry must never outlive a tenant status change unnoticed: keep
// TTLs short and call Delete when a tenant is suspended or deactivated.
type Cache interface {
	Get(ctx context.Context, slug string) (*Tenant, bool)
	Set(ctx context.Context, slug string, tenant *Tenant, ttl time.Duration)
	Delete(ctx context.Context, slug string)
	Close() error
}

// DefaultCacheSize bounds the in-memory cache.
const DefaultCacheSize = 1000

type memoryEntry struct {
	tenant    *Tenant
	expiresAt time.Time
}

// memoryCache is a TTL cache with LRU eviction, sized for one process
// serving a few hundred clinics.
type memoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	order   []string // least recently used first
	maxSize int
	stop    chan struct{}
	done    chan struct{}
	closed  bool
}

// NewMemoryCache returns an in-memory cache with the default size limit and
// a background janitor for expired entries.
func NewMemoryCache() Cache {
	return NewMemoryCacheWithSize(DefaultCacheSize)
}

// NewMemoryCacheWithSize returns an in-memory cache holding at most maxSize
// entries; non-positive sizes fall back to DefaultCacheSize.
func NewMemoryCacheWithSize(maxSize int) Cache {
	if maxSize <= 0 {
		maxSize = DefaultCacheSize
	}
	c := &memoryCache{
		entries: make(map[string]memoryEntry),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go c.janitor()
	return c
}

func (c *memoryCache) Get(_ context.Context, slug string) (*Tenant, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[slug]
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		delete(c.entries, slug)
		c.unlink(slug)
		return nil, false
	}
	c.touch(slug)
	return e.tenant, true
}

func (c *memoryCache) Set(_ context.Context, slug string, tenant *Tenant, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[slug]; !ok && len(c.entries) >= c.maxSize && len(c.order) > 0 {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
	c.entries[slug] = memoryEntry{tenant: tenant, expiresAt: time.Now().Add(ttl)}
	c.touch(slug)
}

func (c *memoryCache) Delete(_ context.Context, slug string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, slug)
	c.unlink(slug)
}

func (c *memoryCache) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	close(c.stop)
	<-c.done
	return nil
}

func (c *memoryCache) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	defer close(c.done)

	for {
		select {
		case <-ticker.C:
			c.sweep()
		case <-c.stop:
			return
		}
	}
}

func (c *memoryCache) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for slug, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, slug)
			c.unlink(slug)
		}
	}
}

// touch moves slug to the most-recently-used end of the order queue.
func (c *memoryCache) touch(slug string) {
	c.unlink(slug)
	c.order = append(c.order, slug)
}

func (c *memoryCache) unlink(slug string) {
	for i, s := range c.order {
		if s == slug {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}

// noopCache disables caching; every middleware hit goes to the directory.
type noopCache struct{}

// NewNoopCache returns a cache that never stores anything.
func NewNoopCache() Cache { return noopCache{} }

func (noopCache) Get(context.Context, string) (*Tenant, bool)           { return nil, false }
func (noopCache) Set(context.Context, string, *Tenant, time.Duration)   {}
func (noopCache) Delete(context.Context, string)                        {}
func (noopCache) Close() error                                          { return nil }
