package memocache

import (
	"context"
	"sync"
	"time"

	"github.com/bjoernbethge/memocache/eviction"
	"github.com/bjoernbethge/memocache/keys"
	"github.com/bjoernbethge/memocache/metrics"
	"github.com/bjoernbethge/memocache/store"
	"golang.org/x/sync/singleflight"
)

// Capacities of the pre-configured fixed-capacity caches.
const (
	SmallCacheSize  = 32
	MediumCacheSize = 128
	LargeCacheSize  = 512
)

/*
LRUCache is a fixed-capacity cache without expiry: entries live until
evicted. Eviction is true least-recently-used order by default — the
most recently read entries are retained, unlike TTLCache's oldest-write
order. Hits and misses are counted and exposed through Stats.

CONCURRENCY:
------------
The baseline contract is single-threaded use. As an extension, LRUCache
is safe for concurrent use: state is mutex-guarded, and concurrent
misses for the same key collapse into a single compute via singleflight
while misses for different keys compute in parallel.
*/
type LRUCache[V any] struct {
	mu         sync.Mutex
	entries    store.Store[V]
	policy     eviction.Policy
	policyType eviction.PolicyType
	counters   *metrics.Counters
	maxSize    int
	sf         singleflight.Group
}

// LRUStats is a read-only snapshot of an LRUCache.
type LRUStats struct {
	Size      int
	MaxSize   int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

/*
NewLRUCache builds a fixed-capacity cache holding at most maxSize
entries. A maxSize below 1 is raised to 1.

Accepted options: WithEvictionPolicy, for callers that want FIFO or LFU
semantics instead of the default LRU.
*/
func NewLRUCache[V any](maxSize int, opts ...Option) *LRUCache[V] {
	cfg := newConfig(opts...)

	if maxSize < 1 {
		maxSize = 1
	}

	return &LRUCache[V]{
		entries:    store.NewMapStore[V](),
		policy:     eviction.NewPolicy(cfg.policy),
		policyType: cfg.policy,
		counters:   &metrics.Counters{},
		maxSize:    maxSize,
	}
}

// NewSmallCache builds a pre-configured 32-entry LRU cache.
func NewSmallCache[V any]() *LRUCache[V] { return NewLRUCache[V](SmallCacheSize) }

// NewMediumCache builds a pre-configured 128-entry LRU cache.
func NewMediumCache[V any]() *LRUCache[V] { return NewLRUCache[V](MediumCacheSize) }

// NewLargeCache builds a pre-configured 512-entry LRU cache.
func NewLargeCache[V any]() *LRUCache[V] { return NewLRUCache[V](LargeCacheSize) }

// GetOrCompute returns the cached value for key, or computes, stores and
// returns it. Concurrent calls for the same missing key compute once and
// share the result.
func (c *LRUCache[V]) GetOrCompute(ctx context.Context, key keys.Key, compute ComputeFunc[V]) (V, error) {
	k := string(key)

	if value, ok := c.lookup(k); ok {
		return value, nil
	}

	v, err, _ := c.sf.Do(k, func() (any, error) {
		// Re-check: another caller may have stored the key between our
		// lookup and this flight starting.
		if value, ok := c.lookup(k); ok {
			return value, nil
		}

		c.counters.Miss()

		value, err := compute(ctx)
		if err != nil {
			// Nothing is stored for a failed compute.
			return nil, err
		}

		c.insert(k, value)
		return value, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	if v == nil {
		// V is an interface type and the compute returned nil; a plain
		// assertion would panic on it.
		var zero V
		return zero, nil
	}
	return v.(V), nil
}

// Do builds the key from one call's arguments, then behaves like
// GetOrCompute.
func (c *LRUCache[V]) Do(ctx context.Context, args []any, named map[string]any, compute ComputeFunc[V]) (V, error) {
	key, err := keys.Build(args, named)
	if err != nil {
		var zero V
		return zero, err
	}
	return c.GetOrCompute(ctx, key, compute)
}

// lookup returns the cached value for k, counting a hit and refreshing
// recency on success.
func (c *LRUCache[V]) lookup(k string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ent, ok := c.entries.Get(k)
	if !ok {
		var zero V
		return zero, false
	}

	c.counters.Hit()
	ent.LastAccessedAt = time.Now()
	c.policy.OnGet(k)
	return ent.Value, true
}

// insert stores a computed value, evicting one entry first when a new
// key would push the cache over capacity.
func (c *LRUCache[V]) insert(k string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries.Get(k); !ok && c.entries.Len() >= c.maxSize {
		if victim := c.policy.Evict(); victim != "" {
			c.entries.Delete(victim)
			c.counters.Eviction()
		}
	}

	now := time.Now()
	ent := &store.Entry[V]{}
	ent.Key = k
	ent.Value = value
	ent.CreatedAt = now
	ent.LastAccessedAt = now

	c.entries.Put(k, ent)
	c.policy.OnPut(k)
}

// Clear removes every entry and zeroes the counters. Capacity and the
// eviction policy choice are untouched.
func (c *LRUCache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries.Clear()
	c.policy = eviction.NewPolicy(c.policyType)
	c.counters.Reset()
}

// Len returns the current entry count.
func (c *LRUCache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Len()
}

// Stats returns a read-only snapshot of the cache and its counters.
func (c *LRUCache[V]) Stats() LRUStats {
	snap := c.counters.Snapshot()

	c.mu.Lock()
	defer c.mu.Unlock()

	return LRUStats{
		Size:      c.entries.Len(),
		MaxSize:   c.maxSize,
		Hits:      snap.Hits,
		Misses:    snap.Misses,
		Evictions: snap.Evictions,
	}
}
