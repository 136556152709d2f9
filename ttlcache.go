package memocache

import (
	"context"
	"sync"
	"time"

	"github.com/bjoernbethge/memocache/eviction"
	"github.com/bjoernbethge/memocache/expiration"
	"github.com/bjoernbethge/memocache/keys"
	"github.com/bjoernbethge/memocache/metrics"
	"github.com/bjoernbethge/memocache/store"
)

/*
TTLCache is a size-bounded cache whose entries go stale a fixed duration
after they were stored.

BEHAVIOR:
---------
- A lookup whose entry's age has reached the TTL is a miss: the value is
  recomputed and the entry rewritten in place with a fresh timestamp.
  Overwriting a stale entry is NOT an eviction event.
- When inserting a new key at capacity, exactly one entry is evicted
  first: the one with the oldest write. Stale entries linger in the count
  until overwritten or evicted; they are never returned as hits.
- Clear empties the cache; capacity and TTL stay as constructed.

CONCURRENCY:
------------
The baseline contract is single-threaded use. As an extension, TTLCache
guards its state with one mutex held for the whole lookup-or-insert,
including the compute callback, so two concurrent misses on the same key
can never both compute. The cost is that misses serialize across keys;
use LRUCache where parallel loads matter.
*/
type TTLCache[V any] struct {
	mu       sync.Mutex
	entries  store.Store[V]
	policy   eviction.Policy
	strategy expiration.Strategy
	metrics  metrics.Metrics
	maxSize  int
	ttl      time.Duration
}

// TTLStats is a read-only snapshot of a TTLCache.
type TTLStats struct {
	Size    int
	MaxSize int
	TTL     time.Duration
}

/*
NewTTLCache builds a TTLCache holding at most maxSize entries, each live
for ttl after its write. A maxSize below 1 is raised to 1. A ttl <= 0
makes every lookup a miss.

Accepted options: WithMetrics, WithExpirationStrategy. Replacing the
expiry rule changes when entries go stale, not the eviction order:
eviction stays oldest-write regardless.
*/
func NewTTLCache[V any](maxSize int, ttl time.Duration, opts ...Option) *TTLCache[V] {
	cfg := newConfig(opts...)

	if maxSize < 1 {
		maxSize = 1
	}

	strategy := cfg.strategy
	if strategy == nil {
		strategy = &expiration.AfterWrite{TTL: ttl}
	}

	return &TTLCache[V]{
		entries:  store.NewMapStore[V](),
		policy:   eviction.NewPolicy(eviction.OldestWrite),
		strategy: strategy,
		metrics:  cfg.metrics,
		maxSize:  maxSize,
		ttl:      ttl,
	}
}

// GetOrCompute returns the live cached value for key, or computes,
// stores and returns it.
func (c *TTLCache[V]) GetOrCompute(ctx context.Context, key keys.Key, compute ComputeFunc[V]) (V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	k := string(key)
	now := time.Now()

	if ent, ok := c.entries.Get(k); ok {
		if !c.strategy.IsExpired(&ent.EntryInfo, now) {
			c.metrics.Hit()
			c.strategy.OnAccess(&ent.EntryInfo, now)
			return ent.Value, nil
		}
		// Stale entry: it stays in place and is overwritten below once
		// the recompute succeeds.
		c.metrics.Expire()
	}

	c.metrics.Miss()

	value, err := compute(ctx)
	if err != nil {
		// Nothing is stored for a failed compute.
		var zero V
		return zero, err
	}

	c.insert(k, value)
	return value, nil
}

// Do builds the key from one call's arguments, then behaves like
// GetOrCompute.
func (c *TTLCache[V]) Do(ctx context.Context, args []any, named map[string]any, compute ComputeFunc[V]) (V, error) {
	key, err := keys.Build(args, named)
	if err != nil {
		var zero V
		return zero, err
	}
	return c.GetOrCompute(ctx, key, compute)
}

// insert stores a computed value, evicting the oldest-written entry
// first when a new key would push the cache over capacity.
func (c *TTLCache[V]) insert(k string, value V) {
	if _, ok := c.entries.Get(k); !ok && c.entries.Len() >= c.maxSize {
		if victim := c.policy.Evict(); victim != "" {
			c.entries.Delete(victim)
			c.metrics.Eviction()
		}
	}

	ent := &store.Entry[V]{}
	ent.Key = k
	ent.Value = value
	c.strategy.OnWrite(&ent.EntryInfo, time.Now())

	c.entries.Put(k, ent)
	c.policy.OnPut(k)
}

// Clear removes every entry and its timestamps. Capacity and TTL are
// untouched.
func (c *TTLCache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries.Clear()
	c.policy = eviction.NewPolicy(eviction.OldestWrite)
}

// Len returns the current entry count, stale entries included.
func (c *TTLCache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Len()
}

// Stats returns a read-only snapshot of the cache. Size counts stale
// entries that have not yet been overwritten or evicted.
func (c *TTLCache[V]) Stats() TTLStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return TTLStats{
		Size:    c.entries.Len(),
		MaxSize: c.maxSize,
		TTL:     c.ttl,
	}
}
