/*
Package memocache provides small caching and memoization primitives for
cutting redundant computation inside one process:

  - TTLCache: a size-bounded cache whose entries go stale after a fixed
    time-to-live, evicting the oldest-written entry when full
  - LRUCache: a fixed-capacity cache with true least-recently-used
    eviction and hit/miss counters, with pre-sized Small/Medium/Large
    constructors
  - Memoizer: unbounded per-owner memoization of one method's results
  - Lazy: a value computed at most once per owner
  - InBatches: chunked fan-out of one bulk operation

All of them key results with the keys package, which turns a call's
positional and named arguments into one comparable key.

The caches never persist anything, never share state across processes,
and never log or retry: a failing compute callback propagates to the
caller unchanged and leaves no entry behind.
*/
package memocache

import (
	"context"

	"github.com/bjoernbethge/memocache/keys"
)

// ComputeFunc produces the value for a key on a cache miss. It is
// invoked synchronously; the cache adds no timeout of its own, it only
// hands the caller's ctx through.
type ComputeFunc[V any] func(ctx context.Context) (V, error)

/*
Cache is the surface shared by the cache implementations in this package.

It is a contract over behavior, not internals: eviction order, expiry and
bookkeeping differ per implementation and are documented there.
*/
type Cache[V any] interface {

	// GetOrCompute returns the live cached value for key, or invokes
	// compute exactly once, stores the result, and returns it. A failed
	// compute stores nothing and the error propagates unchanged.
	GetOrCompute(ctx context.Context, key keys.Key, compute ComputeFunc[V]) (V, error)

	// Do builds the key from one call's arguments, then behaves like
	// GetOrCompute. Named arguments may be supplied in any order.
	Do(ctx context.Context, args []any, named map[string]any, compute ComputeFunc[V]) (V, error)

	// Clear removes every entry. Capacity and TTL configuration are
	// untouched.
	Clear()

	// Len returns the current entry count, including entries that are
	// stale but not yet overwritten or evicted.
	Len() int
}

var (
	_ Cache[int] = (*TTLCache[int])(nil)
	_ Cache[int] = (*LRUCache[int])(nil)
)
