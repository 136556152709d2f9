package memocache

import (
	"context"
	"sync"

	"github.com/bjoernbethge/memocache/keys"
)

/*
Memoizer caches one method's results for the lifetime of its owner.

Give the owner type one Memoizer field per memoized method:

	type Resolver struct {
		lookups memocache.Memoizer[string]
	}

	func (r *Resolver) Lookup(ctx context.Context, host string) (string, error) {
		return r.lookups.Do(ctx, []any{host}, nil, func(ctx context.Context) (string, error) {
			return r.resolve(ctx, host)
		})
	}

Because the cache is a field, isolation comes for free: two Resolver
values never share entries, and the entries die with the owner. Distinct
fields keep distinct methods from colliding on equal arguments.

There is no TTL, no capacity bound and no invalidation. The zero
Memoizer is ready to use; the entry map is created on the first miss.

Memoizer is safe for concurrent use; the lock is held across
lookup-or-insert including the compute callback.
*/
type Memoizer[V any] struct {
	mu      sync.Mutex
	entries map[keys.Key]V
}

// GetOrCompute returns the cached value for key, or computes, stores and
// returns it. A failed compute stores nothing.
func (m *Memoizer[V]) GetOrCompute(ctx context.Context, key keys.Key, compute ComputeFunc[V]) (V, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if value, ok := m.entries[key]; ok {
		return value, nil
	}

	value, err := compute(ctx)
	if err != nil {
		var zero V
		return zero, err
	}

	if m.entries == nil {
		m.entries = make(map[keys.Key]V)
	}
	m.entries[key] = value
	return value, nil
}

// Do builds the key from one call's arguments, then behaves like
// GetOrCompute.
func (m *Memoizer[V]) Do(ctx context.Context, args []any, named map[string]any, compute ComputeFunc[V]) (V, error) {
	key, err := keys.Build(args, named)
	if err != nil {
		var zero V
		return zero, err
	}
	return m.GetOrCompute(ctx, key, compute)
}

// Len returns how many distinct argument sets have been memoized.
func (m *Memoizer[V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
