package memocache

import (
	"context"
	"sync"
)

/*
Lazy holds a value computed at most once per owner.

Like Memoizer, it is meant to live as a field on the owner type, one per
lazily computed member:

	type Report struct {
		summary memocache.Lazy[string]
	}

	func (r *Report) Summary(ctx context.Context) (string, error) {
		return r.summary.Get(ctx, func(ctx context.Context) (string, error) {
			return r.buildSummary(ctx)
		})
	}

Once populated the slot never recomputes, even if the computation is
nondeterministic; every later Get returns the stored value. A failed
compute leaves the slot unset, so the next Get tries again. There is no
invalidation.

The zero Lazy is ready to use, and safe for concurrent use.
*/
type Lazy[V any] struct {
	mu    sync.Mutex
	set   bool
	value V
}

// Get returns the stored value, computing and storing it on the first
// successful call.
func (l *Lazy[V]) Get(ctx context.Context, compute ComputeFunc[V]) (V, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.set {
		return l.value, nil
	}

	value, err := compute(ctx)
	if err != nil {
		var zero V
		return zero, err
	}

	l.value = value
	l.set = true
	return value, nil
}
