// This file defines how the caches report what they are doing.

package metrics

import "sync/atomic"

/*
Metrics receives cache lifecycle events.

Each method corresponds to one event on the lookup path. The caches call
these methods whenever something happens; implementations decide what to
do with the events (count them, export them, ignore them).
*/
type Metrics interface {

	// Hit is called when a lookup returns a live cached value.
	Hit()

	// Miss is called when a lookup has to invoke the compute callback.
	Miss()

	// Eviction is called when an entry is removed to stay within capacity.
	Eviction()

	// Expire is called when an entry is found past its time-to-live.
	Expire()
}

/*
Noop is a "do nothing" implementation of Metrics.

It exists so that callers who do not care about metrics still get a
working cache without nil checks sprinkled through the lookup path.
*/
type Noop struct{}

func (Noop) Hit()      {}
func (Noop) Miss()     {}
func (Noop) Eviction() {}
func (Noop) Expire()   {}

/*
Counters is a Metrics implementation backed by atomic counters.

The fixed-capacity caches use it to back their hit/miss statistics
contract; it is also usable standalone wherever a caller wants numbers
out of a TTL cache.

All methods are safe for concurrent use.
*/
type Counters struct {
	hits        atomic.Uint64
	misses      atomic.Uint64
	evictions   atomic.Uint64
	expirations atomic.Uint64
}

func (c *Counters) Hit()      { c.hits.Add(1) }
func (c *Counters) Miss()     { c.misses.Add(1) }
func (c *Counters) Eviction() { c.evictions.Add(1) }
func (c *Counters) Expire()   { c.expirations.Add(1) }

// Snapshot is a point-in-time copy of the counter values.
type Snapshot struct {
	Hits        uint64
	Misses      uint64
	Evictions   uint64
	Expirations uint64
}

// Snapshot returns the current counter values.
func (c *Counters) Snapshot() Snapshot {
	return Snapshot{
		Hits:        c.hits.Load(),
		Misses:      c.misses.Load(),
		Evictions:   c.evictions.Load(),
		Expirations: c.expirations.Load(),
	}
}

// Reset zeroes every counter. Configuration-free, so a cache reset can
// reuse the same Counters value.
func (c *Counters) Reset() {
	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)
	c.expirations.Store(0)
}
