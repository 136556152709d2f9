// This file implements oldest-write eviction.

package eviction

/*
oldestWrite evicts the key whose most recent write is oldest.

The difference from FIFO is the TTL refresh case: when a stale entry is
recomputed and rewritten, OnPut stamps it again and it moves to the back
of the eviction order.

Write order is tracked with a monotonic sequence number instead of wall
clock time. Within one process the orders are identical, and sequence
numbers cannot tie, so eviction is fully deterministic.

Evict scans all tracked keys for the minimum. O(n) per eviction is the
intended cost at the capacities this module targets.
*/
type oldestWrite struct {
	writes map[string]uint64
	next   uint64
}

func newOldestWrite() *oldestWrite {
	return &oldestWrite{writes: make(map[string]uint64)}
}

// OnGet does nothing; only writes matter here.
func (o *oldestWrite) OnGet(string) {}

// OnPut stamps the key with the current write sequence. Rewrites restamp.
func (o *oldestWrite) OnPut(key string) {
	o.next++
	o.writes[key] = o.next
}

// Evict removes and returns the key with the oldest write stamp.
func (o *oldestWrite) Evict() string {
	victim := ""
	oldest := uint64(0)

	for key, seq := range o.writes {
		if victim == "" || seq < oldest {
			victim = key
			oldest = seq
		}
	}
	if victim == "" {
		return ""
	}

	delete(o.writes, victim)
	return victim
}

// Remove drops bookkeeping for an explicitly deleted key.
func (o *oldestWrite) Remove(key string) {
	delete(o.writes, key)
}
