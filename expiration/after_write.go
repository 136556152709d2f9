package expiration

import (
	"time"

	"github.com/bjoernbethge/memocache/store"
)

/*
AfterWrite expires an entry a fixed duration after it was written or
refreshed. Reads do NOT extend the deadline.

This is the TTL cache's contract: a value stored at time t is live for
any lookup strictly before t+TTL and stale for any lookup at or after it.
A stale entry that gets recomputed is rewritten through OnWrite, which
restarts the clock.
*/
type AfterWrite struct {

	// TTL is how long an entry stays live after each write.
	// A TTL <= 0 makes every lookup a miss.
	TTL time.Duration
}

// IsExpired checks whether the entry's age since its last write has
// reached the TTL.
func (e *AfterWrite) IsExpired(info *store.EntryInfo, now time.Time) bool {
	return !info.ExpireAt.IsZero() && !now.Before(info.ExpireAt)
}

// OnAccess records the read. The deadline is untouched; only the write
// time matters for this strategy.
func (e *AfterWrite) OnAccess(info *store.EntryInfo, now time.Time) {
	info.LastAccessedAt = now
}

// OnWrite stamps the entry and restarts its lifetime.
func (e *AfterWrite) OnWrite(info *store.EntryInfo, now time.Time) {
	info.CreatedAt = now
	info.LastAccessedAt = now
	info.ExpireAt = now.Add(e.TTL)
}
