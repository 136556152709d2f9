package expiration

import (
	"time"

	"github.com/bjoernbethge/memocache/store"
)

/*
AfterAccess implements a sliding TTL: every successful read pushes the
deadline forward. Data that keeps getting used stays alive; data nobody
touches for a while expires.

The TTL cache defaults to AfterWrite; select this strategy instead,
via the cache's expiration option, wherever "hot entries should survive"
matters more than a hard age bound.
*/
type AfterAccess struct {

	// TTL is how long an entry stays live after its most recent read
	// or write.
	TTL time.Duration
}

// IsExpired checks whether the entry went unused past its deadline.
func (e *AfterAccess) IsExpired(info *store.EntryInfo, now time.Time) bool {
	return !info.ExpireAt.IsZero() && !now.Before(info.ExpireAt)
}

// OnAccess slides the deadline forward. This is the whole point of the
// strategy.
func (e *AfterAccess) OnAccess(info *store.EntryInfo, now time.Time) {
	info.LastAccessedAt = now
	info.ExpireAt = now.Add(e.TTL)
}

// OnWrite stamps the entry and starts its first lifetime window.
func (e *AfterAccess) OnWrite(info *store.EntryInfo, now time.Time) {
	info.CreatedAt = now
	info.LastAccessedAt = now
	info.ExpireAt = now.Add(e.TTL)
}
