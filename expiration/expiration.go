// This file defines how cache entries expire over time.

package expiration

import (
	"time"

	"github.com/bjoernbethge/memocache/store"
)

/*
Strategy is the interface all expiration rules must follow. Instead of
hard-coding TTL logic into the caches, expiration behavior is a strategy
so the two policies this module ships (age measured from write, age
measured from last access) can be swapped without touching lookup code.

Strategies work on the entry's bookkeeping only; they never see values.
*/
type Strategy interface {

	// IsExpired reports whether the entry is past its deadline.
	//
	// The boundary is inclusive: an entry whose age equals the TTL is
	// already expired. A lookup exactly at the deadline is a miss.
	IsExpired(info *store.EntryInfo, now time.Time) bool

	// OnAccess is called whenever an entry is read successfully.
	OnAccess(info *store.EntryInfo, now time.Time)

	// OnWrite is called whenever an entry is written or refreshed.
	OnWrite(info *store.EntryInfo, now time.Time)
}
