// This file defines how a cache decides what to remove when it is full.

package eviction

/*
Policy is the interface all eviction strategies must follow.

A cache does not care how eviction works internally. It reports reads and
writes, and when it is out of space it asks the policy which key has to
go. The policy only ever sees keys; values stay in the cache's store.

Policies are NOT safe for concurrent use on their own; the owning cache
serializes access.
*/
type Policy interface {

	// OnGet is called whenever a key is read from the cache.
	// Recency-based policies care; write-order policies ignore it.
	OnGet(key string)

	// OnPut is called whenever a key is written, including a rewrite of
	// an existing key. Policies that order by write time treat a rewrite
	// as a fresh write.
	OnPut(key string)

	// Remove is called when a key leaves the cache for any reason other
	// than eviction, so the policy can drop its bookkeeping.
	Remove(key string)

	// Evict returns the key that should be removed next, and forgets it.
	// It returns "" when the policy is tracking nothing.
	Evict() string
}

// PolicyType identifies a supported eviction strategy.
type PolicyType string

const (
	// LRU evicts the key that has gone unread for the longest time.
	// This is what the fixed-capacity caches use.
	LRU PolicyType = "LRU"

	// LFU evicts the key with the fewest reads.
	LFU PolicyType = "LFU"

	// FIFO evicts the key that was first written, ignoring reads and
	// rewrites.
	FIFO PolicyType = "FIFO"

	// OldestWrite evicts the key with the oldest most-recent write.
	// Unlike FIFO, rewriting a key (a TTL refresh) moves it to the back
	// of the line. This is what the TTL cache uses.
	OldestWrite PolicyType = "OLDEST_WRITE"
)

// NewPolicy builds the eviction policy for a PolicyType.
func NewPolicy(t PolicyType) Policy {
	switch t {
	case LRU:
		return newLRU()
	case LFU:
		return newLFU()
	case FIFO:
		return newFIFO()
	case OldestWrite:
		return newOldestWrite()
	default:
		panic("eviction: unknown policy " + string(t))
	}
}
