// This file defines how cache entries are actually stored.

package store

import "time"

/*
EntryInfo is the bookkeeping every cache entry carries next to its value.

It is deliberately value-type-free so that expiration strategies can work
on any cache regardless of what the cache stores.

Timestamps are mutable on purpose: a refresh after expiry updates
CreatedAt in place rather than allocating a new entry.
*/
type EntryInfo struct {
	Key            string
	CreatedAt      time.Time
	LastAccessedAt time.Time
	ExpireAt       time.Time // zero => no TTL
}

// Entry pairs a stored value with its bookkeeping.
type Entry[V any] struct {
	EntryInfo
	Value V
}

/*
Store is the interface a cache uses to keep entries.

The caches in this module never range over a Store; eviction order is the
eviction policy's business, so Store stays a plain keyed container.

Implementations are NOT safe for concurrent use on their own; the owning
cache serializes access.
*/
type Store[V any] interface {

	// Get retrieves an entry by key.
	Get(key string) (*Entry[V], bool)

	// Put inserts or replaces an entry.
	Put(key string, ent *Entry[V])

	// Delete removes an entry. Deleting an absent key is a no-op.
	Delete(key string)

	// Len returns how many entries are stored, including entries that are
	// past their TTL but not yet overwritten or evicted.
	Len() int

	// Clear removes every entry.
	Clear()
}

// NewMapStore returns the plain map-backed Store used by every cache in
// this module.
func NewMapStore[V any]() Store[V] {
	return &mapStore[V]{entries: make(map[string]*Entry[V])}
}

type mapStore[V any] struct {
	entries map[string]*Entry[V]
}

func (s *mapStore[V]) Get(key string) (*Entry[V], bool) {
	ent, ok := s.entries[key]
	return ent, ok
}

func (s *mapStore[V]) Put(key string, ent *Entry[V]) {
	s.entries[key] = ent
}

func (s *mapStore[V]) Delete(key string) {
	delete(s.entries, key)
}

func (s *mapStore[V]) Len() int {
	return len(s.entries)
}

func (s *mapStore[V]) Clear() {
	s.entries = make(map[string]*Entry[V])
}
