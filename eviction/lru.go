// This file implements LRU eviction.

package eviction

import "container/list"

/*
lru tracks recency with a doubly-linked list: the front holds the most
recently read key, the back the least. A map from key to list element
makes every operation O(1).
*/
type lru struct {
	elems map[string]*list.Element
	order *list.List // front = most recently used
}

func newLRU() *lru {
	return &lru{
		elems: make(map[string]*list.Element),
		order: list.New(),
	}
}

// OnGet marks the key as most recently used.
func (l *lru) OnGet(key string) {
	if el, ok := l.elems[key]; ok {
		l.order.MoveToFront(el)
	}
}

// OnPut starts tracking a new key at the front. A rewrite of a tracked
// key counts as use.
func (l *lru) OnPut(key string) {
	if el, ok := l.elems[key]; ok {
		l.order.MoveToFront(el)
		return
	}
	l.elems[key] = l.order.PushFront(key)
}

// Evict removes and returns the least recently used key.
func (l *lru) Evict() string {
	back := l.order.Back()
	if back == nil {
		return ""
	}
	key := back.Value.(string)
	l.order.Remove(back)
	delete(l.elems, key)
	return key
}

// Remove drops bookkeeping for an explicitly deleted key.
func (l *lru) Remove(key string) {
	if el, ok := l.elems[key]; ok {
		l.order.Remove(el)
		delete(l.elems, key)
	}
}
