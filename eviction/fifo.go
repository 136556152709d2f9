// This file implements FIFO eviction.

package eviction

import "container/list"

/*
fifo evicts keys in the order they were first written. Reads and rewrites
never change a key's position.
*/
type fifo struct {
	elems map[string]*list.Element
	queue *list.List // front = oldest insertion
}

func newFIFO() *fifo {
	return &fifo{
		elems: make(map[string]*list.Element),
		queue: list.New(),
	}
}

// OnGet does nothing; FIFO ignores reads.
func (f *fifo) OnGet(string) {}

// OnPut enqueues a key on its first write only.
func (f *fifo) OnPut(key string) {
	if _, ok := f.elems[key]; ok {
		return
	}
	f.elems[key] = f.queue.PushBack(key)
}

// Evict removes and returns the oldest inserted key.
func (f *fifo) Evict() string {
	front := f.queue.Front()
	if front == nil {
		return ""
	}
	key := front.Value.(string)
	f.queue.Remove(front)
	delete(f.elems, key)
	return key
}

// Remove drops bookkeeping for an explicitly deleted key.
func (f *fifo) Remove(key string) {
	if el, ok := f.elems[key]; ok {
		f.queue.Remove(el)
		delete(f.elems, key)
	}
}
