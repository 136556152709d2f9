// This file implements LFU eviction.

package eviction

/*
lfu counts reads per key and evicts the key read the fewest times.
Ties go to the key written first, which keeps eviction deterministic.

Eviction scans all tracked keys. That is O(n), which is fine at the
capacities this module targets; frequency buckets would only pay off at
much larger sizes.
*/
type lfu struct {
	freq map[string]int
	seq  map[string]uint64
	next uint64
}

func newLFU() *lfu {
	return &lfu{
		freq: make(map[string]int),
		seq:  make(map[string]uint64),
	}
}

// OnGet counts one more read for the key.
func (l *lfu) OnGet(key string) {
	if _, ok := l.freq[key]; ok {
		l.freq[key]++
	}
}

// OnPut starts tracking a new key with one use. Rewrites keep the
// existing count.
func (l *lfu) OnPut(key string) {
	if _, ok := l.freq[key]; ok {
		return
	}
	l.freq[key] = 1
	l.next++
	l.seq[key] = l.next
}

// Evict removes and returns the least frequently read key.
func (l *lfu) Evict() string {
	victim := ""
	bestFreq := 0
	bestSeq := uint64(0)

	for key, f := range l.freq {
		if victim == "" || f < bestFreq || (f == bestFreq && l.seq[key] < bestSeq) {
			victim = key
			bestFreq = f
			bestSeq = l.seq[key]
		}
	}
	if victim == "" {
		return ""
	}

	delete(l.freq, victim)
	delete(l.seq, victim)
	return victim
}

// Remove drops bookkeeping for an explicitly deleted key.
func (l *lfu) Remove(key string) {
	delete(l.freq, key)
	delete(l.seq, key)
}
