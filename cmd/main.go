package main

import (
	"context"
	"fmt"
	"time"

	"github.com/bjoernbethge/memocache"
	"github.com/bjoernbethge/memocache/metrics"
)

// A thin demo walking each primitive once. The library itself prints
// nothing; everything below is this consumer's output.

func main() {
	ctx := context.Background()

	fmt.Println("\n==================== TTL CACHE ====================")

	counters := &metrics.Counters{}
	ttl := memocache.NewTTLCache[string](20, time.Second, memocache.WithMetrics(counters))

	lookup := func(host string) {
		v, _ := ttl.Do(ctx, []any{host}, nil, func(context.Context) (string, error) {
			fmt.Println("COMPUTE → resolve:", host)
			return "addr-of-" + host, nil
		})
		fmt.Println("CACHE   → GET", host, "=", v)
	}

	lookup("db.internal") // miss
	lookup("db.internal") // hit

	fmt.Println("WAIT    → 1.2s (past the TTL)")
	time.Sleep(1200 * time.Millisecond)
	lookup("db.internal") // miss again, refreshed

	stats := ttl.Stats()
	fmt.Printf("STATS   → size=%d maxsize=%d ttl=%s\n", stats.Size, stats.MaxSize, stats.TTL)

	fmt.Println("\n==================== LRU CACHE ====================")

	lru := memocache.NewSmallCache[int]()
	for i := 0; i < 40; i++ {
		lru.Do(ctx, []any{i % 36}, nil, func(context.Context) (int, error) {
			return i % 36, nil
		})
	}

	ls := lru.Stats()
	fmt.Printf("STATS   → size=%d maxsize=%d hits=%d misses=%d evictions=%d\n",
		ls.Size, ls.MaxSize, ls.Hits, ls.Misses, ls.Evictions)

	fmt.Println("\n==================== BATCHING ====================")

	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	chunks := 0
	doubled, _ := memocache.InBatches(ctx, items, 10, func(ctx context.Context, chunk []int) ([]int, error) {
		chunks++
		out := make([]int, len(chunk))
		for i, v := range chunk {
			out[i] = v * 2
		}
		return out, nil
	})
	fmt.Printf("BATCH   → %d items in %d chunks, first=%d last=%d\n",
		len(doubled), chunks, doubled[0], doubled[len(doubled)-1])

	fmt.Println("\n==================== METRICS ====================")

	snap := counters.Snapshot()
	fmt.Printf("TTL CACHE → hits=%d misses=%d evictions=%d expired=%d\n",
		snap.Hits, snap.Misses, snap.Evictions, snap.Expirations)
}
