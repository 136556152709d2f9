package main

import (
	"context"
	"fmt"
	"time"

	"github.com/bjoernbethge/memocache"
	"github.com/bjoernbethge/memocache/keys"
)

// A thin load harness for eyeballing throughput outside `go test -bench`.

func main() {
	ctx := context.Background()

	const (
		capacity = 512
		hotKeys  = 256
		ops      = 2_000_000
	)

	fmt.Println("\n================ MEMOCACHE LOAD BENCHMARK =================")
	fmt.Println("CONFIG")
	fmt.Println("---------------------------------")
	fmt.Println("Capacity :", capacity)
	fmt.Println("Hot Keys :", hotKeys)
	fmt.Println("Ops      :", ops)
	fmt.Println("---------------------------------")

	c := memocache.NewLRUCache[int](capacity)

	// ---------------- Preload ----------------
	fmt.Println("Preloading cache...")
	ks := make([]keys.Key, hotKeys)
	for i := range ks {
		k, err := keys.Build([]any{"hot", i}, nil)
		if err != nil {
			panic(err)
		}
		ks[i] = k
		c.GetOrCompute(ctx, k, func(context.Context) (int, error) { return i, nil })
	}
	fmt.Println("Preload complete.")

	// ---------------- Hit loop ----------------
	fmt.Println("Running hit loop...")
	start := time.Now()
	for i := 0; i < ops; i++ {
		c.GetOrCompute(ctx, ks[i%hotKeys], func(context.Context) (int, error) { return 0, nil })
	}
	hitTime := time.Since(start)

	// ---------------- Key building loop ----------------
	fmt.Println("Running key builder loop...")
	named := map[string]any{"limit": 10, "asc": true}
	start = time.Now()
	for i := 0; i < ops; i++ {
		if _, err := keys.Build([]any{"query", i % hotKeys}, named); err != nil {
			panic(err)
		}
	}
	keyTime := time.Since(start)

	// ---------------- Batch loop ----------------
	fmt.Println("Running batch loop...")
	items := make([]int, 1000)
	for i := range items {
		items[i] = i
	}
	bulk := func(ctx context.Context, chunk []int) ([]int, error) {
		out := make([]int, len(chunk))
		for i, v := range chunk {
			out[i] = v * 2
		}
		return out, nil
	}
	start = time.Now()
	for i := 0; i < ops/1000; i++ {
		if _, err := memocache.InBatches(ctx, items, 100, bulk); err != nil {
			panic(err)
		}
	}
	batchTime := time.Since(start)

	// ---------------- Results ----------------
	stats := c.Stats()

	fmt.Println("\n================ RESULTS =================")
	fmt.Printf("Cache hits       : %.2f ops/sec\n", float64(ops)/hitTime.Seconds())
	fmt.Printf("Key builds       : %.2f ops/sec\n", float64(ops)/keyTime.Seconds())
	fmt.Printf("Batched items    : %.2f items/sec\n", float64(ops)/batchTime.Seconds())
	fmt.Printf("Hit rate         : %d/%d\n", stats.Hits, stats.Hits+stats.Misses)
	fmt.Println("=========================================")
}
