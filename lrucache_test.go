package memocache_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/bjoernbethge/memocache"
	"github.com/bjoernbethge/memocache/eviction"
	"github.com/bjoernbethge/memocache/keys"
)

//
// ================= HIT / MISS =================
//

func TestLRUCacheHitSkipsCompute(t *testing.T) {
	ctx := context.Background()
	c := memocache.NewLRUCache[string](4)

	calls := 0
	for i := 0; i < 5; i++ {
		v, err := c.GetOrCompute(ctx, key(t, "k"), counter("v", &calls))
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if v != "v" {
			t.Fatalf("expected v, got %q", v)
		}
	}

	if calls != 1 {
		t.Fatalf("expected exactly one compute, got %d", calls)
	}

	stats := c.Stats()
	if stats.Hits != 4 || stats.Misses != 1 {
		t.Fatalf("unexpected counters: %+v", stats)
	}
}

//
// ================= LRU EVICTION =================
//

func TestLRUCacheEvictsLeastRecentlyUsed(t *testing.T) {
	ctx := context.Background()
	c := memocache.NewLRUCache[int](2)

	calls := 0
	c.GetOrCompute(ctx, key(t, "a"), counter(1, &calls))
	c.GetOrCompute(ctx, key(t, "b"), counter(2, &calls))

	// Touch a so that b is now the least recently used.
	c.GetOrCompute(ctx, key(t, "a"), counter(1, &calls))

	// Inserting c evicts b, not a. This is access-order eviction, unlike
	// the TTL cache's write-order eviction.
	c.GetOrCompute(ctx, key(t, "c"), counter(3, &calls)) // calls = 3

	c.GetOrCompute(ctx, key(t, "a"), counter(1, &calls))
	if calls != 3 {
		t.Fatalf("expected the recently used entry to survive, got %d computes", calls)
	}

	c.GetOrCompute(ctx, key(t, "b"), counter(2, &calls))
	if calls != 4 {
		t.Fatalf("expected the least recently used entry to be gone, got %d computes", calls)
	}

	if got := c.Stats().Evictions; got < 1 {
		t.Fatalf("expected at least one eviction, got %d", got)
	}
}

func TestLRUCacheNeverExceedsCapacity(t *testing.T) {
	ctx := context.Background()
	c := memocache.NewLRUCache[int](3)

	calls := 0
	for i := 0; i < 20; i++ {
		c.GetOrCompute(ctx, key(t, i), counter(i, &calls))
		if got := c.Len(); got > 3 {
			t.Fatalf("size %d exceeds capacity after insert %d", got, i)
		}
	}
}

//
// ================= PRE-CONFIGURED SIZES =================
//

func TestPreConfiguredCapacities(t *testing.T) {
	if got := memocache.NewSmallCache[int]().Stats().MaxSize; got != 32 {
		t.Fatalf("small cache: expected capacity 32, got %d", got)
	}
	if got := memocache.NewMediumCache[int]().Stats().MaxSize; got != 128 {
		t.Fatalf("medium cache: expected capacity 128, got %d", got)
	}
	if got := memocache.NewLargeCache[int]().Stats().MaxSize; got != 512 {
		t.Fatalf("large cache: expected capacity 512, got %d", got)
	}
}

//
// ================= ALTERNATE POLICIES =================
//

func TestLRUCacheWithFIFOPolicy(t *testing.T) {
	ctx := context.Background()
	c := memocache.NewLRUCache[int](2, memocache.WithEvictionPolicy(eviction.FIFO))

	calls := 0
	c.GetOrCompute(ctx, key(t, "a"), counter(1, &calls))
	c.GetOrCompute(ctx, key(t, "b"), counter(2, &calls))

	// Under FIFO, touching a changes nothing.
	c.GetOrCompute(ctx, key(t, "a"), counter(1, &calls))

	c.GetOrCompute(ctx, key(t, "c"), counter(3, &calls)) // evicts a

	c.GetOrCompute(ctx, key(t, "a"), counter(1, &calls))
	if calls != 4 {
		t.Fatalf("expected FIFO to evict the first insertion, got %d computes", calls)
	}
}

//
// ================= CLEAR =================
//

func TestLRUCacheClearResetsEntriesAndCounters(t *testing.T) {
	ctx := context.Background()
	c := memocache.NewLRUCache[int](4)

	calls := 0
	c.GetOrCompute(ctx, key(t, "a"), counter(1, &calls))
	c.GetOrCompute(ctx, key(t, "a"), counter(1, &calls))

	c.Clear()

	stats := c.Stats()
	if stats.Size != 0 || stats.Hits != 0 || stats.Misses != 0 {
		t.Fatalf("expected a clean slate after clear: %+v", stats)
	}
	if stats.MaxSize != 4 {
		t.Fatalf("clear must not change capacity, got %d", stats.MaxSize)
	}
}

//
// ================= CONCURRENCY =================
//

func TestLRUCacheConcurrentMissesComputeOnce(t *testing.T) {
	ctx := context.Background()
	c := memocache.NewLRUCache[int](8)

	var mu sync.Mutex
	calls := 0

	release := make(chan struct{})
	compute := func(context.Context) (int, error) {
		mu.Lock()
		calls++
		mu.Unlock()
		<-release
		return 42, nil
	}

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			v, err := c.GetOrCompute(ctx, key(t, "shared"), compute)
			if err != nil {
				t.Errorf("get failed: %v", err)
			}
			if v != 42 {
				t.Errorf("expected 42, got %d", v)
			}
		}()
	}

	close(start)
	close(release)
	wg.Wait()

	// Callers that miss together share one flight. A goroutine that
	// arrives after the flight finished may start a second one, but the
	// stampede itself must collapse.
	mu.Lock()
	defer mu.Unlock()
	if calls > 2 {
		t.Fatalf("expected concurrent misses to collapse, got %d computes", calls)
	}
}

func TestLRUCacheConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	c := memocache.NewLRUCache[int](16)

	ks := make([]keys.Key, 32)
	for i := range ks {
		ks[i] = key(t, i)
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				v, err := c.GetOrCompute(ctx, ks[i%32], func(context.Context) (int, error) {
					return i % 32, nil
				})
				if err != nil {
					t.Errorf("get failed: %v", err)
				}
				if v != i%32 {
					t.Errorf("expected %d, got %d", i%32, v)
				}
			}
		}(g)
	}
	wg.Wait()

	if got := c.Len(); got > 16 {
		t.Fatalf("size %d exceeds capacity", got)
	}
}

//
// ================= FAILURES =================
//

func TestLRUCacheFailedComputeNotCached(t *testing.T) {
	ctx := context.Background()
	c := memocache.NewLRUCache[int](4)

	boom := errors.New("nope")
	_, err := c.GetOrCompute(ctx, key(t, "x"), func(context.Context) (int, error) {
		return 0, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected the compute error unchanged, got %v", err)
	}
	if got := c.Len(); got != 0 {
		t.Fatalf("failed compute must not leave an entry, got size %d", got)
	}
}

func TestLRUCacheNilInterfaceValue(t *testing.T) {
	ctx := context.Background()
	c := memocache.NewLRUCache[any](4)

	calls := 0
	nilCompute := func(context.Context) (any, error) {
		calls++
		return nil, nil
	}

	v, err := c.GetOrCompute(ctx, key(t, "absent"), nilCompute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != nil {
		t.Fatalf("expected nil value, got %v", v)
	}

	// A nil result is still a result: it is cached like any other value.
	v, err = c.GetOrCompute(ctx, key(t, "absent"), nilCompute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != nil {
		t.Fatalf("expected cached nil value, got %v", v)
	}
	if calls != 1 {
		t.Fatalf("expected a single compute, got %d", calls)
	}
}
