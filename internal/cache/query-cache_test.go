package cache

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestQueryCachesFreshValue(t *testing.T) {
	qc := NewQueryCache(time.Minute)
	calls := 0
	fetch := func() (any, error) {
		calls++
		return "v1", nil
	}

	for i := 0; i < 3; i++ {
		v, err := qc.Query(Key("courses", "20", "0"), fetch)
		if err != nil {
			t.Fatal(err)
		}
		if v != "v1" {
			t.Fatalf("got %v", v)
		}
	}
	if calls != 1 {
		t.Fatalf("fetch ran %d times, want 1", calls)
	}
}

func TestQueryDoesNotCacheErrors(t *testing.T) {
	qc := NewQueryCache(time.Minute)
	calls := 0
	boom := errors.New("db down")
	fetch := func() (any, error) {
		calls++
		if calls == 1 {
			return nil, boom
		}
		return "ok", nil
	}

	if _, err := qc.Query("courses", fetch); !errors.Is(err, boom) {
		t.Fatalf("expected fetch error, got %v", err)
	}
	v, err := qc.Query("courses", fetch)
	if err != nil || v != "ok" {
		t.Fatalf("retry after error: v=%v err=%v", v, err)
	}
}

func TestInvalidateDropsEntityKeysOnly(t *testing.T) {
	qc := NewQueryCache(time.Minute)
	fill := func(key, val string) {
		_, _ = qc.Query(key, func() (any, error) { return val, nil })
	}
	fill(Key("courses", "20", "0"), "c")
	fill(Key("courses", "featured"), "cf")
	fill(Key("blogs", "20", "0"), "b")

	qc.Invalidate("courses")

	refetched := 0
	check := func(key, cached string) {
		v, _ := qc.Query(key, func() (any, error) {
			refetched++
			return "fresh", nil
		})
		if cached != "" && v != cached {
			t.Fatalf("%s: got %v, want cached %q", key, v, cached)
		}
	}
	check(Key("blogs", "20", "0"), "b")
	check(Key("courses", "20", "0"), "")
	check(Key("courses", "featured"), "")
	if refetched != 2 {
		t.Fatalf("refetched %d keys, want 2", refetched)
	}
}

func TestQueryDeduplicatesConcurrentFetches(t *testing.T) {
	qc := NewQueryCache(time.Minute)
	var calls int32
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = qc.Query("universities", func() (any, error) {
				atomic.AddInt32(&calls, 1)
				time.Sleep(10 * time.Millisecond)
				return "u", nil
			})
		}()
	}
	wg.Wait()

	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Fatalf("fetch ran %d times for concurrent readers, want 1", n)
	}
}

func TestQueryRefetchesAfterTTL(t *testing.T) {
	qc := NewQueryCache(20 * time.Millisecond)
	calls := 0
	fetch := func() (any, error) {
		calls++
		return calls, nil
	}

	_, _ = qc.Query("events", fetch)
	time.Sleep(30 * time.Millisecond)
	v, _ := qc.Query("events", fetch)
	if v != 2 {
		t.Fatalf("expected refetch after ttl, got %v", v)
	}
}
