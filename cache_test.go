package main

import (
	"errors"
	"fmt"
	"testing"
)

func TestLookupOrClassifyCachesVerdicts(t *testing.T) {
	calls := 0
	cache := NewFoodTermCache(10, func(term string) (bool, error) {
		calls++
		return term == "apple", nil
	})

	if !cache.LookupOrClassify("apple") {
		t.Fatal("expected apple to classify as food")
	}
	if cache.LookupOrClassify("gravel") {
		t.Fatal("expected gravel to classify as non-food")
	}
	if calls != 2 {
		t.Fatalf("expected 2 classification calls, got %d", calls)
	}

	// Both verdicts are cached now; no further remote calls.
	cache.LookupOrClassify("apple")
	cache.LookupOrClassify("gravel")
	if calls != 2 {
		t.Fatalf("expected cached lookups to avoid remote calls, got %d calls", calls)
	}
}

func TestLookupOrClassifyFailureNotCached(t *testing.T) {
	calls := 0
	fail := true
	cache := NewFoodTermCache(10, func(term string) (bool, error) {
		calls++
		if fail {
			return false, errors.New("network down")
		}
		return true, nil
	})

	if cache.LookupOrClassify("apple") {
		t.Fatal("expected failed classification to return false")
	}
	if cache.Contains("apple") {
		t.Fatal("expected failed classification not to be cached")
	}

	// Once the source recovers, the same term classifies again.
	fail = false
	if !cache.LookupOrClassify("apple") {
		t.Fatal("expected retry to succeed after source recovery")
	}
	if calls != 2 {
		t.Fatalf("expected 2 classification calls, got %d", calls)
	}
}

func TestCacheEvictsOldestHalf(t *testing.T) {
	max := 10
	cache := NewFoodTermCache(max, func(term string) (bool, error) {
		return true, nil
	})

	// Fill past the limit; the insert that finds the cache over capacity
	// drops the oldest half first.
	for i := 0; i <= max; i++ {
		cache.Put(fmt.Sprintf("term-%02d", i), true)
	}
	if cache.Len() != max+1 {
		t.Fatalf("expected %d entries before eviction, got %d", max+1, cache.Len())
	}

	cache.Put("trigger", true)

	wantRemaining := (max+1)-(max+1)/2 + 1
	if cache.Len() != wantRemaining {
		t.Fatalf("expected %d entries after eviction, got %d", wantRemaining, cache.Len())
	}

	// Everything that survived was inserted after everything evicted.
	for i := 0; i < (max+1)/2; i++ {
		if cache.Contains(fmt.Sprintf("term-%02d", i)) {
			t.Fatalf("expected term-%02d to be evicted", i)
		}
	}
	for i := (max + 1) / 2; i <= max; i++ {
		if !cache.Contains(fmt.Sprintf("term-%02d", i)) {
			t.Fatalf("expected term-%02d to survive eviction", i)
		}
	}
	if !cache.Contains("trigger") {
		t.Fatal("expected trigger entry to be present after eviction")
	}
}

func TestCacheSnapshotKeepsInsertionOrder(t *testing.T) {
	cache := NewFoodTermCache(10, func(term string) (bool, error) {
		return false, errors.New("unused")
	})
	cache.Put("first", true)
	cache.Put("second", false)
	cache.Put("third", true)

	snap := cache.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("expected 3 snapshot entries, got %d", len(snap))
	}
	wantOrder := []string{"first", "second", "third"}
	for i, want := range wantOrder {
		if snap[i].Term != want {
			t.Fatalf("snapshot[%d] = %q, want %q", i, snap[i].Term, want)
		}
	}
	if snap[1].IsFood {
		t.Fatal("expected second entry verdict to be false")
	}
}
