package metis

import (
	"context"
	"fmt"
	"sync"
	"testing"
)

func TestMemoryHistoryEmpty(t *testing.T) {
	m := NewMemoryHistory()

	recent, err := m.Recent(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if recent == nil {
		t.Fatal("expected an empty slice, not nil")
	}
	if len(recent) != 0 {
		t.Errorf("expected no history, got %v", recent)
	}
}

func TestMemoryHistoryOrderAndEviction(t *testing.T) {
	m := NewMemoryHistory()
	ctx := context.Background()

	for i := 0; i < DefaultHistoryCapacity+3; i++ {
		if err := m.Record(ctx, "u", fmt.Sprintf("fw-%d", i)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	recent, err := m.Recent(ctx, "u")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recent) != DefaultHistoryCapacity {
		t.Fatalf("expected %d entries, got %d", DefaultHistoryCapacity, len(recent))
	}
	// Oldest three were evicted; the survivors stay oldest-first.
	if recent[0] != "fw-3" {
		t.Errorf("expected oldest survivor fw-3, got %s", recent[0])
	}
	if recent[len(recent)-1] != fmt.Sprintf("fw-%d", DefaultHistoryCapacity+2) {
		t.Errorf("expected newest entry last, got %s", recent[len(recent)-1])
	}
}

func TestMemoryHistoryKeysIsolated(t *testing.T) {
	m := NewMemoryHistory()
	ctx := context.Background()

	if err := m.Record(ctx, "alice", "swot-analysis"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.Record(ctx, "bob", "five-whys"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	alice, _ := m.Recent(ctx, "alice")
	bob, _ := m.Recent(ctx, "bob")
	if len(alice) != 1 || alice[0] != "swot-analysis" {
		t.Errorf("alice history wrong: %v", alice)
	}
	if len(bob) != 1 || bob[0] != "five-whys" {
		t.Errorf("bob history wrong: %v", bob)
	}
}

func TestMemoryHistoryRecentIsACopy(t *testing.T) {
	m := NewMemoryHistory()
	ctx := context.Background()

	if err := m.Record(ctx, "u", "a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	recent, _ := m.Recent(ctx, "u")
	recent[0] = "mutated"

	again, _ := m.Recent(ctx, "u")
	if again[0] != "a" {
		t.Error("Recent must return a copy, not the backing slice")
	}
}

func TestMemoryHistoryWithCapacity(t *testing.T) {
	m := NewMemoryHistory().WithCapacity(2)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		if err := m.Record(ctx, "u", id); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	recent, _ := m.Recent(ctx, "u")
	if len(recent) != 2 || recent[0] != "b" || recent[1] != "c" {
		t.Errorf("expected [b c], got %v", recent)
	}

	// Non-positive capacities are ignored.
	if got := NewMemoryHistory().WithCapacity(0).capacity; got != DefaultHistoryCapacity {
		t.Errorf("expected default capacity, got %d", got)
	}
}

func TestMemoryHistoryConcurrentRecord(t *testing.T) {
	m := NewMemoryHistory()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("user-%d", n%4)
			for j := 0; j < 50; j++ {
				if err := m.Record(ctx, key, "x"); err != nil {
					t.Errorf("unexpected error: %v", err)
					return
				}
				if _, err := m.Recent(ctx, key); err != nil {
					t.Errorf("unexpected error: %v", err)
					return
				}
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < 4; i++ {
		recent, _ := m.Recent(ctx, fmt.Sprintf("user-%d", i))
		if len(recent) != DefaultHistoryCapacity {
			t.Errorf("user-%d: expected full ring, got %d", i, len(recent))
		}
	}
}

func TestHistoryBoostCap(t *testing.T) {
	cases := []struct {
		occurrences int
		want        float64
	}{
		{1, 0.05},
		{2, 0.10},
		{3, 0.15},
		{4, 0.15},
		{10, 0.15},
	}
	for _, tc := range cases {
		got := historyBoost(tc.occurrences)
		if diff := got - tc.want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("historyBoost(%d) = %f, want %f", tc.occurrences, got, tc.want)
		}
	}
}

func TestHistoryStoreResolution(t *testing.T) {
	explicit := NewMemoryHistory()
	inContext := NewMemoryHistory()
	global := NewMemoryHistory()

	SetHistoryStore(global)
	defer SetHistoryStore(nil)

	ctx := WithHistoryStore(context.Background(), inContext)

	if got := ResolveHistoryStore(ctx, explicit); got != HistoryStore(explicit) {
		t.Error("explicit store must win")
	}
	if got := ResolveHistoryStore(ctx, nil); got != HistoryStore(inContext) {
		t.Error("context store must win over global")
	}
	if got := ResolveHistoryStore(context.Background(), nil); got != HistoryStore(global) {
		t.Error("global store is the final fallback")
	}

	SetHistoryStore(nil)
	if got := ResolveHistoryStore(context.Background(), nil); got != nil {
		t.Error("expected nil when nothing is configured")
	}
}
