package metis

import (
	"context"
	"sync"
)

// HistoryStore is the per-user selection history abstraction. The core
// needs only an in-memory map shape; implementations may snapshot to
// durable storage (see SoyHistory).
//
// Record must serialize concurrent read-modify-write for the same user
// key; calls for distinct keys must not contend.
type HistoryStore interface {
	// Recent returns the user's chosen framework IDs, oldest first, at
	// most DefaultHistoryCapacity entries. A user with no history yields
	// an empty slice, not an error.
	Recent(ctx context.Context, userKey string) ([]string, error)

	// Record appends a chosen framework ID to the user's history,
	// evicting the oldest entry once the buffer is full.
	Record(ctx context.Context, userKey string, frameworkID string) error
}

// Context key for history store.
type historyKeyType struct{}

var historyKey = historyKeyType{}

// Global history store fallback.
var (
	globalHistory   HistoryStore
	globalHistoryMu sync.RWMutex
)

// SetHistoryStore sets the global fallback history store. It is used
// when no context or selector-level store is available.
func SetHistoryStore(s HistoryStore) {
	globalHistoryMu.Lock()
	defer globalHistoryMu.Unlock()
	globalHistory = s
}

// GetHistoryStore returns the global history store, if set.
func GetHistoryStore() HistoryStore {
	globalHistoryMu.RLock()
	defer globalHistoryMu.RUnlock()
	return globalHistory
}

// WithHistoryStore adds a history store to the context.
func WithHistoryStore(ctx context.Context, s HistoryStore) context.Context {
	return context.WithValue(ctx, historyKey, s)
}

// HistoryStoreFromContext retrieves the history store from context, if
// present.
func HistoryStoreFromContext(ctx context.Context) (HistoryStore, bool) {
	s, ok := ctx.Value(historyKey).(HistoryStore)
	return s, ok
}

// ResolveHistoryStore determines which store to use based on resolution
// order:
//  1. Selector-level store (passed as argument)
//  2. Context store
//  3. Global store
//  4. A fresh MemoryHistory is never substituted here; callers that want
//     one construct it explicitly so tests stay isolated.
func ResolveHistoryStore(ctx context.Context, selectorStore HistoryStore) HistoryStore {
	if selectorStore != nil {
		return selectorStore
	}
	if s, ok := HistoryStoreFromContext(ctx); ok {
		return s
	}
	return GetHistoryStore()
}

// MemoryHistory is the built-in in-memory HistoryStore: one bounded FIFO
// ring per user key. Distinct users never contend; same-key calls
// serialize on the ring's own lock.
type MemoryHistory struct {
	capacity int

	mu    sync.RWMutex // guards the rings map only
	rings map[string]*historyRing
}

// historyRing is one user's bounded FIFO of chosen framework IDs.
type historyRing struct {
	mu  sync.Mutex
	ids []string
}

// NewMemoryHistory creates an in-memory history store with the default
// per-user capacity.
func NewMemoryHistory() *MemoryHistory {
	return &MemoryHistory{
		capacity: DefaultHistoryCapacity,
		rings:    make(map[string]*historyRing),
	}
}

// WithCapacity overrides the per-user ring capacity. Values below one
// are ignored.
func (m *MemoryHistory) WithCapacity(n int) *MemoryHistory {
	if n >= 1 {
		m.capacity = n
	}
	return m
}

// ring returns the user's ring, creating it lazily on first use.
func (m *MemoryHistory) ring(userKey string) *historyRing {
	m.mu.RLock()
	r, ok := m.rings[userKey]
	m.mu.RUnlock()
	if ok {
		return r
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok = m.rings[userKey]; ok {
		return r
	}
	r = &historyRing{}
	m.rings[userKey] = r
	return r
}

// Recent implements HistoryStore.
func (m *MemoryHistory) Recent(_ context.Context, userKey string) ([]string, error) {
	m.mu.RLock()
	r, ok := m.rings[userKey]
	m.mu.RUnlock()
	if !ok {
		return []string{}, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.ids))
	copy(out, r.ids)
	return out, nil
}

// Record implements HistoryStore.
func (m *MemoryHistory) Record(_ context.Context, userKey string, frameworkID string) error {
	r := m.ring(userKey)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids = append(r.ids, frameworkID)
	if len(r.ids) > m.capacity {
		r.ids = r.ids[len(r.ids)-m.capacity:]
	}
	return nil
}

// Compile-time check.
var _ HistoryStore = (*MemoryHistory)(nil)

// historyBoost converts a use count into a score boost, capped so
// repeated picks stop compounding after three uses.
func historyBoost(occurrences int) float64 {
	boost := float64(occurrences) * boostHistoryPerUse
	if boost > boostHistoryCap {
		boost = boostHistoryCap
	}
	return boost
}
