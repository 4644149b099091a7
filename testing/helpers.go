// Package metistest provides test utilities for metis.
package metistest

import (
	"context"
	"sync"
	"testing"

	"github.com/zoobzio/metis"
)

// RecordingHistory implements metis.HistoryStore for testing without a
// database. Every call is captured; errors can be injected per method.
type RecordingHistory struct {
	mu      sync.Mutex
	entries map[string][]string

	// Records holds every (userKey, frameworkID) pair passed to Record,
	// in call order.
	Records [][2]string

	// RecentErr and RecordErr, when set, are returned by the matching
	// method instead of operating on the store.
	RecentErr error
	RecordErr error
}

// NewRecordingHistory creates an empty in-memory recording store.
func NewRecordingHistory() *RecordingHistory {
	return &RecordingHistory{
		entries: make(map[string][]string),
	}
}

// Recent implements metis.HistoryStore.
func (r *RecordingHistory) Recent(_ context.Context, userKey string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.RecentErr != nil {
		return nil, r.RecentErr
	}
	out := make([]string, len(r.entries[userKey]))
	copy(out, r.entries[userKey])
	return out, nil
}

// Record implements metis.HistoryStore.
func (r *RecordingHistory) Record(_ context.Context, userKey, frameworkID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.RecordErr != nil {
		return r.RecordErr
	}
	r.entries[userKey] = append(r.entries[userKey], frameworkID)
	r.Records = append(r.Records, [2]string{userKey, frameworkID})
	return nil
}

// Seed preloads a user's history, oldest first.
func (r *RecordingHistory) Seed(userKey string, frameworkIDs ...string) *RecordingHistory {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[userKey] = append(r.entries[userKey], frameworkIDs...)
	return r
}

// Verify RecordingHistory implements metis.HistoryStore.
var _ metis.HistoryStore = (*RecordingHistory)(nil)

// StubFramework builds a minimal catalog entry for selection tests. The
// single required question makes it runnable through a session too.
func StubFramework(id string, category metis.Category, difficulty metis.Difficulty, minutes int, tags ...string) metis.Framework {
	return &metis.Template{
		Meta: metis.Descriptor{
			ID:               id,
			Name:             id,
			Category:         category,
			Tags:             tags,
			Difficulty:       difficulty,
			EstimatedMinutes: minutes,
			SchemaVersion:    "test",
		},
		QuestionSet: [][]metis.Question{{
			{ID: "input", Prompt: "Describe the situation.", Kind: metis.KindText, Required: true},
		}},
	}
}

// NewTestSelector creates a selector over the given frameworks, backed
// by a fresh RecordingHistory. The store is returned for assertions.
func NewTestSelector(t *testing.T, fws ...metis.Framework) (*metis.Selector, *RecordingHistory) {
	t.Helper()
	r := metis.NewRegistry()
	for _, fw := range fws {
		if err := r.Register(fw); err != nil {
			t.Fatalf("failed to register %q: %v", fw.Descriptor().ID, err)
		}
	}
	store := NewRecordingHistory()
	return metis.NewSelector(r).WithHistory(store), store
}

// RequireRecommended asserts that the result recommends the expected
// framework ID.
func RequireRecommended(t *testing.T, result *metis.SelectionResult, frameworkID string) {
	t.Helper()
	if len(result.Recommended) != 1 {
		t.Fatalf("expected one recommendation, got %d", len(result.Recommended))
	}
	if got := result.Recommended[0].Framework.ID; got != frameworkID {
		t.Fatalf("expected recommendation %q, got %q", frameworkID, got)
	}
}

// RequireNoMatch asserts that the result is the empty no-match outcome.
func RequireNoMatch(t *testing.T, result *metis.SelectionResult) {
	t.Helper()
	if len(result.Recommended) != 0 {
		t.Fatalf("expected no recommendation, got %d", len(result.Recommended))
	}
	if result.Rationale != metis.NoMatchRationale {
		t.Fatalf("expected the no-match rationale, got %q", result.Rationale)
	}
}
