package metis

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/zoobzio/capitan"
)

// waitFor polls until ready reports true or the deadline passes.
func waitFor(ready func() bool) bool {
	deadline := time.Now().Add(time.Second)
	for {
		if ready() {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(time.Millisecond)
	}
}

// TestSelectionMadeEvent verifies SelectionMade signal emission.
func TestSelectionMadeEvent(t *testing.T) {
	type selectionData struct {
		userKey     string
		frameworkID string
		candidates  int
	}

	var mu sync.Mutex
	var received *selectionData

	listener := capitan.Hook(SelectionMade, func(_ context.Context, e *capitan.Event) {
		userKey, _ := FieldUserKey.From(e)
		frameworkID, _ := FieldFrameworkID.From(e)
		candidates, _ := FieldCandidateCount.From(e)
		mu.Lock()
		received = &selectionData{userKey, frameworkID, candidates}
		mu.Unlock()
	})
	defer listener.Close()

	s := prioritizationSelector(t)
	fctx := &Context{
		Topic: "prioritize my backlog",
		Hints: map[string]string{HintUserKey: "signal-user"},
	}
	if _, err := s.Select(context.Background(), fctx, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !waitFor(func() bool {
		mu.Lock()
		defer mu.Unlock()
		return received != nil
	}) {
		t.Fatal("expected SelectionMade event")
	}

	mu.Lock()
	defer mu.Unlock()
	if received.userKey != "signal-user" {
		t.Errorf("expected user_key 'signal-user', got %q", received.userKey)
	}
	if received.frameworkID != "backlog-triage" {
		t.Errorf("expected framework_id 'backlog-triage', got %q", received.frameworkID)
	}
	if received.candidates != 1 {
		t.Errorf("expected candidate_count 1, got %d", received.candidates)
	}
}

// TestLegacyCommandMissedEvent verifies the miss signal carries the
// nearest known command.
func TestLegacyCommandMissedEvent(t *testing.T) {
	type missData struct {
		command string
		nearest string
	}

	var mu sync.Mutex
	var received *missData

	listener := capitan.Hook(LegacyCommandMissed, func(_ context.Context, e *capitan.Event) {
		command, _ := FieldCommand.From(e)
		nearest, _ := FieldNearest.From(e)
		mu.Lock()
		received = &missData{command, nearest}
		mu.Unlock()
	})
	defer listener.Close()

	r := NewRegistry()
	r.RegisterLegacy("swot", "swot-analysis")
	if _, ok := r.ResolveLegacyCommand("swpt"); ok {
		t.Fatal("expected a miss")
	}

	if !waitFor(func() bool {
		mu.Lock()
		defer mu.Unlock()
		return received != nil
	}) {
		t.Fatal("expected LegacyCommandMissed event")
	}

	mu.Lock()
	defer mu.Unlock()
	if received.command != "swpt" {
		t.Errorf("expected command 'swpt', got %q", received.command)
	}
	if received.nearest != "swot" {
		t.Errorf("expected nearest_command 'swot', got %q", received.nearest)
	}
}

// TestSessionAdvancedEvent verifies depth emission on advancement.
func TestSessionAdvancedEvent(t *testing.T) {
	var mu sync.Mutex
	var depths []int

	listener := capitan.Hook(SessionAdvanced, func(_ context.Context, e *capitan.Event) {
		depth, _ := FieldDepth.From(e)
		mu.Lock()
		depths = append(depths, depth)
		mu.Unlock()
	})
	defer listener.Close()

	s := NewSession(NewFiveWhys(), nil)
	s.Answer("problem", "deploys fail")
	s.Answer("why_1", "the batch job saturates the database")
	if !s.Advance() {
		t.Fatal("expected advancement")
	}

	if !waitFor(func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(depths) > 0
	}) {
		t.Fatal("expected SessionAdvanced event")
	}

	mu.Lock()
	defer mu.Unlock()
	if depths[0] != 2 {
		t.Errorf("expected depth 2, got %d", depths[0])
	}
}
