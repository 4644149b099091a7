package metis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNewSessionSeedsPriorAnswers(t *testing.T) {
	fw := NewFiveWhys()
	fctx := &Context{
		Topic:        "deploys keep failing",
		PriorAnswers: Answers{"problem": "deploys fail every friday"},
	}

	s := NewSession(fw, fctx)
	if s.ID == "" {
		t.Error("expected a generated session ID")
	}
	if s.Depth != 1 {
		t.Errorf("expected depth 1, got %d", s.Depth)
	}
	if v, ok := s.Answers.Get("problem"); !ok || v != "deploys fail every friday" {
		t.Errorf("prior answers not seeded: %v", s.Answers)
	}
}

func TestSessionCurrentQuestions(t *testing.T) {
	s := NewSession(NewFiveWhys(), nil)

	qs := s.CurrentQuestions()
	if len(qs) != 2 || qs[0].ID != "problem" || qs[1].ID != "why_1" {
		t.Errorf("unexpected depth-1 questions: %+v", qs)
	}
}

func TestSessionAdvanceProgressive(t *testing.T) {
	s := NewSession(NewFiveWhys(), nil)
	s.Answer("problem", "deploys fail every friday")
	s.Answer("why_1", "the friday batch job saturates the database")

	if !s.Advance() {
		t.Fatal("expected to advance past depth 1")
	}
	if s.Depth != 2 {
		t.Errorf("expected depth 2, got %d", s.Depth)
	}

	// A bedrock-style answer stops the descent.
	s.Answer("why_2", "because we never sized the connection pool")
	if s.Advance() {
		t.Error("expected the bedrock heuristic to stop advancement")
	}
	if s.Depth != 2 {
		t.Errorf("depth must be unchanged, got %d", s.Depth)
	}
}

func TestSessionAdvanceStopsWithoutAnswer(t *testing.T) {
	s := NewSession(NewFiveWhys(), nil)
	s.Answer("problem", "deploys fail")
	// No why_1 answer: nothing to dig into yet.
	if s.Advance() {
		t.Error("expected no advancement without the current depth's answer")
	}
}

func TestSessionAdvanceNonProgressive(t *testing.T) {
	s := NewSession(NewSWOT(), nil)
	s.Answer("strengths", "fast shipping")
	if s.Advance() {
		t.Error("non-progressive frameworks never advance")
	}
}

func TestSessionAdvanceClampsAtMaxDepth(t *testing.T) {
	s := NewSession(NewFiveWhys(), nil)
	s.Answer("problem", "deploys fail")
	for depth := 1; depth <= fiveWhysMaxDepth; depth++ {
		s.Answer(fmt.Sprintf("why_%d", depth), "the pipeline stalls under load")
	}

	for s.Advance() {
	}
	if s.Depth != fiveWhysMaxDepth {
		t.Errorf("expected depth clamped at %d, got %d", fiveWhysMaxDepth, s.Depth)
	}
}

func TestSessionResetDepth(t *testing.T) {
	s := NewSession(NewFiveWhys(), nil)
	s.Answer("problem", "deploys fail")
	s.Answer("why_1", "the batch job saturates the database")
	s.Advance()
	s.Output = &Output{Confidence: 0.5}
	s.Report = "stale"

	s.ResetDepth()
	if s.Depth != 1 {
		t.Errorf("expected depth 1 after reset, got %d", s.Depth)
	}
	if s.Output != nil || s.Report != "" {
		t.Error("reset must clear output and report")
	}
	if _, ok := s.Answers.Get("why_1"); !ok {
		t.Error("reset must keep answers")
	}
}

func TestSessionCloneIsIndependent(t *testing.T) {
	s := NewSession(NewSWOT(), &Context{Topic: "market entry"})
	s.Answer("strengths", "fast shipping")
	s.Output = &Output{
		Insights: []string{"original"},
		Data:     map[string]any{"k": "v"},
	}

	c := s.Clone()
	c.Answer("strengths", "changed")
	c.Output.Insights[0] = "mutated"
	c.Output.Data["k"] = "other"

	if v, _ := s.Answers.Get("strengths"); v != "fast shipping" {
		t.Error("clone answers must not alias the original")
	}
	if s.Output.Insights[0] != "original" {
		t.Error("clone output slices must not alias the original")
	}
	if s.Output.Data["k"] != "v" {
		t.Error("clone output data must not alias the original")
	}
	if c.Framework != s.Framework {
		t.Error("clones share the stateless framework")
	}
}

func TestGuidedFlowEndToEnd(t *testing.T) {
	s := NewSession(NewFiveWhys(), &Context{Topic: "deploys keep failing"})
	s.Answer("problem", "deploys fail every friday")
	s.Answer("why_1", "the friday batch job saturates the database")
	s.Answer("why_2", "because we never sized the connection pool")

	flow := GuidedFlow("guided")
	s, err := flow.Process(context.Background(), s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Depth != 2 {
		t.Errorf("expected the flow to stop at depth 2, got %d", s.Depth)
	}
	if s.Output == nil {
		t.Fatal("expected an output")
	}
	if s.Output.Confidence <= 0 || s.Output.Confidence > 1 {
		t.Errorf("confidence out of range: %f", s.Output.Confidence)
	}
	if !strings.Contains(s.Report, "# Five Whys Report") {
		t.Errorf("unexpected report:\n%s", s.Report)
	}
	if !strings.Contains(s.Report, "Treat as root cause") {
		t.Errorf("report missing root cause recommendation:\n%s", s.Report)
	}
}

func TestGuidedFlowValidationError(t *testing.T) {
	s := NewSession(NewFiveWhys(), nil)
	// problem and why_1 are required and missing.

	flow := GuidedFlow("guided")
	_, err := flow.Process(context.Background(), s)
	if err == nil {
		t.Fatal("expected a validation error")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError in the chain, got %v", err)
	}
}

func TestRenderWithoutOutputFails(t *testing.T) {
	s := NewSession(NewSWOT(), nil)
	render := NewRender("render")

	if _, err := render.Process(context.Background(), s); err == nil {
		t.Error("expected an error when no output exists")
	}
}
