package metis

import (
	"context"
	"fmt"
	"time"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/pipz"
)

// Session pipeline primitives. An execution driver feeds answers into a
// Session and runs these processors to move it through the
// questions → process → report cycle.

// NewAdvance creates a processor that repeatedly deepens a progressive
// session while its framework asks to go deeper. Non-progressive
// sessions pass through unchanged.
func NewAdvance(name string) pipz.Processor[*Session] {
	return pipz.Transform(pipz.Name(name), func(_ context.Context, s *Session) *Session {
		for s.Advance() {
		}
		return s
	})
}

// NewEvaluate creates a processor that runs the framework's Process over
// the session's collected answers and stores the output on the session.
// A missing required answer surfaces as a *ValidationError.
func NewEvaluate(name string) pipz.Processor[*Session] {
	return pipz.Apply(pipz.Name(name), func(ctx context.Context, s *Session) (*Session, error) {
		start := time.Now()

		out, err := s.Framework.Process(s.Answers, s.Context)
		if err != nil {
			capitan.Error(ctx, SessionEvaluated,
				FieldSessionID.Field(s.ID),
				FieldFrameworkID.Field(s.Framework.Descriptor().ID),
				FieldDuration.Field(time.Since(start)),
				FieldError.Field(err),
			)
			return s, fmt.Errorf("evaluate session %s: %w", s.ID, err)
		}

		s.Output = out
		s.UpdatedAt = time.Now()

		capitan.Emit(ctx, SessionEvaluated,
			FieldSessionID.Field(s.ID),
			FieldFrameworkID.Field(s.Framework.Descriptor().ID),
			FieldConfidence.Field(float32(out.Confidence)),
			FieldDuration.Field(time.Since(start)),
		)
		return s, nil
	})
}

// NewRender creates a processor that renders the session's output into a
// markdown report. Requires a prior NewEvaluate (or an Output set by the
// caller).
func NewRender(name string) pipz.Processor[*Session] {
	return pipz.Apply(pipz.Name(name), func(ctx context.Context, s *Session) (*Session, error) {
		if s.Output == nil {
			return s, fmt.Errorf("render session %s: no output to render", s.ID)
		}

		s.Report = s.Framework.Render(s.Output, s.Context)
		s.UpdatedAt = time.Now()

		capitan.Emit(ctx, ReportRendered,
			FieldSessionID.Field(s.ID),
			FieldFrameworkID.Field(s.Framework.Descriptor().ID),
			FieldReportSize.Field(len(s.Report)),
		)
		return s, nil
	})
}

// GuidedFlow composes the standard advance, evaluate, render cycle into
// one sequence.
//
// Example:
//
//	session := metis.NewSession(fw, fctx)
//	session.Answer("tasks", "ship the release; fix the build; reply to legal")
//	flow := metis.GuidedFlow("guided")
//	session, err := flow.Process(ctx, session)
//	fmt.Println(session.Report)
func GuidedFlow(name string) *pipz.Sequence[*Session] {
	return Sequence(name,
		NewAdvance(name+"-advance"),
		NewEvaluate(name+"-evaluate"),
		NewRender(name+"-render"),
	)
}
