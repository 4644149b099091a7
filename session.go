package metis

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/zoobzio/capitan"
)

// Session is the per-flow state of one user working through one
// framework: collected answers, the current progressive depth, and the
// eventual output and report. Depth lives here, never on the shared
// framework, so one framework instance can serve any number of
// concurrent sessions.
//
// A Session is owned by a single flow. For parallel processing use
// Clone to give each goroutine an independent copy.
type Session struct {
	ID        string
	Framework Framework
	Context   *Context

	Answers Answers
	Depth   int // 1-based progressive depth

	Output *Output
	Report string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSession starts a guided flow for a framework. Depth begins at 1;
// prior answers from the context seed the session's answer set.
func NewSession(fw Framework, fctx *Context) *Session {
	s := &Session{
		ID:        uuid.New().String(),
		Framework: fw,
		Context:   fctx,
		Answers:   make(Answers),
		Depth:     1,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if fctx != nil {
		for k, v := range fctx.PriorAnswers {
			s.Answers[k] = v
		}
	}

	capitan.Emit(context.Background(), SessionStarted,
		FieldSessionID.Field(s.ID),
		FieldFrameworkID.Field(fw.Descriptor().ID),
	)
	return s
}

// CurrentQuestions returns the framework's questions for the session's
// current depth.
func (s *Session) CurrentQuestions() []Question {
	return s.Framework.Questions(s.Context, s.Depth)
}

// Answer records one answer by question ID.
func (s *Session) Answer(questionID, value string) {
	s.Answers[questionID] = value
	s.UpdatedAt = time.Now()
}

// Advance moves a progressive framework one level deeper when its
// Deeper check passes, clamped to the framework's max depth.
// Non-progressive frameworks never advance. Reports whether the depth
// changed.
func (s *Session) Advance() bool {
	prog, ok := s.Framework.(Progressive)
	if !ok {
		return false
	}
	if !prog.Deeper(s.Answers, s.Depth) {
		return false
	}
	s.Depth++
	s.UpdatedAt = time.Now()

	capitan.Emit(context.Background(), SessionAdvanced,
		FieldSessionID.Field(s.ID),
		FieldFrameworkID.Field(s.Framework.Descriptor().ID),
		FieldDepth.Field(s.Depth),
	)
	return true
}

// ResetDepth returns the session to depth 1, clearing any produced
// output. Answers are kept.
func (s *Session) ResetDepth() {
	s.Depth = 1
	s.Output = nil
	s.Report = ""
	s.UpdatedAt = time.Now()
}

// Clone creates a deep copy of the session for parallel processing.
// The Framework and Context references are shared; both are read-only
// from the session's point of view.
func (s *Session) Clone() *Session {
	answers := make(Answers, len(s.Answers))
	for k, v := range s.Answers {
		answers[k] = v
	}

	clone := &Session{
		ID:        s.ID,
		Framework: s.Framework,
		Context:   s.Context,
		Answers:   answers,
		Depth:     s.Depth,
		Report:    s.Report,
		CreatedAt: s.CreatedAt,
		UpdatedAt: time.Now(),
	}
	if s.Output != nil {
		out := *s.Output
		out.Insights = append([]string(nil), s.Output.Insights...)
		out.Recommendations = append([]string(nil), s.Output.Recommendations...)
		out.NextSteps = append([]string(nil), s.Output.NextSteps...)
		if s.Output.Data != nil {
			out.Data = make(map[string]any, len(s.Output.Data))
			for k, v := range s.Output.Data {
				out.Data[k] = v
			}
		}
		clone.Output = &out
	}
	return clone
}

// Compile-time check: *Session must implement pipz.Cloner[*Session].
var _ interface{ Clone() *Session } = (*Session)(nil)
