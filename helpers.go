package metis

import (
	"context"
	"time"

	"github.com/zoobzio/pipz"
)

// -----------------------------------------------------------------------------
// Adapter Functions - wrap functions to create Session processors
// -----------------------------------------------------------------------------

// Do creates a processor from a custom function that can fail.
// This is the easiest way to add custom logic to a flow.
//
// Example:
//
//	validate := metis.Do("require-topic", func(ctx context.Context, s *metis.Session) (*metis.Session, error) {
//	    if s.Context == nil || s.Context.Topic == "" {
//	        return s, fmt.Errorf("a topic is required before starting")
//	    }
//	    return s, nil
//	})
func Do(name string, fn func(context.Context, *Session) (*Session, error)) pipz.Processor[*Session] {
	return pipz.Apply(pipz.Name(name), fn)
}

// Transform creates a processor from a pure transformation function.
// Use this when your operation cannot fail.
//
// Example:
//
//	stamp := metis.Transform("stamp", func(ctx context.Context, s *metis.Session) *metis.Session {
//	    s.Answer("completed_at", time.Now().Format(time.RFC3339))
//	    return s
//	})
func Transform(name string, fn func(context.Context, *Session) *Session) pipz.Processor[*Session] {
	return pipz.Transform(pipz.Name(name), fn)
}

// Effect creates a processor that performs a side effect without
// modifying the session. Use this for logging, metrics, or other
// observational operations.
func Effect(name string, fn func(context.Context, *Session) error) pipz.Processor[*Session] {
	return pipz.Effect(pipz.Name(name), fn)
}

// Mutate creates a processor that conditionally modifies a session.
// The modification is only applied if the predicate returns true.
func Mutate(name string, fn func(context.Context, *Session) *Session, predicate func(context.Context, *Session) bool) pipz.Processor[*Session] {
	return pipz.Mutate(pipz.Name(name), fn, predicate)
}

// Enrich creates a processor that optionally enhances a session.
// Unlike Do, errors are logged but don't stop the flow.
func Enrich(name string, fn func(context.Context, *Session) (*Session, error)) pipz.Processor[*Session] {
	return pipz.Enrich(pipz.Name(name), fn)
}

// -----------------------------------------------------------------------------
// Sequential Connectors - process sessions in order
// -----------------------------------------------------------------------------

// Sequence creates a sequential pipeline of session processors.
// Each processor receives the output of the previous one.
//
// Example:
//
//	flow := metis.Sequence("five-whys-flow",
//	    metis.NewAdvance("advance"),
//	    metis.NewEvaluate("evaluate"),
//	    metis.NewRender("render"),
//	)
func Sequence(name string, processors ...pipz.Chainable[*Session]) *pipz.Sequence[*Session] {
	return pipz.NewSequence(pipz.Name(name), processors...)
}

// Filter runs the processor only when the predicate passes; otherwise
// the session passes through unchanged.
//
// Example:
//
//	renderIfDone := metis.Filter("render-if-done",
//	    func(ctx context.Context, s *metis.Session) bool { return s.Output != nil },
//	    metis.NewRender("render"),
//	)
func Filter(name string, predicate func(context.Context, *Session) bool, processor pipz.Chainable[*Session]) *pipz.Filter[*Session] {
	return pipz.NewFilter(pipz.Name(name), predicate, processor)
}

// Switch routes a session to different processors based on a condition.
//
// Example:
//
//	byCategory := metis.Switch("by-category", func(ctx context.Context, s *metis.Session) metis.Category {
//	    return s.Framework.Descriptor().Category
//	})
func Switch[K comparable](name string, condition func(context.Context, *Session) K) *pipz.Switch[*Session, K] {
	return pipz.NewSwitch(pipz.Name(name), condition)
}

// Gate creates a pass/fail checkpoint. Unlike Filter there is no wrapped
// processor; the session passes through either way, and the predicate
// exists for its observable side effects in the flow trace.
//
// Example:
//
//	answered := metis.Gate("answered", func(ctx context.Context, s *metis.Session) bool {
//	    _, ok := s.Answers.Get("topic")
//	    return ok
//	})
func Gate(name string, predicate func(context.Context, *Session) bool) pipz.Processor[*Session] {
	return pipz.Apply(pipz.Name(name), func(ctx context.Context, s *Session) (*Session, error) {
		predicate(ctx, s)
		return s, nil
	})
}

// -----------------------------------------------------------------------------
// Reliability Connectors
// -----------------------------------------------------------------------------

// Fallback tries each processor in order until one succeeds.
func Fallback(name string, processors ...pipz.Chainable[*Session]) *pipz.Fallback[*Session] {
	return pipz.NewFallback(pipz.Name(name), processors...)
}

// Retry retries the processor up to maxAttempts times on failure.
func Retry(name string, processor pipz.Chainable[*Session], maxAttempts int) *pipz.Retry[*Session] {
	return pipz.NewRetry(pipz.Name(name), processor, maxAttempts)
}

// Backoff retries with exponential backoff between attempts.
func Backoff(name string, processor pipz.Chainable[*Session], maxAttempts int, baseDelay time.Duration) *pipz.Backoff[*Session] {
	return pipz.NewBackoff(pipz.Name(name), processor, maxAttempts, baseDelay)
}

// Timeout enforces a time limit on the processor.
func Timeout(name string, processor pipz.Chainable[*Session], duration time.Duration) *pipz.Timeout[*Session] {
	return pipz.NewTimeout(pipz.Name(name), processor, duration)
}

// Handle invokes an error handler when the primary processor fails,
// without stopping the pipeline. The handler receives a
// pipz.Error[*Session] with full error context.
//
// Example:
//
//	errorLogger := pipz.Effect(pipz.Name("log-error"), func(ctx context.Context, err *pipz.Error[*metis.Session]) error {
//	    log.Printf("session %s failed: %v", err.InputData.ID, err.Err)
//	    return nil
//	})
//	observed := metis.Handle("observed", riskyProcessor, errorLogger)
func Handle(name string, processor pipz.Chainable[*Session], errorHandler pipz.Chainable[*pipz.Error[*Session]]) *pipz.Handle[*Session] {
	return pipz.NewHandle(pipz.Name(name), processor, errorHandler)
}

// RateLimiter enforces a requests-per-second limit on session
// processing. Useful when a render or evaluate step calls out to a
// rate-limited service.
func RateLimiter(name string, requestsPerSecond float64, burst int) *pipz.RateLimiter[*Session] {
	return pipz.NewRateLimiter[*Session](pipz.Name(name), requestsPerSecond, burst)
}

// CircuitBreaker stops calling a repeatedly failing processor until the
// reset timeout elapses.
func CircuitBreaker(name string, processor pipz.Chainable[*Session], failureThreshold int, resetTimeout time.Duration) *pipz.CircuitBreaker[*Session] {
	return pipz.NewCircuitBreaker(pipz.Name(name), processor, failureThreshold, resetTimeout)
}

// -----------------------------------------------------------------------------
// Parallel Connectors - process sessions concurrently
// These require *Session to implement pipz.Cloner[*Session] (see session.go Clone())
// -----------------------------------------------------------------------------

// Concurrent runs all processors in parallel and returns the original
// session. Each processor receives an isolated clone. Use the reducer to
// aggregate results.
func Concurrent(name string, reducer func(original *Session, results map[pipz.Name]*Session, errors map[pipz.Name]error) *Session, processors ...pipz.Chainable[*Session]) *pipz.Concurrent[*Session] {
	return pipz.NewConcurrent(pipz.Name(name), reducer, processors...)
}

// Race runs all processors in parallel and returns the first successful
// result.
func Race(name string, processors ...pipz.Chainable[*Session]) *pipz.Race[*Session] {
	return pipz.NewRace(pipz.Name(name), processors...)
}

// WorkerPool creates a bounded parallel executor with a fixed number of
// workers.
func WorkerPool(name string, workers int, processors ...pipz.Chainable[*Session]) *pipz.WorkerPool[*Session] {
	return pipz.NewWorkerPool(pipz.Name(name), workers, processors...)
}
