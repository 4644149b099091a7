// Package metis recommends thinking frameworks for Go applications.
//
// metis holds a catalog of structured thinking frameworks (prioritization
// matrices, innovation checklists, analysis templates) and picks the one
// best suited to a stated topic, goal, and working constraints. It then
// drives the chosen framework's guided question flow to a markdown report.
//
// # Core Types
//
// The package is built around three layers:
//
//   - [Framework] - A self-describing catalog entry: metadata, questions, a
//     deterministic process function, and a report renderer
//   - [Registry] - Owns the catalog, maps legacy free-text commands, and
//     computes the base context-to-candidates ranking
//   - [Selector] - Filters and boosts the base ranking with [Criteria] and
//     per-user history, explains the result, and offers diversification,
//     pairwise compatibility, and journey features
//
// # Selecting a Framework
//
// Use [DefaultSelector] for the standard catalog, or compose your own
// registry:
//
//	selector := metis.DefaultSelector()
//	result, err := selector.Select(ctx, &metis.Context{
//	    Topic: "prioritize my project backlog",
//	    Goal:  "decide what to build this quarter",
//	}, &metis.Criteria{TimeAvailableMinutes: 15})
//	fmt.Println(result.Rationale)
//
// An empty result is a first-class outcome: when nothing survives
// filtering, Recommended and Alternates come back empty and Rationale is
// [NoMatchRationale]. Nothing matching is not an error.
//
// # Running a Framework
//
// A [Session] carries per-flow state (answers, progressive depth) so a
// single framework instance serves any number of concurrent sessions.
// Session processing composes from pipz primitives:
//
//	session := metis.NewSession(fw, fctx)
//	session.Answer("tasks", "ship release; fix build; reply to legal")
//	session, err := metis.GuidedFlow("guided").Process(ctx, session)
//	fmt.Println(session.Report)
//
// Pipeline helpers wrap pipz connectors for Session processing:
// [Sequence], [Filter], [Switch], [Gate], [Fallback], [Retry],
// [Backoff], [Timeout], [Handle], [RateLimiter], [CircuitBreaker],
// [Concurrent], [Race], [WorkerPool].
//
// # Selection History
//
// Per-user selection history lives behind [HistoryStore] with a
// resolution hierarchy:
//
//  1. Explicit store (selector.WithHistory(s))
//  2. Context value (metis.WithHistoryStore(ctx, s))
//  3. Global default (metis.SetHistoryStore(s))
//  4. The selector's built-in in-memory store
//
// [MemoryHistory] is the built-in implementation; [SoyHistory] persists
// history to Postgres via soy for deployments that snapshot across
// restarts.
//
// # Observability
//
// metis emits capitan signals throughout execution. See signals.go for
// the complete list of events including FrameworkRegistered,
// SelectionMade, SelectionEmpty, LegacyCommandResolved, JourneyResolved,
// SessionAdvanced, and ReportRendered.
package metis
