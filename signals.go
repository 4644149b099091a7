package metis

import "github.com/zoobzio/capitan"

// Signal definitions for catalog and selection events.
// Signals follow the pattern: metis.<entity>.<event>.
var (
	// Catalog lifecycle signals.
	FrameworkRegistered = capitan.NewSignal(
		"metis.framework.registered",
		"Framework added to the registry",
	)
	FrameworkReplaced = capitan.NewSignal(
		"metis.framework.replaced",
		"Framework re-registered under an existing ID",
	)

	// Selection signals.
	SelectionMade = capitan.NewSignal(
		"metis.selection.made",
		"Selector produced a recommendation",
	)
	SelectionEmpty = capitan.NewSignal(
		"metis.selection.empty",
		"No framework survived filtering for the given context",
	)

	// Legacy command signals.
	LegacyCommandResolved = capitan.NewSignal(
		"metis.legacy.resolved",
		"Free-text command mapped to a framework",
	)
	LegacyCommandMissed = capitan.NewSignal(
		"metis.legacy.missed",
		"Free-text command matched nothing in the legacy table",
	)

	// Journey signals.
	JourneyResolved = capitan.NewSignal(
		"metis.journey.resolved",
		"Journey lookup produced a framework sequence",
	)

	// Session lifecycle signals.
	SessionStarted = capitan.NewSignal(
		"metis.session.started",
		"Guided flow session created for a framework",
	)
	SessionAdvanced = capitan.NewSignal(
		"metis.session.advanced",
		"Progressive session moved to a deeper level",
	)
	SessionEvaluated = capitan.NewSignal(
		"metis.session.evaluated",
		"Session answers processed into a framework output",
	)
	ReportRendered = capitan.NewSignal(
		"metis.report.rendered",
		"Markdown report produced for a session output",
	)
)

// Field keys for metis event data.
var (
	// Framework metadata.
	FieldFrameworkID   = capitan.NewStringKey("framework_id")
	FieldFrameworkName = capitan.NewStringKey("framework_name")
	FieldCategory      = capitan.NewStringKey("category")
	FieldDifficulty    = capitan.NewStringKey("difficulty")

	// Selection metadata.
	FieldIntent         = capitan.NewStringKey("intent")
	FieldScore          = capitan.NewFloat32Key("score")
	FieldUserKey        = capitan.NewStringKey("user_key")
	FieldCandidateCount = capitan.NewIntKey("candidate_count")
	FieldAlternateCount = capitan.NewIntKey("alternate_count")

	// Legacy command metadata.
	FieldCommand = capitan.NewStringKey("command")
	FieldNearest = capitan.NewStringKey("nearest_command")

	// Journey metadata.
	FieldJourneyKey = capitan.NewStringKey("journey_key")
	FieldStepCount  = capitan.NewIntKey("step_count")

	// Session metadata.
	FieldSessionID  = capitan.NewStringKey("session_id")
	FieldDepth      = capitan.NewIntKey("depth")
	FieldConfidence = capitan.NewFloat32Key("confidence")
	FieldReportSize = capitan.NewIntKey("report_size") // character count

	// Timing.
	FieldDuration = capitan.NewDurationKey("duration")

	// Error information.
	FieldError = capitan.NewErrorKey("error")
)
