package metis

// Default configuration for selection and session behavior.
// Per-instance overrides are available via builder methods.
const (
	// DefaultHistoryCapacity is the ring-buffer size of a user's
	// selection history. Oldest entries are evicted first.
	DefaultHistoryCapacity = 10

	// DefaultMaxDepth caps progressive frameworks regardless of how many
	// question levels they declare.
	DefaultMaxDepth = 5

	// DefaultUserKey is the sentinel history key used when a context
	// carries no user hint.
	DefaultUserKey = "default"

	// DefaultAlternateCount is how many runner-up recommendations a
	// selection carries alongside the top pick.
	DefaultAlternateCount = 2

	// DefaultDiverseCount is the candidate count for SelectDiverse when
	// the caller passes zero.
	DefaultDiverseCount = 3
)

// Score weights for the base ranking and selection adjustments. Kept as
// named constants so the arithmetic in registry.go and selector.go reads
// against the same vocabulary the tables in tables.go use.
const (
	weightCategoryMatch   = 0.5
	weightTagMatch        = 0.1
	weightAudienceMatch   = 0.2
	penaltyTooHard        = 0.1
	weightTimeFit         = 0.1
	penaltyTimeOver       = 0.2
	boostPreferredCat     = 0.3
	boostHistoryPerUse    = 0.05
	boostHistoryCap       = 0.15
	quickFrameworkMinutes = 10
)

// NoMatchRationale is the fixed rationale when no framework survives
// filtering. An empty selection is a valid terminal outcome, not an
// error; callers distinguish it by this string and the empty slices.
const NoMatchRationale = "No suitable framework found for the given context."
