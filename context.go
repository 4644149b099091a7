package metis

import "strconv"

// Context is the caller-supplied description of what the user wants help
// with. Constructed per request, never persisted, never mutated by the
// core.
type Context struct {
	// Topic is the subject the user is thinking about.
	Topic string

	// Goal is what the user wants to achieve.
	Goal string

	// Audience describes who the outcome is for. Used to classify an
	// audience level for difficulty alignment.
	Audience string

	// PriorAnswers carries answers from earlier depths of a progressive
	// flow. Only progressive frameworks consult it.
	PriorAnswers Answers

	// Hints is a free-form key/value bag. Recognized keys:
	//   - HintTimeAvailable: minutes available, parsed as an integer
	//   - HintUserKey: opaque per-user key for selection history
	Hints map[string]string
}

// Recognized hint keys for Context.Hints.
const (
	HintTimeAvailable = "timeAvailableMinutes"
	HintUserKey       = "userKey"
)

// TimeAvailable returns the minutes available from the hint bag, if a
// positive integer was supplied.
func (c *Context) TimeAvailable() (int, bool) {
	if c == nil || c.Hints == nil {
		return 0, false
	}
	raw, ok := c.Hints[HintTimeAvailable]
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// withTimeHint returns a copy of the context carrying a time hint.
// Used by the selector to let a criteria time budget inform the base
// ranking when the caller supplied no hint of their own.
func (c *Context) withTimeHint(minutes int) *Context {
	var out Context
	if c != nil {
		out = *c
	}
	hints := make(map[string]string, len(out.Hints)+1)
	for k, v := range out.Hints {
		hints[k] = v
	}
	hints[HintTimeAvailable] = strconv.Itoa(minutes)
	out.Hints = hints
	return &out
}

// UserKey resolves the per-user history key, falling back to
// DefaultUserKey when the hint is absent.
func (c *Context) UserKey() string {
	if c == nil || c.Hints == nil {
		return DefaultUserKey
	}
	if k, ok := c.Hints[HintUserKey]; ok && k != "" {
		return k
	}
	return DefaultUserKey
}

// Criteria layers hard constraints and soft preferences on top of the
// base ranking. All fields are optional; the zero value filters nothing.
type Criteria struct {
	// TimeAvailableMinutes drops frameworks whose estimate exceeds it.
	// Zero means no time constraint.
	TimeAvailableMinutes int

	// AudienceLevel keeps frameworks at the stated level or exactly one
	// level harder. Empty means no difficulty constraint.
	AudienceLevel Difficulty

	// PreferredCategory boosts matching frameworks by 0.3 without
	// removing the rest.
	PreferredCategory Category

	// ExcludedIDs drops frameworks by ID.
	ExcludedIDs map[string]bool

	// RequiredTags keeps only frameworks carrying at least one of these
	// tags (OR semantics). Empty means no tag constraint.
	RequiredTags []string
}

// Recommendation pairs a framework descriptor with its clamped score and
// an auto-generated reason.
type Recommendation struct {
	Framework Descriptor
	Score     float64 // clamped to [0,1]
	Reason    string
}

// SelectionResult is the explainable outcome of a selection. An empty
// Recommended slice is a valid terminal outcome (see NoMatchRationale),
// not an error.
type SelectionResult struct {
	Recommended []Recommendation // length 0 or 1
	Alternates  []Recommendation // length <= 2
	Rationale   string
	Context     *Context
}
