package metis

import (
	"fmt"
	"strings"
)

// Category is the fixed taxonomy a framework belongs to.
type Category string

// Framework categories. Every registered framework carries exactly one.
const (
	CategoryPrioritization   Category = "prioritization"
	CategoryLearning         Category = "learning"
	CategoryInnovation       Category = "innovation"
	CategoryAnalysis         Category = "analysis"
	CategoryCommunication    Category = "communication"
	CategoryStrategy         Category = "strategy"
	CategoryBranding         Category = "branding"
	CategoryCriticalThinking Category = "critical-thinking"
)

// Difficulty describes how much practice a framework assumes.
type Difficulty string

// Difficulty levels, ordered easiest to hardest.
const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// difficultyRank maps difficulty to an ordinal for progression checks.
var difficultyRank = map[Difficulty]int{
	DifficultyBeginner:     0,
	DifficultyIntermediate: 1,
	DifficultyAdvanced:     2,
}

// Descriptor is the immutable metadata of a registered framework.
// EstimatedMinutes and Difficulty are fixed at registration and never
// change for the lifetime of the process.
type Descriptor struct {
	ID               string     `db:"id" type:"text" constraints:"primarykey"`
	Name             string     `db:"name" type:"text" constraints:"notnull"`
	Category         Category   `db:"category" type:"text" constraints:"notnull"`
	Tags             []string   `db:"-"`
	Difficulty       Difficulty `db:"difficulty" type:"text" constraints:"notnull"`
	EstimatedMinutes int        `db:"estimated_minutes" type:"integer" constraints:"notnull"`
	SchemaVersion    string     `db:"schema_version" type:"text"`
}

// HasTag reports whether the descriptor carries the given tag.
func (d Descriptor) HasTag(tag string) bool {
	for _, t := range d.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// QuestionKind tags the expected answer shape of a question.
type QuestionKind string

// Question kinds.
const (
	KindText    QuestionKind = "text"
	KindChoice  QuestionKind = "choice"
	KindNumeric QuestionKind = "numeric"
	KindBoolean QuestionKind = "boolean"
)

// Question is a single prompt within a framework's guided flow.
type Question struct {
	ID       string
	Prompt   string
	Kind     QuestionKind
	Required bool
	FollowUp string
	Options  []string // populated for KindChoice
}

// Answers maps question IDs to the user's raw answer text.
// Empty or whitespace-only answers are treated as absent.
type Answers map[string]string

// Get returns the trimmed answer for a question ID and whether a
// non-empty answer was supplied.
func (a Answers) Get(id string) (string, bool) {
	v, ok := a[id]
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return "", false
	}
	return v, true
}

// Output is the deterministic result of processing a framework's answers.
type Output struct {
	Insights        []string
	Recommendations []string
	NextSteps       []string
	Data            map[string]any
	Confidence      float64 // always in [0,1]
}

// ValidationError reports a required question missing from the answers
// passed to Process. Detect with errors.As.
type ValidationError struct {
	FrameworkID string
	QuestionID  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("framework %q: required answer missing: %s", e.FrameworkID, e.QuestionID)
}

// Framework is the contract every catalog entry satisfies.
//
// Implementations are stateless and safe for concurrent use: Process is a
// pure function of its inputs, Questions depends only on the context and
// the caller-supplied depth, and Render performs no I/O. Per-session
// progress (current depth, collected answers) lives in a [Session], never
// on the framework itself.
type Framework interface {
	// Descriptor returns the immutable metadata for this framework.
	Descriptor() Descriptor

	// Applicable reports whether this framework can serve the context.
	// Most frameworks return true unconditionally; some hard-disqualify
	// themselves (e.g. require a non-empty topic).
	Applicable(ctx *Context) bool

	// Questions returns the ordered questions for the given depth.
	// Non-progressive frameworks ignore depth and return their full set.
	Questions(ctx *Context, depth int) []Question

	// Process computes the framework output from complete answers.
	// Returns a *ValidationError when a required question is unanswered.
	Process(answers Answers, ctx *Context) (*Output, error)

	// Render produces a markdown report for an output. Display only.
	Render(out *Output, ctx *Context) string
}

// Progressive is the optional capability for depth-tracked frameworks.
// Depth starts at 1 and increments while Deeper returns true, clamped
// to MaxDepth.
type Progressive interface {
	Framework

	// MaxDepth is the deepest level this framework supports.
	MaxDepth() int

	// Deeper reports whether the flow should advance past the given depth
	// based on the answers collected so far.
	Deeper(answers Answers, depth int) bool
}

// Template is a declarative Framework implementation. Catalog entries are
// Templates almost without exception: metadata plus per-depth question
// lists plus a process function.
//
// Example:
//
//	fw := &metis.Template{
//	    Meta: metis.Descriptor{
//	        ID:               "eisenhower-matrix",
//	        Name:             "Eisenhower Matrix",
//	        Category:         metis.CategoryPrioritization,
//	        Tags:             []string{"urgency", "importance", "tasks"},
//	        Difficulty:       metis.DifficultyBeginner,
//	        EstimatedMinutes: 10,
//	        SchemaVersion:    "core",
//	    },
//	    QuestionSet: [][]metis.Question{{
//	        {ID: "tasks", Prompt: "List the tasks on your plate.", Kind: metis.KindText, Required: true},
//	    }},
//	    ProcessFunc: func(answers metis.Answers, ctx *metis.Context) (*metis.Output, error) {
//	        ...
//	    },
//	}
type Template struct {
	Meta Descriptor

	// QuestionSet holds one ordered question list per depth. A single
	// element means the framework is not progressive.
	QuestionSet [][]Question

	// ApplicableFunc overrides the default always-applicable behavior.
	ApplicableFunc func(ctx *Context) bool

	// ProcessFunc computes the output. Required-answer validation runs
	// before it is called.
	ProcessFunc func(answers Answers, ctx *Context) (*Output, error)

	// DeeperFunc governs depth advancement for progressive templates.
	// Nil means never go deeper.
	DeeperFunc func(answers Answers, depth int) bool

	// RenderFunc overrides the default markdown renderer.
	RenderFunc func(out *Output, ctx *Context) string

	// Depth is the maximum depth. Zero means len(QuestionSet), itself
	// clamped to DefaultMaxDepth.
	Depth int
}

// Descriptor implements Framework.
func (t *Template) Descriptor() Descriptor { return t.Meta }

// Applicable implements Framework.
func (t *Template) Applicable(ctx *Context) bool {
	if t.ApplicableFunc == nil {
		return true
	}
	return t.ApplicableFunc(ctx)
}

// Questions implements Framework. Depth is 1-based; out-of-range depths
// return nil rather than panicking.
func (t *Template) Questions(_ *Context, depth int) []Question {
	if depth < 1 {
		depth = 1
	}
	if depth > len(t.QuestionSet) {
		return nil
	}
	qs := t.QuestionSet[depth-1]
	out := make([]Question, len(qs))
	copy(out, qs)
	return out
}

// Process implements Framework. Validates required answers across every
// depth's question set before delegating to ProcessFunc.
func (t *Template) Process(answers Answers, ctx *Context) (*Output, error) {
	for _, qs := range t.QuestionSet {
		for _, q := range qs {
			if !q.Required {
				continue
			}
			if _, ok := answers.Get(q.ID); !ok {
				return nil, &ValidationError{FrameworkID: t.Meta.ID, QuestionID: q.ID}
			}
		}
	}
	if t.ProcessFunc == nil {
		return &Output{Confidence: 0}, nil
	}
	out, err := t.ProcessFunc(answers, ctx)
	if err != nil {
		return nil, err
	}
	out.Confidence = clamp01(out.Confidence)
	return out, nil
}

// Render implements Framework.
func (t *Template) Render(out *Output, ctx *Context) string {
	if t.RenderFunc != nil {
		return t.RenderFunc(out, ctx)
	}
	return RenderReport(t.Meta, out, ctx)
}

// MaxDepth implements Progressive.
func (t *Template) MaxDepth() int {
	d := t.Depth
	if d == 0 {
		d = len(t.QuestionSet)
	}
	if d > DefaultMaxDepth {
		d = DefaultMaxDepth
	}
	if d < 1 {
		d = 1
	}
	return d
}

// Deeper implements Progressive.
func (t *Template) Deeper(answers Answers, depth int) bool {
	if t.DeeperFunc == nil {
		return false
	}
	if depth >= t.MaxDepth() {
		return false
	}
	return t.DeeperFunc(answers, depth)
}

// Compile-time checks: Template satisfies both capability levels.
var (
	_ Framework   = (*Template)(nil)
	_ Progressive = (*Template)(nil)
)

// RenderReport is the default markdown renderer shared by catalog entries.
// Deterministic function of its inputs, used for display only.
func RenderReport(d Descriptor, out *Output, ctx *Context) string {
	var b strings.Builder

	b.WriteString("# ")
	b.WriteString(d.Name)
	b.WriteString(" Report\n")

	if ctx != nil && ctx.Topic != "" {
		b.WriteString("\n**Topic:** ")
		b.WriteString(ctx.Topic)
		b.WriteString("\n")
	}
	if ctx != nil && ctx.Goal != "" {
		b.WriteString("**Goal:** ")
		b.WriteString(ctx.Goal)
		b.WriteString("\n")
	}

	writeSection := func(title string, items []string) {
		if len(items) == 0 {
			return
		}
		b.WriteString("\n## ")
		b.WriteString(title)
		b.WriteString("\n")
		for _, item := range items {
			b.WriteString("- ")
			b.WriteString(item)
			b.WriteString("\n")
		}
	}

	writeSection("Insights", out.Insights)
	writeSection("Recommendations", out.Recommendations)
	writeSection("Next Steps", out.NextSteps)

	b.WriteString(fmt.Sprintf("\n*Confidence: %.0f%%*\n", out.Confidence*100))
	return b.String()
}

// clamp01 restricts v to the [0,1] interval.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
