package metis

import "strings"

// Intent is the coarse category inferred from a context's free text.
// It biases scoring toward frameworks in the matching category.
type Intent string

// Inferred intents. IntentGeneral means no keyword group matched.
const (
	IntentPrioritization   Intent = "prioritization"
	IntentLearning         Intent = "learning"
	IntentInnovation       Intent = "innovation"
	IntentAnalysis         Intent = "analysis"
	IntentCommunication    Intent = "communication"
	IntentStrategy         Intent = "strategy"
	IntentBranding         Intent = "branding"
	IntentCriticalThinking Intent = "critical-thinking"
	IntentGeneral          Intent = "general"
)

// intentGroup pairs an intent with the trigger keywords that select it.
type intentGroup struct {
	intent   Intent
	keywords []string
}

// intentGroups is checked in order; the first group with any keyword
// present in the text wins. Configuration data, not derived logic.
var intentGroups = []intentGroup{
	{IntentPrioritization, []string{"prioritize", "decide", "choose"}},
	{IntentLearning, []string{"understand", "learn", "teach"}},
	{IntentInnovation, []string{"innovate", "create", "new"}},
	{IntentAnalysis, []string{"analyze", "evaluate", "assess"}},
	{IntentCommunication, []string{"structure", "organize", "communicate"}},
	{IntentStrategy, []string{"strategy", "plan", "approach"}},
	{IntentBranding, []string{"voice", "style", "brand"}},
	{IntentCriticalThinking, []string{"question", "deep", "critical"}},
}

// InferIntent scans the concatenated topic and goal for intent keywords.
func InferIntent(ctx *Context) Intent {
	if ctx == nil {
		return IntentGeneral
	}
	text := strings.ToLower(ctx.Topic + " " + ctx.Goal)
	for _, g := range intentGroups {
		for _, kw := range g.keywords {
			if strings.Contains(text, kw) {
				return g.intent
			}
		}
	}
	return IntentGeneral
}

// ClassifyAudience maps a free-text audience description to a difficulty
// level. Returns false when the description is empty and no level can be
// classified.
func ClassifyAudience(description string) (Difficulty, bool) {
	d := strings.ToLower(strings.TrimSpace(description))
	if d == "" {
		return "", false
	}
	for _, kw := range []string{"beginner", "new", "basic"} {
		if strings.Contains(d, kw) {
			return DifficultyBeginner, true
		}
	}
	for _, kw := range []string{"advanced", "expert", "senior"} {
		if strings.Contains(d, kw) {
			return DifficultyAdvanced, true
		}
	}
	return DifficultyIntermediate, true
}
