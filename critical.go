package metis

import (
	"fmt"
	"strings"
)

// NewSocraticQuestioning interrogates a belief layer by layer until only
// the defensible remains. Progressive across five depths.
func NewSocraticQuestioning() Framework {
	t := &Template{
		Meta: Descriptor{
			ID:               "socratic-questioning",
			Name:             "Socratic Questioning",
			Category:         CategoryCriticalThinking,
			Tags:             []string{"assumptions", "beliefs", "inquiry", "rigor"},
			Difficulty:       DifficultyAdvanced,
			EstimatedMinutes: 30,
			SchemaVersion:    "core",
		},
		QuestionSet: [][]Question{
			{
				{ID: "claim", Prompt: "State the belief or claim under examination.", Kind: KindText, Required: true},
				{ID: "meaning", Prompt: "What exactly do you mean by its key terms?", Kind: KindText, Required: true},
			},
			{
				{ID: "assumptions", Prompt: "What are you taking for granted for this to hold?", Kind: KindText, Required: false},
			},
			{
				{ID: "evidence", Prompt: "What evidence supports it, and how reliable is that evidence?", Kind: KindText, Required: false},
			},
			{
				{ID: "counter", Prompt: "What would someone who disagrees say, at their strongest?", Kind: KindText, Required: false},
			},
			{
				{ID: "implications", Prompt: "If the claim is true, what else must be true?", Kind: KindText, Required: false},
			},
		},
		Depth: 5,
	}
	t.DeeperFunc = func(answers Answers, depth int) bool {
		// Advance only while the current layer received substance.
		layerIDs := []string{"meaning", "assumptions", "evidence", "counter", "implications"}
		if depth-1 >= len(layerIDs) {
			return false
		}
		_, ok := answers.Get(layerIDs[depth-1])
		return ok
	}
	t.ProcessFunc = func(answers Answers, _ *Context) (*Output, error) {
		claim := mustGet(answers, "claim")

		out := &Output{
			Insights: []string{"Claim under examination: " + claim},
			Data:     map[string]any{"claim": claim},
		}
		layers := []struct{ id, label string }{
			{"assumptions", "Assumptions"},
			{"evidence", "Evidence"},
			{"counter", "Strongest counter-argument"},
			{"implications", "Implications"},
		}
		examined := 0
		for _, layer := range layers {
			if answer, ok := answers.Get(layer.id); ok {
				examined++
				out.Insights = append(out.Insights, layer.label+": "+answer)
				out.Data[layer.id] = answer
			}
		}
		if examined < len(layers) {
			out.Recommendations = append(out.Recommendations,
				fmt.Sprintf("Only %d of %d interrogation layers examined; the claim is not yet earned", examined, len(layers)))
		} else {
			out.Recommendations = append(out.Recommendations, "The claim survived all four layers; hold it, but loosely")
		}
		out.NextSteps = append(out.NextSteps, "Write the steel-manned counter-argument in full before deciding")
		out.Confidence = confidenceFor(t, answers)
		return out, nil
	}
	return t
}

// NewFirstPrinciples rebuilds a problem from verified facts rather than
// analogy.
func NewFirstPrinciples() Framework {
	t := &Template{
		Meta: Descriptor{
			ID:               "first-principles",
			Name:             "First Principles",
			Category:         CategoryCriticalThinking,
			Tags:             []string{"fundamentals", "reasoning", "assumptions", "rebuild"},
			Difficulty:       DifficultyAdvanced,
			EstimatedMinutes: 25,
			SchemaVersion:    "core",
		},
		QuestionSet: [][]Question{{
			{ID: "problem", Prompt: "State the problem without reference to existing solutions.", Kind: KindText, Required: true},
			{ID: "facts", Prompt: "List only what you know to be physically or contractually true.", Kind: KindText, Required: true},
			{ID: "borrowed", Prompt: "Which parts of the usual approach are habit rather than necessity?", Kind: KindText, Required: true},
		}},
	}
	t.ProcessFunc = func(answers Answers, _ *Context) (*Output, error) {
		facts := splitItems(mustGet(answers, "facts"))
		borrowed := splitItems(mustGet(answers, "borrowed"))

		out := &Output{
			Insights: []string{
				fmt.Sprintf("Bedrock: %d verified facts; %d inherited habits flagged", len(facts), len(borrowed)),
			},
			Data: map[string]any{"facts": facts, "borrowed": borrowed},
		}
		for _, b := range borrowed {
			out.Recommendations = append(out.Recommendations, "Challenge the habit: "+b)
		}
		// Facts phrased with hedging words usually aren't facts.
		for _, f := range facts {
			lf := strings.ToLower(f)
			if strings.Contains(lf, "probably") || strings.Contains(lf, "usually") || strings.Contains(lf, "everyone") {
				out.Recommendations = append(out.Recommendations, fmt.Sprintf("%q is an assumption wearing a fact's clothes", f))
			}
		}
		out.NextSteps = append(out.NextSteps, "Recompose a solution using only the verified facts, then compare it to the status quo")
		out.Confidence = confidenceFor(t, answers)
		return out, nil
	}
	return t
}
