package metis

import (
	"fmt"
	"strings"
)

// NewSWOT balances internal strengths and weaknesses against external
// opportunities and threats.
func NewSWOT() Framework {
	t := &Template{
		Meta: Descriptor{
			ID:               "swot-analysis",
			Name:             "SWOT Analysis",
			Category:         CategoryAnalysis,
			Tags:             []string{"strengths", "weaknesses", "assessment", "situation"},
			Difficulty:       DifficultyBeginner,
			EstimatedMinutes: 20,
			SchemaVersion:    "core",
		},
		QuestionSet: [][]Question{{
			{ID: "strengths", Prompt: "What do you do demonstrably better than the alternatives?", Kind: KindText, Required: true},
			{ID: "weaknesses", Prompt: "Where are you honestly behind?", Kind: KindText, Required: true},
			{ID: "opportunities", Prompt: "What external shifts could you exploit?", Kind: KindText, Required: true},
			{ID: "threats", Prompt: "What external shifts could hurt you?", Kind: KindText, Required: true},
		}},
	}
	t.ProcessFunc = func(answers Answers, _ *Context) (*Output, error) {
		s := splitItems(mustGet(answers, "strengths"))
		w := splitItems(mustGet(answers, "weaknesses"))
		o := splitItems(mustGet(answers, "opportunities"))
		th := splitItems(mustGet(answers, "threats"))

		out := &Output{
			Insights: []string{
				fmt.Sprintf("Internal picture: %d strengths vs %d weaknesses", len(s), len(w)),
				fmt.Sprintf("External picture: %d opportunities vs %d threats", len(o), len(th)),
			},
			Data: map[string]any{"strengths": s, "weaknesses": w, "opportunities": o, "threats": th},
		}
		if len(s) > 0 && len(o) > 0 {
			out.Recommendations = append(out.Recommendations,
				fmt.Sprintf("Pair your strength %q against the opportunity %q", s[0], o[0]))
		}
		if len(w) > 0 && len(th) > 0 {
			out.Recommendations = append(out.Recommendations,
				fmt.Sprintf("Your weakness %q is exposed to the threat %q; defend it first", w[0], th[0]))
		}
		out.NextSteps = append(out.NextSteps, "Turn each strength-opportunity pair into one concrete initiative")
		out.Confidence = confidenceFor(t, answers)
		return out, nil
	}
	return t
}

// fiveWhysMaxDepth is how many times the technique repeats the question.
const fiveWhysMaxDepth = 5

// NewFiveWhys drills past symptoms to a root cause by asking "why"
// repeatedly. Progressive: each depth asks one more why, and the flow
// stops early once an answer looks like bedrock.
func NewFiveWhys() Framework {
	questionSet := make([][]Question, fiveWhysMaxDepth)
	questionSet[0] = []Question{
		{ID: "problem", Prompt: "State the problem as an observable fact.", Kind: KindText, Required: true},
		{ID: "why_1", Prompt: "Why does that happen?", Kind: KindText, Required: true},
	}
	for depth := 2; depth <= fiveWhysMaxDepth; depth++ {
		questionSet[depth-1] = []Question{
			{
				ID:       fmt.Sprintf("why_%d", depth),
				Prompt:   "And why is that?",
				Kind:     KindText,
				Required: false,
				FollowUp: "Stop when the answer is something you can directly change.",
			},
		}
	}

	t := &Template{
		Meta: Descriptor{
			ID:               "five-whys",
			Name:             "Five Whys",
			Category:         CategoryAnalysis,
			Tags:             []string{"root-cause", "debugging", "incident", "why"},
			Difficulty:       DifficultyBeginner,
			EstimatedMinutes: 10,
			SchemaVersion:    "core",
		},
		QuestionSet: questionSet,
		Depth:       fiveWhysMaxDepth,
	}
	t.DeeperFunc = func(answers Answers, depth int) bool {
		answer, ok := answers.Get(fmt.Sprintf("why_%d", depth))
		if !ok {
			return false
		}
		// Bedrock heuristic: an answer that names a process or policy is
		// actionable; keep digging while answers still blame circumstances.
		la := strings.ToLower(answer)
		return !strings.Contains(la, "because we") && !strings.Contains(la, "no process") && !strings.Contains(la, "never")
	}
	t.ProcessFunc = func(answers Answers, _ *Context) (*Output, error) {
		problem := mustGet(answers, "problem")

		var chain []string
		for depth := 1; depth <= fiveWhysMaxDepth; depth++ {
			answer, ok := answers.Get(fmt.Sprintf("why_%d", depth))
			if !ok {
				break
			}
			chain = append(chain, answer)
		}

		out := &Output{
			Insights: []string{
				fmt.Sprintf("Causal chain is %d levels deep for: %s", len(chain), problem),
			},
			Data: map[string]any{"problem": problem, "chain": chain},
		}
		for i, link := range chain {
			out.Insights = append(out.Insights, itemLine(i+1, "Why: "+link))
		}
		if len(chain) > 0 {
			root := chain[len(chain)-1]
			out.Recommendations = append(out.Recommendations, "Treat as root cause: "+root)
			out.NextSteps = append(out.NextSteps, "Design a countermeasure that makes the root cause impossible, not just unlikely")
		}
		out.Confidence = confidenceFor(t, answers)
		return out, nil
	}
	return t
}
