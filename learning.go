package metis

import (
	"fmt"
	"strings"
)

// NewFeynman walks the explain-it-simply loop: explain, find the gaps,
// refine.
func NewFeynman() Framework {
	t := &Template{
		Meta: Descriptor{
			ID:               "feynman-technique",
			Name:             "Feynman Technique",
			Category:         CategoryLearning,
			Tags:             []string{"explanation", "gaps", "simplify", "teaching"},
			Difficulty:       DifficultyBeginner,
			EstimatedMinutes: 20,
			SchemaVersion:    "core",
		},
		// Requires something to explain.
		ApplicableFunc: func(ctx *Context) bool {
			return ctx != nil && strings.TrimSpace(ctx.Topic) != ""
		},
		QuestionSet: [][]Question{{
			{ID: "explanation", Prompt: "Explain the topic as if to a curious twelve-year-old.", Kind: KindText, Required: true},
			{ID: "stuck_points", Prompt: "Where did you reach for jargon or hand-wave?", Kind: KindText, Required: true},
			{ID: "analogy", Prompt: "What everyday analogy could carry the core idea?", Kind: KindText, Required: false},
		}},
	}
	t.ProcessFunc = func(answers Answers, ctx *Context) (*Output, error) {
		gaps := splitItems(mustGet(answers, "stuck_points"))
		explanation := mustGet(answers, "explanation")

		out := &Output{
			Insights: []string{
				fmt.Sprintf("Your explanation runs %d words with %d identified gaps", len(strings.Fields(explanation)), len(gaps)),
			},
			Data: map[string]any{"gaps": gaps},
		}
		for i, gap := range gaps {
			out.Recommendations = append(out.Recommendations, itemLine(i+1, "Return to the source material for: "+gap))
		}
		out.NextSteps = append(out.NextSteps, "Rewrite the explanation without the jargon you flagged")
		if _, ok := answers.Get("analogy"); !ok {
			out.NextSteps = append(out.NextSteps, "Find one concrete analogy before the next pass")
		}
		out.Confidence = confidenceFor(t, answers)
		return out, nil
	}
	return t
}

// NewLearningMap turns a vague subject into an ordered study path.
func NewLearningMap() Framework {
	t := &Template{
		Meta: Descriptor{
			ID:               "learning-map",
			Name:             "Learning Map",
			Category:         CategoryLearning,
			Tags:             []string{"curriculum", "path", "milestones", "study"},
			Difficulty:       DifficultyIntermediate,
			EstimatedMinutes: 25,
			SchemaVersion:    "core",
		},
		QuestionSet: [][]Question{{
			{ID: "known", Prompt: "What do you already know about this subject?", Kind: KindText, Required: true},
			{ID: "target", Prompt: "What should you be able to do when you're done?", Kind: KindText, Required: true},
			{ID: "subtopics", Prompt: "List the sub-topics you believe the subject contains.", Kind: KindText, Required: true},
			{ID: "hours_weekly", Prompt: "How many hours per week can you commit?", Kind: KindNumeric, Required: false},
		}},
	}
	t.ProcessFunc = func(answers Answers, _ *Context) (*Output, error) {
		subtopics := splitItems(mustGet(answers, "subtopics"))
		known := toLowerSet(splitItems(mustGet(answers, "known")))

		var path []string
		for _, s := range subtopics {
			if !known[strings.ToLower(s)] {
				path = append(path, s)
			}
		}

		out := &Output{
			Insights: []string{
				fmt.Sprintf("%d of %d sub-topics are new ground", len(path), len(subtopics)),
			},
			Data: map[string]any{"path": path},
		}
		for i, s := range path {
			out.Recommendations = append(out.Recommendations, itemLine(i+1, s))
		}
		out.NextSteps = append(out.NextSteps,
			"Attach one concrete exercise to each milestone",
			"Revisit the map after the first milestone; early maps are always wrong somewhere",
		)
		out.Confidence = confidenceFor(t, answers)
		return out, nil
	}
	return t
}
