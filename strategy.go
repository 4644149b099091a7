package metis

import (
	"fmt"
	"strings"
)

// smartCriteria are the five SMART checks applied to a stated goal.
var smartCriteria = []struct {
	ID     string
	Label  string
	Prompt string
}{
	{"specific", "Specific", "What exactly will be different when you succeed?"},
	{"measurable", "Measurable", "What number or observable event proves it?"},
	{"achievable", "Achievable", "What makes this realistic with your current means?"},
	{"relevant", "Relevant", "Why does this matter now, over everything else?"},
	{"timebound", "Time-bound", "By when, precisely?"},
}

// NewSmartGoals converts intent into a measurable, time-bound target.
func NewSmartGoals() Framework {
	questions := []Question{
		{ID: "goal", Prompt: "State the goal as you would say it today.", Kind: KindText, Required: true},
	}
	for _, c := range smartCriteria {
		questions = append(questions, Question{ID: c.ID, Prompt: c.Prompt, Kind: KindText, Required: false})
	}

	t := &Template{
		Meta: Descriptor{
			ID:               "smart-goals",
			Name:             "SMART Goals",
			Category:         CategoryStrategy,
			Tags:             []string{"goals", "targets", "measurable", "planning"},
			Difficulty:       DifficultyBeginner,
			EstimatedMinutes: 15,
			SchemaVersion:    "core",
		},
		QuestionSet: [][]Question{questions},
	}
	t.ProcessFunc = func(answers Answers, _ *Context) (*Output, error) {
		out := &Output{Data: map[string]any{"goal": mustGet(answers, "goal")}}
		var missing []string
		for _, c := range smartCriteria {
			if answer, ok := answers.Get(c.ID); ok {
				out.Data[c.ID] = answer
			} else {
				missing = append(missing, c.Label)
			}
		}

		out.Insights = []string{
			fmt.Sprintf("%d of %d SMART criteria are pinned down", len(smartCriteria)-len(missing), len(smartCriteria)),
		}
		for _, m := range missing {
			out.Recommendations = append(out.Recommendations, "Still fuzzy: "+m)
		}
		if len(missing) == 0 {
			out.NextSteps = append(out.NextSteps, "Write the refined goal where you will see it daily")
		} else {
			out.NextSteps = append(out.NextSteps, "Resolve the fuzzy criteria before committing the goal")
		}
		out.Confidence = confidenceFor(t, answers)
		return out, nil
	}
	return t
}

// NewGoldenCircle grounds a plan in why before what and how.
func NewGoldenCircle() Framework {
	t := &Template{
		Meta: Descriptor{
			ID:               "golden-circle",
			Name:             "Golden Circle",
			Category:         CategoryStrategy,
			Tags:             []string{"purpose", "why", "vision", "positioning"},
			Difficulty:       DifficultyIntermediate,
			EstimatedMinutes: 20,
			SchemaVersion:    "core",
		},
		QuestionSet: [][]Question{{
			{ID: "why", Prompt: "Why does this exist? What belief drives it?", Kind: KindText, Required: true},
			{ID: "how", Prompt: "How do you act on that belief, differently from others?", Kind: KindText, Required: true},
			{ID: "what", Prompt: "What do you concretely produce or offer?", Kind: KindText, Required: true},
		}},
	}
	t.ProcessFunc = func(answers Answers, _ *Context) (*Output, error) {
		why := mustGet(answers, "why")
		what := mustGet(answers, "what")

		out := &Output{
			Insights: []string{"Why: " + why},
			Data: map[string]any{
				"why": why, "how": mustGet(answers, "how"), "what": what,
			},
		}
		// A why that restates the what is the most common failure mode.
		if sharesSubstring(strings.ToLower(why), strings.ToLower(what)) {
			out.Recommendations = append(out.Recommendations,
				"Your why restates your what; dig for the belief behind the product")
		}
		out.NextSteps = append(out.NextSteps,
			"Lead the next pitch with the why, unedited",
			"Check every roadmap item against the how; cut what contradicts it",
		)
		out.Confidence = confidenceFor(t, answers)
		return out, nil
	}
	return t
}
