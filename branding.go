package metis

import (
	"fmt"
	"strings"
)

// NewBrandVoice pins down the personality behind the words: traits,
// anti-traits, and a reference sentence to calibrate against.
func NewBrandVoice() Framework {
	t := &Template{
		Meta: Descriptor{
			ID:               "brand-voice-profile",
			Name:             "Brand Voice Profile",
			Category:         CategoryBranding,
			Tags:             []string{"voice", "tone", "personality", "writing"},
			Difficulty:       DifficultyIntermediate,
			EstimatedMinutes: 25,
			SchemaVersion:    "core",
		},
		QuestionSet: [][]Question{{
			{ID: "traits", Prompt: "Pick three adjectives that describe how you want to sound.", Kind: KindText, Required: true},
			{ID: "anti_traits", Prompt: "Pick three adjectives you must never sound like.", Kind: KindText, Required: true},
			{ID: "sample", Prompt: "Paste one sentence you've written that already sounds right.", Kind: KindText, Required: false},
			{ID: "audience", Prompt: "Who reads this voice most often?", Kind: KindText, Required: false},
		}},
	}
	t.ProcessFunc = func(answers Answers, _ *Context) (*Output, error) {
		traits := splitItems(mustGet(answers, "traits"))
		anti := splitItems(mustGet(answers, "anti_traits"))

		out := &Output{
			Insights: []string{
				fmt.Sprintf("Voice: %s, never %s", strings.Join(traits, ", "), strings.Join(anti, ", ")),
			},
			Data: map[string]any{"traits": traits, "anti_traits": anti},
		}

		// Overlap between traits and anti-traits means the profile
		// contradicts itself.
		antiSet := toLowerSet(anti)
		for _, tr := range traits {
			if antiSet[strings.ToLower(tr)] {
				out.Recommendations = append(out.Recommendations,
					fmt.Sprintf("%q appears on both lists; resolve the contradiction", tr))
			}
		}

		if sample, ok := answers.Get("sample"); ok {
			out.Insights = append(out.Insights, "Calibration sentence: "+sample)
		} else {
			out.NextSteps = append(out.NextSteps, "Find one existing sentence that already carries the voice")
		}
		out.NextSteps = append(out.NextSteps,
			"Rewrite one recent paragraph twice: once per trait list, once violating it, to feel the difference",
		)
		out.Confidence = confidenceFor(t, answers)
		return out, nil
	}
	return t
}
