package metis

import (
	"fmt"
	"strings"
)

// scamperLenses are the seven SCAMPER mutations applied to an existing
// idea.
var scamperLenses = []struct {
	ID     string
	Verb   string
	Prompt string
}{
	{"substitute", "Substitute", "What component could you swap for something else?"},
	{"combine", "Combine", "What could you merge this with?"},
	{"adapt", "Adapt", "What works elsewhere that could be adapted here?"},
	{"modify", "Modify", "What could you exaggerate, shrink, or reshape?"},
	{"purpose", "Put to other use", "Who else could use this, for what?"},
	{"eliminate", "Eliminate", "What could you remove entirely?"},
	{"reverse", "Reverse", "What happens if you invert the order or roles?"},
}

// NewSCAMPER systematically mutates an existing idea through seven
// lenses.
func NewSCAMPER() Framework {
	questions := make([]Question, 0, len(scamperLenses)+1)
	questions = append(questions, Question{
		ID: "idea", Prompt: "Describe the existing idea, product, or process.", Kind: KindText, Required: true,
	})
	for _, lens := range scamperLenses {
		questions = append(questions, Question{ID: lens.ID, Prompt: lens.Prompt, Kind: KindText, Required: false})
	}

	t := &Template{
		Meta: Descriptor{
			ID:               "scamper",
			Name:             "SCAMPER",
			Category:         CategoryInnovation,
			Tags:             []string{"ideation", "creativity", "product", "variation"},
			Difficulty:       DifficultyIntermediate,
			EstimatedMinutes: 25,
			SchemaVersion:    "core",
		},
		QuestionSet: [][]Question{questions},
	}
	t.ProcessFunc = func(answers Answers, _ *Context) (*Output, error) {
		out := &Output{Data: map[string]any{}}
		var explored []string
		for _, lens := range scamperLenses {
			answer, ok := answers.Get(lens.ID)
			if !ok {
				continue
			}
			explored = append(explored, lens.Verb)
			out.Data[lens.ID] = answer
			for _, idea := range splitItems(answer) {
				out.Recommendations = append(out.Recommendations, lens.Verb+": "+idea)
			}
		}
		out.Insights = []string{
			fmt.Sprintf("You worked %d of %d lenses (%s)", len(explored), len(scamperLenses), strings.Join(explored, ", ")),
		}
		if len(explored) < len(scamperLenses) {
			out.NextSteps = append(out.NextSteps, "Run the skipped lenses; the awkward ones yield the surprises")
		}
		out.NextSteps = append(out.NextSteps, "Pick the two strongest variations and prototype them cheaply")
		out.Confidence = confidenceFor(t, answers)
		return out, nil
	}
	return t
}

// NewSixThinkingHats walks a problem through six distinct thinking modes.
func NewSixThinkingHats() Framework {
	t := &Template{
		Meta: Descriptor{
			ID:               "six-thinking-hats",
			Name:             "Six Thinking Hats",
			Category:         CategoryInnovation,
			Tags:             []string{"perspectives", "group", "facilitation", "creativity"},
			Difficulty:       DifficultyIntermediate,
			EstimatedMinutes: 30,
			SchemaVersion:    "core",
		},
		QuestionSet: [][]Question{{
			{ID: "facts", Prompt: "White hat: what are the plain facts?", Kind: KindText, Required: true},
			{ID: "feelings", Prompt: "Red hat: what does your gut say?", Kind: KindText, Required: true},
			{ID: "risks", Prompt: "Black hat: what could go wrong?", Kind: KindText, Required: true},
			{ID: "benefits", Prompt: "Yellow hat: what is the best plausible outcome?", Kind: KindText, Required: true},
			{ID: "alternatives", Prompt: "Green hat: what completely different option exists?", Kind: KindText, Required: false},
			{ID: "process", Prompt: "Blue hat: what should happen next?", Kind: KindText, Required: false},
		}},
	}
	t.ProcessFunc = func(answers Answers, _ *Context) (*Output, error) {
		risks := splitItems(mustGet(answers, "risks"))
		benefits := splitItems(mustGet(answers, "benefits"))

		out := &Output{
			Insights: []string{
				fmt.Sprintf("%d risks weighed against %d benefits", len(risks), len(benefits)),
			},
			Data: map[string]any{"risks": risks, "benefits": benefits},
		}
		for _, r := range risks {
			out.Recommendations = append(out.Recommendations, "Mitigate: "+r)
		}
		if alt, ok := answers.Get("alternatives"); ok {
			out.NextSteps = append(out.NextSteps, "Give the green-hat option a fair hearing: "+alt)
		}
		if next, ok := answers.Get("process"); ok {
			out.NextSteps = append(out.NextSteps, next)
		}
		out.Confidence = confidenceFor(t, answers)
		return out, nil
	}
	return t
}

// NewIdeaCollection is a fast brain-dump: empty your head, then sort.
// Carries the historical "collect" command from the old palette.
func NewIdeaCollection() Framework {
	t := &Template{
		Meta: Descriptor{
			ID:               "idea-collection",
			Name:             "Idea Collection",
			Category:         CategoryInnovation,
			Tags:             []string{"braindump", "capture", "collect", "inbox"},
			Difficulty:       DifficultyBeginner,
			EstimatedMinutes: 10,
			SchemaVersion:    "legacy",
		},
		QuestionSet: [][]Question{{
			{ID: "ideas", Prompt: "Dump everything on your mind, one item per line. Don't filter.", Kind: KindText, Required: true},
			{ID: "theme", Prompt: "Reading it back, what theme stands out?", Kind: KindText, Required: false},
		}},
	}
	t.ProcessFunc = func(answers Answers, _ *Context) (*Output, error) {
		ideas := splitItems(mustGet(answers, "ideas"))

		out := &Output{
			Insights: []string{fmt.Sprintf("Captured %d items", len(ideas))},
			Data:     map[string]any{"ideas": ideas},
		}
		if theme, ok := answers.Get("theme"); ok {
			out.Insights = append(out.Insights, "Emerging theme: "+theme)
		}
		out.NextSteps = append(out.NextSteps,
			"Cross out anything that stopped mattering the moment you wrote it",
			"Feed the survivors into a prioritization framework",
		)
		out.Confidence = confidenceFor(t, answers)
		return out, nil
	}
	return t
}
