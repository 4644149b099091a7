package metis

import "fmt"

// NewPyramidPrinciple structures a message answer-first with grouped
// supporting arguments.
func NewPyramidPrinciple() Framework {
	t := &Template{
		Meta: Descriptor{
			ID:               "pyramid-principle",
			Name:             "Pyramid Principle",
			Category:         CategoryCommunication,
			Tags:             []string{"writing", "structure", "executive", "argument"},
			Difficulty:       DifficultyAdvanced,
			EstimatedMinutes: 30,
			SchemaVersion:    "core",
		},
		QuestionSet: [][]Question{{
			{ID: "answer", Prompt: "State your conclusion in one sentence.", Kind: KindText, Required: true},
			{ID: "arguments", Prompt: "List the key arguments that support it.", Kind: KindText, Required: true},
			{ID: "evidence", Prompt: "For each argument, what evidence backs it?", Kind: KindText, Required: true},
			{ID: "objection", Prompt: "What is the strongest objection you expect?", Kind: KindText, Required: false},
		}},
	}
	t.ProcessFunc = func(answers Answers, _ *Context) (*Output, error) {
		args := splitItems(mustGet(answers, "arguments"))
		evidence := splitItems(mustGet(answers, "evidence"))

		out := &Output{
			Insights: []string{
				fmt.Sprintf("Pyramid: 1 conclusion, %d arguments, %d pieces of evidence", len(args), len(evidence)),
			},
			Data: map[string]any{"conclusion": mustGet(answers, "answer"), "arguments": args},
		}
		if len(args) > 4 {
			out.Recommendations = append(out.Recommendations,
				"More than four top-level arguments dilute the message; merge or cut")
		}
		if len(evidence) < len(args) {
			out.Recommendations = append(out.Recommendations,
				fmt.Sprintf("%d arguments lack dedicated evidence", len(args)-len(evidence)))
		}
		out.NextSteps = append(out.NextSteps, "Open the document with the conclusion, verbatim")
		if obj, ok := answers.Get("objection"); ok {
			out.NextSteps = append(out.NextSteps, "Address the expected objection explicitly: "+obj)
		}
		out.Confidence = confidenceFor(t, answers)
		return out, nil
	}
	return t
}

// NewMessageMap compresses a message to one headline with three proof
// points.
func NewMessageMap() Framework {
	t := &Template{
		Meta: Descriptor{
			ID:               "message-map",
			Name:             "Message Map",
			Category:         CategoryCommunication,
			Tags:             []string{"messaging", "pitch", "headline", "clarity"},
			Difficulty:       DifficultyIntermediate,
			EstimatedMinutes: 15,
			SchemaVersion:    "core",
		},
		QuestionSet: [][]Question{{
			{ID: "headline", Prompt: "What is the one thing your audience must remember?", Kind: KindText, Required: true},
			{ID: "proofs", Prompt: "Give up to three proof points.", Kind: KindText, Required: true},
			{ID: "audience", Prompt: "Who exactly is this for?", Kind: KindText, Required: false},
		}},
	}
	t.ProcessFunc = func(answers Answers, _ *Context) (*Output, error) {
		proofs := splitItems(mustGet(answers, "proofs"))

		out := &Output{
			Insights: []string{fmt.Sprintf("Headline backed by %d proof points", len(proofs))},
			Data:     map[string]any{"headline": mustGet(answers, "headline"), "proofs": proofs},
		}
		if len(proofs) > 3 {
			out.Recommendations = append(out.Recommendations, "Trim to the three strongest proofs; the map is a filter, not a list")
		}
		for i, p := range proofs {
			if i == 3 {
				break
			}
			out.Recommendations = append(out.Recommendations, itemLine(i+1, p))
		}
		out.NextSteps = append(out.NextSteps, "Say the headline out loud in under seven seconds; rewrite until you can")
		out.Confidence = confidenceFor(t, answers)
		return out, nil
	}
	return t
}
