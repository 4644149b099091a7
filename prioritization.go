package metis

import (
	"fmt"
	"strings"
)

// NewEisenhowerMatrix sorts tasks into urgent/important quadrants.
func NewEisenhowerMatrix() Framework {
	t := &Template{
		Meta: Descriptor{
			ID:               "eisenhower-matrix",
			Name:             "Eisenhower Matrix",
			Category:         CategoryPrioritization,
			Tags:             []string{"urgency", "importance", "tasks", "decision"},
			Difficulty:       DifficultyBeginner,
			EstimatedMinutes: 10,
			SchemaVersion:    "core",
		},
		QuestionSet: [][]Question{{
			{ID: "tasks", Prompt: "List the tasks competing for your attention.", Kind: KindText, Required: true},
			{ID: "deadline", Prompt: "Which of these have a hard deadline this week?", Kind: KindText, Required: false},
			{ID: "delegate", Prompt: "Do you have someone you can delegate to?", Kind: KindBoolean, Required: false,
				FollowUp: "Delegation unlocks the urgent-but-unimportant quadrant."},
		}},
	}
	t.ProcessFunc = func(answers Answers, _ *Context) (*Output, error) {
		tasksRaw, _ := answers.Get("tasks")
		tasks := splitItems(tasksRaw)
		deadlineRaw, _ := answers.Get("deadline")
		deadlined := splitItems(deadlineRaw)

		var doNow, schedule []string
		for _, task := range tasks {
			urgent := false
			lt := strings.ToLower(task)
			for _, d := range deadlined {
				if sharesSubstring(strings.ToLower(d), lt) {
					urgent = true
					break
				}
			}
			if urgent || strings.Contains(lt, "urgent") || strings.Contains(lt, "asap") || strings.Contains(lt, "today") {
				doNow = append(doNow, task)
			} else {
				schedule = append(schedule, task)
			}
		}

		out := &Output{
			Insights: []string{
				fmt.Sprintf("%d of %d tasks are genuinely urgent", len(doNow), len(tasks)),
			},
			Data: map[string]any{"do_now": doNow, "schedule": schedule},
		}
		for i, task := range doNow {
			out.Recommendations = append(out.Recommendations, itemLine(i+1, "Do now: "+task))
		}
		for _, task := range schedule {
			out.NextSteps = append(out.NextSteps, "Schedule: "+task)
		}
		if delegate, ok := answers.Get("delegate"); ok && (delegate == "yes" || delegate == "true") {
			out.NextSteps = append(out.NextSteps, "Hand the urgent-but-routine items to your delegate")
		}
		out.Confidence = confidenceFor(t, answers)
		return out, nil
	}
	return t
}

// NewMoSCoW forces must/should/could/won't trade-offs over a scope list.
func NewMoSCoW() Framework {
	t := &Template{
		Meta: Descriptor{
			ID:               "moscow-method",
			Name:             "MoSCoW Method",
			Category:         CategoryPrioritization,
			Tags:             []string{"scope", "requirements", "tradeoffs", "planning"},
			Difficulty:       DifficultyBeginner,
			EstimatedMinutes: 15,
			SchemaVersion:    "core",
		},
		QuestionSet: [][]Question{{
			{ID: "items", Prompt: "List every candidate item in scope.", Kind: KindText, Required: true},
			{ID: "musts", Prompt: "Which items would make the effort pointless if dropped?", Kind: KindText, Required: true},
			{ID: "capacity", Prompt: "Roughly what share of the list can you actually deliver?", Kind: KindChoice, Required: false,
				Options: []string{"a quarter", "half", "most"}},
		}},
	}
	t.ProcessFunc = func(answers Answers, _ *Context) (*Output, error) {
		items := splitItems(mustGet(answers, "items"))
		musts := splitItems(mustGet(answers, "musts"))

		mustSet := make(map[string]bool, len(musts))
		for _, m := range musts {
			mustSet[strings.ToLower(m)] = true
		}

		var should []string
		for _, item := range items {
			if !mustSet[strings.ToLower(item)] {
				should = append(should, item)
			}
		}

		out := &Output{
			Insights: []string{
				fmt.Sprintf("%d must-have items anchor the scope; %d remain negotiable", len(musts), len(should)),
			},
			Data: map[string]any{"must": musts, "negotiable": should},
		}
		for _, m := range musts {
			out.Recommendations = append(out.Recommendations, "Protect: "+m)
		}
		out.NextSteps = append(out.NextSteps,
			"Rank the negotiable items into should/could/won't with the team",
			"Publish the won't list so nobody re-litigates it mid-delivery",
		)
		out.Confidence = confidenceFor(t, answers)
		return out, nil
	}
	return t
}

// NewImpactEffort plots work on an impact-versus-effort grid to surface
// quick wins.
func NewImpactEffort() Framework {
	t := &Template{
		Meta: Descriptor{
			ID:               "impact-effort-matrix",
			Name:             "Impact-Effort Matrix",
			Category:         CategoryPrioritization,
			Tags:             []string{"impact", "effort", "quick-wins", "planning"},
			Difficulty:       DifficultyIntermediate,
			EstimatedMinutes: 15,
			SchemaVersion:    "core",
		},
		QuestionSet: [][]Question{{
			{ID: "options", Prompt: "List the options you are weighing.", Kind: KindText, Required: true},
			{ID: "high_impact", Prompt: "Which of them would move the needle most?", Kind: KindText, Required: true},
			{ID: "low_effort", Prompt: "Which could be finished in a day or less?", Kind: KindText, Required: false},
		}},
	}
	t.ProcessFunc = func(answers Answers, _ *Context) (*Output, error) {
		options := splitItems(mustGet(answers, "options"))
		highImpact := toLowerSet(splitItems(mustGet(answers, "high_impact")))
		lowEffortRaw, _ := answers.Get("low_effort")
		lowEffort := toLowerSet(splitItems(lowEffortRaw))

		var quickWins, bigBets, fillIns []string
		for _, opt := range options {
			key := strings.ToLower(opt)
			switch {
			case highImpact[key] && lowEffort[key]:
				quickWins = append(quickWins, opt)
			case highImpact[key]:
				bigBets = append(bigBets, opt)
			case lowEffort[key]:
				fillIns = append(fillIns, opt)
			}
		}

		out := &Output{
			Insights: []string{
				fmt.Sprintf("%d quick wins, %d big bets among %d options", len(quickWins), len(bigBets), len(options)),
			},
			Data: map[string]any{"quick_wins": quickWins, "big_bets": bigBets, "fill_ins": fillIns},
		}
		for _, w := range quickWins {
			out.Recommendations = append(out.Recommendations, "Start with quick win: "+w)
		}
		for _, b := range bigBets {
			out.NextSteps = append(out.NextSteps, "Scope the big bet: "+b)
		}
		out.Confidence = confidenceFor(t, answers)
		return out, nil
	}
	return t
}
