package metis

import "testing"

func TestInferIntent(t *testing.T) {
	cases := []struct {
		topic, goal string
		want        Intent
	}{
		{"prioritize my backlog", "", IntentPrioritization},
		{"", "decide between two offers", IntentPrioritization},
		{"learn rust properly", "", IntentLearning},
		{"I want to understand monads", "", IntentLearning},
		{"create a new onboarding flow", "", IntentInnovation},
		{"our deploy process", "analyze where it breaks", IntentAnalysis},
		{"structure my quarterly update", "", IntentCommunication},
		{"next year", "plan the roadmap", IntentStrategy},
		{"our brand guidelines", "", IntentBranding},
		{"question the migration premise", "", IntentCriticalThinking},
		{"the weather", "small talk", IntentGeneral},
		{"", "", IntentGeneral},
	}
	for _, tc := range cases {
		got := InferIntent(&Context{Topic: tc.topic, Goal: tc.goal})
		if got != tc.want {
			t.Errorf("InferIntent(%q, %q) = %s, want %s", tc.topic, tc.goal, got, tc.want)
		}
	}
}

func TestInferIntentFirstGroupWins(t *testing.T) {
	// "decide" (prioritization) and "learn" (learning) both appear; the
	// earlier group in the table wins regardless of word order.
	got := InferIntent(&Context{Topic: "learn how to decide faster"})
	if got != IntentPrioritization {
		t.Errorf("expected prioritization, got %s", got)
	}
}

func TestInferIntentNilContext(t *testing.T) {
	if got := InferIntent(nil); got != IntentGeneral {
		t.Errorf("expected general for nil context, got %s", got)
	}
}

func TestInferIntentCaseInsensitive(t *testing.T) {
	if got := InferIntent(&Context{Topic: "PRIORITIZE THE WORK"}); got != IntentPrioritization {
		t.Errorf("expected prioritization, got %s", got)
	}
}

func TestClassifyAudience(t *testing.T) {
	cases := []struct {
		description string
		want        Difficulty
		known       bool
	}{
		{"complete beginners", DifficultyBeginner, true},
		{"people new to the field", DifficultyBeginner, true},
		{"needs only basic coverage", DifficultyBeginner, true},
		{"senior engineers", DifficultyAdvanced, true},
		{"an expert panel", DifficultyAdvanced, true},
		{"Advanced practitioners", DifficultyAdvanced, true},
		{"the product team", DifficultyIntermediate, true},
		{"", "", false},
		{"   ", "", false},
	}
	for _, tc := range cases {
		got, known := ClassifyAudience(tc.description)
		if known != tc.known || got != tc.want {
			t.Errorf("ClassifyAudience(%q) = (%s, %v), want (%s, %v)",
				tc.description, got, known, tc.want, tc.known)
		}
	}
}
