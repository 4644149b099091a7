package metis

import (
	"reflect"
	"strings"
	"testing"
)

func TestDefaultCatalogDescriptors(t *testing.T) {
	seen := make(map[string]bool)
	for _, fw := range DefaultCatalog() {
		d := fw.Descriptor()
		if seen[d.ID] {
			t.Errorf("duplicate framework ID %q", d.ID)
		}
		seen[d.ID] = true

		if d.Name == "" {
			t.Errorf("%s: empty name", d.ID)
		}
		if d.EstimatedMinutes <= 0 {
			t.Errorf("%s: non-positive estimate", d.ID)
		}
		if _, ok := difficultyRank[d.Difficulty]; !ok {
			t.Errorf("%s: unknown difficulty %q", d.ID, d.Difficulty)
		}
		if len(d.Tags) == 0 {
			t.Errorf("%s: no tags", d.ID)
		}
		if d.SchemaVersion == "" {
			t.Errorf("%s: missing schema version", d.ID)
		}
	}
}

func TestDefaultCatalogQuestions(t *testing.T) {
	for _, fw := range DefaultCatalog() {
		d := fw.Descriptor()
		qs := fw.Questions(nil, 1)
		if len(qs) == 0 {
			t.Errorf("%s: no depth-1 questions", d.ID)
			continue
		}
		hasRequired := false
		for _, q := range qs {
			if q.ID == "" || q.Prompt == "" {
				t.Errorf("%s: question with empty ID or prompt", d.ID)
			}
			if q.Kind == KindChoice && len(q.Options) == 0 {
				t.Errorf("%s/%s: choice question without options", d.ID, q.ID)
			}
			if q.Required {
				hasRequired = true
			}
		}
		if !hasRequired {
			t.Errorf("%s: no required question at depth 1", d.ID)
		}
	}
}

func TestDefaultRegistryComplete(t *testing.T) {
	r := DefaultRegistry()
	if r.Len() != len(DefaultCatalog()) {
		t.Errorf("expected all %d catalog entries registered, got %d",
			len(DefaultCatalog()), r.Len())
	}
}

func TestEisenhowerProcess(t *testing.T) {
	fw := NewEisenhowerMatrix()
	out, err := fw.Process(Answers{
		"tasks":    "ship the release\nfix the build\nreply to legal asap",
		"deadline": "ship the release",
		"delegate": "yes",
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doNow, ok := out.Data["do_now"].([]string)
	if !ok {
		t.Fatalf("missing do_now data: %+v", out.Data)
	}
	want := []string{"ship the release", "reply to legal asap"}
	if !reflect.DeepEqual(doNow, want) {
		t.Errorf("do_now = %v, want %v", doNow, want)
	}
	if schedule := out.Data["schedule"].([]string); len(schedule) != 1 || schedule[0] != "fix the build" {
		t.Errorf("schedule = %v", schedule)
	}

	delegated := false
	for _, step := range out.NextSteps {
		if strings.Contains(step, "delegate") {
			delegated = true
		}
	}
	if !delegated {
		t.Error("expected a delegation next step")
	}
}

func TestMoSCoWProcess(t *testing.T) {
	fw := NewMoSCoW()
	out, err := fw.Process(Answers{
		"items": "auth, billing, dark mode",
		"musts": "auth",
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if must := out.Data["must"].([]string); len(must) != 1 || must[0] != "auth" {
		t.Errorf("must = %v", must)
	}
	negotiable := out.Data["negotiable"].([]string)
	if len(negotiable) != 2 {
		t.Errorf("negotiable = %v", negotiable)
	}
}

func TestImpactEffortQuadrants(t *testing.T) {
	fw := NewImpactEffort()
	out, err := fw.Process(Answers{
		"options":     "caching, rewrite, docs",
		"high_impact": "caching, rewrite",
		"low_effort":  "caching, docs",
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if qw := out.Data["quick_wins"].([]string); len(qw) != 1 || qw[0] != "caching" {
		t.Errorf("quick_wins = %v", qw)
	}
	if bb := out.Data["big_bets"].([]string); len(bb) != 1 || bb[0] != "rewrite" {
		t.Errorf("big_bets = %v", bb)
	}
	if fi := out.Data["fill_ins"].([]string); len(fi) != 1 || fi[0] != "docs" {
		t.Errorf("fill_ins = %v", fi)
	}
}

func TestBrandVoiceContradiction(t *testing.T) {
	fw := NewBrandVoice()
	out, err := fw.Process(Answers{
		"traits":      "warm, direct, Playful",
		"anti_traits": "stuffy, playful",
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found := false
	for _, rec := range out.Recommendations {
		if strings.Contains(rec, "Playful") && strings.Contains(rec, "both lists") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a contradiction recommendation, got %v", out.Recommendations)
	}
}

func TestFeynmanRequiresTopic(t *testing.T) {
	fw := NewFeynman()
	if fw.Applicable(&Context{}) {
		t.Error("expected inapplicability without a topic")
	}
	if !fw.Applicable(&Context{Topic: "pointers"}) {
		t.Error("expected applicability with a topic")
	}
}

func TestSplitItems(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"a, b; c\nd", []string{"a", "b", "c", "d"}},
		{"  spaced  ,  , stray;", []string{"spaced", "stray"}},
	}
	for _, tc := range cases {
		got := splitItems(tc.in)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("splitItems(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestConfidenceFor(t *testing.T) {
	tpl := &Template{QuestionSet: [][]Question{{
		{ID: "req", Required: true},
		{ID: "opt1", Required: false},
		{ID: "opt2", Required: false},
	}}}

	if got := confidenceFor(tpl, Answers{"req": "x"}); got != 0.6 {
		t.Errorf("no optionals answered: %f", got)
	}
	got := confidenceFor(tpl, Answers{"req": "x", "opt1": "y", "opt2": "z"})
	if diff := got - 0.95; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("all optionals answered: %f", got)
	}

	noOptionals := &Template{QuestionSet: [][]Question{{{ID: "req", Required: true}}}}
	if got := confidenceFor(noOptionals, Answers{"req": "x"}); got != 0.8 {
		t.Errorf("no optional questions: %f", got)
	}
}

func TestDefaultCatalogProcessHappyPaths(t *testing.T) {
	// Every entry must process a fully-answered question set without
	// error and produce an in-range confidence.
	for _, fw := range DefaultCatalog() {
		d := fw.Descriptor()
		answers := make(Answers)
		depth := 1
		if prog, ok := fw.(Progressive); ok {
			depth = prog.MaxDepth()
		}
		for i := 1; i <= depth; i++ {
			for _, q := range fw.Questions(nil, i) {
				answers[q.ID] = "a plausible answer for " + q.ID
			}
		}

		out, err := fw.Process(answers, &Context{Topic: "sample topic"})
		if err != nil {
			t.Errorf("%s: unexpected error: %v", d.ID, err)
			continue
		}
		if out.Confidence <= 0 || out.Confidence > 1 {
			t.Errorf("%s: confidence out of range: %f", d.ID, out.Confidence)
		}
		if len(out.Insights) == 0 {
			t.Errorf("%s: no insights produced", d.ID)
		}
	}
}
