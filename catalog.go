package metis

import (
	"fmt"
	"strings"
)

// DefaultCatalog returns the standard framework entries, one constructor
// per entry, grouped by category in the catalog files.
func DefaultCatalog() []Framework {
	return []Framework{
		// Prioritization.
		NewEisenhowerMatrix(),
		NewMoSCoW(),
		NewImpactEffort(),
		// Learning.
		NewFeynman(),
		NewLearningMap(),
		// Innovation.
		NewSCAMPER(),
		NewSixThinkingHats(),
		NewIdeaCollection(),
		// Analysis.
		NewSWOT(),
		NewFiveWhys(),
		// Communication.
		NewPyramidPrinciple(),
		NewMessageMap(),
		// Strategy.
		NewSmartGoals(),
		NewGoldenCircle(),
		// Branding.
		NewBrandVoice(),
		// Critical thinking.
		NewSocraticQuestioning(),
		NewFirstPrinciples(),
	}
}

// DefaultRegistry returns a registry preloaded with the default catalog
// and the legacy command table.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.RegisterAll(DefaultCatalog()...)
	for _, lc := range defaultLegacyCommands {
		r.RegisterLegacy(lc.Command, lc.ID)
	}
	return r
}

// DefaultSelector returns a selector over a default registry with the
// built-in in-memory history store.
func DefaultSelector() *Selector {
	return NewSelector(DefaultRegistry())
}

// splitItems breaks a free-text answer into individual items on
// newlines, semicolons, and commas. Empty fragments are dropped.
func splitItems(answer string) []string {
	fields := strings.FieldsFunc(answer, func(r rune) bool {
		return r == '\n' || r == ';' || r == ','
	})
	var out []string
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

// confidenceFor derives an output confidence from answer completeness:
// a base for the required set (already validated) plus a share for each
// answered optional question.
func confidenceFor(t *Template, answers Answers) float64 {
	const base = 0.6
	var optional, answered int
	for _, qs := range t.QuestionSet {
		for _, q := range qs {
			if q.Required {
				continue
			}
			optional++
			if _, ok := answers.Get(q.ID); ok {
				answered++
			}
		}
	}
	if optional == 0 {
		return 0.8
	}
	return clamp01(base + 0.35*float64(answered)/float64(optional))
}

// itemLine formats an enumerated insight line.
func itemLine(n int, text string) string {
	return fmt.Sprintf("%d. %s", n, text)
}

// mustGet returns a required answer. Validation in Template.Process has
// already guaranteed presence; the empty fallback keeps process funcs
// total.
func mustGet(answers Answers, id string) string {
	v, _ := answers.Get(id)
	return v
}

// toLowerSet builds a lowercase membership set from items.
func toLowerSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[strings.ToLower(item)] = true
	}
	return set
}
