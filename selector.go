package metis

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/zoobzio/capitan"
)

// Selector turns a base ranking into a final, explainable decision:
// criteria filtering, per-user history boosts, rationale generation,
// diversification, and the compatibility/journey discovery features.
type Selector struct {
	registry *Registry

	// history is the explicit store set via WithHistory. When nil, the
	// store resolves through the context, then the global default, then
	// this selector's own in-memory fallback.
	history  HistoryStore
	fallback *MemoryHistory
}

// NewSelector creates a selector over the given registry.
func NewSelector(reg *Registry) *Selector {
	return &Selector{
		registry: reg,
		fallback: NewMemoryHistory(),
	}
}

// WithHistory sets an explicit history store, taking precedence over
// context and global stores. Tests use this to supply isolated stores.
func (s *Selector) WithHistory(store HistoryStore) *Selector {
	s.history = store
	return s
}

// Registry returns the underlying registry.
func (s *Selector) Registry() *Registry {
	return s.registry
}

// store resolves the history store for one selection.
func (s *Selector) store(ctx context.Context) HistoryStore {
	if resolved := ResolveHistoryStore(ctx, s.history); resolved != nil {
		return resolved
	}
	return s.fallback
}

// Select computes the final recommendation for a context. Criteria may
// be nil. The chosen framework ID is recorded into the user's history
// only when a recommendation exists.
//
// An empty result is a valid terminal outcome, not an error: Recommended
// and Alternates come back empty and Rationale equals NoMatchRationale.
// The returned error is reserved for history store failures.
func (s *Selector) Select(ctx context.Context, fctx *Context, crit *Criteria) (*SelectionResult, error) {
	rankCtx := fctx
	if crit != nil && crit.TimeAvailableMinutes > 0 {
		if _, ok := fctx.TimeAvailable(); !ok {
			// Let the criteria budget inform the base ranking's time-fit
			// term when the context carries no hint of its own.
			rankCtx = fctx.withTimeHint(crit.TimeAvailableMinutes)
		}
	}

	recs := s.registry.Rank(rankCtx)
	recs = applyCriteria(recs, crit)

	store := s.store(ctx)
	userKey := fctx.UserKey()

	recent, err := store.Recent(ctx, userKey)
	if err != nil {
		return nil, fmt.Errorf("history lookup for %q: %w", userKey, err)
	}
	recs = applyHistoryBoost(recs, recent)

	result := &SelectionResult{Context: fctx}
	if len(recs) == 0 {
		result.Recommended = []Recommendation{}
		result.Alternates = []Recommendation{}
		result.Rationale = NoMatchRationale
		capitan.Emit(ctx, SelectionEmpty,
			FieldUserKey.Field(userKey),
			FieldIntent.Field(string(InferIntent(fctx))),
		)
		return result, nil
	}

	result.Recommended = recs[:1]
	alternates := recs[1:]
	if len(alternates) > DefaultAlternateCount {
		alternates = alternates[:DefaultAlternateCount]
	}
	result.Alternates = alternates
	result.Rationale = buildRationale(recs[0], fctx, crit)

	chosen := recs[0].Framework
	if err := store.Record(ctx, userKey, chosen.ID); err != nil {
		return nil, fmt.Errorf("history record for %q: %w", userKey, err)
	}

	capitan.Emit(ctx, SelectionMade,
		FieldUserKey.Field(userKey),
		FieldFrameworkID.Field(chosen.ID),
		FieldFrameworkName.Field(chosen.Name),
		FieldScore.Field(float32(recs[0].Score)),
		FieldCandidateCount.Field(len(recs)),
		FieldAlternateCount.Field(len(result.Alternates)),
	)
	return result, nil
}

// applyCriteria applies the fixed filter/boost sequence: time cut,
// audience window, preferred-category boost, ID exclusions, required-tag
// cut, then a re-sort on the adjusted scores.
func applyCriteria(recs []Recommendation, crit *Criteria) []Recommendation {
	if crit == nil {
		return recs
	}

	out := recs[:0:0]
	for _, rec := range recs {
		d := rec.Framework

		if crit.TimeAvailableMinutes > 0 && d.EstimatedMinutes > crit.TimeAvailableMinutes {
			continue
		}
		if crit.AudienceLevel != "" {
			// Keep the stated level and exactly one level harder.
			diff := difficultyRank[d.Difficulty] - difficultyRank[crit.AudienceLevel]
			if diff != 0 && diff != 1 {
				continue
			}
		}
		if crit.PreferredCategory != "" && d.Category == crit.PreferredCategory {
			rec.Score = clamp01(rec.Score + boostPreferredCat)
		}
		if crit.ExcludedIDs[d.ID] {
			continue
		}
		if len(crit.RequiredTags) > 0 && !hasAnyTag(d, crit.RequiredTags) {
			continue
		}
		out = append(out, rec)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// hasAnyTag reports whether the descriptor carries at least one of the
// required tags (OR semantics).
func hasAnyTag(d Descriptor, tags []string) bool {
	for _, t := range tags {
		if d.HasTag(t) {
			return true
		}
	}
	return false
}

// applyHistoryBoost rewards frameworks the user has chosen before:
// min(occurrences x 0.05, 0.15) per candidate, then a re-sort.
func applyHistoryBoost(recs []Recommendation, recent []string) []Recommendation {
	if len(recs) == 0 || len(recent) == 0 {
		return recs
	}

	counts := make(map[string]int, len(recent))
	for _, id := range recent {
		counts[id]++
	}

	for i := range recs {
		if n := counts[recs[i].Framework.ID]; n > 0 {
			recs[i].Score = clamp01(recs[i].Score + historyBoost(n))
		}
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})
	return recs
}

// buildRationale assembles the prose explanation for the chosen
// framework from the registry reason and the context/criteria clauses
// that actually applied.
func buildRationale(chosen Recommendation, fctx *Context, crit *Criteria) string {
	var b strings.Builder
	b.WriteString(chosen.Reason)
	if !strings.HasSuffix(chosen.Reason, ".") {
		b.WriteString(".")
	}

	if fctx != nil && fctx.Topic != "" {
		fmt.Fprintf(&b, " It is a strong fit for your topic %q.", fctx.Topic)
	}
	if fctx != nil && fctx.Goal != "" {
		fmt.Fprintf(&b, " It directly supports your goal: %s.", fctx.Goal)
	}
	if crit != nil && crit.TimeAvailableMinutes > 0 {
		fmt.Fprintf(&b, " At about %d minutes it fits within your %d-minute budget.",
			chosen.Framework.EstimatedMinutes, crit.TimeAvailableMinutes)
	}
	if crit != nil && crit.AudienceLevel != "" {
		fmt.Fprintf(&b, " Its %s difficulty suits a %s audience.",
			chosen.Framework.Difficulty, crit.AudienceLevel)
	}
	return b.String()
}

// SelectDiverse returns up to count recommendations spread across
// distinct categories: a greedy one-per-category pass over the base
// ranking in score order, then a backfill from the remaining candidates.
// Count values below one fall back to DefaultDiverseCount. History and
// criteria do not apply; no selection is recorded.
func (s *Selector) SelectDiverse(fctx *Context, count int) []Recommendation {
	if count < 1 {
		count = DefaultDiverseCount
	}
	recs := s.registry.Rank(fctx)

	chosen := make([]Recommendation, 0, count)
	usedIDs := make(map[string]bool)
	usedCategories := make(map[Category]bool)

	for _, rec := range recs {
		if len(chosen) >= count {
			break
		}
		if usedCategories[rec.Framework.Category] {
			continue
		}
		chosen = append(chosen, rec)
		usedIDs[rec.Framework.ID] = true
		usedCategories[rec.Framework.Category] = true
	}

	for _, rec := range recs {
		if len(chosen) >= count {
			break
		}
		if usedIDs[rec.Framework.ID] {
			continue
		}
		chosen = append(chosen, rec)
		usedIDs[rec.Framework.ID] = true
	}

	return chosen
}

// Compatibility scores how well two frameworks chain together, in [0,1]:
// differing categories score 0.3, overlapping tags 0.2, a combined
// estimate of 30 minutes or less 0.2, and an exact one-step difficulty
// progression 0.3. The progression term is order-sensitive: it only
// fires when a is the easier of the pair, so Compatibility(a,b) may
// exceed Compatibility(b,a). Discovery feature, never used for ranking.
func (s *Selector) Compatibility(a, b Descriptor) float64 {
	score := 0.0
	if a.Category != b.Category {
		score += 0.3
	}
	if tagsIntersect(a.Tags, b.Tags) {
		score += 0.2
	}
	if a.EstimatedMinutes+b.EstimatedMinutes <= 30 {
		score += 0.2
	}
	if difficultyRank[a.Difficulty]+1 == difficultyRank[b.Difficulty] {
		score += 0.3
	}
	return clamp01(score)
}

// CompatibilityMatrix builds the full pairwise compatibility matrix over
// the catalog, keyed by framework ID on both axes.
func (s *Selector) CompatibilityMatrix() map[string]map[string]float64 {
	descriptors := s.registry.Descriptors()
	matrix := make(map[string]map[string]float64, len(descriptors))
	for _, a := range descriptors {
		row := make(map[string]float64, len(descriptors))
		for _, b := range descriptors {
			if a.ID == b.ID {
				continue
			}
			row[b.ID] = s.Compatibility(a, b)
		}
		matrix[a.ID] = row
	}
	return matrix
}

func tagsIntersect(a, b []string) bool {
	for _, ta := range a {
		for _, tb := range b {
			if ta == tb {
				return true
			}
		}
	}
	return false
}

// Journey returns a predefined ordered framework sequence for a
// starting-point/goal pair. The normalized "start_goal" key is matched
// against the journey table by substring containment; IDs that fail to
// resolve through the registry are skipped. When no entry matches, or
// the matched journey resolves to nothing, the default journey applies.
func (s *Selector) Journey(startingPoint, goal string) []Descriptor {
	key := normalizeCommand(startingPoint) + "_" + normalizeCommand(goal)

	ids := defaultJourney
	for _, j := range journeyTable {
		if sharesSubstring(j.Key, key) {
			if resolved := s.resolveJourney(j.IDs); len(resolved) > 0 {
				s.emitJourney(j.Key, resolved)
				return resolved
			}
			break
		}
	}

	resolved := s.resolveJourney(ids)
	s.emitJourney("default", resolved)
	return resolved
}

// resolveJourney maps journey IDs to descriptors, dropping any ID not
// present in the registry.
func (s *Selector) resolveJourney(ids []string) []Descriptor {
	var out []Descriptor
	for _, id := range ids {
		if fw, ok := s.registry.Get(id); ok {
			out = append(out, fw.Descriptor())
		}
	}
	return out
}

func (s *Selector) emitJourney(key string, steps []Descriptor) {
	capitan.Emit(context.Background(), JourneyResolved,
		FieldJourneyKey.Field(key),
		FieldStepCount.Field(len(steps)),
	)
}
