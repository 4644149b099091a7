package metis

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/zoobzio/capitan"
)

// Registry owns the framework catalog, the legacy free-text command
// table, and the base ranking algorithm.
//
// # Concurrency
//
// The catalog is built once at process start and treated as read-only
// afterward. Registration is not expected to race with lookups; callers
// that hot-reload the catalog must add their own synchronization.
type Registry struct {
	frameworks map[string]Framework
	order      []string // registration order, for deterministic iteration

	legacy []legacyEntry
}

// legacyEntry is one row of the ordered legacy command table.
type legacyEntry struct {
	command string // normalized
	id      string
}

// NewRegistry creates an empty registry. Use DefaultRegistry for one
// preloaded with the standard catalog.
func NewRegistry() *Registry {
	return &Registry{
		frameworks: make(map[string]Framework),
	}
}

// Register inserts or replaces a framework under its descriptor ID.
// Last write wins. Returns an error when the descriptor is malformed;
// the registry is left unchanged in that case.
func (r *Registry) Register(fw Framework) error {
	if fw == nil {
		return fmt.Errorf("register: nil framework")
	}
	d := fw.Descriptor()
	if d.ID == "" {
		return fmt.Errorf("register: empty framework ID")
	}
	if d.Name == "" {
		return fmt.Errorf("register %q: empty display name", d.ID)
	}
	if d.EstimatedMinutes <= 0 {
		return fmt.Errorf("register %q: estimated minutes must be positive, got %d", d.ID, d.EstimatedMinutes)
	}
	if _, ok := difficultyRank[d.Difficulty]; !ok {
		return fmt.Errorf("register %q: unknown difficulty %q", d.ID, d.Difficulty)
	}

	signal := FrameworkRegistered
	if _, exists := r.frameworks[d.ID]; exists {
		signal = FrameworkReplaced
	} else {
		r.order = append(r.order, d.ID)
	}
	r.frameworks[d.ID] = fw

	capitan.Emit(context.Background(), signal,
		FieldFrameworkID.Field(d.ID),
		FieldFrameworkName.Field(d.Name),
		FieldCategory.Field(string(d.Category)),
		FieldDifficulty.Field(string(d.Difficulty)),
	)
	return nil
}

// RegisterAll registers frameworks best-effort: a malformed entry is
// reported via the error field on the registration signal and skipped,
// never blocking the rest of the catalog.
func (r *Registry) RegisterAll(fws ...Framework) {
	for _, fw := range fws {
		if err := r.Register(fw); err != nil {
			capitan.Error(context.Background(), FrameworkRegistered,
				FieldError.Field(err),
			)
		}
	}
}

// Get returns the framework registered under id.
func (r *Registry) Get(id string) (Framework, bool) {
	fw, ok := r.frameworks[id]
	return fw, ok
}

// Len returns the number of registered frameworks.
func (r *Registry) Len() int {
	return len(r.order)
}

// Descriptors returns all descriptors in registration order.
func (r *Registry) Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.frameworks[id].Descriptor())
	}
	return out
}

// ListByCategory returns descriptors in the given category, in
// registration order. The catalog is tens of entries; a linear scan is
// the index.
func (r *Registry) ListByCategory(c Category) []Descriptor {
	var out []Descriptor
	for _, id := range r.order {
		if d := r.frameworks[id].Descriptor(); d.Category == c {
			out = append(out, d)
		}
	}
	return out
}

// ListByTag returns descriptors carrying the given tag, in registration
// order.
func (r *Registry) ListByTag(tag string) []Descriptor {
	var out []Descriptor
	for _, id := range r.order {
		if d := r.frameworks[id].Descriptor(); d.HasTag(tag) {
			out = append(out, d)
		}
	}
	return out
}

// RegisterLegacy maps a free-text command to a framework ID. Re-mapping
// an existing command updates it in place, preserving table order.
func (r *Registry) RegisterLegacy(command, id string) {
	command = normalizeCommand(command)
	if command == "" {
		return
	}
	for i := range r.legacy {
		if r.legacy[i].command == command {
			r.legacy[i].id = id
			return
		}
	}
	r.legacy = append(r.legacy, legacyEntry{command: command, id: id})
}

// ResolveLegacyCommand maps old free-text commands to frameworks as the
// catalog evolves. Two tiers: an exact match on the normalized input,
// then substring containment in either direction, first match in
// table-insertion order. Returns false rather than an error when nothing
// matches; a miss is an expected, common outcome.
func (r *Registry) ResolveLegacyCommand(raw string) (Framework, bool) {
	cmd := normalizeCommand(raw)
	if cmd == "" {
		return nil, false
	}

	for _, e := range r.legacy {
		if e.command == cmd {
			return r.resolveLegacyHit(cmd, e)
		}
	}
	for _, e := range r.legacy {
		if sharesSubstring(e.command, cmd) {
			return r.resolveLegacyHit(cmd, e)
		}
	}

	nearest, _ := r.NearestLegacyCommand(cmd)
	capitan.Emit(context.Background(), LegacyCommandMissed,
		FieldCommand.Field(cmd),
		FieldNearest.Field(nearest),
	)
	return nil, false
}

func (r *Registry) resolveLegacyHit(cmd string, e legacyEntry) (Framework, bool) {
	fw, ok := r.frameworks[e.id]
	if !ok {
		// Stale table row pointing at an unregistered ID.
		return nil, false
	}
	capitan.Emit(context.Background(), LegacyCommandResolved,
		FieldCommand.Field(cmd),
		FieldFrameworkID.Field(e.id),
	)
	return fw, true
}

// NearestLegacyCommand returns the legacy command closest to raw by edit
// distance. Intended for "did you mean" hints in the presentation layer.
func (r *Registry) NearestLegacyCommand(raw string) (string, bool) {
	cmd := normalizeCommand(raw)
	if cmd == "" || len(r.legacy) == 0 {
		return "", false
	}
	best := ""
	bestDist := -1
	for _, e := range r.legacy {
		d := Levenshtein(cmd, e.command)
		if bestDist < 0 || d < bestDist {
			best, bestDist = e.command, d
		}
	}
	return best, true
}

// Rank computes the base ranking for a context: intent inference, then a
// per-framework raw score, clamped to at most 1.0 (negative scores keep
// their ordering but never survive the >0 cut). Returns recommendations
// sorted by non-increasing score, each carrying a generated reason.
// An empty catalog yields an empty slice, never an error.
func (r *Registry) Rank(ctx *Context) []Recommendation {
	intent := InferIntent(ctx)

	var keywords []string
	if ctx != nil {
		keywords = Tokenize(ctx.Topic + " " + ctx.Goal + " " + ctx.Audience)
	}

	audience, audienceKnown := Difficulty(""), false
	if ctx != nil {
		audience, audienceKnown = ClassifyAudience(ctx.Audience)
	}

	timeAvail, timeKnown := ctx.TimeAvailable()

	var out []Recommendation
	for _, id := range r.order {
		fw := r.frameworks[id]
		if !fw.Applicable(ctx) {
			continue
		}
		d := fw.Descriptor()

		score := 0.0
		if Intent(d.Category) == intent {
			score += weightCategoryMatch
		}
		score += weightTagMatch * float64(matchingTags(d.Tags, keywords))
		score += intentBonus[intent][d.Name]

		if audienceKnown {
			switch {
			case audience == d.Difficulty:
				score += weightAudienceMatch
			case difficultyRank[audience]+1 == difficultyRank[d.Difficulty]:
				// Too hard by exactly one level. No penalty for any
				// other mismatch, including framework easier than
				// audience.
				score -= penaltyTooHard
			}
		}

		if timeKnown {
			if d.EstimatedMinutes <= timeAvail {
				score += weightTimeFit
			} else {
				score -= penaltyTimeOver
			}
		}

		if score > 1.0 {
			score = 1.0
		}
		if score <= 0 {
			continue
		}

		out = append(out, Recommendation{
			Framework: d,
			Score:     score,
			Reason:    buildReason(d, intent),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// matchingTags counts descriptor tags that share a substring with any
// extracted keyword. Each tag counts at most once.
func matchingTags(tags, keywords []string) int {
	n := 0
	for _, tag := range tags {
		lt := strings.ToLower(tag)
		for _, kw := range keywords {
			if sharesSubstring(lt, kw) {
				n++
				break
			}
		}
	}
	return n
}

// buildReason assembles the generated reason for a ranked framework:
// intent-match clause, curated strength clause, quick-to-complete clause,
// and beginner-friendly clause, in that order.
func buildReason(d Descriptor, intent Intent) string {
	var clauses []string
	if Intent(d.Category) == intent && intent != IntentGeneral {
		clauses = append(clauses, fmt.Sprintf("matches your %s intent", intent))
	}
	if why, ok := strengthReason[d.Name]; ok {
		clauses = append(clauses, why)
	}
	if d.EstimatedMinutes <= quickFrameworkMinutes {
		clauses = append(clauses, fmt.Sprintf("quick to complete (about %d minutes)", d.EstimatedMinutes))
	}
	if d.Difficulty == DifficultyBeginner {
		clauses = append(clauses, "easy to pick up for any audience")
	}
	if len(clauses) == 0 {
		return fmt.Sprintf("%s is a solid general-purpose fit", d.Name)
	}
	joined := strings.Join(clauses, "; ")
	return strings.ToUpper(joined[:1]) + joined[1:]
}

// CatalogStats reports catalog composition. SchemaVersion exists for
// these statistics only; it never influences scoring.
type CatalogStats struct {
	Total        int
	ByCategory   map[Category]int
	ByDifficulty map[Difficulty]int
	BySchema     map[string]int
}

// Stats computes catalog composition counts.
func (r *Registry) Stats() CatalogStats {
	s := CatalogStats{
		Total:        len(r.order),
		ByCategory:   make(map[Category]int),
		ByDifficulty: make(map[Difficulty]int),
		BySchema:     make(map[string]int),
	}
	for _, id := range r.order {
		d := r.frameworks[id].Descriptor()
		s.ByCategory[d.Category]++
		s.ByDifficulty[d.Difficulty]++
		s.BySchema[d.SchemaVersion]++
	}
	return s
}
