// Package selection scores the framework catalog against a company context
// and assembles a ranked, diversity-aware recommendation portfolio.
package selection

import (
	"fmt"
	"sort"

	"github.com/avendel/framework-advisor/internal/catalog"
	"github.com/avendel/framework-advisor/internal/contextengine"
	"github.com/avendel/framework-advisor/internal/taxonomy"
)

// Recommendation is one ranked framework with its score breakdown and
// relationship context.
type Recommendation struct {
	FrameworkID    string    `json:"framework_id"`
	Name           string    `json:"name"`
	FitScore       float64   `json:"fit_score"`
	Confidence     float64   `json:"confidence"`
	SubScores      SubScores `json:"sub_scores"`
	Rationale      []string  `json:"rationale,omitempty"`
	Complementary  []string  `json:"complementary,omitempty"`
	Prerequisites  []string  `json:"prerequisites,omitempty"`
	NextFrameworks []string  `json:"next_frameworks,omitempty"`
}

// Exclusion records a framework removed by an antipattern rule.
type Exclusion struct {
	FrameworkID  string   `json:"framework_id"`
	Reason       string   `json:"reason"`
	Alternatives []string `json:"alternatives,omitempty"`
}

// Result is a full selection outcome: the portfolio plus what was ruled out.
type Result struct {
	Recommendations []Recommendation `json:"recommendations"`
	Excluded        []Exclusion      `json:"excluded,omitempty"`
}

// Selector scores and ranks frameworks. All tables are injected through the
// catalog; a Selector holds no mutable state and is safe for concurrent use.
type Selector struct {
	cat *catalog.Catalog
}

// NewSelector builds a selector over the given catalog.
func NewSelector(cat *catalog.Catalog) *Selector {
	return &Selector{cat: cat}
}

// Select returns up to max recommendations for the company context.
func (s *Selector) Select(ctx *contextengine.CompanyContext, max int) []Recommendation {
	return s.SelectWithExclusions(ctx, max).Recommendations
}

// SelectWithExclusions runs the full pipeline: antipattern filter, scoring,
// effectiveness adjustment, threshold, ranking, portfolio assembly, and
// relationship enrichment.
func (s *Selector) SelectWithExclusions(ctx *contextengine.CompanyContext, max int) Result {
	if max <= 0 {
		max = 5
	}
	var res Result
	var candidates []scored

	for _, id := range s.cat.IDs() {
		if excl, bad := s.checkAntiPatterns(id, ctx); bad {
			res.Excluded = append(res.Excluded, excl)
			continue
		}
		tags, ok := s.cat.Tags(id)
		if !ok {
			continue
		}
		r := s.scoreFramework(id, tags, ctx)
		s.adjustEffectiveness(&r, ctx)
		if !passesThreshold(r.fit) {
			continue
		}
		s.rankAdjust(&r, ctx)
		candidates = append(candidates, r)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].fit != candidates[j].fit {
			return candidates[i].fit > candidates[j].fit
		}
		ci, cj := catalog.IsCorePortfolio(candidates[i].id), catalog.IsCorePortfolio(candidates[j].id)
		if ci != cj {
			return ci
		}
		return candidates[i].id < candidates[j].id
	})

	portfolio := assemblePortfolio(candidates, max)
	selected := map[string]bool{}
	for _, r := range portfolio {
		selected[r.id] = true
	}
	for _, r := range portfolio {
		res.Recommendations = append(res.Recommendations, s.finishRecommendation(r, selected))
	}
	return res
}

func (s *Selector) checkAntiPatterns(id string, ctx *contextengine.CompanyContext) (Exclusion, bool) {
	for _, ap := range s.cat.AntiPatterns(id) {
		if ap.Condition.Matches(ctx) {
			return Exclusion{
				FrameworkID:  id,
				Reason:       fmt.Sprintf("%s: %s", ap.Condition.Describe(), ap.Reason),
				Alternatives: ap.AlternativeFrameworks,
			}, true
		}
	}
	return Exclusion{}, false
}

// assemblePortfolio keeps the top two candidates unconditionally, then
// admits the rest only when they add a decision context or problem
// archetype the portfolio lacks, or clear the high-fit escape hatch.
func assemblePortfolio(candidates []scored, max int) []scored {
	var out []scored
	coveredCtx := map[taxonomy.DecisionContext]bool{}
	coveredArch := map[taxonomy.ProblemArchetype]bool{}

	cover := func(r scored) {
		for _, d := range r.tags.DecisionContexts {
			coveredCtx[d] = true
		}
		for _, a := range r.tags.ProblemArchetypes {
			coveredArch[a] = true
		}
	}

	for i, r := range candidates {
		if len(out) >= max {
			break
		}
		if i < 2 {
			out = append(out, r)
			cover(r)
			continue
		}
		if r.fit > 80 || addsCoverage(r, coveredCtx, coveredArch) {
			out = append(out, r)
			cover(r)
		}
	}
	return out
}

func addsCoverage(r scored, ctxs map[taxonomy.DecisionContext]bool, archs map[taxonomy.ProblemArchetype]bool) bool {
	for _, d := range r.tags.DecisionContexts {
		if !ctxs[d] {
			return true
		}
	}
	for _, a := range r.tags.ProblemArchetypes {
		if !archs[a] {
			return true
		}
	}
	return false
}

// finishRecommendation attaches names and relationship context. The
// complementary list is restricted to frameworks actually in the portfolio;
// prerequisites and successors are reported as-is.
func (s *Selector) finishRecommendation(r scored, selected map[string]bool) Recommendation {
	rec := Recommendation{
		FrameworkID: r.id,
		FitScore:    r.fit,
		Confidence:  r.confidence,
		SubScores:   r.subs,
		Rationale:   r.rationale,
	}
	if f, ok := s.cat.Framework(r.id); ok {
		rec.Name = f.Name
	}
	rel := s.cat.Relationships(r.id)
	for _, c := range rel.Complementary {
		if selected[c.ID] {
			rec.Complementary = append(rec.Complementary, c.ID)
		}
	}
	for _, p := range rel.Prerequisites {
		rec.Prerequisites = append(rec.Prerequisites, p.ID)
	}
	for _, n := range rel.ProgressesTo {
		rec.NextFrameworks = append(rec.NextFrameworks, n.ID)
	}
	for _, syn := range s.cat.Synergies(r.id) {
		partner := syn.Frameworks[0]
		if partner == r.id {
			partner = syn.Frameworks[1]
		}
		if selected[partner] {
			rec.Rationale = append(rec.Rationale,
				fmt.Sprintf("Synergy with %s also in this portfolio: %s", partner, syn.Evidence))
		}
	}
	return rec
}
