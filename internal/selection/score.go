package selection

import (
	"fmt"

	"github.com/avendel/framework-advisor/internal/catalog"
	"github.com/avendel/framework-advisor/internal/contextengine"
	"github.com/avendel/framework-advisor/internal/taxonomy"
)

// Sub-score weights. They sum to 1.0.
const (
	weightStage      = 0.20
	weightProblem    = 0.30
	weightData       = 0.15
	weightComplexity = 0.10
	weightTeam       = 0.10
	weightTiming     = 0.15
)

// minFitThreshold drops frameworks whose adjusted fit offers no signal.
// The bound is strict: an exact 30 does not qualify.
const minFitThreshold = 30

func passesThreshold(fit float64) bool { return fit > minFitThreshold }

// SubScores breaks a fit score into its six components. Each component is
// in [0,100] before effectiveness adjustment.
type SubScores struct {
	Stage      float64 `json:"stage"`
	Problem    float64 `json:"problem"`
	Data       float64 `json:"data"`
	Complexity float64 `json:"complexity"`
	Team       float64 `json:"team"`
	Timing     float64 `json:"timing"`
}

// Composite collapses the sub-scores into the weighted fit score.
func (s SubScores) Composite() float64 {
	return s.Stage*weightStage +
		s.Problem*weightProblem +
		s.Data*weightData +
		s.Complexity*weightComplexity +
		s.Team*weightTeam +
		s.Timing*weightTiming
}

type scored struct {
	id           string
	tags         catalog.Tags
	subs         SubScores
	fit          float64
	confidence   float64
	urgencyScore float64
	rationale    []string
}

// scoreFramework computes the six sub-scores and the pre-adjustment
// composite for one framework against a company context.
func (s *Selector) scoreFramework(id string, tags catalog.Tags, ctx *contextengine.CompanyContext) scored {
	r := scored{id: id, tags: tags}
	r.subs.Stage = stageFit(id, tags, ctx.LifecycleStage)
	r.subs.Problem = problemFit(id, tags, ctx)
	r.subs.Data = dataFit(id, tags, ctx)
	r.subs.Complexity = complexityFit(tags, ctx)
	r.subs.Team = teamFit(tags, ctx.Team)
	r.subs.Timing, r.urgencyScore = timingFit(tags, ctx)
	r.fit = r.subs.Composite()
	return r
}

func stageFit(id string, tags catalog.Tags, stage taxonomy.TemporalStage) float64 {
	score := 20.0
	if tags.HasStage(stage) {
		score = 100
	} else {
		for _, s := range tags.Stages {
			if taxonomy.AdjacentStages(s, stage) {
				score = 60
				break
			}
		}
	}
	if coreBoostApplies(id, stage) {
		score *= 1.2
		if score > 100 {
			score = 100
		}
	}
	return score
}

// coreBoostApplies grants the canonical-framework boost when the company's
// stage falls in the band the core set was designed for.
func coreBoostApplies(id string, stage taxonomy.TemporalStage) bool {
	switch stage {
	case taxonomy.StagePreFormation, taxonomy.StageFormation, taxonomy.StageValidation:
		return catalog.IsCoreEarlyStage(id)
	case taxonomy.StageGrowth, taxonomy.StageScale, taxonomy.StageMaturity:
		return catalog.IsCoreGrowthStage(id)
	}
	return false
}

func problemFit(id string, tags catalog.Tags, ctx *contextengine.CompanyContext) float64 {
	if len(tags.ProblemArchetypes) == 0 || len(ctx.ProblemArchetypes) == 0 {
		return seededBand(40, 60, id, ctx.CompanyName, "problem")
	}
	have := map[taxonomy.ProblemArchetype]bool{}
	for _, a := range ctx.ProblemArchetypes {
		have[a] = true
	}
	matched := 0
	for _, a := range tags.ProblemArchetypes {
		if have[a] {
			matched++
		}
	}
	return float64(matched) / float64(len(tags.ProblemArchetypes)) * 100
}

func dataFit(id string, tags catalog.Tags, ctx *contextengine.CompanyContext) float64 {
	if len(tags.DataRequirements) == 0 {
		return seededBand(70, 90, id, ctx.CompanyName, "data")
	}
	have := map[taxonomy.DataRequirement]bool{}
	for _, d := range ctx.AvailableData {
		have[d] = true
	}
	matched := 0
	for _, d := range tags.DataRequirements {
		if have[d] {
			matched++
		}
	}
	return float64(matched) / float64(len(tags.DataRequirements)) * 100
}

func complexityFit(tags catalog.Tags, ctx *contextengine.CompanyContext) float64 {
	if taxonomy.ComplexityRank(tags.Complexity) <= taxonomy.ComplexityRank(ctx.ComplexityCapacity()) {
		return 100
	}
	return 60
}

func teamFit(tags catalog.Tags, team int) float64 {
	switch {
	case team >= tags.TeamSizeMin && team <= tags.TeamSizeMax:
		return 100
	case team < tags.TeamSizeMin/2:
		return 10
	case team < tags.TeamSizeMin:
		return 30
	default:
		return 50
	}
}

// timingFit scores delivery speed against the decision timeline and
// computes the urgency score used by the ranking boost.
func timingFit(tags catalog.Tags, ctx *contextengine.CompanyContext) (fit, urgency float64) {
	timeline := ctx.DecisionTimelineDays
	if timeline <= 0 {
		timeline = 90
	}
	fit = 50
	if tags.TimeToValueDays <= timeline {
		fit = 100
	}
	if ctx.UrgencyLevel() == "critical" && tags.TimeToValueDays <= 7 {
		urgency = 90
	}
	return fit, urgency
}

// adjustEffectiveness applies the observed-outcome multipliers, or the
// deterministic fallback when no record exists, then clamps the running
// score into [0,100].
func (s *Selector) adjustEffectiveness(r *scored, ctx *contextengine.CompanyContext) {
	if eff, ok := s.cat.Effectiveness(r.id); ok {
		r.fit *= eff.StageMultiplier(ctx.LifecycleStage)
		r.fit *= eff.IndustryMultiplier(ctx.Industry)
		r.confidence = eff.ConfidenceLevel * 100
	} else {
		r.confidence = 70
		jitter := 0.9 + 0.2*seededFraction(r.id, ctx.CompanyName, "effectiveness")
		r.fit *= jitter
		if catalog.IsIndustryVariant(r.id) {
			r.fit *= 0.7
			r.rationale = append(r.rationale, "Industry-variant framework scored conservatively: thinner evidence base than its parent")
		}
	}
	r.fit = clamp(r.fit, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// rankAdjust applies the urgency boost and attaches advisory rationale.
// The fundraising note never changes the score.
func (s *Selector) rankAdjust(r *scored, ctx *contextengine.CompanyContext) {
	if ctx.UrgencyLevel() == "critical" && r.urgencyScore > 80 {
		r.fit = clamp(r.fit*1.3, 0, 100)
		r.rationale = append(r.rationale, "Prioritized for fast time-to-value under critical urgency")
	}
	if ctx.Fundraising && catalog.IsFundraisingRelevant(r.id) {
		r.rationale = append(r.rationale,
			fmt.Sprintf("Produces investor-facing artifacts relevant to an active raise (%s)", r.id))
	}
}
