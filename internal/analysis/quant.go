package analysis

import (
	"fmt"
	"math"

	"github.com/avendel/framework-advisor/internal/catalog"
	"github.com/avendel/framework-advisor/internal/contextengine"
)

// epsilon floors divisors so ratio sections never divide by zero.
const epsilon = 0.01

func safeDiv(num, den float64) float64 {
	return num / math.Max(den, epsilon)
}

// quantifyCurrentPosition snapshots the company's known metrics against
// its industry benchmarks. Only known metrics appear.
func quantifyCurrentPosition(c *contextengine.CompanyContext) map[string]float64 {
	pos := map[string]float64{
		"team_size": float64(c.Team),
	}
	if c.Revenue.Known {
		pos["annual_revenue"] = c.Revenue.Value
	}
	if c.GrowthRate.Known {
		pos["revenue_growth_pct"] = c.GrowthRate.Value
		pos["growth_vs_median"] = safeDiv(c.GrowthRate.Value, c.Benchmarks.MedianGrowthPct)
	}
	if c.NRR.Known {
		pos["nrr_pct"] = c.NRR.Value
		pos["nrr_vs_top_quartile"] = safeDiv(c.NRR.Value, c.Benchmarks.TopQuartileNRRPct)
	}
	if c.LTVCACRatio.Known {
		pos["ltv_cac"] = c.LTVCACRatio.Value
	}
	if c.RunwayMonths.Known {
		pos["runway_months"] = c.RunwayMonths.Value
	}
	if c.BurnMultiple.Known {
		pos["burn_multiple"] = c.BurnMultiple.Value
	}
	if c.MarketShare.Known {
		pos["market_share_pct"] = c.MarketShare.Value
	}
	return pos
}

// performGapAnalysis measures the distance to benchmark for each known
// metric. Positive values mean the company is behind the benchmark.
func performGapAnalysis(c *contextengine.CompanyContext) map[string]float64 {
	gaps := map[string]float64{}
	if c.GrowthRate.Known {
		gaps["growth_to_median_pct"] = c.Benchmarks.MedianGrowthPct - c.GrowthRate.Value
		gaps["growth_to_top_quartile_pct"] = c.Benchmarks.TopQuartileGrowthPct - c.GrowthRate.Value
	}
	if c.NRR.Known {
		gaps["nrr_to_top_quartile_pct"] = c.Benchmarks.TopQuartileNRRPct - c.NRR.Value
	}
	if c.LTVCACRatio.Known {
		gaps["ltv_cac_to_top_quartile"] = c.Benchmarks.TopQuartileLTVCAC - c.LTVCACRatio.Value
	}
	if c.GrossMargin.Known {
		gaps["gross_margin_to_benchmark_pct"] = c.Benchmarks.GrossMarginPct - c.GrossMargin.Value
	}
	return gaps
}

// performSensitivityAnalysis perturbs the main drivers by 20% in each
// direction and reports the resulting positions.
func performSensitivityAnalysis(c *contextengine.CompanyContext) map[string]float64 {
	sens := map[string]float64{}
	if c.RunwayMonths.Known {
		sens["runway_if_burn_up_20pct"] = c.RunwayMonths.Value / 1.2
		sens["runway_if_burn_down_20pct"] = c.RunwayMonths.Value / 0.8
	}
	if c.Revenue.Known && c.GrowthRate.Known {
		next := c.Revenue.Value * (1 + c.GrowthRate.Value/100)
		sens["revenue_next_year_base"] = next
		sens["revenue_next_year_growth_up_20pct"] = c.Revenue.Value * (1 + c.GrowthRate.Value*1.2/100)
		sens["revenue_next_year_growth_down_20pct"] = c.Revenue.Value * (1 + c.GrowthRate.Value*0.8/100)
	}
	if c.LTVCACRatio.Known {
		sens["ltv_cac_if_cac_up_20pct"] = c.LTVCACRatio.Value / 1.2
	}
	return sens
}

// generateScenarios projects base, upside, and downside paths one year out.
func generateScenarios(c *contextengine.CompanyContext) []Scenario {
	revenue := c.Revenue.Or(0)
	growth := c.GrowthRate.Or(c.Benchmarks.MedianGrowthPct)
	project := func(mult float64) map[string]float64 {
		g := growth * mult
		return map[string]float64{
			"revenue_growth_pct": g,
			"annual_revenue":     revenue * (1 + g/100),
		}
	}
	return []Scenario{
		{
			Name:        "base",
			Probability: 0.5,
			Assumptions: []string{"Current growth trajectory holds", "No structural change in the market"},
			Projections: project(1.0),
		},
		{
			Name:        "upside",
			Probability: 0.25,
			Assumptions: []string{"Top-performing channel scales", "Retention improves toward top quartile"},
			Projections: project(1.5),
		},
		{
			Name:        "downside",
			Probability: 0.25,
			Assumptions: []string{"Competitive pressure compresses growth", "Acquisition efficiency degrades"},
			Projections: project(0.5),
		},
	}
}

// assessRisks flags threshold breaches on known metrics only.
func assessRisks(c *contextengine.CompanyContext) []string {
	var risks []string
	if c.RunwayMonths.Below(6) {
		risks = append(risks, fmt.Sprintf("Critical runway: %.0f months of cash remaining", c.RunwayMonths.Value))
	} else if c.RunwayMonths.Below(12) {
		risks = append(risks, fmt.Sprintf("Short runway: %.0f months leaves little room for a fundraise", c.RunwayMonths.Value))
	}
	if c.LTVCACRatio.Below(1) {
		risks = append(risks, "Negative unit economics: each acquired customer destroys value")
	} else if c.LTVCACRatio.Below(3) {
		risks = append(risks, fmt.Sprintf("Weak unit economics: LTV:CAC of %.1f is below the 3.0 threshold", c.LTVCACRatio.Value))
	}
	if c.BurnMultiple.Above(2) {
		risks = append(risks, fmt.Sprintf("Capital inefficiency: burn multiple of %.1f", c.BurnMultiple.Value))
	}
	if c.GrowthRate.Known && c.GrowthRate.Value < c.Benchmarks.MedianGrowthPct {
		risks = append(risks, fmt.Sprintf("Growth of %.0f%% trails the %.0f%% industry median", c.GrowthRate.Value, c.Benchmarks.MedianGrowthPct))
	}
	if c.CompetitorsKnown && c.Competitors > 20 {
		risks = append(risks, "Crowded market with more than twenty direct competitors")
	}
	if c.CrisisMode {
		risks = append(risks, "Operating in declared crisis mode")
	}
	return risks
}

// assessOpportunities is the upside mirror of assessRisks.
func assessOpportunities(c *contextengine.CompanyContext) []string {
	var opps []string
	if c.NRR.Above(110) {
		opps = append(opps, fmt.Sprintf("Expansion engine: %.0f%% net revenue retention compounds without new logos", c.NRR.Value))
	}
	if c.GrowthRate.Above(c.Benchmarks.TopQuartileGrowthPct) {
		opps = append(opps, "Growth above the industry top quartile supports an aggressive posture")
	}
	if c.LTVCACRatio.Above(4) {
		opps = append(opps, fmt.Sprintf("LTV:CAC of %.1f leaves headroom to increase acquisition spend", c.LTVCACRatio.Value))
	}
	if c.MarketGrowth.Above(20) {
		opps = append(opps, fmt.Sprintf("Underlying market expanding at %.0f%% lifts all positions", c.MarketGrowth.Value))
	}
	return opps
}

// criticalFactors names what the framework's conclusions hinge on for this
// company.
func criticalFactors(fw catalog.Framework, c *contextengine.CompanyContext) []string {
	factors := []string{
		fmt.Sprintf("Honest inputs: %s output is only as good as the data behind it", fw.Name),
	}
	switch c.UrgencyLevel() {
	case "critical":
		factors = append(factors, "Decision speed dominates decision completeness at this urgency level")
	case "high":
		factors = append(factors, "Timebox the analysis to the decision deadline")
	}
	if !c.Revenue.Known || !c.GrowthRate.Known {
		factors = append(factors, "Key financial metrics are unreported; validate conclusions once they are instrumented")
	}
	return factors
}

// strategicRecommendations returns the top three actions by severity of the
// underlying gap.
func strategicRecommendations(c *contextengine.CompanyContext) []Recommendation {
	var recs []Recommendation
	if c.RunwayMonths.Below(9) {
		recs = append(recs, Recommendation{
			Action:    "Extend runway: cut non-critical spend and open a fundraise or bridge conversation now",
			Rationale: fmt.Sprintf("%.0f months of runway is inside the typical fundraise cycle", c.RunwayMonths.Value),
		})
	}
	if c.LTVCACRatio.Below(3) {
		recs = append(recs, Recommendation{
			Action:    "Fix unit economics before scaling acquisition spend",
			Rationale: fmt.Sprintf("LTV:CAC of %.1f is below the 3.0 sustainability threshold", c.LTVCACRatio.Value),
		})
	}
	if c.GrowthRate.Known && c.GrowthRate.Value < c.Benchmarks.MedianGrowthPct {
		recs = append(recs, Recommendation{
			Action:    "Diagnose the growth constraint: funnel instrumentation and channel-level economics",
			Rationale: fmt.Sprintf("Growth of %.0f%% trails the %.0f%% industry median", c.GrowthRate.Value, c.Benchmarks.MedianGrowthPct),
		})
	}
	if len(recs) == 0 {
		recs = append(recs, Recommendation{
			Action:    "Concentrate resources on the strongest segment and defend the current trajectory",
			Rationale: "No benchmark gap demands corrective action",
		})
	}
	if len(recs) > 3 {
		recs = recs[:3]
	}
	for i := range recs {
		recs[i].Priority = i + 1
	}
	return recs
}

// implementationRoadmap phases the framework's application steps across
// execution horizons, with an explicit measurement plan at the end.
func implementationRoadmap(fw catalog.Framework, c *contextengine.CompanyContext) []RoadmapPhase {
	steps := fw.ApplicationSteps
	split := len(steps) / 2
	if split == 0 && len(steps) > 0 {
		split = 1
	}
	phases := []RoadmapPhase{
		{Horizon: "immediate (0-2 weeks)", Actions: steps[:split]},
		{Horizon: "short term (2-8 weeks)", Actions: steps[split:]},
		{Horizon: "medium term (2-6 months)", Actions: []string{
			"Review framework conclusions against observed outcomes",
			"Adjust resource allocation based on measured results",
		}},
	}
	milestones := []string{
		"Define success metrics and a baseline before starting",
		"Pre-register the decision criteria so results cannot be reinterpreted after the fact",
		"Schedule a structured retrospective at the end of each horizon",
	}
	if c.CrisisMode {
		// Crisis collapses the roadmap to two horizons.
		phases = []RoadmapPhase{
			{Horizon: "immediate (0-1 week)", Actions: steps},
			{Horizon: "short term (1-4 weeks)", Actions: phases[2].Actions},
		}
	}
	phases = append(phases, RoadmapPhase{Horizon: "measurement plan", Actions: milestones})
	return phases
}
