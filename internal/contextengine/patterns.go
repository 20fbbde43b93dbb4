package contextengine

import "math"

// strategicPattern is one historical growth pattern with the metric profile
// of companies that executed it.
type strategicPattern struct {
	Name          string
	TargetMetrics map[string]float64
	Playbook      string
}

var patternLibrary = []strategicPattern{
	{
		Name: "PLG_to_Enterprise",
		TargetMetrics: map[string]float64{
			"revenue_growth_pct": 120,
			"nrr_pct":            115,
			"team_size":          80,
			"ltv_cac":            4.0,
		},
		Playbook: "Layer a sales-assisted motion on top of product-led acquisition; introduce enterprise tiers without throttling self-serve.",
	},
	{
		Name: "Geographic_Expansion",
		TargetMetrics: map[string]float64{
			"revenue_growth_pct": 90,
			"market_share_pct":   10,
			"team_size":          150,
		},
		Playbook: "Replicate the proven motion in adjacent regions; localize pricing and compliance before brand.",
	},
	{
		Name: "Vertical_Integration",
		TargetMetrics: map[string]float64{
			"revenue_growth_pct": 60,
			"gross_margin_pct":   50,
			"team_size":          200,
		},
		Playbook: "Absorb the margin-heavy adjacent step of the value chain once volume justifies the fixed cost.",
	},
}

// matchPatterns scores the company's metric profile against the pattern
// library. Similarity is the mean, over metrics present on both sides, of
// max(0, 1 - |actual-target|/target). Patterns with no overlapping metrics
// are skipped.
func matchPatterns(actual map[string]float64) []PatternMatch {
	var out []PatternMatch
	for _, p := range patternLibrary {
		var sum float64
		var n int
		for key, target := range p.TargetMetrics {
			a, ok := actual[key]
			if !ok || target == 0 {
				continue
			}
			sum += math.Max(0, 1-math.Abs(a-target)/target)
			n++
		}
		if n == 0 {
			continue
		}
		out = append(out, PatternMatch{
			Name:       p.Name,
			Similarity: sum / float64(n),
			Playbook:   p.Playbook,
		})
	}
	return out
}
