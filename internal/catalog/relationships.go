package catalog

// Relationships connects a framework to its complements, prerequisites,
// and natural successors.
type Relationships struct {
	Complementary []Related
	Prerequisites []Related
	ProgressesTo  []Related
}

// Related is one edge in the relationship graph.
type Related struct {
	ID       string
	Strength float64
	Note     string
}

func defaultRelationships() map[string]Relationships {
	return map[string]Relationships{
		"lean_canvas": {
			Complementary: []Related{
				{ID: "customer_development", Strength: 0.9, Note: "canvas hypotheses feed interview scripts"},
				{ID: "tam_sam_som", Strength: 0.6, Note: "market boxes need sizing"},
			},
			ProgressesTo: []Related{
				{ID: "mvp_framework", Strength: 0.8, Note: "validated canvas leads to a build decision"},
			},
		},
		"customer_development": {
			Complementary: []Related{
				{ID: "lean_canvas", Strength: 0.9, Note: "interview findings rewrite the canvas"},
				{ID: "jobs_to_be_done", Strength: 0.8, Note: "shared interview base"},
			},
			ProgressesTo: []Related{
				{ID: "product_market_fit", Strength: 0.7, Note: "evidence accumulates into a fit assessment"},
			},
		},
		"jobs_to_be_done": {
			Complementary: []Related{
				{ID: "customer_development", Strength: 0.8, Note: "job interviews reuse discovery cadence"},
			},
		},
		"mvp_framework": {
			Prerequisites: []Related{
				{ID: "customer_development", Strength: 0.7, Note: "build only validated hypotheses"},
			},
			ProgressesTo: []Related{
				{ID: "aarrr_metrics", Strength: 0.7, Note: "shipped product needs funnel instrumentation"},
			},
		},
		"product_market_fit": {
			Complementary: []Related{
				{ID: "cohort_analysis", Strength: 0.8, Note: "retention curves confirm the survey"},
			},
			ProgressesTo: []Related{
				{ID: "growth_loops", Strength: 0.6, Note: "fit unlocks repeatable growth work"},
			},
		},
		"bcg_matrix": {
			Complementary: []Related{
				{ID: "ansoff_matrix", Strength: 0.8, Note: "quadrant decisions become growth moves"},
				{ID: "unit_economics", Strength: 0.7, Note: "cash cow designation needs margin proof"},
			},
			Prerequisites: []Related{
				{ID: "tam_sam_som", Strength: 0.6, Note: "growth axis needs market sizing"},
			},
		},
		"porters_five_forces": {
			Complementary: []Related{
				{ID: "swot_analysis", Strength: 0.7, Note: "external forces map to threats and opportunities"},
				{ID: "value_chain_analysis", Strength: 0.6, Note: "force pressure localizes in chain activities"},
			},
			ProgressesTo: []Related{
				{ID: "blue_ocean_strategy", Strength: 0.6, Note: "hostile five-forces profile motivates new space"},
			},
		},
		"ansoff_matrix": {
			Complementary: []Related{
				{ID: "bcg_matrix", Strength: 0.8, Note: "portfolio positions pick the quadrant"},
				{ID: "tam_sam_som", Strength: 0.6, Note: "new-market options need sizing"},
			},
		},
		"unit_economics": {
			Complementary: []Related{
				{ID: "ltv_cac_ratio", Strength: 0.9, Note: "ratio is the headline of the unit model"},
				{ID: "cohort_analysis", Strength: 0.8, Note: "cohorts supply the retention inputs"},
			},
		},
		"ltv_cac_ratio": {
			Prerequisites: []Related{
				{ID: "cohort_analysis", Strength: 0.7, Note: "LTV without cohorts is a guess"},
			},
		},
		"aarrr_metrics": {
			Complementary: []Related{
				{ID: "cohort_analysis", Strength: 0.8, Note: "retention stage is cohort analysis"},
				{ID: "growth_loops", Strength: 0.6, Note: "funnel leaks become loop candidates"},
			},
		},
		"growth_loops": {
			Prerequisites: []Related{
				{ID: "product_market_fit", Strength: 0.8, Note: "loops amplify whatever exists, including churn"},
			},
		},
		"okr_framework": {
			Complementary: []Related{
				{ID: "balanced_scorecard", Strength: 0.5, Note: "scorecard measures can seed key results"},
			},
		},
		"swot_analysis": {
			ProgressesTo: []Related{
				{ID: "porters_five_forces", Strength: 0.7, Note: "threats deserve structured analysis"},
			},
		},
		"value_chain_analysis": {
			Complementary: []Related{
				{ID: "six_sigma", Strength: 0.6, Note: "weak links become improvement projects"},
			},
		},
	}
}
