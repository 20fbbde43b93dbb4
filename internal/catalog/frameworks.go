package catalog

func defaultFrameworks() []Framework {
	return []Framework{
		{
			ID:          "lean_canvas",
			Name:        "Lean Canvas",
			Category:    "business_model",
			Description: "One-page business model sketch focused on problem, solution, and unfair advantage.",
			WhenToUse:   "Earliest stages, before the business model is settled.",
			ApplicationSteps: []string{
				"List the top three customer problems",
				"Define the customer segments and early adopters",
				"Sketch the solution and unique value proposition",
				"Identify key metrics, channels, and cost/revenue structure",
			},
		},
		{
			ID:          "customer_development",
			Name:        "Customer Development",
			Category:    "discovery",
			Description: "Structured interview process for validating problem and solution hypotheses with real customers.",
			WhenToUse:   "When core assumptions about the customer are untested.",
			ApplicationSteps: []string{
				"Write down the riskiest customer assumptions",
				"Run problem interviews with target customers",
				"Run solution interviews with a concrete offer",
				"Pivot or proceed based on the evidence",
			},
		},
		{
			ID:          "jobs_to_be_done",
			Name:        "Jobs to be Done",
			Category:    "discovery",
			Description: "Frames demand as the job a customer hires a product to do, independent of product category.",
			WhenToUse:   "When positioning or feature priorities are unclear.",
			ApplicationSteps: []string{
				"Interview recent switchers about their purchase timeline",
				"Extract the functional, emotional, and social job",
				"Map current solutions and their shortcomings",
				"Design the offer around the job, not the category",
			},
		},
		{
			ID:          "mvp_framework",
			Name:        "Minimum Viable Product",
			Category:    "validation",
			Description: "Smallest product slice that tests the core value hypothesis with real usage.",
			WhenToUse:   "Before committing to a full build.",
			ApplicationSteps: []string{
				"State the value hypothesis as a falsifiable claim",
				"Pick the cheapest experiment that can falsify it",
				"Ship to a small cohort and measure actual behavior",
				"Iterate or abandon based on the measured signal",
			},
		},
		{
			ID:          "product_market_fit",
			Name:        "Product-Market Fit Assessment",
			Category:    "validation",
			Description: "Survey- and retention-based assessment of whether the product satisfies a strong market demand.",
			WhenToUse:   "When usage exists but growth quality is uncertain.",
			ApplicationSteps: []string{
				"Run the very-disappointed survey on active users",
				"Segment responses by persona and use case",
				"Inspect retention curves for flattening",
				"Double down on the segment with the strongest signal",
			},
		},
		{
			ID:          "bcg_matrix",
			Name:        "BCG Growth-Share Matrix",
			Category:    "portfolio",
			Description: "Positions business units or products by market growth and relative share: Stars, Cash Cows, Question Marks, Dogs.",
			WhenToUse:   "Multi-product companies allocating investment across a portfolio.",
			ApplicationSteps: []string{
				"List business units or product lines with revenue",
				"Estimate market growth and relative share per unit",
				"Place each unit in its quadrant",
				"Set invest/hold/harvest/divest decisions per quadrant",
			},
		},
		{
			ID:          "porters_five_forces",
			Name:        "Porter's Five Forces",
			Category:    "competitive",
			Description: "Industry attractiveness analysis across rivalry, entrants, substitutes, and buyer/supplier power.",
			WhenToUse:   "Entering or defending a market position.",
			ApplicationSteps: []string{
				"Score rivalry intensity among existing competitors",
				"Assess barriers to entry and threat of new entrants",
				"Evaluate substitute products and switching costs",
				"Weigh buyer and supplier bargaining power",
				"Derive positioning moves from the weakest force",
			},
		},
		{
			ID:          "ansoff_matrix",
			Name:        "Ansoff Growth Matrix",
			Category:    "growth",
			Description: "Growth option grid over existing/new products and existing/new markets.",
			WhenToUse:   "Choosing between penetration, development, expansion, and diversification.",
			ApplicationSteps: []string{
				"Map current products against current markets",
				"Generate options in each of the four quadrants",
				"Score options by risk and capability fit",
				"Sequence the chosen moves",
			},
		},
		{
			ID:          "unit_economics",
			Name:        "Unit Economics Analysis",
			Category:    "financial",
			Description: "Per-unit contribution analysis: CAC, LTV, payback, and margin at the single-customer level.",
			WhenToUse:   "When growth spend must be justified by per-customer profitability.",
			ApplicationSteps: []string{
				"Define the unit (customer, order, seat)",
				"Compute fully loaded CAC by channel",
				"Model LTV from retention and gross margin",
				"Set payback and LTV:CAC targets per segment",
			},
		},
		{
			ID:          "ltv_cac_ratio",
			Name:        "LTV:CAC Ratio Analysis",
			Category:    "financial",
			Description: "Focused ratio tracking of customer lifetime value against acquisition cost.",
			WhenToUse:   "Evaluating channel efficiency and fundraising readiness.",
			ApplicationSteps: []string{
				"Compute LTV per cohort with gross margin applied",
				"Attribute CAC per channel including labor",
				"Track the ratio and payback monthly",
				"Reallocate spend toward ratios above 3",
			},
		},
		{
			ID:          "tam_sam_som",
			Name:        "TAM / SAM / SOM Sizing",
			Category:    "market",
			Description: "Top-down and bottom-up market sizing into total, serviceable, and obtainable segments.",
			WhenToUse:   "Fundraising narratives and market prioritization.",
			ApplicationSteps: []string{
				"Size the total market from industry data",
				"Constrain to the serviceable segment by product and geography",
				"Build a bottom-up obtainable estimate from sales capacity",
				"Reconcile top-down and bottom-up figures",
			},
		},
		{
			ID:          "cohort_analysis",
			Name:        "Cohort Analysis",
			Category:    "analytics",
			Description: "Retention and revenue behavior tracked by acquisition cohort over time.",
			WhenToUse:   "Separating growth from retention quality.",
			ApplicationSteps: []string{
				"Group customers by acquisition month",
				"Plot retention and revenue per cohort",
				"Compare early and recent cohorts",
				"Feed findings into LTV and payback models",
			},
		},
		{
			ID:          "aarrr_metrics",
			Name:        "AARRR Pirate Metrics",
			Category:    "growth",
			Description: "Funnel instrumentation across acquisition, activation, retention, referral, revenue.",
			WhenToUse:   "Instrumenting a product funnel for the first time.",
			ApplicationSteps: []string{
				"Define one metric per funnel stage",
				"Instrument events end to end",
				"Find the stage with the largest drop-off",
				"Run experiments against that stage",
			},
		},
		{
			ID:          "growth_loops",
			Name:        "Growth Loops",
			Category:    "growth",
			Description: "Self-reinforcing acquisition loops where output of one cycle feeds the next.",
			WhenToUse:   "Replacing funnel thinking once a repeatable motion exists.",
			ApplicationSteps: []string{
				"Map existing loops from user action to new-user input",
				"Quantify loop cycle time and amplification factor",
				"Remove the slowest or leakiest loop step",
				"Compound by stacking compatible loops",
			},
		},
		{
			ID:          "okr_framework",
			Name:        "Objectives and Key Results",
			Category:    "execution",
			Description: "Quarterly goal system pairing qualitative objectives with measurable key results.",
			WhenToUse:   "Aligning a growing team on few priorities.",
			ApplicationSteps: []string{
				"Set at most three company objectives",
				"Attach two to four measurable key results each",
				"Cascade to teams without fragmenting focus",
				"Grade and reset quarterly",
			},
		},
		{
			ID:          "swot_analysis",
			Name:        "SWOT Analysis",
			Category:    "diagnostic",
			Description: "Structured inventory of strengths, weaknesses, opportunities, and threats.",
			WhenToUse:   "Quick situational assessment before deeper work.",
			ApplicationSteps: []string{
				"Collect internal strengths and weaknesses with evidence",
				"Scan external opportunities and threats",
				"Pair strengths to opportunities for strategy candidates",
				"Assign owners to the top pairings",
			},
		},
		{
			ID:          "blue_ocean_strategy",
			Name:        "Blue Ocean Strategy",
			Category:    "competitive",
			Description: "Value innovation search for uncontested market space via the eliminate-reduce-raise-create grid.",
			WhenToUse:   "Escaping head-to-head competition in a crowded market.",
			ApplicationSteps: []string{
				"Draw the industry strategy canvas",
				"Apply the eliminate-reduce-raise-create grid",
				"Sketch the new value curve",
				"Test willingness to pay with noncustomers",
			},
		},
		{
			ID:          "balanced_scorecard",
			Name:        "Balanced Scorecard",
			Category:    "execution",
			Description: "Performance management across financial, customer, process, and learning perspectives.",
			WhenToUse:   "Mature organizations balancing short- and long-term measures.",
			ApplicationSteps: []string{
				"Translate strategy into objectives per perspective",
				"Choose leading and lagging measures",
				"Set targets and initiatives",
				"Review in a fixed operating cadence",
			},
		},
		{
			ID:          "value_chain_analysis",
			Name:        "Value Chain Analysis",
			Category:    "operations",
			Description: "Decomposition of activities to locate cost and differentiation advantage.",
			WhenToUse:   "Finding margin or defensibility inside operations.",
			ApplicationSteps: []string{
				"Map primary and support activities",
				"Attribute cost and value to each activity",
				"Benchmark against competitors where possible",
				"Restructure the weakest links",
			},
		},
		{
			ID:          "six_sigma",
			Name:        "Six Sigma",
			Category:    "operations",
			Description: "Statistical process improvement via the DMAIC cycle.",
			WhenToUse:   "High-volume processes with measurable defect rates.",
			ApplicationSteps: []string{
				"Define the defect and the process boundary",
				"Measure baseline process capability",
				"Analyze root causes statistically",
				"Improve and control with monitoring",
			},
		},
		{
			ID:          "bcg_matrix_saas",
			Name:        "BCG Matrix for SaaS Portfolios",
			Category:    "portfolio",
			Description: "BCG growth-share analysis adapted to recurring-revenue product lines using NRR and ARR growth.",
			WhenToUse:   "SaaS companies with several product lines or modules.",
			ApplicationSteps: []string{
				"List product lines with ARR and NRR",
				"Use ARR growth as the growth axis and NRR as the share proxy",
				"Place modules in quadrants",
				"Shift engineering allocation per quadrant",
			},
		},
		{
			ID:          "unit_economics_marketplace",
			Name:        "Marketplace Unit Economics",
			Category:    "financial",
			Description: "Two-sided unit economics covering take rate, supply acquisition, and demand CAC.",
			WhenToUse:   "Marketplaces balancing supply and demand spend.",
			ApplicationSteps: []string{
				"Split CAC by supply and demand side",
				"Compute contribution per matched transaction",
				"Model cross-side network effects on retention",
				"Set side-specific payback targets",
			},
		},
		{
			ID:          "porters_five_forces_healthcare",
			Name:        "Five Forces for Healthcare Markets",
			Category:    "competitive",
			Description: "Porter analysis adjusted for payer dynamics, regulation, and provider consolidation.",
			WhenToUse:   "Healthtech companies navigating payer and provider power.",
			ApplicationSteps: []string{
				"Treat payers as a distinct buyer force",
				"Score regulatory barriers as entry protection",
				"Assess provider consolidation as supplier power",
				"Derive contracting strategy from the dominant force",
			},
		},
	}
}
