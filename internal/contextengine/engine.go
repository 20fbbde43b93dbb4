package contextengine

import (
	"fmt"
	"strings"

	"github.com/avendel/framework-advisor/internal/catalog"
	"github.com/avendel/framework-advisor/internal/taxonomy"
)

// ValidationError reports a profile field the engine rejected.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("profile %s: %s", e.Field, e.Reason)
}

// Engine derives a CompanyContext from a raw profile. The catalog supplies
// the research-backed framework table for the final enrichment step.
type Engine struct {
	cat *catalog.Catalog
}

// NewEngine builds a context engine over the given catalog.
func NewEngine(cat *catalog.Catalog) *Engine {
	return &Engine{cat: cat}
}

// BuildContext runs the full derivation pipeline over a profile.
func (e *Engine) BuildContext(p RawProfile) (*CompanyContext, error) {
	if strings.TrimSpace(p.CompanyName) == "" {
		return nil, &ValidationError{Field: "company_name", Reason: "required"}
	}
	if p.TeamSize <= 0 {
		return nil, &ValidationError{Field: "team_size", Reason: fmt.Sprintf("must be positive, got %d", p.TeamSize)}
	}

	ctx := &CompanyContext{
		CompanyName:    p.CompanyName,
		Industry:       classifyIndustry(p.Sector, p.BusinessType),
		LifecycleStage: taxonomy.StageFromFunding(p.FundingStage),
		Team:           p.TeamSize,

		Revenue:      metricFrom(p.AnnualRevenue),
		GrowthRate:   metricFrom(p.RevenueGrowthPct),
		RunwayMonths: metricFrom(p.RunwayMonths),
		NRR:          metricFrom(p.NRRPct),
		GrossMargin:  metricFrom(p.GrossMarginPct),
		MarketGrowth: metricFrom(p.MarketGrowthPct),
		MarketShare:  metricFrom(p.MarketSharePct),

		CrisisMode:  p.CrisisMode,
		Fundraising: p.Fundraising,

		FoundingStory:     p.FoundingStory,
		UniqueInsights:    p.UniqueInsights,
		StrategicAssets:   p.StrategicAssets,
		Partnerships:      p.Partnerships,
		MarketTrends:      p.MarketTrends,
		RegulatoryFactors: p.RegulatoryFactors,
	}
	if p.CompetitorCount != nil {
		ctx.Competitors = *p.CompetitorCount
		ctx.CompetitorsKnown = true
	}
	if p.DecisionTimelineDays != nil {
		ctx.DecisionTimelineDays = *p.DecisionTimelineDays
	}
	ctx.LTVCACRatio = deriveLTVCAC(p)
	ctx.BurnMultiple = deriveBurnMultiple(p)

	ctx.Benchmarks = BenchmarksFor(ctx.Industry)
	e.assessCompetitiveDynamics(ctx)
	ctx.Inflection = classifyInflection(ctx)
	ctx.Narrative = narrativeFor(ctx)
	ctx.PatternMatches = matchPatterns(actualMetrics(ctx))
	ctx.PrimaryQuestion = primaryQuestion(ctx)
	ctx.HypothesisTree = buildHypothesisTree(ctx)
	e.buildChecklists(ctx, p)
	deriveTaxonomies(ctx, p)
	ctx.MetricTrends = syntheticTrends(ctx)
	ctx.EnhancedFrameworks = e.cat.EnhancedFrameworksFor(ctx.Inflection)
	return ctx, nil
}

func classifyIndustry(sector, businessType string) taxonomy.Industry {
	s := strings.ToLower(sector)
	switch {
	case strings.Contains(s, "fintech"), strings.Contains(s, "finance"), strings.Contains(s, "payments"):
		return taxonomy.IndustryFintech
	case strings.Contains(s, "health"):
		return taxonomy.IndustryHealthtech
	case strings.Contains(s, "marketplace"), strings.Contains(s, "ecommerce"), strings.Contains(s, "e-commerce"):
		return taxonomy.IndustryMarketplace
	case strings.Contains(s, "saas"), strings.Contains(s, "software"):
		if strings.EqualFold(businessType, "b2c") {
			return taxonomy.IndustrySaaSB2C
		}
		return taxonomy.IndustrySaaSB2B
	default:
		return taxonomy.IndustrySaaSB2B
	}
}

func deriveLTVCAC(p RawProfile) Metric {
	if p.LTV == nil || p.CAC == nil || *p.CAC <= 0 {
		return Metric{}
	}
	return KnownMetric(*p.LTV / *p.CAC)
}

// deriveBurnMultiple computes annual burn over net new revenue. Needs burn,
// revenue, and growth all known with positive net new revenue.
func deriveBurnMultiple(p RawProfile) Metric {
	if p.MonthlyBurn == nil || p.AnnualRevenue == nil || p.RevenueGrowthPct == nil {
		return Metric{}
	}
	netNew := *p.AnnualRevenue * *p.RevenueGrowthPct / 100
	if netNew <= 0 {
		return Metric{}
	}
	return KnownMetric(*p.MonthlyBurn * 12 / netNew)
}

// assessCompetitiveDynamics ranks the company by market share; without a
// known share the crowd size stands in as a rough rank.
func (e *Engine) assessCompetitiveDynamics(ctx *CompanyContext) {
	switch {
	case ctx.MarketShare.Above(20):
		ctx.CompetitivePosition = 1
	case ctx.MarketShare.Above(10):
		ctx.CompetitivePosition = 2
	case ctx.MarketShare.Above(5):
		ctx.CompetitivePosition = 3
	default:
		ctx.CompetitivePosition = ctx.Competitors / 2
	}

	switch {
	case ctx.MarketGrowth.Above(50):
		ctx.MarketDynamics = "emerging"
	case ctx.MarketGrowth.Above(20):
		ctx.MarketDynamics = "disrupting"
	case ctx.CompetitorsKnown && ctx.Competitors < 5:
		ctx.MarketDynamics = "consolidating"
	default:
		ctx.MarketDynamics = "stable"
	}

	if ctx.NRR.Above(ctx.Benchmarks.TopQuartileNRRPct) {
		ctx.Differentiators = append(ctx.Differentiators, "Retention above top-quartile benchmark")
	}
	if ctx.GrowthRate.Above(ctx.Benchmarks.TopQuartileGrowthPct) {
		ctx.Advantages = append(ctx.Advantages, "Growth rate above top-quartile benchmark")
	}
	if ctx.LTVCACRatio.Above(ctx.Benchmarks.TopQuartileLTVCAC) {
		ctx.Advantages = append(ctx.Advantages, "Unit economics above top-quartile benchmark")
	}
	if ctx.Competitors > 20 {
		ctx.Threats = append(ctx.Threats, "Crowded competitive field")
	}
	if ctx.MarketGrowth.Below(5) {
		ctx.Threats = append(ctx.Threats, "Slow-growing underlying market")
	}
}

// classifyInflection walks the decision tree top to bottom; the first match
// wins. Unknown revenue classifies as pre product-market fit.
func classifyInflection(ctx *CompanyContext) taxonomy.StrategicInflection {
	revenue := ctx.Revenue.Or(0)
	switch {
	case revenue == 0:
		return taxonomy.InflectionPrePMF
	case revenue < 1_000_000 && ctx.GrowthRate.Above(20):
		return taxonomy.InflectionAchievingPMF
	case ctx.GrowthRate.Above(ctx.Benchmarks.TopQuartileGrowthPct):
		return taxonomy.InflectionScalingGrowth
	case (ctx.LifecycleStage == taxonomy.StageGrowth || ctx.LifecycleStage == taxonomy.StageScale) && ctx.NRR.Above(110):
		return taxonomy.InflectionMarketExpansion
	case ctx.MarketShare.Above(15):
		return taxonomy.InflectionMarketLeadership
	default:
		return taxonomy.InflectionScalingGrowth
	}
}

func narrativeFor(ctx *CompanyContext) string {
	switch ctx.Inflection {
	case taxonomy.InflectionPrePMF:
		return fmt.Sprintf("%s is pre product-market fit. The binding constraint is evidence: every week should reduce uncertainty about who the customer is and what they will pay for.", ctx.CompanyName)
	case taxonomy.InflectionAchievingPMF:
		return fmt.Sprintf("%s is converging on product-market fit. The priority is deepening the strongest segment before widening the funnel.", ctx.CompanyName)
	case taxonomy.InflectionScalingGrowth:
		return fmt.Sprintf("%s is in the scaling phase. Growth quality now matters as much as growth rate: unit economics and retention determine whether scale compounds or burns.", ctx.CompanyName)
	case taxonomy.InflectionMarketExpansion:
		return fmt.Sprintf("%s has a retained core and is positioned to expand into adjacent markets or segments.", ctx.CompanyName)
	case taxonomy.InflectionMarketLeadership:
		return fmt.Sprintf("%s holds a leadership position. Defending share while funding the next curve is the central tension.", ctx.CompanyName)
	default:
		return fmt.Sprintf("%s faces a strategic transition point requiring structured analysis.", ctx.CompanyName)
	}
}

func actualMetrics(ctx *CompanyContext) map[string]float64 {
	m := map[string]float64{
		"team_size": float64(ctx.Team),
	}
	if ctx.GrowthRate.Known {
		m["revenue_growth_pct"] = ctx.GrowthRate.Value
	}
	if ctx.NRR.Known {
		m["nrr_pct"] = ctx.NRR.Value
	}
	if ctx.LTVCACRatio.Known {
		m["ltv_cac"] = ctx.LTVCACRatio.Value
	}
	if ctx.MarketShare.Known {
		m["market_share_pct"] = ctx.MarketShare.Value
	}
	if ctx.GrossMargin.Known {
		m["gross_margin_pct"] = ctx.GrossMargin.Value
	}
	return m
}

func primaryQuestion(ctx *CompanyContext) string {
	switch ctx.Inflection {
	case taxonomy.InflectionPrePMF:
		return "Which customer segment has a problem painful enough to pay for now?"
	case taxonomy.InflectionAchievingPMF:
		return "Which segment shows fit strong enough to concentrate all resources on?"
	case taxonomy.InflectionScalingGrowth:
		return "Which growth channel scales with improving, not degrading, unit economics?"
	case taxonomy.InflectionMarketExpansion:
		return "Which adjacent market maximizes reuse of the proven motion?"
	case taxonomy.InflectionMarketLeadership:
		return "How should leadership economics fund the next growth curve?"
	default:
		return "What is the highest-leverage strategic move available this quarter?"
	}
}

// buildHypothesisTree returns a root hypothesis with at most two children.
func buildHypothesisTree(ctx *CompanyContext) Hypothesis {
	root := Hypothesis{
		Statement:  fmt.Sprintf("The dominant constraint on %s is characteristic of the %s phase.", ctx.CompanyName, ctx.Inflection),
		Rationale:  ctx.Narrative,
		TestMethod: "Validate with the highest-ranked framework's first application step.",
	}
	if ctx.Revenue.Or(0) == 0 {
		root.SubHypotheses = append(root.SubHypotheses, Hypothesis{
			Statement:  "The addressable market is large enough to sustain a venture-scale business.",
			Rationale:  "Pre-revenue companies carry unvalidated market-size risk.",
			TestMethod: "Bottom-up TAM/SAM/SOM sizing from sales capacity.",
		})
	}
	if ctx.LTVCACRatio.Below(3) {
		root.SubHypotheses = append(root.SubHypotheses, Hypothesis{
			Statement:  "Current acquisition channels cannot reach sustainable unit economics.",
			Rationale:  fmt.Sprintf("LTV:CAC of %.1f is below the 3.0 sustainability threshold.", ctx.LTVCACRatio.Value),
			TestMethod: "Per-channel CAC decomposition and cohort LTV modeling.",
		})
	}
	if len(root.SubHypotheses) > 2 {
		root.SubHypotheses = root.SubHypotheses[:2]
	}
	return root
}

func (e *Engine) buildChecklists(ctx *CompanyContext, p RawProfile) {
	var challenges []string
	challenges = append(challenges, p.PrimaryChallenges...)
	if ctx.RunwayMonths.Below(12) {
		challenges = append(challenges, "Limited runway forcing near-term prioritization")
	}
	if ctx.LTVCACRatio.Known && ctx.LTVCACRatio.Value < ctx.Benchmarks.TopQuartileLTVCAC*0.5 {
		challenges = append(challenges, "Unit economics well below benchmark")
	}
	if ctx.GrowthRate.Known && ctx.GrowthRate.Value < ctx.Benchmarks.MedianGrowthPct {
		challenges = append(challenges, "Growth rate below industry median")
	}
	if ctx.Competitors > 50 {
		challenges = append(challenges, "Highly fragmented competitive field")
	}
	if ctx.Team > 20 && stageAtLeastTraction(ctx.LifecycleStage) {
		challenges = append(challenges, "Resource allocation across multiple initiatives")
	}
	if ctx.MarketShare.Above(1) {
		challenges = append(challenges, "Competitive positioning against established players")
	}
	ctx.Challenges = dedupe(challenges)

	if ctx.MarketGrowth.Above(20) {
		ctx.Opportunities = append(ctx.Opportunities, "Expanding underlying market")
	}
	if ctx.NRR.Above(110) {
		ctx.Opportunities = append(ctx.Opportunities, "Expansion revenue from the existing base")
	}
	if len(ctx.Partnerships) > 0 {
		ctx.Opportunities = append(ctx.Opportunities, "Distribution leverage through partnerships")
	}

	if ctx.RunwayMonths.Known {
		ctx.Constraints = append(ctx.Constraints, fmt.Sprintf("%.0f months of runway", ctx.RunwayMonths.Value))
	}
	ctx.Constraints = append(ctx.Constraints, fmt.Sprintf("Team of %d limits parallel initiatives", ctx.Team))

	if !ctx.Revenue.Known {
		ctx.Uncertainties = append(ctx.Uncertainties, "Revenue position unknown")
	}
	if !ctx.GrowthRate.Known {
		ctx.Uncertainties = append(ctx.Uncertainties, "Growth trajectory unknown")
	}
	if !ctx.CompetitorsKnown {
		ctx.Uncertainties = append(ctx.Uncertainties, "Competitive field unmapped")
	}

	switch ctx.Inflection {
	case taxonomy.InflectionPrePMF:
		ctx.StrategicOptions = []string{"Narrow to a single segment", "Pivot the problem", "Extend runway and keep searching"}
	case taxonomy.InflectionAchievingPMF:
		ctx.StrategicOptions = []string{"Concentrate on the strongest segment", "Raise on early fit evidence", "Harden retention before spending on acquisition"}
	case taxonomy.InflectionMarketExpansion:
		ctx.StrategicOptions = []string{"Adjacent segment entry", "Geographic expansion", "Platform extension"}
	case taxonomy.InflectionMarketLeadership:
		ctx.StrategicOptions = []string{"Defend share with switching costs", "Acquire emerging threats", "Fund a second product curve"}
	default:
		ctx.StrategicOptions = []string{"Double down on the best channel", "Fix unit economics before scaling spend", "Expand the product surface for the existing base"}
	}
}

func stageAtLeastTraction(s taxonomy.TemporalStage) bool {
	switch s {
	case taxonomy.StageTraction, taxonomy.StageGrowth, taxonomy.StageScale, taxonomy.StageMaturity:
		return true
	}
	return false
}

// dedupe removes duplicates preserving first occurrence order.
func dedupe(in []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// deriveTaxonomies fills the archetype, decision-context, and data
// availability sets the selector scores against.
func deriveTaxonomies(ctx *CompanyContext, p RawProfile) {
	var arch []taxonomy.ProblemArchetype
	switch ctx.Inflection {
	case taxonomy.InflectionPrePMF:
		arch = append(arch, taxonomy.ProblemCustomerDiscovery, taxonomy.ProblemProductMarketFit, taxonomy.ProblemBusinessModelDesign)
	case taxonomy.InflectionAchievingPMF:
		arch = append(arch, taxonomy.ProblemProductMarketFit, taxonomy.ProblemGrowthMechanics)
	case taxonomy.InflectionScalingGrowth:
		arch = append(arch, taxonomy.ProblemGrowthMechanics, taxonomy.ProblemUnitEconomics)
	case taxonomy.InflectionMarketExpansion:
		arch = append(arch, taxonomy.ProblemMarketAnalysis, taxonomy.ProblemGrowthMechanics)
	case taxonomy.InflectionMarketLeadership:
		arch = append(arch, taxonomy.ProblemCompetitiveStrategy, taxonomy.ProblemPortfolioOptimization)
	}
	for _, c := range ctx.Challenges {
		lc := strings.ToLower(c)
		switch {
		case strings.Contains(lc, "portfolio"), strings.Contains(lc, "allocation"):
			arch = append(arch, taxonomy.ProblemPortfolioOptimization)
		case strings.Contains(lc, "unit econ"), strings.Contains(lc, "cac"), strings.Contains(lc, "ltv"):
			arch = append(arch, taxonomy.ProblemUnitEconomics)
		case strings.Contains(lc, "compet"):
			arch = append(arch, taxonomy.ProblemCompetitiveStrategy)
		case strings.Contains(lc, "growth"):
			arch = append(arch, taxonomy.ProblemGrowthMechanics)
		case strings.Contains(lc, "churn"), strings.Contains(lc, "retention"):
			arch = append(arch, taxonomy.ProblemProductMarketFit)
		case strings.Contains(lc, "hiring"), strings.Contains(lc, "talent"):
			arch = append(arch, taxonomy.ProblemTalentManagement)
		case strings.Contains(lc, "runway"), strings.Contains(lc, "fundrais"):
			arch = append(arch, taxonomy.ProblemFinancialPlanning)
		case strings.Contains(lc, "market"):
			arch = append(arch, taxonomy.ProblemMarketAnalysis)
		}
	}
	ctx.ProblemArchetypes = dedupeArchetypes(arch)

	var dctx []taxonomy.DecisionContext
	if ctx.Inflection == taxonomy.InflectionPrePMF {
		dctx = append(dctx, taxonomy.DecisionExploratory)
	}
	switch ctx.UrgencyLevel() {
	case "critical":
		dctx = append(dctx, taxonomy.DecisionPrescriptive, taxonomy.DecisionDiagnostic)
	case "high":
		dctx = append(dctx, taxonomy.DecisionDiagnostic, taxonomy.DecisionEvaluative)
	default:
		dctx = append(dctx, taxonomy.DecisionDiagnostic, taxonomy.DecisionEvaluative, taxonomy.DecisionPredictive)
	}
	if ctx.Fundraising {
		dctx = append(dctx, taxonomy.DecisionEvaluative)
	}
	ctx.DecisionContexts = dedupeContexts(dctx)

	data := []taxonomy.DataRequirement{taxonomy.DataQualitativeOnly}
	if ctx.Revenue.Known {
		data = append(data, taxonomy.DataBasicQuantitative)
	}
	if ctx.NRR.Known || len(p.CohortRetention) > 0 {
		data = append(data, taxonomy.DataAdvancedMetrics)
	}
	if ctx.MarketGrowth.Known || ctx.CompetitorsKnown {
		data = append(data, taxonomy.DataMarketData)
	}
	if ctx.LTVCACRatio.Known || p.MonthlyBurn != nil {
		data = append(data, taxonomy.DataFinancialDetail)
	}
	ctx.AvailableData = data
}

func dedupeArchetypes(in []taxonomy.ProblemArchetype) []taxonomy.ProblemArchetype {
	seen := map[taxonomy.ProblemArchetype]bool{}
	var out []taxonomy.ProblemArchetype
	for _, a := range in {
		if seen[a] {
			continue
		}
		seen[a] = true
		out = append(out, a)
	}
	return out
}

func dedupeContexts(in []taxonomy.DecisionContext) []taxonomy.DecisionContext {
	seen := map[taxonomy.DecisionContext]bool{}
	var out []taxonomy.DecisionContext
	for _, d := range in {
		if seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	return out
}

// syntheticTrends fabricates short three-point series for the metrics the
// report plots, anchored on the current value.
func syntheticTrends(ctx *CompanyContext) map[string][]TrendPoint {
	trends := map[string][]TrendPoint{}
	series := func(current float64) []TrendPoint {
		return []TrendPoint{
			{Label: "two_quarters_ago", Value: current * 0.8},
			{Label: "last_quarter", Value: current * 0.9},
			{Label: "current", Value: current},
		}
	}
	if ctx.Revenue.Known && ctx.Revenue.Value > 0 {
		trends["annual_revenue"] = series(ctx.Revenue.Value)
	}
	if ctx.GrowthRate.Known {
		trends["revenue_growth_pct"] = series(ctx.GrowthRate.Value)
	}
	if ctx.NRR.Known {
		trends["nrr_pct"] = series(ctx.NRR.Value)
	}
	return trends
}
