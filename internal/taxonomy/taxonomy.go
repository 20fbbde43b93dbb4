// Package taxonomy defines the closed vocabularies used across the advisor:
// industries, lifecycle stages, problem archetypes, decision contexts,
// complexity tiers, data requirements, outcome types, and strategic
// inflection points.
package taxonomy

import "strings"

type Industry string

const (
	IndustrySaaSB2B     Industry = "saas_b2b"
	IndustrySaaSB2C     Industry = "saas_b2c"
	IndustryMarketplace Industry = "marketplace"
	IndustryFintech     Industry = "fintech"
	IndustryHealthtech  Industry = "healthtech"
	IndustryEcommerce   Industry = "ecommerce"
	IndustryUniversal   Industry = "universal"
)

type TemporalStage string

const (
	StagePreFormation TemporalStage = "pre_formation"
	StageFormation    TemporalStage = "formation"
	StageValidation   TemporalStage = "validation"
	StageTraction     TemporalStage = "traction"
	StageGrowth       TemporalStage = "growth"
	StageScale        TemporalStage = "scale"
	StageMaturity     TemporalStage = "maturity"
)

// StageOrder is the canonical lifecycle ordering used for adjacency checks.
var StageOrder = []TemporalStage{
	StagePreFormation,
	StageFormation,
	StageValidation,
	StageTraction,
	StageGrowth,
	StageScale,
	StageMaturity,
}

func stageIndex(s TemporalStage) int {
	for i, v := range StageOrder {
		if v == s {
			return i
		}
	}
	return -1
}

// AdjacentStages reports whether two stages differ by exactly one position
// in the lifecycle ordering. Unknown stages are never adjacent.
func AdjacentStages(a, b TemporalStage) bool {
	ia, ib := stageIndex(a), stageIndex(b)
	if ia < 0 || ib < 0 {
		return false
	}
	d := ia - ib
	return d == 1 || d == -1
}

type ProblemArchetype string

const (
	ProblemCustomerDiscovery     ProblemArchetype = "customer_discovery"
	ProblemProductMarketFit      ProblemArchetype = "product_market_fit"
	ProblemBusinessModelDesign   ProblemArchetype = "business_model_design"
	ProblemGrowthMechanics       ProblemArchetype = "growth_mechanics"
	ProblemUnitEconomics         ProblemArchetype = "unit_economics_optimization"
	ProblemCompetitiveStrategy   ProblemArchetype = "competitive_strategy"
	ProblemMarketAnalysis        ProblemArchetype = "market_analysis"
	ProblemPortfolioOptimization ProblemArchetype = "portfolio_optimization"
	ProblemInnovationManagement  ProblemArchetype = "innovation_management"
	ProblemOperationalExcellence ProblemArchetype = "operational_excellence"
	ProblemOrganizationalDesign  ProblemArchetype = "organizational_design"
	ProblemFinancialPlanning     ProblemArchetype = "financial_planning"
	ProblemRiskManagement        ProblemArchetype = "risk_management"
	ProblemTalentManagement      ProblemArchetype = "talent_management"
	ProblemDigitalTransformation ProblemArchetype = "digital_transformation"
)

type DecisionContext string

const (
	DecisionExploratory  DecisionContext = "exploratory"
	DecisionDiagnostic   DecisionContext = "diagnostic"
	DecisionPrescriptive DecisionContext = "prescriptive"
	DecisionPredictive   DecisionContext = "predictive"
	DecisionEvaluative   DecisionContext = "evaluative"
)

type ComplexityTier string

const (
	ComplexityPlugAndPlay ComplexityTier = "plug_and_play"
	ComplexitySimple      ComplexityTier = "simple"
	ComplexityModerate    ComplexityTier = "moderate"
	ComplexityComplex     ComplexityTier = "complex"
	ComplexityEnterprise  ComplexityTier = "enterprise"
)

var complexityRank = map[ComplexityTier]int{
	ComplexityPlugAndPlay: 1,
	ComplexitySimple:      2,
	ComplexityModerate:    3,
	ComplexityComplex:     4,
	ComplexityEnterprise:  5,
}

// ComplexityRank returns the ordinal position of a tier, 0 for unknown tiers.
func ComplexityRank(t ComplexityTier) int { return complexityRank[t] }

type DataRequirement string

const (
	DataQualitativeOnly   DataRequirement = "qualitative_only"
	DataBasicQuantitative DataRequirement = "basic_quantitative"
	DataAdvancedMetrics   DataRequirement = "advanced_metrics"
	DataMarketData        DataRequirement = "market_data"
	DataFinancialDetail   DataRequirement = "financial_detail"
)

type OutcomeType string

const (
	OutcomeStrategicClarity        OutcomeType = "strategic_clarity"
	OutcomeTacticalActions         OutcomeType = "tactical_actions"
	OutcomeFinancialProjections    OutcomeType = "financial_projections"
	OutcomeOperationalImprovements OutcomeType = "operational_improvements"
	OutcomeCustomerInsights        OutcomeType = "customer_insights"
	OutcomeCompetitiveAdvantage    OutcomeType = "competitive_advantage"
	OutcomeRiskMitigation          OutcomeType = "risk_mitigation"
	OutcomeInnovationPipeline      OutcomeType = "innovation_pipeline"
	OutcomeGrowthStrategy          OutcomeType = "growth_strategy"
)

type StrategicInflection string

const (
	InflectionPrePMF                  StrategicInflection = "pre_product_market_fit"
	InflectionAchievingPMF            StrategicInflection = "achieving_product_market_fit"
	InflectionScalingGrowth           StrategicInflection = "scaling_growth"
	InflectionMarketExpansion         StrategicInflection = "market_expansion"
	InflectionCategoryCreation        StrategicInflection = "category_creation"
	InflectionPlatformShift           StrategicInflection = "platform_shift"
	InflectionProfitabilityTransition StrategicInflection = "profitability_transition"
	InflectionMarketLeadership        StrategicInflection = "market_leadership"
	InflectionDisruptionThreat        StrategicInflection = "disruption_threat"
)

// StageFromFunding maps investor-facing funding stage labels onto the
// lifecycle taxonomy. Unrecognized labels default to validation.
func StageFromFunding(fundingStage string) TemporalStage {
	switch strings.ToLower(strings.TrimSpace(fundingStage)) {
	case "pre_seed", "pre-seed", "preseed", "idea":
		return StagePreFormation
	case "seed":
		return StageValidation
	case "series_a", "series-a":
		return StageTraction
	case "series_b", "series-b":
		return StageGrowth
	case "series_c", "series-c", "series_d", "series-d":
		return StageScale
	case "late_stage", "public", "pre_ipo":
		return StageMaturity
	case "pre_formation", "formation", "validation", "traction", "growth", "scale", "maturity":
		return TemporalStage(strings.ToLower(strings.TrimSpace(fundingStage)))
	default:
		return StageValidation
	}
}
