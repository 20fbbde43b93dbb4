package catalog

import "github.com/avendel/framework-advisor/internal/taxonomy"

// Tags carries the scoring attributes for one framework.
type Tags struct {
	Stages            []taxonomy.TemporalStage
	ProblemArchetypes []taxonomy.ProblemArchetype
	DecisionContexts  []taxonomy.DecisionContext
	DataRequirements  []taxonomy.DataRequirement
	OutcomeTypes      []taxonomy.OutcomeType
	Complexity        taxonomy.ComplexityTier
	TeamSizeMin       int
	TeamSizeMax       int
	TimeToValueDays   int
	EaseOfUse         float64
	Actionability     float64
	Accuracy          float64
	StrategicImpact   float64
}

// HasStage reports whether stage is one of the framework's primary stages.
func (t Tags) HasStage(s taxonomy.TemporalStage) bool {
	for _, v := range t.Stages {
		if v == s {
			return true
		}
	}
	return false
}

func defaultTags() map[string]Tags {
	return map[string]Tags{
		"lean_canvas": {
			Stages:            []taxonomy.TemporalStage{taxonomy.StagePreFormation, taxonomy.StageFormation, taxonomy.StageValidation},
			ProblemArchetypes: []taxonomy.ProblemArchetype{taxonomy.ProblemBusinessModelDesign, taxonomy.ProblemCustomerDiscovery},
			DecisionContexts:  []taxonomy.DecisionContext{taxonomy.DecisionExploratory},
			DataRequirements:  []taxonomy.DataRequirement{taxonomy.DataQualitativeOnly},
			OutcomeTypes:      []taxonomy.OutcomeType{taxonomy.OutcomeStrategicClarity},
			Complexity:        taxonomy.ComplexityPlugAndPlay,
			TeamSizeMin:       1, TeamSizeMax: 20, TimeToValueDays: 1,
			EaseOfUse: 95, Actionability: 85, Accuracy: 60, StrategicImpact: 75,
		},
		"customer_development": {
			Stages:            []taxonomy.TemporalStage{taxonomy.StagePreFormation, taxonomy.StageFormation, taxonomy.StageValidation},
			ProblemArchetypes: []taxonomy.ProblemArchetype{taxonomy.ProblemCustomerDiscovery, taxonomy.ProblemProductMarketFit},
			DecisionContexts:  []taxonomy.DecisionContext{taxonomy.DecisionExploratory, taxonomy.DecisionDiagnostic},
			DataRequirements:  []taxonomy.DataRequirement{taxonomy.DataQualitativeOnly},
			OutcomeTypes:      []taxonomy.OutcomeType{taxonomy.OutcomeCustomerInsights},
			Complexity:        taxonomy.ComplexitySimple,
			TeamSizeMin:       1, TeamSizeMax: 30, TimeToValueDays: 14,
			EaseOfUse: 80, Actionability: 90, Accuracy: 75, StrategicImpact: 85,
		},
		"jobs_to_be_done": {
			Stages:            []taxonomy.TemporalStage{taxonomy.StageFormation, taxonomy.StageValidation, taxonomy.StageTraction},
			ProblemArchetypes: []taxonomy.ProblemArchetype{taxonomy.ProblemCustomerDiscovery, taxonomy.ProblemProductMarketFit, taxonomy.ProblemInnovationManagement},
			DecisionContexts:  []taxonomy.DecisionContext{taxonomy.DecisionExploratory, taxonomy.DecisionDiagnostic},
			DataRequirements:  []taxonomy.DataRequirement{taxonomy.DataQualitativeOnly},
			OutcomeTypes:      []taxonomy.OutcomeType{taxonomy.OutcomeCustomerInsights, taxonomy.OutcomeInnovationPipeline},
			Complexity:        taxonomy.ComplexitySimple,
			TeamSizeMin:       1, TeamSizeMax: 50, TimeToValueDays: 21,
			EaseOfUse: 70, Actionability: 80, Accuracy: 80, StrategicImpact: 80,
		},
		"mvp_framework": {
			Stages:            []taxonomy.TemporalStage{taxonomy.StageFormation, taxonomy.StageValidation},
			ProblemArchetypes: []taxonomy.ProblemArchetype{taxonomy.ProblemProductMarketFit, taxonomy.ProblemCustomerDiscovery},
			DecisionContexts:  []taxonomy.DecisionContext{taxonomy.DecisionExploratory, taxonomy.DecisionEvaluative},
			DataRequirements:  []taxonomy.DataRequirement{taxonomy.DataBasicQuantitative},
			OutcomeTypes:      []taxonomy.OutcomeType{taxonomy.OutcomeTacticalActions, taxonomy.OutcomeCustomerInsights},
			Complexity:        taxonomy.ComplexitySimple,
			TeamSizeMin:       1, TeamSizeMax: 25, TimeToValueDays: 30,
			EaseOfUse: 75, Actionability: 95, Accuracy: 70, StrategicImpact: 80,
		},
		"product_market_fit": {
			Stages:            []taxonomy.TemporalStage{taxonomy.StageValidation, taxonomy.StageTraction},
			ProblemArchetypes: []taxonomy.ProblemArchetype{taxonomy.ProblemProductMarketFit, taxonomy.ProblemCustomerDiscovery},
			DecisionContexts:  []taxonomy.DecisionContext{taxonomy.DecisionDiagnostic, taxonomy.DecisionEvaluative},
			DataRequirements:  []taxonomy.DataRequirement{taxonomy.DataBasicQuantitative},
			OutcomeTypes:      []taxonomy.OutcomeType{taxonomy.OutcomeCustomerInsights, taxonomy.OutcomeStrategicClarity},
			Complexity:        taxonomy.ComplexitySimple,
			TeamSizeMin:       2, TeamSizeMax: 60, TimeToValueDays: 14,
			EaseOfUse: 80, Actionability: 75, Accuracy: 75, StrategicImpact: 85,
		},
		"bcg_matrix": {
			Stages:            []taxonomy.TemporalStage{taxonomy.StageGrowth, taxonomy.StageScale, taxonomy.StageMaturity},
			ProblemArchetypes: []taxonomy.ProblemArchetype{taxonomy.ProblemPortfolioOptimization, taxonomy.ProblemCompetitiveStrategy, taxonomy.ProblemMarketAnalysis},
			DecisionContexts:  []taxonomy.DecisionContext{taxonomy.DecisionEvaluative, taxonomy.DecisionPrescriptive},
			DataRequirements:  []taxonomy.DataRequirement{taxonomy.DataBasicQuantitative, taxonomy.DataMarketData},
			OutcomeTypes:      []taxonomy.OutcomeType{taxonomy.OutcomeStrategicClarity, taxonomy.OutcomeFinancialProjections},
			Complexity:        taxonomy.ComplexityModerate,
			TeamSizeMin:       20, TeamSizeMax: 10000, TimeToValueDays: 14,
			EaseOfUse: 70, Actionability: 65, Accuracy: 70, StrategicImpact: 85,
		},
		"porters_five_forces": {
			Stages:            []taxonomy.TemporalStage{taxonomy.StageTraction, taxonomy.StageGrowth, taxonomy.StageScale},
			ProblemArchetypes: []taxonomy.ProblemArchetype{taxonomy.ProblemCompetitiveStrategy, taxonomy.ProblemMarketAnalysis},
			DecisionContexts:  []taxonomy.DecisionContext{taxonomy.DecisionDiagnostic, taxonomy.DecisionPredictive},
			DataRequirements:  []taxonomy.DataRequirement{taxonomy.DataMarketData},
			OutcomeTypes:      []taxonomy.OutcomeType{taxonomy.OutcomeCompetitiveAdvantage, taxonomy.OutcomeStrategicClarity},
			Complexity:        taxonomy.ComplexityModerate,
			TeamSizeMin:       5, TeamSizeMax: 10000, TimeToValueDays: 21,
			EaseOfUse: 65, Actionability: 60, Accuracy: 80, StrategicImpact: 85,
		},
		"ansoff_matrix": {
			Stages:            []taxonomy.TemporalStage{taxonomy.StageGrowth, taxonomy.StageScale, taxonomy.StageMaturity},
			ProblemArchetypes: []taxonomy.ProblemArchetype{taxonomy.ProblemGrowthMechanics, taxonomy.ProblemMarketAnalysis, taxonomy.ProblemRiskManagement},
			DecisionContexts:  []taxonomy.DecisionContext{taxonomy.DecisionPrescriptive, taxonomy.DecisionPredictive},
			DataRequirements:  []taxonomy.DataRequirement{taxonomy.DataMarketData, taxonomy.DataBasicQuantitative},
			OutcomeTypes:      []taxonomy.OutcomeType{taxonomy.OutcomeGrowthStrategy},
			Complexity:        taxonomy.ComplexitySimple,
			TeamSizeMin:       10, TeamSizeMax: 10000, TimeToValueDays: 7,
			EaseOfUse: 85, Actionability: 70, Accuracy: 65, StrategicImpact: 80,
		},
		"unit_economics": {
			Stages:            []taxonomy.TemporalStage{taxonomy.StageTraction, taxonomy.StageGrowth, taxonomy.StageScale},
			ProblemArchetypes: []taxonomy.ProblemArchetype{taxonomy.ProblemUnitEconomics, taxonomy.ProblemFinancialPlanning},
			DecisionContexts:  []taxonomy.DecisionContext{taxonomy.DecisionDiagnostic, taxonomy.DecisionEvaluative},
			DataRequirements:  []taxonomy.DataRequirement{taxonomy.DataFinancialDetail, taxonomy.DataAdvancedMetrics},
			OutcomeTypes:      []taxonomy.OutcomeType{taxonomy.OutcomeFinancialProjections, taxonomy.OutcomeOperationalImprovements},
			Complexity:        taxonomy.ComplexityModerate,
			TeamSizeMin:       3, TeamSizeMax: 10000, TimeToValueDays: 14,
			EaseOfUse: 60, Actionability: 90, Accuracy: 90, StrategicImpact: 90,
		},
		"ltv_cac_ratio": {
			Stages:            []taxonomy.TemporalStage{taxonomy.StageTraction, taxonomy.StageGrowth},
			ProblemArchetypes: []taxonomy.ProblemArchetype{taxonomy.ProblemUnitEconomics, taxonomy.ProblemGrowthMechanics},
			DecisionContexts:  []taxonomy.DecisionContext{taxonomy.DecisionEvaluative},
			DataRequirements:  []taxonomy.DataRequirement{taxonomy.DataFinancialDetail},
			OutcomeTypes:      []taxonomy.OutcomeType{taxonomy.OutcomeFinancialProjections},
			Complexity:        taxonomy.ComplexitySimple,
			TeamSizeMin:       2, TeamSizeMax: 5000, TimeToValueDays: 7,
			EaseOfUse: 80, Actionability: 85, Accuracy: 85, StrategicImpact: 80,
		},
		"tam_sam_som": {
			Stages:            []taxonomy.TemporalStage{taxonomy.StageFormation, taxonomy.StageValidation, taxonomy.StageTraction},
			ProblemArchetypes: []taxonomy.ProblemArchetype{taxonomy.ProblemMarketAnalysis, taxonomy.ProblemFinancialPlanning},
			DecisionContexts:  []taxonomy.DecisionContext{taxonomy.DecisionExploratory, taxonomy.DecisionEvaluative},
			DataRequirements:  []taxonomy.DataRequirement{taxonomy.DataMarketData},
			OutcomeTypes:      []taxonomy.OutcomeType{taxonomy.OutcomeStrategicClarity, taxonomy.OutcomeFinancialProjections},
			Complexity:        taxonomy.ComplexitySimple,
			TeamSizeMin:       1, TeamSizeMax: 1000, TimeToValueDays: 7,
			EaseOfUse: 75, Actionability: 55, Accuracy: 60, StrategicImpact: 70,
		},
		"cohort_analysis": {
			Stages:            []taxonomy.TemporalStage{taxonomy.StageTraction, taxonomy.StageGrowth, taxonomy.StageScale},
			ProblemArchetypes: []taxonomy.ProblemArchetype{taxonomy.ProblemUnitEconomics, taxonomy.ProblemGrowthMechanics, taxonomy.ProblemProductMarketFit},
			DecisionContexts:  []taxonomy.DecisionContext{taxonomy.DecisionDiagnostic},
			DataRequirements:  []taxonomy.DataRequirement{taxonomy.DataAdvancedMetrics},
			OutcomeTypes:      []taxonomy.OutcomeType{taxonomy.OutcomeCustomerInsights, taxonomy.OutcomeOperationalImprovements},
			Complexity:        taxonomy.ComplexityModerate,
			TeamSizeMin:       3, TeamSizeMax: 10000, TimeToValueDays: 14,
			EaseOfUse: 55, Actionability: 80, Accuracy: 90, StrategicImpact: 75,
		},
		"aarrr_metrics": {
			Stages:            []taxonomy.TemporalStage{taxonomy.StageValidation, taxonomy.StageTraction, taxonomy.StageGrowth},
			ProblemArchetypes: []taxonomy.ProblemArchetype{taxonomy.ProblemGrowthMechanics, taxonomy.ProblemProductMarketFit},
			DecisionContexts:  []taxonomy.DecisionContext{taxonomy.DecisionDiagnostic, taxonomy.DecisionPrescriptive},
			DataRequirements:  []taxonomy.DataRequirement{taxonomy.DataBasicQuantitative},
			OutcomeTypes:      []taxonomy.OutcomeType{taxonomy.OutcomeTacticalActions, taxonomy.OutcomeOperationalImprovements},
			Complexity:        taxonomy.ComplexitySimple,
			TeamSizeMin:       2, TeamSizeMax: 200, TimeToValueDays: 14,
			EaseOfUse: 85, Actionability: 90, Accuracy: 70, StrategicImpact: 70,
		},
		"growth_loops": {
			Stages:            []taxonomy.TemporalStage{taxonomy.StageTraction, taxonomy.StageGrowth},
			ProblemArchetypes: []taxonomy.ProblemArchetype{taxonomy.ProblemGrowthMechanics},
			DecisionContexts:  []taxonomy.DecisionContext{taxonomy.DecisionPrescriptive, taxonomy.DecisionExploratory},
			DataRequirements:  []taxonomy.DataRequirement{taxonomy.DataAdvancedMetrics},
			OutcomeTypes:      []taxonomy.OutcomeType{taxonomy.OutcomeGrowthStrategy},
			Complexity:        taxonomy.ComplexityModerate,
			TeamSizeMin:       5, TeamSizeMax: 500, TimeToValueDays: 30,
			EaseOfUse: 55, Actionability: 75, Accuracy: 70, StrategicImpact: 85,
		},
		"okr_framework": {
			Stages:            []taxonomy.TemporalStage{taxonomy.StageGrowth, taxonomy.StageScale, taxonomy.StageMaturity},
			ProblemArchetypes: []taxonomy.ProblemArchetype{taxonomy.ProblemOrganizationalDesign, taxonomy.ProblemOperationalExcellence, taxonomy.ProblemTalentManagement},
			DecisionContexts:  []taxonomy.DecisionContext{taxonomy.DecisionPrescriptive},
			DataRequirements:  []taxonomy.DataRequirement{taxonomy.DataBasicQuantitative},
			OutcomeTypes:      []taxonomy.OutcomeType{taxonomy.OutcomeOperationalImprovements, taxonomy.OutcomeTacticalActions},
			Complexity:        taxonomy.ComplexityModerate,
			TeamSizeMin:       10, TeamSizeMax: 10000, TimeToValueDays: 90,
			EaseOfUse: 65, Actionability: 85, Accuracy: 60, StrategicImpact: 75,
		},
		"swot_analysis": {
			Stages:            []taxonomy.TemporalStage{taxonomy.StageValidation, taxonomy.StageTraction, taxonomy.StageGrowth, taxonomy.StageScale},
			ProblemArchetypes: []taxonomy.ProblemArchetype{taxonomy.ProblemCompetitiveStrategy, taxonomy.ProblemRiskManagement},
			DecisionContexts:  []taxonomy.DecisionContext{taxonomy.DecisionDiagnostic, taxonomy.DecisionExploratory},
			DataRequirements:  []taxonomy.DataRequirement{taxonomy.DataQualitativeOnly},
			OutcomeTypes:      []taxonomy.OutcomeType{taxonomy.OutcomeStrategicClarity},
			Complexity:        taxonomy.ComplexityPlugAndPlay,
			TeamSizeMin:       1, TeamSizeMax: 10000, TimeToValueDays: 1,
			EaseOfUse: 95, Actionability: 50, Accuracy: 55, StrategicImpact: 60,
		},
		"blue_ocean_strategy": {
			Stages:            []taxonomy.TemporalStage{taxonomy.StageGrowth, taxonomy.StageScale, taxonomy.StageMaturity},
			ProblemArchetypes: []taxonomy.ProblemArchetype{taxonomy.ProblemCompetitiveStrategy, taxonomy.ProblemInnovationManagement, taxonomy.ProblemMarketAnalysis},
			DecisionContexts:  []taxonomy.DecisionContext{taxonomy.DecisionExploratory, taxonomy.DecisionPrescriptive},
			DataRequirements:  []taxonomy.DataRequirement{taxonomy.DataMarketData},
			OutcomeTypes:      []taxonomy.OutcomeType{taxonomy.OutcomeCompetitiveAdvantage, taxonomy.OutcomeInnovationPipeline},
			Complexity:        taxonomy.ComplexityComplex,
			TeamSizeMin:       15, TeamSizeMax: 10000, TimeToValueDays: 60,
			EaseOfUse: 45, Actionability: 55, Accuracy: 60, StrategicImpact: 90,
		},
		"balanced_scorecard": {
			Stages:            []taxonomy.TemporalStage{taxonomy.StageScale, taxonomy.StageMaturity},
			ProblemArchetypes: []taxonomy.ProblemArchetype{taxonomy.ProblemOperationalExcellence, taxonomy.ProblemOrganizationalDesign, taxonomy.ProblemFinancialPlanning},
			DecisionContexts:  []taxonomy.DecisionContext{taxonomy.DecisionEvaluative, taxonomy.DecisionPrescriptive},
			DataRequirements:  []taxonomy.DataRequirement{taxonomy.DataAdvancedMetrics, taxonomy.DataFinancialDetail},
			OutcomeTypes:      []taxonomy.OutcomeType{taxonomy.OutcomeOperationalImprovements},
			Complexity:        taxonomy.ComplexityEnterprise,
			TeamSizeMin:       50, TeamSizeMax: 100000, TimeToValueDays: 120,
			EaseOfUse: 35, Actionability: 70, Accuracy: 75, StrategicImpact: 70,
		},
		"value_chain_analysis": {
			Stages:            []taxonomy.TemporalStage{taxonomy.StageGrowth, taxonomy.StageScale, taxonomy.StageMaturity},
			ProblemArchetypes: []taxonomy.ProblemArchetype{taxonomy.ProblemOperationalExcellence, taxonomy.ProblemCompetitiveStrategy},
			DecisionContexts:  []taxonomy.DecisionContext{taxonomy.DecisionDiagnostic},
			DataRequirements:  []taxonomy.DataRequirement{taxonomy.DataFinancialDetail},
			OutcomeTypes:      []taxonomy.OutcomeType{taxonomy.OutcomeOperationalImprovements, taxonomy.OutcomeCompetitiveAdvantage},
			Complexity:        taxonomy.ComplexityComplex,
			TeamSizeMin:       20, TeamSizeMax: 100000, TimeToValueDays: 45,
			EaseOfUse: 40, Actionability: 65, Accuracy: 80, StrategicImpact: 75,
		},
		"six_sigma": {
			Stages:            []taxonomy.TemporalStage{taxonomy.StageScale, taxonomy.StageMaturity},
			ProblemArchetypes: []taxonomy.ProblemArchetype{taxonomy.ProblemOperationalExcellence},
			DecisionContexts:  []taxonomy.DecisionContext{taxonomy.DecisionDiagnostic, taxonomy.DecisionPrescriptive},
			DataRequirements:  []taxonomy.DataRequirement{taxonomy.DataAdvancedMetrics},
			OutcomeTypes:      []taxonomy.OutcomeType{taxonomy.OutcomeOperationalImprovements},
			Complexity:        taxonomy.ComplexityEnterprise,
			TeamSizeMin:       50, TeamSizeMax: 100000, TimeToValueDays: 180,
			EaseOfUse: 25, Actionability: 70, Accuracy: 95, StrategicImpact: 65,
		},
		"bcg_matrix_saas": {
			Stages:            []taxonomy.TemporalStage{taxonomy.StageGrowth, taxonomy.StageScale},
			ProblemArchetypes: []taxonomy.ProblemArchetype{taxonomy.ProblemPortfolioOptimization, taxonomy.ProblemUnitEconomics},
			DecisionContexts:  []taxonomy.DecisionContext{taxonomy.DecisionEvaluative},
			DataRequirements:  []taxonomy.DataRequirement{taxonomy.DataAdvancedMetrics},
			OutcomeTypes:      []taxonomy.OutcomeType{taxonomy.OutcomeStrategicClarity},
			Complexity:        taxonomy.ComplexityModerate,
			TeamSizeMin:       25, TeamSizeMax: 10000, TimeToValueDays: 14,
			EaseOfUse: 65, Actionability: 70, Accuracy: 75, StrategicImpact: 80,
		},
		"unit_economics_marketplace": {
			Stages:            []taxonomy.TemporalStage{taxonomy.StageTraction, taxonomy.StageGrowth},
			ProblemArchetypes: []taxonomy.ProblemArchetype{taxonomy.ProblemUnitEconomics, taxonomy.ProblemGrowthMechanics},
			DecisionContexts:  []taxonomy.DecisionContext{taxonomy.DecisionDiagnostic, taxonomy.DecisionEvaluative},
			DataRequirements:  []taxonomy.DataRequirement{taxonomy.DataFinancialDetail, taxonomy.DataAdvancedMetrics},
			OutcomeTypes:      []taxonomy.OutcomeType{taxonomy.OutcomeFinancialProjections},
			Complexity:        taxonomy.ComplexityComplex,
			TeamSizeMin:       5, TeamSizeMax: 5000, TimeToValueDays: 21,
			EaseOfUse: 45, Actionability: 85, Accuracy: 85, StrategicImpact: 85,
		},
		"porters_five_forces_healthcare": {
			Stages:            []taxonomy.TemporalStage{taxonomy.StageTraction, taxonomy.StageGrowth, taxonomy.StageScale},
			ProblemArchetypes: []taxonomy.ProblemArchetype{taxonomy.ProblemCompetitiveStrategy, taxonomy.ProblemRiskManagement},
			DecisionContexts:  []taxonomy.DecisionContext{taxonomy.DecisionDiagnostic},
			DataRequirements:  []taxonomy.DataRequirement{taxonomy.DataMarketData},
			OutcomeTypes:      []taxonomy.OutcomeType{taxonomy.OutcomeCompetitiveAdvantage, taxonomy.OutcomeRiskMitigation},
			Complexity:        taxonomy.ComplexityComplex,
			TeamSizeMin:       10, TeamSizeMax: 10000, TimeToValueDays: 30,
			EaseOfUse: 50, Actionability: 55, Accuracy: 80, StrategicImpact: 80,
		},
	}
}
