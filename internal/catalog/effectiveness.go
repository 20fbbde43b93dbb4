package catalog

import (
	"strings"

	"github.com/avendel/framework-advisor/internal/taxonomy"
)

// Effectiveness is an observed-outcome record for a framework. Frameworks
// without a record are scored by the selector's seeded fallback path.
type Effectiveness struct {
	SuccessRate         float64
	StageMultipliers    map[taxonomy.TemporalStage]float64
	IndustryMultipliers map[taxonomy.Industry]float64
	ConfidenceLevel     float64
}

// StageMultiplier returns the multiplier for a stage, 1.0 when unrecorded.
func (e Effectiveness) StageMultiplier(s taxonomy.TemporalStage) float64 {
	if m, ok := e.StageMultipliers[s]; ok {
		return m
	}
	return 1.0
}

// IndustryMultiplier returns the multiplier for an industry, 1.0 when
// unrecorded.
func (e Effectiveness) IndustryMultiplier(i taxonomy.Industry) float64 {
	if m, ok := e.IndustryMultipliers[i]; ok {
		return m
	}
	return 1.0
}

func defaultEffectiveness() map[string]Effectiveness {
	return map[string]Effectiveness{
		"lean_canvas": {
			SuccessRate: 0.72,
			StageMultipliers: map[taxonomy.TemporalStage]float64{
				taxonomy.StagePreFormation: 1.10,
				taxonomy.StageFormation:    1.05,
				taxonomy.StageValidation:   1.00,
				taxonomy.StageGrowth:       0.80,
			},
			IndustryMultipliers: map[taxonomy.Industry]float64{
				taxonomy.IndustrySaaSB2B:     1.05,
				taxonomy.IndustryMarketplace: 1.00,
			},
			ConfidenceLevel: 0.85,
		},
		"customer_development": {
			SuccessRate: 0.78,
			StageMultipliers: map[taxonomy.TemporalStage]float64{
				taxonomy.StagePreFormation: 1.10,
				taxonomy.StageFormation:    1.10,
				taxonomy.StageValidation:   1.05,
				taxonomy.StageTraction:     0.95,
			},
			IndustryMultipliers: map[taxonomy.Industry]float64{
				taxonomy.IndustrySaaSB2B:    1.05,
				taxonomy.IndustryHealthtech: 1.00,
			},
			ConfidenceLevel: 0.90,
		},
		"mvp_framework": {
			SuccessRate: 0.70,
			StageMultipliers: map[taxonomy.TemporalStage]float64{
				taxonomy.StageFormation:  1.10,
				taxonomy.StageValidation: 1.05,
				taxonomy.StageGrowth:     0.75,
			},
			IndustryMultipliers: map[taxonomy.Industry]float64{
				taxonomy.IndustrySaaSB2B: 1.00,
				taxonomy.IndustryFintech: 0.90,
			},
			ConfidenceLevel: 0.80,
		},
		"bcg_matrix": {
			SuccessRate: 0.61,
			StageMultipliers: map[taxonomy.TemporalStage]float64{
				taxonomy.StageGrowth:   1.15,
				taxonomy.StageScale:    1.15,
				taxonomy.StageMaturity: 1.10,
				taxonomy.StageTraction: 0.80,
			},
			IndustryMultipliers: map[taxonomy.Industry]float64{
				taxonomy.IndustrySaaSB2B:     1.05,
				taxonomy.IndustryMarketplace: 0.95,
				taxonomy.IndustryEcommerce:   1.05,
			},
			ConfidenceLevel: 0.75,
		},
		"porters_five_forces": {
			SuccessRate: 0.66,
			StageMultipliers: map[taxonomy.TemporalStage]float64{
				taxonomy.StageTraction: 1.00,
				taxonomy.StageGrowth:   1.05,
				taxonomy.StageScale:    1.05,
			},
			IndustryMultipliers: map[taxonomy.Industry]float64{
				taxonomy.IndustryFintech:    1.10,
				taxonomy.IndustryHealthtech: 1.10,
				taxonomy.IndustrySaaSB2B:    1.00,
			},
			ConfidenceLevel: 0.80,
		},
		"unit_economics": {
			SuccessRate: 0.81,
			StageMultipliers: map[taxonomy.TemporalStage]float64{
				taxonomy.StageTraction: 1.10,
				taxonomy.StageGrowth:   1.10,
				taxonomy.StageScale:    1.05,
			},
			IndustryMultipliers: map[taxonomy.Industry]float64{
				taxonomy.IndustrySaaSB2B:     1.10,
				taxonomy.IndustryMarketplace: 1.05,
				taxonomy.IndustryEcommerce:   1.05,
			},
			ConfidenceLevel: 0.90,
		},
		"ltv_cac_ratio": {
			SuccessRate: 0.76,
			StageMultipliers: map[taxonomy.TemporalStage]float64{
				taxonomy.StageTraction: 1.05,
				taxonomy.StageGrowth:   1.10,
			},
			IndustryMultipliers: map[taxonomy.Industry]float64{
				taxonomy.IndustrySaaSB2B: 1.10,
			},
			ConfidenceLevel: 0.85,
		},
		"aarrr_metrics": {
			SuccessRate: 0.69,
			StageMultipliers: map[taxonomy.TemporalStage]float64{
				taxonomy.StageValidation: 1.05,
				taxonomy.StageTraction:   1.10,
				taxonomy.StageGrowth:     1.00,
			},
			IndustryMultipliers: map[taxonomy.Industry]float64{
				taxonomy.IndustrySaaSB2C:   1.10,
				taxonomy.IndustryEcommerce: 1.05,
			},
			ConfidenceLevel: 0.80,
		},
		"okr_framework": {
			SuccessRate: 0.63,
			StageMultipliers: map[taxonomy.TemporalStage]float64{
				taxonomy.StageGrowth: 1.05,
				taxonomy.StageScale:  1.10,
			},
			IndustryMultipliers: map[taxonomy.Industry]float64{
				taxonomy.IndustrySaaSB2B: 1.05,
			},
			ConfidenceLevel: 0.70,
		},
	}
}

// industryVariantSuffixes marks catalog ids that are industry-tuned
// specializations of a base framework. Variant scores carry a penalty
// because their evidence base is thinner than the parent's.
var industryVariantSuffixes = []string{
	"_saas", "_b2b", "_b2c", "_marketplace", "_fintech", "_healthcare",
	"_healthtech", "_ecommerce", "_gaming", "_hardware", "_biotech",
	"_edtech", "_proptech", "_logistics", "_media", "_consumer",
	"_enterprise", "_deeptech",
}

// IsIndustryVariant reports whether id is an industry-specialized variant.
func IsIndustryVariant(id string) bool {
	for _, suf := range industryVariantSuffixes {
		if strings.HasSuffix(id, suf) {
			return true
		}
	}
	return false
}
