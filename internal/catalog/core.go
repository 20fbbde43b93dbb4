package catalog

// Core framework groupings used by the selector's stage boost and
// portfolio tiebreaks.

// CoreEarlyStage frameworks get the stage boost in pre-formation through
// validation.
var CoreEarlyStage = []string{
	"lean_canvas",
	"customer_development",
	"jobs_to_be_done",
	"mvp_framework",
}

// CoreGrowthStage frameworks get the stage boost in growth and later.
var CoreGrowthStage = []string{
	"bcg_matrix",
	"porters_five_forces",
	"ansoff_matrix",
	"unit_economics",
}

// CorePortfolio frameworks win tiebreaks in portfolio assembly over
// specialized or variant frameworks.
var CorePortfolio = []string{
	"lean_canvas",
	"customer_development",
	"jobs_to_be_done",
	"mvp_framework",
	"product_market_fit",
	"bcg_matrix",
	"porters_five_forces",
	"ansoff_matrix",
	"unit_economics",
	"ltv_cac_ratio",
	"tam_sam_som",
	"cohort_analysis",
	"aarrr_metrics",
	"okr_framework",
	"swot_analysis",
}

// FundraisingRelevant frameworks produce investor-facing artifacts and get
// an advisory note when the company is raising.
var FundraisingRelevant = []string{
	"unit_economics",
	"ltv_cac_ratio",
	"cohort_analysis",
	"tam_sam_som",
	"bcg_matrix",
}

// IsCoreEarlyStage reports membership in the early-stage core set.
func IsCoreEarlyStage(id string) bool { return contains(CoreEarlyStage, id) }

// IsCoreGrowthStage reports membership in the growth-stage core set.
func IsCoreGrowthStage(id string) bool { return contains(CoreGrowthStage, id) }

// IsCorePortfolio reports membership in the portfolio core set.
func IsCorePortfolio(id string) bool { return contains(CorePortfolio, id) }

// IsFundraisingRelevant reports whether id produces investor-facing output.
func IsFundraisingRelevant(id string) bool { return contains(FundraisingRelevant, id) }

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
