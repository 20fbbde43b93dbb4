package contextengine

import "github.com/avendel/framework-advisor/internal/taxonomy"

// Benchmarks are industry reference points used to classify a company's
// position relative to its peers.
type Benchmarks struct {
	TopQuartileGrowthPct float64 `json:"top_quartile_growth_pct"`
	MedianGrowthPct      float64 `json:"median_growth_pct"`
	TopQuartileNRRPct    float64 `json:"top_quartile_nrr_pct"`
	MedianBurnMultiple   float64 `json:"median_burn_multiple"`
	TopQuartileLTVCAC    float64 `json:"top_quartile_ltv_cac"`
	CACPaybackMonths     float64 `json:"cac_payback_months"`
	TimeToPMFMonths      float64 `json:"time_to_pmf_months"`
	GrossMarginPct       float64 `json:"gross_margin_pct"`
}

var industryBenchmarks = map[taxonomy.Industry]Benchmarks{
	taxonomy.IndustrySaaSB2B: {
		TopQuartileGrowthPct: 150,
		MedianGrowthPct:      80,
		TopQuartileNRRPct:    120,
		MedianBurnMultiple:   1.5,
		TopQuartileLTVCAC:    4.0,
		CACPaybackMonths:     14,
		TimeToPMFMonths:      18,
		GrossMarginPct:       80,
	},
	taxonomy.IndustryMarketplace: {
		TopQuartileGrowthPct: 200,
		MedianGrowthPct:      100,
		TopQuartileNRRPct:    110,
		MedianBurnMultiple:   2.0,
		TopQuartileLTVCAC:    3.0,
		CACPaybackMonths:     18,
		TimeToPMFMonths:      24,
		GrossMarginPct:       60,
	},
	taxonomy.IndustryFintech: {
		TopQuartileGrowthPct: 180,
		MedianGrowthPct:      90,
		TopQuartileNRRPct:    115,
		MedianBurnMultiple:   1.8,
		TopQuartileLTVCAC:    3.5,
		CACPaybackMonths:     16,
		TimeToPMFMonths:      20,
		GrossMarginPct:       65,
	},
	taxonomy.IndustryHealthtech: {
		TopQuartileGrowthPct: 120,
		MedianGrowthPct:      60,
		TopQuartileNRRPct:    112,
		MedianBurnMultiple:   2.2,
		TopQuartileLTVCAC:    3.0,
		CACPaybackMonths:     20,
		TimeToPMFMonths:      30,
		GrossMarginPct:       55,
	},
}

// BenchmarksFor returns the reference table for an industry, falling back
// to the B2B SaaS table when no dedicated one exists.
func BenchmarksFor(ind taxonomy.Industry) Benchmarks {
	if b, ok := industryBenchmarks[ind]; ok {
		return b
	}
	return industryBenchmarks[taxonomy.IndustrySaaSB2B]
}
