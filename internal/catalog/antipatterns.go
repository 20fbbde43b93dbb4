package catalog

import (
	"fmt"

	"github.com/avendel/framework-advisor/internal/taxonomy"
)

// CompanySnapshot is the minimal view of a company the antipattern
// predicates need. The context engine's CompanyContext satisfies it.
type CompanySnapshot interface {
	TeamSize() int
	AnnualRevenue() float64
	Stage() taxonomy.TemporalStage
}

// Condition is a disqualification predicate evaluated against a company
// snapshot. Implementations are small tagged variants so rules stay data,
// not code, and can be listed in reports.
type Condition interface {
	Matches(s CompanySnapshot) bool
	Describe() string
}

// TeamSizeBelow matches companies with fewer than N people.
type TeamSizeBelow struct{ N int }

func (c TeamSizeBelow) Matches(s CompanySnapshot) bool { return s.TeamSize() < c.N }
func (c TeamSizeBelow) Describe() string               { return fmt.Sprintf("team size below %d", c.N) }

// RevenueIsZero matches pre-revenue companies.
type RevenueIsZero struct{}

func (RevenueIsZero) Matches(s CompanySnapshot) bool { return s.AnnualRevenue() == 0 }
func (RevenueIsZero) Describe() string               { return "pre-revenue" }

// StageEarlierThan matches companies whose lifecycle stage precedes the
// given stage in the canonical ordering.
type StageEarlierThan struct{ Stage taxonomy.TemporalStage }

func (c StageEarlierThan) Matches(s CompanySnapshot) bool {
	for _, v := range taxonomy.StageOrder {
		if v == s.Stage() {
			return true
		}
		if v == c.Stage {
			return false
		}
	}
	return false
}

func (c StageEarlierThan) Describe() string {
	return fmt.Sprintf("stage earlier than %s", c.Stage)
}

// AntiPattern disqualifies a framework when its condition matches.
type AntiPattern struct {
	Condition             Condition
	Reason                string
	Severity              string
	AlternativeFrameworks []string
}

func defaultAntiPatterns() map[string][]AntiPattern {
	return map[string][]AntiPattern{
		"bcg_matrix": {
			{
				Condition:             TeamSizeBelow{N: 20},
				Reason:                "small teams are effectively single-product; there is no portfolio to balance",
				Severity:              "high",
				AlternativeFrameworks: []string{"lean_canvas", "unit_economics"},
			},
			{
				Condition:             RevenueIsZero{},
				Reason:                "market share quadrants are meaningless before revenue exists",
				Severity:              "high",
				AlternativeFrameworks: []string{"customer_development", "mvp_framework"},
			},
		},
		"bcg_matrix_saas": {
			{
				Condition:             TeamSizeBelow{N: 20},
				Reason:                "small teams are effectively single-product; there is no portfolio to balance",
				Severity:              "high",
				AlternativeFrameworks: []string{"lean_canvas", "unit_economics"},
			},
			{
				Condition:             RevenueIsZero{},
				Reason:                "NRR and ARR growth axes require recurring revenue",
				Severity:              "high",
				AlternativeFrameworks: []string{"customer_development", "mvp_framework"},
			},
		},
		"six_sigma": {
			{
				Condition:             TeamSizeBelow{N: 10},
				Reason:                "statistical process control needs process volume a tiny team does not have",
				Severity:              "high",
				AlternativeFrameworks: []string{"mvp_framework", "aarrr_metrics"},
			},
			{
				Condition:             StageEarlierThan{Stage: taxonomy.StageGrowth},
				Reason:                "optimizing processes before product-market fit locks in the wrong process",
				Severity:              "medium",
				AlternativeFrameworks: []string{"customer_development", "product_market_fit"},
			},
		},
		"balanced_scorecard": {
			{
				Condition:             TeamSizeBelow{N: 50},
				Reason:                "four-perspective governance overhead exceeds a small company's capacity",
				Severity:              "medium",
				AlternativeFrameworks: []string{"okr_framework"},
			},
		},
	}
}
