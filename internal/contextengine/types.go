// Package contextengine turns a raw startup profile into a structured
// strategic context: industry classification, benchmark comparison,
// inflection point, hypothesis tree, and the challenge/opportunity
// checklists downstream scoring runs on.
package contextengine

import (
	"github.com/avendel/framework-advisor/internal/taxonomy"
)

// RawProfile is the flat input contract. Optional numerics are pointers so
// absent is distinguishable from zero.
type RawProfile struct {
	CompanyName  string `json:"company_name"`
	Sector       string `json:"sector"`
	BusinessType string `json:"business_type"` // "b2b" or "b2c"
	FundingStage string `json:"funding_stage"`
	TeamSize     int    `json:"team_size"`

	AnnualRevenue    *float64 `json:"annual_revenue,omitempty"`
	RevenueGrowthPct *float64 `json:"revenue_growth_pct,omitempty"`
	MonthlyBurn      *float64 `json:"monthly_burn,omitempty"`
	RunwayMonths     *float64 `json:"runway_months,omitempty"`
	LTV              *float64 `json:"ltv,omitempty"`
	CAC              *float64 `json:"cac,omitempty"`
	NRRPct           *float64 `json:"nrr_pct,omitempty"`
	GrossMarginPct   *float64 `json:"gross_margin_pct,omitempty"`
	MarketGrowthPct  *float64 `json:"market_growth_pct,omitempty"`
	MarketSharePct   *float64 `json:"market_share_pct,omitempty"`
	CompetitorCount  *int     `json:"competitor_count,omitempty"`

	PrimaryChallenges    []string `json:"primary_challenges,omitempty"`
	CrisisMode           bool     `json:"crisis_mode,omitempty"`
	Fundraising          bool     `json:"fundraising,omitempty"`
	DecisionTimelineDays *int     `json:"decision_timeline_days,omitempty"`

	FoundingStory     string             `json:"founding_story,omitempty"`
	UniqueInsights    []string           `json:"unique_insights,omitempty"`
	StrategicAssets   []string           `json:"strategic_assets,omitempty"`
	Partnerships      []string           `json:"partnerships,omitempty"`
	CohortRetention   map[string]float64 `json:"cohort_retention,omitempty"`
	MarketTrends      []string           `json:"market_trends,omitempty"`
	RegulatoryFactors []string           `json:"regulatory_factors,omitempty"`
}

// Metric distinguishes a known value from an absent one. Threshold checks
// only fire on known metrics unless the caller asks for a zero default.
type Metric struct {
	Value float64
	Known bool
}

// KnownMetric builds a known metric.
func KnownMetric(v float64) Metric { return Metric{Value: v, Known: true} }

// metricFrom lifts an optional input field into a Metric.
func metricFrom(p *float64) Metric {
	if p == nil {
		return Metric{}
	}
	return Metric{Value: *p, Known: true}
}

// Or returns the value when known, otherwise the default.
func (m Metric) Or(def float64) float64 {
	if m.Known {
		return m.Value
	}
	return def
}

// Above reports whether the metric is known and strictly above t.
func (m Metric) Above(t float64) bool { return m.Known && m.Value > t }

// Below reports whether the metric is known and strictly below t.
func (m Metric) Below(t float64) bool { return m.Known && m.Value < t }

// PatternMatch is a similarity hit against the historical pattern library.
type PatternMatch struct {
	Name       string  `json:"name"`
	Similarity float64 `json:"similarity"`
	Playbook   string  `json:"playbook"`
}

// Hypothesis is one node of the shallow hypothesis tree: a root claim with
// at most two child hypotheses, no deeper recursion.
type Hypothesis struct {
	Statement     string       `json:"statement"`
	Rationale     string       `json:"rationale"`
	TestMethod    string       `json:"test_method"`
	SubHypotheses []Hypothesis `json:"sub_hypotheses,omitempty"`
}

// TrendPoint is one step of a synthetic metric trend series.
type TrendPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// CompanyContext is the derived strategic picture of one company.
type CompanyContext struct {
	CompanyName    string                 `json:"company_name"`
	Industry       taxonomy.Industry      `json:"industry"`
	LifecycleStage taxonomy.TemporalStage `json:"lifecycle_stage"`
	Team           int                    `json:"team_size"`

	Revenue          Metric `json:"-"`
	GrowthRate       Metric `json:"-"`
	RunwayMonths     Metric `json:"-"`
	BurnMultiple     Metric `json:"-"`
	LTVCACRatio      Metric `json:"-"`
	NRR              Metric `json:"-"`
	GrossMargin      Metric `json:"-"`
	MarketGrowth     Metric `json:"-"`
	MarketShare      Metric `json:"-"`
	Competitors      int    `json:"competitor_count"`
	CompetitorsKnown bool   `json:"-"`

	Benchmarks          Benchmarks                   `json:"benchmarks"`
	CompetitivePosition int                          `json:"competitive_position"`
	MarketDynamics      string                       `json:"market_dynamics"`
	Differentiators     []string                     `json:"differentiators"`
	Advantages          []string                     `json:"advantages"`
	Threats             []string                     `json:"threats"`
	Inflection          taxonomy.StrategicInflection `json:"inflection"`
	Narrative           string                       `json:"narrative"`
	PatternMatches      []PatternMatch               `json:"pattern_matches"`
	PrimaryQuestion     string                       `json:"primary_question"`
	HypothesisTree      Hypothesis                   `json:"hypothesis_tree"`

	Challenges       []string `json:"challenges"`
	Opportunities    []string `json:"opportunities"`
	Constraints      []string `json:"constraints"`
	Uncertainties    []string `json:"uncertainties"`
	StrategicOptions []string `json:"strategic_options"`

	ProblemArchetypes []taxonomy.ProblemArchetype `json:"problem_archetypes"`
	DecisionContexts  []taxonomy.DecisionContext  `json:"decision_contexts"`
	AvailableData     []taxonomy.DataRequirement  `json:"available_data"`

	CrisisMode           bool `json:"crisis_mode"`
	Fundraising          bool `json:"fundraising"`
	DecisionTimelineDays int  `json:"decision_timeline_days"`

	FoundingStory     string                  `json:"founding_story,omitempty"`
	UniqueInsights    []string                `json:"unique_insights,omitempty"`
	StrategicAssets   []string                `json:"strategic_assets,omitempty"`
	Partnerships      []string                `json:"partnerships,omitempty"`
	MarketTrends      []string                `json:"market_trends,omitempty"`
	RegulatoryFactors []string                `json:"regulatory_factors,omitempty"`
	MetricTrends      map[string][]TrendPoint `json:"metric_trends,omitempty"`

	EnhancedFrameworks []string `json:"enhanced_frameworks,omitempty"`
}

// TeamSize satisfies the antipattern snapshot interface.
func (c *CompanyContext) TeamSize() int { return c.Team }

// AnnualRevenue satisfies the antipattern snapshot interface. Unknown
// revenue reads as zero, matching the pre-revenue classification rule.
func (c *CompanyContext) AnnualRevenue() float64 { return c.Revenue.Or(0) }

// Stage satisfies the antipattern snapshot interface.
func (c *CompanyContext) Stage() taxonomy.TemporalStage { return c.LifecycleStage }

// UrgencyLevel derives decision urgency from crisis state, runway,
// fundraising, and the decision timeline.
func (c *CompanyContext) UrgencyLevel() string {
	switch {
	case c.CrisisMode || c.RunwayMonths.Below(6):
		return "critical"
	case c.Fundraising || (c.DecisionTimelineDays > 0 && c.DecisionTimelineDays < 30):
		return "high"
	case c.DecisionTimelineDays > 0 && c.DecisionTimelineDays < 90:
		return "medium"
	default:
		return "low"
	}
}

// ComplexityCapacity derives how heavyweight a framework the team can
// absorb, from headcount breakpoints.
func (c *CompanyContext) ComplexityCapacity() taxonomy.ComplexityTier {
	switch {
	case c.Team < 10:
		return taxonomy.ComplexitySimple
	case c.Team < 50:
		return taxonomy.ComplexityModerate
	case c.Team < 200:
		return taxonomy.ComplexityComplex
	default:
		return taxonomy.ComplexityEnterprise
	}
}
