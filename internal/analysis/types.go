// Package analysis produces framework-specific strategic reports: an
// LLM-written narrative with structured fields extracted from it, plus
// deterministic quantitative sections computed locally.
package analysis

// Extracted is a field pulled out of narrative text. Confidence reflects
// how directly the text supported the extraction; a missing reason is set
// when the text never committed to a value.
type Extracted struct {
	Value         string  `json:"value"`
	Confidence    float64 `json:"confidence"`
	MissingReason string  `json:"missing_reason,omitempty"`
}

// NotDetermined is the sentinel for fields the narrative never settled.
const NotDetermined = "Not determined"

func notDetermined(reason string) Extracted {
	return Extracted{Value: NotDetermined, Confidence: 0, MissingReason: reason}
}

// Insight is one extracted takeaway with coarse impact and horizon labels.
type Insight struct {
	Text      string `json:"text"`
	Impact    string `json:"impact"`
	Timeframe string `json:"timeframe"`
}

// Recommendation is one prioritized action from the deterministic layer.
type Recommendation struct {
	Action    string `json:"action"`
	Priority  int    `json:"priority"`
	Rationale string `json:"rationale"`
}

// RoadmapPhase is one horizon of the implementation roadmap.
type RoadmapPhase struct {
	Horizon string   `json:"horizon"`
	Actions []string `json:"actions"`
}

// Scenario is one projected outcome path with its assumed drivers.
type Scenario struct {
	Name        string             `json:"name"`
	Probability float64            `json:"probability"`
	Assumptions []string           `json:"assumptions"`
	Projections map[string]float64 `json:"projections"`
}

// Report is the full analysis output for one framework application.
type Report struct {
	FrameworkID      string    `json:"framework_id"`
	CompanyName      string    `json:"company_name"`
	ExecutiveSummary string    `json:"executive_summary"`
	Narrative        string    `json:"narrative"`
	Insights         []Insight `json:"insights"`

	BCGQuadrant    Extracted `json:"bcg_quadrant,omitempty"`
	AnsoffStrategy Extracted `json:"ansoff_strategy,omitempty"`

	CriticalFactors []string `json:"critical_factors"`
	Risks           []string `json:"risks"`
	Opportunities   []string `json:"opportunities"`

	CurrentPosition map[string]float64 `json:"current_position"`
	GapAnalysis     map[string]float64 `json:"gap_analysis"`
	Sensitivity     map[string]float64 `json:"sensitivity"`
	Scenarios       []Scenario         `json:"scenarios"`
	Recommendations []Recommendation   `json:"recommendations"`
	Roadmap         []RoadmapPhase     `json:"roadmap"`
	ResearchBasis   []string           `json:"research_basis,omitempty"`

	Degraded bool `json:"degraded"`
}
