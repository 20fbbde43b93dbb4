package analysis

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/avendel/framework-advisor/internal/catalog"
	"github.com/avendel/framework-advisor/internal/contextengine"
)

// Engine generates per-framework analysis reports. LLM failure is never an
// error: the engine degrades to a canned narrative and marks the report.
type Engine struct {
	caller NarrativeCaller
}

// NewEngine builds an analysis engine. A nil caller always degrades, which
// is the offline mode.
func NewEngine(caller NarrativeCaller) *Engine {
	return &Engine{caller: caller}
}

// GenerateFrameworkAnalysis applies one framework to a company context.
// The returned error covers only invalid input, never LLM transport.
func (e *Engine) GenerateFrameworkAnalysis(ctx context.Context, fw catalog.Framework, company *contextengine.CompanyContext) (*Report, error) {
	if fw.ID == "" {
		return nil, fmt.Errorf("analysis: framework id is required")
	}
	if company == nil {
		return nil, fmt.Errorf("analysis: company context is required")
	}

	prompt := buildPrompt(fw, company)
	narrative, degraded := e.narrativeFor(ctx, fw, prompt)

	rep := &Report{
		FrameworkID: fw.ID,
		CompanyName: company.CompanyName,
		Narrative:   narrative,
		Degraded:    degraded,
	}
	rep.ExecutiveSummary = extractExecutiveSummary(narrative)
	rep.Insights = extractInsights(narrative)
	if strings.Contains(fw.ID, "bcg_matrix") {
		rep.BCGQuadrant = extractBCGQuadrant(narrative)
	}
	if strings.Contains(fw.ID, "ansoff") {
		rep.AnsoffStrategy = extractAnsoffStrategy(narrative)
	}

	rep.CriticalFactors = criticalFactors(fw, company)
	rep.Risks = assessRisks(company)
	rep.Opportunities = assessOpportunities(company)
	rep.CurrentPosition = quantifyCurrentPosition(company)
	rep.GapAnalysis = performGapAnalysis(company)
	rep.Sensitivity = performSensitivityAnalysis(company)
	rep.Scenarios = generateScenarios(company)
	rep.Recommendations = strategicRecommendations(company)
	rep.Roadmap = implementationRoadmap(fw, company)
	rep.ResearchBasis = researchBasis(fw.ID)
	return rep, nil
}

// narrativeFor asks the LLM once and falls back immediately on any failure.
// Transient errors are not retried: a stale fallback beats a slow answer in
// an interactive flow.
func (e *Engine) narrativeFor(ctx context.Context, fw catalog.Framework, prompt string) (string, bool) {
	if e.caller == nil {
		return fallbackNarrative(prompt), true
	}
	narrative, err := e.caller.Generate(ctx, prompt)
	if err != nil {
		log.Printf("analysis: llm call failed for %s, using fallback: %v", fw.ID, err)
		return fallbackNarrative(prompt), true
	}
	narrative = strings.TrimSpace(narrative)
	if narrative == "" {
		log.Printf("analysis: empty llm response for %s, using fallback", fw.ID)
		return fallbackNarrative(prompt), true
	}
	return narrative, false
}

func buildPrompt(fw catalog.Framework, c *contextengine.CompanyContext) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Apply the %s framework to %s.\n\n", fw.Name, c.CompanyName)
	fmt.Fprintf(&sb, "Company facts:\n")
	fmt.Fprintf(&sb, "- Industry: %s\n", c.Industry)
	fmt.Fprintf(&sb, "- Lifecycle stage: %s\n", c.LifecycleStage)
	fmt.Fprintf(&sb, "- Team size: %d\n", c.Team)
	if c.Revenue.Known {
		fmt.Fprintf(&sb, "- Annual revenue: $%.0f\n", c.Revenue.Value)
	}
	if c.GrowthRate.Known {
		fmt.Fprintf(&sb, "- Revenue growth: %.0f%%\n", c.GrowthRate.Value)
	}
	if c.NRR.Known {
		fmt.Fprintf(&sb, "- Net revenue retention: %.0f%%\n", c.NRR.Value)
	}
	if c.LTVCACRatio.Known {
		fmt.Fprintf(&sb, "- LTV:CAC: %.1f\n", c.LTVCACRatio.Value)
	}
	if c.RunwayMonths.Known {
		fmt.Fprintf(&sb, "- Runway: %.0f months\n", c.RunwayMonths.Value)
	}
	if c.MarketShare.Known {
		fmt.Fprintf(&sb, "- Market share: %.1f%%\n", c.MarketShare.Value)
	}
	fmt.Fprintf(&sb, "- Strategic situation: %s\n", c.Inflection)
	if len(c.Challenges) > 0 {
		fmt.Fprintf(&sb, "- Key challenges: %s\n", strings.Join(c.Challenges, "; "))
	}
	fmt.Fprintf(&sb, "\nFramework: %s. %s\n", fw.Name, fw.Description)
	for _, id := range c.EnhancedFrameworks {
		if id == fw.ID {
			fmt.Fprintf(&sb, "Published research recommends this framework for companies at the %s inflection; weight its conclusions accordingly.\n", c.Inflection)
			break
		}
	}
	fmt.Fprintf(&sb, "\nWrite a concise analysis. Open with a one-paragraph executive summary, then numbered key insights, then the framework-specific positioning.")
	return sb.String()
}

// researchBasis names the published evidence the deterministic layer leans
// on for a framework. Unknown ids get the general methodology note.
func researchBasis(id string) []string {
	base := []string{
		"Multi-factor fit scoring calibrated against stage and industry benchmarks",
	}
	switch {
	case strings.Contains(id, "bcg"):
		return append(base, "Growth-share portfolio research, Boston Consulting Group")
	case strings.Contains(id, "unit_economics"), strings.Contains(id, "ltv_cac"):
		return append(base, "SaaS capital efficiency benchmarks across funding stages")
	case strings.Contains(id, "porters"):
		return append(base, "Industry structure analysis, Harvard Business School")
	default:
		return base
	}
}
