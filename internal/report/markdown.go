// Package report assembles the advisory envelope and renders it as
// markdown and PDF.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/avendel/framework-advisor/internal/analysis"
	"github.com/avendel/framework-advisor/internal/contextengine"
	"github.com/avendel/framework-advisor/internal/selection"
)

// Disclaimer closes every report.
const Disclaimer = "This report is a structured decision aid, not professional advice. Framework fit scores are model outputs calibrated on industry benchmarks; validate conclusions against primary data before committing resources."

// Reference URLs used in the report markdown.
const (
	bcgMatrixURL   = "https://www.bcg.com/about/overview/our-history/growth-share-matrix"
	fiveForcesURL  = "https://www.isc.hbs.edu/strategy/business-strategy/Pages/the-five-forces.aspx"
	unitEconURL    = "https://www.investopedia.com/terms/u/unit-economics.asp"
	ltvCacURL      = "https://www.investopedia.com/terms/l/lifetime-value-ltv.asp"
	leanCanvasURL  = "https://leanstack.com/lean-canvas"
	tamSamSomURL   = "https://www.investopedia.com/terms/t/tam.asp"
)

// Envelope is the full advisory output for one run.
type Envelope struct {
	RunID           string                          `json:"run_id"`
	CompanyName     string                          `json:"company_name"`
	GeneratedAt     time.Time                       `json:"generated_at"`
	Context         *contextengine.CompanyContext   `json:"context"`
	Recommendations []selection.Recommendation      `json:"recommendations"`
	Excluded        []selection.Exclusion           `json:"excluded,omitempty"`
	Journey         selection.Journey               `json:"journey"`
	Analyses        []*analysis.Report              `json:"analyses,omitempty"`
	ReportMarkdown  string                          `json:"report_markdown"`
	Degraded        bool                            `json:"degraded"`
	Disclaimer      string                          `json:"disclaimer"`
}

// BuildEnvelope assembles the envelope and renders its markdown.
func BuildEnvelope(runID string, ctx *contextengine.CompanyContext, sel selection.Result, journey selection.Journey, analyses []*analysis.Report) Envelope {
	env := Envelope{
		RunID:           runID,
		CompanyName:     ctx.CompanyName,
		GeneratedAt:     time.Now().UTC(),
		Context:         ctx,
		Recommendations: sel.Recommendations,
		Excluded:        sel.Excluded,
		Journey:         journey,
		Analyses:        analyses,
		Disclaimer:      Disclaimer,
	}
	for _, a := range analyses {
		if a.Degraded {
			env.Degraded = true
			break
		}
	}
	env.ReportMarkdown = buildMarkdown(env)
	return env
}

func buildMarkdown(env Envelope) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Strategic Framework Advisory\n\n")
	fmt.Fprintf(&b, "- Company: %s\n", env.CompanyName)
	fmt.Fprintf(&b, "- Run ID: %s\n", env.RunID)
	fmt.Fprintf(&b, "- Date: %s\n", env.GeneratedAt.Format(time.RFC3339))
	if env.Degraded {
		fmt.Fprintf(&b, "- Mode: degraded (narrative analysis used fallback text)\n")
	}
	b.WriteString("\n")

	writeContextSection(&b, env.Context)
	writeRecommendationSection(&b, env.Recommendations)
	writeAnalysisSections(&b, env.Analyses)
	writeJourneySection(&b, env.Journey)
	writeExclusionSection(&b, env.Excluded)

	fmt.Fprintf(&b, "## Method References\n\n")
	fmt.Fprintf(&b, "- [Growth-Share Matrix](%s)\n", bcgMatrixURL)
	fmt.Fprintf(&b, "- [Five Forces](%s)\n", fiveForcesURL)
	fmt.Fprintf(&b, "- [Unit Economics](%s)\n", unitEconURL)
	fmt.Fprintf(&b, "- [Customer Lifetime Value](%s)\n", ltvCacURL)
	fmt.Fprintf(&b, "- [Lean Canvas](%s)\n", leanCanvasURL)
	fmt.Fprintf(&b, "- [Market Sizing](%s)\n\n", tamSamSomURL)

	fmt.Fprintf(&b, "---\n\n%s\n", Disclaimer)
	return b.String()
}

func writeContextSection(b *strings.Builder, ctx *contextengine.CompanyContext) {
	fmt.Fprintf(b, "## Strategic Context\n\n")
	fmt.Fprintf(b, "%s\n\n", ctx.Narrative)
	fmt.Fprintf(b, "| Attribute | Value |\n|---|---|\n")
	fmt.Fprintf(b, "| Industry | %s |\n", ctx.Industry)
	fmt.Fprintf(b, "| Lifecycle stage | %s |\n", ctx.LifecycleStage)
	fmt.Fprintf(b, "| Team size | %d |\n", ctx.Team)
	fmt.Fprintf(b, "| Inflection point | %s |\n", ctx.Inflection)
	fmt.Fprintf(b, "| Market dynamics | %s |\n", ctx.MarketDynamics)
	fmt.Fprintf(b, "| Urgency | %s |\n\n", ctx.UrgencyLevel())

	fmt.Fprintf(b, "**Primary question:** %s\n\n", ctx.PrimaryQuestion)
	if len(ctx.Challenges) > 0 {
		fmt.Fprintf(b, "**Challenges**\n\n")
		for _, c := range ctx.Challenges {
			fmt.Fprintf(b, "- %s\n", c)
		}
		b.WriteString("\n")
	}
	if len(ctx.PatternMatches) > 0 {
		fmt.Fprintf(b, "**Historical pattern matches**\n\n")
		for _, p := range ctx.PatternMatches {
			fmt.Fprintf(b, "- %s (similarity %.0f%%): %s\n", p.Name, p.Similarity*100, p.Playbook)
		}
		b.WriteString("\n")
	}
}

func writeRecommendationSection(b *strings.Builder, recs []selection.Recommendation) {
	fmt.Fprintf(b, "## Recommended Frameworks\n\n")
	if len(recs) == 0 {
		fmt.Fprintf(b, "No framework cleared the fit threshold for this profile.\n\n")
		return
	}
	fmt.Fprintf(b, "| Rank | Framework | Fit | Confidence |\n|---|---|---|---|\n")
	for i, r := range recs {
		fmt.Fprintf(b, "| %d | %s | %.0f | %.0f%% |\n", i+1, r.Name, r.FitScore, r.Confidence)
	}
	b.WriteString("\n")
	for _, r := range recs {
		if len(r.Rationale) == 0 && len(r.Complementary) == 0 {
			continue
		}
		fmt.Fprintf(b, "**%s**\n\n", r.Name)
		for _, line := range r.Rationale {
			fmt.Fprintf(b, "- %s\n", line)
		}
		if len(r.Complementary) > 0 {
			fmt.Fprintf(b, "- Pairs with: %s\n", strings.Join(r.Complementary, ", "))
		}
		if len(r.Prerequisites) > 0 {
			fmt.Fprintf(b, "- Prerequisites: %s\n", strings.Join(r.Prerequisites, ", "))
		}
		b.WriteString("\n")
	}
}

func writeAnalysisSections(b *strings.Builder, analyses []*analysis.Report) {
	for _, a := range analyses {
		fmt.Fprintf(b, "## Analysis: %s\n\n", a.FrameworkID)
		if a.ExecutiveSummary != "" {
			fmt.Fprintf(b, "%s\n\n", a.ExecutiveSummary)
		}
		if a.BCGQuadrant.Value != "" {
			fmt.Fprintf(b, "- Quadrant: %s\n", a.BCGQuadrant.Value)
		}
		if a.AnsoffStrategy.Value != "" {
			fmt.Fprintf(b, "- Growth strategy: %s\n", a.AnsoffStrategy.Value)
		}
		for _, ins := range a.Insights {
			fmt.Fprintf(b, "- [%s/%s] %s\n", ins.Impact, ins.Timeframe, ins.Text)
		}
		b.WriteString("\n")
		if len(a.Risks) > 0 {
			fmt.Fprintf(b, "**Risks**\n\n")
			for _, r := range a.Risks {
				fmt.Fprintf(b, "- %s\n", r)
			}
			b.WriteString("\n")
		}
		if len(a.Opportunities) > 0 {
			fmt.Fprintf(b, "**Opportunities**\n\n")
			for _, o := range a.Opportunities {
				fmt.Fprintf(b, "- %s\n", o)
			}
			b.WriteString("\n")
		}
		if len(a.Recommendations) > 0 {
			fmt.Fprintf(b, "**Actions**\n\n")
			for _, rec := range a.Recommendations {
				fmt.Fprintf(b, "%d. %s (%s)\n", rec.Priority, rec.Action, rec.Rationale)
			}
			b.WriteString("\n")
		}
	}
}

func writeJourneySection(b *strings.Builder, j selection.Journey) {
	if len(j.Phases) == 0 {
		return
	}
	fmt.Fprintf(b, "## Application Journey\n\n")
	for _, ph := range j.Phases {
		if len(ph.FrameworkIDs) == 0 {
			continue
		}
		fmt.Fprintf(b, "- **%s** (%s): %s\n", ph.Name, ph.Horizon, strings.Join(ph.FrameworkIDs, ", "))
	}
	if len(j.CriticalPath) > 0 {
		fmt.Fprintf(b, "\nCritical path: %s\n", strings.Join(j.CriticalPath, " → "))
	}
	b.WriteString("\n")
}

func writeExclusionSection(b *strings.Builder, excluded []selection.Exclusion) {
	if len(excluded) == 0 {
		return
	}
	fmt.Fprintf(b, "## Ruled Out\n\n")
	for _, e := range excluded {
		fmt.Fprintf(b, "- **%s**: %s", e.FrameworkID, e.Reason)
		if len(e.Alternatives) > 0 {
			fmt.Fprintf(b, " (consider: %s)", strings.Join(e.Alternatives, ", "))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
}
