package report

import (
	"context"
	"strings"
	"testing"

	"github.com/avendel/framework-advisor/internal/analysis"
	"github.com/avendel/framework-advisor/internal/catalog"
	"github.com/avendel/framework-advisor/internal/contextengine"
	"github.com/avendel/framework-advisor/internal/selection"
)

func f64(v float64) *float64 { return &v }

func sampleEnvelope(t *testing.T) Envelope {
	t.Helper()
	cat := catalog.NewDefault()
	companyCtx, err := contextengine.NewEngine(cat).BuildContext(contextengine.RawProfile{
		CompanyName:      "ScaleCo",
		Sector:           "saas",
		BusinessType:     "b2b",
		FundingStage:     "series_b",
		TeamSize:         100,
		AnnualRevenue:    f64(20_000_000),
		RevenueGrowthPct: f64(80),
	})
	if err != nil {
		t.Fatal(err)
	}
	sel := selection.NewSelector(cat)
	res := sel.SelectWithExclusions(companyCtx, 3)
	journey := sel.BuildJourney(companyCtx, res.Recommendations)

	engine := analysis.NewEngine(nil)
	var analyses []*analysis.Report
	for _, r := range res.Recommendations {
		fw, _ := cat.Framework(r.FrameworkID)
		rep, err := engine.GenerateFrameworkAnalysis(context.Background(), fw, companyCtx)
		if err != nil {
			t.Fatal(err)
		}
		analyses = append(analyses, rep)
	}
	return BuildEnvelope("run-test", companyCtx, res, journey, analyses)
}

func TestEnvelopeMarkdownSections(t *testing.T) {
	env := sampleEnvelope(t)
	md := env.ReportMarkdown

	for _, want := range []string{
		"# Strategic Framework Advisory",
		"## Strategic Context",
		"## Recommended Frameworks",
		"## Application Journey",
		"ScaleCo",
		"run-test",
		Disclaimer,
	} {
		if !strings.Contains(md, want) {
			t.Fatalf("markdown missing %q", want)
		}
	}
	if !env.Degraded {
		t.Fatal("offline analyses should mark the envelope degraded")
	}
	if !strings.Contains(md, "Mode: degraded") {
		t.Fatal("degraded mode banner missing")
	}
}

func TestEnvelopeCarriesRecommendations(t *testing.T) {
	env := sampleEnvelope(t)
	if len(env.Recommendations) == 0 {
		t.Fatal("envelope has no recommendations")
	}
	if env.CompanyName != "ScaleCo" {
		t.Fatalf("company name = %q", env.CompanyName)
	}
	if len(env.Analyses) != len(env.Recommendations) {
		t.Fatalf("analyses (%d) should match recommendations (%d)", len(env.Analyses), len(env.Recommendations))
	}
}

func TestBuildHTMLFromEnvelopeJSON(t *testing.T) {
	renderer := NewChromiumPDFRenderer("")
	htmlDoc, err := renderer.buildHTML(`{"company_name":"ScaleCo","run_id":"run-test","report_markdown":"# Strategic Framework Advisory\n\n## Analysis: bcg_matrix\n\nBody"}`)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(htmlDoc, "ScaleCo") {
		t.Fatal("meta header missing company")
	}
	if !strings.Contains(htmlDoc, `data-page-break-before="true"`) {
		t.Fatal("analysis heading should force a page break")
	}
}

func TestBuildHTMLFromRawMarkdown(t *testing.T) {
	renderer := NewChromiumPDFRenderer("")
	htmlDoc, err := renderer.buildHTML("# Title\n\nplain markdown body")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(htmlDoc, "<h1") || !strings.Contains(htmlDoc, "plain markdown body") {
		t.Fatal("markdown not converted")
	}
}
