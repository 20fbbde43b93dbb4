package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/avendel/framework-advisor/internal/analysis"
	"github.com/avendel/framework-advisor/internal/catalog"
	"github.com/avendel/framework-advisor/internal/contextengine"
	"github.com/avendel/framework-advisor/internal/report"
	"github.com/avendel/framework-advisor/internal/selection"
)

func main() {
	profilePath := flag.String("profile", "", "Path to company profile JSON")
	maxRecs := flag.Int("max", 5, "Maximum recommendations")
	jsonOut := flag.String("json-output", "", "Optional path to write the full envelope JSON")
	offline := flag.Bool("offline", false, "Skip the LLM; narrative analysis uses fallback text")
	flag.Parse()

	if *profilePath == "" {
		log.Fatal("missing required -profile")
	}
	raw, err := os.ReadFile(*profilePath)
	if err != nil {
		log.Fatalf("read profile: %v", err)
	}
	var profile contextengine.RawProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		log.Fatalf("decode profile JSON: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cat := catalog.NewDefault()
	engine := contextengine.NewEngine(cat)
	selector := selection.NewSelector(cat)

	var caller analysis.NarrativeCaller
	if !*offline {
		c, err := analysis.NewAnthropicCallerFromEnv()
		if err != nil {
			log.Fatal(err)
		}
		caller = c
	}
	analyzer := analysis.NewEngine(caller)

	companyCtx, err := engine.BuildContext(profile)
	if err != nil {
		log.Fatal(err)
	}
	res := selector.SelectWithExclusions(companyCtx, *maxRecs)

	var analyses []*analysis.Report
	for _, rec := range res.Recommendations {
		fw, ok := cat.Framework(rec.FrameworkID)
		if !ok {
			continue
		}
		rep, err := analyzer.GenerateFrameworkAnalysis(ctx, fw, companyCtx)
		if err != nil {
			log.Printf("analysis of %s failed: %v", rec.FrameworkID, err)
			continue
		}
		analyses = append(analyses, rep)
	}

	journey := selector.BuildJourney(companyCtx, res.Recommendations)
	env := report.BuildEnvelope("local", companyCtx, res, journey, analyses)

	fmt.Print(env.ReportMarkdown)
	if *jsonOut != "" {
		b, err := json.MarshalIndent(env, "", "  ")
		if err != nil {
			log.Fatalf("marshal envelope: %v", err)
		}
		if err := os.WriteFile(*jsonOut, b, 0o644); err != nil {
			log.Fatalf("write json output: %v", err)
		}
	}
}
