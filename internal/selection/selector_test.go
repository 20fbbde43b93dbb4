package selection

import (
	"reflect"
	"testing"

	"github.com/avendel/framework-advisor/internal/catalog"
	"github.com/avendel/framework-advisor/internal/contextengine"
)

func f64(v float64) *float64 { return &v }
func intp(v int) *int        { return &v }

func buildContext(t *testing.T, p contextengine.RawProfile) *contextengine.CompanyContext {
	t.Helper()
	ctx, err := contextengine.NewEngine(catalog.NewDefault()).BuildContext(p)
	if err != nil {
		t.Fatal(err)
	}
	return ctx
}

func preSeedContext(t *testing.T) *contextengine.CompanyContext {
	return buildContext(t, contextengine.RawProfile{
		CompanyName:  "Seedling",
		Sector:       "saas",
		BusinessType: "b2b",
		FundingStage: "pre_seed",
		TeamSize:     3,
	})
}

func growthContext(t *testing.T) *contextengine.CompanyContext {
	return buildContext(t, contextengine.RawProfile{
		CompanyName:       "ScaleCo",
		Sector:            "software",
		BusinessType:      "b2b",
		FundingStage:      "series_b",
		TeamSize:          100,
		AnnualRevenue:     f64(20_000_000),
		RevenueGrowthPct:  f64(80),
		CompetitorCount:   intp(20),
		PrimaryChallenges: []string{"Portfolio prioritization across product lines"},
	})
}

func TestSubScoresWithinBounds(t *testing.T) {
	cat := catalog.NewDefault()
	sel := NewSelector(cat)
	for _, ctx := range []*contextengine.CompanyContext{preSeedContext(t), growthContext(t)} {
		for _, id := range cat.IDs() {
			tags, ok := cat.Tags(id)
			if !ok {
				continue
			}
			r := sel.scoreFramework(id, tags, ctx)
			for name, v := range map[string]float64{
				"stage":      r.subs.Stage,
				"problem":    r.subs.Problem,
				"data":       r.subs.Data,
				"complexity": r.subs.Complexity,
				"team":       r.subs.Team,
				"timing":     r.subs.Timing,
			} {
				if v < 0 || v > 100 {
					t.Fatalf("%s/%s sub-score %s out of range: %v", ctx.CompanyName, id, name, v)
				}
			}
			if r.fit < 0 || r.fit > 100 {
				t.Fatalf("%s/%s composite out of range: %v", ctx.CompanyName, id, r.fit)
			}
		}
	}
}

func TestSmallTeamExcludesBCG(t *testing.T) {
	ctx := buildContext(t, contextengine.RawProfile{
		CompanyName:   "TinyCo",
		Sector:        "saas",
		FundingStage:  "seed",
		TeamSize:      8,
		AnnualRevenue: f64(50_000),
	})
	res := NewSelector(catalog.NewDefault()).SelectWithExclusions(ctx, 5)

	for _, r := range res.Recommendations {
		if r.FrameworkID == "bcg_matrix" {
			t.Fatal("bcg_matrix recommended for a team of 8")
		}
	}
	found := false
	for _, e := range res.Excluded {
		if e.FrameworkID == "bcg_matrix" {
			found = true
			if len(e.Alternatives) == 0 {
				t.Fatal("bcg_matrix exclusion should carry alternatives")
			}
		}
	}
	if !found {
		t.Fatal("bcg_matrix missing from exclusion list")
	}
}

func TestPreSeedPortfolioLeadsWithDiscoveryFrameworks(t *testing.T) {
	ctx := preSeedContext(t)
	res := NewSelector(catalog.NewDefault()).SelectWithExclusions(ctx, 5)
	if len(res.Recommendations) < 2 {
		t.Fatalf("expected at least 2 recommendations, got %d", len(res.Recommendations))
	}
	got := map[string]bool{}
	for _, r := range res.Recommendations {
		got[r.FrameworkID] = true
		if r.FrameworkID == "bcg_matrix" {
			t.Fatal("bcg_matrix recommended pre-revenue")
		}
	}
	if !got["lean_canvas"] || !got["customer_development"] {
		t.Fatalf("discovery frameworks missing from portfolio: %v", res.Recommendations)
	}
	for _, e := range res.Excluded {
		if e.FrameworkID == "bcg_matrix" {
			return
		}
	}
	t.Fatal("bcg_matrix should be excluded for a pre-revenue team of 3")
}

func TestGrowthCompanyGetsBCGInTopFive(t *testing.T) {
	ctx := growthContext(t)
	recs := NewSelector(catalog.NewDefault()).Select(ctx, 5)
	for _, r := range recs {
		if r.FrameworkID == "bcg_matrix" {
			return
		}
	}
	ids := make([]string, 0, len(recs))
	for _, r := range recs {
		ids = append(ids, r.FrameworkID)
	}
	t.Fatalf("bcg_matrix missing from top five: %v", ids)
}

func TestTopTwoAlwaysKept(t *testing.T) {
	ctx := growthContext(t)
	res := NewSelector(catalog.NewDefault()).SelectWithExclusions(ctx, 5)
	if len(res.Recommendations) < 2 {
		t.Fatalf("portfolio must keep the top two, got %d", len(res.Recommendations))
	}
	// The top two must be the two highest-fit candidates in order.
	if res.Recommendations[0].FitScore < res.Recommendations[1].FitScore {
		t.Fatal("recommendations not sorted by fit")
	}
}

func TestSelectionIsDeterministic(t *testing.T) {
	sel := NewSelector(catalog.NewDefault())
	ctx := growthContext(t)
	first := sel.SelectWithExclusions(ctx, 5)
	second := sel.SelectWithExclusions(ctx, 5)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical inputs produced different selections")
	}
}

func TestUrgencyBoostUnderCrisis(t *testing.T) {
	calm := buildContext(t, contextengine.RawProfile{
		CompanyName: "Seedling", Sector: "saas", FundingStage: "pre_seed", TeamSize: 3,
	})
	crisis := buildContext(t, contextengine.RawProfile{
		CompanyName: "Seedling", Sector: "saas", FundingStage: "pre_seed", TeamSize: 3,
		CrisisMode: true,
	})
	sel := NewSelector(catalog.NewDefault())

	// lean_canvas delivers in a day; under critical urgency it gets the
	// fast-time-to-value boost.
	tags, _ := catalog.NewDefault().Tags("lean_canvas")
	_, calmUrgency := timingFit(tags, calm)
	_, crisisUrgency := timingFit(tags, crisis)
	if calmUrgency != 0 {
		t.Fatalf("calm urgency score = %v, want 0", calmUrgency)
	}
	if crisisUrgency != 90 {
		t.Fatalf("crisis urgency score = %v, want 90", crisisUrgency)
	}

	recs := sel.Select(crisis, 5)
	if len(recs) == 0 {
		t.Fatal("crisis selection returned nothing")
	}
}

func TestFundraisingAdvisoryDoesNotChangeScore(t *testing.T) {
	base := contextengine.RawProfile{
		CompanyName: "ScaleCo", Sector: "software", BusinessType: "b2b",
		FundingStage: "series_b", TeamSize: 100,
		AnnualRevenue: f64(20_000_000), RevenueGrowthPct: f64(80),
		CompetitorCount:   intp(20),
		PrimaryChallenges: []string{"Portfolio prioritization across product lines"},
	}
	raising := base
	raising.Fundraising = true

	sel := NewSelector(catalog.NewDefault())
	plain := sel.Select(buildContext(t, base), 5)
	funded := sel.Select(buildContext(t, raising), 5)

	plainScores := map[string]float64{}
	for _, r := range plain {
		plainScores[r.FrameworkID] = r.FitScore
	}
	for _, r := range funded {
		if want, ok := plainScores[r.FrameworkID]; ok && want != r.FitScore {
			t.Fatalf("%s score changed under fundraising: %v != %v", r.FrameworkID, r.FitScore, want)
		}
		if r.FrameworkID == "unit_economics" && len(r.Rationale) == 0 {
			t.Fatal("unit_economics should carry a fundraising advisory note")
		}
	}
}

func TestSeededFractionStable(t *testing.T) {
	a := seededFraction("bcg_matrix", "ScaleCo", "effectiveness")
	b := seededFraction("bcg_matrix", "ScaleCo", "effectiveness")
	if a != b {
		t.Fatal("seeded fraction not deterministic")
	}
	if a < 0 || a >= 1 {
		t.Fatalf("seeded fraction out of range: %v", a)
	}
	if seededFraction("x", "y") == seededFraction("y", "x") {
		t.Fatal("argument order should change the seed")
	}
	v := seededBand(40, 60, "id", "co")
	if v < 40 || v >= 60 {
		t.Fatalf("seeded band out of range: %v", v)
	}
}

func TestJourneyPhasesAndCriticalPath(t *testing.T) {
	sel := NewSelector(catalog.NewDefault())
	ctx := growthContext(t)
	recs := sel.Select(ctx, 5)
	j := sel.BuildJourney(ctx, recs)

	placed := map[string]bool{}
	for _, ph := range j.Phases {
		for _, id := range ph.FrameworkIDs {
			placed[id] = true
		}
	}
	for _, r := range recs {
		if !placed[r.FrameworkID] {
			t.Fatalf("recommendation %s missing from journey", r.FrameworkID)
		}
	}
	if len(j.CriticalPath) > 5 {
		t.Fatalf("critical path too long: %d", len(j.CriticalPath))
	}

	crisisCtx := buildContext(t, contextengine.RawProfile{
		CompanyName: "Seedling", Sector: "saas", FundingStage: "pre_seed", TeamSize: 3,
		CrisisMode: true,
	})
	cj := sel.BuildJourney(crisisCtx, sel.Select(crisisCtx, 5))
	if len(cj.Phases) != 2 {
		t.Fatalf("crisis journey should compress to 2 phases, got %d", len(cj.Phases))
	}
}

func TestFitThresholdIsStrict(t *testing.T) {
	if passesThreshold(30) {
		t.Fatal("a fit of exactly 30 must be dropped")
	}
	if passesThreshold(29.9) {
		t.Fatal("below-threshold fit must be dropped")
	}
	if !passesThreshold(30.1) {
		t.Fatal("fit just above 30 must be kept")
	}
}
