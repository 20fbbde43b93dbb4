package contextengine

import (
	"testing"

	"github.com/avendel/framework-advisor/internal/catalog"
	"github.com/avendel/framework-advisor/internal/taxonomy"
)

func newTestEngine() *Engine {
	return NewEngine(catalog.NewDefault())
}

func f64(v float64) *float64 { return &v }
func i(v int) *int           { return &v }

func preSeedProfile() RawProfile {
	return RawProfile{
		CompanyName:  "Seedling",
		Sector:       "saas",
		BusinessType: "b2b",
		FundingStage: "pre_seed",
		TeamSize:     3,
	}
}

func growthProfile() RawProfile {
	return RawProfile{
		CompanyName:      "ScaleCo",
		Sector:           "software",
		BusinessType:     "b2b",
		FundingStage:     "series_b",
		TeamSize:         100,
		AnnualRevenue:    f64(20_000_000),
		RevenueGrowthPct: f64(80),
		NRRPct:           f64(115),
		CompetitorCount:  i(20),
	}
}

func TestBuildContextValidation(t *testing.T) {
	e := newTestEngine()
	if _, err := e.BuildContext(RawProfile{TeamSize: 5}); err == nil {
		t.Fatal("missing company name should error")
	}
	if _, err := e.BuildContext(RawProfile{CompanyName: "X"}); err == nil {
		t.Fatal("zero team size should error")
	}
}

func TestPreRevenueAlwaysClassifiesPrePMF(t *testing.T) {
	e := newTestEngine()

	// Explicit zero and absent revenue both classify pre-PMF, even when
	// other signals look strong.
	profiles := []RawProfile{
		preSeedProfile(),
		{
			CompanyName: "ZeroRev", Sector: "fintech", FundingStage: "series_b",
			TeamSize: 120, AnnualRevenue: f64(0), RevenueGrowthPct: f64(300),
			NRRPct: f64(140), MarketSharePct: f64(40),
		},
	}
	for _, p := range profiles {
		ctx, err := e.BuildContext(p)
		if err != nil {
			t.Fatal(err)
		}
		if ctx.Inflection != taxonomy.InflectionPrePMF {
			t.Fatalf("%s: inflection = %s, want %s", p.CompanyName, ctx.Inflection, taxonomy.InflectionPrePMF)
		}
	}
}

func TestInflectionTree(t *testing.T) {
	e := newTestEngine()
	cases := []struct {
		name string
		p    RawProfile
		want taxonomy.StrategicInflection
	}{
		{
			"achieving_pmf",
			RawProfile{CompanyName: "A", Sector: "saas", FundingStage: "seed", TeamSize: 10,
				AnnualRevenue: f64(500_000), RevenueGrowthPct: f64(40)},
			taxonomy.InflectionAchievingPMF,
		},
		{
			"hypergrowth",
			RawProfile{CompanyName: "B", Sector: "saas", FundingStage: "series_a", TeamSize: 40,
				AnnualRevenue: f64(5_000_000), RevenueGrowthPct: f64(200)},
			taxonomy.InflectionScalingGrowth,
		},
		{
			"market_expansion",
			RawProfile{CompanyName: "C", Sector: "saas", FundingStage: "series_b", TeamSize: 150,
				AnnualRevenue: f64(30_000_000), RevenueGrowthPct: f64(60), NRRPct: f64(125)},
			taxonomy.InflectionMarketExpansion,
		},
		{
			"market_leadership",
			RawProfile{CompanyName: "D", Sector: "saas", FundingStage: "late_stage", TeamSize: 800,
				AnnualRevenue: f64(200_000_000), RevenueGrowthPct: f64(30), MarketSharePct: f64(25)},
			taxonomy.InflectionMarketLeadership,
		},
	}
	for _, tc := range cases {
		ctx, err := e.BuildContext(tc.p)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if ctx.Inflection != tc.want {
			t.Fatalf("%s: inflection = %s, want %s", tc.name, ctx.Inflection, tc.want)
		}
	}
}

func TestIndustryClassification(t *testing.T) {
	cases := []struct {
		sector, btype string
		want          taxonomy.Industry
	}{
		{"SaaS analytics", "b2b", taxonomy.IndustrySaaSB2B},
		{"consumer software", "b2c", taxonomy.IndustrySaaSB2C},
		{"fintech payments", "", taxonomy.IndustryFintech},
		{"digital health", "", taxonomy.IndustryHealthtech},
		{"b2c marketplace", "b2c", taxonomy.IndustryMarketplace},
		{"robotics", "", taxonomy.IndustrySaaSB2B},
	}
	for _, tc := range cases {
		if got := classifyIndustry(tc.sector, tc.btype); got != tc.want {
			t.Fatalf("classifyIndustry(%q, %q) = %s, want %s", tc.sector, tc.btype, got, tc.want)
		}
	}
}

func TestChallengesDeduplicated(t *testing.T) {
	e := newTestEngine()
	p := growthProfile()
	// Provide a challenge that the derivation will also produce.
	p.PrimaryChallenges = []string{
		"Resource allocation across multiple initiatives",
		"Resource allocation across multiple initiatives",
	}
	ctx, err := e.BuildContext(p)
	if err != nil {
		t.Fatal(err)
	}
	seen := map[string]int{}
	for _, c := range ctx.Challenges {
		seen[c]++
		if seen[c] > 1 {
			t.Fatalf("duplicate challenge: %q", c)
		}
	}
}

func TestUrgencyLevels(t *testing.T) {
	e := newTestEngine()

	crisis := preSeedProfile()
	crisis.CrisisMode = true
	ctx, _ := e.BuildContext(crisis)
	if got := ctx.UrgencyLevel(); got != "critical" {
		t.Fatalf("crisis urgency = %s, want critical", got)
	}

	shortRunway := preSeedProfile()
	shortRunway.RunwayMonths = f64(4)
	ctx, _ = e.BuildContext(shortRunway)
	if got := ctx.UrgencyLevel(); got != "critical" {
		t.Fatalf("short runway urgency = %s, want critical", got)
	}

	raising := preSeedProfile()
	raising.Fundraising = true
	ctx, _ = e.BuildContext(raising)
	if got := ctx.UrgencyLevel(); got != "high" {
		t.Fatalf("fundraising urgency = %s, want high", got)
	}

	relaxed := preSeedProfile()
	ctx, _ = e.BuildContext(relaxed)
	if got := ctx.UrgencyLevel(); got != "low" {
		t.Fatalf("default urgency = %s, want low", got)
	}

	timed := preSeedProfile()
	timed.DecisionTimelineDays = i(60)
	ctx, _ = e.BuildContext(timed)
	if got := ctx.UrgencyLevel(); got != "medium" {
		t.Fatalf("60-day timeline urgency = %s, want medium", got)
	}
}

func TestComplexityCapacityBreakpoints(t *testing.T) {
	cases := []struct {
		team int
		want taxonomy.ComplexityTier
	}{
		{3, taxonomy.ComplexitySimple},
		{9, taxonomy.ComplexitySimple},
		{10, taxonomy.ComplexityModerate},
		{49, taxonomy.ComplexityModerate},
		{50, taxonomy.ComplexityComplex},
		{199, taxonomy.ComplexityComplex},
		{200, taxonomy.ComplexityEnterprise},
	}
	for _, tc := range cases {
		ctx := &CompanyContext{Team: tc.team}
		if got := ctx.ComplexityCapacity(); got != tc.want {
			t.Fatalf("capacity(team=%d) = %s, want %s", tc.team, got, tc.want)
		}
	}
}

func TestHypothesisTreeDepth(t *testing.T) {
	e := newTestEngine()
	p := preSeedProfile()
	p.LTV = f64(100)
	p.CAC = f64(80)
	ctx, err := e.BuildContext(p)
	if err != nil {
		t.Fatal(err)
	}
	if ctx.HypothesisTree.Statement == "" {
		t.Fatal("root hypothesis missing")
	}
	if len(ctx.HypothesisTree.SubHypotheses) > 2 {
		t.Fatalf("hypothesis tree too deep: %d children", len(ctx.HypothesisTree.SubHypotheses))
	}
	for _, child := range ctx.HypothesisTree.SubHypotheses {
		if len(child.SubHypotheses) != 0 {
			t.Fatal("hypothesis tree must not recurse past one level")
		}
	}
}

func TestPatternSimilarityBounds(t *testing.T) {
	matches := matchPatterns(map[string]float64{
		"revenue_growth_pct": 120,
		"nrr_pct":            115,
		"team_size":          80,
		"ltv_cac":            4.0,
	})
	if len(matches) == 0 {
		t.Fatal("expected pattern matches")
	}
	for _, m := range matches {
		if m.Similarity < 0 || m.Similarity > 1 {
			t.Fatalf("%s similarity out of range: %v", m.Name, m.Similarity)
		}
	}
	// Exact metric profile of PLG_to_Enterprise should be a perfect match.
	for _, m := range matches {
		if m.Name == "PLG_to_Enterprise" && m.Similarity != 1 {
			t.Fatalf("exact profile similarity = %v, want 1", m.Similarity)
		}
	}
}

func TestBenchmarkFallback(t *testing.T) {
	def := BenchmarksFor(taxonomy.IndustrySaaSB2B)
	if got := BenchmarksFor(taxonomy.Industry("unheard_of")); got != def {
		t.Fatal("unknown industry should fall back to the B2B SaaS table")
	}
}

func TestAvailableDataDerivation(t *testing.T) {
	e := newTestEngine()
	ctx, err := e.BuildContext(growthProfile())
	if err != nil {
		t.Fatal(err)
	}
	want := map[taxonomy.DataRequirement]bool{
		taxonomy.DataQualitativeOnly:   true,
		taxonomy.DataBasicQuantitative: true,
		taxonomy.DataAdvancedMetrics:   true,
		taxonomy.DataMarketData:        true,
	}
	have := map[taxonomy.DataRequirement]bool{}
	for _, d := range ctx.AvailableData {
		have[d] = true
	}
	for d := range want {
		if !have[d] {
			t.Fatalf("missing derived data availability: %s", d)
		}
	}
	if have[taxonomy.DataFinancialDetail] {
		t.Fatal("financial detail should not be derived without LTV/CAC or burn")
	}
}

func TestCompetitivePositionFollowsMarketShare(t *testing.T) {
	e := NewEngine(catalog.NewDefault())
	cases := []struct {
		name        string
		share       *float64
		competitors *int
		want        int
	}{
		{"leader despite crowd", f64(25), i(8), 1},
		{"second tier", f64(12), i(3), 2},
		{"third tier", f64(7), i(40), 3},
		{"small share falls back to crowd size", f64(1), i(30), 15},
		{"unknown share falls back to crowd size", nil, i(12), 6},
		{"nothing known", nil, nil, 0},
	}
	for _, tc := range cases {
		ctx, err := e.BuildContext(RawProfile{
			CompanyName:     "PosCo",
			Sector:          "saas",
			TeamSize:        10,
			MarketSharePct:  tc.share,
			CompetitorCount: tc.competitors,
		})
		if err != nil {
			t.Fatal(err)
		}
		if ctx.CompetitivePosition != tc.want {
			t.Fatalf("%s: position = %d, want %d", tc.name, ctx.CompetitivePosition, tc.want)
		}
	}
}
