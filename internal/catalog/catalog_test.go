package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/avendel/framework-advisor/internal/taxonomy"
)

type fakeCompany struct {
	team    int
	revenue float64
	stage   taxonomy.TemporalStage
}

func (f fakeCompany) TeamSize() int                 { return f.team }
func (f fakeCompany) AnnualRevenue() float64        { return f.revenue }
func (f fakeCompany) Stage() taxonomy.TemporalStage { return f.stage }

func TestDefaultCatalogValidates(t *testing.T) {
	cat := NewDefault()
	if err := cat.Validate(); err != nil {
		t.Fatalf("default catalog invalid: %v", err)
	}
	if len(cat.IDs()) < 18 {
		t.Fatalf("expected at least 18 frameworks, got %d", len(cat.IDs()))
	}
}

func TestAntiPatternPredicates(t *testing.T) {
	small := fakeCompany{team: 8, revenue: 50_000, stage: taxonomy.StageValidation}
	big := fakeCompany{team: 100, revenue: 20_000_000, stage: taxonomy.StageGrowth}

	if !(TeamSizeBelow{N: 20}).Matches(small) {
		t.Fatal("team of 8 should match TeamSizeBelow{20}")
	}
	if (TeamSizeBelow{N: 20}).Matches(big) {
		t.Fatal("team of 100 should not match TeamSizeBelow{20}")
	}
	if !(RevenueIsZero{}).Matches(fakeCompany{team: 3}) {
		t.Fatal("zero revenue should match RevenueIsZero")
	}
	if (RevenueIsZero{}).Matches(small) {
		t.Fatal("positive revenue should not match RevenueIsZero")
	}
	if !(StageEarlierThan{Stage: taxonomy.StageGrowth}).Matches(small) {
		t.Fatal("validation stage should match StageEarlierThan{growth}")
	}
	if (StageEarlierThan{Stage: taxonomy.StageGrowth}).Matches(big) {
		t.Fatal("growth stage should not match StageEarlierThan{growth}")
	}
}

func TestBCGAntiPatternsRegistered(t *testing.T) {
	cat := NewDefault()
	aps := cat.AntiPatterns("bcg_matrix")
	if len(aps) != 2 {
		t.Fatalf("bcg_matrix should carry 2 antipatterns, got %d", len(aps))
	}
	small := fakeCompany{team: 8, revenue: 50_000, stage: taxonomy.StageValidation}
	matched := false
	for _, ap := range aps {
		if ap.Condition.Matches(small) {
			matched = true
			if len(ap.AlternativeFrameworks) == 0 {
				t.Fatal("matched antipattern should suggest alternatives")
			}
		}
	}
	if !matched {
		t.Fatal("team of 8 should trip a bcg_matrix antipattern")
	}
}

func TestIsIndustryVariant(t *testing.T) {
	for id, want := range map[string]bool{
		"bcg_matrix_saas":                true,
		"porters_five_forces_healthcare": true,
		"unit_economics_marketplace":     true,
		"bcg_matrix":                     false,
		"lean_canvas":                    false,
	} {
		if got := IsIndustryVariant(id); got != want {
			t.Fatalf("IsIndustryVariant(%s) = %v, want %v", id, got, want)
		}
	}
}

func TestEnhancedFrameworksFilteredToCatalog(t *testing.T) {
	cat := NewDefault()
	ids := cat.EnhancedFrameworksFor(taxonomy.InflectionPrePMF)
	if len(ids) == 0 {
		t.Fatal("pre-PMF should recommend enhanced frameworks")
	}
	for _, id := range ids {
		if _, ok := cat.Framework(id); !ok {
			t.Fatalf("enhanced framework %s missing from catalog", id)
		}
	}
}

func TestLoadSynergiesMissingFileIsNotFatal(t *testing.T) {
	cat := NewDefault()
	if err := cat.LoadSynergies(filepath.Join(t.TempDir(), "absent.json")); err != nil {
		t.Fatalf("missing synergy file should not error: %v", err)
	}
	if got := cat.Synergies("bcg_matrix"); len(got) != 0 {
		t.Fatalf("expected empty synergy table, got %d records", len(got))
	}
}

func TestLoadSynergiesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "synergies.json")
	blob := `[{"frameworks":["unit_economics","cohort_analysis"],"multiplier":1.15,"evidence":"retention cohorts sharpen LTV inputs"}]`
	if err := os.WriteFile(path, []byte(blob), 0o644); err != nil {
		t.Fatal(err)
	}
	cat := NewDefault()
	if err := cat.LoadSynergies(path); err != nil {
		t.Fatalf("load synergies: %v", err)
	}
	got := cat.Synergies("unit_economics")
	if len(got) != 1 || got[0].Multiplier != 1.15 {
		t.Fatalf("unexpected synergy records: %+v", got)
	}
}

func TestCoreGroupings(t *testing.T) {
	if len(CorePortfolio) != 15 {
		t.Fatalf("core portfolio should list 15 frameworks, got %d", len(CorePortfolio))
	}
	if !IsCoreEarlyStage("lean_canvas") || IsCoreEarlyStage("bcg_matrix") {
		t.Fatal("early-stage core membership wrong")
	}
	if !IsCoreGrowthStage("bcg_matrix") || IsCoreGrowthStage("lean_canvas") {
		t.Fatal("growth-stage core membership wrong")
	}
	if !IsFundraisingRelevant("tam_sam_som") || IsFundraisingRelevant("six_sigma") {
		t.Fatal("fundraising relevance wrong")
	}
}
