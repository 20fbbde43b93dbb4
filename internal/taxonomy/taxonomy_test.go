package taxonomy

import "testing"

func TestAdjacentStages(t *testing.T) {
	cases := []struct {
		a, b TemporalStage
		want bool
	}{
		{StagePreFormation, StageFormation, true},
		{StageFormation, StagePreFormation, true},
		{StageValidation, StageGrowth, false},
		{StageGrowth, StageScale, true},
		{StageMaturity, StageMaturity, false},
		{TemporalStage("bogus"), StageGrowth, false},
	}
	for _, tc := range cases {
		if got := AdjacentStages(tc.a, tc.b); got != tc.want {
			t.Fatalf("AdjacentStages(%s, %s) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestStageFromFunding(t *testing.T) {
	cases := []struct {
		in   string
		want TemporalStage
	}{
		{"pre_seed", StagePreFormation},
		{"Seed", StageValidation},
		{"series_a", StageTraction},
		{"series-b", StageGrowth},
		{"series_c", StageScale},
		{"public", StageMaturity},
		{"growth", StageGrowth},
		{"", StageValidation},
		{"unicorn", StageValidation},
	}
	for _, tc := range cases {
		if got := StageFromFunding(tc.in); got != tc.want {
			t.Fatalf("StageFromFunding(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestComplexityRankOrdering(t *testing.T) {
	ordered := []ComplexityTier{ComplexityPlugAndPlay, ComplexitySimple, ComplexityModerate, ComplexityComplex, ComplexityEnterprise}
	for i := 1; i < len(ordered); i++ {
		if ComplexityRank(ordered[i-1]) >= ComplexityRank(ordered[i]) {
			t.Fatalf("rank of %s should be below %s", ordered[i-1], ordered[i])
		}
	}
	if ComplexityRank(ComplexityTier("bogus")) != 0 {
		t.Fatal("unknown tier should rank 0")
	}
}
