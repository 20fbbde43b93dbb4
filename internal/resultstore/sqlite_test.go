package resultstore

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/avendel/framework-advisor/internal/contextengine"
	"github.com/avendel/framework-advisor/internal/report"
	"github.com/avendel/framework-advisor/internal/selection"
	"github.com/avendel/framework-advisor/internal/taxonomy"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "advisor.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testEnvelope(runID, company string) report.Envelope {
	return report.Envelope{
		RunID:       runID,
		CompanyName: company,
		GeneratedAt: time.Now().UTC(),
		Context: &contextengine.CompanyContext{
			CompanyName: company,
			Inflection:  taxonomy.InflectionScalingGrowth,
		},
		Recommendations: []selection.Recommendation{
			{FrameworkID: "unit_economics", Name: "Unit Economics Analysis", FitScore: 84},
		},
		ReportMarkdown: "# Strategic Framework Advisory",
		Degraded:       true,
	}
}

func TestSaveAndGetRun(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	env := testEnvelope("run-1", "ScaleCo")
	if err := s.SaveRun(ctx, env); err != nil {
		t.Fatal(err)
	}

	got, err := s.GetRun(ctx, "run-1")
	if err != nil {
		t.Fatal(err)
	}
	if got.CompanyName != "ScaleCo" || got.RunID != "run-1" {
		t.Fatalf("roundtrip mismatch: %+v", got)
	}
	if len(got.Recommendations) != 1 || got.Recommendations[0].FrameworkID != "unit_economics" {
		t.Fatalf("recommendations lost: %+v", got.Recommendations)
	}
	if !got.Degraded {
		t.Fatal("degraded flag lost")
	}
}

func TestGetRunNotFound(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.GetRun(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSaveRunUpsert(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	if err := s.SaveRun(ctx, testEnvelope("run-1", "ScaleCo")); err != nil {
		t.Fatal(err)
	}
	updated := testEnvelope("run-1", "RenamedCo")
	if err := s.SaveRun(ctx, updated); err != nil {
		t.Fatal(err)
	}
	got, err := s.GetRun(ctx, "run-1")
	if err != nil {
		t.Fatal(err)
	}
	if got.CompanyName != "RenamedCo" {
		t.Fatalf("upsert did not replace: %q", got.CompanyName)
	}
	runs, err := s.ListRuns(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("upsert created duplicate rows: %d", len(runs))
	}
}

func TestListRunsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	older := testEnvelope("run-old", "First")
	older.GeneratedAt = time.Now().UTC().Add(-time.Hour)
	newer := testEnvelope("run-new", "Second")

	if err := s.SaveRun(ctx, older); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveRun(ctx, newer); err != nil {
		t.Fatal(err)
	}

	runs, err := s.ListRuns(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].RunID != "run-new" || runs[1].RunID != "run-old" {
		t.Fatalf("wrong order: %s, %s", runs[0].RunID, runs[1].RunID)
	}
	if runs[0].TopFramework != "unit_economics" {
		t.Fatalf("summary lost top framework: %q", runs[0].TopFramework)
	}
	if runs[0].Inflection != string(taxonomy.InflectionScalingGrowth) {
		t.Fatalf("summary lost inflection: %q", runs[0].Inflection)
	}
}
