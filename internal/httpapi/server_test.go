package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/avendel/framework-advisor/internal/analysis"
	"github.com/avendel/framework-advisor/internal/catalog"
	"github.com/avendel/framework-advisor/internal/contextengine"
	"github.com/avendel/framework-advisor/internal/report"
	"github.com/avendel/framework-advisor/internal/resultstore"
	"github.com/avendel/framework-advisor/internal/selection"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	cat := catalog.NewDefault()
	store, err := resultstore.Open(filepath.Join(t.TempDir(), "advisor.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return NewServer(
		cat,
		contextengine.NewEngine(cat),
		selection.NewSelector(cat),
		analysis.NewEngine(nil),
		store,
	)
}

const sampleProfile = `{
	"company_name": "ScaleCo",
	"sector": "saas",
	"business_type": "b2b",
	"funding_stage": "series_b",
	"team_size": 100,
	"annual_revenue": 20000000,
	"revenue_growth_pct": 80,
	"competitor_count": 20
}`

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("health status = %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["ok"] != true {
		t.Fatalf("health body: %v", body)
	}
}

func TestListFrameworks(t *testing.T) {
	srv := newTestServer(t)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/frameworks", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		Frameworks []catalog.Framework `json:"frameworks"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Frameworks) < 18 {
		t.Fatalf("expected full catalog, got %d", len(body.Frameworks))
	}
}

func TestRecommendEndpoint(t *testing.T) {
	srv := newTestServer(t)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/recommend", bytes.NewBufferString(sampleProfile)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Recommendations []selection.Recommendation `json:"recommendations"`
		Excluded        []selection.Exclusion      `json:"excluded"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Recommendations) == 0 {
		t.Fatal("no recommendations returned")
	}
}

func TestRecommendRejectsBadProfile(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/recommend", bytes.NewBufferString(`{"team_size": 5}`)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing name: status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/recommend", bytes.NewBufferString(`not json`)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad json: status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/recommend", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("GET recommend: status = %d", rec.Code)
	}
}

func TestAnalyzePersistsRun(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/analyze", bytes.NewBufferString(sampleProfile)))
	if rec.Code != http.StatusOK {
		t.Fatalf("analyze status = %d, body: %s", rec.Code, rec.Body.String())
	}
	var env report.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatal(err)
	}
	if env.RunID == "" {
		t.Fatal("analyze response missing run id")
	}
	if len(env.Recommendations) == 0 {
		t.Fatal("analyze returned no recommendations")
	}
	if !env.Degraded {
		t.Fatal("offline analyzer should produce a degraded envelope")
	}

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/runs/"+env.RunID, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("get run status = %d", rec.Code)
	}
	var stored report.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &stored); err != nil {
		t.Fatal(err)
	}
	if stored.RunID != env.RunID {
		t.Fatalf("stored run id %q != %q", stored.RunID, env.RunID)
	}

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/runs", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("list runs status = %d", rec.Code)
	}
	var list struct {
		Runs []resultstore.RunSummary `json:"runs"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatal(err)
	}
	if len(list.Runs) != 1 {
		t.Fatalf("expected 1 stored run, got %d", len(list.Runs))
	}
}

func TestRunNotFound(t *testing.T) {
	srv := newTestServer(t)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/runs/run-nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestRunsWithoutStore(t *testing.T) {
	cat := catalog.NewDefault()
	srv := NewServer(cat, contextengine.NewEngine(cat), selection.NewSelector(cat), analysis.NewEngine(nil), nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/runs", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", rec.Code)
	}
}
