// Package httpapi exposes the advisor over a JSON HTTP API.
package httpapi

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/avendel/framework-advisor/internal/analysis"
	"github.com/avendel/framework-advisor/internal/catalog"
	"github.com/avendel/framework-advisor/internal/contextengine"
	"github.com/avendel/framework-advisor/internal/report"
	"github.com/avendel/framework-advisor/internal/resultstore"
	"github.com/avendel/framework-advisor/internal/selection"
	"github.com/avendel/framework-advisor/internal/telemetry"
)

// RunStore is the slice of the result store the server needs.
type RunStore interface {
	SaveRun(ctx context.Context, env report.Envelope) error
	GetRun(ctx context.Context, runID string) (report.Envelope, error)
	ListRuns(ctx context.Context, limit int) ([]resultstore.RunSummary, error)
}

// Server wires the engines behind the HTTP surface.
type Server struct {
	cat      *catalog.Catalog
	contexts *contextengine.Engine
	selector *selection.Selector
	analyzer *analysis.Engine
	store    RunStore

	maxRecommendations int
}

// NewServer builds the handler. The store may be nil, in which case run
// persistence endpoints report unavailability.
func NewServer(cat *catalog.Catalog, ce *contextengine.Engine, sel *selection.Selector, an *analysis.Engine, store RunStore) http.Handler {
	s := &Server{
		cat:                cat,
		contexts:           ce,
		selector:           sel,
		analyzer:           an,
		store:              store,
		maxRecommendations: 5,
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/analyze", s.handleAnalyze)
	mux.HandleFunc("/v1/recommend", s.handleRecommend)
	mux.HandleFunc("/v1/frameworks", s.handleFrameworks)
	mux.HandleFunc("/v1/runs", s.handleRuns)
	mux.HandleFunc("/v1/runs/", s.handleRunByID)
	mux.HandleFunc("/v1/health", s.handleHealth)
	return mux
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"ok": false, "error": msg})
}

func decodeProfile(r *http.Request) (contextengine.RawProfile, error) {
	var p contextengine.RawProfile
	blob, err := io.ReadAll(http.MaxBytesReader(nil, r.Body, 1<<20))
	if err != nil {
		return p, fmt.Errorf("read body: %w", err)
	}
	if err := json.Unmarshal(blob, &p); err != nil {
		return p, fmt.Errorf("parse profile: %w", err)
	}
	return p, nil
}

// handleRecommend runs context derivation and selection without the
// narrative layer. It never persists.
func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	profile, err := decodeProfile(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	companyCtx, err := s.contexts.BuildContext(profile)
	if err != nil {
		writeError(w, contextStatus(err), err.Error())
		return
	}
	max := parseInt(r.URL.Query().Get("max"), s.maxRecommendations)
	res := s.selector.SelectWithExclusions(companyCtx, max)
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":              true,
		"context":         companyCtx,
		"recommendations": res.Recommendations,
		"excluded":        res.Excluded,
	})
}

// handleAnalyze runs the full pipeline: context, selection, narrative
// analysis per recommended framework, journey, and persistence.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	ctx := r.Context()
	tracer := telemetry.Tracer("httpapi")
	ctx, span := tracer.Start(ctx, "analyze")
	defer span.End()

	profile, err := decodeProfile(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	companyCtx, err := s.contexts.BuildContext(profile)
	if err != nil {
		writeError(w, contextStatus(err), err.Error())
		return
	}

	max := parseInt(r.URL.Query().Get("max"), s.maxRecommendations)
	res := s.selector.SelectWithExclusions(companyCtx, max)

	var analyses []*analysis.Report
	for _, rec := range res.Recommendations {
		fw, ok := s.cat.Framework(rec.FrameworkID)
		if !ok {
			continue
		}
		rep, err := s.analyzer.GenerateFrameworkAnalysis(ctx, fw, companyCtx)
		if err != nil {
			log.Printf("httpapi: analysis of %s failed: %v", rec.FrameworkID, err)
			continue
		}
		analyses = append(analyses, rep)
	}

	journey := s.selector.BuildJourney(companyCtx, res.Recommendations)
	env := report.BuildEnvelope(newRunID(), companyCtx, res, journey, analyses)

	if s.store != nil {
		if err := s.store.SaveRun(ctx, env); err != nil {
			log.Printf("httpapi: persist run %s failed: %v", env.RunID, err)
		}
	}
	writeJSON(w, http.StatusOK, env)
}

func (s *Server) handleFrameworks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":         true,
		"frameworks": s.cat.Frameworks(),
	})
}

func (s *Server) handleRuns(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "run persistence not configured")
		return
	}
	limit := parseInt(r.URL.Query().Get("limit"), 50)
	runs, err := s.store.ListRuns(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "runs": runs})
}

func (s *Server) handleRunByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "run persistence not configured")
		return
	}
	runID := strings.TrimPrefix(r.URL.Path, "/v1/runs/")
	if runID == "" || strings.Contains(runID, "/") {
		writeError(w, http.StatusBadRequest, "run id required")
		return
	}
	env, err := s.store.GetRun(r.Context(), runID)
	if errors.Is(err, resultstore.ErrNotFound) {
		writeError(w, http.StatusNotFound, "run not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, env)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":         true,
		"frameworks": len(s.cat.IDs()),
	})
}

// contextStatus maps profile validation failures to 400; anything else in
// context derivation is a server fault.
func contextStatus(err error) int {
	var verr *contextengine.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func parseInt(value string, def int) int {
	if strings.TrimSpace(value) == "" {
		return def
	}
	v, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return v
}

func newRunID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "run-unknown"
	}
	return "run-" + hex.EncodeToString(b)
}
