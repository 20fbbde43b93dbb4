// Package resultstore persists advisory runs to SQLite so past results can
// be listed and re-rendered without recomputation.
package resultstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/avendel/framework-advisor/internal/report"
)

// ErrNotFound is returned when a run id has no stored envelope.
var ErrNotFound = errors.New("resultstore: run not found")

// RunSummary is the list view of a stored run.
type RunSummary struct {
	RunID        string    `db:"run_id" json:"run_id"`
	CompanyName  string    `db:"company_name" json:"company_name"`
	Inflection   string    `db:"inflection" json:"inflection"`
	TopFramework string    `db:"top_framework" json:"top_framework"`
	Degraded     bool      `db:"degraded" json:"degraded"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Store is a write-through SQLite store for advisory envelopes. A single
// connection with WAL keeps writers serialized; the mutex guards the
// read-modify-write paths.
type Store struct {
	db *sqlx.DB
	mu sync.Mutex
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id        TEXT PRIMARY KEY,
	company_name  TEXT NOT NULL,
	inflection    TEXT NOT NULL DEFAULT '',
	top_framework TEXT NOT NULL DEFAULT '',
	degraded      INTEGER NOT NULL DEFAULT 0,
	envelope      TEXT NOT NULL,
	created_at    TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_company ON runs(company_name);
CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
`

// Open opens or creates the store at dbPath.
func Open(dbPath string) (*Store, error) {
	db, err := sqlx.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

// SaveRun persists one envelope.
func (s *Store) SaveRun(ctx context.Context, env report.Envelope) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}
	top := ""
	if len(env.Recommendations) > 0 {
		top = env.Recommendations[0].FrameworkID
	}
	infl := ""
	if env.Context != nil {
		infl = string(env.Context.Inflection)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO runs (run_id, company_name, inflection, top_framework, degraded, envelope, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(run_id) DO UPDATE SET
			company_name = excluded.company_name,
			inflection   = excluded.inflection,
			top_framework = excluded.top_framework,
			degraded     = excluded.degraded,
			envelope     = excluded.envelope`,
		env.RunID, env.CompanyName, infl, top, boolToInt(env.Degraded),
		string(raw), env.GeneratedAt.Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// GetRun loads one envelope by id.
func (s *Store) GetRun(ctx context.Context, runID string) (report.Envelope, error) {
	var raw string
	err := s.db.GetContext(ctx, &raw, `SELECT envelope FROM runs WHERE run_id = ?`, runID)
	if errors.Is(err, sql.ErrNoRows) {
		return report.Envelope{}, ErrNotFound
	}
	if err != nil {
		return report.Envelope{}, fmt.Errorf("select run: %w", err)
	}
	var env report.Envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return report.Envelope{}, fmt.Errorf("unmarshal envelope: %w", err)
	}
	return env, nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]RunSummary, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	rows, err := s.db.QueryxContext(ctx, `
		SELECT run_id, company_name, inflection, top_framework, degraded, created_at
		FROM runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var (
			s1       RunSummary
			degraded int
			created  string
		)
		if err := rows.Scan(&s1.RunID, &s1.CompanyName, &s1.Inflection, &s1.TopFramework, &degraded, &created); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		s1.Degraded = degraded != 0
		if ts, err := time.Parse(time.RFC3339Nano, created); err == nil {
			s1.CreatedAt = ts
		}
		out = append(out, s1)
	}
	return out, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
