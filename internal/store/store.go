package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/google/uuid"

	"github.com/ChenyuHeee/AIOPS/internal/scoring"
)

// ErrRunNotFound reports a run ID absent from the history.
var ErrRunNotFound = errors.New("run not found")

// Run is one recorded scoring run.
type Run struct {
	ID              string
	Label           string
	GroundTruth     string
	Submission      string
	ReasonThreshold float64
	SampleCount     int
	Metrics         scoring.Metrics
	CreatedAt       time.Time
}

// Store records scoring runs in a DuckDB database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (or creates) the database at path and applies the schema. An
// empty path or ":memory:" opens an in-memory database.
func Open(ctx context.Context, path string) (*Store, error) {
	dsn := strings.TrimSpace(path)
	if dsn == ":memory:" {
		dsn = ""
	}
	if dsn != "" {
		if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
			return nil, fmt.Errorf("create history dir: %w", err)
		}
	}
	db, err := sql.Open("duckdb", dsn)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping history db: %w", err)
	}
	if err := EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply history schema: %w", err)
	}
	return New(db), nil
}

// OpenExisting opens the database at path read-only. It never creates a
// file: a missing path yields an error wrapping os.ErrNotExist.
func OpenExisting(ctx context.Context, path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" || path == ":memory:" {
		return nil, errors.New("history db path is required")
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("history db %s: %w", path, os.ErrNotExist)
		}
		return nil, fmt.Errorf("stat history db: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("history db %s is a directory", path)
	}
	db, err := sql.Open("duckdb", path+"?access_mode=read_only")
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping history db: %w", err)
	}
	return New(db), nil
}

// New wraps an existing connection whose schema is already applied.
func New(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// WithClock overrides the clock used to stamp runs.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// RecordRun stores a run and its samples in one transaction and returns the
// run ID. A missing ID or timestamp is filled in.
func (s *Store) RecordRun(ctx context.Context, run Run, samples []scoring.SampleScore) (string, error) {
	if ctx == nil {
		return "", errors.New("store: context is nil")
	}
	if s == nil || s.db == nil {
		return "", errors.New("store: db is nil")
	}
	if run.ID == "" {
		run.ID = uuid.NewString()
	} else if _, err := uuid.Parse(run.ID); err != nil {
		return "", fmt.Errorf("store: invalid run id %q: %w", run.ID, err)
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = s.now()
	}
	run.SampleCount = len(samples)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin record run: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO runs (
		  run_id, label, ground_truth_path, submission_path, reason_threshold, sample_count,
		  component_accuracy, reason_accuracy, efficiency, explainability, final_score, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		nullableString(run.Label),
		run.GroundTruth,
		run.Submission,
		run.ReasonThreshold,
		run.SampleCount,
		run.Metrics.ComponentAccuracy,
		run.Metrics.ReasonAccuracy,
		run.Metrics.Efficiency,
		run.Metrics.Explainability,
		run.Metrics.FinalScore,
		run.CreatedAt.UTC(),
	); err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO samples (
	  run_id, sample_index, uuid, component_correct, reason_correct, step_count, evidence_hit, evidence_total
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("prepare sample insert: %w", err)
	}
	defer stmt.Close()
	for i, sample := range samples {
		if _, err := stmt.ExecContext(
			ctx,
			run.ID,
			i,
			sample.UUID,
			sample.ComponentCorrect,
			sample.ReasonCorrect,
			sample.StepCount,
			sample.EvidenceHit,
			sample.EvidenceTotal,
		); err != nil {
			return "", fmt.Errorf("insert sample %s: %w", sample.UUID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit record run: %w", err)
	}
	return run.ID, nil
}

const runColumns = `CAST(run_id AS VARCHAR), COALESCE(label, ''), ground_truth_path, submission_path,
  reason_threshold, sample_count, component_accuracy, reason_accuracy, efficiency,
  explainability, final_score, created_at`

// ListRuns returns the most recent runs first. A non-positive limit returns
// every run.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	query := "SELECT " + runColumns + " FROM runs ORDER BY created_at DESC, run_id"
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

// LoadRun returns a run and its per-sample scores in recorded order.
func (s *Store) LoadRun(ctx context.Context, id string) (Run, scoring.Result, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Run{}, scoring.Result{}, fmt.Errorf("%s: %w", id, ErrRunNotFound)
	}
	row := s.db.QueryRowContext(ctx, "SELECT "+runColumns+" FROM runs WHERE run_id = ?", id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, scoring.Result{}, fmt.Errorf("%s: %w", id, ErrRunNotFound)
	}
	if err != nil {
		return Run{}, scoring.Result{}, fmt.Errorf("load run: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT uuid, component_correct, reason_correct, step_count, evidence_hit, evidence_total
	  FROM samples WHERE run_id = ? ORDER BY sample_index`, id)
	if err != nil {
		return Run{}, scoring.Result{}, fmt.Errorf("load samples: %w", err)
	}
	defer rows.Close()

	result := scoring.Result{Metrics: run.Metrics, Samples: []scoring.SampleScore{}}
	for rows.Next() {
		var sample scoring.SampleScore
		if err := rows.Scan(
			&sample.UUID,
			&sample.ComponentCorrect,
			&sample.ReasonCorrect,
			&sample.StepCount,
			&sample.EvidenceHit,
			&sample.EvidenceTotal,
		); err != nil {
			return Run{}, scoring.Result{}, fmt.Errorf("scan sample: %w", err)
		}
		result.Samples = append(result.Samples, sample)
	}
	if err := rows.Err(); err != nil {
		return Run{}, scoring.Result{}, fmt.Errorf("load samples: %w", err)
	}
	return run, result, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(row rowScanner) (Run, error) {
	var run Run
	err := row.Scan(
		&run.ID,
		&run.Label,
		&run.GroundTruth,
		&run.Submission,
		&run.ReasonThreshold,
		&run.SampleCount,
		&run.Metrics.ComponentAccuracy,
		&run.Metrics.ReasonAccuracy,
		&run.Metrics.Efficiency,
		&run.Metrics.Explainability,
		&run.Metrics.FinalScore,
		&run.CreatedAt,
	)
	return run, err
}

// nullableString converts an empty string into a SQL NULL.
func nullableString(value string) interface{} {
	if value == "" {
		return nil
	}
	return value
}

// SampleOutcome is one run's verdict for a single ground-truth UUID.
type SampleOutcome struct {
	RunID     string
	Label     string
	CreatedAt time.Time
	Score     scoring.SampleScore
}

// SampleHistory returns the verdicts recorded for uuid, newest run first.
func (s *Store) SampleHistory(ctx context.Context, sampleUUID string, limit int) ([]SampleOutcome, error) {
	query := `SELECT CAST(run_id AS VARCHAR), COALESCE(label, ''), created_at, uuid, component_correct,
	  reason_correct, step_count, evidence_hit, evidence_total
	  FROM v_sample_history WHERE uuid = ? ORDER BY created_at DESC, run_id`
	args := []interface{}{sampleUUID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sample history: %w", err)
	}
	defer rows.Close()

	var out []SampleOutcome
	for rows.Next() {
		var outcome SampleOutcome
		if err := rows.Scan(
			&outcome.RunID,
			&outcome.Label,
			&outcome.CreatedAt,
			&outcome.Score.UUID,
			&outcome.Score.ComponentCorrect,
			&outcome.Score.ReasonCorrect,
			&outcome.Score.StepCount,
			&outcome.Score.EvidenceHit,
			&outcome.Score.EvidenceTotal,
		); err != nil {
			return nil, fmt.Errorf("scan sample history: %w", err)
		}
		out = append(out, outcome)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sample history: %w", err)
	}
	return out, nil
}
