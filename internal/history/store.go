package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"scoremerge/internal/config"
)

// Run is one recorded merge invocation.
type Run struct {
	ID             string
	Workbook       string
	OutputPath     string
	Sources        int
	Matched        int
	MatchedExact   int
	MatchedTokens  int
	MatchedSubset  int
	MatchedOverlap int
	Unmatched      int
	Orphans        int
	Ambiguities    int
	NeedsReview    bool
	StartedAt      time.Time
	FinishedAt     time.Time
}

// Store manages run history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

// Open initializes or connects to the history database and applies
// migrations. A file lock next to the database serializes concurrent
// scoremerge invocations; Open fails when another process holds it.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.HistoryDBPath()
	lock := flock.New(dbPath + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire history lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("history database %s is in use by another scoremerge process", dbPath)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath, lock: lock}
	if err := store.applyMigrations(context.Background()); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}

	return store, nil
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Close releases the database connection and the file lock.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var err error
	if s.db != nil {
		err = s.db.Close()
	}
	if s.lock != nil {
		if unlockErr := s.lock.Unlock(); unlockErr != nil && err == nil {
			err = unlockErr
		}
	}
	return err
}

// RecordRun inserts a run row. A missing ID is assigned; the inserted run is
// returned.
func (s *Store) RecordRun(ctx context.Context, run Run) (Run, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now().UTC()
	}
	if run.FinishedAt.IsZero() {
		run.FinishedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO runs (
            id, workbook, output_path, sources, matched,
            matched_exact, matched_tokens, matched_subset, matched_overlap,
            unmatched, orphans, ambiguities, needs_review,
            started_at, finished_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.Workbook,
		run.OutputPath,
		run.Sources,
		run.Matched,
		run.MatchedExact,
		run.MatchedTokens,
		run.MatchedSubset,
		run.MatchedOverlap,
		run.Unmatched,
		run.Orphans,
		run.Ambiguities,
		boolToInt(run.NeedsReview),
		run.StartedAt.Format(time.RFC3339Nano),
		run.FinishedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Run{}, fmt.Errorf("insert run: %w", err)
	}
	return run, nil
}

// ListRuns returns the most recent runs, newest first. A non-positive limit
// means all runs.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	query := `SELECT id, workbook, output_path, sources, matched,
        matched_exact, matched_tokens, matched_subset, matched_overlap,
        unmatched, orphans, ambiguities, needs_review, started_at, finished_at
        FROM runs ORDER BY started_at DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var needsReview int
		var startedAt, finishedAt string
		if err := rows.Scan(
			&run.ID, &run.Workbook, &run.OutputPath, &run.Sources, &run.Matched,
			&run.MatchedExact, &run.MatchedTokens, &run.MatchedSubset, &run.MatchedOverlap,
			&run.Unmatched, &run.Orphans, &run.Ambiguities, &needsReview,
			&startedAt, &finishedAt,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.NeedsReview = needsReview != 0
		if run.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt); err != nil {
			return nil, fmt.Errorf("parse started_at: %w", err)
		}
		if run.FinishedAt, err = time.Parse(time.RFC3339Nano, finishedAt); err != nil {
			return nil, fmt.Errorf("parse finished_at: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
