package runstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"muster/internal/config"
)

// Store manages run history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

// Open initializes or connects to the run database. It takes an advisory
// lock so only one muster process writes the database at a time.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.DatabasePath()

	lock := flock.New(dbPath + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run store lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("run store %s is in use by another muster process", dbPath)
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
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}

	return store, nil
}

// Close closes the database and releases the advisory lock.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	err := s.db.Close()
	if s.lock != nil {
		if unlockErr := s.lock.Unlock(); err == nil {
			err = unlockErr
		}
	}
	return err
}

// RecordRun persists one finished run with its clusters and skip manifest.
func (s *Store) RecordRun(ctx context.Context, params RunParams) (*Run, error) {
	run := &Run{
		ID:              uuid.NewString(),
		CreatedAt:       time.Now().UTC(),
		ExportsDir:      params.ExportsDir,
		RatioThreshold:  params.RatioThreshold,
		FileCount:       params.FileCount,
		ClusterCount:    len(params.Clusters),
		StudentCount:    params.StudentCount,
		UnresolvedCount: params.UnresolvedCount,
		AmbiguityCount:  params.AmbiguityCount,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin run tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (
            id, created_at, exports_dir, ratio_threshold, file_count,
            cluster_count, student_count, unresolved_count, ambiguity_count
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.CreatedAt.Format(time.RFC3339Nano),
		run.ExportsDir,
		run.RatioThreshold,
		run.FileCount,
		run.ClusterCount,
		run.StudentCount,
		run.UnresolvedCount,
		run.AmbiguityCount,
	)
	if err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}

	for _, cluster := range params.Clusters {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO run_clusters (run_id, position, label, meetings, peak_attendance, health)
             VALUES (?, ?, ?, ?, ?, ?)`,
			run.ID, cluster.Position, cluster.Label, cluster.Meetings, cluster.PeakAttendance, cluster.Health,
		)
		if err != nil {
			return nil, fmt.Errorf("insert run cluster: %w", err)
		}
	}

	for _, skip := range params.Skipped {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO run_skips (run_id, file, reason) VALUES (?, ?, ?)`,
			run.ID, skip.File, skip.Reason,
		)
		if err != nil {
			return nil, fmt.Errorf("insert run skip: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit run: %w", err)
	}
	return run, nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, exports_dir, ratio_threshold, file_count,
                cluster_count, student_count, unresolved_count, ambiguity_count
         FROM runs ORDER BY rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var createdAt string
		if err := rows.Scan(
			&run.ID, &createdAt, &run.ExportsDir, &run.RatioThreshold, &run.FileCount,
			&run.ClusterCount, &run.StudentCount, &run.UnresolvedCount, &run.AmbiguityCount,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse run timestamp: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// ClustersForRun returns the recorded cluster summaries for one run in
// position order.
func (s *Store) ClustersForRun(ctx context.Context, runID string) ([]ClusterRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT position, label, meetings, peak_attendance, health
         FROM run_clusters WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("list run clusters: %w", err)
	}
	defer rows.Close()

	var clusters []ClusterRow
	for rows.Next() {
		var cluster ClusterRow
		if err := rows.Scan(&cluster.Position, &cluster.Label, &cluster.Meetings, &cluster.PeakAttendance, &cluster.Health); err != nil {
			return nil, fmt.Errorf("scan run cluster: %w", err)
		}
		clusters = append(clusters, cluster)
	}
	return clusters, rows.Err()
}

// SkipsForRun returns the skipped-file manifest for one run.
func (s *Store) SkipsForRun(ctx context.Context, runID string) ([]SkipRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT file, reason FROM run_skips WHERE run_id = ?`, runID)
	if err != nil {
		return nil, fmt.Errorf("list run skips: %w", err)
	}
	defer rows.Close()

	var skips []SkipRow
	for rows.Next() {
		var skip SkipRow
		if err := rows.Scan(&skip.File, &skip.Reason); err != nil {
			return nil, fmt.Errorf("scan run skip: %w", err)
		}
		skips = append(skips, skip)
	}
	return skips, rows.Err()
}
