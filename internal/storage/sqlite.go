// Package storage provides SQLite-based persistence for finished board runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Live session state is never stored; only run summaries are.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/ringboard/internal/board"
	"github.com/vovakirdan/ringboard/internal/game"
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// RunEntry represents a single recorded run.
type RunEntry struct {
	ID        int64
	SessionID string
	LayoutID  string
	Seed      int64
	Turns     int
	Steps     int
	FinalRing board.RingNumber
	FinalTile int
	Throne    bool
	CreatedAt time.Time
}

// RunStats contains aggregated statistics for a layout.
type RunStats struct {
	LayoutID    string
	Runs        int
	ThroneRuns  int
	FewestTurns int // 0 when no run reached the throne
	AvgTurns    float64
	TotalSteps  int64
	LastPlayed  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL UNIQUE,
			layout_id TEXT NOT NULL,
			seed INTEGER NOT NULL DEFAULT 0,
			turns INTEGER NOT NULL,
			steps INTEGER NOT NULL,
			final_ring INTEGER NOT NULL,
			final_tile INTEGER NOT NULL,
			throne INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_layout_id ON runs(layout_id);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(layout_id, throne DESC, turns ASC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run and returns its row ID.
// Saving the same session twice updates the existing row.
func (s *Store) SaveRun(run game.RunSummary) (int64, error) {
	if run.SessionID == "" {
		return 0, errors.New("storage: run has no session id")
	}

	_, err := s.db.Exec(
		`INSERT INTO runs
		 (session_id, layout_id, seed, turns, steps, final_ring, final_tile, throne)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(session_id) DO UPDATE SET
		   turns = excluded.turns,
		   steps = excluded.steps,
		   final_ring = excluded.final_ring,
		   final_tile = excluded.final_tile,
		   throne = excluded.throne`,
		run.SessionID,
		run.LayoutID,
		run.Seed,
		run.Turns,
		run.Steps,
		int(run.FinalRing),
		run.FinalTile,
		run.Throne,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	var id int64
	if err := s.db.QueryRow("SELECT id FROM runs WHERE session_id = ?", run.SessionID).Scan(&id); err != nil {
		return 0, fmt.Errorf("storage: cannot get run ID: %w", err)
	}
	return id, nil
}

// RecordRun implements game.RunRecorder.
func (s *Store) RecordRun(run game.RunSummary) error {
	_, err := s.SaveRun(run)
	return err
}

// Ensure Store implements RunRecorder
var _ game.RunRecorder = (*Store)(nil)

// BestRuns retrieves the best runs for a layout: throne runs first, then by
// fewest turns, then oldest first.
func (s *Store) BestRuns(layoutID string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, layout_id, seed, turns, steps, final_ring, final_tile, throne, created_at
		 FROM runs
		 WHERE layout_id = ?
		 ORDER BY throne DESC, turns ASC, id ASC
		 LIMIT ?`,
		layoutID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var (
			e         RunEntry
			ring      int
			createdAt any
		)
		if err := rows.Scan(&e.ID, &e.SessionID, &e.LayoutID, &e.Seed, &e.Turns, &e.Steps,
			&ring, &e.FinalTile, &e.Throne, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.FinalRing = board.RingNumber(ring)
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Stats retrieves aggregated statistics for a layout.
func (s *Store) Stats(layoutID string) (*RunStats, error) {
	stats := &RunStats{LayoutID: layoutID}

	var (
		fewest     sql.NullInt64
		lastPlayed any
	)
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(throne), 0),
		        MIN(CASE WHEN throne = 1 THEN turns END),
		        COALESCE(AVG(turns), 0),
		        COALESCE(SUM(steps), 0),
		        MAX(created_at)
		 FROM runs WHERE layout_id = ?`,
		layoutID,
	).Scan(&stats.Runs, &stats.ThroneRuns, &fewest, &stats.AvgTurns, &stats.TotalSteps, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}

	if fewest.Valid {
		stats.FewestTurns = int(fewest.Int64)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// ClearRuns deletes all runs for the given layout.
func (s *Store) ClearRuns(layoutID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE layout_id = ?", layoutID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
