// Package storage provides the SQLite-based run journal: the seed and the
// per-tick input of every finished run, enough to replay it exactly.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// ErrRunNotFound is returned when a run ID is not in the journal.
var ErrRunNotFound = errors.New("storage: run not found")

// Store manages the SQLite database connection for the run journal.
type Store struct {
	db *sql.DB
}

// Run is one finished run. Scores are not stored; a replay recomputes them.
type Run struct {
	ID        int64
	Seed      int64
	Cols      int // grid the run was played on
	Rows      int
	Distance  int // player X when the run ended
	TickCount int
	StartedAt time.Time
	EndedAt   time.Time
}

// Duration returns the wall-clock length of the run.
func (r Run) Duration() time.Duration {
	return r.EndedAt.Sub(r.StartedAt)
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

	// Create parent directories
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
			seed INTEGER NOT NULL,
			cols INTEGER NOT NULL,
			rows INTEGER NOT NULL,
			distance INTEGER NOT NULL,
			tick_count INTEGER NOT NULL,
			started_at INTEGER NOT NULL,
			ended_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_ended_at ON runs(ended_at DESC);

		CREATE TABLE IF NOT EXISTS run_ticks (
			run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			seq INTEGER NOT NULL,
			elapsed_ms REAL NOT NULL,
			action INTEGER NOT NULL,
			PRIMARY KEY (run_id, seq)
		);
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

// SaveRun records a finished run and its ticks in one transaction.
// TickCount is taken from ticks. Returns the ID of the inserted run.
func (s *Store) SaveRun(run Run, ticks []core.InputFrame) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() // no-op after commit

	res, err := tx.Exec(
		`INSERT INTO runs (seed, cols, rows, distance, tick_count, started_at, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.Seed, run.Cols, run.Rows, run.Distance, len(ticks), run.StartedAt.UnixMilli(), run.EndedAt.UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO run_ticks (run_id, seq, elapsed_ms, action) VALUES (?, ?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prepare tick insert: %w", err)
	}
	defer stmt.Close()

	for seq, in := range ticks {
		if _, err := stmt.Exec(id, seq, in.ElapsedMs, int(in.Action)); err != nil {
			return 0, fmt.Errorf("storage: cannot save tick %d: %w", seq, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return id, nil
}

// Runs retrieves the most recent runs, newest first.
func (s *Store) Runs(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, seed, cols, rows, distance, tick_count, started_at, ended_at
		 FROM runs
		 ORDER BY ended_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// Run retrieves a single run by ID.
// Returns ErrRunNotFound if it does not exist.
func (s *Store) Run(id int64) (Run, error) {
	row := s.db.QueryRow(
		`SELECT id, seed, cols, rows, distance, tick_count, started_at, ended_at
		 FROM runs
		 WHERE id = ?`,
		id,
	)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %d", ErrRunNotFound, id)
	}
	return run, err
}

// RunTicks retrieves the recorded input of a run in tick order.
func (s *Store) RunTicks(id int64) ([]core.InputFrame, error) {
	rows, err := s.db.Query(
		`SELECT elapsed_ms, action
		 FROM run_ticks
		 WHERE run_id = ?
		 ORDER BY seq`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query ticks: %w", err)
	}
	defer rows.Close()

	var ticks []core.InputFrame
	for rows.Next() {
		var elapsed float64
		var action int
		if err := rows.Scan(&elapsed, &action); err != nil {
			return nil, fmt.Errorf("storage: cannot scan tick: %w", err)
		}
		ticks = append(ticks, core.NewInputFrame(elapsed, core.Action(action)))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return ticks, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var run Run
	var startedAt, endedAt int64
	err := sc.Scan(&run.ID, &run.Seed, &run.Cols, &run.Rows, &run.Distance, &run.TickCount, &startedAt, &endedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return run, err
	}
	if err != nil {
		return run, fmt.Errorf("storage: cannot scan run: %w", err)
	}
	run.StartedAt = time.UnixMilli(startedAt)
	run.EndedAt = time.UnixMilli(endedAt)
	return run, nil
}
