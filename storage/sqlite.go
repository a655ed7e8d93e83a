// Package storage keeps per-level attempt statistics in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Outcome is how an attempt ended.
type Outcome string

const (
	OutcomeDeath Outcome = "death"
	OutcomeClear Outcome = "clear"
	OutcomeQuit  Outcome = "quit"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Attempt is one finished try at a level.
type Attempt struct {
	ID        int64
	Level     string
	Outcome   Outcome
	Cause     string
	Seconds   float64
	CreatedAt time.Time
}

// LevelStats aggregates the attempts of one level.
type LevelStats struct {
	Level    string
	Attempts int
	Deaths   int
	Clears   int

	// BestClear is the fastest clear in seconds, 0 when never cleared.
	BestClear float64
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
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

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS attempts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level TEXT NOT NULL,
			outcome TEXT NOT NULL,
			cause TEXT NOT NULL DEFAULT '',
			seconds REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_attempts_level ON attempts(level);
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

// RecordAttempt stores a finished attempt and returns its ID.
func (s *Store) RecordAttempt(level string, outcome Outcome, cause string, seconds float64) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO attempts (level, outcome, cause, seconds) VALUES (?, ?, ?, ?)",
		level, string(outcome), cause, seconds,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record attempt: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

const statsQuery = `
	SELECT level,
	       COUNT(*),
	       SUM(CASE WHEN outcome = 'death' THEN 1 ELSE 0 END),
	       SUM(CASE WHEN outcome = 'clear' THEN 1 ELSE 0 END),
	       COALESCE(MIN(CASE WHEN outcome = 'clear' THEN seconds END), 0)
	FROM attempts`

// Stats returns the aggregate for one level. A level without attempts
// yields zero counts.
func (s *Store) Stats(level string) (LevelStats, error) {
	st := LevelStats{Level: level}
	row := s.db.QueryRow(statsQuery+" WHERE level = ? GROUP BY level", level)
	err := row.Scan(&st.Level, &st.Attempts, &st.Deaths, &st.Clears, &st.BestClear)
	if err == sql.ErrNoRows {
		return st, nil
	}
	if err != nil {
		return st, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	return st, nil
}

// AllStats returns the aggregates of every level with attempts, by name.
func (s *Store) AllStats() ([]LevelStats, error) {
	rows, err := s.db.Query(statsQuery + " GROUP BY level ORDER BY level")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	defer rows.Close()

	var out []LevelStats
	for rows.Next() {
		var st LevelStats
		if err := rows.Scan(&st.Level, &st.Attempts, &st.Deaths, &st.Clears, &st.BestClear); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		out = append(out, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// RecentAttempts returns the latest attempts of a level, newest first.
func (s *Store) RecentAttempts(level string, limit int) ([]Attempt, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level, outcome, cause, seconds, created_at
		 FROM attempts
		 WHERE level = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		level, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query attempts: %w", err)
	}
	defer rows.Close()

	var out []Attempt
	for rows.Next() {
		var a Attempt
		var outcome string
		var createdAt any
		if err := rows.Scan(&a.ID, &a.Level, &outcome, &a.Cause, &a.Seconds, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		a.Outcome = Outcome(outcome)

		// The driver hands back either time.Time or the raw string.
		switch v := createdAt.(type) {
		case time.Time:
			a.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				a.CreatedAt = parsed
			}
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}
