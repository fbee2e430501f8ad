/*
Package sqlite provides SQLite-backed persistence for named date ranges.

PURPOSE:
  Stores range snapshots so that saved calendars (billing windows, coverage
  periods, blackout spans) survive restarts. In production the same patterns
  apply to PostgreSQL - only minor SQL dialect differences.

SERIALIZED FORM:
  Each range is stored as its two bound dates in canonical ISO-8601 text.
  Loading reconstructs the value through the validating chrono factory, so
  a stored row always round-trips to an identical DateRange and corrupted
  rows surface as errors instead of invalid values.

CONCURRENCY:
  Uses sync.RWMutex for thread-safety. In production with PostgreSQL,
  database-level concurrency control handles this instead.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better concurrency:
  multiple readers don't block and crash recovery is cleaner.

USAGE:
  store, err := sqlite.New("./data/ranges.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

SEE ALSO:
  - chrono/range.go: The DateRange value being persisted
  - api/handlers.go: HTTP surface over this store
*/
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/warp/chrono-extra/chrono"
)

// ErrRangeNotFound is returned when no range exists under the given name.
var ErrRangeNotFound = errors.New("range not found")

// NamedRange is a stored range snapshot.
type NamedRange struct {
	Name      string
	Range     chrono.DateRange
	UpdatedAt time.Time
}

// Store persists named ranges in SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	-- Named range snapshots. Bounds are canonical ISO-8601 date text;
	-- the sentinel bounds render as their extreme proleptic dates.
	CREATE TABLE IF NOT EXISTS ranges (
		name TEXT PRIMARY KEY,
		start_date TEXT NOT NULL,
		end_exclusive TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_ranges_start ON ranges(start_date);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// RANGE SNAPSHOTS
// =============================================================================

// SaveRange inserts or replaces the range stored under name.
func (s *Store) SaveRange(ctx context.Context, name string, r chrono.DateRange) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO ranges (name, start_date, end_exclusive, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			start_date = excluded.start_date,
			end_exclusive = excluded.end_exclusive,
			updated_at = excluded.updated_at
	`

	_, err := s.db.ExecContext(ctx, query,
		name,
		r.Start().String(),
		r.EndExclusive().String(),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save range %q: %w", name, err)
	}
	return nil
}

// GetRange loads the range stored under name.
func (s *Store) GetRange(ctx context.Context, name string) (chrono.DateRange, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx,
		`SELECT start_date, end_exclusive FROM ranges WHERE name = ?`, name)

	var startText, endText string
	if err := row.Scan(&startText, &endText); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return chrono.DateRange{}, ErrRangeNotFound
		}
		return chrono.DateRange{}, fmt.Errorf("failed to load range %q: %w", name, err)
	}

	return rebuildRange(name, startText, endText)
}

// ListRanges returns every stored range ordered by name.
func (s *Store) ListRanges(ctx context.Context) ([]NamedRange, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT name, start_date, end_exclusive, updated_at FROM ranges ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list ranges: %w", err)
	}
	defer rows.Close()

	var result []NamedRange
	for rows.Next() {
		var name, startText, endText, updatedText string
		if err := rows.Scan(&name, &startText, &endText, &updatedText); err != nil {
			return nil, fmt.Errorf("failed to scan range row: %w", err)
		}
		r, err := rebuildRange(name, startText, endText)
		if err != nil {
			return nil, err
		}
		updatedAt, _ := time.Parse(time.RFC3339, updatedText)
		result = append(result, NamedRange{Name: name, Range: r, UpdatedAt: updatedAt})
	}
	return result, rows.Err()
}

// DeleteRange removes the range stored under name.
func (s *Store) DeleteRange(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.ExecContext(ctx, `DELETE FROM ranges WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete range %q: %w", name, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete range %q: %w", name, err)
	}
	if affected == 0 {
		return ErrRangeNotFound
	}
	return nil
}

// rebuildRange reconstructs a stored range through the validating factory.
func rebuildRange(name, startText, endText string) (chrono.DateRange, error) {
	start, err := chrono.ParseDate(startText)
	if err != nil {
		return chrono.DateRange{}, fmt.Errorf("corrupt start for range %q: %w", name, err)
	}
	end, err := chrono.ParseDate(endText)
	if err != nil {
		return chrono.DateRange{}, fmt.Errorf("corrupt end for range %q: %w", name, err)
	}
	r, err := chrono.NewDateRange(start, end)
	if err != nil {
		return chrono.DateRange{}, fmt.Errorf("corrupt bounds for range %q: %w", name, err)
	}
	return r, nil
}
