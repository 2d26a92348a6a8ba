/*
Package sqlite provides the SQLite-backed payroll.Store implementation.

PURPOSE:
  Persists shift entries and the payroll settings for the single-binary
  server. The calculation core never touches the database; this package
  only stores what the core produced.

KEY TABLES:
  shift_entries:     One row per computed shift calculation. The full
                     breakdown is stored as JSON - it is an opaque value
                     to the store, only the work date is queried.
  payroll_settings:  Single-row JSON document with the salary and
                     contribution configuration.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging): multiple readers
  don't block and crash recovery is better. An RWMutex serializes
  writers on top.

USAGE:
  store, err := sqlite.New("./data/payroll.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

SEE ALSO:
  - payroll/store.go: Interface definition
  - store/memory: In-memory implementation for tests
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/nomina/payroll-engine/payroll"
)

// Store implements payroll.Store using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a SQLite store at the given path. Use ":memory:" for an
// in-memory database.
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

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS shift_entries (
		id TEXT PRIMARY KEY,
		work_date TEXT NOT NULL,
		shift_type TEXT NOT NULL,
		novelty TEXT NOT NULL,
		breakdown_json TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	-- Month listings query by date range (hot path)
	CREATE INDEX IF NOT EXISTS idx_shift_entries_work_date
		ON shift_entries(work_date);

	CREATE TABLE IF NOT EXISTS payroll_settings (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		settings_json TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// SHIFT ENTRIES
// =============================================================================

// SaveEntries inserts entries in one transaction, assigning IDs and
// creation timestamps where missing.
func (s *Store) SaveEntries(ctx context.Context, entries []payroll.Entry) ([]payroll.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	saved := make([]payroll.Entry, 0, len(entries))
	for _, e := range entries {
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		if e.CreatedAt.IsZero() {
			e.CreatedAt = time.Now().UTC()
		}

		breakdown, err := json.Marshal(e.Breakdown)
		if err != nil {
			return nil, fmt.Errorf("failed to encode breakdown: %w", err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO shift_entries (id, work_date, shift_type, novelty, breakdown_json, created_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			e.ID,
			payroll.FormatDate(e.Date),
			string(e.Shift),
			string(e.Novelty),
			string(breakdown),
			e.CreatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to insert entry: %w", err)
		}
		saved = append(saved, e)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}
	return saved, nil
}

// ListEntries returns entries with from <= work date <= to, ascending.
func (s *Store) ListEntries(ctx context.Context, from, to time.Time) ([]payroll.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, work_date, shift_type, novelty, breakdown_json, created_at
		FROM shift_entries
		WHERE work_date >= ? AND work_date <= ?
		ORDER BY work_date ASC, created_at ASC`,
		payroll.FormatDate(from), payroll.FormatDate(to),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	var entries []payroll.Entry
	for rows.Next() {
		var (
			e         payroll.Entry
			workDate  string
			shift     string
			novelty   string
			breakdown string
			createdAt string
		)
		if err := rows.Scan(&e.ID, &workDate, &shift, &novelty, &breakdown, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}

		if e.Date, err = payroll.ParseDate(workDate); err != nil {
			return nil, fmt.Errorf("corrupt work_date %q: %w", workDate, err)
		}
		e.Shift = payroll.ShiftType(shift)
		e.Novelty = payroll.NoveltyType(novelty)
		if err := json.Unmarshal([]byte(breakdown), &e.Breakdown); err != nil {
			return nil, fmt.Errorf("corrupt breakdown for %s: %w", e.ID, err)
		}
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			e.CreatedAt = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// DeleteEntry removes one entry; missing IDs are a no-op.
func (s *Store) DeleteEntry(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM shift_entries WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	return nil
}

// =============================================================================
// SETTINGS
// =============================================================================

// GetSettings returns the stored settings, or defaults when none exist.
func (s *Store) GetSettings(ctx context.Context) (payroll.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var doc string
	err := s.db.QueryRowContext(ctx, `SELECT settings_json FROM payroll_settings WHERE id = 1`).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return payroll.DefaultSettings(), nil
	}
	if err != nil {
		return payroll.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}

	var settings payroll.Settings
	if err := json.Unmarshal([]byte(doc), &settings); err != nil {
		return payroll.Settings{}, fmt.Errorf("corrupt settings: %w", err)
	}
	return settings, nil
}

// PutSettings replaces the stored settings.
func (s *Store) PutSettings(ctx context.Context, settings payroll.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO payroll_settings (id, settings_json, updated_at)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET settings_json = excluded.settings_json, updated_at = excluded.updated_at`,
		string(doc), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to store settings: %w", err)
	}
	return nil
}
