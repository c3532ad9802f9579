package modules

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// CounterStore persists named counter tables in SQLite. Each table is an
// opaque handle (a Ref at the language level) mapping string keys to
// integer counters.
type CounterStore struct {
	db *sql.DB
}

const counterSchema = `
CREATE TABLE IF NOT EXISTS counters (
	tab   TEXT NOT NULL,
	key   TEXT NOT NULL,
	value INTEGER NOT NULL,
	PRIMARY KEY (tab, key)
)`

// OpenCounterStore opens the store at dsn (":memory:" for process-local
// tables) and creates the schema.
func OpenCounterStore(dsn string) (*CounterStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open counter store: %w", err)
	}
	// An in-memory SQLite database lives and dies with its connection.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(counterSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init counter store: %w", err)
	}
	return &CounterStore{db: db}, nil
}

func (s *CounterStore) Close() error {
	return s.db.Close()
}

// Incr adds delta to the counter at (table, key) and returns the new value.
// Missing counters start at zero.
func (s *CounterStore) Incr(table, key string, delta int64) (int64, error) {
	var value int64
	err := s.db.QueryRow(`
		INSERT INTO counters (tab, key, value) VALUES (?, ?, ?)
		ON CONFLICT (tab, key) DO UPDATE SET value = value + excluded.value
		RETURNING value`,
		table, key, delta,
	).Scan(&value)
	if err != nil {
		return 0, fmt.Errorf("incr %s/%s: %w", table, key, err)
	}
	return value, nil
}

// Value returns the counter at (table, key), zero if absent.
func (s *CounterStore) Value(table, key string) (int64, error) {
	var value int64
	err := s.db.QueryRow(
		`SELECT value FROM counters WHERE tab = ? AND key = ?`,
		table, key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("value %s/%s: %w", table, key, err)
	}
	return value, nil
}

// Drop removes a whole table.
func (s *CounterStore) Drop(table string) error {
	if _, err := s.db.Exec(`DELETE FROM counters WHERE tab = ?`, table); err != nil {
		return fmt.Errorf("drop %s: %w", table, err)
	}
	return nil
}
