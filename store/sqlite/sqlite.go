/*
Package sqlite provides a SQLite-backed implementation of kv.Store.

PURPOSE:
  Plays the role the browser's localStorage plays for the client: a
  durable, synchronous, string-keyed map scoped to one profile. One
  database file per profile; the single kv table holds every ledger key.

SCHEMA:
  kv(key TEXT PRIMARY KEY, value TEXT NOT NULL)

  Values are opaque to this package - the ledger engine decides what is
  JSON and what is a bare decimal string. Set is an upsert; there is no
  delete because the ledger never removes keys.

CONCURRENCY:
  Uses sync.RWMutex for thread-safety within one process. Two processes
  opening the same file get SQLite's file-level serialization but NOT
  read-modify-write atomicity across the engine's multi-key actions -
  the same limitation two browser tabs sharing localStorage have.

WAL MODE:
  Opened with WAL (Write-Ahead Logging): readers don't block, single
  writer at a time, better crash recovery.

USAGE:
  store, err := sqlite.New("./data/profile.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  engine := ledger.New(store)

SEE ALSO:
  - kv/kv.go:     Interface definition
  - kv/memory.go: In-memory implementation for testing
*/
package sqlite

import (
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/jachemlyn/chinabank-online/kv"
)

// Store implements kv.Store on a SQLite database.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

var _ kv.Store = (*Store)(nil)

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
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
	CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`

	_, err := s.db.Exec(schema)
	return err
}

// Get returns the value for key, and whether the key was present.
func (s *Store) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key, overwriting any previous value.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}
