// Package library stores named query settings in SQLite so authors can
// iterate on saved queries across sessions.
package library

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite"

	"camlc/internal/settings"
	"camlc/internal/slugs"
)

var (
	// ErrQueryNotFound indicates the requested saved query does not exist.
	ErrQueryNotFound = errors.New("saved query not found")
	// ErrEmptyName indicates the saved-query name slugified to nothing.
	ErrEmptyName = errors.New("saved query name is empty")
)

// CurrentDBVersion is the current library schema version.
const CurrentDBVersion = 1

// Entry describes a saved query in listings.
type Entry struct {
	Name      string    `json:"name"`
	Filters   int       `json:"filters"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Library is the saved-query store handle.
type Library struct {
	db *sql.DB
}

// Open opens or creates the library database at path. A database whose
// stored schema version does not match CurrentDBVersion is deleted and
// recreated.
func Open(path string) (*Library, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create library directory: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		db, err := sql.Open("sqlite", path)
		if err == nil {
			compatible := isSchemaCompatible(db)
			db.Close()
			if !compatible {
				if err := removeDatabaseFiles(path); err != nil {
					return nil, err
				}
			}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open library: %w", err)
	}

	l := &Library{db: db}
	if err := l.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return l, nil
}

// OpenInMemory opens an in-memory library (for testing).
func OpenInMemory() (*Library, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}

	l := &Library{db: db}
	if err := l.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return l, nil
}

// Close closes the library database.
func (l *Library) Close() error {
	return l.db.Close()
}

// isSchemaCompatible reports whether the stored schema version matches
// CurrentDBVersion. A missing meta table or version row means the file
// was written by something else entirely and is treated as incompatible.
func isSchemaCompatible(db *sql.DB) bool {
	var value string
	if err := db.QueryRow(`SELECT value FROM meta WHERE key = 'version'`).Scan(&value); err != nil {
		return false
	}
	version, err := strconv.Atoi(value)
	if err != nil {
		return false
	}
	return version == CurrentDBVersion
}

func removeDatabaseFiles(path string) error {
	for _, p := range []string{path, path + "-wal", path + "-shm"} {
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to remove %s: %w", p, err)
		}
	}
	return nil
}

// initialize creates the library schema.
func (l *Library) initialize() error {
	schema := `
		PRAGMA journal_mode = WAL;
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS queries (
			name TEXT PRIMARY KEY,       -- slugified saved-query name
			document TEXT NOT NULL,      -- settings YAML
			filters INTEGER NOT NULL,    -- filter count for listings
			created_at INTEGER NOT NULL, -- Unix seconds
			updated_at INTEGER NOT NULL  -- Unix seconds
		);
	`

	if _, err := l.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to initialize library schema: %w", err)
	}

	if _, err := l.db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('version', ?)`,
		fmt.Sprintf("%d", CurrentDBVersion)); err != nil {
		return fmt.Errorf("failed to set library version: %w", err)
	}

	return nil
}

// Save stores settings under name, replacing any existing entry. Returns
// the canonical slug the entry was stored under.
func (l *Library) Save(name string, s *settings.QuerySettings) (string, error) {
	key := slugs.QueryName(name)
	if key == "" {
		return "", ErrEmptyName
	}

	doc, err := settings.Marshal(s)
	if err != nil {
		return "", err
	}

	now := time.Now().Unix()
	_, err = l.db.Exec(`
		INSERT INTO queries (name, document, filters, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			document = excluded.document,
			filters = excluded.filters,
			updated_at = excluded.updated_at
	`, key, string(doc), len(s.Filters), now, now)
	if err != nil {
		return "", fmt.Errorf("failed to save query %q: %w", key, err)
	}

	return key, nil
}

// Get loads the settings saved under name.
func (l *Library) Get(name string) (*settings.QuerySettings, error) {
	key := slugs.QueryName(name)

	var doc string
	err := l.db.QueryRow(`SELECT document FROM queries WHERE name = ?`, key).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrQueryNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load query %q: %w", key, err)
	}

	s, err := settings.Parse([]byte(doc))
	if err != nil {
		return nil, fmt.Errorf("saved query %q is corrupt: %w", key, err)
	}
	return s, nil
}

// List returns all saved queries, most recently updated first.
func (l *Library) List() ([]Entry, error) {
	rows, err := l.db.Query(`SELECT name, filters, updated_at FROM queries ORDER BY updated_at DESC, name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list queries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var updated int64
		if err := rows.Scan(&e.Name, &e.Filters, &updated); err != nil {
			return nil, fmt.Errorf("failed to scan query row: %w", err)
		}
		e.UpdatedAt = time.Unix(updated, 0)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Delete removes the saved query stored under name.
func (l *Library) Delete(name string) error {
	key := slugs.QueryName(name)

	res, err := l.db.Exec(`DELETE FROM queries WHERE name = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete query %q: %w", key, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %q", ErrQueryNotFound, key)
	}
	return nil
}
