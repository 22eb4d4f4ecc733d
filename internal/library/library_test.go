package library

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"camlc/internal/settings"
)

func testSettings(filters int) *settings.QuerySettings {
	s := &settings.QuerySettings{OrderBy: "Modified"}
	for i := 0; i < filters; i++ {
		s.Filters = append(s.Filters, settings.FilterCondition{
			Index:     i + 1,
			Field:     "Title",
			FieldType: settings.FieldTypeText,
			Operator:  settings.OperatorEq,
			Value:     "x",
			Join:      settings.JoinAnd,
		})
	}
	return s
}

func TestOpenRebuildsOnVersionMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.db")

	l, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := l.Save("report", testSettings(1)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Stamp a future schema version directly, as a newer build would.
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open raw: %v", err)
	}
	if _, err := db.Exec(`UPDATE meta SET value = '99' WHERE key = 'version'`); err != nil {
		t.Fatalf("stamp version: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("close raw: %v", err)
	}

	l, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer l.Close()

	var stored string
	if err := l.db.QueryRow(`SELECT value FROM meta WHERE key = 'version'`).Scan(&stored); err != nil {
		t.Fatalf("read version: %v", err)
	}
	if stored != "1" {
		t.Fatalf("version after rebuild = %q", stored)
	}

	// The incompatible database was discarded, not reinterpreted.
	if _, err := l.Get("report"); !errors.Is(err, ErrQueryNotFound) {
		t.Fatalf("Get after rebuild = %v, want ErrQueryNotFound", err)
	}
}

func TestOpenKeepsCompatibleDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.db")

	l, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := l.Save("report", testSettings(2)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	l, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer l.Close()

	s, err := l.Get("report")
	if err != nil {
		t.Fatalf("Get after reopen: %v", err)
	}
	if len(s.Filters) != 2 {
		t.Fatalf("expected 2 filters, got %d", len(s.Filters))
	}
}

func TestSaveAndGet(t *testing.T) {
	l, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory: %v", err)
	}
	defer l.Close()

	key, err := l.Save("Open Tasks", testSettings(2))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if key != "open-tasks" {
		t.Fatalf("key = %q", key)
	}

	// Lookup accepts the display form, not just the slug.
	s, err := l.Get("Open Tasks")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(s.Filters) != 2 || s.OrderBy != "Modified" {
		t.Fatalf("unexpected settings: %+v", s)
	}
}

func TestSaveReplaces(t *testing.T) {
	l, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory: %v", err)
	}
	defer l.Close()

	if _, err := l.Save("report", testSettings(1)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := l.Save("report", testSettings(3)); err != nil {
		t.Fatalf("Save (replace): %v", err)
	}

	s, err := l.Get("report")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(s.Filters) != 3 {
		t.Fatalf("expected replacement, got %d filters", len(s.Filters))
	}

	entries, err := l.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
}

func TestSaveEmptyName(t *testing.T) {
	l, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory: %v", err)
	}
	defer l.Close()

	if _, err := l.Save("   ", testSettings(0)); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("Save error = %v, want ErrEmptyName", err)
	}
}

func TestList(t *testing.T) {
	l, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory: %v", err)
	}
	defer l.Close()

	for _, name := range []string{"alpha", "beta"} {
		if _, err := l.Save(name, testSettings(1)); err != nil {
			t.Fatalf("Save(%s): %v", name, err)
		}
	}

	entries, err := l.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	for _, e := range entries {
		if e.Filters != 1 || e.UpdatedAt.IsZero() {
			t.Fatalf("unexpected entry: %+v", e)
		}
	}
}

func TestDelete(t *testing.T) {
	l, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory: %v", err)
	}
	defer l.Close()

	if _, err := l.Save("report", testSettings(1)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := l.Delete("report"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := l.Get("report"); !errors.Is(err, ErrQueryNotFound) {
		t.Fatalf("Get after delete = %v, want ErrQueryNotFound", err)
	}
	if err := l.Delete("report"); !errors.Is(err, ErrQueryNotFound) {
		t.Fatalf("Delete missing = %v, want ErrQueryNotFound", err)
	}
}
