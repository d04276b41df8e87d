package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func seedUser(t *testing.T, s *Store, name string) *User {
	t.Helper()
	u, err := s.UserRepo().Insert(context.Background(), name)
	if err != nil {
		t.Fatalf("seed user %q: %v", name, err)
	}
	return u
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestOpenFileDB(t *testing.T) {
	path := filepath.Join(t.TempDir(), "throws.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open file store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	var mode string
	if err := s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("PRAGMA journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want %q", mode, "wal")
	}
}

func TestDefaultDBPathEnvOverride(t *testing.T) {
	want := filepath.Join(t.TempDir(), "custom.db")
	t.Setenv("MOLKKYLOG_DB", want)
	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("default db path: %v", err)
	}
	if got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
}

func TestPrefsPathNextToDBInUse(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MOLKKYLOG_PREFS", "")
	// Must follow the database actually opened, not the default one.
	got, err := PrefsPathFor(filepath.Join(dir, "throws.db"))
	if err != nil {
		t.Fatalf("prefs path: %v", err)
	}
	if got != filepath.Join(dir, "sessions.yaml") {
		t.Errorf("prefs path = %q, want %q", got, filepath.Join(dir, "sessions.yaml"))
	}
}

func TestPrefsPathEnvOverride(t *testing.T) {
	want := filepath.Join(t.TempDir(), "state.yaml")
	t.Setenv("MOLKKYLOG_PREFS", want)
	got, err := PrefsPathFor(filepath.Join(t.TempDir(), "throws.db"))
	if err != nil {
		t.Fatalf("prefs path: %v", err)
	}
	if got != want {
		t.Errorf("prefs path = %q, want %q", got, want)
	}
}

func TestAngleValid(t *testing.T) {
	for _, a := range []Angle{AngleLeft, AngleCenter, AngleRight} {
		if !a.Valid() {
			t.Errorf("angle %q should be valid", a)
		}
	}
	if Angle("SIDEWAYS").Valid() {
		t.Error("unknown angle should be invalid")
	}
	if Angle("").Valid() {
		t.Error("empty angle should be invalid")
	}
}

func testTimestamp(i int) time.Time {
	return time.Date(2026, 5, 10, 14, 0, i, 0, time.UTC)
}
