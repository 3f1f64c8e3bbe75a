package logger

import (
	"path/filepath"
	"testing"
)

func newTestLogger(t *testing.T) *ZapLogger {
	t.Helper()
	return NewZapLogger(filepath.Join(t.TempDir(), "app.log"), false)
}

func TestGetLogsReadsBackWrittenEntries(t *testing.T) {
	l := newTestLogger(t)

	l.Info("registry", "first entry", map[string]interface{}{"n": 1})
	l.Error("registry", "second entry", map[string]interface{}{"n": 2})
	_ = l.Sync()

	entries, err := l.GetLogs("", 10, 0)
	if err != nil {
		t.Fatalf("GetLogs: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	// Newest first.
	if entries[0].Message != "second entry" {
		t.Errorf("expected newest entry first, got %q", entries[0].Message)
	}
	if entries[0].Module != "registry" {
		t.Errorf("module not round-tripped, got %q", entries[0].Module)
	}
}

func TestGetLogsFiltersByLevel(t *testing.T) {
	l := newTestLogger(t)

	l.Info("registry", "info entry", nil)
	l.Error("registry", "error entry", nil)
	_ = l.Sync()

	entries, err := l.GetLogs("ERROR", 10, 0)
	if err != nil {
		t.Fatalf("GetLogs: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 ERROR entry, got %d", len(entries))
	}
	if entries[0].Message != "error entry" {
		t.Errorf("wrong entry survived the filter: %q", entries[0].Message)
	}
}

func TestGetLogsPaginatesPastTheEnd(t *testing.T) {
	l := newTestLogger(t)

	l.Info("registry", "only entry", nil)
	_ = l.Sync()

	entries, err := l.GetLogs("", 10, 5)
	if err != nil {
		t.Fatalf("GetLogs: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty page, got %d entries", len(entries))
	}
}

func TestGetLogByIdRoundTrips(t *testing.T) {
	l := newTestLogger(t)

	l.Warn("registry", "looked-up entry", nil)
	_ = l.Sync()

	entries, err := l.GetLogs("", 10, 0)
	if err != nil || len(entries) == 0 {
		t.Fatalf("GetLogs: %v (%d entries)", err, len(entries))
	}

	entry, err := l.GetLogById(entries[0].Id)
	if err != nil {
		t.Fatalf("GetLogById: %v", err)
	}
	if entry.Message != "looked-up entry" {
		t.Errorf("wrong entry returned: %q", entry.Message)
	}

	if _, err := l.GetLogById("no-such-id"); err == nil {
		t.Error("expected an error for an unknown id")
	}
}

func TestGetLogsMissingFileIsEmpty(t *testing.T) {
	l := &ZapLogger{filePath: filepath.Join(t.TempDir(), "never-written.log")}

	entries, err := l.GetLogs("", 10, 0)
	if err != nil {
		t.Fatalf("GetLogs: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries for a missing file, got %d", len(entries))
	}
}
