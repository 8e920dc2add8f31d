package logbook

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAppendAndTail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "gridctl.log")
	lb, err := New(path)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer lb.Close()

	lb.Info("comparing task group %s", "tg-1")
	lb.Warn("unclassifiable result tuple")
	lb.Error("fetch failed")

	lines := lb.Tail(10)
	if len(lines) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "INFO") || !strings.Contains(lines[0], "tg-1") {
		t.Fatalf("unexpected first line: %s", lines[0])
	}
	if !strings.Contains(lines[1], "WARN") {
		t.Fatalf("expected WARN level: %s", lines[1])
	}

	tail := lb.Tail(2)
	if len(tail) != 2 || !strings.Contains(tail[1], "ERROR") {
		t.Fatalf("unexpected tail: %v", tail)
	}
}

func TestNilLogbookIsSafe(t *testing.T) {
	var lb *Logbook
	lb.Info("ignored")
	lb.Warn("ignored")
	if lines := lb.Tail(5); lines != nil {
		t.Fatalf("expected nil tail, got %v", lines)
	}
	if err := lb.Close(); err != nil {
		t.Fatalf("nil close should be a no-op: %v", err)
	}
}

func TestEntriesSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridctl.log")
	lb, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	lb.Info("first run")
	if err := lb.Close(); err != nil {
		t.Fatal(err)
	}

	lb2, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	defer lb2.Close()
	lb2.Info("second run")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	if !strings.Contains(content, "first run") || !strings.Contains(content, "second run") {
		t.Fatalf("expected both entries, got:\n%s", content)
	}
}
