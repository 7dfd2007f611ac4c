package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New("warn", &buf)
	log.Info("hidden")
	log.Warn("shown", "key", "value")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record must be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "key=value") {
		t.Errorf("warn record missing: %q", out)
	}
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nearby.log")
	log, closeFn, err := NewFile("debug", path)
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	log.Debug("fetch markets", "category", "c1")
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), "category=c1") {
		t.Errorf("log file missing record: %q", string(b))
	}
}

func TestNewFileEmptyPathDiscards(t *testing.T) {
	log, closeFn, err := NewFile("info", "")
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	log.Info("nowhere")
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}
}
