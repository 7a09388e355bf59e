package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewFallback(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Level = log.DebugLevel
	opts.Fallback = &buf

	logger, closer, err := New(opts)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer closer.Close()

	logger.Debug("task added", "id", 7)
	out := buf.String()
	for _, want := range []string{"DEBU", "tasklist", "task added", "id=7"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Fallback = &buf

	logger, _, err := New(opts)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	if strings.Contains(buf.String(), "hidden") {
		t.Error("info should be filtered at warn level")
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Error("warn should be written")
	}
}

func TestNewDiscardsByDefault(t *testing.T) {
	logger, closer, err := New(DefaultOptions())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	logger.Error("nowhere")
	if err := closer.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasklist.log")
	opts := DefaultOptions()
	opts.File = path
	opts.Fallback = os.Stderr

	logger, closer, err := New(opts)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	logger.Warn("theme flipped", "dark", true)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), "theme flipped") || !strings.Contains(string(b), "dark=true") {
		t.Errorf("log file content: %q", b)
	}
}

func TestNewFileError(t *testing.T) {
	opts := DefaultOptions()
	opts.File = filepath.Join(t.TempDir(), "missing", "tasklist.log")
	if _, _, err := New(opts); err == nil {
		t.Error("expected error for unwritable path")
	}
}
