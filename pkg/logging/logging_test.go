package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]string{
		"debug":   "debug",
		" INFO ":  "info",
		"error":   "error",
		"warn":    "warn",
		"":        "warn",
		"verbose": "warn",
	}
	for in, want := range tests {
		if got := ParseLevel(in).String(); got != want {
			t.Errorf("ParseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forword.log")
	log, err := New(Options{Level: "info", File: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Debug("hidden")
	log.Info("entry saved", zap.String("entry", "01ABC"))
	_ = log.Sync()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	got := string(b)
	if !strings.Contains(got, "entry saved") || !strings.Contains(got, "01ABC") {
		t.Fatalf("expected info line in log, got %q", got)
	}
	if strings.Contains(got, "hidden") {
		t.Fatalf("debug line should be filtered at info level")
	}
}
