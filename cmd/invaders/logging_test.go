package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLoggerInvalidLevel(t *testing.T) {
	if _, _, err := newLogger("", "loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invaders.log")

	logger, closeLog, err := newLogger(path, "debug")
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	logger.Debug("state changed", "to", "playing")
	closeLog()
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "invaders") || !strings.Contains(out, "state changed") {
		t.Errorf("unexpected log output %q", out)
	}
}

func TestNewLoggerLevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invaders.log")

	logger, closeLog, err := newLogger(path, "warn")
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if strings.Contains(string(data), "hidden") {
		t.Error("info should be filtered at warn level")
	}
	if !strings.Contains(string(data), "shown") {
		t.Error("warn should be written")
	}
}

func TestNewLoggerDiscardsWithoutFile(t *testing.T) {
	logger, closeLog, err := newLogger("", "info")
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	defer closeLog()
	logger.Info("nowhere") // must not panic
}
