package logging

import (
	"os"
	"testing"
)

func TestNewLogger_CreatesDirAndLogger(t *testing.T) {
	dir := t.TempDir()
	log, err := NewLogger(dir, "")
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	defer func() { _ = log.Sync() }()

	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("log dir missing: %v", err)
	}

	// Write once; just ensuring no panic / basic functionality.
	log.Info("test_message_from_logging_test")
}

func TestNewLogger_LevelParsing(t *testing.T) {
	dir := t.TempDir()
	if _, err := NewLogger(dir, "debug"); err != nil {
		t.Fatalf("debug level should parse: %v", err)
	}
	if _, err := NewLogger(dir, "noisy"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
