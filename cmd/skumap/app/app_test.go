package app

import (
	"testing"

	"github.com/rs/zerolog"
)

// TestNew verifies app construction with version information.
func TestNew(t *testing.T) {
	application, err := New("1.2.3", "abc123", "2026-08-29", "test")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if application.Version() != "1.2.3" {
		t.Errorf("Version() = %s, want 1.2.3", application.Version())
	}
	if application.Commit() != "abc123" {
		t.Errorf("Commit() = %s, want abc123", application.Commit())
	}
	if application.Date() != "2026-08-29" {
		t.Errorf("Date() = %s, want 2026-08-29", application.Date())
	}
	if application.BuiltBy() != "test" {
		t.Errorf("BuiltBy() = %s, want test", application.BuiltBy())
	}
	if application.Config() == nil {
		t.Error("Config() returned nil")
	}
	if application.Logger() == nil {
		t.Error("Logger() returned nil")
	}
}

// TestNewWithOptions verifies functional options.
func TestNewWithOptions(t *testing.T) {
	logger := zerolog.Nop()
	config := &Config{Format: "json", ExportDir: "/tmp"}

	application, err := New("dev", "unknown", "unknown", "unknown",
		WithConfig(config),
		WithLogger(&logger),
	)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if application.OutputFormat() != "json" {
		t.Errorf("OutputFormat() = %s, want json", application.OutputFormat())
	}
	if application.ExportDir() != "/tmp" {
		t.Errorf("ExportDir() = %s, want /tmp", application.ExportDir())
	}
	if application.Logger() != &logger {
		t.Error("Logger() did not return the injected logger")
	}
}
