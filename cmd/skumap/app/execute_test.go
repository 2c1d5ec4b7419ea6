package app

import (
	"context"
	"fmt"
	"testing"

	"github.com/skumap/skumap/pkg/errors"
)

// TestExitStatus verifies the exit-code mapping for top-level errors.
// A user cancellation exits 0 with nothing on stderr.
func TestExitStatus(t *testing.T) {
	code, msg := exitStatus(nil)
	if code != 0 || msg != "" {
		t.Errorf("exitStatus(nil) = (%d, %q), want (0, \"\")", code, msg)
	}

	code, msg = exitStatus(errors.NewCancellationError("column selection"))
	if code != 0 {
		t.Errorf("cancellation exit code = %d, want 0", code)
	}
	if msg != "" {
		t.Errorf("cancellation message = %q, want empty", msg)
	}

	code, msg = exitStatus(fmt.Errorf("load a side: %w", errors.NewCancellationError("file selection")))
	if code != 0 {
		t.Errorf("wrapped cancellation exit code = %d, want 0", code)
	}

	code, msg = exitStatus(errors.NewValidationError("top", -1, "must not be negative"))
	if code != 1 {
		t.Errorf("validation exit code = %d, want 1", code)
	}
	if msg == "" {
		t.Error("validation message is empty, want the error text")
	}
}

// TestExecuteRejectsInvalidFormat verifies --format validation before
// any command runs.
func TestExecuteRejectsInvalidFormat(t *testing.T) {
	application, err := New("dev", "unknown", "unknown", "unknown")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	err = application.Execute(context.Background(), []string{"version", "--format", "xml"})
	if err == nil {
		t.Fatal("Execute() accepted --format xml")
	}
}
