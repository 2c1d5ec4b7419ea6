package prep

import (
	stderrors "errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/skumap/skumap/pkg/errors"
)

// Selector picks the columns to keep from the normalized header row.
type Selector interface {
	// Select returns the chosen subset of headers, in any order.
	// Cancellation is reported as a CancellationError.
	Select(headers []string) ([]string, error)
}

// StaticSelector selects a fixed column list. It backs the --columns
// flag and makes the pipeline scriptable.
type StaticSelector struct {
	Columns []string
}

// Select returns the configured columns. Validation against the actual
// headers happens when the selection is applied to the dataset.
func (s *StaticSelector) Select(_ []string) ([]string, error) {
	return s.Columns, nil
}

// TerminalSelector prompts the operator with an interactive
// multi-select over the normalized headers.
type TerminalSelector struct{}

// Select runs the multi-select prompt. An empty selection requires an
// explicit confirmation before it produces a header-only export;
// declining aborts the run.
func (s *TerminalSelector) Select(headers []string) ([]string, error) {
	var selected []string
	prompt := huh.NewMultiSelect[string]().
		Title("Columns to export").
		Description(fmt.Sprintf("%d columns available", len(headers))).
		Options(huh.NewOptions(headers...)...).
		Value(&selected)
	if err := prompt.Run(); err != nil {
		if stderrors.Is(err, huh.ErrUserAborted) {
			return nil, errors.NewCancellationError("column selection")
		}
		return nil, errors.WrapValidation("column selection", err)
	}

	if len(selected) == 0 {
		var proceed bool
		confirm := huh.NewConfirm().
			Title("No columns selected").
			Description("Export a header-only file?").
			Value(&proceed)
		if err := confirm.Run(); err != nil {
			if stderrors.Is(err, huh.ErrUserAborted) {
				return nil, errors.NewCancellationError("column selection")
			}
			return nil, errors.WrapValidation("column selection", err)
		}
		if !proceed {
			return nil, errors.NewCancellationError("column selection")
		}
	}

	return selected, nil
}
