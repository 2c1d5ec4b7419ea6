package errors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	pkgerrors "github.com/skumap/skumap/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{
			Resource: "column",
			Name:     "free_stock",
		}
		assert.Equal(t, `column "free_stock" not found`, err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewNotFoundError("table", "ExportSettings")
		assert.Equal(t, `table "ExportSettings" not found`, err.Error())
		assert.True(t, pkgerrors.IsNotFound(err))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewNotFoundError("sheet", "Sheet1")
		wrapped := errors.Join(errors.New("failed"), base)
		assert.True(t, pkgerrors.IsNotFound(wrapped))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "columns",
			Message: "not a subset of the header set",
		}
		assert.Equal(t, "validation failed for field columns: not a subset of the header set", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Message: "invalid selection",
		}
		assert.Equal(t, "validation failed: invalid selection", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewValidationError("top", -1, "must be positive")
		assert.Contains(t, err.Error(), "top")
		assert.Contains(t, err.Error(), "must be positive")
	})
}

func TestConfigError(t *testing.T) {
	t.Run("with component", func(t *testing.T) {
		err := pkgerrors.NewConfigError("prep", "base name is required", nil)
		assert.Equal(t, "configuration error in prep: base name is required", err.Error())
	})

	t.Run("without component", func(t *testing.T) {
		err := &pkgerrors.ConfigError{Message: "save path is required"}
		assert.Equal(t, "configuration error: save path is required", err.Error())
	})

	t.Run("unwraps cause", func(t *testing.T) {
		cause := errors.New("bad yaml")
		err := pkgerrors.NewConfigError("app", "cannot read config", cause)
		assert.True(t, errors.Is(err, cause))
	})
}

func TestCancellationError(t *testing.T) {
	t.Run("with step", func(t *testing.T) {
		err := pkgerrors.NewCancellationError("column selection")
		assert.Equal(t, "canceled by user during column selection", err.Error())
		assert.True(t, pkgerrors.IsCanceled(err))
	})

	t.Run("without step", func(t *testing.T) {
		err := &pkgerrors.CancellationError{}
		assert.Equal(t, "canceled by user", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrCanceled))
	})
}

func TestParseError(t *testing.T) {
	t.Run("with row and column", func(t *testing.T) {
		err := &pkgerrors.ParseError{
			Format:  "csv",
			File:    "snapshot.csv",
			Line:    42,
			Column:  "free_stock",
			Message: `"abc" is not an integer`,
		}
		assert.Contains(t, err.Error(), "snapshot.csv")
		assert.Contains(t, err.Error(), "row 42")
		assert.Contains(t, err.Error(), "free_stock")
	})

	t.Run("file only", func(t *testing.T) {
		err := pkgerrors.NewParseError("xlsx", "report.xlsx", "corrupt archive", nil)
		assert.Equal(t, "parse error in xlsx file report.xlsx: corrupt archive", err.Error())
	})

	t.Run("format only", func(t *testing.T) {
		err := pkgerrors.NewParseError("int", "", "empty value", nil)
		assert.Equal(t, "int parse error: empty value", err.Error())
	})
}

func TestIOError(t *testing.T) {
	t.Run("with path", func(t *testing.T) {
		cause := errors.New("permission denied")
		err := pkgerrors.NewIOError("write", "/out/export.csv", cause)
		assert.Contains(t, err.Error(), "write")
		assert.Contains(t, err.Error(), "/out/export.csv")
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("without path", func(t *testing.T) {
		err := &pkgerrors.IOError{Operation: "close", Message: "already closed"}
		assert.Equal(t, "IO error during close: already closed", err.Error())
	})
}

func TestWrapHelpers(t *testing.T) {
	t.Run("nil passthrough", func(t *testing.T) {
		assert.NoError(t, pkgerrors.WrapIO("read", "a.csv", nil))
		assert.NoError(t, pkgerrors.WrapParse("csv", "a.csv", nil))
		assert.NoError(t, pkgerrors.WrapValidation("field", nil))
		assert.NoError(t, pkgerrors.WrapConfig("prep", nil))
	})

	t.Run("wrap io", func(t *testing.T) {
		cause := errors.New("no such file")
		err := pkgerrors.WrapIO("open", "missing.csv", cause)
		var ioErr *pkgerrors.IOError
		assert.True(t, errors.As(err, &ioErr))
		assert.Equal(t, "open", ioErr.Operation)
	})

	t.Run("wrap parse", func(t *testing.T) {
		cause := errors.New("bad number")
		err := pkgerrors.WrapParse("int", "b.csv", cause)
		var parseErr *pkgerrors.ParseError
		assert.True(t, errors.As(err, &parseErr))
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("wrap config", func(t *testing.T) {
		cause := errors.New("missing key")
		err := pkgerrors.WrapConfig("reconcile", cause)
		var cfgErr *pkgerrors.ConfigError
		assert.True(t, errors.As(err, &cfgErr))
	})
}
