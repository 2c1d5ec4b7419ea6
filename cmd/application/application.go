// Package application provides the application interface for skumap commands.
//
// The Application interface defines the contract between the application layer
// and command implementations, enabling dependency injection and testability.
// Commands accept this interface rather than the concrete App type, allowing
// for easier testing with mock implementations.
package application

import (
	"github.com/rs/zerolog"
)

// Application provides the application interface that commands need.
// The App struct from cmd/skumap/app automatically implements this
// interface.
type Application interface {
	// Logger returns the configured logger instance.
	// Commands should use this for all logging operations.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml,
	// table, wide).
	OutputFormat() string

	// ExportDir returns the default directory for generated files.
	ExportDir() string

	// SettingsTable returns the name of the settings table expected
	// in a settings workbook.
	SettingsTable() string

	// SourceCodes returns the configured stock source codes for
	// import generation.
	SourceCodes() []string

	// ChunkSize returns the configured import chunk size.
	ChunkSize() int

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
