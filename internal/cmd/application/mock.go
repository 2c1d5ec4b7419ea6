// Package application provides a mock Application for command tests.
package application

import (
	"github.com/rs/zerolog"
)

// Mock provides a mock implementation of Application for testing.
// Each method can be customized by setting the corresponding function
// field. If a function field is nil, the method returns a default.
type Mock struct {
	LoggerFunc        func() *zerolog.Logger
	OutputFormatFunc  func() string
	ExportDirFunc     func() string
	SettingsTableFunc func() string
	SourceCodesFunc   func() []string
	ChunkSizeFunc     func() int
	VersionFunc       func() string
	CommitFunc        func() string
	DateFunc          func() string
	BuiltByFunc       func() string
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns output format using the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// ExportDir returns the export directory using the mock function or ".".
func (m *Mock) ExportDir() string {
	if m.ExportDirFunc != nil {
		return m.ExportDirFunc()
	}
	return "."
}

// SettingsTable returns the settings table name using the mock function
// or "run_settings".
func (m *Mock) SettingsTable() string {
	if m.SettingsTableFunc != nil {
		return m.SettingsTableFunc()
	}
	return "run_settings"
}

// SourceCodes returns source codes using the mock function or nil.
func (m *Mock) SourceCodes() []string {
	if m.SourceCodesFunc != nil {
		return m.SourceCodesFunc()
	}
	return nil
}

// ChunkSize returns the chunk size using the mock function or zero.
func (m *Mock) ChunkSize() int {
	if m.ChunkSizeFunc != nil {
		return m.ChunkSizeFunc()
	}
	return 0
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builder using the mock function or "unknown".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "unknown"
}
