// Package cli implements the command-line interface.
package cli

// Error codes for structured error responses.
// These codes are stable and can be relied upon by agents.
const (
	// Config errors
	ErrConfigInvalid = "CONFIG_INVALID"

	// Settings errors
	ErrSettingsNotFound = "SETTINGS_NOT_FOUND"
	ErrSettingsInvalid  = "SETTINGS_INVALID"

	// Saved-query library errors
	ErrQueryNotFound = "QUERY_NOT_FOUND"
	ErrDatabaseError = "DATABASE_ERROR"

	// Last-compile errors
	ErrNoLastQuery = "NO_LAST_QUERY"

	// Input errors
	ErrInvalidInput    = "INVALID_INPUT"
	ErrMissingArgument = "MISSING_ARGUMENT"

	// File errors
	ErrFileReadError  = "FILE_READ_ERROR"
	ErrFileWriteError = "FILE_WRITE_ERROR"

	// Docs errors
	ErrDocsTopicNotFound = "DOCS_TOPIC_NOT_FOUND"

	// General errors
	ErrInternal = "INTERNAL_ERROR"
)

// Warning codes for non-fatal issues.
const (
	WarnSettingsProblem = "SETTINGS_PROBLEM"
)
