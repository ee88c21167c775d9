package config

import "errors"

// Configuration validation errors returned by Config.Validate.
// Package-level sentinel errors let callers use errors.Is while still
// carrying human-readable messages.
var (
	// ErrInvalidTimeout is returned when a timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidConcurrency is returned when the probe concurrency is
	// not positive. Zero concurrency would stall every username scan.
	ErrInvalidConcurrency = errors.New("invalid probe concurrency: must be positive")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrConfigNotFound is returned when the configuration file does
	// not exist.
	ErrConfigNotFound = errors.New("configuration file not found")
)
