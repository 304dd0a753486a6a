package logger

import (
	"go.uber.org/zap"
)

// Standard field names for consistent structured logging across wrapgen.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Run identity
	FieldRunID = "run_id"

	// Inputs
	FieldLayout    = "layout"
	FieldInterface = "interface"
	FieldID        = "id"
	FieldType      = "type"
	FieldVariant   = "variant"
	FieldFile      = "file"
	FieldPath      = "path"

	// Timing
	FieldDurationMS = "duration_ms"

	// Errors
	FieldError = "error"

	// Counts
	FieldCount = "count"
)

// ComponentLogger returns a named logger for a specific component.
// This is the preferred way to get a logger for dependency injection.
//
// Example:
//
//	w := &Walker{logger: logger.ComponentLogger("resolve")}
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// ChildLogger creates a child logger with additional context.
//
// Example:
//
//	runLogger := logger.ChildLogger(baseLogger, logger.FieldRunID, run.ID)
func ChildLogger(parent *zap.SugaredLogger, keysAndValues ...interface{}) *zap.SugaredLogger {
	return parent.With(keysAndValues...)
}
