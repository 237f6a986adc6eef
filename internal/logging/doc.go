// Package logging assembles the structured slog loggers used across overcat.
//
// It owns the configurable console/JSON handlers, centralizes level and
// output plumbing, and provides a no-op logger for tests and wiring code
// that cannot fail. Log output defaults to stderr so the parsed export on
// stdout stays machine-readable.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits lines with the same shape.
package logging
