// Package logging builds the slog loggers used throughout reelname. Two
// output formats are supported: a compact single-line console format for
// interactive runs and JSON for machine consumption.
package logging
