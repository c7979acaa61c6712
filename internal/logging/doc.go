// Package logging builds the slog loggers used across muster.
//
// Two output formats are supported: a compact console format for interactive
// use and JSON for machine consumption. Components attach a "component"
// attribute via NewComponentLogger; the console handler promotes it into the
// message prefix.
package logging
