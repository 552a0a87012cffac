// Package logging constructs slog loggers from application configuration.
//
// Two output formats are supported: "console" (text, for interactive use)
// and "json" (for log aggregation). When a log directory is configured,
// output is duplicated to melelink.log inside it.
package logging
