// Package log provides a concurrency-safe structured logging facade for
// dplint, built on [log/slog].
//
// The package exposes a [Logger] value type configured through functional
// options, plus a package-level default logger used by the CLI. Output
// format (json or text), minimum level (trace through error), timestamp
// layout, caller info, and colorized pretty printing are all configurable.
//
// Log output is tool telemetry only. Validation diagnostics are emitted
// through their own writers by the CLI layer and never pass through this
// package, so they remain stable for scripting regardless of logger
// configuration.
package log
