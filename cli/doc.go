// Package cli contains the command line interface for dplint.
//
// # Usage
//
//	dplint check /etc/asterisk/extensions.conf
//	dplint check --no-suggest conf/*.conf
//	cat extensions.conf | dplint check -
//
// Validation diagnostics are printed to stderr, one "Line N: message" per
// finding, and a per-file summary goes to stdout. The process exits 0 when
// every file is syntactically valid (warnings allowed), 1 when any file has
// errors or cannot be read, and 2 on usage errors.
//
// # Configuration
//
// Default flag values may be placed in a YAML config file at
// $XDG_CONFIG_HOME/dplint/config.yaml; hyphenated flag names may be spelled
// with underscores there. Command-line flags override config file values.
//
// # Logging options
//
//   - --log-level: minimum level (trace, debug, info, warn, error)
//   - --log-format: output format (text, json)
//   - --log-time-layout: timestamp format (RFC3339, none, ...)
//   - --log-caller: include caller information
//   - --log-pretty: colorized text output
//
// # Profiling options
//
// Only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: enable profiling (cpu, heap, allocs, ...)
//   - --pprof-dir: profile output directory
package cli
