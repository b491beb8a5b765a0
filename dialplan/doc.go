// Package dialplan validates the line-oriented syntax of Asterisk dialplan
// configuration files (extensions.conf and friends).
//
// The validator is a single sequential pass over input lines. It classifies
// each line as a context header, extension or continuation, include, switch,
// global assignment, comment, or unknown directive, and checks the
// structural shape of each: balanced delimiters, closed quotes, closed
// ${...} variable references and $[...] expressions, well-formed priorities,
// and required '=>' separators.
//
// It deliberately does NOT interpret the dialplan: referenced applications,
// functions, variables, and included contexts are never resolved, and
// expression contents are never evaluated. A valid verdict means only that
// the file's syntax is well formed.
//
// # Usage
//
//	result, err := dialplan.Validate(ctx, file)
//	if err != nil {
//	    // I/O failure, no verdict
//	}
//	for _, d := range result.Diagnostics {
//	    fmt.Fprintln(os.Stderr, d)
//	}
//	if result.Failed() {
//	    os.Exit(1)
//	}
//
// [Stream] provides a content-hash cached variant for callers that may
// validate the same content repeatedly; [Validate] itself holds only one
// line in memory at a time and supports arbitrarily large inputs.
package dialplan
