package dialplan

import (
	"fmt"
	"log/slog"
)

// Severity classifies a diagnostic as fatal or advisory.
type Severity int

const (
	// SeverityError marks a syntax error. Any error fails validation.
	SeverityError Severity = iota
	// SeverityWarning marks a non-fatal anomaly. Warnings never affect the
	// pass/fail verdict.
	SeverityWarning
)

// String returns the lowercase name of the severity.
func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}

	return "error"
}

// Diagnostic is one line-tagged finding produced during validation.
type Diagnostic struct {
	// Line is the 1-based physical line number the finding refers to.
	Line int
	// Severity is the finding's classification.
	Severity Severity
	// Message is the human-readable description, without line prefix.
	Message string
}

// String renders the diagnostic in the classic validator format,
// "Line N: message" for errors and "Line N: Warning: message" for warnings.
func (d Diagnostic) String() string {
	if d.Severity == SeverityWarning {
		return fmt.Sprintf("Line %d: Warning: %s", d.Line, d.Message)
	}

	return fmt.Sprintf("Line %d: %s", d.Line, d.Message)
}

// LogValue implements slog.LogValuer for structured logging of diagnostics.
func (d Diagnostic) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("line", d.Line),
		slog.String("severity", d.Severity.String()),
		slog.String("message", d.Message),
	)
}

// Result accumulates the diagnostics and counts of one validation run.
//
// Errors and Warnings always equal the number of error- and
// warning-severity entries in Diagnostics, in emission order.
type Result struct {
	Diagnostics []Diagnostic
	Errors      int
	Warnings    int
}

// OK reports whether the run produced no errors and no warnings.
func (r *Result) OK() bool {
	return r.Errors == 0 && r.Warnings == 0
}

// Failed reports whether the run produced at least one error.
// Warnings alone never fail a run.
func (r *Result) Failed() bool {
	return r.Errors > 0
}

// LogValue implements slog.LogValuer summarizing the run.
func (r *Result) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("errors", r.Errors),
		slog.Int("warnings", r.Warnings),
		slog.Int("diagnostics", len(r.Diagnostics)),
	)
}

// record appends a diagnostic and bumps the matching counter.
func (r *Result) record(d Diagnostic) {
	r.Diagnostics = append(r.Diagnostics, d)

	if d.Severity == SeverityError {
		r.Errors++
	} else {
		r.Warnings++
	}
}
