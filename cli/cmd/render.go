package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/dplint/dialplan"
)

// ANSI palette for verdict rendering.
const (
	colorError   = lipgloss.Color("9")
	colorWarning = lipgloss.Color("11")
	colorValid   = lipgloss.Color("10")
)

// renderer writes diagnostics to stderr and verdict summaries to stdout,
// colorized per severity when the respective stream is a terminal.
// Message text is identical either way, so output stays scriptable.
type renderer struct {
	stdout io.Writer
	stderr io.Writer

	errorStyle   lipgloss.Style
	warningStyle lipgloss.Style
	validStyle   lipgloss.Style
}

func newRenderer(stdout, stderr io.Writer) *renderer {
	// Each stream gets its own lipgloss renderer so color detection
	// follows the stream it writes to, not the process's stdout.
	diag := lipgloss.NewRenderer(stderr)
	verdict := lipgloss.NewRenderer(stdout)

	return &renderer{
		stdout:       stdout,
		stderr:       stderr,
		errorStyle:   diag.NewStyle().Foreground(colorError),
		warningStyle: diag.NewStyle().Foreground(colorWarning),
		validStyle:   verdict.NewStyle().Foreground(colorValid),
	}
}

// diagnostic prints one line-tagged finding to stderr.
func (r *renderer) diagnostic(d dialplan.Diagnostic) {
	style := r.errorStyle
	if d.Severity == dialplan.SeverityWarning {
		style = r.warningStyle
	}

	fmt.Fprintln(r.stderr, style.Render(d.String()))
}

// failure prints an I/O-layer failure (unreadable source) to stderr.
func (r *renderer) failure(err error) {
	fmt.Fprintln(r.stderr, r.errorStyle.Render(fmt.Sprintf("Error: %v", err)))
}

// summary prints the per-file verdict line to stdout.
func (r *renderer) summary(name string, result *dialplan.Result) {
	fmt.Fprintln(r.stdout)

	if result.OK() {
		fmt.Fprintln(r.stdout, r.validStyle.Render("✓ Syntax valid: "+name))

		return
	}

	fmt.Fprintf(r.stdout, "Validation complete: %d error(s), %d warning(s)\n",
		result.Errors, result.Warnings)
}
