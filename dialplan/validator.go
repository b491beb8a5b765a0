package dialplan

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ardnew/dplint/log"
	"github.com/ardnew/dplint/pkg"
)

// DefaultMaxLineLength is the cap on a single physical line, in bytes.
// The line buffer grows on demand up to this limit; a longer line aborts
// the scan with an I/O-layer error rather than a diagnostic.
const DefaultMaxLineLength = 1 << 20

// initialLineBuffer is the starting size of the scanner's line buffer.
const initialLineBuffer = 4096

// Option applies a configuration option to a validation run.
type Option func(*validator)

// WithLogger sets the logger used for validation telemetry (per-line
// traces, run summaries). The zero logger discards everything.
func WithLogger(logger log.Logger) Option {
	return func(v *validator) {
		v.logger = logger
	}
}

// WithSuggestions controls whether unknown-directive warnings carry a
// "did you mean" keyword suggestion. Enabled by default. Suggestions change
// only the warning text, never counts or severities.
func WithSuggestions(enable bool) Option {
	return func(v *validator) {
		v.suggest = enable
	}
}

// WithMaxLineLength sets the maximum accepted physical line length in
// bytes. Values < 1 restore [DefaultMaxLineLength].
func WithMaxLineLength(n int) Option {
	return func(v *validator) {
		if n < 1 {
			n = DefaultMaxLineLength
		}

		v.maxLine = n
	}
}

// validator holds the cross-line state of one file's validation run.
// It is owned by exactly one call to Validate and never shared.
type validator struct {
	result  *Result
	logger  log.Logger
	context string // most recently opened context name
	line    int    // 1-based current line number
	maxLine int

	// inContext becomes true at the first context header, parsed
	// successfully or not, and never resets: contexts do not close.
	inContext bool
	suggest   bool
}

// Validate performs one single-pass syntax validation of the dialplan text
// read from r. The returned Result carries all diagnostics in emission
// order plus final counts; it is non-nil whenever err is nil.
//
// A non-nil error reports an I/O-layer failure (unreadable source or a line
// exceeding the configured maximum length), never a syntax verdict: syntax
// problems are always resolved to diagnostics and the scan continues to the
// next line.
func Validate(
	ctx context.Context,
	r io.Reader,
	opts ...Option,
) (*Result, error) {
	v := &validator{
		result:  new(Result),
		suggest: true,
		maxLine: DefaultMaxLineLength,
	}

	for _, opt := range opts {
		opt(v)
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, min(initialLineBuffer, v.maxLine)), v.maxLine)

	for scanner.Scan() {
		v.line++
		v.checkLine(ctx, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, pkg.ErrLineTooLong.Wrap(err)
		}

		return nil, pkg.ErrReadSource.Wrap(err)
	}

	v.logger.DebugContext(ctx, "validation complete",
		slog.Int("lines", v.line),
		slog.Any("result", v.result),
	)

	return v.result, nil
}

// ValidateString validates dialplan text held in memory.
func ValidateString(
	ctx context.Context,
	source string,
	opts ...Option,
) (*Result, error) {
	return Validate(ctx, strings.NewReader(source), opts...)
}

// checkLine classifies and validates one physical line. Blank and comment
// lines are skipped without state change.
func (v *validator) checkLine(ctx context.Context, raw string) {
	if isCommentOrBlank(raw) {
		return
	}

	line := strings.TrimSpace(raw)
	directive := classify(line, v.inContext)

	v.logger.TraceContext(ctx, "line",
		slog.Int("num", v.line),
		slog.String("directive", directive.String()),
	)

	switch directive {
	case DirectiveContextHeader:
		v.parseContextHeader(line)
		// The validator is inside a context from the first header on, even
		// a malformed one.
		v.inContext = true
	case DirectiveExtension:
		v.parseExtension(line, false)
	case DirectiveContinuation:
		v.parseExtension(line, true)
	case DirectiveInclude:
		v.parseInclude(line)
	case DirectiveSwitch:
		v.parseSwitch(line)
	case DirectiveGlobalAssignment:
		// Settings outside any context ([general]/[globals] style) are
		// accepted without checks.
	case DirectiveUnknown:
		v.warnUnknown(line)
	case DirectiveIgnored:
	}
}

// warnUnknown records the advisory diagnostic for an unrecognized directive
// inside a context, with an optional keyword suggestion.
func (v *validator) warnUnknown(line string) {
	msg := fmt.Sprintf("Unknown directive '%s'", line)

	if v.suggest {
		if keyword, ok := suggestKeyword(firstToken(line)); ok {
			msg += fmt.Sprintf(" (did you mean '%s'?)", keyword)
		}
	}

	v.report(SeverityWarning, msg)
}

// errorf records an error-severity diagnostic at the current line.
func (v *validator) errorf(format string, args ...any) {
	v.report(SeverityError, fmt.Sprintf(format, args...))
}

// report appends a diagnostic at the current line.
func (v *validator) report(severity Severity, msg string) {
	d := Diagnostic{Line: v.line, Severity: severity, Message: msg}

	v.result.record(d)
	v.logger.Trace("diagnostic", slog.Any("diagnostic", d))
}
