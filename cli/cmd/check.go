package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ardnew/dplint/dialplan"
	"github.com/ardnew/dplint/log"
)

// Check validates the syntax of one or more dialplan files.
//
// Each source is validated independently with its own state; diagnostics go
// to stderr and a per-file summary to stdout. The command fails when any
// source has syntax errors or cannot be read. Warnings alone never fail it.
type Check struct {
	NoSuggest     bool `help:"Disable 'did you mean' suggestions on unknown-directive warnings."`
	Quiet         bool `help:"Suppress per-file summary output."                                 short:"q"`
	MaxLineLength int  `default:"1048576"                                                       help:"Maximum accepted line length in bytes."`

	Source []string `arg:"" default:"-" help:"Dialplan file(s) or '-' for stdin." name:"source"`
}

// Run executes the check command.
func (c *Check) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	log.DebugContext(ctx, "check",
		slog.String("command", commandFrom(ctx)),
		slog.Int("sources", len(c.Source)),
	)

	render := newRenderer(os.Stdout, os.Stderr)

	var failed bool

	for _, source := range c.Source {
		result, err := c.validateSource(ctx, source)
		if err != nil {
			log.DebugContext(ctx, "source failed",
				slog.Any("error", err),
			)
			render.failure(err)

			failed = true

			continue
		}

		for _, d := range result.Diagnostics {
			render.diagnostic(d)
		}

		if !c.Quiet {
			render.summary(source, result)
		}

		failed = failed || result.Failed()
	}

	if failed {
		return ErrCheckFailed
	}

	return nil
}

// validateSource opens and validates a single source. The returned error is
// I/O only; syntax findings are inside the Result.
func (c *Check) validateSource(
	ctx context.Context,
	source string,
) (*dialplan.Result, error) {
	opts := []dialplan.Option{
		dialplan.WithLogger(log.Default()),
		dialplan.WithSuggestions(!c.NoSuggest),
		dialplan.WithMaxLineLength(c.MaxLineLength),
	}

	reader := io.Reader(os.Stdin)

	if source != stdinSource {
		file, err := os.Open(source)
		if err != nil {
			return nil, NewError(fmt.Sprintf("Cannot open file '%s'", source)).
				Wrap(err).
				With(slog.String("source", source))
		}
		defer file.Close()

		reader = file
	}

	// Stream handles async read-ahead itself and caches the verdict by
	// content hash, so identical sources validate once per process.
	result, err := dialplan.NewStream(reader, opts...).Result(ctx)
	if err != nil {
		return nil, dialplan.WrapError(err).With(slog.String("source", source))
	}

	return result, nil
}
