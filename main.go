package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/dplint/cli"
	"github.com/ardnew/dplint/cli/cmd"
	"github.com/ardnew/dplint/log"
)

func main() {
	err := cli.Run(context.Background(), os.Exit, os.Args[1:]...)
	if err != nil {
		// Syntax failures already printed their diagnostics and summary;
		// the error only maps the verdict to the exit code.
		if errors.Is(err, cmd.ErrCheckFailed) {
			os.Exit(1)
		}

		var parseErr *kong.ParseError
		if errors.As(err, &parseErr) {
			os.Exit(2)
		}

		log.Error(
			"run failed",
			slog.Any("error", err),
		) // slog automatically uses LogValue()
		os.Exit(1)
	}
}
