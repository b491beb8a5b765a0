package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ardnew/dplint/dialplan"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "extensions.conf")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	return path
}

func TestCheck_ValidateSource(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		errors   int
		warnings int
	}{
		{
			name:    "valid dialplan",
			content: "[default]\nexten => s,1,NoOp()\nsame => n,Hangup()\n",
		},
		{
			name:    "syntax error",
			content: "[default]\nexten => s,0,NoOp()\n",
			errors:  1,
		},
		{
			name:     "warning only",
			content:  "[default]\nfoobar\n",
			warnings: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check := &Check{MaxLineLength: dialplan.DefaultMaxLineLength}

			result, err := check.validateSource(
				context.Background(), writeTemp(t, tt.content),
			)
			if err != nil {
				t.Fatalf("validateSource failed: %v", err)
			}

			if result.Errors != tt.errors || result.Warnings != tt.warnings {
				t.Errorf("counts = (%d,%d), want (%d,%d)",
					result.Errors, result.Warnings, tt.errors, tt.warnings)
			}
		})
	}
}

func TestCheck_ValidateSource_MissingFile(t *testing.T) {
	check := &Check{MaxLineLength: dialplan.DefaultMaxLineLength}

	path := filepath.Join(t.TempDir(), "does-not-exist.conf")

	_, err := check.validateSource(context.Background(), path)
	if err == nil {
		t.Fatal("expected error for missing file")
	}

	// Open failures lead with the reference tool's message shape; the
	// OS-level cause follows.
	if !strings.HasPrefix(err.Error(), "Cannot open file '"+path+"'") {
		t.Errorf("error = %q, want open-failure classification", err.Error())
	}

	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error %v does not wrap os.ErrNotExist", err)
	}
}

func TestCheck_ValidateSource_CachesIdenticalContent(t *testing.T) {
	t.Cleanup(dialplan.ClearCache)

	check := &Check{MaxLineLength: dialplan.DefaultMaxLineLength}
	content := "[default]\nexten => s,1,NoOp()\nsame => n,Hangup()\n"

	first, err := check.validateSource(
		context.Background(), writeTemp(t, content),
	)
	if err != nil {
		t.Fatalf("first validateSource failed: %v", err)
	}

	// A second file with identical content hits the content-hash cache and
	// shares the same Result value.
	second, err := check.validateSource(
		context.Background(), writeTemp(t, content),
	)
	if err != nil {
		t.Fatalf("second validateSource failed: %v", err)
	}

	if first != second {
		t.Error("identical content did not share a cached result")
	}
}

func TestCheck_Run_ExitClassification(t *testing.T) {
	tests := []struct {
		name    string
		content string
		failed  bool
	}{
		{
			name:    "clean file passes",
			content: "[default]\nexten => s,1,NoOp()\n",
		},
		{
			name:    "errors fail the command",
			content: "[default]\nexten = s,1,NoOp()\n",
			failed:  true,
		},
		{
			name:    "warnings alone pass",
			content: "[default]\nfoobar\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check := &Check{
				Quiet:         true,
				MaxLineLength: dialplan.DefaultMaxLineLength,
				Source:        []string{writeTemp(t, tt.content)},
			}

			err := check.Run(context.Background())

			if tt.failed {
				if !errors.Is(err, ErrCheckFailed) {
					t.Errorf("Run() = %v, want ErrCheckFailed", err)
				}

				return
			}

			if err != nil {
				t.Errorf("Run() = %v, want nil", err)
			}
		})
	}
}

func TestCheck_Run_MissingFileFails(t *testing.T) {
	check := &Check{
		Quiet:         true,
		MaxLineLength: dialplan.DefaultMaxLineLength,
		Source: []string{
			filepath.Join(t.TempDir(), "does-not-exist.conf"),
		},
	}

	err := check.Run(context.Background())
	if !errors.Is(err, ErrCheckFailed) {
		t.Errorf("Run() = %v, want ErrCheckFailed", err)
	}
}

func TestCheck_Run_MultipleSources(t *testing.T) {
	good := writeTemp(t, "[default]\nexten => s,1,NoOp()\n")
	bad := writeTemp(t, "[default]\nexten => s,0,NoOp()\n")

	check := &Check{
		Quiet:         true,
		MaxLineLength: dialplan.DefaultMaxLineLength,
		Source:        []string{good, bad},
	}

	// One failing source fails the whole command, after all sources ran.
	err := check.Run(context.Background())
	if !errors.Is(err, ErrCheckFailed) {
		t.Errorf("Run() = %v, want ErrCheckFailed", err)
	}
}

func TestCommandFrom_EmptyWithoutKongContext(t *testing.T) {
	if got := commandFrom(context.Background()); got != "" {
		t.Errorf("commandFrom = %q, want empty", got)
	}
}
