package dialplan

import "testing"

func TestDiagnosticString(t *testing.T) {
	tests := []struct {
		name       string
		diagnostic Diagnostic
		want       string
	}{
		{
			name: "error",
			diagnostic: Diagnostic{
				Line:     7,
				Severity: SeverityError,
				Message:  "Missing '=>' in extension definition",
			},
			want: "Line 7: Missing '=>' in extension definition",
		},
		{
			name: "warning",
			diagnostic: Diagnostic{
				Line:     3,
				Severity: SeverityWarning,
				Message:  "Unknown directive 'foobar'",
			},
			want: "Line 3: Warning: Unknown directive 'foobar'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.diagnostic.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSeverityString(t *testing.T) {
	if got := SeverityError.String(); got != "error" {
		t.Errorf("SeverityError.String() = %q", got)
	}

	if got := SeverityWarning.String(); got != "warning" {
		t.Errorf("SeverityWarning.String() = %q", got)
	}
}

func TestResultRecord(t *testing.T) {
	r := new(Result)

	if !r.OK() || r.Failed() {
		t.Fatal("zero Result must be OK and not Failed")
	}

	r.record(Diagnostic{Line: 1, Severity: SeverityWarning, Message: "w"})

	if r.OK() {
		t.Error("OK() = true after a warning")
	}

	if r.Failed() {
		t.Error("Failed() = true with warnings only")
	}

	r.record(Diagnostic{Line: 2, Severity: SeverityError, Message: "e"})

	if !r.Failed() {
		t.Error("Failed() = false after an error")
	}

	if r.Errors != 1 || r.Warnings != 1 {
		t.Errorf("counts = (%d,%d), want (1,1)", r.Errors, r.Warnings)
	}

	if len(r.Diagnostics) != 2 {
		t.Errorf("len(Diagnostics) = %d, want 2", len(r.Diagnostics))
	}
}
