package dialplan

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		inContext bool
		want      Directive
	}{
		{
			name: "context header",
			line: "[default]",
			want: DirectiveContextHeader,
		},
		{
			name: "malformed header still classifies as header",
			line: "[default",
			want: DirectiveContextHeader,
		},
		{
			name:      "exten",
			line:      "exten => s,1,NoOp()",
			inContext: true,
			want:      DirectiveExtension,
		},
		{
			name:      "exten uppercase",
			line:      "EXTEN => s,1,NoOp()",
			inContext: true,
			want:      DirectiveExtension,
		},
		{
			name:      "same",
			line:      "same => n,Hangup()",
			inContext: true,
			want:      DirectiveContinuation,
		},
		{
			name:      "include",
			line:      "include => internal",
			inContext: true,
			want:      DirectiveInclude,
		},
		{
			name:      "switch",
			line:      "switch => IAX2/ctx",
			inContext: true,
			want:      DirectiveSwitch,
		},
		{
			name:      "eswitch",
			line:      "eswitch => Realtime",
			inContext: true,
			want:      DirectiveSwitch,
		},
		{
			name:      "lswitch",
			line:      "lswitch => Loopback/ctx",
			inContext: true,
			want:      DirectiveSwitch,
		},
		{
			name: "assignment outside context",
			line: "RINGTIME=30",
			want: DirectiveGlobalAssignment,
		},
		{
			name:      "assignment inside context is unknown",
			line:      "RINGTIME=30",
			inContext: true,
			want:      DirectiveUnknown,
		},
		{
			name: "arrow line outside context is not an assignment",
			line: "foo => bar",
			want: DirectiveIgnored,
		},
		{
			name: "arrow plus later equals is an assignment",
			line: "foo => bar=baz",
			want: DirectiveGlobalAssignment,
		},
		{
			name:      "keyword requires whole-token match",
			line:      "extensions => s,1,NoOp()",
			inContext: true,
			want:      DirectiveUnknown,
		},
		{
			name:      "glued arrow defeats token match",
			line:      "exten=>s,1,NoOp()",
			inContext: true,
			want:      DirectiveUnknown,
		},
		{
			name: "stray text outside context",
			line: "stray text",
			want: DirectiveIgnored,
		},
		{
			name:      "stray text inside context",
			line:      "stray text",
			inContext: true,
			want:      DirectiveUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.line, tt.inContext)
			if got != tt.want {
				t.Errorf("classify(%q, %v) = %v, want %v",
					tt.line, tt.inContext, got, tt.want)
			}
		})
	}
}

func TestFirstToken(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"exten => s,1,NoOp()", "exten"},
		{"exten", "exten"},
		{"exten\t=> s", "exten"},
		{"", ""},
		{"  ", ""},
	}

	for _, tt := range tests {
		if got := firstToken(tt.line); got != tt.want {
			t.Errorf("firstToken(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestHasAssignment(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"a=b", true},
		{"a = b", true},
		{"a=>b", false},
		{"a=>b=c", true},
		{"a=", true},
		{"no equals", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := hasAssignment(tt.line); got != tt.want {
			t.Errorf("hasAssignment(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestIsCommentOrBlank(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"", true},
		{"   ", true},
		{"\t", true},
		{"; comment", true},
		{"  ; indented comment", true},
		{"#include extensions_custom.conf", true},
		{"exten => s,1,NoOp() ; trailing comment is not a comment line", false},
		{"[default]", false},
	}

	for _, tt := range tests {
		if got := isCommentOrBlank(tt.line); got != tt.want {
			t.Errorf("isCommentOrBlank(%q) = %v, want %v",
				tt.line, got, tt.want)
		}
	}
}

func TestDirectiveString(t *testing.T) {
	tests := []struct {
		directive Directive
		want      string
	}{
		{DirectiveContextHeader, "context"},
		{DirectiveExtension, "exten"},
		{DirectiveContinuation, "same"},
		{DirectiveInclude, "include"},
		{DirectiveSwitch, "switch"},
		{DirectiveGlobalAssignment, "assignment"},
		{DirectiveUnknown, "unknown"},
		{DirectiveIgnored, "ignored"},
	}

	for _, tt := range tests {
		if got := tt.directive.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
