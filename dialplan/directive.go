package dialplan

import (
	"strings"
	"unicode"
)

// Directive identifies the kind of a trimmed, non-comment dialplan line.
type Directive int

const (
	// DirectiveContextHeader is a [name] context header.
	DirectiveContextHeader Directive = iota
	// DirectiveExtension is an exten => line.
	DirectiveExtension
	// DirectiveContinuation is a same => line, implicitly continuing the
	// preceding extension's pattern.
	DirectiveContinuation
	// DirectiveInclude is an include => line.
	DirectiveInclude
	// DirectiveSwitch is a switch, eswitch, or lswitch => line.
	DirectiveSwitch
	// DirectiveGlobalAssignment is a key=value setting outside any context,
	// as found in [general]- or [globals]-like header sections. Accepted
	// without further checks.
	DirectiveGlobalAssignment
	// DirectiveUnknown is an unrecognized directive inside a context.
	// Reported as a warning.
	DirectiveUnknown
	// DirectiveIgnored is an unrecognized line outside any context.
	// Silently skipped.
	DirectiveIgnored
)

// String returns the directive kind name for logging.
func (d Directive) String() string {
	switch d {
	case DirectiveContextHeader:
		return "context"
	case DirectiveExtension:
		return "exten"
	case DirectiveContinuation:
		return "same"
	case DirectiveInclude:
		return "include"
	case DirectiveSwitch:
		return "switch"
	case DirectiveGlobalAssignment:
		return "assignment"
	case DirectiveUnknown:
		return "unknown"
	default:
		return "ignored"
	}
}

// classify decides the directive kind of a trimmed line. First match wins:
//
//  1. leading '[' is a context header;
//  2. a first token equal to exten/same (case-insensitive) is an extension
//     or continuation;
//  3. include, then switch/eswitch/lswitch, by the same token rule;
//  4. outside any context, a line containing '=' not immediately followed
//     by '>' is a global assignment;
//  5. anything else warns inside a context and is ignored outside.
func classify(line string, inContext bool) Directive {
	if strings.HasPrefix(line, "[") {
		return DirectiveContextHeader
	}

	switch token := firstToken(line); {
	case strings.EqualFold(token, "exten"):
		return DirectiveExtension
	case strings.EqualFold(token, "same"):
		return DirectiveContinuation
	case strings.EqualFold(token, "include"):
		return DirectiveInclude
	case strings.EqualFold(token, "switch"),
		strings.EqualFold(token, "eswitch"),
		strings.EqualFold(token, "lswitch"):
		return DirectiveSwitch
	}

	if !inContext && hasAssignment(line) {
		return DirectiveGlobalAssignment
	}

	if inContext {
		return DirectiveUnknown
	}

	return DirectiveIgnored
}

// firstToken returns the leading whitespace-delimited token of line.
func firstToken(line string) string {
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		return line[:i]
	}

	return line
}

// hasAssignment reports whether line contains an '=' that is not part of a
// '=>' arrow.
func hasAssignment(line string) bool {
	for i := range len(line) {
		if line[i] == '=' && (i+1 >= len(line) || line[i+1] != '>') {
			return true
		}
	}

	return false
}

// isCommentOrBlank reports whether the raw line is blank or a comment
// (leading ';' or '#' after optional whitespace).
func isCommentOrBlank(line string) bool {
	trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)

	return trimmed == "" || trimmed[0] == ';' || trimmed[0] == '#'
}
