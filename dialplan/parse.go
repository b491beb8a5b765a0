package dialplan

import (
	"errors"
	"strconv"
	"strings"
)

// parseContextHeader parses a [name] line and records the context name.
// The substring between '[' and the FIRST ']' is the name; a missing ']'
// or an empty trimmed name is an error. Duplicate names, reserved names,
// and name characters are not checked.
func (v *validator) parseContextHeader(line string) bool {
	end := strings.IndexByte(line, ']')
	if end < 0 {
		v.errorf("Malformed context (missing ']')")

		return false
	}

	name := strings.TrimSpace(line[1:end])
	if name == "" {
		v.errorf("Empty context name")

		return false
	}

	v.context = name

	return true
}

// parseExtension validates an exten => pattern,priority,app(args) line or a
// same => priority,app(args) continuation. Continuations carry no pattern
// field and their priority is not validated. Checks after a failed one still
// run where the text they need exists, so one line can yield several
// diagnostics.
func (v *validator) parseExtension(line string, continuation bool) bool {
	_, after, found := strings.Cut(line, "=>")
	if !found {
		v.errorf("Missing '=>' in extension definition")

		return false
	}

	data := strings.TrimSpace(after)

	_, priority, app, ok := splitExtensionFields(data, continuation)
	if !ok {
		v.errorf(
			"Extension must have format: exten => pattern,priority,app(args)",
		)

		return false
	}

	valid := true

	if !continuation {
		valid = v.checkPriority(strings.TrimSpace(priority))
	}

	// The pattern field is never validated: pattern semantics are the
	// dialplan engine's concern, not syntax.

	if app := strings.TrimSpace(app); app != "" &&
		strings.ContainsRune(app, '(') {
		valid = v.checkBalanced(app) && valid
	}

	// Reference closure is checked on the whole post-arrow span regardless
	// of earlier failures, so unclosed ${...}/$[...] are reported even on a
	// line that already failed balance or priority checks.
	valid = v.checkReferences(data) && valid

	return valid
}

// splitExtensionFields splits the post-arrow text of an extension line at
// its top-level commas: two for exten lines (pattern,priority,app), one for
// continuations (priority,app; the pattern is implicit). A comma nested
// inside parentheses or brackets (application arguments, pattern character
// classes) is not a field separator. Quotes are not considered at this
// level.
func splitExtensionFields(
	data string,
	continuation bool,
) (pattern, priority, app string, ok bool) {
	var parens, brackets int

	comma1, comma2 := -1, -1

scan:
	for i := range len(data) {
		switch data[i] {
		case '(':
			parens++
		case ')':
			parens--
		case '[':
			brackets++
		case ']':
			brackets--
		case ',':
			if parens != 0 || brackets != 0 {
				continue
			}

			if comma1 < 0 {
				comma1 = i

				if continuation {
					break scan
				}
			} else {
				comma2 = i

				break scan
			}
		}
	}

	if continuation {
		if comma1 < 0 {
			return "", "", "", false
		}

		return "", data[:comma1], data[comma1+1:], true
	}

	if comma1 < 0 || comma2 < 0 {
		return "", "", "", false
	}

	return data[:comma1], data[comma1+1 : comma2], data[comma2+1:], true
}

// checkPriority validates an extension priority field. The literals "hint"
// and "n" are always valid; otherwise the field must be an integer >= 1,
// optionally followed immediately by a parenthesized label (e.g. 5(start));
// the label contents are not validated.
func (v *validator) checkPriority(priority string) bool {
	if priority == "hint" || priority == "n" {
		return true
	}

	digits := numericPrefix(priority)
	rest := priority[len(digits):]

	hasDigits := strings.TrimLeft(digits, "+-") != ""
	if !hasDigits || (rest != "" && rest[0] != '(') {
		v.errorf("Invalid priority '%s' (must be number, 'n', or 'hint')",
			priority)

		return false
	}

	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		v.errorf("Invalid priority '%s' (must be number, 'n', or 'hint')",
			priority)

		return false
	}

	if n < 1 {
		v.errorf("Priority must be >= 1")

		return false
	}

	return true
}

// numericPrefix returns the leading optional-sign-plus-digits prefix of s,
// possibly empty.
func numericPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}

	// A bare sign with no digits is not numeric.
	if strings.TrimLeft(s[:i], "+-") == "" {
		return ""
	}

	return s[:i]
}

// parseInclude validates an include => line: the arrow must be present and
// the referenced context name non-empty. Whether the context exists is out
// of scope.
func (v *validator) parseInclude(line string) bool {
	_, after, found := strings.Cut(line, "=>")
	if !found {
		v.errorf("Missing '=>' in include statement")

		return false
	}

	if strings.TrimSpace(after) == "" {
		v.errorf("Empty context in include statement")

		return false
	}

	return true
}

// parseSwitch validates a switch/eswitch/lswitch line: only the presence of
// '=>' is required.
func (v *validator) parseSwitch(line string) bool {
	if !strings.Contains(line, "=>") {
		v.errorf("Missing '=>' in switch statement")

		return false
	}

	return true
}
