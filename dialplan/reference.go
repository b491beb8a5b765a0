package dialplan

import "strings"

// checkReferences scans text for ${...} variable references and $[...]
// expressions and verifies each opened form is closed. One diagnostic is
// recorded per unterminated reference, and scanning continues past a
// failure so every unclosed reference on the line is reported.
//
// Nested braces or brackets inside a reference are tracked by raw depth
// only. Nested openers are not validated recursively, and quoting inside a
// reference has no effect on the depth count. This is an accepted
// approximation: it is sufficient for closure checking.
func (v *validator) checkReferences(text string) bool {
	valid := true

	for i := 0; i < len(text); {
		next := strings.IndexByte(text[i:], '$')
		if next < 0 {
			break
		}

		i += next

		if i+1 >= len(text) {
			// Trailing $ is not a reference opener.
			break
		}

		switch text[i+1] {
		case '{':
			var ok bool

			i, ok = v.scanReference(text, i+2, '{', '}',
				"Unclosed ${...} variable reference")
			valid = valid && ok
		case '[':
			var ok bool

			i, ok = v.scanReference(text, i+2, '[', ']',
				"Unclosed $[...] expression")
			valid = valid && ok
		default:
			// $ followed by anything else is not a reference opener.
			i++
		}
	}

	return valid
}

// scanReference consumes one reference body starting at text[start], just
// past the opener pair. It returns the index one past the consumed span and
// whether the reference was closed, recording msg as an error diagnostic if
// it was not.
func (v *validator) scanReference(
	text string,
	start int,
	opener, closer byte,
	msg string,
) (end int, ok bool) {
	depth := 1
	i := start

	for i < len(text) && depth > 0 {
		switch text[i] {
		case opener:
			depth++
		case closer:
			depth--
		}

		i++
	}

	if depth != 0 {
		v.errorf("%s", msg)

		return i, false
	}

	return i, true
}
