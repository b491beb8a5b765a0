package dialplan

// checkBalanced verifies that parentheses, brackets, and braces in text nest
// and close correctly, recording a diagnostic at the current line and
// returning false on the first failure.
//
// Quoted spans (single or double quotes) are opaque: delimiter characters
// inside them are not counted. A quote terminates when its matching quote
// character appears without an immediately preceding backslash. The escape
// rule inspects exactly one preceding character, so an escaped backslash
// before a quote (`\\"`) does not terminate the span. This is a known
// simplification kept for compatibility with the original tool.
//
// The three delimiter kinds are tracked independently: nesting order
// BETWEEN kinds is not verified, so interleaved closers like `([)]` pass as
// long as every kind's count returns to zero.
func (v *validator) checkBalanced(text string) bool {
	var parens, brackets, braces int

	var quote byte

	for i := range len(text) {
		c := text[i]

		if quote != 0 {
			// quote != 0 implies an opener at an earlier index, so i >= 1.
			if c == quote && text[i-1] != '\\' {
				quote = 0
			}

			continue
		}

		switch c {
		case '"', '\'':
			quote = c
		case '(':
			parens++
		case ')':
			parens--
		case '[':
			brackets++
		case ']':
			brackets--
		case '{':
			braces++
		case '}':
			braces--
		}

		// A closer with no matching opener fails immediately; the rest of
		// the text is not scanned.
		if parens < 0 || brackets < 0 || braces < 0 {
			v.errorf("Unbalanced delimiters (too many closing)")

			return false
		}
	}

	if quote != 0 {
		v.errorf("Unclosed quote")

		return false
	}

	if parens != 0 || brackets != 0 || braces != 0 {
		v.errorf("Unbalanced delimiters (parens=%d, brackets=%d, braces=%d)",
			parens, brackets, braces)

		return false
	}

	return true
}
