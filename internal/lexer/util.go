package lexer

// ASCII classifiers. Unicode-aware classification is deliberately out of
// scope for this lexer.

func isAlpha(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isAlnum(b byte) bool { return isAlpha(b) || isDigit(b) }

// takeLeadingIntegerLiteral greedily takes the maximal alphanumeric-or-
// underscore run starting with a decimal digit. Over-consuming (e.g. "1abc")
// yields one precise diagnostic instead of a confusing token split.
func takeLeadingIntegerLiteral(rest []byte) []byte {
	if len(rest) == 0 || !isDigit(rest[0]) {
		return nil
	}
	n := 0
	for n < len(rest) && (isAlnum(rest[n]) || rest[n] == '_') {
		n++
	}
	return rest[:n]
}
