package lexer

import (
	"math/big"

	"ember/internal/source"
	"ember/internal/token"
)

// lexIntegerLiteral applies when the next character is a decimal digit. The
// whole alphanumeric run is consumed up front; validation then decides
// whether it becomes an IntegerLiteral or a single Error token.
func (s *scanner) lexIntegerLiteral() bool {
	text := takeLeadingIntegerLiteral(s.cursor.Rest())
	if len(text) == 0 {
		return false
	}

	mark := s.cursor.Mark()
	intColumn := s.column
	s.column += int32(len(text))
	s.cursor.Advance(uint32(len(text)))
	span := s.cursor.SpanFrom(mark)

	s.captureIndentAt(intColumn)

	errorToken := func() bool {
		s.buf.addToken(TokenInfo{
			Kind:        token.Error,
			Line:        s.currentLine,
			Column:      intColumn,
			ErrorLength: int32(len(text)),
			Partner:     NoToken,
		})
		s.buf.hasErrors = true
		// The span was consumed either way.
		return true
	}

	radix := 10
	digits := text
	if len(text) >= 2 && text[0] == '0' {
		switch text[1] {
		case 'x':
			radix = 16
			digits = digits[2:]
		case 'b':
			radix = 2
			digits = digits[2:]
		default:
			s.reportUnknownBaseSpecifier(span)
			return errorToken()
		}
	}

	ok, hasSeparators := s.checkDigitSequence(digits, radix, span)
	if !ok {
		return errorToken()
	}

	if hasSeparators {
		digits = stripSeparators(digits)
	}
	value, parsed := new(big.Int).SetString(string(digits), radix)
	if !parsed {
		// checkDigitSequence guarantees the alphabet; this cannot fail.
		panic("validated digit sequence failed to parse")
	}

	s.buf.addToken(TokenInfo{
		Kind:         token.IntegerLiteral,
		Line:         s.currentLine,
		Column:       intColumn,
		LiteralIndex: int32(len(s.buf.intLiterals)),
		Partner:      NoToken,
	})
	s.buf.intLiterals = append(s.buf.intLiterals, value)
	return true
}

// checkDigitSequence validates digits against the radix alphabet in one
// scan. Digit separators at the start, end, or doubled are reported but do
// not reject the literal; characters outside the alphabet do.
func (s *scanner) checkDigitSequence(digits []byte, radix int, span source.Span) (ok, hasSeparators bool) {
	if len(digits) == 0 {
		s.reportEmptyDigitSequence(span)
		return false, false
	}

	var valid [256]bool
	switch radix {
	case 2:
		for _, c := range []byte("01") {
			valid[c] = true
		}
	case 10:
		for _, c := range []byte("0123456789") {
			valid[c] = true
		}
	case 16:
		for _, c := range []byte("0123456789ABCDEF") {
			valid[c] = true
		}
	}

	numSeparators := 0
	for i, n := 0, len(digits); i < n; i++ {
		c := digits[i]
		if valid[c] {
			continue
		}

		if c == '_' {
			if i == 0 || digits[i-1] == '_' || i+1 == n {
				s.reportInvalidDigitSeparator(span)
			}
			numSeparators++
			continue
		}

		s.reportInvalidDigit(span, c, radix)
		return false, false
	}

	// Binary literals are exempt from the grouping stride.
	if numSeparators > 0 && radix != 2 {
		s.checkDigitSeparatorPlacement(digits, radix, numSeparators, span)
	}

	return true, numSeparators > 0
}

// checkDigitSeparatorPlacement enforces the uniform grouping read from the
// least-significant end: every 4th character for decimal, every 5th for hex,
// must be '_', with no separators anywhere else.
func (s *scanner) checkDigitSeparatorPlacement(digits []byte, radix, numSeparators int, span source.Span) {
	stride := 4
	if radix == 16 {
		stride = 5
	}

	remaining := numSeparators
	for pos := len(digits) - stride; pos >= 0; pos -= stride {
		if digits[pos] != '_' {
			s.reportIrregularDigitSeparators(span, radix)
			return
		}
		remaining--
	}

	// Any separator unaccounted for sits off-stride.
	if remaining != 0 {
		s.reportIrregularDigitSeparators(span, radix)
	}
}

func stripSeparators(digits []byte) []byte {
	out := make([]byte, 0, len(digits))
	for _, c := range digits {
		if c != '_' {
			out = append(out, c)
		}
	}
	return out
}

func (s *scanner) captureIndentAt(column int32) {
	if !s.setIndent {
		s.lineInfo().Indent = column
		s.setIndent = true
	}
}
