package lexer

import (
	"fmt"

	"ember/internal/diag"
	"ember/internal/source"
)

// Every diagnostic is emitted synchronously at its discovery point and sets
// the buffer's monotonic error flag. None of them stop the scan.

func (s *scanner) report(code diag.Code, sp source.Span, msg string) {
	s.buf.hasErrors = true
	s.reporter.Report(code, diag.SevError, sp, msg, nil)
}

func (s *scanner) reportUnmatchedClosing(sp source.Span) {
	s.report(diag.LexUnmatchedClosing, sp,
		"closing symbol without a corresponding opening symbol")
}

func (s *scanner) reportMismatchedClosing(sp source.Span) {
	s.report(diag.LexMismatchedClosing, sp,
		"closing symbol does not match most recent opening symbol")
}

func (s *scanner) reportEmptyDigitSequence(sp source.Span) {
	s.report(diag.LexEmptyDigitSequence, sp,
		"empty digit sequence in numeric literal")
}

func (s *scanner) reportInvalidDigit(sp source.Span, digit byte, radix int) {
	s.report(diag.LexInvalidDigit, sp,
		fmt.Sprintf("invalid digit '%c' in %s numeric literal", digit, radixName(radix)))
}

func (s *scanner) reportInvalidDigitSeparator(sp source.Span) {
	s.report(diag.LexInvalidDigitSeparator, sp,
		"misplaced digit separator in numeric literal")
}

func (s *scanner) reportIrregularDigitSeparators(sp source.Span, radix int) {
	group := "3"
	if radix == 16 {
		group = "4"
	}
	s.report(diag.LexIrregularDigitSeparators, sp,
		fmt.Sprintf("digit separators in %s should appear every %s characters from the right",
			radixName(radix), group))
}

func (s *scanner) reportUnknownBaseSpecifier(sp source.Span) {
	s.report(diag.LexUnknownBaseSpecifier, sp,
		"unknown base specifier in numeric literal")
}

func (s *scanner) reportUnrecognizedCharacters(sp source.Span) {
	s.report(diag.LexUnrecognizedCharacters, sp,
		"encountered unrecognized characters while parsing")
}

func radixName(radix int) string {
	switch radix {
	case 2:
		return "binary"
	case 16:
		return "hexadecimal"
	default:
		return "decimal"
	}
}
