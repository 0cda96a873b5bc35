package lexer_test

import (
	"math/big"
	"testing"

	"ember/internal/diag"
	"ember/internal/token"
)

func expectIntegerLiteral(t *testing.T, input string, want int64, wantCodes ...diag.Code) {
	t.Helper()
	buf, reporter := lexString(input)

	toks := buf.Tokens()
	if len(toks) != 1 {
		t.Fatalf("input %q: expected one token, got %d (%v)", input, len(toks), kindsOf(buf))
	}
	if buf.Kind(toks[0]) != token.IntegerLiteral {
		t.Fatalf("input %q: kind = %v, want IntegerLiteral", input, buf.Kind(toks[0]))
	}
	if got := buf.IntegerLiteralValue(toks[0]); got.Cmp(big.NewInt(want)) != 0 {
		t.Errorf("input %q: value = %s, want %d", input, got, want)
	}
	if got := buf.TokenText(toks[0]); got != input {
		t.Errorf("input %q: display text = %q; original spelling must round-trip", input, got)
	}
	expectDiagnostics(t, reporter, wantCodes...)
}

func expectNumberError(t *testing.T, input string, wantCodes ...diag.Code) {
	t.Helper()
	buf, reporter := lexString(input)

	toks := buf.Tokens()
	if len(toks) != 1 {
		t.Fatalf("input %q: expected one token, got %d (%v)", input, len(toks), kindsOf(buf))
	}
	if buf.Kind(toks[0]) != token.Error {
		t.Fatalf("input %q: kind = %v, want Error", input, buf.Kind(toks[0]))
	}
	if got := buf.TokenText(toks[0]); got != input {
		t.Errorf("input %q: error span = %q, want whole literal", input, got)
	}
	if !buf.HasErrors() {
		t.Errorf("input %q: error flag must be set", input)
	}
	expectDiagnostics(t, reporter, wantCodes...)
}

func TestDecimalLiterals(t *testing.T) {
	expectIntegerLiteral(t, "0", 0)
	expectIntegerLiteral(t, "42", 42)
	expectIntegerLiteral(t, "123456789", 123456789)
}

func TestRadixPrefixes(t *testing.T) {
	expectIntegerLiteral(t, "0x1F", 31)
	expectIntegerLiteral(t, "0b101", 5)
	expectNumberError(t, "0z5", diag.LexUnknownBaseSpecifier)
	expectNumberError(t, "0_1", diag.LexUnknownBaseSpecifier)
}

func TestEmptyDigitSequence(t *testing.T) {
	expectNumberError(t, "0x", diag.LexEmptyDigitSequence)
	expectNumberError(t, "0b", diag.LexEmptyDigitSequence)
}

func TestInvalidDigits(t *testing.T) {
	expectNumberError(t, "1abc", diag.LexInvalidDigit)
	expectNumberError(t, "0b12", diag.LexInvalidDigit)
	expectNumberError(t, "0x1G", diag.LexInvalidDigit)
	// Hex digits are upper-case only.
	expectNumberError(t, "0xff", diag.LexInvalidDigit)
}

func TestDigitSeparators(t *testing.T) {
	// Well-grouped separators are silent.
	expectIntegerLiteral(t, "1_000", 1000)
	expectIntegerLiteral(t, "1_000_000", 1000000)
	expectIntegerLiteral(t, "0x1234_5678", 0x12345678)

	// Off-stride grouping is diagnosed but the literal still parses.
	expectIntegerLiteral(t, "1_00", 100, diag.LexIrregularDigitSeparators)
	expectIntegerLiteral(t, "12_34_5", 12345,
		diag.LexIrregularDigitSeparators)
	expectIntegerLiteral(t, "0x12_34", 0x1234, diag.LexIrregularDigitSeparators)

	// Binary literals skip the grouping check entirely.
	expectIntegerLiteral(t, "0b1_01", 5)
	expectIntegerLiteral(t, "0b10_10_10", 42)
}

func TestMisplacedSeparators(t *testing.T) {
	// Trailing separator: misplaced, and the survivors sit off-stride.
	expectIntegerLiteral(t, "1_", 1,
		diag.LexInvalidDigitSeparator, diag.LexIrregularDigitSeparators)

	// Doubled separator.
	expectIntegerLiteral(t, "1__000", 1000,
		diag.LexInvalidDigitSeparator, diag.LexIrregularDigitSeparators)

	// Leading separator after a radix prefix. It happens to land on the
	// hex stride, so only the misplaced-separator diagnostic fires.
	expectIntegerLiteral(t, "0x_FFFF", 0xFFFF, diag.LexInvalidDigitSeparator)
}

func TestBigLiterals(t *testing.T) {
	input := "0xFFFF_FFFF_FFFF_FFFF_FFFF"
	buf, reporter := lexString(input)
	expectDiagnostics(t, reporter)

	toks := buf.Tokens()
	if len(toks) != 1 || buf.Kind(toks[0]) != token.IntegerLiteral {
		t.Fatalf("expected one IntegerLiteral, got %v", kindsOf(buf))
	}

	want := new(big.Int)
	want.SetString("FFFFFFFFFFFFFFFFFFFF", 16)
	if got := buf.IntegerLiteralValue(toks[0]); got.Cmp(want) != 0 {
		t.Errorf("value = %s, want %s", got, want)
	}
	if got := buf.TokenText(toks[0]); got != input {
		t.Errorf("display text = %q", got)
	}
}

func TestLiteralFollowedByOperator(t *testing.T) {
	expectKinds(t, "1+2", []token.Kind{token.IntegerLiteral, token.Plus, token.IntegerLiteral})
	expectKinds(t, "0x1F..0x2F", []token.Kind{token.IntegerLiteral, token.DotDot, token.IntegerLiteral})
}
