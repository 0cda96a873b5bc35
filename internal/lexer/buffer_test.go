package lexer_test

import (
	"testing"

	"ember/internal/lexer"
	"ember/internal/source"
	"ember/internal/token"
)

func TestBufferCounts(t *testing.T) {
	buf, _ := lexString("let a = a\nlet b = 10")

	if got := buf.NumTokens(); got != 8 {
		t.Errorf("NumTokens() = %d, want 8", got)
	}
	if got := buf.NumLines(); got != 2 {
		t.Errorf("NumLines() = %d, want 2", got)
	}
	// a is interned once, b once.
	if got := buf.NumIdentifiers(); got != 2 {
		t.Errorf("NumIdentifiers() = %d, want 2", got)
	}
}

func TestBufferTokensIteration(t *testing.T) {
	buf, _ := lexString("a b c")

	toks := buf.Tokens()
	if len(toks) != buf.NumTokens() {
		t.Fatalf("Tokens() returned %d handles, want %d", len(toks), buf.NumTokens())
	}
	for i, tok := range toks {
		if int(tok) != i {
			t.Errorf("token handle %d at position %d", tok, i)
		}
	}
}

func TestLinePositions(t *testing.T) {
	buf, _ := lexString("ab\n  cd\n")

	if got := buf.LineStart(0); got != 0 {
		t.Errorf("LineStart(0) = %d, want 0", got)
	}
	if got := buf.LineLength(0); got != 2 {
		t.Errorf("LineLength(0) = %d, want 2", got)
	}
	if got := buf.LineStart(1); got != 3 {
		t.Errorf("LineStart(1) = %d, want 3", got)
	}
	if got := buf.LineLength(1); got != 4 {
		t.Errorf("LineLength(1) = %d, want 4", got)
	}

	cd := lexer.Token(1)
	if got := buf.LineNumber(buf.TokenLine(cd)); got != 2 {
		t.Errorf("line of cd = %d, want 2", got)
	}
	if got := buf.ColumnNumber(cd); got != 3 {
		t.Errorf("column of cd = %d, want 3", got)
	}
	if got := buf.IndentColumnNumber(buf.TokenLine(cd)); got != 3 {
		t.Errorf("indent of line 2 = %d, want 3", got)
	}
}

func TestIndentUnsetOnBlankLine(t *testing.T) {
	buf, _ := lexString("   \nx")

	if got := buf.IndentColumnNumber(lexer.Line(0)); got != 0 {
		t.Errorf("blank line indent = %d, want 0", got)
	}
	if got := buf.IndentColumnNumber(lexer.Line(1)); got != 1 {
		t.Errorf("second line indent = %d, want 1", got)
	}
}

func TestTokenSpanCoversSpelling(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.em", []byte("  foo ( 12 )")))
	buf := lexer.Lex(file, lexer.Options{Reporter: &testReporter{}})

	for _, tok := range buf.Tokens() {
		sp := buf.TokenSpan(tok)
		text := buf.TokenText(tok)
		if got := string(file.Content[sp.Start:sp.End]); got != text {
			t.Errorf("span of token %d yields %q, text is %q", tok, got, text)
		}
	}
}

func TestIdentifierQueries(t *testing.T) {
	buf, _ := lexString("alpha beta alpha")

	a0 := buf.GetIdentifier(lexer.Token(0))
	b := buf.GetIdentifier(lexer.Token(1))
	a1 := buf.GetIdentifier(lexer.Token(2))

	if a0 != a1 {
		t.Errorf("same spelling interned twice: %d vs %d", a0, a1)
	}
	if a0 == b {
		t.Errorf("distinct spellings share identifier %d", a0)
	}
	if got := buf.IdentifierText(b); got != "beta" {
		t.Errorf("IdentifierText = %q, want %q", got, "beta")
	}
}

func TestIntegerLiteralValueQuery(t *testing.T) {
	buf, _ := lexString("0x10")

	v := buf.IntegerLiteralValue(lexer.Token(0))
	if v == nil || v.Int64() != 16 {
		t.Errorf("IntegerLiteralValue = %v, want 16", v)
	}
}

func TestMatchedTokenQueries(t *testing.T) {
	buf, _ := lexString("[x]")

	open := lexer.Token(0)
	close := lexer.Token(2)
	if got := buf.MatchedClosingToken(open); got != close {
		t.Errorf("MatchedClosingToken = %d, want %d", got, close)
	}
	if got := buf.MatchedOpeningToken(close); got != open {
		t.Errorf("MatchedOpeningToken = %d, want %d", got, open)
	}
	if buf.IsRecoveryToken(close) {
		t.Error("real closer flagged as recovery")
	}
}

func TestHasErrorsSticky(t *testing.T) {
	buf, _ := lexString("a + b")
	if buf.HasErrors() {
		t.Error("clean input reports errors")
	}

	buf, _ = lexString("a # b")
	if !buf.HasErrors() {
		t.Error("unrecognized characters must set the error flag")
	}
	if buf.Kind(lexer.Token(1)) != token.Error {
		t.Errorf("middle token kind = %v, want Error", buf.Kind(lexer.Token(1)))
	}
}
