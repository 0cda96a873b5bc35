package token_test

import (
	"testing"

	"ember/internal/token"
)

func TestBracketPartners(t *testing.T) {
	pairs := []struct {
		open, close token.Kind
	}{
		{token.LParen, token.RParen},
		{token.LBracket, token.RBracket},
		{token.LBrace, token.RBrace},
	}

	for _, p := range pairs {
		if !p.open.IsOpeningSymbol() {
			t.Errorf("%v must be an opening symbol", p.open)
		}
		if !p.close.IsClosingSymbol() {
			t.Errorf("%v must be a closing symbol", p.close)
		}
		if got := p.open.ClosingSymbol(); got != p.close {
			t.Errorf("%v.ClosingSymbol() = %v, want %v", p.open, got, p.close)
		}
		if got := p.close.OpeningSymbol(); got != p.open {
			t.Errorf("%v.OpeningSymbol() = %v, want %v", p.close, got, p.open)
		}
	}
}

func TestNonBracketsHaveNoPartner(t *testing.T) {
	for _, k := range []token.Kind{token.Plus, token.Arrow, token.KwFn, token.Identifier, token.Error} {
		if k.IsOpeningSymbol() || k.IsClosingSymbol() {
			t.Errorf("%v must not participate in bracket groups", k)
		}
		if k.ClosingSymbol() != token.Error {
			t.Errorf("%v.ClosingSymbol() must be Error", k)
		}
	}
}

func TestFixedSpellings(t *testing.T) {
	cases := map[token.Kind]string{
		token.Arrow:      "->",
		token.FatArrow:   "=>",
		token.ColonColon: "::",
		token.LParen:     "(",
		token.KwFn:       "fn",
		token.KwContinue: "continue",
	}
	for k, want := range cases {
		if got := k.FixedSpelling(); got != want {
			t.Errorf("%v.FixedSpelling() = %q, want %q", k, got, want)
		}
	}

	for _, k := range []token.Kind{token.Identifier, token.IntegerLiteral, token.DocComment, token.Error} {
		if k.FixedSpelling() != "" {
			t.Errorf("%v must not have a fixed spelling", k)
		}
	}
}

func TestKindNames(t *testing.T) {
	if token.Identifier.Name() != "Identifier" {
		t.Errorf("Identifier.Name() = %q", token.Identifier.Name())
	}
	if token.KwWhile.String() != "KwWhile" {
		t.Errorf("KwWhile.String() = %q", token.KwWhile.String())
	}
}
