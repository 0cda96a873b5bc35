package diag

import (
	"testing"

	"ember/internal/source"
)

func TestBagLimit(t *testing.T) {
	b := NewBag(2)
	d := Diagnostic{Severity: SevError, Code: LexInvalidDigit}

	if !b.Add(d) || !b.Add(d) {
		t.Fatal("first two adds must succeed")
	}
	if b.Add(d) {
		t.Error("third add must be dropped")
	}
	if b.Len() != 2 {
		t.Errorf("Len = %d, want 2", b.Len())
	}
}

func TestBagHasErrors(t *testing.T) {
	b := NewBag(10)
	if b.HasErrors() || b.HasWarnings() {
		t.Error("empty bag must report no errors or warnings")
	}

	b.Add(Diagnostic{Severity: SevWarning, Code: LexIrregularDigitSeparators})
	if b.HasErrors() {
		t.Error("warning must not count as error")
	}
	if !b.HasWarnings() {
		t.Error("expected HasWarnings after warning")
	}

	b.Add(Diagnostic{Severity: SevError, Code: LexInvalidDigit})
	if !b.HasErrors() {
		t.Error("expected HasErrors after error")
	}
}

func TestBagSort(t *testing.T) {
	b := NewBag(10)
	b.Add(Diagnostic{Code: LexInvalidDigit, Primary: source.Span{Start: 10, End: 11}})
	b.Add(Diagnostic{Code: LexUnmatchedClosing, Primary: source.Span{Start: 2, End: 3}})
	b.Sort()

	items := b.Items()
	if items[0].Code != LexUnmatchedClosing {
		t.Errorf("expected position order after Sort, got %v first", items[0].Code)
	}
}

func TestCodeIdentity(t *testing.T) {
	if got := LexUnmatchedClosing.ID(); got != "LEX1001" {
		t.Errorf("ID = %q", got)
	}
	if got := LexInvalidDigit.Category(); got != "syntax-invalid-number" {
		t.Errorf("Category = %q", got)
	}
	if got := LexIrregularDigitSeparators.Category(); got != "syntax-irregular-digit-separators" {
		t.Errorf("Category = %q", got)
	}
	if got := LexUnrecognizedCharacters.Category(); got != "syntax-unrecognized-characters" {
		t.Errorf("Category = %q", got)
	}
}
