package lexer_test

import (
	"strings"
	"testing"
)

func TestPrintAlignment(t *testing.T) {
	buf, _ := lexString("fn x")

	var sb strings.Builder
	buf.Print(&sb)

	want := strings.Join([]string{
		"token: { index: 0, kind:       'KwFn', line: 1, column: 1, indent: 1, spelling: 'fn' }",
		"token: { index: 1, kind: 'Identifier', line: 1, column: 4, indent: 1, spelling: 'x', identifier: 0 }",
		"",
	}, "\n")

	if got := sb.String(); got != want {
		t.Errorf("dump mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrintBracketCrossReferences(t *testing.T) {
	buf, _ := lexString("()")

	var sb strings.Builder
	buf.Print(&sb)
	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 dump lines, got %d", len(lines))
	}

	if !strings.Contains(lines[0], "closing_token: 1") {
		t.Errorf("opening line missing cross-reference: %s", lines[0])
	}
	if !strings.Contains(lines[1], "opening_token: 0") {
		t.Errorf("closing line missing cross-reference: %s", lines[1])
	}
}

func TestPrintRecoveryFlag(t *testing.T) {
	buf, _ := lexString("(")

	var sb strings.Builder
	buf.Print(&sb)
	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 dump lines, got %d", len(lines))
	}
	if !strings.HasSuffix(lines[1], ", recovery: true }") {
		t.Errorf("synthetic closer must print the recovery flag: %s", lines[1])
	}
}

func TestPrintEmptyBuffer(t *testing.T) {
	buf, _ := lexString("")

	var sb strings.Builder
	buf.Print(&sb)
	if sb.Len() != 0 {
		t.Errorf("empty buffer must print nothing, got %q", sb.String())
	}
}
