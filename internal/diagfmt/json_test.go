package diagfmt_test

import (
	"encoding/json"
	"strings"
	"testing"

	"ember/internal/diagfmt"
)

func TestJSONShape(t *testing.T) {
	fs, _, bag := lexVirtual(t, "0x")

	var sb strings.Builder
	err := diagfmt.JSON(&sb, bag, fs, diagfmt.JSONOpts{IncludePositions: true})
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var out diagfmt.DiagnosticsOutput
	if err := json.Unmarshal([]byte(sb.String()), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("count = %d, diagnostics = %d, want 1/1", out.Count, len(out.Diagnostics))
	}

	d := out.Diagnostics[0]
	if d.Code != "LEX1003" {
		t.Errorf("code = %q, want LEX1003", d.Code)
	}
	if d.Severity != "ERROR" {
		t.Errorf("severity = %q, want ERROR", d.Severity)
	}
	if d.Category != "syntax-invalid-number" {
		t.Errorf("category = %q", d.Category)
	}
	if d.Location.File != "sample.em" {
		t.Errorf("file = %q", d.Location.File)
	}
	if d.Location.StartLine != 1 || d.Location.StartCol != 1 {
		t.Errorf("position = %d:%d, want 1:1", d.Location.StartLine, d.Location.StartCol)
	}
}

func TestJSONMaxTruncatesOutput(t *testing.T) {
	fs, _, bag := lexVirtual(t, "0x 0x 0x")

	var sb strings.Builder
	if err := diagfmt.JSON(&sb, bag, fs, diagfmt.JSONOpts{Max: 2}); err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var out diagfmt.DiagnosticsOutput
	if err := json.Unmarshal([]byte(sb.String()), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if out.Count != 2 {
		t.Errorf("count = %d, want 2 after truncation", out.Count)
	}
	if bag.Len() != 3 {
		t.Errorf("bag.Len() = %d, truncation must not touch the bag", bag.Len())
	}
}

func TestTokensJSON(t *testing.T) {
	fs, buf, _ := lexVirtual(t, "(x)")
	_ = fs

	var sb strings.Builder
	if err := diagfmt.TokensJSON(&sb, buf); err != nil {
		t.Fatalf("TokensJSON: %v", err)
	}

	var rows []diagfmt.TokenJSON
	if err := json.Unmarshal([]byte(sb.String()), &rows); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	if rows[0].Kind != "LParen" || rows[0].Closing == nil || *rows[0].Closing != 2 {
		t.Errorf("opening row: %+v", rows[0])
	}
	if rows[1].Kind != "Identifier" || rows[1].Identifier == nil || *rows[1].Identifier != 0 {
		t.Errorf("identifier row: %+v", rows[1])
	}
	if rows[2].Kind != "RParen" || rows[2].Opening == nil || *rows[2].Opening != 0 {
		t.Errorf("closing row: %+v", rows[2])
	}
	if rows[1].Spelling != "x" || rows[1].Column != 2 {
		t.Errorf("identifier spelling/column: %+v", rows[1])
	}
}
