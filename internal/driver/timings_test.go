package driver_test

import (
	"strings"
	"testing"

	"ember/internal/diag"
	"ember/internal/driver"
	"ember/internal/observ"
)

func TestAppendTimingDiagnostic(t *testing.T) {
	timer := observ.NewTimer()
	idx := timer.Begin("lex")
	timer.End(idx, "")

	bag := diag.NewBag(4)
	driver.AppendTimingDiagnostic(bag, "x.em", timer.Report())

	if bag.Len() != 1 {
		t.Fatalf("bag.Len() = %d, want 1", bag.Len())
	}
	d := bag.Items()[0]
	if d.Code != diag.ObsTimings || d.Severity != diag.SevInfo {
		t.Errorf("diagnostic = %+v", d)
	}
	if !strings.Contains(d.Message, "x.em") {
		t.Errorf("message = %q", d.Message)
	}
	if len(d.Notes) != 1 || !strings.Contains(d.Notes[0].Msg, "total_ms") {
		t.Errorf("notes = %+v", d.Notes)
	}
}

func TestAppendTimingDiagnosticGrowsFullBag(t *testing.T) {
	bag := diag.NewBag(1)
	bag.Add(diag.Diagnostic{Severity: diag.SevError, Code: diag.LexUnrecognizedCharacters})

	driver.AppendTimingDiagnostic(bag, "", observ.Report{})
	if bag.Len() != 2 {
		t.Errorf("timing report dropped: len = %d", bag.Len())
	}
}
