package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"ember/internal/diag"
	"ember/internal/source"
)

// Pretty formats diagnostics for humans. It walks bag.Items() in order, so
// callers that want positional order should bag.Sort() first. Each diagnostic
// prints as
//
//	<path>:<line>:<col>: <SEVERITY> <CODE>: <message>
//
// followed by the offending source line with a caret underline, then any
// notes in the same location format.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	sevColor := map[diag.Severity]*color.Color{
		diag.SevInfo:    color.New(color.FgCyan),
		diag.SevWarning: color.New(color.FgYellow),
		diag.SevError:   color.New(color.FgRed, color.Bold),
	}

	for _, d := range bag.Items() {
		file := fs.Get(d.Primary.File)
		start, _ := fs.Resolve(d.Primary)

		sev := d.Severity.String()
		if opts.Color {
			if c, ok := sevColor[d.Severity]; ok {
				sev = c.Sprint(sev)
			}
		}

		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
			displayPath(file.Path, opts.PathMode),
			start.Line, start.Col,
			sev, d.Code.ID(), d.Message)

		writeSourceContext(w, fs, file, d.Primary, opts)

		if opts.ShowNotes {
			for _, note := range d.Notes {
				noteFile := fs.Get(note.Span.File)
				noteStart, _ := fs.Resolve(note.Span)
				fmt.Fprintf(w, "  note: %s:%d:%d: %s\n",
					displayPath(noteFile.Path, opts.PathMode),
					noteStart.Line, noteStart.Col, note.Msg)
			}
		}
	}
}

// writeSourceContext prints the line the span starts on plus a caret marker
// underneath. Multi-line spans are underlined only to the end of the first
// line.
func writeSourceContext(w io.Writer, fs *source.FileSet, file *source.File, span source.Span, opts PrettyOpts) {
	start, end := fs.Resolve(span)
	line := file.GetLine(start.Line)
	if line == "" && span.Empty() {
		return
	}

	fmt.Fprintf(w, "    %s\n", line)

	underlineEnd := end.Col
	if end.Line != start.Line {
		underlineEnd = uint32(len(line)) + 1
	}
	width := int(underlineEnd) - int(start.Col)
	if width < 1 {
		width = 1
	}

	marker := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		marker = color.New(color.FgGreen, color.Bold).Sprint(marker)
	}
	fmt.Fprintf(w, "    %s%s\n", strings.Repeat(" ", int(start.Col)-1), marker)
}
