package lexer

import (
	"fmt"
	"io"
	"strconv"

	"ember/internal/token"
)

// printWidths holds the column widths needed to align a token dump. Widths
// are widened across every printed token so numeric fields line up.
type printWidths struct {
	index  int
	kind   int
	line   int
	column int
	indent int
}

func (w *printWidths) widen(other printWidths) {
	w.index = max(w.index, other.index)
	w.kind = max(w.kind, other.kind)
	w.line = max(w.line, other.line)
	w.column = max(w.column, other.column)
	w.indent = max(w.indent, other.indent)
}

func decimalWidth(n int) int {
	return len(strconv.Itoa(n))
}

func (b *Buffer) tokenPrintWidths(t Token) printWidths {
	return printWidths{
		index:  decimalWidth(len(b.tokenInfos)),
		kind:   len(b.Kind(t).Name()),
		line:   decimalWidth(b.LineNumber(b.TokenLine(t))),
		column: decimalWidth(b.ColumnNumber(t)),
		indent: decimalWidth(b.IndentColumnNumber(b.TokenLine(t))),
	}
}

// Print writes the whole buffer in the debug dump format, one token per
// line, with numeric fields aligned to the widest value present.
func (b *Buffer) Print(w io.Writer) {
	if len(b.tokenInfos) == 0 {
		return
	}

	widths := printWidths{index: decimalWidth(len(b.tokenInfos))}
	for _, t := range b.Tokens() {
		widths.widen(b.tokenPrintWidths(t))
	}

	for _, t := range b.Tokens() {
		b.printToken(w, t, widths)
		fmt.Fprintln(w)
	}
}

// PrintToken writes a single token in the dump format with self-sized
// widths.
func (b *Buffer) PrintToken(w io.Writer, t Token) {
	b.printToken(w, t, printWidths{})
}

func (b *Buffer) printToken(w io.Writer, t Token, widths printWidths) {
	widths.widen(b.tokenPrintWidths(t))
	info := &b.tokenInfos[t]

	fmt.Fprintf(w, "token: { index: %*d, kind: %*s, line: %*d, column: %*d, indent: %*d, spelling: '%s'",
		widths.index, int(t),
		widths.kind+2, "'"+info.Kind.Name()+"'",
		widths.line, b.LineNumber(info.Line),
		widths.column, b.ColumnNumber(t),
		widths.indent, b.IndentColumnNumber(info.Line),
		b.TokenText(t))

	switch {
	case info.Kind == token.Identifier:
		fmt.Fprintf(w, ", identifier: %d", int(info.ID))
	case info.Kind.IsOpeningSymbol():
		fmt.Fprintf(w, ", closing_token: %d", int(info.Partner))
	case info.Kind.IsClosingSymbol():
		fmt.Fprintf(w, ", opening_token: %d", int(info.Partner))
	}

	if info.IsRecovery {
		fmt.Fprint(w, ", recovery: true")
	}

	fmt.Fprint(w, " }")
}
