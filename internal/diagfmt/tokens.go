package diagfmt

import (
	"encoding/json"
	"io"

	"ember/internal/lexer"
	"ember/internal/token"
)

// TokenJSON is one token row in JSON token output.
type TokenJSON struct {
	Index      int    `json:"index"`
	Kind       string `json:"kind"`
	Line       int    `json:"line"`
	Column     int    `json:"column"`
	Indent     int    `json:"indent"`
	Spelling   string `json:"spelling"`
	Identifier *int   `json:"identifier,omitempty"`
	Value      string `json:"value,omitempty"`
	Closing    *int   `json:"closing_token,omitempty"`
	Opening    *int   `json:"opening_token,omitempty"`
	Recovery   bool   `json:"recovery,omitempty"`
}

// Tokens writes the aligned human-readable token dump.
func Tokens(w io.Writer, buf *lexer.Buffer) {
	buf.Print(w)
}

// TokensJSON writes every token as a JSON array entry, mirroring the fields
// of the pretty dump.
func TokensJSON(w io.Writer, buf *lexer.Buffer) error {
	output := make([]TokenJSON, 0, buf.NumTokens())

	for _, tok := range buf.Tokens() {
		kind := buf.Kind(tok)
		line := buf.TokenLine(tok)

		row := TokenJSON{
			Index:    int(tok),
			Kind:     kind.Name(),
			Line:     buf.LineNumber(line),
			Column:   buf.ColumnNumber(tok),
			Indent:   buf.IndentColumnNumber(line),
			Spelling: buf.TokenText(tok),
			Recovery: buf.IsRecoveryToken(tok),
		}

		switch {
		case kind == token.Identifier:
			id := int(buf.GetIdentifier(tok))
			row.Identifier = &id
		case kind.IsOpeningSymbol():
			if closing := buf.MatchedClosingToken(tok); closing != lexer.NoToken {
				c := int(closing)
				row.Closing = &c
			}
		case kind.IsClosingSymbol():
			if opening := buf.MatchedOpeningToken(tok); opening != lexer.NoToken {
				o := int(opening)
				row.Opening = &o
			}
		}

		if v := buf.IntegerLiteralValue(tok); v != nil {
			row.Value = v.String()
		}

		output = append(output, row)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
