package lexer

import (
	"ember/internal/token"
)

// lexError is the fallback when no other strategy consumed anything. It
// swallows the maximal run of characters that cannot begin any token, as one
// Error token; at least one byte is always consumed so the scan makes
// forward progress.
func (s *scanner) lexError() {
	mark := s.cursor.Mark()
	errColumn := s.column

	rest := s.cursor.Rest()
	n := 0
	for n < len(rest) {
		c := rest[n]
		if isAlnum(c) || c == '_' || c == '\t' || c == '\n' || token.StartsSymbol(c) {
			break
		}
		n++
	}
	if n == 0 {
		n = 1
	}

	s.cursor.Advance(uint32(n))
	s.column += int32(n)

	s.buf.addToken(TokenInfo{
		Kind:        token.Error,
		Line:        s.currentLine,
		Column:      errColumn,
		ErrorLength: int32(n),
		Partner:     NoToken,
	})
	s.reportUnrecognizedCharacters(s.cursor.SpanFrom(mark))
}
