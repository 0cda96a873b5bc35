package lexer

import (
	"ember/internal/token"
)

// lexKeywordOrIdentifier consumes a maximal alphanumeric-or-underscore run
// starting with a letter or underscore, emitting a keyword kind on an exact
// registry match and an interned Identifier otherwise.
func (s *scanner) lexKeywordOrIdentifier() bool {
	b := s.cursor.Peek()
	if !isAlpha(b) && b != '_' {
		return false
	}

	s.captureIndent()

	rest := s.cursor.Rest()
	n := 0
	for n < len(rest) && (isAlnum(rest[n]) || rest[n] == '_') {
		n++
	}
	text := rest[:n]
	identColumn := s.column
	s.column += int32(n)
	s.cursor.Advance(uint32(n))

	if kind, ok := token.LookupKeyword(string(text)); ok {
		s.buf.addToken(TokenInfo{
			Kind:    kind,
			Line:    s.currentLine,
			Column:  identColumn,
			Partner: NoToken,
		})
		return true
	}

	s.buf.addToken(TokenInfo{
		Kind:    token.Identifier,
		Line:    s.currentLine,
		Column:  identColumn,
		ID:      s.buf.internIdentifier(text),
		Partner: NoToken,
	})
	return true
}
