package lexer

import (
	"ember/internal/token"
)

// lexSymbol matches the longest fixed spelling at the current position.
// Returns false without consuming anything when no spelling matches.
func (s *scanner) lexSymbol() bool {
	kind, ok := token.MatchSymbol(s.cursor.Rest())
	if !ok {
		return false
	}

	s.captureIndent()

	// Reconcile the group stack before the closer itself is appended, so
	// synthetic recovery closers precede it in the token order.
	s.closeInvalidOpenGroups(kind)

	mark := s.cursor.Mark()
	tok := s.buf.addToken(TokenInfo{
		Kind:    kind,
		Line:    s.currentLine,
		Column:  s.column,
		Partner: NoToken,
	})
	spellingLen := uint32(len(kind.FixedSpelling()))
	s.column += int32(spellingLen)
	s.cursor.Advance(spellingLen)

	if kind.IsOpeningSymbol() {
		s.openGroups = append(s.openGroups, tok)
		return true
	}

	if !kind.IsClosingSymbol() {
		return true
	}

	// A closer with nothing left open cannot be matched: rewrite it in
	// place to an error span. The symbol is still consumed.
	if len(s.openGroups) == 0 {
		info := &s.buf.tokenInfos[tok]
		info.Kind = token.Error
		info.ErrorLength = int32(spellingLen)
		info.Partner = NoToken
		s.reportUnmatchedClosing(s.cursor.SpanFrom(mark))
		return true
	}

	opening := s.openGroups[len(s.openGroups)-1]
	s.openGroups = s.openGroups[:len(s.openGroups)-1]
	s.buf.tokenInfos[opening].Partner = tok
	s.buf.tokenInfos[tok].Partner = opening
	return true
}
