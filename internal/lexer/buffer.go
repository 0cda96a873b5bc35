package lexer

import (
	"math/big"

	"ember/internal/source"
	"ember/internal/token"
)

// Token is a dense index into a Buffer's token table. Tokens are appended in
// scan order, so handle order is position order.
type Token int32

// Line is a dense index into a Buffer's line table.
type Line int32

// Identifier is a dense index into a Buffer's identifier table.
type Identifier int32

// NoToken marks an absent cross-reference. Every bracket token's Partner is
// a real token once lexing finishes.
const NoToken Token = -1

// LineInfo describes one newline-delimited segment of source.
type LineInfo struct {
	// Start is the byte offset of the line's first character.
	Start uint32
	// Length in bytes, excluding the newline; -1 until the line is closed.
	Length int32
	// Indent is the 0-based column of the first token lexed on the line;
	// -1 until a token sets it.
	Indent int32
}

// TokenInfo describes one token. The payload fields are kind-dependent:
// ID for Identifier, LiteralIndex for IntegerLiteral, ErrorLength for Error,
// Partner for bracket kinds.
type TokenInfo struct {
	Kind         token.Kind
	Line         Line
	Column       int32 // 0-based
	IsRecovery   bool
	ID           Identifier
	LiteralIndex int32
	ErrorLength  int32
	Partner      Token
}

// IdentifierInfo stores the canonical text of one interned identifier.
type IdentifierInfo struct {
	Text string
}

// Buffer is the token store produced by one lexing run: append-only tables
// of lines, tokens, interned identifiers, and integer literal values. After
// Lex returns it must be treated as read-only; it is then safe to share
// across goroutines without synchronization.
type Buffer struct {
	file *source.File

	lineInfos       []LineInfo
	tokenInfos      []TokenInfo
	identifierInfos []IdentifierInfo
	identifierMap   map[string]Identifier
	intLiterals     []*big.Int

	hasErrors bool
}

func newBuffer(file *source.File) *Buffer {
	return &Buffer{
		file:          file,
		identifierMap: make(map[string]Identifier),
	}
}

// File returns the source file this buffer was lexed from.
func (b *Buffer) File() *source.File { return b.file }

// HasErrors reports whether any diagnostic fired during lexing. The flag is
// monotonic; once set, downstream phases must not assume well-formed input,
// though the buffer's structural invariants still hold.
func (b *Buffer) HasErrors() bool { return b.hasErrors }

// NumTokens returns the number of tokens in scan order.
func (b *Buffer) NumTokens() int { return len(b.tokenInfos) }

// NumLines returns the number of lines seen.
func (b *Buffer) NumLines() int { return len(b.lineInfos) }

// NumIdentifiers returns the number of distinct identifiers interned.
func (b *Buffer) NumIdentifiers() int { return len(b.identifierInfos) }

// Tokens returns every token handle in position order.
func (b *Buffer) Tokens() []Token {
	out := make([]Token, len(b.tokenInfos))
	for i := range out {
		out[i] = Token(i)
	}
	return out
}

// Kind returns the token's kind tag.
func (b *Buffer) Kind(t Token) token.Kind {
	return b.tokenInfos[t].Kind
}

// TokenLine returns the line owning the token.
func (b *Buffer) TokenLine(t Token) Line {
	return b.tokenInfos[t].Line
}

// LineNumber returns the 1-based number of a line.
func (b *Buffer) LineNumber(l Line) int {
	return int(l) + 1
}

// ColumnNumber returns the 1-based column number of the token.
func (b *Buffer) ColumnNumber(t Token) int {
	return int(b.tokenInfos[t].Column) + 1
}

// IndentColumnNumber returns the 1-based indent column of a line, or 0 when
// no token ever set the line's indent.
func (b *Buffer) IndentColumnNumber(l Line) int {
	return int(b.lineInfos[l].Indent) + 1
}

// LineStart returns the starting byte offset of a line.
func (b *Buffer) LineStart(l Line) uint32 {
	return b.lineInfos[l].Start
}

// LineLength returns the byte length of a line, or -1 if the line was never
// closed (cannot happen once lexing finishes).
func (b *Buffer) LineLength(l Line) int32 {
	return b.lineInfos[l].Length
}

// TokenText returns the exact source text of the token. Fixed-spelling kinds
// come from the registry; Identifier, IntegerLiteral, DocComment, and Error
// tokens refer back to the original source, so spelling oddities like radix
// prefixes and digit separators round-trip for display.
func (b *Buffer) TokenText(t Token) string {
	info := &b.tokenInfos[t]
	if spelling := info.Kind.FixedSpelling(); spelling != "" {
		return spelling
	}

	lineInfo := &b.lineInfos[info.Line]
	start := int64(lineInfo.Start) + int64(info.Column)

	switch info.Kind {
	case token.Error:
		return string(b.file.Content[start : start+int64(info.ErrorLength)])
	case token.DocComment:
		stop := int64(lineInfo.Start) + int64(lineInfo.Length)
		return string(b.file.Content[start:stop])
	case token.IntegerLiteral:
		return string(takeLeadingIntegerLiteral(b.file.Content[start:]))
	case token.Identifier:
		return b.IdentifierText(info.ID)
	}
	return ""
}

// TokenSpan returns the byte span of the token in its file.
func (b *Buffer) TokenSpan(t Token) source.Span {
	info := &b.tokenInfos[t]
	start := b.lineInfos[info.Line].Start + uint32(info.Column)
	return source.Span{
		File:  b.file.ID,
		Start: start,
		End:   start + uint32(len(b.TokenText(t))),
	}
}

// GetIdentifier returns the identifier handle of an Identifier token.
func (b *Buffer) GetIdentifier(t Token) Identifier {
	return b.tokenInfos[t].ID
}

// IdentifierText returns the canonical text of an interned identifier.
func (b *Buffer) IdentifierText(id Identifier) string {
	return b.identifierInfos[id].Text
}

// IntegerLiteralValue returns the arbitrary-precision value of an
// IntegerLiteral token, or nil for any other kind. The returned value must
// not be mutated.
func (b *Buffer) IntegerLiteralValue(t Token) *big.Int {
	info := b.tokenInfos[t]
	if info.Kind != token.IntegerLiteral {
		return nil
	}
	return b.intLiterals[info.LiteralIndex]
}

// MatchedClosingToken returns the closing partner of an opening bracket
// token. After lexing, every opening bracket has one (possibly synthetic).
func (b *Buffer) MatchedClosingToken(opening Token) Token {
	return b.tokenInfos[opening].Partner
}

// MatchedOpeningToken returns the opening partner of a closing bracket token.
func (b *Buffer) MatchedOpeningToken(closing Token) Token {
	return b.tokenInfos[closing].Partner
}

// IsRecoveryToken reports whether the token was synthesized by error
// recovery rather than lexed from source.
func (b *Buffer) IsRecoveryToken(t Token) bool {
	return b.tokenInfos[t].IsRecovery
}

func (b *Buffer) addLine(info LineInfo) Line {
	b.lineInfos = append(b.lineInfos, info)
	return Line(len(b.lineInfos) - 1)
}

func (b *Buffer) addToken(info TokenInfo) Token {
	b.tokenInfos = append(b.tokenInfos, info)
	return Token(len(b.tokenInfos) - 1)
}

// internIdentifier maps spelling to handle, allocating on first sight.
// Interning is a pure function of spelling for the buffer's lifetime.
func (b *Buffer) internIdentifier(text []byte) Identifier {
	if id, ok := b.identifierMap[string(text)]; ok {
		return id
	}
	// Copy so the handle does not alias the source buffer.
	cpy := string(text)
	id := Identifier(len(b.identifierInfos))
	b.identifierInfos = append(b.identifierInfos, IdentifierInfo{Text: cpy})
	b.identifierMap[cpy] = id
	return id
}
