package lexer

import (
	"bytes"

	"ember/internal/diag"
	"ember/internal/source"
	"ember/internal/token"
)

// scanner is the transient per-run state machine. It exclusively owns the
// buffer under construction, the current line/column, the indent flag, and
// the stack of open bracket tokens; nothing here is shared between runs.
type scanner struct {
	buf      *Buffer
	reporter diag.Reporter

	cursor      Cursor
	currentLine Line
	column      int32
	setIndent   bool

	openGroups []Token
}

// Lex scans the whole file into a fresh Buffer in a single left-to-right
// pass. It never fails: malformed spans become Error tokens, every bracket
// group is closed (synthetically if needed), and the buffer's error flag
// records whether any diagnostic fired.
func Lex(file *source.File, opts Options) *Buffer {
	buf := newBuffer(file)
	s := &scanner{
		buf:      buf,
		reporter: opts.reporter(),
		cursor:   NewCursor(file),
	}
	s.currentLine = buf.addLine(LineInfo{Start: 0, Length: -1, Indent: -1})

	for s.skipWhitespace() {
		// Each time non-whitespace is found, try every token strategy in
		// priority order. Exactly one of them always consumes something.
		if s.lexSymbol() {
			continue
		}
		if s.lexKeywordOrIdentifier() {
			continue
		}
		if s.lexIntegerLiteral() {
			continue
		}
		s.lexError()
	}

	// Force-close everything still open; Error closes nothing, so the whole
	// stack drains.
	s.closeInvalidOpenGroups(token.Error)
	return buf
}

var commentMarker = []byte("//")
var docCommentMarker = []byte("/// ")

// skipWhitespace advances past spaces, tabs, and line comments, maintaining
// line records along the way. Returns true when non-whitespace content
// remains, false at end of input (after closing the final line).
func (s *scanner) skipWhitespace() bool {
	for !s.cursor.EOF() {
		if bytes.HasPrefix(s.cursor.Rest(), commentMarker) {
			// A `/// ` comment before the line's first token is a doc
			// comment, preserved as a token and later attached to the
			// construct it documents. Every other comment is whitespace.
			if !s.setIndent && bytes.HasPrefix(s.cursor.Rest(), docCommentMarker) {
				s.lineInfo().Indent = s.column
				s.setIndent = true
				s.buf.addToken(TokenInfo{
					Kind:    token.DocComment,
					Line:    s.currentLine,
					Column:  s.column,
					Partner: NoToken,
				})
			}
			for !s.cursor.EOF() && s.cursor.Peek() != '\n' {
				s.column++
				s.cursor.Bump()
			}
			if s.cursor.EOF() {
				break
			}
		}

		switch s.cursor.Peek() {
		case '\n':
			s.lineInfo().Length = s.column
			s.cursor.Bump()
			// A trailing newline must not open an empty line.
			if s.cursor.EOF() {
				return false
			}
			s.currentLine = s.buf.addLine(LineInfo{
				Start:  s.cursor.Off,
				Length: -1,
				Indent: -1,
			})
			s.column = 0
			s.setIndent = false

		case ' ', '\t':
			s.column++
			s.cursor.Bump()

		default:
			return true
		}
	}

	s.lineInfo().Length = s.column
	return false
}

// closeInvalidOpenGroups pops every open group that cannot stay open across
// the closing symbol kind, synthesizing a linked recovery closer for each.
// Passing Error (which closes nothing) drains the whole stack.
func (s *scanner) closeInvalidOpenGroups(kind token.Kind) {
	if !kind.IsClosingSymbol() && kind != token.Error {
		return
	}

	here := s.cursor.SpanFrom(s.cursor.Mark())
	for len(s.openGroups) > 0 {
		opening := s.openGroups[len(s.openGroups)-1]
		openingKind := s.buf.tokenInfos[opening].Kind
		if kind == openingKind.ClosingSymbol() {
			return
		}

		s.openGroups = s.openGroups[:len(s.openGroups)-1]
		s.reportMismatchedClosing(here)

		closing := s.buf.addToken(TokenInfo{
			Kind:       openingKind.ClosingSymbol(),
			Line:       s.currentLine,
			Column:     s.column,
			IsRecovery: true,
			Partner:    opening,
		})
		s.buf.tokenInfos[opening].Partner = closing
	}
}

func (s *scanner) lineInfo() *LineInfo {
	return &s.buf.lineInfos[s.currentLine]
}

func (s *scanner) captureIndent() {
	if !s.setIndent {
		s.lineInfo().Indent = s.column
		s.setIndent = true
	}
}
