package diag

import (
	"fmt"
)

// Code identifies one diagnostic kind. Numeric ranges are reserved per phase
// so later phases can slot in without renumbering (1000+ lexical, 2000+
// syntactic, 3000+ semantic, 9000+ infrastructure).
type Code uint16

const (
	// UnknownCode is the zero value fallback.
	UnknownCode Code = 0

	// LexUnmatchedClosing fires for a closing bracket with no open group.
	LexUnmatchedClosing Code = 1001
	// LexMismatchedClosing fires when a closing bracket does not match the
	// innermost open group.
	LexMismatchedClosing Code = 1002
	// LexEmptyDigitSequence fires for a numeric literal with no digits after
	// its base prefix.
	LexEmptyDigitSequence Code = 1003
	// LexInvalidDigit fires for a character outside the radix alphabet.
	LexInvalidDigit Code = 1004
	// LexInvalidDigitSeparator fires for '_' at the start or end of a digit
	// sequence, or doubled.
	LexInvalidDigitSeparator Code = 1005
	// LexIrregularDigitSeparators fires when separators break the grouping
	// stride.
	LexIrregularDigitSeparators Code = 1006
	// LexUnknownBaseSpecifier fires for '0' followed by an unrecognized base
	// letter.
	LexUnknownBaseSpecifier Code = 1007
	// LexUnrecognizedCharacters fires when no lexing strategy could consume
	// the input.
	LexUnrecognizedCharacters Code = 1008

	// IOLoadFileError fires when a source file cannot be read from disk.
	IOLoadFileError Code = 9001
	// ObsTimings carries phase timing reports as an informational entry.
	ObsTimings Code = 9101
)

var codeDescription = map[Code]string{
	UnknownCode:                 "unknown diagnostic",
	LexUnmatchedClosing:         "closing symbol without a corresponding opening symbol",
	LexMismatchedClosing:        "closing symbol does not match most recent opening symbol",
	LexEmptyDigitSequence:       "empty digit sequence in numeric literal",
	LexInvalidDigit:             "invalid digit in numeric literal",
	LexInvalidDigitSeparator:    "misplaced digit separator in numeric literal",
	LexIrregularDigitSeparators: "irregular digit separators in numeric literal",
	LexUnknownBaseSpecifier:     "unknown base specifier in numeric literal",
	LexUnrecognizedCharacters:   "unrecognized characters in source",
	IOLoadFileError:             "failed to load source file",
	ObsTimings:                  "phase timings",
}

// categoryNames give each code a short machine-readable grouping tag, stable
// across releases for tooling that filters on it.
var categoryNames = map[Code]string{
	LexUnmatchedClosing:         "syntax-balanced-delimiters",
	LexMismatchedClosing:        "syntax-balanced-delimiters",
	LexEmptyDigitSequence:       "syntax-invalid-number",
	LexInvalidDigit:             "syntax-invalid-number",
	LexInvalidDigitSeparator:    "syntax-invalid-number",
	LexIrregularDigitSeparators: "syntax-irregular-digit-separators",
	LexUnknownBaseSpecifier:     "syntax-invalid-number",
	LexUnrecognizedCharacters:   "syntax-unrecognized-characters",
}

// ID returns the short phase-prefixed identifier, e.g. "LEX1001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 9000 && ic < 9100:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 9100 && ic < 9200:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

// Category returns the machine-readable category tag, or "" when none is
// registered.
func (c Code) Category() string {
	return categoryNames[c]
}

// Title returns the human-readable summary of the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
