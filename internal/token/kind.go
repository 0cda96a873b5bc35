package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Error marks a span of source that could not be lexed.
	Error Kind = iota
	// Identifier represents an interned identifier token.
	Identifier
	// IntegerLiteral represents an integer literal token.
	IntegerLiteral
	// DocComment represents a `/// ` documentation comment token.
	DocComment

	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBracket represents the left square bracket token.
	LBracket // [
	// RBracket represents the right square bracket token.
	RBracket // ]
	// LBrace represents the left curly brace token.
	LBrace // {
	// RBrace represents the right curly brace token.
	RBrace // }
	// Arrow represents the arrow operator token.
	Arrow // ->
	// FatArrow represents the fat arrow operator token.
	FatArrow // =>
	// EqEq represents the equality operator token.
	EqEq // ==
	// BangEq represents the inequality operator token.
	BangEq // !=
	// LtEq represents the less-or-equal operator token.
	LtEq // <=
	// GtEq represents the greater-or-equal operator token.
	GtEq // >=
	// AndAnd represents the logical-and operator token.
	AndAnd // &&
	// OrOr represents the logical-or operator token.
	OrOr // ||
	// ColonColon represents the path separator token.
	ColonColon // ::
	// DotDot represents the range operator token.
	DotDot // ..
	// PlusAssign represents the add-assign operator token.
	PlusAssign // +=
	// MinusAssign represents the subtract-assign operator token.
	MinusAssign // -=
	// StarAssign represents the multiply-assign operator token.
	StarAssign // *=
	// SlashAssign represents the divide-assign operator token.
	SlashAssign // /=
	// Assign represents the assignment operator token.
	Assign // =
	// Lt represents the less-than operator token.
	Lt // <
	// Gt represents the greater-than operator token.
	Gt // >
	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /
	// Percent represents the percent operator token.
	Percent // %
	// Bang represents the bang operator token.
	Bang // !
	// Amp represents the ampersand operator token.
	Amp // &
	// Pipe represents the pipe operator token.
	Pipe // |
	// Caret represents the caret operator token.
	Caret // ^
	// Tilde represents the tilde operator token.
	Tilde // ~
	// Question represents the question operator token.
	Question // ?
	// At represents the at sign token.
	At // @
	// Dot represents the dot token.
	Dot // .
	// Comma represents the comma token.
	Comma // ,
	// Colon represents the colon token.
	Colon // :
	// Semicolon represents the semicolon token.
	Semicolon // ;

	// KwFn represents the 'fn' keyword.
	KwFn // fn
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwVar represents the 'var' keyword.
	KwVar // var
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwIn represents the 'in' keyword.
	KwIn // in
	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwContinue represents the 'continue' keyword.
	KwContinue // continue
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwMatch represents the 'match' keyword.
	KwMatch // match
	// KwImport represents the 'import' keyword.
	KwImport // import
	// KwAs represents the 'as' keyword.
	KwAs // as
	// KwPub represents the 'pub' keyword.
	KwPub // pub
	// KwType represents the 'type' keyword.
	KwType // type
	// KwStruct represents the 'struct' keyword.
	KwStruct // struct
	// KwEnum represents the 'enum' keyword.
	KwEnum // enum
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwFalse represents the 'false' keyword.
	KwFalse // false

	kindCount
)

type kindClass uint8

const (
	classOther kindClass = iota
	classSymbol
	classKeyword
)

type kindInfo struct {
	name     string
	spelling string
	class    kindClass
	opening  bool
	closing  bool
	partner  Kind
}

var kindInfos = [kindCount]kindInfo{
	Error:          {name: "Error"},
	Identifier:     {name: "Identifier"},
	IntegerLiteral: {name: "IntegerLiteral"},
	DocComment:     {name: "DocComment"},

	LParen:   {name: "LParen", spelling: "(", class: classSymbol, opening: true, partner: RParen},
	RParen:   {name: "RParen", spelling: ")", class: classSymbol, closing: true, partner: LParen},
	LBracket: {name: "LBracket", spelling: "[", class: classSymbol, opening: true, partner: RBracket},
	RBracket: {name: "RBracket", spelling: "]", class: classSymbol, closing: true, partner: LBracket},
	LBrace:   {name: "LBrace", spelling: "{", class: classSymbol, opening: true, partner: RBrace},
	RBrace:   {name: "RBrace", spelling: "}", class: classSymbol, closing: true, partner: LBrace},

	Arrow:       {name: "Arrow", spelling: "->", class: classSymbol},
	FatArrow:    {name: "FatArrow", spelling: "=>", class: classSymbol},
	EqEq:        {name: "EqEq", spelling: "==", class: classSymbol},
	BangEq:      {name: "BangEq", spelling: "!=", class: classSymbol},
	LtEq:        {name: "LtEq", spelling: "<=", class: classSymbol},
	GtEq:        {name: "GtEq", spelling: ">=", class: classSymbol},
	AndAnd:      {name: "AndAnd", spelling: "&&", class: classSymbol},
	OrOr:        {name: "OrOr", spelling: "||", class: classSymbol},
	ColonColon:  {name: "ColonColon", spelling: "::", class: classSymbol},
	DotDot:      {name: "DotDot", spelling: "..", class: classSymbol},
	PlusAssign:  {name: "PlusAssign", spelling: "+=", class: classSymbol},
	MinusAssign: {name: "MinusAssign", spelling: "-=", class: classSymbol},
	StarAssign:  {name: "StarAssign", spelling: "*=", class: classSymbol},
	SlashAssign: {name: "SlashAssign", spelling: "/=", class: classSymbol},
	Assign:      {name: "Assign", spelling: "=", class: classSymbol},
	Lt:          {name: "Lt", spelling: "<", class: classSymbol},
	Gt:          {name: "Gt", spelling: ">", class: classSymbol},
	Plus:        {name: "Plus", spelling: "+", class: classSymbol},
	Minus:       {name: "Minus", spelling: "-", class: classSymbol},
	Star:        {name: "Star", spelling: "*", class: classSymbol},
	Slash:       {name: "Slash", spelling: "/", class: classSymbol},
	Percent:     {name: "Percent", spelling: "%", class: classSymbol},
	Bang:        {name: "Bang", spelling: "!", class: classSymbol},
	Amp:         {name: "Amp", spelling: "&", class: classSymbol},
	Pipe:        {name: "Pipe", spelling: "|", class: classSymbol},
	Caret:       {name: "Caret", spelling: "^", class: classSymbol},
	Tilde:       {name: "Tilde", spelling: "~", class: classSymbol},
	Question:    {name: "Question", spelling: "?", class: classSymbol},
	At:          {name: "At", spelling: "@", class: classSymbol},
	Dot:         {name: "Dot", spelling: ".", class: classSymbol},
	Comma:       {name: "Comma", spelling: ",", class: classSymbol},
	Colon:       {name: "Colon", spelling: ":", class: classSymbol},
	Semicolon:   {name: "Semicolon", spelling: ";", class: classSymbol},

	KwFn:       {name: "KwFn", spelling: "fn", class: classKeyword},
	KwLet:      {name: "KwLet", spelling: "let", class: classKeyword},
	KwVar:      {name: "KwVar", spelling: "var", class: classKeyword},
	KwConst:    {name: "KwConst", spelling: "const", class: classKeyword},
	KwIf:       {name: "KwIf", spelling: "if", class: classKeyword},
	KwElse:     {name: "KwElse", spelling: "else", class: classKeyword},
	KwWhile:    {name: "KwWhile", spelling: "while", class: classKeyword},
	KwFor:      {name: "KwFor", spelling: "for", class: classKeyword},
	KwIn:       {name: "KwIn", spelling: "in", class: classKeyword},
	KwBreak:    {name: "KwBreak", spelling: "break", class: classKeyword},
	KwContinue: {name: "KwContinue", spelling: "continue", class: classKeyword},
	KwReturn:   {name: "KwReturn", spelling: "return", class: classKeyword},
	KwMatch:    {name: "KwMatch", spelling: "match", class: classKeyword},
	KwImport:   {name: "KwImport", spelling: "import", class: classKeyword},
	KwAs:       {name: "KwAs", spelling: "as", class: classKeyword},
	KwPub:      {name: "KwPub", spelling: "pub", class: classKeyword},
	KwType:     {name: "KwType", spelling: "type", class: classKeyword},
	KwStruct:   {name: "KwStruct", spelling: "struct", class: classKeyword},
	KwEnum:     {name: "KwEnum", spelling: "enum", class: classKeyword},
	KwTrue:     {name: "KwTrue", spelling: "true", class: classKeyword},
	KwFalse:    {name: "KwFalse", spelling: "false", class: classKeyword},
}

// Name returns the tag name of the kind, e.g. "LParen".
func (k Kind) Name() string {
	if k >= kindCount {
		return "Unknown"
	}
	return kindInfos[k].name
}

// String implements fmt.Stringer using the tag name.
func (k Kind) String() string { return k.Name() }

// FixedSpelling returns the spelling of a symbol or keyword kind, or ""
// for kinds whose text lives in the source (Identifier, IntegerLiteral,
// DocComment, Error).
func (k Kind) FixedSpelling() string {
	if k >= kindCount {
		return ""
	}
	return kindInfos[k].spelling
}

// IsSymbol reports whether the kind has a fixed operator/punctuation spelling.
func (k Kind) IsSymbol() bool {
	return k < kindCount && kindInfos[k].class == classSymbol
}

// IsKeyword reports whether the kind is a language keyword.
func (k Kind) IsKeyword() bool {
	return k < kindCount && kindInfos[k].class == classKeyword
}

// IsOpeningSymbol reports whether the kind opens a bracket group.
func (k Kind) IsOpeningSymbol() bool {
	return k < kindCount && kindInfos[k].opening
}

// IsClosingSymbol reports whether the kind closes a bracket group.
func (k Kind) IsClosingSymbol() bool {
	return k < kindCount && kindInfos[k].closing
}

// ClosingSymbol returns the closing partner of an opening bracket kind.
// For every other kind it returns Error, which closes nothing; passing it to
// group reconciliation therefore force-closes all open groups.
func (k Kind) ClosingSymbol() Kind {
	if k.IsOpeningSymbol() {
		return kindInfos[k].partner
	}
	return Error
}

// OpeningSymbol returns the opening partner of a closing bracket kind.
func (k Kind) OpeningSymbol() Kind {
	if k.IsClosingSymbol() {
		return kindInfos[k].partner
	}
	return Error
}
