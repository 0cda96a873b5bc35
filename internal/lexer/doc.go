// Package lexer turns the source text of one compilation unit into a Buffer:
// an ordered, randomly-indexable token stream annotated with source
// positions.
//
// Lexing never aborts. Malformed spans become Error tokens, bracket groups
// are always balanced (with synthetic recovery closers when needed), and a
// monotonic error flag on the Buffer records that diagnostics fired. One run
// is single-threaded and single-pass; independent files may be lexed
// concurrently with separate Buffer/scanner pairs.
package lexer
