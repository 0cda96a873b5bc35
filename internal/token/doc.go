// Package token defines the closed set of lexical token kinds for ember and
// the static registry of fixed spellings.
// Invariants:
//   - Kind equality is by tag; spellings are presentation data.
//   - Every opening bracket kind names its required closing partner and vice
//     versa.
//   - Symbol matching is longest-spelling-first, so multi-character operators
//     are never shadowed by their single-character prefixes.
package token
