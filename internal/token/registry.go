package token

import (
	"bytes"
	"sort"
)

// symbolsByLength lists every symbol kind ordered longest spelling first, so
// a prefix like "-" can never win against "->".
var symbolsByLength = buildSymbolOrder()

// symbolStartSet marks bytes that begin at least one symbol spelling.
var symbolStartSet = buildSymbolStartSet()

func buildSymbolOrder() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		if k.IsSymbol() {
			out = append(out, k)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i].FixedSpelling()) > len(out[j].FixedSpelling())
	})
	return out
}

func buildSymbolStartSet() [256]bool {
	var set [256]bool
	for k := Kind(0); k < kindCount; k++ {
		if k.IsSymbol() {
			set[k.FixedSpelling()[0]] = true
		}
	}
	return set
}

// MatchSymbol resolves the longest symbol spelling that prefixes rest.
// It reports false without consuming anything when no spelling matches.
func MatchSymbol(rest []byte) (Kind, bool) {
	for _, k := range symbolsByLength {
		if bytes.HasPrefix(rest, []byte(k.FixedSpelling())) {
			return k, true
		}
	}
	return Error, false
}

// StartsSymbol reports whether b begins any symbol spelling.
func StartsSymbol(b byte) bool {
	return symbolStartSet[b]
}

var keywords = buildKeywordIndex()

func buildKeywordIndex() map[string]Kind {
	out := make(map[string]Kind)
	for k := Kind(0); k < kindCount; k++ {
		if k.IsKeyword() {
			out[k.FixedSpelling()] = k
		}
	}
	return out
}

// LookupKeyword returns the keyword kind for an exact spelling.
// Keywords are case-sensitive; only the lowercase spellings are recognized.
func LookupKeyword(text string) (Kind, bool) {
	k, ok := keywords[text]
	return k, ok
}
