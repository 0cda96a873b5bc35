package lexer

import (
	"ember/internal/diag"
)

// Options configures one lexing run.
type Options struct {
	// Reporter receives diagnostics in discovery order. May be nil; lexing
	// continues either way and the buffer's error flag is still set.
	Reporter diag.Reporter
}

func (opts Options) reporter() diag.Reporter {
	if opts.Reporter == nil {
		return diag.NopReporter{}
	}
	return opts.Reporter
}
