// Package driver wires file loading, lexing, and diagnostics into the
// operations the CLI exposes.
package driver

import (
	"ember/internal/diag"
	"ember/internal/lexer"
	"ember/internal/source"
)

// DefaultMaxDiagnostics bounds the bag when the caller does not care.
const DefaultMaxDiagnostics = 100

// TokenizeResult bundles everything produced by tokenizing one file.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Buffer  *lexer.Buffer
	Bag     *diag.Bag
}

// Tokenize loads a file from disk and lexes it.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenizeFile(fs, fileID, maxDiagnostics), nil
}

// TokenizeBytes lexes in-memory content under a display name. Used for tests
// and stdin input.
func TokenizeBytes(name string, content []byte, maxDiagnostics int) *TokenizeResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return tokenizeFile(fs, fileID, maxDiagnostics)
}

func tokenizeFile(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) *TokenizeResult {
	if maxDiagnostics <= 0 {
		maxDiagnostics = DefaultMaxDiagnostics
	}
	file := fs.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)

	buf := lexer.Lex(file, lexer.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Buffer:  buf,
		Bag:     bag,
	}
}
