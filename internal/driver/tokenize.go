package driver

import (
	"fmt"
	"io"
	"os"

	"htms/internal/diag"
	"htms/internal/lexer"
	"htms/internal/source"
	"htms/internal/token"
)

// StdinPath names standard input on the command line.
const StdinPath = "-"

type TokenizeResult struct {
	FileSet     *source.FileSet
	File        *source.File
	Tokens      []token.Token
	Diagnostics []diag.Diagnostic
}

// Tokenize loads path ("-" for stdin) and scans it.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs, file, err := loadFile(path)
	if err != nil {
		return nil, err
	}
	tokens, errs := lexer.New(file.Content, lexer.Options{MaxErrors: maxDiagnostics}).Run()
	return &TokenizeResult{
		FileSet:     fs,
		File:        file,
		Tokens:      tokens,
		Diagnostics: LexDiagnostics(errs),
	}, nil
}

// loadFile reads a single source into a fresh FileSet.
func loadFile(path string) (*source.FileSet, *source.File, error) {
	fs := source.NewFileSet()
	if path == StdinPath {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		id := fs.AddVirtual("<stdin>", content)
		return fs, fs.Get(id), nil
	}
	id, err := fs.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return fs, fs.Get(id), nil
}
