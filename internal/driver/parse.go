package driver

import (
	"htms/internal/ast"
	"htms/internal/diag"
	"htms/internal/parser"
	"htms/internal/source"
	"htms/internal/token"
)

type ParseResult struct {
	FileSet     *source.FileSet
	File        *source.File
	Tokens      []token.Token
	Program     *ast.Program // nil when scanning failed
	Diagnostics []diag.Diagnostic
}

// Parse loads, scans and parses path. Scanner errors stop before parsing,
// as in Compile.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	tr, err := Tokenize(path, maxDiagnostics)
	if err != nil {
		return nil, err
	}
	res := &ParseResult{
		FileSet:     tr.FileSet,
		File:        tr.File,
		Tokens:      tr.Tokens,
		Diagnostics: tr.Diagnostics,
	}
	if len(tr.Diagnostics) > 0 {
		return res, nil
	}
	prog, errs := parser.ParseWithOptions(tr.Tokens, parser.Options{MaxErrors: maxDiagnostics})
	res.Program = prog
	res.Diagnostics = ParseDiagnostics(errs)
	return res, nil
}
