// Package parser turns a token stream into an *ast.Program.
//
// The parser is recursive descent with a precedence table for binary
// operators. A syntax error abandons the current top-level declaration:
// one error is recorded at the offending token and the parser skips ahead to
// the next plausible declaration boundary, so a single file can report
// several independent mistakes.
package parser
