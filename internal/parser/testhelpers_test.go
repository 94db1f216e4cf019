package parser_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"htms/internal/ast"
	"htms/internal/lexer"
	"htms/internal/parser"
	"htms/internal/source"
)

var ignoreLoc = cmpopts.IgnoreTypes(source.Location{})

func errorsSummary(errs []parser.ParseError) string {
	if len(errs) == 0 {
		return "<none>"
	}
	lines := make([]string, len(errs))
	for i, e := range errs {
		lines[i] = fmt.Sprintf("[%s] %s", e.Loc, e.Message)
	}
	return strings.Join(lines, "; ")
}

func parseWithErrors(t *testing.T, src string) (*ast.Program, []parser.ParseError) {
	t.Helper()
	toks, lexErrs := lexer.Tokenize([]byte(src))
	if len(lexErrs) != 0 {
		t.Fatalf("lexical errors in %q: %v", src, lexErrs)
	}
	return parser.Parse(toks)
}

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, errs := parseWithErrors(t, src)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors for %q: %s", src, errorsSummary(errs))
	}
	return prog
}

// firstBody returns the body of the first declaration.
func firstBody(t *testing.T, src string) []ast.Node {
	t.Helper()
	prog := mustParse(t, src)
	if len(prog.Decls) == 0 {
		t.Fatalf("no declarations in %q", src)
	}
	return ast.DeclBody(prog.Decls[0])
}

// parseExpr parses src as the value of a single attribute.
func parseExpr(t *testing.T, src string) ast.Expr {
	t.Helper()
	body := firstBody(t, "component T { div [v: "+src+"] }")
	el, ok := body[0].(*ast.Element)
	if !ok || len(el.Attrs) != 1 {
		t.Fatalf("expected element with one attribute, got %#v", body[0])
	}
	return el.Attrs[0].Value
}

func assertTree(t *testing.T, want, got any) {
	t.Helper()
	if diff := cmp.Diff(want, got, ignoreLoc); diff != "" {
		t.Fatalf("tree mismatch (-want +got):\n%s", diff)
	}
}
