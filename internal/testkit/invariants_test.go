package testkit

import (
	"strings"
	"testing"

	"htms/internal/ast"
	"htms/internal/lexer"
	"htms/internal/parser"
	"htms/internal/source"
	"htms/internal/token"
)

const sample = `// header
component Card(title: string) {
  div {
    @if item.done { span { {{ done }} } } @else @if item.late { em { {{ late }} } } @else { {{ todo }} }
  }
  @slot
}

page home "/" {
  @each data.items as item, i {
    Card(title: item.name) { p { {{ ${item.name} }} } }
  }
}
`

func TestInvariantsHoldOnParsedSample(t *testing.T) {
	src := []byte(sample)
	toks, lexErrs := lexer.Tokenize(src)
	if len(lexErrs) != 0 {
		t.Fatalf("lex errors: %v", lexErrs)
	}
	if err := CheckTokenInvariants(toks, src); err != nil {
		t.Fatalf("token invariants: %v", err)
	}
	prog, errs := parser.Parse(toks)
	if len(errs) != 0 {
		t.Fatalf("parse errors: %v", errs)
	}
	if err := CheckLocationInvariants(prog, src); err != nil {
		t.Fatalf("location invariants: %v", err)
	}
}

func TestCheckTokenInvariantsRejects(t *testing.T) {
	src := []byte("page")
	eof := token.Token{Kind: token.EOF, Loc: source.Location{Line: 1, Column: 5, Start: 4, End: 4}}
	tests := []struct {
		name   string
		tokens []token.Token
		want   string
	}{
		{"empty", nil, "empty token stream"},
		{"no eof", []token.Token{{Kind: token.KwPage, Loc: source.Location{Line: 1, Column: 1, End: 4}}}, "want EOF"},
		{"wrong column", []token.Token{{Kind: token.KwPage, Loc: source.Location{Line: 1, Column: 2, End: 4}}, eof}, "want 1:1"},
		{"out of bounds", []token.Token{{Kind: token.KwPage, Loc: source.Location{Line: 1, Column: 1, End: 9}}, eof}, "outside content"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckTokenInvariants(tt.tokens, src)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestCheckLocationInvariantsRejectsEscapingChild(t *testing.T) {
	src := []byte("section S { p }")
	prog := &ast.Program{
		Loc: source.Location{Line: 1, Column: 1, End: 15},
		Decls: []ast.Decl{&ast.Section{
			Name: "S",
			Loc:  source.Location{Line: 1, Column: 1, End: 10},
			Body: []ast.Node{&ast.Element{Tag: "p", Loc: source.Location{Line: 1, Column: 13, Start: 12, End: 13}}},
		}},
	}
	err := CheckLocationInvariants(prog, src)
	if err == nil || !strings.Contains(err.Error(), "outside parent") {
		t.Fatalf("error = %v, want outside parent", err)
	}
}
