package lexer_test

import (
	"strings"
	"testing"

	"htms/internal/lexer"
	"htms/internal/source"
	"htms/internal/token"
)

// kindsOf returns token kinds in order, EOF included.
func kindsOf(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func mustTokenize(t *testing.T, src string) []token.Token {
	t.Helper()
	toks, errs := lexer.Tokenize([]byte(src))
	if len(errs) != 0 {
		t.Fatalf("unexpected lexical errors for %q: %v", src, errs)
	}
	return toks
}

func expectKinds(t *testing.T, src string, want ...token.Kind) []token.Token {
	t.Helper()
	toks := mustTokenize(t, src)
	got := kindsOf(toks)
	if len(got) != len(want) {
		t.Fatalf("%q: got %v, want %v", src, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%q: token %d is %v, want %v (all: %v)", src, i, got[i], want[i], got)
		}
	}
	return toks
}

func TestComponentDeclarationTokens(t *testing.T) {
	toks := expectKinds(t, "component NavBar { }",
		token.KwComponent, token.ComponentName, token.LBrace, token.RBrace, token.EOF)
	if toks[1].Value != "NavBar" {
		t.Fatalf("component name value = %q", toks[1].Value)
	}
}

func TestAttributeListTokens(t *testing.T) {
	toks := expectKinds(t, `div [class: "container", id: "main"]`,
		token.Ident, token.LBracket, token.Ident, token.Colon, token.StringLit,
		token.Comma, token.Ident, token.Colon, token.StringLit, token.RBracket, token.EOF)
	if toks[0].Value != "div" || toks[2].Value != "class" {
		t.Fatalf("identifier values: %q %q", toks[0].Value, toks[2].Value)
	}
	if toks[4].Value != "container" {
		t.Fatalf("string value = %q, want quotes stripped", toks[4].Value)
	}
	if toks[4].Loc.End-toks[4].Loc.Start != uint32(len(`"container"`)) {
		t.Fatalf("string location should cover quotes: %+v", toks[4].Loc)
	}
}

func TestTextContentIsVerbatim(t *testing.T) {
	toks := expectKinds(t, "{{ Hello ${ctx.name}! }}",
		token.TextOpen, token.TextContent, token.TextClose, token.EOF)
	if got, want := toks[1].Value, " Hello ${ctx.name}! "; got != want {
		t.Fatalf("TextContent = %q, want %q", got, want)
	}

	toks = expectKinds(t, `{{ Hello "world" {x} }}`,
		token.TextOpen, token.TextContent, token.TextClose, token.EOF)
	if got, want := toks[1].Value, ` Hello "world" {x} `; got != want {
		t.Fatalf("TextContent = %q, want %q", got, want)
	}
}

func TestEmptyTextBlockHasNoContentToken(t *testing.T) {
	expectKinds(t, "{{}}", token.TextOpen, token.TextClose, token.EOF)
}

func TestUnterminatedTextContent(t *testing.T) {
	src := "p {{ never closed\n  div { }"
	toks, errs := lexer.Tokenize([]byte(src))
	if len(errs) != 1 {
		t.Fatalf("want exactly one error, got %v", errs)
	}
	if !strings.Contains(errs[0].Message, "Unterminated text content") {
		t.Fatalf("unexpected message %q", errs[0].Message)
	}
	if errs[0].Loc.Start != 4 || errs[0].Loc.End != uint32(len(src)) {
		t.Fatalf("error location = %+v", errs[0].Loc)
	}
	got := kindsOf(toks)
	if len(got) != 3 || got[0] != token.Ident || got[1] != token.TextOpen || got[2] != token.EOF {
		t.Fatalf("tokens = %v", got)
	}
}

func TestContextPath(t *testing.T) {
	toks := expectKinds(t, "ctx.user.name", token.ContextPath, token.EOF)
	if toks[0].Value != "ctx.user.name" {
		t.Fatalf("value = %q", toks[0].Value)
	}
	expectKinds(t, "ctx", token.Ident, token.EOF)
	expectKinds(t, "ctx . x", token.Ident, token.Dot, token.Ident, token.EOF)
	expectKinds(t, "item.title", token.Ident, token.Dot, token.Ident, token.EOF)
}

func TestDirectives(t *testing.T) {
	expectKinds(t, "@if @else @each @slot",
		token.DirIf, token.DirElse, token.DirEach, token.DirSlot, token.EOF)

	toks, errs := lexer.Tokenize([]byte("@for x"))
	if len(errs) != 1 || errs[0].Message != "Unexpected character: '@'" {
		t.Fatalf("errors = %v", errs)
	}
	if got := kindsOf(toks); len(got) != 3 || got[0] != token.Ident || toks[0].Value != "for" {
		t.Fatalf("tokens = %v", got)
	}
}

func TestKeywordsAndNames(t *testing.T) {
	expectKinds(t, "component section page as true false Card card",
		token.KwComponent, token.KwSection, token.KwPage, token.KwAs,
		token.KwTrue, token.KwFalse, token.ComponentName, token.Ident, token.EOF)
}

func TestOperatorsLongestMatch(t *testing.T) {
	expectKinds(t, "== != <= >= < > && || + - * / ? : , . ( ) [ ] { }",
		token.EqEq, token.BangEq, token.LtEq, token.GtEq, token.Lt, token.Gt,
		token.AndAnd, token.OrOr, token.Plus, token.Minus, token.Star, token.Slash,
		token.Question, token.Colon, token.Comma, token.Dot, token.LParen, token.RParen,
		token.LBracket, token.RBracket, token.LBrace, token.RBrace, token.EOF)
}

func TestClosingBracesOutsideTextMode(t *testing.T) {
	expectKinds(t, "div { p { }}", token.Ident, token.LBrace, token.Ident,
		token.LBrace, token.RBrace, token.RBrace, token.EOF)
}

func TestHyphenatedIdentifiers(t *testing.T) {
	toks := expectKinds(t, "aria-label count-1 a - b",
		token.Ident, token.Ident, token.Minus, token.NumberLit,
		token.Ident, token.Minus, token.Ident, token.EOF)
	if toks[0].Value != "aria-label" || toks[1].Value != "count" {
		t.Fatalf("values: %q %q", toks[0].Value, toks[1].Value)
	}

	// the rule holds inside expressions too; subtraction needs spaces
	toks = expectKinds(t, "[v: count-total, w: count - total]",
		token.LBracket, token.Ident, token.Colon, token.Ident, token.Comma,
		token.Ident, token.Colon, token.Ident, token.Minus, token.Ident,
		token.RBracket, token.EOF)
	if toks[3].Value != "count-total" {
		t.Fatalf("hyphenated value = %q", toks[3].Value)
	}
}

func TestNumbers(t *testing.T) {
	toks := expectKinds(t, "42 3.14 7.x",
		token.NumberLit, token.NumberLit, token.NumberLit, token.Dot, token.Ident, token.EOF)
	if toks[1].Value != "3.14" || toks[2].Value != "7" {
		t.Fatalf("values: %q %q", toks[1].Value, toks[2].Value)
	}
}

func TestStrings(t *testing.T) {
	toks := expectKinds(t, `"a \"b\"" 'single'`, token.StringLit, token.StringLit, token.EOF)
	if toks[0].Value != `a \"b\"` || toks[1].Value != "single" {
		t.Fatalf("values: %q %q", toks[0].Value, toks[1].Value)
	}

	for _, src := range []string{"\"open\npage", "'open\npage", `'mixed"`} {
		_, errs := lexer.Tokenize([]byte(src))
		if len(errs) != 1 || errs[0].Message != "Unterminated string literal" {
			t.Fatalf("%q: errors = %v", src, errs)
		}
	}

	toks = expectKinds(t, `'say "hi"' "it's"`, token.StringLit, token.StringLit, token.EOF)
	if toks[0].Value != `say "hi"` || toks[1].Value != "it's" {
		t.Fatalf("values: %q %q", toks[0].Value, toks[1].Value)
	}
}

func TestLineNumbers(t *testing.T) {
	toks := mustTokenize(t, "component\nNavBar\n{\n}")
	for i, want := range []uint32{1, 2, 3, 4} {
		if toks[i].Loc.Line != want {
			t.Fatalf("token %d line = %d, want %d", i, toks[i].Loc.Line, want)
		}
	}
}

func TestColumnsAndCommentsAdvanceLines(t *testing.T) {
	src := "// header\n/* multi\nline */ page home \"/\" {\n  {{ a\nb }} p\n}"
	toks := mustTokenize(t, src)

	tests := []struct {
		idx        int
		kind       token.Kind
		line, col  uint32
		startBytes int
	}{
		{0, token.KwPage, 3, 9, strings.Index(src, "page")},
		{1, token.Ident, 3, 14, strings.Index(src, "home")},
		{4, token.TextOpen, 4, 3, strings.Index(src, "{{")},
		{5, token.TextContent, 4, 5, strings.Index(src, "{{") + 2},
		{6, token.TextClose, 5, 3, strings.Index(src, "}}")},
		{7, token.Ident, 5, 6, strings.LastIndex(src, "p")},
		{8, token.RBrace, 6, 1, len(src) - 1},
	}
	for _, tt := range tests {
		tok := toks[tt.idx]
		if tok.Kind != tt.kind {
			t.Fatalf("token %d kind = %v, want %v", tt.idx, tok.Kind, tt.kind)
		}
		if tok.Loc.Line != tt.line || tok.Loc.Column != tt.col {
			t.Errorf("token %d (%v) at %d:%d, want %d:%d", tt.idx, tok.Kind, tok.Loc.Line, tok.Loc.Column, tt.line, tt.col)
		}
		if int(tok.Loc.Start) != tt.startBytes {
			t.Errorf("token %d start = %d, want %d", tt.idx, tok.Loc.Start, tt.startBytes)
		}
	}
}

func TestErrorsAreBatched(t *testing.T) {
	toks, errs := lexer.Tokenize([]byte("component $ NavBar # { é }"))
	if len(errs) != 3 {
		t.Fatalf("want 3 errors, got %v", errs)
	}
	want := []string{"Unexpected character: '$'", "Unexpected character: '#'", "Unexpected character: 'é'"}
	for i, w := range want {
		if errs[i].Message != w {
			t.Errorf("error %d = %q, want %q", i, errs[i].Message, w)
		}
	}
	if errs[2].Loc.Len() != uint32(len("é")) {
		t.Errorf("non-ASCII error should span the whole rune: %+v", errs[2].Loc)
	}
	got := kindsOf(toks)
	if len(got) != 5 || got[0] != token.KwComponent || got[1] != token.ComponentName || got[4] != token.EOF {
		t.Fatalf("scanning should continue past errors, got %v", got)
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	toks, errs := lexer.Tokenize([]byte("page /* open"))
	if len(errs) != 1 || errs[0].Message != "Unterminated block comment" {
		t.Fatalf("errors = %v", errs)
	}
	if got := kindsOf(toks); len(got) != 2 || got[1] != token.EOF {
		t.Fatalf("tokens = %v", got)
	}
}

func TestEOFToken(t *testing.T) {
	for _, src := range []string{"", "   ", "page\n", "{{ x"} {
		toks, _ := lexer.Tokenize([]byte(src))
		last := toks[len(toks)-1]
		if last.Kind != token.EOF || !last.Loc.Empty() || last.Loc.Start != uint32(len(src)) {
			t.Fatalf("%q: last token = %+v", src, last)
		}
	}
	toks := mustTokenize(t, "ab\ncd")
	eof := toks[len(toks)-1]
	if eof.Loc.Line != 2 || eof.Loc.Column != 3 {
		t.Fatalf("EOF at %d:%d, want 2:3", eof.Loc.Line, eof.Loc.Column)
	}
}

func TestNextKeepsReturningEOF(t *testing.T) {
	lx := lexer.New([]byte("page"), lexer.Options{})
	if tok := lx.Next(); tok.Kind != token.KwPage {
		t.Fatalf("first = %v", tok.Kind)
	}
	for range 3 {
		if tok := lx.Next(); tok.Kind != token.EOF {
			t.Fatalf("expected EOF, got %v", tok.Kind)
		}
	}
}

func TestMaxErrors(t *testing.T) {
	lx := lexer.New([]byte("$ $ $ $ page"), lexer.Options{MaxErrors: 2})
	toks, errs := lx.Run()
	if len(errs) != 2 {
		t.Fatalf("want 2 errors, got %d", len(errs))
	}
	if toks[0].Kind != token.KwPage {
		t.Fatalf("scan should continue after the limit, got %v", kindsOf(toks))
	}
}

// Every token's source slice reproduces its value, except strings whose
// value drops the quotes.
func TestLocationsRoundTrip(t *testing.T) {
	src := `component Card(item: user) [class: "card"] {
  h2 {{ ${item.title} }}
  @if ctx.show && count >= 2 { p {{ ok }} } @else { @slot }
  @each ctx.items as it, i { Badge(label: it.name) }
}
page home "/" { Card }`
	toks := mustTokenize(t, src)
	for _, tok := range toks {
		slice := src[tok.Loc.Start:tok.Loc.End]
		switch tok.Kind {
		case token.EOF:
			if slice != "" {
				t.Fatalf("EOF should be empty")
			}
		case token.StringLit:
			if slice[1:len(slice)-1] != tok.Value {
				t.Fatalf("string %q vs slice %q", tok.Value, slice)
			}
		default:
			if slice != tok.Value {
				t.Fatalf("%v: value %q vs slice %q", tok.Kind, tok.Value, slice)
			}
		}
		line := uint32(strings.Count(src[:tok.Loc.Start], "\n") + 1)
		if tok.Loc.Line != line {
			t.Fatalf("%v %q: line %d, want %d", tok.Kind, tok.Value, tok.Loc.Line, line)
		}
		lineStart := strings.LastIndex(src[:tok.Loc.Start], "\n") + 1
		if tok.Loc.Column != tok.Loc.Start-uint32(lineStart)+1 {
			t.Fatalf("%v %q: column %d", tok.Kind, tok.Value, tok.Loc.Column)
		}
	}
	_ = source.Location{}
}
