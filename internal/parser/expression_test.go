package parser_test

import (
	"testing"

	"htms/internal/ast"
)

func id(name string) *ast.Ident { return &ast.Ident{Name: name} }

func bin(op ast.BinaryOp, l, r ast.Expr) *ast.Binary {
	return &ast.Binary{Op: op, Left: l, Right: r}
}

func TestLiterals(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ast.Expr
	}{
		{"string", `"hello"`, &ast.StringLit{Value: "hello"}},
		{"integer", "42", &ast.NumberLit{Value: 42}},
		{"float", "3.5", &ast.NumberLit{Value: 3.5}},
		{"true", "true", &ast.BoolLit{Value: true}},
		{"false", "false", &ast.BoolLit{Value: false}},
		{"context", "ctx.user.name", &ast.ContextPath{Path: "ctx.user.name"}},
		{"ident", "foo", id("foo")},
		{"group", "(foo)", id("foo")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTree(t, tt.want, parseExpr(t, tt.input))
		})
	}
}

func TestBinaryPrecedence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ast.Expr
	}{
		{"mul_over_add", "a + b * c", bin(ast.OpAdd, id("a"), bin(ast.OpMul, id("b"), id("c")))},
		{"left_assoc", "a - b - c", bin(ast.OpSub, bin(ast.OpSub, id("a"), id("b")), id("c"))},
		{"div", "a / b", bin(ast.OpDiv, id("a"), id("b"))},
		{"cmp_over_eq", "a < b == c >= d", bin(ast.OpEq, bin(ast.OpLt, id("a"), id("b")), bin(ast.OpGe, id("c"), id("d")))},
		{"add_over_cmp", "a <= b + 1", bin(ast.OpLe, id("a"), bin(ast.OpAdd, id("b"), &ast.NumberLit{Value: 1}))},
		{"and_over_or", "a || b && c != d", bin(ast.OpOr, id("a"), bin(ast.OpAnd, id("b"), bin(ast.OpNe, id("c"), id("d"))))},
		{"gt", "a > b", bin(ast.OpGt, id("a"), id("b"))},
		{"group", "(a + b) * c", bin(ast.OpMul, bin(ast.OpAdd, id("a"), id("b")), id("c"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTree(t, tt.want, parseExpr(t, tt.input))
		})
	}
}

func TestTernaryIsRightAssociative(t *testing.T) {
	got := parseExpr(t, "a ? b : c ? d : e")
	want := &ast.Ternary{
		Cond: id("a"),
		Then: id("b"),
		Else: &ast.Ternary{Cond: id("c"), Then: id("d"), Else: id("e")},
	}
	assertTree(t, want, got)

	got = parseExpr(t, "a || b ? 1 : 2")
	assertTree(t, &ast.Ternary{
		Cond: bin(ast.OpOr, id("a"), id("b")),
		Then: &ast.NumberLit{Value: 1},
		Else: &ast.NumberLit{Value: 2},
	}, got)
}

func TestMemberAndCall(t *testing.T) {
	got := parseExpr(t, "format(item.price, 2).label")
	want := &ast.Member{
		Object: &ast.Call{Callee: "format", Args: []ast.Expr{
			&ast.Member{Object: id("item"), Property: "price"},
			&ast.NumberLit{Value: 2},
		}},
		Property: "label",
	}
	assertTree(t, want, got)
	assertTree(t, &ast.Call{Callee: "now"}, parseExpr(t, "now()"))
}

func TestCallRequiresBareIdentifier(t *testing.T) {
	_, errs := parseWithErrors(t, `component T { div [v: a.b(1)] }`)
	if len(errs) != 1 || errs[0].Message != "Expected ']' (got LParen)" {
		t.Fatalf("errors: %s", errorsSummary(errs))
	}
}
