package parser

import (
	"htms/internal/ast"
	"htms/internal/token"
)

// Таблица приоритетов для бинарных операторов.
// Чем больше число, тем выше приоритет; все левоассоциативны.
// Тернарный оператор обрабатывается отдельно, ниже всех.
const (
	precLogicalOr      = 1 // ||
	precLogicalAnd     = 2 // &&
	precEquality       = 3 // == !=
	precComparison     = 4 // < <= > >=
	precAdditive       = 5 // + -
	precMultiplicative = 6 // * /
)

type binaryInfo struct {
	prec int
	op   ast.BinaryOp
}

var binaryOps = map[token.Kind]binaryInfo{
	token.OrOr:   {precLogicalOr, ast.OpOr},
	token.AndAnd: {precLogicalAnd, ast.OpAnd},
	token.EqEq:   {precEquality, ast.OpEq},
	token.BangEq: {precEquality, ast.OpNe},
	token.Lt:     {precComparison, ast.OpLt},
	token.LtEq:   {precComparison, ast.OpLe},
	token.Gt:     {precComparison, ast.OpGt},
	token.GtEq:   {precComparison, ast.OpGe},
	token.Plus:   {precAdditive, ast.OpAdd},
	token.Minus:  {precAdditive, ast.OpSub},
	token.Star:   {precMultiplicative, ast.OpMul},
	token.Slash:  {precMultiplicative, ast.OpDiv},
}

// binaryPrec reports k's precedence and AST operator, if k is a binary operator.
func binaryPrec(k token.Kind) (binaryInfo, bool) {
	info, ok := binaryOps[k]
	return info, ok
}
