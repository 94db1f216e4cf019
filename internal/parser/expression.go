package parser

import (
	"strconv"

	"htms/internal/ast"
	"htms/internal/token"
)

func (p *Parser) parseExpr() (ast.Expr, bool) {
	return p.parseTernary()
}

// cond ? then : else, right-associative.
func (p *Parser) parseTernary() (ast.Expr, bool) {
	start := p.peek().Loc
	cond, ok := p.parseBinary(precLogicalOr)
	if !ok {
		return nil, false
	}
	if !p.eat(token.Question) {
		return cond, true
	}
	then, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	if _, ok = p.expect(token.Colon, "Expected ':' in ternary"); !ok {
		return nil, false
	}
	els, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	return &ast.Ternary{Cond: cond, Then: then, Else: els, Loc: p.locFrom(start)}, true
}

// parseBinary - цикл Пратта по таблице приоритетов.
func (p *Parser) parseBinary(minPrec int) (ast.Expr, bool) {
	start := p.peek().Loc
	left, ok := p.parsePostfix()
	if !ok {
		return nil, false
	}
	for {
		info, isOp := binaryPrec(p.peek().Kind)
		if !isOp || info.prec < minPrec {
			return left, true
		}
		p.advance()
		right, ok := p.parseBinary(info.prec + 1)
		if !ok {
			return nil, false
		}
		left = &ast.Binary{Op: info.op, Left: left, Right: right, Loc: p.locFrom(start)}
	}
}

// primary ('.' name | '(' args ')')*; calls only on bare identifiers.
func (p *Parser) parsePostfix() (ast.Expr, bool) {
	start := p.peek().Loc
	expr, ok := p.parsePrimary()
	if !ok {
		return nil, false
	}
	for {
		switch {
		case p.at(token.Dot):
			p.advance()
			prop, ok := p.expect(token.Ident, "Expected property name after '.'")
			if !ok {
				return nil, false
			}
			expr = &ast.Member{Object: expr, Property: prop.Value, Loc: p.locFrom(start)}
		case p.at(token.LParen):
			ident, isIdent := expr.(*ast.Ident)
			if !isIdent {
				return expr, true
			}
			p.advance()
			args, ok := p.parseArgs()
			if !ok {
				return nil, false
			}
			expr = &ast.Call{Callee: ident.Name, Args: args, Loc: p.locFrom(start)}
		default:
			return expr, true
		}
	}
}

func (p *Parser) parsePrimary() (ast.Expr, bool) {
	tok := p.peek()
	switch {
	case p.at(token.StringLit):
		p.advance()
		return &ast.StringLit{Value: tok.Value, Loc: tok.Loc}, true
	case p.at(token.NumberLit):
		p.advance()
		v, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			v = 0
		}
		return &ast.NumberLit{Value: v, Loc: tok.Loc}, true
	case p.at(token.KwTrue):
		p.advance()
		return &ast.BoolLit{Value: true, Loc: tok.Loc}, true
	case p.at(token.KwFalse):
		p.advance()
		return &ast.BoolLit{Value: false, Loc: tok.Loc}, true
	case p.at(token.ContextPath):
		p.advance()
		return &ast.ContextPath{Path: tok.Value, Loc: tok.Loc}, true
	case p.at(token.Ident):
		p.advance()
		return &ast.Ident{Name: tok.Value, Loc: tok.Loc}, true
	case p.at(token.LParen):
		p.advance()
		inner, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		if _, ok = p.expect(token.RParen, "Expected ')'"); !ok {
			return nil, false
		}
		return inner, true
	default:
		return nil, p.fail("Expected expression")
	}
}
