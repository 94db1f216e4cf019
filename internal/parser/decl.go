package parser

import (
	"htms/internal/ast"
	"htms/internal/token"
)

// component NAME (params)? [attrs]? { body }
func (p *Parser) parseComponent() (ast.Decl, bool) {
	start := p.peek().Loc
	p.advance()

	name, ok := p.expect(token.ComponentName, "Expected component name")
	if !ok {
		return nil, false
	}
	decl := &ast.Component{Name: name.Value}

	if p.at(token.LParen) {
		if decl.Params, ok = p.parseParams(); !ok {
			return nil, false
		}
	}
	if p.at(token.LBracket) {
		if decl.Attrs, ok = p.parseAttrs(); !ok {
			return nil, false
		}
	}
	if decl.Body, ok = p.parseBlock(); !ok {
		return nil, false
	}
	decl.Loc = p.locFrom(start)
	return decl, true
}

// section NAME { body }
func (p *Parser) parseSection() (ast.Decl, bool) {
	start := p.peek().Loc
	p.advance()

	name, ok := p.expect(token.ComponentName, "Expected section name")
	if !ok {
		return nil, false
	}
	body, ok := p.parseBlock()
	if !ok {
		return nil, false
	}
	return &ast.Section{Name: name.Value, Body: body, Loc: p.locFrom(start)}, true
}

// page name "ROUTE" { body }
func (p *Parser) parsePage() (ast.Decl, bool) {
	start := p.peek().Loc
	p.advance()

	name, ok := p.expect(token.Ident, "Expected page name")
	if !ok {
		return nil, false
	}
	route, ok := p.expect(token.StringLit, "Expected route string")
	if !ok {
		return nil, false
	}
	body, ok := p.parseBlock()
	if !ok {
		return nil, false
	}
	return &ast.Page{Name: name.Value, Route: route.Value, Body: body, Loc: p.locFrom(start)}, true
}

// (name: binding, ...)
func (p *Parser) parseParams() ([]ast.Param, bool) {
	if _, ok := p.expect(token.LParen, "Expected '('"); !ok {
		return nil, false
	}
	var params []ast.Param
	if !p.at(token.RParen) {
		for {
			start := p.peek().Loc
			name, ok := p.expect(token.Ident, "Expected parameter name")
			if !ok {
				return nil, false
			}
			if _, ok = p.expect(token.Colon, "Expected ':'"); !ok {
				return nil, false
			}
			binding, ok := p.expect(token.Ident, "Expected binding name")
			if !ok {
				return nil, false
			}
			params = append(params, ast.Param{Name: name.Value, Binding: binding.Value, Loc: p.locFrom(start)})
			if !p.eat(token.Comma) {
				break
			}
		}
	}
	if _, ok := p.expect(token.RParen, "Expected ')'"); !ok {
		return nil, false
	}
	return params, true
}
