package parser

import (
	"strings"

	"htms/internal/ast"
	"htms/internal/token"
)

// { node* }
func (p *Parser) parseBlock() ([]ast.Node, bool) {
	if _, ok := p.expect(token.LBrace, "Expected '{'"); !ok {
		return nil, false
	}
	var nodes []ast.Node
	for !p.at(token.RBrace) && !p.atEnd() {
		n, ok := p.parseNode()
		if !ok {
			return nil, false
		}
		nodes = append(nodes, n)
	}
	if _, ok := p.expect(token.RBrace, "Expected '}'"); !ok {
		return nil, false
	}
	return nodes, true
}

func (p *Parser) parseNode() (ast.Node, bool) {
	switch p.peek().Kind {
	case token.DirIf:
		n, ok := p.parseIf()
		if !ok {
			return nil, false
		}
		return n, true
	case token.DirEach:
		return p.parseEach()
	case token.DirSlot:
		tok := p.advance()
		return &ast.Slot{Loc: tok.Loc}, true
	case token.TextOpen:
		return p.parseText()
	case token.ContextPath:
		tok := p.advance()
		return &ast.Text{Content: tok.Value, Dynamic: true, Loc: tok.Loc}, true
	case token.ComponentName:
		return p.parseComponentRef()
	case token.Ident:
		// `item.title` прямо в теле - это динамический текст, а не тег.
		if p.peekAt(1).Kind == token.Dot {
			return p.parseDynamicText()
		}
		return p.parseElement()
	default:
		return nil, p.fail("Expected element, component, or directive")
	}
}

// tag [attrs]? ({{ text }} | { children })?
func (p *Parser) parseElement() (ast.Node, bool) {
	start := p.peek().Loc
	tag := p.advance()
	el := &ast.Element{Tag: tag.Value}

	var ok bool
	if p.at(token.LBracket) {
		if el.Attrs, ok = p.parseAttrs(); !ok {
			return nil, false
		}
	}
	switch {
	case p.at(token.TextOpen):
		text, ok := p.parseText()
		if !ok {
			return nil, false
		}
		el.Children = []ast.Node{text}
	case p.at(token.LBrace):
		if el.Children, ok = p.parseBlock(); !ok {
			return nil, false
		}
	}
	el.Loc = p.locFrom(start)
	return el, true
}

// Name (name: expr, ...)? { children }?
func (p *Parser) parseComponentRef() (ast.Node, bool) {
	start := p.peek().Loc
	name := p.advance()
	ref := &ast.ComponentRef{Name: name.Value}

	var ok bool
	if p.at(token.LParen) {
		if ref.Bindings, ok = p.parseBindings(); !ok {
			return nil, false
		}
	}
	if p.at(token.LBrace) {
		if ref.Children, ok = p.parseBlock(); !ok {
			return nil, false
		}
	}
	ref.Loc = p.locFrom(start)
	return ref, true
}

func (p *Parser) parseBindings() ([]ast.Binding, bool) {
	if _, ok := p.expect(token.LParen, "Expected '('"); !ok {
		return nil, false
	}
	var bindings []ast.Binding
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
			value, ok := p.parseExpr()
			if !ok {
				return nil, false
			}
			bindings = append(bindings, ast.Binding{Name: name.Value, Value: value, Loc: p.locFrom(start)})
			if !p.eat(token.Comma) {
				break
			}
		}
	}
	if _, ok := p.expect(token.RParen, "Expected ')'"); !ok {
		return nil, false
	}
	return bindings, true
}

// {{ content }}
func (p *Parser) parseText() (ast.Node, bool) {
	start := p.peek().Loc
	if _, ok := p.expect(token.TextOpen, "Expected '{{'"); !ok {
		return nil, false
	}
	var content string
	if p.at(token.TextContent) {
		content = p.advance().Value
	}
	if _, ok := p.expect(token.TextClose, "Expected '}}'"); !ok {
		return nil, false
	}
	content = strings.TrimSpace(content)
	return &ast.Text{
		Content: content,
		Dynamic: strings.Contains(content, "${"),
		Loc:     p.locFrom(start),
	}, true
}

// parseDynamicText handles a bare member chain such as `item.title`.
func (p *Parser) parseDynamicText() (ast.Node, bool) {
	start := p.peek().Loc
	expr, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	return &ast.Text{Content: ast.ExprString(expr), Dynamic: true, Loc: p.locFrom(start)}, true
}

// @if cond { then } (@else (@if ... | { else }))?
func (p *Parser) parseIf() (*ast.If, bool) {
	start := p.peek().Loc
	p.advance()

	cond, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	then, ok := p.parseBlock()
	if !ok {
		return nil, false
	}
	n := &ast.If{Cond: cond, Then: then}

	if p.at(token.DirElse) {
		elseStart := p.advance().Loc
		if p.at(token.DirIf) {
			nested, ok := p.parseIf()
			if !ok {
				return nil, false
			}
			n.Else = &ast.ElseIf{If: nested, Loc: p.locFrom(elseStart)}
		} else {
			body, ok := p.parseBlock()
			if !ok {
				return nil, false
			}
			n.Else = &ast.ElseBlock{Body: body, Loc: p.locFrom(elseStart)}
		}
	}
	n.Loc = p.locFrom(start)
	return n, true
}

// @each iterable as item(, index)? { body }
func (p *Parser) parseEach() (ast.Node, bool) {
	start := p.peek().Loc
	p.advance()

	iter, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	if _, ok = p.expect(token.KwAs, "Expected 'as'"); !ok {
		return nil, false
	}
	item, ok := p.expect(token.Ident, "Expected item name")
	if !ok {
		return nil, false
	}
	each := &ast.Each{Iterable: iter, Item: item.Value}
	if p.eat(token.Comma) {
		index, ok := p.expect(token.Ident, "Expected index name")
		if !ok {
			return nil, false
		}
		each.Index = index.Value
	}
	if each.Body, ok = p.parseBlock(); !ok {
		return nil, false
	}
	each.Loc = p.locFrom(start)
	return each, true
}
