package parser

import (
	"strings"

	"htms/internal/ast"
	"htms/internal/token"
)

// [name: value, ...]
func (p *Parser) parseAttrs() ([]ast.Attr, bool) {
	if _, ok := p.expect(token.LBracket, "Expected '['"); !ok {
		return nil, false
	}
	var attrs []ast.Attr
	if !p.at(token.RBracket) {
		for {
			attr, ok := p.parseAttr()
			if !ok {
				return nil, false
			}
			attrs = append(attrs, attr)
			if !p.eat(token.Comma) {
				break
			}
		}
	}
	if _, ok := p.expect(token.RBracket, "Expected ']'"); !ok {
		return nil, false
	}
	return attrs, true
}

// name(.modifier)*: value
//
// An `onX` name makes the value an event handler: an action name with an
// optional argument list.
func (p *Parser) parseAttr() (ast.Attr, bool) {
	start := p.peek().Loc
	name, ok := p.expect(token.Ident, "Expected attribute name")
	if !ok {
		return ast.Attr{}, false
	}
	var mods []string
	for p.at(token.Dot) {
		p.advance()
		mod, ok := p.expect(token.Ident, "Expected modifier name after '.'")
		if !ok {
			return ast.Attr{}, false
		}
		mods = append(mods, mod.Value)
	}
	event, isEvent := eventName(name.Value)
	if len(mods) > 0 && !isEvent {
		return ast.Attr{}, p.fail("Modifiers are only allowed on event attributes")
	}
	if _, ok = p.expect(token.Colon, "Expected ':'"); !ok {
		return ast.Attr{}, false
	}

	var value ast.Expr
	if isEvent {
		value, ok = p.parseEventHandler(event, mods)
	} else {
		value, ok = p.parseExpr()
	}
	if !ok {
		return ast.Attr{}, false
	}
	return ast.Attr{Name: name.Value, Value: value, Loc: p.locFrom(start)}, true
}

// eventName maps "onClick" to "click". Only `on` followed by an upper-case
// letter counts, so "one" or "online" are ordinary attributes.
func eventName(attr string) (string, bool) {
	if len(attr) < 3 || !strings.HasPrefix(attr, "on") {
		return "", false
	}
	if c := attr[2]; c < 'A' || c > 'Z' {
		return "", false
	}
	return strings.ToLower(attr[2:]), true
}

func (p *Parser) parseEventHandler(event string, mods []string) (ast.Expr, bool) {
	start := p.peek().Loc
	action, ok := p.expect(token.Ident, "Expected event handler name")
	if !ok {
		return nil, false
	}
	ev := &ast.Event{Event: event, Modifiers: mods, Action: action.Value}
	if p.at(token.LParen) {
		p.advance()
		if ev.Args, ok = p.parseArgs(); !ok {
			return nil, false
		}
	}
	ev.Loc = p.locFrom(start)
	return ev, true
}

// parseArgs parses `expr, ...)` after an opening parenthesis.
func (p *Parser) parseArgs() ([]ast.Expr, bool) {
	var args []ast.Expr
	if !p.at(token.RParen) {
		for {
			arg, ok := p.parseExpr()
			if !ok {
				return nil, false
			}
			args = append(args, arg)
			if !p.eat(token.Comma) {
				break
			}
		}
	}
	if _, ok := p.expect(token.RParen, "Expected ')'"); !ok {
		return nil, false
	}
	return args, true
}
