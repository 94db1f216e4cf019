package parser

import (
	"htms/internal/source"
	"htms/internal/token"
)

func (p *Parser) peek() token.Token {
	return p.tokens[p.pos]
}

// peekAt смотрит на n токенов вперёд, не выходя за EOF.
func (p *Parser) peekAt(n int) token.Token {
	i := p.pos + n
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[i]
}

func (p *Parser) previous() token.Token {
	if p.pos == 0 {
		return p.tokens[0]
	}
	return p.tokens[p.pos-1]
}

func (p *Parser) atEnd() bool {
	return p.peek().Kind == token.EOF
}

// at never matches at EOF.
func (p *Parser) at(k token.Kind) bool {
	return !p.atEnd() && p.peek().Kind == k
}

// advance - съедает текущий токен; EOF не съедается.
func (p *Parser) advance() token.Token {
	if !p.atEnd() {
		p.pos++
	}
	return p.previous()
}

func (p *Parser) eat(k token.Kind) bool {
	if p.at(k) {
		p.advance()
		return true
	}
	return false
}

// expect - ожидаем конкретный токен. Если нет - ошибка и (zero, false).
func (p *Parser) expect(k token.Kind, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	return token.Token{}, p.fail(msg)
}

// fail records "msg (got Kind)" at the current token and returns false so
// callers can write `return nil, p.fail(...)`.
func (p *Parser) fail(msg string) bool {
	tok := p.peek()
	p.opts.CurrentErrors++
	if p.opts.MaxErrors == 0 || p.opts.CurrentErrors <= p.opts.MaxErrors {
		p.errs = append(p.errs, ParseError{
			Message: msg + " (got " + tok.Kind.String() + ")",
			Loc:     tok.Loc,
		})
	}
	return false
}

// locFrom spans from start to the end of the last consumed token.
func (p *Parser) locFrom(start source.Location) source.Location {
	last := p.previous().Loc
	if last.End <= start.Start {
		return source.Location{Line: start.Line, Column: start.Column, Start: start.Start, End: start.Start}
	}
	return start.Through(last)
}
