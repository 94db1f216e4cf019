package lexer

import (
	"htms/internal/token"
)

var singleByteOps = [256]token.Kind{
	'}': token.RBrace,
	'[': token.LBracket,
	']': token.RBracket,
	'(': token.LParen,
	')': token.RParen,
	':': token.Colon,
	',': token.Comma,
	'.': token.Dot,
	'?': token.Question,
	'+': token.Plus,
	'-': token.Minus,
	'*': token.Star,
	'/': token.Slash,
}

// scanOperatorOrPunct handles punctuation, operators and "{{".
func (lx *Lexer) scanOperatorOrPunct() {
	start := lx.cursor.Mark()
	ch := lx.cursor.Peek()

	switch ch {
	case '{':
		lx.cursor.Bump()
		if lx.cursor.Eat('{') {
			lx.emitLexeme(token.TextOpen, start)
			lx.mode = modeText
			return
		}
		lx.emitLexeme(token.LBrace, start)
		return
	case '=':
		if lx.try2('=', '=', token.EqEq, start) {
			return
		}
	case '!':
		if lx.try2('!', '=', token.BangEq, start) {
			return
		}
	case '<':
		if !lx.try2('<', '=', token.LtEq, start) {
			lx.cursor.Bump()
			lx.emitLexeme(token.Lt, start)
		}
		return
	case '>':
		if !lx.try2('>', '=', token.GtEq, start) {
			lx.cursor.Bump()
			lx.emitLexeme(token.Gt, start)
		}
		return
	case '&':
		if lx.try2('&', '&', token.AndAnd, start) {
			return
		}
	case '|':
		if lx.try2('|', '|', token.OrOr, start) {
			return
		}
	default:
		if kind := singleByteOps[ch]; kind != token.Invalid {
			lx.cursor.Bump()
			lx.emitLexeme(kind, start)
			return
		}
	}

	lx.unexpectedChar(start)
}

// try2 emits kind when the next two bytes are a then b.
func (lx *Lexer) try2(a, b byte, kind token.Kind, start Mark) bool {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != a || b1 != b {
		return false
	}
	lx.cursor.Advance(2)
	lx.emitLexeme(kind, start)
	return true
}

// unexpectedChar reports the whole UTF-8 sequence at the cursor and skips it.
func (lx *Lexer) unexpectedChar(start Mark) {
	lx.cursor.Advance(u32(runeLen(lx.src[lx.cursor.Off:])))
	lx.errorAt(lx.cursor.LocFrom(start), "Unexpected character: '"+string(lx.cursor.Bytes(start))+"'")
}
