package lexer

import "go4.org/mem"

var blockCommentEnd = mem.S("*/")

// skipTrivia consumes whitespace, line comments and block comments.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		b0 := lx.cursor.Peek()
		if isSpace(b0) {
			lx.cursor.Bump()
			continue
		}
		if b0 != '/' {
			return
		}
		switch lx.cursor.PeekAt(1) {
		case '/':
			lx.skipLineComment()
		case '*':
			lx.skipBlockComment()
		default:
			return
		}
	}
}

func (lx *Lexer) skipLineComment() {
	rest := lx.cursor.Rest()
	i := mem.IndexByte(rest, '\n')
	if i < 0 {
		i = rest.Len()
	}
	lx.cursor.Advance(u32(i))
}

// skipBlockComment walks the whole comment so the line counter stays exact.
func (lx *Lexer) skipBlockComment() {
	start := lx.cursor.Mark()
	lx.cursor.Advance(2)
	rest := lx.cursor.Rest()
	i := mem.Index(rest, blockCommentEnd)
	if i < 0 {
		lx.cursor.Advance(u32(rest.Len()))
		lx.errorAt(lx.cursor.LocFrom(start), "Unterminated block comment")
		return
	}
	lx.cursor.Advance(u32(i) + 2)
}
