package lexer

import "htms/internal/token"

// scanNumber reads digits with an optional fractional part: 12, 3.5.
// A '.' not followed by a digit is left for member access.
func (lx *Lexer) scanNumber() {
	start := lx.cursor.Mark()
	for isDec(lx.cursor.Peek()) && !lx.cursor.EOF() {
		lx.cursor.Bump()
	}
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		lx.cursor.Bump()
		for isDec(lx.cursor.Peek()) && !lx.cursor.EOF() {
			lx.cursor.Bump()
		}
	}
	lx.emitLexeme(token.NumberLit, start)
}
