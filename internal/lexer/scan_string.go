package lexer

import (
	"htms/internal/token"
)

// scanString reads a "..." or '...' literal. The value is the raw text
// between the quotes; escapes are skipped over but not decoded.
func (lx *Lexer) scanString() {
	start := lx.cursor.Mark()
	quote := lx.cursor.Bump()
	body := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == quote:
			value := string(lx.cursor.Bytes(body))
			lx.cursor.Bump()
			lx.emit(token.StringLit, value, start)
			return
		case b == '\\':
			lx.cursor.Bump()
			if lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
		case b == '\n':
			lx.errorAt(lx.cursor.LocFrom(start), "Unterminated string literal")
			return
		default:
			lx.cursor.Bump()
		}
	}
	lx.errorAt(lx.cursor.LocFrom(start), "Unterminated string literal")
}
