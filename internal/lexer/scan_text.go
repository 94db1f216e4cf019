package lexer

import (
	"go4.org/mem"

	"htms/internal/token"
)

var textCloseMarker = mem.S("}}")

// scanText runs in modeText, right after "{{" was emitted.
// Nothing between the markers is tokenised: braces, quotes and "${...}"
// are all part of the captured text.
func (lx *Lexer) scanText() {
	start := lx.cursor.Mark()
	rest := lx.cursor.Rest()
	i := mem.Index(rest, textCloseMarker)
	if i < 0 {
		lx.cursor.Advance(u32(rest.Len()))
		lx.errorAt(lx.cursor.LocFrom(start), "Unterminated text content: missing '}}'")
		lx.mode = modeNormal
		return
	}
	if i > 0 {
		lx.cursor.Advance(u32(i))
		lx.emitLexeme(token.TextContent, start)
	}
	closeMark := lx.cursor.Mark()
	lx.cursor.Advance(2)
	lx.emitLexeme(token.TextClose, closeMark)
	lx.mode = modeNormal
}
