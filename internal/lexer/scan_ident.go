package lexer

import (
	"htms/internal/token"
)

// scanIdentOrKeyword handles identifiers, component names, keywords and
// "ctx." context paths.
func (lx *Lexer) scanIdentOrKeyword() {
	start := lx.cursor.Mark()
	first := lx.cursor.Bump()

	if isUpper(first) {
		lx.eatWord(false)
		lx.emitLexeme(token.ComponentName, start)
		return
	}

	lx.eatWord(true)
	word := string(lx.cursor.Bytes(start))
	if kind, ok := token.LookupKeyword(word); ok {
		lx.emit(kind, word, start)
		return
	}
	if word == "ctx" && lx.atPathSegment() {
		for lx.atPathSegment() {
			lx.cursor.Bump() // '.'
			lx.eatWord(false)
		}
		lx.emitLexeme(token.ContextPath, start)
		return
	}
	lx.emit(token.Ident, word, start)
}

// eatWord consumes identifier continuation bytes. With hyphens set, an
// inner '-' followed by a letter is part of the word ("aria-label").
func (lx *Lexer) eatWord(hyphens bool) {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if isIdentContinueByte(b) {
			lx.cursor.Bump()
			continue
		}
		if hyphens && b == '-' {
			if next := lx.cursor.PeekAt(1); isLower(next) || isUpper(next) {
				lx.cursor.Bump()
				continue
			}
		}
		return
	}
}

// atPathSegment reports whether the cursor is at ".ident".
func (lx *Lexer) atPathSegment() bool {
	b0, b1, ok := lx.cursor.Peek2()
	return ok && b0 == '.' && isIdentStartByte(b1)
}

// scanDirective handles "@if", "@else", "@each" and "@slot".
// Any other '@' is reported and the following name is scanned normally.
func (lx *Lexer) scanDirective() {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '@'
	at := lx.cursor.Mark()
	for isIdentContinueByte(lx.cursor.Peek()) && !lx.cursor.EOF() {
		lx.cursor.Bump()
	}
	if kind, ok := token.LookupDirective(string(lx.cursor.Bytes(at))); ok {
		lx.emitLexeme(kind, start)
		return
	}
	lx.cursor.Reset(at)
	lx.errorAt(lx.cursor.LocFrom(start), "Unexpected character: '@'")
}
