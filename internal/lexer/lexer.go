package lexer

import (
	"htms/internal/token"
)

// mode is the scanner state.
type mode uint8

const (
	// modeNormal recognises ordinary tokens.
	modeNormal mode = iota
	// modeText captures raw text up to the next "}}".
	modeText
)

type Lexer struct {
	src    []byte
	cursor Cursor
	mode   mode
	opts   Options
	tokens []token.Token
	errs   []LexError
	read   int  // индекс следующего токена для Next
	done   bool // EOF уже выпущен
}

func New(src []byte, opts Options) *Lexer {
	return &Lexer{
		src:    src,
		cursor: NewCursor(src),
		mode:   modeNormal,
		opts:   opts,
		tokens: make([]token.Token, 0, len(src)/4+1),
	}
}

// Tokenize scans src to the end and returns every token and every error.
// The token slice always ends with EOF, even when errors were found.
func Tokenize(src []byte) ([]token.Token, []LexError) {
	return New(src, Options{}).Run()
}

// Run scans the remaining input.
func (lx *Lexer) Run() ([]token.Token, []LexError) {
	for !lx.done {
		lx.step()
	}
	return lx.tokens, lx.errs
}

// Next возвращает следующий токен. После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	for lx.read >= len(lx.tokens) {
		if lx.done {
			return lx.tokens[len(lx.tokens)-1]
		}
		lx.step()
	}
	tok := lx.tokens[lx.read]
	lx.read++
	return tok
}

// Errors returns the errors collected so far.
func (lx *Lexer) Errors() []LexError {
	return lx.errs
}

// step runs one transition of the state machine; it emits zero or more tokens.
func (lx *Lexer) step() {
	switch lx.mode {
	case modeText:
		lx.scanText()
	default:
		lx.scanNormal()
	}
}

func (lx *Lexer) scanNormal() {
	lx.skipTrivia()
	if lx.cursor.EOF() {
		m := lx.cursor.Mark()
		lx.emit(token.EOF, "", m)
		lx.done = true
		return
	}

	ch := lx.cursor.Peek()
	switch {
	case isIdentStartByte(ch):
		lx.scanIdentOrKeyword()
	case isDec(ch):
		lx.scanNumber()
	case ch == '"' || ch == '\'':
		lx.scanString()
	case ch == '@':
		lx.scanDirective()
	default:
		lx.scanOperatorOrPunct()
	}
}

// emit appends a token spanning from m to the cursor.
func (lx *Lexer) emit(kind token.Kind, value string, m Mark) {
	lx.tokens = append(lx.tokens, token.Token{
		Kind:  kind,
		Value: value,
		Loc:   lx.cursor.LocFrom(m),
	})
}

// emitLexeme appends a token whose value is its own source text.
func (lx *Lexer) emitLexeme(kind token.Kind, m Mark) {
	lx.emit(kind, string(lx.cursor.Bytes(m)), m)
}
