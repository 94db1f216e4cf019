package lexer

import (
	"fmt"

	"htms/internal/source"
)

// Options tune a Lexer.
type Options struct {
	// MaxErrors stops recording errors after the limit; scanning still
	// runs to the end. Zero means unlimited.
	MaxErrors int
}

// LexError is one lexical problem.
type LexError struct {
	Message string
	Loc     source.Location
}

func (e LexError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Loc.Line, e.Loc.Column, e.Message)
}

func (lx *Lexer) errorAt(loc source.Location, msg string) {
	if lx.opts.MaxErrors > 0 && len(lx.errs) >= lx.opts.MaxErrors {
		return
	}
	lx.errs = append(lx.errs, LexError{Message: msg, Loc: loc})
}
