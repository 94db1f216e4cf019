// Package lexer turns HTMS source bytes into a token slice.
//
// The scanner is an explicit two-state machine. In modeNormal it recognises
// keywords, directives, identifiers, literals and punctuation by longest
// match. Consuming "{{" switches to modeText, where ordinary tokenisation is
// suspended: the scanner searches for the literal "}}" and emits everything
// in between as one TextContent token, then TextClose, and switches back.
//
// Errors never stop the scan. Every invalid character is recorded as a
// LexError and scanning resumes at the next byte; the caller receives the
// complete list. The token slice always ends with a zero-width EOF token.
package lexer
