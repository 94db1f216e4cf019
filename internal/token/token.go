package token

import (
	"htms/internal/source"
)

// Token is a single lexeme with its kind and location.
type Token struct {
	Kind  Kind
	Value string
	Loc   source.Location
}

// IsLiteral reports whether the token is a string, number or boolean literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case StringLit, NumberLit, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwComponent, KwSection, KwPage, KwAs, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsDirective reports whether the token is an '@' directive.
func (t Token) IsDirective() bool {
	switch t.Kind {
	case DirIf, DirElse, DirEach, DirSlot:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is punctuation or an operator.
func (t Token) IsPunctOrOp() bool {
	return t.Kind >= LBrace && t.Kind <= Slash
}

// IsText reports whether the token belongs to a "{{ }}" text block.
func (t Token) IsText() bool {
	return t.Kind >= TextOpen && t.Kind <= TextClose
}
