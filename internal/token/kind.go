package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// KwComponent represents the 'component' keyword.
	KwComponent // component
	// KwSection represents the 'section' keyword.
	KwSection // section
	// KwPage represents the 'page' keyword.
	KwPage // page
	// KwAs represents the 'as' keyword.
	KwAs // as
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwFalse represents the 'false' keyword.
	KwFalse // false

	// DirIf represents the '@if' directive.
	DirIf // @if
	// DirElse represents the '@else' directive.
	DirElse // @else
	// DirEach represents the '@each' directive.
	DirEach // @each
	// DirSlot represents the '@slot' directive.
	DirSlot // @slot

	// Ident is a lower-case identifier: tags, attributes, page names, bindings.
	Ident
	// ComponentName is an identifier starting with an upper-case letter.
	ComponentName
	// ContextPath is a "ctx.seg(.seg)*" access chain.
	ContextPath
	// StringLit is a quoted string literal.
	StringLit
	// NumberLit is a decimal number literal.
	NumberLit

	LBrace   // {
	RBrace   // }
	LBracket // [
	RBracket // ]
	LParen   // (
	RParen   // )
	Colon    // :
	Comma    // ,
	Dot      // .
	Question // ?

	EqEq   // ==
	BangEq // !=
	Lt     // <
	LtEq   // <=
	Gt     // >
	GtEq   // >=
	AndAnd // &&
	OrOr   // ||
	Plus   // +
	Minus  // -
	Star   // *
	Slash  // /

	// TextOpen is the "{{" marker that switches the scanner to text mode.
	TextOpen
	// TextContent is the raw text between "{{" and "}}".
	TextContent
	// TextClose is the "}}" marker ending text mode.
	TextClose
)

var kindNames = [...]string{
	Invalid:       "Invalid",
	EOF:           "Eof",
	KwComponent:   "Component",
	KwSection:     "Section",
	KwPage:        "Page",
	KwAs:          "As",
	KwTrue:        "True",
	KwFalse:       "False",
	DirIf:         "If",
	DirElse:       "Else",
	DirEach:       "Each",
	DirSlot:       "Slot",
	Ident:         "Identifier",
	ComponentName: "ComponentName",
	ContextPath:   "ContextPath",
	StringLit:     "String",
	NumberLit:     "Number",
	LBrace:        "LBrace",
	RBrace:        "RBrace",
	LBracket:      "LBracket",
	RBracket:      "RBracket",
	LParen:        "LParen",
	RParen:        "RParen",
	Colon:         "Colon",
	Comma:         "Comma",
	Dot:           "Dot",
	Question:      "Question",
	EqEq:          "Eq",
	BangEq:        "Ne",
	Lt:            "Lt",
	LtEq:          "Le",
	Gt:            "Gt",
	GtEq:          "Ge",
	AndAnd:        "And",
	OrOr:          "Or",
	Plus:          "Plus",
	Minus:         "Minus",
	Star:          "Star",
	Slash:         "Slash",
	TextOpen:      "TextOpen",
	TextContent:   "TextContent",
	TextClose:     "TextClose",
}

// String returns the display name used in diagnostics ("got RBrace").
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Unknown"
}

// IsEOF reports whether k marks end of input.
func (k Kind) IsEOF() bool { return k == EOF }

// IsDeclStart reports whether k begins a top-level declaration.
func (k Kind) IsDeclStart() bool {
	switch k {
	case KwComponent, KwSection, KwPage:
		return true
	default:
		return false
	}
}
