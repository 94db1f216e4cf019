package token

var keywords = map[string]Kind{
	"component": KwComponent,
	"section":   KwSection,
	"page":      KwPage,
	"as":        KwAs,
	"true":      KwTrue,
	"false":     KwFalse,
}

var directives = map[string]Kind{
	"if":   DirIf,
	"else": DirElse,
	"each": DirEach,
	"slot": DirSlot,
}

// LookupKeyword returns the keyword kind for an identifier.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// LookupDirective returns the directive kind for the name following '@'.
func LookupDirective(name string) (Kind, bool) {
	k, ok := directives[name]
	return k, ok
}

// Keywords returns all keyword spellings; the order is unspecified.
func Keywords() []string {
	out := make([]string, 0, len(keywords))
	for kw := range keywords {
		out = append(out, kw)
	}
	return out
}
