package symbols

import (
	"htms/internal/ast"
	"htms/internal/source"
)

// SymbolKind classifies a declaration.
type SymbolKind uint8

const (
	SymbolInvalid SymbolKind = iota
	SymbolComponent
	SymbolSection
	SymbolPage
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolComponent:
		return "component"
	case SymbolSection:
		return "section"
	case SymbolPage:
		return "page"
	default:
		return "invalid"
	}
}

// KindOf maps a declaration to its symbol kind.
func KindOf(d ast.Decl) SymbolKind {
	switch d.(type) {
	case *ast.Component:
		return SymbolComponent
	case *ast.Section:
		return SymbolSection
	case *ast.Page:
		return SymbolPage
	default:
		panic("unreachable")
	}
}

// SymbolID indexes a symbol inside its table; 0 is "no symbol".
type SymbolID uint32

const NoSymbolID SymbolID = 0

func (id SymbolID) IsValid() bool { return id != NoSymbolID }

// Symbol is one named declaration and every place it is referenced.
type Symbol struct {
	Name       string
	Kind       SymbolKind
	DeclaredAt source.Location
	Usages     []source.Location
	Decl       ast.Decl `json:"-"`
}

// Used reports whether the symbol is referenced at least once.
func (s *Symbol) Used() bool { return len(s.Usages) > 0 }
