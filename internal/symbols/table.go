package symbols

import (
	"fmt"

	"fortio.org/safecast"
)

// Table is the read-only result of analysis.
type Table struct {
	syms   []Symbol // declaration order; SymbolID-1 indexes it
	byName map[string]SymbolID
}

// Has reports whether name is declared.
func (t *Table) Has(name string) bool {
	if t == nil {
		return false
	}
	_, ok := t.byName[name]
	return ok
}

// Lookup returns the symbol declared as name. The returned value is a copy.
func (t *Table) Lookup(name string) (Symbol, bool) {
	if t == nil {
		return Symbol{}, false
	}
	id, ok := t.byName[name]
	if !ok {
		return Symbol{}, false
	}
	return t.get(id), true
}

// ByKind returns symbols of kind k in declaration order.
func (t *Table) ByKind(k SymbolKind) []Symbol {
	if t == nil {
		return nil
	}
	var out []Symbol
	for i := range t.syms {
		if t.syms[i].Kind == k {
			out = append(out, t.clone(i))
		}
	}
	return out
}

// All returns every symbol in declaration order.
func (t *Table) All() []Symbol {
	if t == nil {
		return nil
	}
	out := make([]Symbol, len(t.syms))
	for i := range t.syms {
		out[i] = t.clone(i)
	}
	return out
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.syms)
}

func (t *Table) get(id SymbolID) Symbol {
	return t.clone(int(id) - 1)
}

// clone copies usages so callers cannot mutate the table.
func (t *Table) clone(i int) Symbol {
	s := t.syms[i]
	s.Usages = append(s.Usages[:0:0], s.Usages...)
	return s
}

// Builder accumulates symbols during analysis.
type Builder struct {
	t *Table
}

func NewBuilder(capHint int) *Builder {
	return &Builder{t: &Table{
		syms:   make([]Symbol, 0, capHint),
		byName: make(map[string]SymbolID, capHint),
	}}
}

// Declare inserts sym unless its name is taken. On conflict the existing
// symbol's id is returned with ok=false and nothing is inserted.
func (b *Builder) Declare(sym Symbol) (SymbolID, bool) {
	if id, exists := b.t.byName[sym.Name]; exists {
		return id, false
	}
	n, err := safecast.Conv[uint32](len(b.t.syms) + 1)
	if err != nil {
		panic(fmt.Errorf("symbol table overflow: %w", err))
	}
	id := SymbolID(n)
	b.t.syms = append(b.t.syms, sym)
	b.t.byName[sym.Name] = id
	return id, true
}

// Resolve returns the id of name, or NoSymbolID.
func (b *Builder) Resolve(name string) SymbolID {
	return b.t.byName[name]
}

// Get returns a pointer into the table under construction.
func (b *Builder) Get(id SymbolID) *Symbol {
	if !id.IsValid() || int(id) > len(b.t.syms) {
		return nil
	}
	return &b.t.syms[id-1]
}

// Len returns the number of declared symbols.
func (b *Builder) Len() int { return len(b.t.syms) }

// Table finalizes the builder. The builder must not be used afterwards.
func (b *Builder) Table() *Table {
	t := b.t
	b.t = nil
	return t
}
