package sema

import (
	"fmt"

	"htms/internal/diag"
	"htms/internal/symbols"
)

func (a *analyzer) collect() {
	for _, d := range a.prog.Decls {
		sym := symbols.Symbol{
			Name:       d.DeclName(),
			Kind:       symbols.KindOf(d),
			DeclaredAt: d.Pos(),
			Decl:       d,
		}
		existing, ok := a.syms.Declare(sym)
		if ok {
			continue
		}
		first := a.syms.Get(existing)
		diag.ReportError(a.reporter, diag.SemaError, d.Pos(),
			fmt.Sprintf("Duplicate declaration: '%s' is already defined", sym.Name)).
			WithNote(first.DeclaredAt, fmt.Sprintf("'%s' first declared here as a %s", sym.Name, first.Kind)).
			Emit()
	}
}
