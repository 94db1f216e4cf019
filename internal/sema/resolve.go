package sema

import (
	"fmt"

	"htms/internal/ast"
	"htms/internal/diag"
)

// resolve checks every component reference, in declaration order and
// depth-first within each body.
func (a *analyzer) resolve() {
	ast.InspectDecls(a.prog.Decls, func(n ast.Node) bool {
		if ref, ok := n.(*ast.ComponentRef); ok {
			a.resolveRef(ref)
		}
		return true
	})
}

// Sections and pages share the namespace, so referencing them resolves too.
func (a *analyzer) resolveRef(ref *ast.ComponentRef) {
	id := a.syms.Resolve(ref.Name)
	if !id.IsValid() {
		diag.ReportError(a.reporter, diag.SemaError, ref.Loc,
			fmt.Sprintf("Undefined component: '%s'", ref.Name)).Emit()
		return
	}
	sym := a.syms.Get(id)
	sym.Usages = append(sym.Usages, ref.Loc)
}
