package sema

import (
	"fmt"
	"strings"

	"github.com/creachadair/mds/mapset"

	"htms/internal/ast"
	"htms/internal/diag"
	"htms/internal/symbols"
)

func (a *analyzer) validate() {
	a.validateRoutes()
	a.reportUnused()
	a.requirePages()
}

// validateRoutes walks pages in source order. A duplicate route is reported
// instead of (not in addition to) a malformed one.
func (a *analyzer) validateRoutes() {
	pages := a.prog.Pages()
	seen := mapset.New[string]()
	for i, p := range pages {
		if seen.Has(p.Route) {
			b := diag.ReportError(a.reporter, diag.SemaError, p.Loc,
				fmt.Sprintf("Duplicate route: '%s' is already defined", p.Route))
			if first := firstWithRoute(pages[:i], p.Route); first != nil {
				b.WithNote(first.Loc, fmt.Sprintf("route first used by page '%s'", first.Name))
			}
			b.Emit()
			continue
		}
		if !strings.HasPrefix(p.Route, "/") {
			diag.ReportError(a.reporter, diag.SemaError, p.Loc,
				fmt.Sprintf("Invalid route: '%s' must start with '/'", p.Route)).Emit()
		}
		seen.Add(p.Route)
	}
}

func firstWithRoute(pages []*ast.Page, route string) *ast.Page {
	for _, p := range pages {
		if p.Route == route {
			return p
		}
	}
	return nil
}

func (a *analyzer) reportUnused() {
	for i := 1; i <= a.syms.Len(); i++ {
		sym := a.syms.Get(symbols.SymbolID(i))
		if sym.Kind != symbols.SymbolComponent || sym.Used() {
			continue
		}
		diag.ReportWarning(a.reporter, diag.SemaUnused, sym.DeclaredAt,
			fmt.Sprintf("Component '%s' is declared but never used", sym.Name)).Emit()
	}
}

func (a *analyzer) requirePages() {
	for i := 1; i <= a.syms.Len(); i++ {
		if a.syms.Get(symbols.SymbolID(i)).Kind == symbols.SymbolPage {
			return
		}
	}
	diag.ReportWarning(a.reporter, diag.SemaUnused, a.prog.Loc,
		"No pages defined - at least one page is recommended").Emit()
}
