package sema

import (
	"htms/internal/ast"
	"htms/internal/diag"
	"htms/internal/source"
	"htms/internal/symbols"
)

// Options configure an analysis run.
type Options struct {
	// Reporter additionally receives every diagnostic as it is produced.
	Reporter diag.Reporter
}

// Analyze runs all passes over prog.
func Analyze(prog *ast.Program) (*symbols.Table, []diag.Diagnostic) {
	return AnalyzeWithOptions(prog, Options{})
}

func AnalyzeWithOptions(prog *ast.Program, opts Options) (*symbols.Table, []diag.Diagnostic) {
	if prog == nil {
		prog = &ast.Program{}
	}
	a := &analyzer{
		prog: prog,
		syms: symbols.NewBuilder(len(prog.Decls)),
	}
	// каждый проход пишет в свой bag; склеиваем в порядке проходов
	bag := diag.NewBag(0)
	for _, pass := range []func(){a.collect, a.resolve, a.validate} {
		passBag := diag.NewBag(0)
		a.reporter = teeReporter{bag: diag.BagReporter{Bag: passBag}, next: opts.Reporter}
		pass()
		bag.Merge(passBag)
	}
	return a.syms.Table(), bag.Items()
}

type analyzer struct {
	prog     *ast.Program
	syms     *symbols.Builder
	reporter diag.Reporter
}

// teeReporter пишет в bag и, если задан, во внешний reporter.
type teeReporter struct {
	bag  diag.BagReporter
	next diag.Reporter
}

func (r teeReporter) Report(code diag.Code, sev diag.Severity, primary source.Location, msg string, notes []diag.Note) {
	r.bag.Report(code, sev, primary, msg, notes)
	if r.next != nil {
		r.next.Report(code, sev, primary, msg, notes)
	}
}
