package sema_test

import (
	"testing"

	"htms/internal/ast"
	"htms/internal/diag"
	"htms/internal/lexer"
	"htms/internal/parser"
	"htms/internal/sema"
	"htms/internal/source"
	"htms/internal/symbols"
)

func analyzeSource(t *testing.T, src string) (*symbols.Table, []diag.Diagnostic) {
	t.Helper()
	toks, lexErrs := lexer.Tokenize([]byte(src))
	if len(lexErrs) != 0 {
		t.Fatalf("lexical errors: %v", lexErrs)
	}
	prog, parseErrs := parser.Parse(toks)
	if len(parseErrs) != 0 {
		t.Fatalf("parse errors: %v", parseErrs)
	}
	return sema.Analyze(prog)
}

func golden(t *testing.T, src string) string {
	t.Helper()
	_, diags := analyzeSource(t, src)
	return diag.FormatGolden(diags, "t.htms", true)
}

func expectGolden(t *testing.T, src, want string) {
	t.Helper()
	if got := golden(t, src); got != want {
		t.Fatalf("diagnostics mismatch:\nwant:\n%s\n\ngot:\n%s", want, got)
	}
}

func TestCleanProgram(t *testing.T) {
	tab, diags := analyzeSource(t, `
component NavBar { nav { } }
section Hero { NavBar }
page home "/" { Hero }
`)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %s", diag.FormatGolden(diags, "t.htms", true))
	}
	for _, name := range []string{"NavBar", "Hero", "home"} {
		if !tab.Has(name) {
			t.Fatalf("%s not declared", name)
		}
	}
	nav, _ := tab.Lookup("NavBar")
	if len(nav.Usages) != 1 || nav.Usages[0].Line != 3 {
		t.Fatalf("NavBar usages = %+v", nav.Usages)
	}
	if nav.Kind != symbols.SymbolComponent {
		t.Fatalf("kind = %v", nav.Kind)
	}
}

func TestDuplicateDeclaration(t *testing.T) {
	tab, diags := analyzeSource(t, `component A { }
section A { }
page home "/" { A }`)
	want := "error E003 t.htms:2:1 Duplicate declaration: 'A' is already defined\n" +
		"note E003 t.htms:1:1 'A' first declared here as a component"
	if got := diag.FormatGolden(diags, "t.htms", true); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
	a, _ := tab.Lookup("A")
	if a.Kind != symbols.SymbolComponent || a.DeclaredAt.Line != 1 {
		t.Fatalf("first declaration must win: %+v", a)
	}
	if tab.Len() != 2 {
		t.Fatalf("duplicate must not be inserted, len=%d", tab.Len())
	}
}

func TestUndefinedComponentEverywhere(t *testing.T) {
	expectGolden(t, `page home "/" {
  Missing
  div { Inner }
  @if ctx.a { } @else @if ctx.b { } @else @if ctx.c { Deep } @else { Last }
  @each ctx.xs as x { Looped }
  Known { Child }
}
section Known { }`,
		"error E003 t.htms:2:3 Undefined component: 'Missing'\n"+
			"error E003 t.htms:3:9 Undefined component: 'Inner'\n"+
			"error E003 t.htms:4:55 Undefined component: 'Deep'\n"+
			"error E003 t.htms:4:70 Undefined component: 'Last'\n"+
			"error E003 t.htms:5:23 Undefined component: 'Looped'\n"+
			"error E003 t.htms:6:11 Undefined component: 'Child'")
}

func TestReferencesMayNameSectionsAndPages(t *testing.T) {
	tab, diags := analyzeSource(t, `section Hero { }
page home "/" { Hero }`)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	hero, _ := tab.Lookup("Hero")
	if !hero.Used() {
		t.Fatalf("section usage not recorded")
	}
}

func TestRoutes(t *testing.T) {
	expectGolden(t, `page home "/" { }
page about "about" { }
page landing "/" { }
page again "about" { }`,
		"error E003 t.htms:2:1 Invalid route: 'about' must start with '/'\n"+
			"error E003 t.htms:3:1 Duplicate route: '/' is already defined\n"+
			"note E003 t.htms:1:1 route first used by page 'home'\n"+
			"error E003 t.htms:4:1 Duplicate route: 'about' is already defined\n"+
			"note E003 t.htms:2:1 route first used by page 'about'")
}

func TestWarnings(t *testing.T) {
	expectGolden(t, `component Unused { }
component Used { }
component AlsoUnused { }
section S { Used }`,
		"warning W001 t.htms:1:1 Component 'Unused' is declared but never used\n"+
			"warning W001 t.htms:3:1 Component 'AlsoUnused' is declared but never used\n"+
			"warning W001 t.htms:1:1 No pages defined - at least one page is recommended")
}

func TestPassOrder(t *testing.T) {
	expectGolden(t, `component C { Nope }
component C { }
page p "x" { }`,
		"error E003 t.htms:2:1 Duplicate declaration: 'C' is already defined\n"+
			"note E003 t.htms:1:1 'C' first declared here as a component\n"+
			"error E003 t.htms:1:15 Undefined component: 'Nope'\n"+
			"error E003 t.htms:3:1 Invalid route: 'x' must start with '/'\n"+
			"warning W001 t.htms:1:1 Component 'C' is declared but never used")
}

func TestEmptyProgramWarnsAtProgramLocation(t *testing.T) {
	_, diags := sema.Analyze(&ast.Program{})
	if len(diags) != 1 || diags[0].Code != diag.SemaUnused || diags[0].Severity != diag.SevWarning {
		t.Fatalf("diags = %+v", diags)
	}
}

type countingReporter struct{ n int }

func (r *countingReporter) Report(diag.Code, diag.Severity, source.Location, string, []diag.Note) {
	r.n++
}

func TestReporterReceivesEveryDiagnostic(t *testing.T) {
	toks, _ := lexer.Tokenize([]byte(`page a "/" { X Y }`))
	prog, _ := parser.Parse(toks)
	r := &countingReporter{}
	_, diags := sema.AnalyzeWithOptions(prog, sema.Options{Reporter: r})
	if r.n != len(diags) || r.n != 2 {
		t.Fatalf("reporter saw %d, result has %d", r.n, len(diags))
	}
}
