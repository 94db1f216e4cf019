package codegen_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"htms/internal/ast"
	"htms/internal/codegen"
	"htms/internal/lexer"
	"htms/internal/parser"
	"htms/internal/sema"
	"htms/internal/symbols"
)

func compile(t *testing.T, src string) (*ast.Program, *symbols.Table) {
	t.Helper()
	toks, lexErrs := lexer.Tokenize([]byte(src))
	if len(lexErrs) != 0 {
		t.Fatalf("lexical errors: %v", lexErrs)
	}
	prog, errs := parser.Parse(toks)
	if len(errs) != 0 {
		t.Fatalf("parse errors: %v", errs)
	}
	syms, _ := sema.Analyze(prog)
	return prog, syms
}

func generate(t *testing.T, src string, opts codegen.Options) []codegen.File {
	t.Helper()
	prog, syms := compile(t, src)
	files, err := codegen.HTML{}.Generate(prog, syms, opts)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return files
}

func TestElementRendering(t *testing.T) {
	files := generate(t, `
component Card {
  div [class: "card", data-n: 2, hidden: true, draggable: false, title: ctx.t, onClick.prevent: open] {
    h2 {{ Tom & "Jerry" }}
    img [src: "a.png"]
    p { }
    p {{ Hello ${ctx.name}! }}
    span {{ ${ctx.only} }}
    item.title
    @if ctx.show { p {{ hidden }} }
    @each ctx.xs as x { li }
    @slot
  }
}
page home "/" { Card }`, codegen.Options{})
	want := `  <div id="layout">
    <div class="card" data-n="2" hidden title="">
      <h2>Tom &amp; &quot;Jerry&quot;</h2>
      <img src="a.png">
      <p></p>
      <p>Hello !</p>
      <span></span>
    </div>
  </div>
`
	if !strings.Contains(files[0].Content, want) {
		t.Fatalf("layout block not found in:\n%s", files[0].Content)
	}
}

func TestInlineDocument(t *testing.T) {
	files := generate(t, `
component Nav { nav {{ Menu }} }
section Footer { footer {{ (c) }} }
page home "/" { Nav main {{ Home }} Footer }
page about "/about" { Nav p {{ About }} }`, codegen.Options{GenerateRouter: true})
	if len(files) != 1 || files[0].Path != "home.html" {
		t.Fatalf("files = %+v", files)
	}
	html := files[0].Content
	for _, want := range []string{
		"<!DOCTYPE html>\n",
		"  <title>Home</title>\n",
		"  <div id=\"layout\">\n    <nav>Menu</nav>\n  </div>\n\n  <div id=\"app\"></div>\n\n",
		"  <template id=\"page-home\">\n    <main>Home</main>\n    <footer>(c)</footer>\n  </template>\n\n",
		"  <template id=\"page-about\">\n    <p>About</p>\n  </template>\n\n",
		"      '/': 'page-home',\n      '/about': 'page-about',\n",
		"</body>\n</html>\n",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("missing %q in:\n%s", want, html)
		}
	}
}

func TestSplitTemplates(t *testing.T) {
	files := generate(t, `
page home "/" { h1 {{ Hi }} }
page about "/about" { p {{ About }} }`, codegen.Options{SplitTemplates: true, GenerateRouter: true, SourceName: "site.html"})
	var paths []string
	for _, f := range files {
		paths = append(paths, f.Path)
	}
	if diff := cmp.Diff([]string{"home.template.html", "about.template.html", "site.html"}, paths); diff != "" {
		t.Fatalf("paths (-want +got):\n%s", diff)
	}
	if files[0].Content != "<h1>Hi</h1>\n" {
		t.Fatalf("template = %q", files[0].Content)
	}
	main := files[2].Content
	if !strings.Contains(main, `<div id="app">Loading...</div>`) || !strings.Contains(main, "'/about': 'about.template.html'") {
		t.Fatalf("main = %s", main)
	}
	if !strings.Contains(main, "fetch(url)") {
		t.Fatalf("lazy router missing")
	}
}

func TestTemplateInjectionAndOptions(t *testing.T) {
	host := "<html><head></head><BODY class=\"x\"><footer></footer></BODY></html>"
	files := generate(t, `page home "/" { p {{ x }} }`, codegen.Options{TemplateHTML: host})
	got := files[0].Content
	if !strings.HasPrefix(got, "<html><head></head><BODY class=\"x\">\n  <div id=\"app\"></div>") {
		t.Fatalf("injection = %s", got)
	}
	if strings.Contains(got, "<script>") {
		t.Fatalf("router should be off unless requested")
	}
	if !strings.HasSuffix(got, "<footer></footer></BODY></html>") {
		t.Fatalf("tail lost: %s", got)
	}

	noBody := generate(t, `page home "/" { }`, codegen.Options{TemplateHTML: "<p>no body</p>"})
	if noBody[0].Content != "<p>no body</p>" {
		t.Fatalf("template without body must be unchanged, got %q", noBody[0].Content)
	}

	titled := generate(t, `page aboutUs "/" { }`, codegen.Options{})
	if !strings.Contains(titled[0].Content, "<title>AboutUs</title>") || titled[0].Path != "aboutus.html" {
		t.Fatalf("title/path: %s %s", titled[0].Path, titled[0].Content)
	}
	custom := generate(t, `page home "/" { }`, codegen.Options{Title: "My <Site>"})
	if !strings.Contains(custom[0].Content, "<title>My &lt;Site&gt;</title>") {
		t.Fatalf("custom title missing")
	}
}

func TestNoPagesNoFiles(t *testing.T) {
	files := generate(t, `component A { }`, codegen.Options{})
	if len(files) != 0 {
		t.Fatalf("files = %+v", files)
	}
	if _, err := (codegen.HTML{}).Generate(nil, nil, codegen.Options{}); err == nil {
		t.Fatalf("nil program should be an error")
	}
}

func TestRecursiveReferencesTerminate(t *testing.T) {
	files := generate(t, `
component Loop { div { Loop } }
page home "/" { p {{ a }} }
page other "/o" { Loop }`, codegen.Options{})
	if !strings.Contains(files[0].Content, "<template id=\"page-other\">\n    <div>\n    </div>\n") {
		t.Fatalf("recursion output:\n%s", files[0].Content)
	}
}

func TestLookupBackend(t *testing.T) {
	if _, err := codegen.Lookup("html"); err != nil {
		t.Fatalf("html backend: %v", err)
	}
	if _, err := codegen.Lookup("vue"); err == nil {
		t.Fatalf("unknown backend should fail")
	}
}
