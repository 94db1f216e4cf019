package codegen

import (
	"errors"
	"regexp"
	"strings"

	"github.com/creachadair/mds/mapset"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"htms/internal/ast"
	"htms/internal/symbols"
)

// HTML renders pages as static HTML5.
type HTML struct{}

var errNilProgram = errors.New("codegen: nil program")

// Generate returns nothing when the program has no pages.
func (HTML) Generate(prog *ast.Program, syms *symbols.Table, opts Options) ([]File, error) {
	if prog == nil {
		return nil, errNilProgram
	}
	pages := prog.Pages()
	if len(pages) == 0 {
		return nil, nil
	}
	g := &htmlGen{prog: prog, syms: syms, opts: opts}
	if opts.SplitTemplates {
		return g.split(pages), nil
	}
	return g.inline(pages), nil
}

type htmlGen struct {
	prog *ast.Program
	syms *symbols.Table
	opts Options
	// expanding holds declarations being inlined, to cut reference cycles.
	expanding []string
}

func (g *htmlGen) inline(pages []*ast.Page) []File {
	common := commonRefs(pages)
	commonSet := mapset.New(common...)

	var layout strings.Builder
	for _, name := range common {
		g.writeRef(&layout, name, 2)
	}

	var templates strings.Builder
	routes := make([]route, 0, len(pages))
	for _, p := range pages {
		id := "page-" + strings.ToLower(p.Name)
		routes = append(routes, route{path: p.Route, target: id})
		templates.WriteString("  <template id=\"" + id + "\">\n")
		for _, n := range p.Body {
			if ref, ok := n.(*ast.ComponentRef); ok && commonSet.Has(ref.Name) {
				continue
			}
			g.writeNode(&templates, n, 2)
		}
		templates.WriteString("  </template>\n\n")
	}

	var body strings.Builder
	if layout.Len() > 0 {
		body.WriteString("  <div id=\"layout\">\n")
		body.WriteString(layout.String())
		body.WriteString("  </div>\n\n")
	}
	body.WriteString("  <div id=\"app\"></div>\n\n")
	body.WriteString(templates.String())
	if g.opts.GenerateRouter {
		body.WriteString(routerScript(routes, false))
	}
	return []File{{Path: g.outputName(pages), Content: g.document(pages, body.String())}}
}

func (g *htmlGen) split(pages []*ast.Page) []File {
	files := make([]File, 0, len(pages)+1)
	routes := make([]route, 0, len(pages))
	for _, p := range pages {
		name := strings.ToLower(p.Name) + ".template.html"
		routes = append(routes, route{path: p.Route, target: name})
		var sb strings.Builder
		for _, n := range p.Body {
			g.writeNode(&sb, n, 0)
		}
		files = append(files, File{Path: name, Content: sb.String()})
	}

	var body strings.Builder
	body.WriteString("  <div id=\"app\">Loading...</div>\n")
	if g.opts.GenerateRouter {
		body.WriteString("\n")
		body.WriteString(routerScript(routes, true))
	}
	return append(files, File{Path: g.outputName(pages), Content: g.document(pages, body.String())})
}

// document wraps body into the host template or a standalone HTML5 page.
func (g *htmlGen) document(pages []*ast.Page, body string) string {
	if g.opts.TemplateHTML != "" {
		return injectIntoBody(g.opts.TemplateHTML, body)
	}
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n")
	sb.WriteString("<html lang=\"en\">\n")
	sb.WriteString("<head>\n")
	sb.WriteString("  <meta charset=\"UTF-8\">\n")
	sb.WriteString("  <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	sb.WriteString("  <title>" + escapeHTML(g.title(pages)) + "</title>\n")
	sb.WriteString("</head>\n")
	sb.WriteString("<body>\n")
	sb.WriteString(body)
	sb.WriteString("</body>\n")
	sb.WriteString("</html>\n")
	return sb.String()
}

var titleCaser = cases.Title(language.English, cases.NoLower)

func (g *htmlGen) title(pages []*ast.Page) string {
	if g.opts.Title != "" {
		return g.opts.Title
	}
	return titleCaser.String(pages[0].Name)
}

func (g *htmlGen) outputName(pages []*ast.Page) string {
	if g.opts.SourceName != "" {
		return g.opts.SourceName
	}
	return strings.ToLower(pages[0].Name) + ".html"
}

var bodyTag = regexp.MustCompile(`(?i)<body[^>]*>`)

// injectIntoBody inserts content after the first <body ...> tag. A template
// without one is returned unchanged.
func injectIntoBody(template, content string) string {
	loc := bodyTag.FindStringIndex(template)
	if loc == nil {
		return template
	}
	return template[:loc[1]] + "\n" + content + template[loc[1]:]
}

// commonRefs returns component references that appear at the top level of
// every page, in first-page order, without duplicates.
func commonRefs(pages []*ast.Page) []string {
	var common []string
	seen := mapset.New[string]()
	for _, name := range topLevelRefs(pages[0].Body) {
		if !seen.Has(name) {
			seen.Add(name)
			common = append(common, name)
		}
	}
	for _, p := range pages[1:] {
		here := mapset.New(topLevelRefs(p.Body)...)
		kept := common[:0]
		for _, name := range common {
			if here.Has(name) {
				kept = append(kept, name)
			}
		}
		common = kept
	}
	return common
}

func topLevelRefs(nodes []ast.Node) []string {
	var out []string
	for _, n := range nodes {
		if ref, ok := n.(*ast.ComponentRef); ok {
			out = append(out, ref.Name)
		}
	}
	return out
}
