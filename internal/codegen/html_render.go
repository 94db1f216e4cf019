package codegen

import (
	"regexp"
	"slices"
	"strings"

	"htms/internal/ast"
)

var selfClosing = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

func (g *htmlGen) writeNode(sb *strings.Builder, n ast.Node, indent int) {
	switch n := n.(type) {
	case *ast.Element:
		g.writeElement(sb, n, indent)
	case *ast.ComponentRef:
		g.writeRef(sb, n.Name, indent)
	case *ast.Text:
		writeText(sb, n)
	case *ast.If, *ast.Each, *ast.Slot:
		// Empty context: conditions are false, lists are empty, slots unfilled.
	default:
		panic("unreachable")
	}
}

// writeRef inlines the body of a component or section. Unknown names and
// recursive references render nothing.
func (g *htmlGen) writeRef(sb *strings.Builder, name string, indent int) {
	body, ok := g.refBody(name)
	if !ok || slices.Contains(g.expanding, name) {
		return
	}
	g.expanding = append(g.expanding, name)
	for _, child := range body {
		g.writeNode(sb, child, indent)
	}
	g.expanding = g.expanding[:len(g.expanding)-1]
}

func (g *htmlGen) refBody(name string) ([]ast.Node, bool) {
	var decl ast.Decl
	if g.syms != nil {
		if sym, ok := g.syms.Lookup(name); ok {
			decl = sym.Decl
		}
	}
	if decl == nil {
		for _, d := range g.prog.Decls {
			if d.DeclName() == name {
				decl = d
				break
			}
		}
	}
	switch d := decl.(type) {
	case *ast.Component:
		return d.Body, true
	case *ast.Section:
		return d.Body, true
	default:
		return nil, false
	}
}

func (g *htmlGen) writeElement(sb *strings.Builder, el *ast.Element, indent int) {
	pad := strings.Repeat("  ", indent)
	sb.WriteString(pad)
	sb.WriteByte('<')
	sb.WriteString(el.Tag)
	for _, attr := range el.Attrs {
		writeAttr(sb, attr)
	}
	if selfClosing[el.Tag] {
		sb.WriteString(">\n")
		return
	}
	sb.WriteByte('>')

	switch {
	case len(el.Children) == 0:
	case len(el.Children) == 1 && isText(el.Children[0]):
		g.writeNode(sb, el.Children[0], 0)
	default:
		sb.WriteByte('\n')
		for _, child := range el.Children {
			g.writeNode(sb, child, indent+1)
		}
		sb.WriteString(pad)
	}
	sb.WriteString("</" + el.Tag + ">\n")
}

func isText(n ast.Node) bool {
	_, ok := n.(*ast.Text)
	return ok
}

// writeAttr renders literals; anything that needs a runtime context gets an
// empty value. `true` renders the bare name, `false` and event handlers are
// dropped.
func writeAttr(sb *strings.Builder, attr ast.Attr) {
	var value string
	switch v := attr.Value.(type) {
	case *ast.StringLit:
		value = escapeHTML(v.Value)
	case *ast.NumberLit:
		value = ast.FormatNumber(v.Value)
	case *ast.BoolLit:
		if v.Value {
			sb.WriteString(" " + attr.Name)
		}
		return
	case *ast.Event:
		return
	case *ast.ContextPath, *ast.Ident, *ast.Member, *ast.Binary, *ast.Ternary, *ast.Call:
	default:
		panic("unreachable")
	}
	sb.WriteString(" " + attr.Name + "=\"" + value + "\"")
}

var interpolation = regexp.MustCompile(`\$\{[^}]+\}`)

// writeText drops interpolations. A bare path such as `item.title` is
// entirely dynamic and renders nothing.
func writeText(sb *strings.Builder, t *ast.Text) {
	if t.Dynamic && !strings.Contains(t.Content, "${") {
		return
	}
	static := interpolation.ReplaceAllString(t.Content, "")
	if strings.TrimSpace(static) == "" {
		return
	}
	sb.WriteString(escapeHTML(static))
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
