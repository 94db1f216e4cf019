package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"htms/internal/ast"
	"htms/internal/source"
)

// ASTNodeOutput is the renderer-neutral shape of one syntax node.
type ASTNodeOutput struct {
	Type     string            `json:"type"`
	Text     string            `json:"text,omitempty"`
	Location source.Location   `json:"location"`
	Fields   map[string]string `json:"fields,omitempty"`
	Children []ASTNodeOutput   `json:"children,omitempty"`
}

// BuildAST converts prog into the output tree.
func BuildAST(prog *ast.Program) ASTNodeOutput {
	root := ASTNodeOutput{Type: "Program", Location: prog.Loc}
	for _, d := range prog.Decls {
		root.Children = append(root.Children, declOutput(d))
	}
	return root
}

func declOutput(d ast.Decl) ASTNodeOutput {
	switch d := d.(type) {
	case *ast.Component:
		out := ASTNodeOutput{Type: "Component", Text: d.Name, Location: d.Loc}
		for _, p := range d.Params {
			out.Children = append(out.Children, ASTNodeOutput{Type: "Param", Text: p.Name + ": " + p.Binding, Location: p.Loc})
		}
		out.Children = append(out.Children, attrOutputs(d.Attrs)...)
		out.Children = append(out.Children, bodyOutputs(d.Body)...)
		return out
	case *ast.Section:
		return ASTNodeOutput{Type: "Section", Text: d.Name, Location: d.Loc, Children: bodyOutputs(d.Body)}
	case *ast.Page:
		return ASTNodeOutput{
			Type:     "Page",
			Text:     d.Name,
			Location: d.Loc,
			Fields:   map[string]string{"route": d.Route},
			Children: bodyOutputs(d.Body),
		}
	default:
		panic("unreachable")
	}
}

func attrOutputs(attrs []ast.Attr) []ASTNodeOutput {
	out := make([]ASTNodeOutput, 0, len(attrs))
	for _, a := range attrs {
		out = append(out, ASTNodeOutput{
			Type:     "Attr",
			Text:     a.Name,
			Location: a.Loc,
			Children: []ASTNodeOutput{exprOutput(a.Value)},
		})
	}
	return out
}

func bodyOutputs(nodes []ast.Node) []ASTNodeOutput {
	out := make([]ASTNodeOutput, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, nodeOutput(n))
	}
	return out
}

func nodeOutput(n ast.Node) ASTNodeOutput {
	switch n := n.(type) {
	case *ast.Element:
		out := ASTNodeOutput{Type: "Element", Text: n.Tag, Location: n.Loc}
		out.Children = append(attrOutputs(n.Attrs), bodyOutputs(n.Children)...)
		return out
	case *ast.ComponentRef:
		out := ASTNodeOutput{Type: "ComponentRef", Text: n.Name, Location: n.Loc}
		for _, b := range n.Bindings {
			out.Children = append(out.Children, ASTNodeOutput{
				Type:     "Binding",
				Text:     b.Name,
				Location: b.Loc,
				Children: []ASTNodeOutput{exprOutput(b.Value)},
			})
		}
		out.Children = append(out.Children, bodyOutputs(n.Children)...)
		return out
	case *ast.Text:
		out := ASTNodeOutput{Type: "Text", Text: n.Content, Location: n.Loc}
		if n.Dynamic {
			out.Fields = map[string]string{"dynamic": "true"}
		}
		return out
	case *ast.If:
		return ifOutput(n)
	case *ast.Each:
		out := ASTNodeOutput{Type: "Each", Text: n.Item, Location: n.Loc}
		if n.Index != "" {
			out.Fields = map[string]string{"index": n.Index}
		}
		out.Children = append([]ASTNodeOutput{exprOutput(n.Iterable)}, bodyOutputs(n.Body)...)
		return out
	case *ast.Slot:
		return ASTNodeOutput{Type: "Slot", Location: n.Loc}
	default:
		panic("unreachable")
	}
}

func ifOutput(n *ast.If) ASTNodeOutput {
	out := ASTNodeOutput{Type: "If", Location: n.Loc}
	out.Children = append(out.Children, exprOutput(n.Cond))
	out.Children = append(out.Children, ASTNodeOutput{Type: "Then", Location: n.Loc, Children: bodyOutputs(n.Then)})
	switch alt := n.Else.(type) {
	case nil:
	case *ast.ElseBlock:
		out.Children = append(out.Children, ASTNodeOutput{Type: "Else", Location: alt.Loc, Children: bodyOutputs(alt.Body)})
	case *ast.ElseIf:
		out.Children = append(out.Children, ASTNodeOutput{Type: "ElseIf", Location: alt.Loc, Children: []ASTNodeOutput{ifOutput(alt.If)}})
	default:
		panic("unreachable")
	}
	return out
}

func exprOutput(e ast.Expr) ASTNodeOutput {
	switch e := e.(type) {
	case *ast.StringLit:
		return ASTNodeOutput{Type: "String", Text: strconv.Quote(e.Value), Location: e.Loc}
	case *ast.NumberLit:
		return ASTNodeOutput{Type: "Number", Text: ast.FormatNumber(e.Value), Location: e.Loc}
	case *ast.BoolLit:
		return ASTNodeOutput{Type: "Bool", Text: strconv.FormatBool(e.Value), Location: e.Loc}
	case *ast.ContextPath:
		return ASTNodeOutput{Type: "ContextPath", Text: e.Path, Location: e.Loc}
	case *ast.Ident:
		return ASTNodeOutput{Type: "Ident", Text: e.Name, Location: e.Loc}
	case *ast.Member:
		return ASTNodeOutput{Type: "Member", Text: e.Property, Location: e.Loc, Children: []ASTNodeOutput{exprOutput(e.Object)}}
	case *ast.Binary:
		return ASTNodeOutput{
			Type:     "Binary",
			Text:     e.Op.String(),
			Location: e.Loc,
			Children: []ASTNodeOutput{exprOutput(e.Left), exprOutput(e.Right)},
		}
	case *ast.Ternary:
		return ASTNodeOutput{
			Type:     "Ternary",
			Location: e.Loc,
			Children: []ASTNodeOutput{exprOutput(e.Cond), exprOutput(e.Then), exprOutput(e.Else)},
		}
	case *ast.Call:
		out := ASTNodeOutput{Type: "Call", Text: e.Callee, Location: e.Loc}
		for _, a := range e.Args {
			out.Children = append(out.Children, exprOutput(a))
		}
		return out
	case *ast.Event:
		out := ASTNodeOutput{Type: "Event", Text: e.Event, Location: e.Loc, Fields: map[string]string{"action": e.Action}}
		if len(e.Modifiers) > 0 {
			out.Fields["modifiers"] = strings.Join(e.Modifiers, ",")
		}
		for _, a := range e.Args {
			out.Children = append(out.Children, exprOutput(a))
		}
		return out
	default:
		panic("unreachable")
	}
}

// FormatASTPretty prints prog as an indented tree:
//
//	Program (1:1)
//	└─ Page home (1:1) route="/"
//	   └─ Element p (1:17)
func FormatASTPretty(w io.Writer, prog *ast.Program) error {
	root := BuildAST(prog)
	if _, err := fmt.Fprintln(w, nodeLabel(&root)); err != nil {
		return err
	}
	writeChildren(w, root.Children, "")
	return nil
}

func writeChildren(w io.Writer, children []ASTNodeOutput, prefix string) {
	for i := range children {
		branch, next := "├─ ", "│  "
		if i == len(children)-1 {
			branch, next = "└─ ", "   "
		}
		fmt.Fprintf(w, "%s%s%s\n", prefix, branch, nodeLabel(&children[i]))
		writeChildren(w, children[i].Children, prefix+next)
	}
}

func nodeLabel(n *ASTNodeOutput) string {
	var sb strings.Builder
	sb.WriteString(n.Type)
	if n.Text != "" {
		sb.WriteString(" ")
		sb.WriteString(n.Text)
	}
	fmt.Fprintf(&sb, " (%s)", n.Location)
	for _, k := range slices.Sorted(maps.Keys(n.Fields)) {
		fmt.Fprintf(&sb, " %s=%q", k, n.Fields[k])
	}
	return sb.String()
}

// FormatASTJSON writes prog as indented JSON.
func FormatASTJSON(w io.Writer, prog *ast.Program) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildAST(prog))
}
