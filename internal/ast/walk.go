package ast

// Inspect walks body nodes depth-first in source order. f is called for each
// node; returning false skips that node's children. Else-if chains are
// followed to any depth.
func Inspect(nodes []Node, f func(Node) bool) {
	for _, n := range nodes {
		inspectNode(n, f)
	}
}

func inspectNode(n Node, f func(Node) bool) {
	if !f(n) {
		return
	}
	switch n := n.(type) {
	case *Element:
		Inspect(n.Children, f)
	case *ComponentRef:
		Inspect(n.Children, f)
	case *If:
		inspectIf(n, f)
	case *Each:
		Inspect(n.Body, f)
	case *Text, *Slot:
	default:
		panic("unreachable")
	}
}

func inspectIf(n *If, f func(Node) bool) {
	Inspect(n.Then, f)
	switch alt := n.Else.(type) {
	case nil:
	case *ElseBlock:
		Inspect(alt.Body, f)
	case *ElseIf:
		if alt.If != nil {
			inspectNode(alt.If, f)
		}
	default:
		panic("unreachable")
	}
}

// InspectDecls applies Inspect to the body of every declaration.
func InspectDecls(decls []Decl, f func(Node) bool) {
	for _, d := range decls {
		Inspect(DeclBody(d), f)
	}
}
