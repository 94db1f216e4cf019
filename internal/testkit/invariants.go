package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"htms/internal/ast"
	"htms/internal/source"
	"htms/internal/token"
)

// CheckTokenInvariants runs the token stream invariants against src:
// 1) the stream is non-empty and ends with exactly one EOF at len(src)
// 2) every location lies within src and tokens never overlap
// 3) Line and Column agree with the newlines that precede Start
func CheckTokenInvariants(tokens []token.Token, src []byte) error {
	if len(tokens) == 0 {
		return fmt.Errorf("empty token stream")
	}
	size, err := safecast.Conv[uint32](len(src))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	last := tokens[len(tokens)-1]
	if last.Kind != token.EOF {
		return fmt.Errorf("stream ends with %s, want EOF", last.Kind)
	}
	if last.Loc.Start != size || last.Loc.End != size {
		return fmt.Errorf("EOF at %d..%d, want %d", last.Loc.Start, last.Loc.End, size)
	}

	var prevEnd uint32
	for i, tok := range tokens {
		loc := tok.Loc
		if tok.Kind == token.EOF && i != len(tokens)-1 {
			return fmt.Errorf("token %d: EOF before the end of the stream", i)
		}
		if loc.Start > loc.End || loc.End > size {
			return fmt.Errorf("token %d (%s): location %d..%d outside content of %d bytes", i, tok.Kind, loc.Start, loc.End, size)
		}
		if tok.Kind != token.EOF && loc.Empty() {
			return fmt.Errorf("token %d (%s): empty location at %d", i, tok.Kind, loc.Start)
		}
		if loc.Start < prevEnd {
			return fmt.Errorf("token %d (%s): starts at %d before previous end %d", i, tok.Kind, loc.Start, prevEnd)
		}
		prevEnd = loc.End

		line, col := lineCol(src, loc.Start)
		if loc.Line != line || loc.Column != col {
			return fmt.Errorf("token %d (%s): position %d:%d, want %d:%d", i, tok.Kind, loc.Line, loc.Column, line, col)
		}
	}
	return nil
}

// lineCol computes the 1-based line and byte column of off.
func lineCol(src []byte, off uint32) (line, col uint32) {
	line = 1
	var lineStart uint32
	for i := range off {
		if src[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	return line, off - lineStart + 1
}

// CheckLocationInvariants runs the location invariants on a parsed program:
// 1) the program location lies within src
// 2) declarations are ordered, disjoint and inside the program
// 3) every node lies inside its parent and siblings do not overlap
func CheckLocationInvariants(prog *ast.Program, src []byte) error {
	if prog == nil {
		return fmt.Errorf("nil program")
	}
	size, err := safecast.Conv[uint32](len(src))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if prog.Loc.Start > prog.Loc.End || prog.Loc.End > size {
		return fmt.Errorf("program location %d..%d outside content of %d bytes", prog.Loc.Start, prog.Loc.End, size)
	}

	var prevEnd uint32
	for i, d := range prog.Decls {
		loc := d.Pos()
		if loc.Empty() {
			return fmt.Errorf("decl %d (%s %s): empty location", i, ast.DeclKeyword(d), d.DeclName())
		}
		if !prog.Loc.Contains(loc) {
			return fmt.Errorf("decl %d (%s %s): %d..%d outside program %d..%d",
				i, ast.DeclKeyword(d), d.DeclName(), loc.Start, loc.End, prog.Loc.Start, prog.Loc.End)
		}
		if loc.Start < prevEnd {
			return fmt.Errorf("decl %d (%s %s): overlaps the previous declaration", i, ast.DeclKeyword(d), d.DeclName())
		}
		prevEnd = loc.End
		if err := checkNodes(ast.DeclBody(d), loc); err != nil {
			return fmt.Errorf("%s %s: %w", ast.DeclKeyword(d), d.DeclName(), err)
		}
	}
	return nil
}

func checkNodes(nodes []ast.Node, parent source.Location) error {
	var prevEnd uint32
	for _, n := range nodes {
		loc := n.Pos()
		if loc.Empty() {
			return fmt.Errorf("%T at %s: empty location", n, loc)
		}
		if !parent.Contains(loc) {
			return fmt.Errorf("%T at %s: %d..%d outside parent %d..%d", n, loc, loc.Start, loc.End, parent.Start, parent.End)
		}
		if loc.Start < prevEnd {
			return fmt.Errorf("%T at %s: overlaps previous sibling", n, loc)
		}
		prevEnd = loc.End
		if err := checkChildren(n); err != nil {
			return err
		}
	}
	return nil
}

func checkChildren(n ast.Node) error {
	switch n := n.(type) {
	case *ast.Element:
		return checkNodes(n.Children, n.Loc)
	case *ast.ComponentRef:
		return checkNodes(n.Children, n.Loc)
	case *ast.Each:
		return checkNodes(n.Body, n.Loc)
	case *ast.If:
		return checkIf(n)
	case *ast.Text, *ast.Slot:
		return nil
	default:
		panic("unreachable")
	}
}

func checkIf(n *ast.If) error {
	if err := checkNodes(n.Then, n.Loc); err != nil {
		return err
	}
	switch alt := n.Else.(type) {
	case nil:
		return nil
	case *ast.ElseBlock:
		if !n.Loc.Contains(alt.Loc) {
			return fmt.Errorf("@else at %s: outside @if at %s", alt.Loc, n.Loc)
		}
		return checkNodes(alt.Body, alt.Loc)
	case *ast.ElseIf:
		if !n.Loc.Contains(alt.Loc) {
			return fmt.Errorf("@else @if at %s: outside @if at %s", alt.Loc, n.Loc)
		}
		if alt.If == nil {
			return fmt.Errorf("@else @if at %s: missing nested @if", alt.Loc)
		}
		return checkNodes([]ast.Node{alt.If}, alt.Loc)
	default:
		panic("unreachable")
	}
}
