package ast

import (
	"strconv"
	"strings"

	"htms/internal/source"
)

// Expr is a template expression.
type Expr interface {
	Pos() source.Location
	exprNode()
}

type StringLit struct {
	Value string
	Loc   source.Location
}

type NumberLit struct {
	Value float64
	Loc   source.Location
}

type BoolLit struct {
	Value bool
	Loc   source.Location
}

// ContextPath is a `ctx.a.b` reference; Path holds the full dotted text.
type ContextPath struct {
	Path string
	Loc  source.Location
}

type Ident struct {
	Name string
	Loc  source.Location
}

type Member struct {
	Object   Expr
	Property string
	Loc      source.Location
}

type Binary struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
	Loc   source.Location
}

type Ternary struct {
	Cond Expr
	Then Expr
	Else Expr
	Loc  source.Location
}

// Call is `callee(args)`; the callee is always a bare identifier.
type Call struct {
	Callee string
	Args   []Expr
	Loc    source.Location
}

// Event is the value of an `onX.mod: action(args)` attribute.
// Event holds the lower-cased event name without the "on" prefix.
type Event struct {
	Event     string
	Modifiers []string
	Action    string
	Args      []Expr
	Loc       source.Location
}

func (e *StringLit) Pos() source.Location   { return e.Loc }
func (e *NumberLit) Pos() source.Location   { return e.Loc }
func (e *BoolLit) Pos() source.Location     { return e.Loc }
func (e *ContextPath) Pos() source.Location { return e.Loc }
func (e *Ident) Pos() source.Location       { return e.Loc }
func (e *Member) Pos() source.Location      { return e.Loc }
func (e *Binary) Pos() source.Location      { return e.Loc }
func (e *Ternary) Pos() source.Location     { return e.Loc }
func (e *Call) Pos() source.Location        { return e.Loc }
func (e *Event) Pos() source.Location       { return e.Loc }

func (*StringLit) exprNode()   {}
func (*NumberLit) exprNode()   {}
func (*BoolLit) exprNode()     {}
func (*ContextPath) exprNode() {}
func (*Ident) exprNode()       {}
func (*Member) exprNode()      {}
func (*Binary) exprNode()      {}
func (*Ternary) exprNode()     {}
func (*Call) exprNode()        {}
func (*Event) exprNode()       {}

// FormatNumber renders a number the way it is written in templates:
// integers without a fractional part.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ExprString renders e back to template syntax. Binary expressions are
// parenthesised so the result is unambiguous.
func ExprString(e Expr) string {
	var sb strings.Builder
	writeExpr(&sb, e)
	return sb.String()
}

func writeExpr(sb *strings.Builder, e Expr) {
	switch e := e.(type) {
	case *StringLit:
		sb.WriteString(strconv.Quote(e.Value))
	case *NumberLit:
		sb.WriteString(FormatNumber(e.Value))
	case *BoolLit:
		sb.WriteString(strconv.FormatBool(e.Value))
	case *ContextPath:
		sb.WriteString(e.Path)
	case *Ident:
		sb.WriteString(e.Name)
	case *Member:
		writeExpr(sb, e.Object)
		sb.WriteByte('.')
		sb.WriteString(e.Property)
	case *Binary:
		sb.WriteByte('(')
		writeExpr(sb, e.Left)
		sb.WriteByte(' ')
		sb.WriteString(e.Op.String())
		sb.WriteByte(' ')
		writeExpr(sb, e.Right)
		sb.WriteByte(')')
	case *Ternary:
		writeExpr(sb, e.Cond)
		sb.WriteString(" ? ")
		writeExpr(sb, e.Then)
		sb.WriteString(" : ")
		writeExpr(sb, e.Else)
	case *Call:
		sb.WriteString(e.Callee)
		writeArgs(sb, e.Args)
	case *Event:
		sb.WriteString(e.Action)
		if len(e.Args) > 0 {
			writeArgs(sb, e.Args)
		}
	default:
		panic("unreachable")
	}
}

func writeArgs(sb *strings.Builder, args []Expr) {
	sb.WriteByte('(')
	for i, a := range args {
		if i > 0 {
			sb.WriteString(", ")
		}
		writeExpr(sb, a)
	}
	sb.WriteByte(')')
}
