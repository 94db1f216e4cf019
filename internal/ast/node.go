package ast

import "htms/internal/source"

// Node is a body node: *Element, *ComponentRef, *Text, *If, *Each or *Slot.
type Node interface {
	Pos() source.Location
	bodyNode()
}

type Element struct {
	Tag      string
	Attrs    []Attr
	Children []Node
	Loc      source.Location
}

// ComponentRef instantiates a component, section or page by name.
type ComponentRef struct {
	Name     string
	Bindings []Binding
	Children []Node
	Loc      source.Location
}

// Text is literal or interpolated text. Content is trimmed.
type Text struct {
	Content string
	Dynamic bool
	Loc     source.Location
}

type If struct {
	Cond Expr
	Then []Node
	Else Alternate // nil when absent
	Loc  source.Location
}

// Each iterates Iterable binding Item (and optionally Index) in Body.
type Each struct {
	Iterable Expr
	Item     string
	Index    string // empty when absent
	Body     []Node
	Loc      source.Location
}

// Slot marks where a component places the children of its reference.
type Slot struct {
	Loc source.Location
}

func (n *Element) Pos() source.Location      { return n.Loc }
func (n *ComponentRef) Pos() source.Location { return n.Loc }
func (n *Text) Pos() source.Location         { return n.Loc }
func (n *If) Pos() source.Location           { return n.Loc }
func (n *Each) Pos() source.Location         { return n.Loc }
func (n *Slot) Pos() source.Location         { return n.Loc }

func (*Element) bodyNode()      {}
func (*ComponentRef) bodyNode() {}
func (*Text) bodyNode()         {}
func (*If) bodyNode()           {}
func (*Each) bodyNode()         {}
func (*Slot) bodyNode()         {}

// Alternate is the else part of an If: *ElseBlock or *ElseIf.
type Alternate interface {
	Pos() source.Location
	alternate()
}

type ElseBlock struct {
	Body []Node
	Loc  source.Location
}

// ElseIf chains another conditional; chains may be arbitrarily deep.
type ElseIf struct {
	If  *If
	Loc source.Location
}

func (a *ElseBlock) Pos() source.Location { return a.Loc }
func (a *ElseIf) Pos() source.Location    { return a.Loc }

func (*ElseBlock) alternate() {}
func (*ElseIf) alternate()    {}
