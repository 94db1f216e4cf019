package ast

import "htms/internal/source"

// Decl is a top-level declaration: *Component, *Section or *Page.
type Decl interface {
	Pos() source.Location
	DeclName() string
	declNode()
}

type Component struct {
	Name   string
	Params []Param
	Attrs  []Attr
	Body   []Node
	Loc    source.Location
}

type Section struct {
	Name string
	Body []Node
	Loc  source.Location
}

type Page struct {
	Name  string
	Route string
	Body  []Node
	Loc   source.Location
}

// Param is a `name: binding` entry of a component parameter list.
type Param struct {
	Name    string
	Binding string
	Loc     source.Location
}

// Attr is a `name: value` entry of an attribute list.
type Attr struct {
	Name  string
	Value Expr
	Loc   source.Location
}

// Binding is a `name: value` argument of a component reference.
type Binding struct {
	Name  string
	Value Expr
	Loc   source.Location
}

func (d *Component) Pos() source.Location { return d.Loc }
func (d *Section) Pos() source.Location   { return d.Loc }
func (d *Page) Pos() source.Location      { return d.Loc }

func (d *Component) DeclName() string { return d.Name }
func (d *Section) DeclName() string   { return d.Name }
func (d *Page) DeclName() string      { return d.Name }

func (*Component) declNode() {}
func (*Section) declNode()   {}
func (*Page) declNode()      {}

// DeclBody returns the body of any declaration.
func DeclBody(d Decl) []Node {
	switch d := d.(type) {
	case *Component:
		return d.Body
	case *Section:
		return d.Body
	case *Page:
		return d.Body
	default:
		panic("unreachable")
	}
}

// DeclKeyword returns the keyword that introduces d.
func DeclKeyword(d Decl) string {
	switch d.(type) {
	case *Component:
		return "component"
	case *Section:
		return "section"
	case *Page:
		return "page"
	default:
		panic("unreachable")
	}
}
