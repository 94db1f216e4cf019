package ast

import "htms/internal/source"

// Program is the root of a parsed file.
type Program struct {
	Decls []Decl
	Loc   source.Location
}

func (p *Program) Pos() source.Location { return p.Loc }

// Components returns component declarations in source order.
func (p *Program) Components() []*Component {
	var out []*Component
	for _, d := range p.Decls {
		if c, ok := d.(*Component); ok {
			out = append(out, c)
		}
	}
	return out
}

// Pages returns page declarations in source order.
func (p *Program) Pages() []*Page {
	var out []*Page
	for _, d := range p.Decls {
		if pg, ok := d.(*Page); ok {
			out = append(out, pg)
		}
	}
	return out
}
