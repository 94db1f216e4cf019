package codegen

import (
	"fmt"
	"sort"

	"htms/internal/ast"
	"htms/internal/symbols"
)

// File is one generated artefact. Path is relative to the output directory.
type File struct {
	Path    string `json:"path" msgpack:"path"`
	Content string `json:"content" msgpack:"content"`
}

type Options struct {
	// SourceName overrides the main output file name.
	SourceName string
	// Title overrides the document title derived from the first page.
	Title string
	// TemplateHTML, when set, is a host document; generated markup is
	// injected right after its <body> tag.
	TemplateHTML string
	// GenerateRouter emits the client-side router script.
	GenerateRouter bool
	// SplitTemplates writes each page to its own <page>.template.html and
	// makes the router fetch them lazily.
	SplitTemplates bool
}

// Generator is implemented by code generation backends.
type Generator interface {
	Generate(prog *ast.Program, syms *symbols.Table, opts Options) ([]File, error)
}

var backends = map[string]Generator{
	"html": HTML{},
}

// Lookup returns the backend registered under name.
func Lookup(name string) (Generator, error) {
	g, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("unknown backend %q (available: %v)", name, Backends())
	}
	return g, nil
}

// Backends lists registered backend names in sorted order.
func Backends() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
