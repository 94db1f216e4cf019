package driver

import (
	"htms/internal/ast"
	"htms/internal/codegen"
	"htms/internal/diag"
	"htms/internal/observ"
	"htms/internal/symbols"
	"htms/internal/token"
)

// DefaultBackend is used when Options.Backend is empty.
const DefaultBackend = "html"

type Options struct {
	Backend string
	Codegen codegen.Options
	// MaxDiagnostics caps the reported diagnostics; 0 means unlimited.
	MaxDiagnostics int
	// Jobs bounds directory-mode parallelism; <= 0 means GOMAXPROCS.
	Jobs int
	// Cache, when set, short-circuits Compile for unchanged inputs.
	Cache *DiskCache
	// Timer collects stage durations.
	Timer    *observ.Timer
	Observer PhaseObserver
	Progress ProgressSink
}

func (o Options) backend() string {
	if o.Backend == "" {
		return DefaultBackend
	}
	return o.Backend
}

// Result is the outcome of one compile. The JSON shape
// {"files": [...], "diagnostics": [...], "success": bool} is the public
// wire format.
type Result struct {
	Files       []codegen.File    `json:"files"`
	Diagnostics []diag.Diagnostic `json:"diagnostics"`
	Success     bool              `json:"success"`

	// Intermediate products; nil when the stage did not run or the result
	// came from the cache.
	Tokens  []token.Token  `json:"-"`
	Program *ast.Program   `json:"-"`
	Symbols *symbols.Table `json:"-"`
	Cached  bool           `json:"-"`
}

// Counts returns the number of errors and warnings.
func (r *Result) Counts() (errors, warnings int) {
	return diag.Count(r.Diagnostics)
}
