package driver

import (
	"context"
	"fmt"
	"strconv"

	"htms/internal/codegen"
	"htms/internal/diag"
	"htms/internal/lexer"
	"htms/internal/observ"
	"htms/internal/parser"
	"htms/internal/sema"
	"htms/internal/trace"
)

// Compile runs lex, parse, analyze and, when no errors were found, codegen.
//
// A lexical or syntax error stops the pipeline after its stage. The analyzer
// always runs to completion on a parsed program. Warnings do not block code
// generation. The returned error is reserved for cancellation and backend
// failures; source problems are reported as diagnostics.
func Compile(ctx context.Context, src []byte, opts Options) (Result, error) {
	gen, err := codegen.Lookup(opts.backend())
	if err != nil {
		return Result{}, err
	}

	var key CacheKey
	if opts.Cache != nil {
		key = NewCacheKey(src, opts)
		var payload CachePayload
		hit, err := opts.Cache.Get(key, &payload)
		switch {
		case err != nil:
			trace.PointCtx(ctx, "cache-error", err.Error())
		case hit:
			trace.PointCtx(ctx, "cache-hit", key.String()[:12])
			res := payload.result()
			res.Diagnostics = limit(res.Diagnostics, opts.MaxDiagnostics)
			return res, nil
		default:
			trace.PointCtx(ctx, "cache-miss", key.String()[:12])
		}
	}

	res, err := run(ctx, src, opts, gen)
	if err != nil {
		return Result{}, err
	}
	if opts.Cache != nil {
		if err := opts.Cache.Put(key, newCachePayload(&res)); err != nil {
			trace.PointCtx(ctx, "cache-error", err.Error())
		}
	}
	res.Diagnostics = limit(res.Diagnostics, opts.MaxDiagnostics)
	return res, nil
}

// Check runs lex, parse and analyze only. It never generates files and
// never touches the cache.
func Check(ctx context.Context, src []byte, opts Options) (Result, error) {
	res, err := run(ctx, src, opts, nil)
	if err != nil {
		return Result{}, err
	}
	res.Diagnostics = limit(res.Diagnostics, opts.MaxDiagnostics)
	return res, nil
}

// compilation carries per-call state through the stages.
type compilation struct {
	ctx   context.Context
	opts  Options
	timer *observ.Timer
}

func run(ctx context.Context, src []byte, opts Options, gen codegen.Generator) (Result, error) {
	c := &compilation{ctx: ctx, opts: opts, timer: opts.Timer}
	if c.timer == nil {
		c.timer = observ.NewTimer()
	}
	res := Result{Files: []codegen.File{}, Diagnostics: []diag.Diagnostic{}}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	var lexErrs []lexer.LexError
	c.stage(StageLex, func() string {
		res.Tokens, lexErrs = lexer.New(src, lexer.Options{MaxErrors: opts.MaxDiagnostics}).Run()
		return strconv.Itoa(len(res.Tokens)) + " tokens"
	})
	if len(lexErrs) > 0 {
		res.Diagnostics = LexDiagnostics(lexErrs)
		return res, nil
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	var parseErrs []parser.ParseError
	c.stage(StageParse, func() string {
		res.Program, parseErrs = parser.ParseWithOptions(res.Tokens, parser.Options{MaxErrors: opts.MaxDiagnostics})
		return strconv.Itoa(len(res.Program.Decls)) + " decls"
	})
	if len(parseErrs) > 0 {
		res.Diagnostics = ParseDiagnostics(parseErrs)
		return res, nil
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	c.stage(StageAnalyze, func() string {
		var diags []diag.Diagnostic
		res.Symbols, diags = sema.Analyze(res.Program)
		res.Diagnostics = append(res.Diagnostics, diags...)
		errs, warns := diag.Count(diags)
		return fmt.Sprintf("%d errors, %d warnings", errs, warns)
	})
	res.Success = !diag.HasErrors(res.Diagnostics)
	if gen == nil || !res.Success {
		return res, nil
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	var genErr error
	c.stage(StageCodegen, func() string {
		var files []codegen.File
		files, genErr = gen.Generate(res.Program, res.Symbols, opts.Codegen)
		if genErr != nil {
			return genErr.Error()
		}
		res.Files = append(res.Files, files...)
		return strconv.Itoa(len(files)) + " files"
	})
	if genErr != nil {
		return Result{}, fmt.Errorf("codegen: %w", genErr)
	}
	return res, nil
}

// stage wraps f with timer, trace span and observer events.
func (c *compilation) stage(name Stage, f func() string) {
	if c.opts.Observer != nil {
		c.opts.Observer(PhaseEvent{Stage: name, Status: PhaseStart})
	}
	idx := c.timer.Begin(string(name))
	_, span := trace.StartSpan(c.ctx, trace.ScopeStage, string(name))

	note := f()

	span.End(note)
	elapsed := c.timer.End(idx, note)
	if c.opts.Observer != nil {
		c.opts.Observer(PhaseEvent{Stage: name, Status: PhaseEnd, Elapsed: elapsed})
	}
}

// LexDiagnostics converts scanner errors to E001 diagnostics.
func LexDiagnostics(errs []lexer.LexError) []diag.Diagnostic {
	out := make([]diag.Diagnostic, 0, len(errs))
	for _, e := range errs {
		out = append(out, diag.NewError(diag.LexError, e.Loc, e.Message))
	}
	return out
}

// ParseDiagnostics converts parser errors to E002 diagnostics.
func ParseDiagnostics(errs []parser.ParseError) []diag.Diagnostic {
	out := make([]diag.Diagnostic, 0, len(errs))
	for _, e := range errs {
		out = append(out, diag.NewError(diag.SynError, e.Loc, e.Message))
	}
	return out
}

func limit(ds []diag.Diagnostic, maxDiagnostics int) []diag.Diagnostic {
	if maxDiagnostics <= 0 || len(ds) <= maxDiagnostics {
		return ds
	}
	bag := diag.NewBag(maxDiagnostics)
	bag.AddAll(ds)
	return bag.Items()
}
