// Package trace records what the htms compiler is doing and when.
//
// A Tracer receives Events. Spans bracket an operation with a begin and an
// end event; points mark a single moment (a cache hit, a skipped stage).
//
// # Scopes and levels
//
// Every event carries a Scope:
//
//   - ScopeDriver: one CLI command (check, build)
//   - ScopeFile:   one .htms file in directory mode
//   - ScopeStage:  lex, parse, analyze, codegen
//   - ScopePoint:  instant events inside a stage
//
// The Level filters scopes: phase shows driver and file spans, detail adds
// stages, debug shows everything.
//
// # Usage
//
//	htms build site/ --trace=- --trace-level=detail
//
// Inside the compiler the tracer travels in the context:
//
//	ctx = trace.WithTracer(ctx, tr)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopeStage, "parse", parentID)
//	defer span.End("")
package trace
