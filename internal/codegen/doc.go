// Package codegen turns an analysed program into output files.
//
// Generator is the seam between the front end and any backend. The only
// backend shipped here is the static HTML one: templates are rendered with
// an empty context, so conditionals, loops, slots and interpolations produce
// no output, and a small client-side router switches between pages.
package codegen
