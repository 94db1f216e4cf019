// Package symbols holds the declaration table built by semantic analysis.
//
// HTMS has a single flat, case-sensitive namespace shared by components,
// sections and pages. A Builder is used while analysing; the Table it
// produces is read-only.
package symbols
