// Package sema performs semantic analysis of a parsed program.
//
// Three passes run in order, each seeing the full output of the previous:
//
//  1. collect  – declare every component, section and page; the first
//     declaration of a name wins.
//  2. resolve  – every component reference must name a declaration; usages
//     are recorded on the referenced symbol.
//  3. validate – page routes must be unique and start with '/', unused
//     components are reported, and a program without pages is flagged.
//
// All passes always run; diagnostics come back in pass order, then visit order.
package sema
