// Package driver runs the compiler stages (lex, parse, analyze, codegen)
// over one source text, one file, or every .htms file under a directory.
package driver
