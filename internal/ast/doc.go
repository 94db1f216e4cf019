// Package ast defines the syntax tree produced by the parser.
//
// The tree is a plain pointer tree: every node is owned by exactly one
// parent and nothing is shared. Closed families (declarations, body nodes,
// else-alternates and expressions) are sealed interfaces; a type switch over
// one of them panics with "unreachable" in its default branch.
package ast
