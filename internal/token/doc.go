// Package token defines the lexical token kinds of HTMS templates.
// Invariants:
//   - Token.Value is the decoded lexeme: String tokens drop their quotes,
//     TextContent keeps the raw bytes between "{{" and "}}".
//   - Token.Loc covers the full lexeme in the source, quotes included.
//   - A "ctx.a.b" chain is one ContextPath token, never Ident/Dot pieces.
//   - Comments and whitespace never reach the token stream.
package token
