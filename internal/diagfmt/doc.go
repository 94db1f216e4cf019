// Package diagfmt renders diagnostics, tokens and syntax trees for the CLI.
package diagfmt
