package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"htms/internal/source"
	"htms/internal/token"
)

type TokenOutput struct {
	Kind     string          `json:"kind"`
	Value    string          `json:"value,omitempty"`
	Location source.Location `json:"location"`
}

// FormatTokensPretty prints one token per line:
//
//	1: Page            "page"      at 1:1-1:5
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	for i, tok := range tokens {
		if _, err := fmt.Fprintf(w, "%4d: %-15s", i+1, tok.Kind.String()); err != nil {
			return err
		}
		if tok.Value != "" {
			fmt.Fprintf(w, " %-12q", tok.Value)
		}
		fmt.Fprintf(w, " at %d:%d (%d..%d)\n", tok.Loc.Line, tok.Loc.Column, tok.Loc.Start, tok.Loc.End)
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON writes the tokens as an indented JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, TokenOutput{
			Kind:     tok.Kind.String(),
			Value:    tok.Value,
			Location: tok.Loc,
		})
		if tok.Kind == token.EOF {
			break
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}
