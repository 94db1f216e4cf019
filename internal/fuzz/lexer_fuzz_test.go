package fuzztests

import (
	"testing"

	"htms/internal/lexer"
	"htms/internal/testkit"
	"htms/internal/token"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		toks, _ := lexer.Tokenize(input)
		if err := testkit.CheckTokenInvariants(toks, input); err != nil {
			t.Fatalf("token invariants: %v\ninput: %q", err, truncateForLog(input, 200))
		}

		// Next после EOF продолжает отдавать EOF
		lx := lexer.New(input, lexer.Options{MaxErrors: 8})
		var n int
		for lx.Next().Kind != token.EOF {
			n++
		}
		if n != len(toks)-1 {
			t.Fatalf("Next produced %d tokens, Tokenize %d", n, len(toks)-1)
		}
		if lx.Next().Kind != token.EOF {
			t.Fatal("Next after EOF must return EOF")
		}
		if len(lx.Errors()) > 8 {
			t.Fatalf("MaxErrors ignored: %d errors", len(lx.Errors()))
		}
	})
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}

// truncateForLog truncates input for logging purposes
func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen:maxLen], []byte("...")...)
}
