package token

import "testing"

func TestKindStringCoversAllKinds(t *testing.T) {
	for k := Invalid; k <= TextClose; k++ {
		if k.String() == "Unknown" {
			t.Fatalf("kind %d has no name", k)
		}
	}
	if got := Kind(250).String(); got != "Unknown" {
		t.Fatalf("out of range kind = %q", got)
	}
}

func TestLookupKeywordAndDirective(t *testing.T) {
	for _, kw := range Keywords() {
		k, ok := LookupKeyword(kw)
		if !ok || !(Token{Kind: k}).IsKeyword() {
			t.Fatalf("keyword %q not classified", kw)
		}
	}
	if _, ok := LookupKeyword("div"); ok {
		t.Fatal("div must not be a keyword")
	}
	tests := map[string]Kind{"if": DirIf, "else": DirElse, "each": DirEach, "slot": DirSlot}
	for name, want := range tests {
		got, ok := LookupDirective(name)
		if !ok || got != want {
			t.Errorf("LookupDirective(%q) = %v, %v", name, got, ok)
		}
	}
	if _, ok := LookupDirective("for"); ok {
		t.Fatal("@for is not a directive")
	}
}

func TestTokenClassification(t *testing.T) {
	if !(Token{Kind: Slash}).IsPunctOrOp() || (Token{Kind: TextOpen}).IsPunctOrOp() {
		t.Fatal("IsPunctOrOp range is wrong")
	}
	if !(Token{Kind: TextContent}).IsText() {
		t.Fatal("TextContent should be text")
	}
	if !(Token{Kind: KwFalse}).IsLiteral() || (Token{Kind: Ident}).IsLiteral() {
		t.Fatal("IsLiteral is wrong")
	}
	if !KwPage.IsDeclStart() || DirIf.IsDeclStart() {
		t.Fatal("IsDeclStart is wrong")
	}
}
