package lexer

import "testing"

func TestCursorAdvanceCountsLines(t *testing.T) {
	c := NewCursor([]byte("ab\ncd\n\nef"))
	c.Advance(7)
	m := c.Mark()
	if m.line != 4 || m.lineStart != 7 {
		t.Fatalf("mark = %+v, want line 4 starting at 7", m)
	}
	c.Advance(100)
	if !c.EOF() || c.Off != 9 {
		t.Fatalf("Advance should clamp to the limit, off=%d", c.Off)
	}
	loc := c.LocFrom(m)
	if loc.Line != 4 || loc.Column != 1 || loc.Start != 7 || loc.End != 9 {
		t.Fatalf("loc = %+v", loc)
	}
}

func TestCursorResetRestoresLine(t *testing.T) {
	c := NewCursor([]byte("a\nb"))
	m := c.Mark()
	c.Bump()
	c.Bump()
	if c.Mark().line != 2 {
		t.Fatalf("Bump over newline must bump the line")
	}
	c.Reset(m)
	if c.Off != 0 || c.Mark().line != 1 {
		t.Fatalf("Reset did not restore: %+v", c.Mark())
	}
	if !c.Eat('a') || c.Eat('x') {
		t.Fatalf("Eat mismatch")
	}
	if b0, b1, ok := c.Peek2(); !ok || b0 != '\n' || b1 != 'b' {
		t.Fatalf("Peek2 = %q %q %v", b0, b1, ok)
	}
	if c.PeekAt(5) != 0 {
		t.Fatalf("PeekAt past end should be 0")
	}
}
