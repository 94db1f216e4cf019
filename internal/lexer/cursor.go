package lexer

import (
	"go4.org/mem"

	"htms/internal/source"
)

// Cursor is a byte position in the source together with the running line
// counter. Every byte goes through Bump or Advance, so newlines inside text
// blocks and comments are counted the same way as anywhere else.
type Cursor struct {
	src []byte
	Off uint32
	// Limit is the exclusive upper bound for Off.
	Limit     uint32
	line      uint32
	lineStart uint32
}

// NewCursor creates a cursor at the start of src.
func NewCursor(src []byte) Cursor {
	return Cursor{
		src:   src,
		Limit: u32(len(src)),
		line:  1,
	}
}

// EOF проверяет, достигнут ли конец входа
func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

// Peek читает текущий байт, если есть, иначе возвращает 0
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.src[c.Off]
}

// PeekAt returns the byte n positions ahead, or 0 past the end.
func (c *Cursor) PeekAt(n uint32) byte {
	if c.Off+n >= c.Limit {
		return 0
	}
	return c.src[c.Off+n]
}

// Peek2 читает текущий и следующий байт
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if c.Off+1 >= c.Limit {
		return 0, 0, false
	}
	return c.src[c.Off], c.src[c.Off+1], true
}

// Bump consumes one byte and returns it.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.src[c.Off]
	c.Off++
	if b == '\n' {
		c.line++
		c.lineStart = c.Off
	}
	return b
}

// Eat consumes the next byte if it equals b.
func (c *Cursor) Eat(b byte) bool {
	if c.Peek() == b && !c.EOF() {
		c.Bump()
		return true
	}
	return false
}

// Advance consumes n bytes (clamped to Limit), counting newlines on the way.
func (c *Cursor) Advance(n uint32) {
	end := min(c.Off+n, c.Limit)
	chunk := mem.B(c.src[c.Off:end])
	base := c.Off
	for {
		i := mem.IndexByte(chunk, '\n')
		if i < 0 {
			break
		}
		c.line++
		base += u32(i) + 1
		c.lineStart = base
		chunk = chunk.SliceFrom(i + 1)
	}
	c.Off = end
}

// Rest returns the unread input.
func (c *Cursor) Rest() mem.RO {
	return mem.B(c.src[c.Off:c.Limit])
}

// Mark is a saved cursor position used to build token locations.
type Mark struct {
	off       uint32
	line      uint32
	lineStart uint32
}

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark{off: c.Off, line: c.line, lineStart: c.lineStart}
}

// Reset возвращает курсор назад к метке
func (c *Cursor) Reset(m Mark) {
	c.Off = m.off
	c.line = m.line
	c.lineStart = m.lineStart
}

// LocFrom returns the location from m to the current offset.
// Line and column are those of the mark.
func (c *Cursor) LocFrom(m Mark) source.Location {
	return source.Location{
		Line:   m.line,
		Column: m.off - m.lineStart + 1,
		Start:  m.off,
		End:    c.Off,
	}
}

// Bytes returns the source bytes between m and the current offset.
func (c *Cursor) Bytes(m Mark) []byte {
	return c.src[m.off:c.Off]
}
