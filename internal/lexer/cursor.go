package lexer

import (
	"fmt"

	"fortio.org/safecast"
)

// Cursor is a byte position within an expression string.
type Cursor struct {
	src string
	// Off is the current offset; Limit is the exclusive upper bound.
	Off   uint32
	Limit uint32
}

// NewCursor creates a cursor over the provided expression.
func NewCursor(src string) Cursor {
	limit, err := safecast.Conv[uint32](len(src))
	if err != nil {
		panic(fmt.Errorf("expression length overflow: %w", err))
	}
	return Cursor{src: src, Off: 0, Limit: limit}
}

// EOF reports whether the cursor has passed the last byte.
func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

// Peek reads the current byte without consuming it; 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.src[c.Off]
}

// Bump consumes and returns the current byte; 0 at EOF.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.src[c.Off]
	c.Off++
	return b
}

// Advance moves the cursor n bytes forward, clamped to the limit.
func (c *Cursor) Advance(n int) {
	off, err := safecast.Conv[uint32](int(c.Off) + n)
	if err != nil {
		panic(fmt.Errorf("cursor offset overflow: %w", err))
	}
	if off > c.Limit {
		off = c.Limit
	}
	c.Off = off
}

// Mark is a saved cursor position used to slice out a scanned lexeme.
type Mark uint32

// Mark saves the current position.
func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// TextFrom returns the source text between a mark and the current position.
func (c *Cursor) TextFrom(m Mark) string {
	return c.src[m:c.Off]
}
