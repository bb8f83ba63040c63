package vt100

// Position identifies a cell location in a grid (0-based, row then column
// order for comparisons).
type Position struct {
	X, Y int
}

// Before reports whether p sorts earlier than other in reading order
// (top-to-bottom, left-to-right).
func (p Position) Before(other Position) bool {
	if p.Y != other.Y {
		return p.Y < other.Y
	}
	return p.X < other.X
}

// Cursor tracks the emulator's caret: position, visibility, blink, the
// codepoint used to render it (normally a block, but configurable), and its
// color.
type Cursor struct {
	X, Y    int
	Visible bool
	Blink   bool
	Glyph   rune
	Color   Color
}

// NewCursor returns a cursor at the origin, visible, non-blinking, default
// glyph and color.
func NewCursor() Cursor {
	return Cursor{Visible: true, Glyph: 0, Color: ColorNone}
}

// cursorFrame is one entry of a State's cursorStack (DECSC/DECRC). It
// carries the line-drawing-set bit alongside the position: DECRC restores
// the active character set together with the cursor.
type cursorFrame struct {
	Pos            Position
	LineDrawingSet bool
}
