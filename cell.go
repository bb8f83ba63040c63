package vt100

// CellFlags is a small bitmask of per-cell rendering markers that are not
// part of the Font record (double-width/height live on Font; these are
// parser/selection bookkeeping bits).
type CellFlags uint8

const (
	// CellEndOfLine marks the last cell actually written on a logical line
	// before a newline. Used by Buffer.CopyRow trimming and by selection
	// extraction to decide where a line ends.
	CellEndOfLine CellFlags = 1 << iota
)

// Border describes an optional decorative border drawn around a cell.
// Left as a small opaque value since the engine never inspects its
// contents, only threads it through cell copies.
type Border struct {
	Color Color
	Thin  bool
}

// Cell is the unit of the screen grid: one Unicode scalar plus its
// rendering attributes. The default cell is a space on the default
// background with no decoration. Equality is structural (comparable).
type Cell struct {
	Codepoint rune
	Fg        Color
	Bg        Color
	Decor     Color
	Font      Font
	Border    *Border
	Flags     CellFlags
}

// NewCell returns the default cell: a space on default colors.
func NewCell() Cell {
	return Cell{
		Codepoint: ' ',
		Fg:        ColorNone,
		Bg:        ColorNone,
		Decor:     ColorNone,
		Font:      NewFont(),
	}
}

// DefaultCell returns the default cell resolved against a palette's default
// foreground/background, matching what a freshly cleared screen shows.
func DefaultCell(p *Palette) Cell {
	c := NewCell()
	if p != nil {
		c.Fg = p.DefaultForeground()
		c.Bg = p.DefaultBackground()
	}
	return c
}

// HasFlag reports whether the given flag bit is set.
func (c Cell) HasFlag(f CellFlags) bool {
	return c.Flags&f != 0
}

// SetFlag sets the given flag bit without disturbing others.
func (c *Cell) SetFlag(f CellFlags) {
	c.Flags |= f
}

// ClearFlag clears the given flag bit without disturbing others.
func (c *Cell) ClearFlag(f CellFlags) {
	c.Flags &^= f
}

// IsEndOfLine reports whether this is the last cell written on its logical
// line before a newline (set by the emulator on CR/LF, consumed by
// Buffer.CopyRow and selection extraction).
func (c Cell) IsEndOfLine() bool {
	return c.HasFlag(CellEndOfLine)
}

// IsDefaultLooking reports whether the cell is indistinguishable from an
// untouched NewCell() cell: a space with no background color set
// (ColorNone), without underline or strikethrough. Buffer.CopyRow does not
// call it; it compares backgrounds against the palette default instead.
func (c Cell) IsDefaultLooking() bool {
	return c.Codepoint == ' ' && c.Bg.IsNone() && !c.Font.Underline && !c.Font.Strikethrough
}
