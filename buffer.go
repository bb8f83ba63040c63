package vt100

// Buffer is a fixed-size grid of cells, addressed (x, y) with (0, 0) at the
// top left. Rows are stored as independent slices so that scrolling, line
// insertion, and line deletion are pointer swaps rather than cell copies:
// moving a row means reassigning which slice b.rows[y] points at, never
// copying its width worth of cells.
type Buffer struct {
	width, height int
	rows          [][]Cell
}

// NewBuffer returns a width x height buffer with every cell set to fill.
func NewBuffer(width, height int, fill Cell) *Buffer {
	debugAssert(width > 0 && height > 0, "buffer dimensions must be positive, got %dx%d", width, height)
	b := &Buffer{
		width:  width,
		height: height,
		rows:   make([][]Cell, height),
	}
	for y := range b.rows {
		b.rows[y] = newRow(width, fill)
	}
	return b
}

func newRow(width int, fill Cell) []Cell {
	row := make([]Cell, width)
	fillRow(row, fill, width)
	return row
}

// Width returns the buffer's column count.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer's row count.
func (b *Buffer) Height() int { return b.height }

// At returns a pointer to the cell at (x, y). Like a raw slice index, it
// panics if the coordinates are out of range; callers are expected to have
// already clamped against Width()/Height().
func (b *Buffer) At(x, y int) *Cell {
	return &b.rows[y][x]
}

// Row returns the live row slice at y, for read-only iteration (selection
// extraction, snapshotting). Mutating it bypasses any bookkeeping callers
// might expect elsewhere, so treat it as read-only.
func (b *Buffer) Row(y int) []Cell {
	return b.rows[y]
}

// fillRow fills row[:n] with fill using an exponentially widening copy: the
// first cell is set directly, then each subsequent copy doubles the filled
// span by copying it onto itself, so an n-cell fill takes O(log n) calls to
// the runtime's memmove instead of O(n) individual assignments.
func fillRow(row []Cell, fill Cell, n int) {
	if n <= 0 {
		return
	}
	if n > len(row) {
		n = len(row)
	}
	row[0] = fill
	filled := 1
	for filled < n {
		step := filled
		if step > n-filled {
			step = n - filled
		}
		copy(row[filled:filled+step], row[:step])
		filled += step
	}
}

// FillRow fills the row at y, columns [0, n), with fill.
func (b *Buffer) FillRow(y int, fill Cell, n int) {
	fillRow(b.rows[y], fill, n)
}

// rowHasEOL reports whether any cell in row y carries the end-of-line
// marker, i.e. whether the row was terminated by an explicit newline rather
// than wrapped due to column overflow.
func (b *Buffer) rowHasEOL(y int) bool {
	for _, c := range b.rows[y] {
		if c.IsEndOfLine() {
			return true
		}
	}
	return false
}

// CopyRow returns a right-trimmed copy of row y: cells from the left up to
// and including the rightmost cell that is either end-of-line, not a space,
// has a non-default background, or carries underline/strikethrough. If no
// such cell exists the row is returned at full width untrimmed (this is the
// case for a row that is mid-wrap with nothing written into it yet).
func (b *Buffer) CopyRow(y int, defaultBg Color) []Cell {
	row := b.rows[y]
	stop := -1
	for col := b.width - 1; col >= 0; col-- {
		c := row[col]
		if c.IsEndOfLine() || c.Codepoint != ' ' || c.Bg != defaultBg || c.Font.Underline || c.Font.Strikethrough {
			stop = col
			break
		}
	}
	if stop < 0 {
		out := make([]Cell, b.width)
		copy(out, row)
		return out
	}
	out := make([]Cell, stop+1)
	copy(out, row[:stop+1])
	return out
}

// InsertLine opens a blank line at top within [top, bottom), pushing the
// other lines in that range down by one; the line that falls off the bottom
// of the range is recycled in place as the new blank top line. fill is
// written across the whole of the recycled row.
func (b *Buffer) InsertLine(top, bottom int, fill Cell) {
	if top < 0 || bottom > b.height || top >= bottom {
		return
	}
	recycled := b.rows[bottom-1]
	copy(b.rows[top+1:bottom], b.rows[top:bottom-1])
	fillRow(recycled, fill, b.width)
	b.rows[top] = recycled
}

// DeleteLine removes the line at top within [top, bottom), pulling the other
// lines in that range up by one; the line that was at top is recycled in
// place as the new blank bottom line.
func (b *Buffer) DeleteLine(top, bottom int, fill Cell) {
	if top < 0 || bottom > b.height || top >= bottom {
		return
	}
	recycled := b.rows[top]
	copy(b.rows[top:bottom-1], b.rows[top+1:bottom])
	fillRow(recycled, fill, b.width)
	b.rows[bottom-1] = recycled
}

// Clear resets every cell in the buffer to fill.
func (b *Buffer) Clear(fill Cell) {
	for y := range b.rows {
		fillRow(b.rows[y], fill, b.width)
	}
}

// ClearRange resets cells in row y, columns [from, to), to fill.
func (b *Buffer) ClearRange(y, from, to int, fill Cell) {
	if from < 0 {
		from = 0
	}
	if to > b.width {
		to = b.width
	}
	for x := from; x < to; x++ {
		b.rows[y][x] = fill
	}
}

// Resize rebuilds the buffer at the new dimensions, re-wrapping retained
// content at the new width so logical lines survive a width change intact.
// cursorY is the row of the old buffer's cursor: content at and above it is
// retained (re-wrapped into the new buffer), content below it is discarded.
// evicted, if non-nil, is called with each row's trimmed content as it
// scrolls off the top of the new buffer during re-emission (mirroring how a
// live scroll feeds history). It returns the rebuilt buffer and the column
// and row the cursor should now occupy, both recomputed from where
// re-emission actually left off rather than just clamped against the old
// position.
func (b *Buffer) Resize(newWidth, newHeight int, cursorY int, fill Cell, evicted func([]Cell)) (*Buffer, int, int) {
	if cursorY < 0 {
		cursorY = 0
	}
	if cursorY >= b.height {
		cursorY = b.height - 1
	}

	nb := NewBuffer(newWidth, newHeight, fill)
	curX, curY := 0, 0

	advance := func() {
		curX++
		if curX >= newWidth {
			curX = 0
			curY++
			if curY >= newHeight {
				if evicted != nil {
					evicted(nb.CopyRow(0, fill.Bg))
				}
				copy(nb.rows[0:newHeight-1], nb.rows[1:newHeight])
				last := nb.rows[newHeight-1]
				fillRow(last, fill, newWidth)
				nb.rows[newHeight-1] = last
				curY = newHeight - 1
			}
		}
	}

	for y := 0; y <= cursorY; y++ {
		content := b.CopyRow(y, fill.Bg)
		hadEOL := b.rowHasEOL(y)
		for _, c := range content {
			nb.rows[curY][curX] = c
			advance()
		}
		if hadEOL && curX != 0 {
			curX, curY = 0, curY+1
			if curY >= newHeight {
				if evicted != nil {
					evicted(nb.CopyRow(0, fill.Bg))
				}
				copy(nb.rows[0:newHeight-1], nb.rows[1:newHeight])
				last := nb.rows[newHeight-1]
				fillRow(last, fill, newWidth)
				nb.rows[newHeight-1] = last
				curY = newHeight - 1
			}
		}
	}

	return nb, curX, curY
}
