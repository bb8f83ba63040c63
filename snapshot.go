package vt100

// Snapshot is an immutable capture of the active screen: its dimensions,
// cursor, and cell grid, taken under the priority lock so a renderer sees
// a consistent view regardless of what the PTY reader is doing
// concurrently.
type Snapshot struct {
	Cols, Rows int
	Cursor     SnapshotCursor
	Grid       [][]Cell
}

// SnapshotCursor captures cursor position and rendering state at the
// moment of the snapshot.
type SnapshotCursor struct {
	X, Y    int
	Visible bool
	Blink   bool
}

// Cells returns the captured grid, row by row. Each row is a freshly allocated
// copy — safe to read after the lock is released.
func (s Snapshot) Cells() [][]Cell { return s.Grid }

// Snapshot captures the active screen's current cursor and cell grid.
func (t *AnsiTerminal) Snapshot() Snapshot {
	t.lock.LockPriority()
	defer t.lock.Unlock()

	s := t.active
	rows := make([][]Cell, s.Buffer.Height())
	for y := range rows {
		row := s.Buffer.Row(y)
		cp := make([]Cell, len(row))
		copy(cp, row)
		rows[y] = cp
	}

	return Snapshot{
		Cols: s.Buffer.Width(),
		Rows: s.Buffer.Height(),
		Cursor: SnapshotCursor{
			X:       s.Cursor.X,
			Y:       s.Cursor.Y,
			Visible: s.Cursor.Visible,
			Blink:   s.Cursor.Blink,
		},
		Grid: rows,
	}
}

// HistorySnapshot returns an immutable copy of the scrollback rows in
// [from, to), oldest first.
func (t *AnsiTerminal) HistorySnapshot(from, to int) []HistoryRow {
	t.lock.LockPriority()
	defer t.lock.Unlock()

	if from < 0 {
		from = 0
	}
	if to > t.history.Len() {
		to = t.history.Len()
	}
	if from >= to {
		return nil
	}
	out := make([]HistoryRow, 0, to-from)
	for i := from; i < to; i++ {
		hr := t.history.Row(i)
		cells := make([]Cell, len(hr.Cells))
		copy(cells, hr.Cells)
		out = append(out, HistoryRow{Width: hr.Width, Cells: cells})
	}
	return out
}

// HistoryLen returns the current number of scrollback rows.
func (t *AnsiTerminal) HistoryLen() int {
	t.lock.LockPriority()
	defer t.lock.Unlock()
	return t.history.Len()
}

// LineText returns row y of the active screen as plain text, trimmed the
// way Buffer.CopyRow trims: trailing plain spaces on the default background
// are dropped, but
// a row with nothing to stop the trim (all blank) comes back at full width.
func (t *AnsiTerminal) LineText(y int) string {
	t.lock.LockPriority()
	defer t.lock.Unlock()

	s := t.active
	if y < 0 || y >= s.Buffer.Height() {
		return ""
	}
	content := s.Buffer.CopyRow(y, t.palette.DefaultBackground())
	runes := make([]rune, len(content))
	for i, c := range content {
		runes[i] = c.Codepoint
	}
	return string(runes)
}

// LineWidth returns the display column width of row y's trimmed text
// (wide CJK/emoji runes count as 2, combining marks as 0), for callers
// laying out LineText's output rather than just its rune count.
func (t *AnsiTerminal) LineWidth(y int) int {
	return StringWidth(t.LineText(y))
}
