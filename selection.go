package vt100

import "strings"

// combinedRow returns the cells of row i in the combined history+live grid
// (history rows first, live rows after) addressed by Selection coordinates.
func (t *AnsiTerminal) combinedRow(i int) []Cell {
	if i < t.history.Len() {
		return t.history.Row(i).Cells
	}
	y := i - t.history.Len()
	if y < 0 || y >= t.primary.Buffer.Height() {
		return nil
	}
	return t.primary.Buffer.Row(y)
}

// SelectionText extracts the text of the current selection (§4.10): each
// row's cells are concatenated as UTF-8; a row ending on the end-of-line
// marker gets a trailing newline (with trailing spaces/tabs trimmed first).
// If a row segment starts past the end of that row's content, nothing is
// emitted for it.
func (t *AnsiTerminal) SelectionText() string {
	t.lock.LockPriority()
	defer t.lock.Unlock()
	if !t.selection.Active {
		return ""
	}
	return t.extractText(t.selection.Start, t.selection.End)
}

func (t *AnsiTerminal) extractText(start, end Position) string {
	var b strings.Builder
	for y := start.Y; y <= end.Y; y++ {
		cells := t.combinedRow(y)
		if cells == nil {
			continue
		}
		from := 0
		if y == start.Y {
			from = start.X
		}
		to := len(cells)
		if y == end.Y {
			to = end.X
		}
		if from > len(cells) {
			continue
		}
		if to > len(cells) {
			to = len(cells)
		}
		if from > to {
			continue
		}

		segment := cells[from:to]
		eolAt := -1
		for i, c := range segment {
			if c.IsEndOfLine() {
				eolAt = i
			}
		}
		if eolAt >= 0 {
			line := make([]rune, eolAt+1)
			for i := 0; i <= eolAt; i++ {
				line[i] = segment[i].Codepoint
			}
			b.WriteString(strings.TrimRight(string(line), " \t"))
			b.WriteByte('\n')
		} else {
			line := make([]rune, len(segment))
			for i, c := range segment {
				line[i] = c.Codepoint
			}
			b.WriteString(string(line))
		}
	}
	return b.String()
}

// SetSelection sets the active selection over the combined history+live
// grid.
func (t *AnsiTerminal) SetSelection(start, end Position) {
	t.lock.LockPriority()
	defer t.lock.Unlock()
	t.selection = Selection{Start: start, End: end, Active: true}
}

// ClearSelection deactivates the current selection.
func (t *AnsiTerminal) ClearSelection() {
	t.lock.LockPriority()
	defer t.lock.Unlock()
	t.selection = Selection{}
}
