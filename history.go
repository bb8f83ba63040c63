package vt100

// HistoryDisabled passed to NewHistory/SetMax turns scrollback capture off
// entirely: Append becomes a no-op and Len stays 0. This is distinct from
// 0, which means "capped row count of 0 rows is not a valid cap" — i.e.
// unbounded. Only a negative maxRows disables history.
const HistoryDisabled = -1

// HistoryRow is one stored scrollback line: a width and its cells, where
// width was always <= the buffer's width at the moment this row was
// inserted (a later buffer resize may leave that invariant stale, which is
// fine — history rows are rendered at whatever width they were captured).
type HistoryRow struct {
	Width int
	Cells []Cell
}

// History is a bounded FIFO of scrollback rows evicted off the top of the
// live buffer. Oldest rows sit at index 0; new rows are appended at the
// tail and the oldest are dropped once the row count exceeds maxRows.
type History struct {
	maxRows int
	rows    []HistoryRow
}

// NewHistory returns an empty history capped at maxRows rows. maxRows == 0
// means unbounded; maxRows < 0 (see HistoryDisabled) turns capture off.
func NewHistory(maxRows int) *History {
	return &History{maxRows: maxRows}
}

// Len returns the number of stored rows.
func (h *History) Len() int { return len(h.rows) }

// Row returns the row at index i, 0 being the oldest.
func (h *History) Row(i int) HistoryRow { return h.rows[i] }

// Max returns the current row cap (0 meaning unbounded, < 0 meaning
// capture is disabled).
func (h *History) Max() int { return h.maxRows }

// Enabled reports whether scrollback capture is active. Only a negative
// cap (HistoryDisabled) turns it off; a cap of 0 is unbounded, not disabled.
func (h *History) Enabled() bool { return h.maxRows >= 0 }

// SetMax changes the row cap, immediately trimming from the front if the
// history is now over capacity.
func (h *History) SetMax(max int) {
	h.maxRows = max
	h.trim()
}

// Clear discards all stored rows.
func (h *History) Clear() {
	h.rows = h.rows[:0]
}

// Append stores content (expected to already be right-trimmed, e.g. via
// Buffer.CopyRow) as one or more history rows. If content is wider than
// bufferWidth it is split into bufferWidth-sized chunks at row boundaries;
// only the final chunk can carry the original end-of-line cell, since that
// cell — if present at all — was the last one in content.
func (h *History) Append(content []Cell, bufferWidth int) {
	if !h.Enabled() {
		return
	}
	if bufferWidth <= 0 || len(content) <= bufferWidth {
		h.push(content)
		return
	}
	for i := 0; i < len(content); i += bufferWidth {
		end := i + bufferWidth
		if end > len(content) {
			end = len(content)
		}
		chunk := make([]Cell, end-i)
		copy(chunk, content[i:end])
		h.push(chunk)
	}
}

func (h *History) push(cells []Cell) {
	h.rows = append(h.rows, HistoryRow{Width: len(cells), Cells: cells})
	h.trim()
}

func (h *History) trim() {
	if !h.Enabled() {
		h.rows = nil
		return
	}
	if h.maxRows == 0 {
		return
	}
	if over := len(h.rows) - h.maxRows; over > 0 {
		remaining := make([]HistoryRow, h.maxRows)
		copy(remaining, h.rows[over:])
		h.rows = remaining
	}
}
