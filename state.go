package vt100

// ScrollRegion is the vertical scrolling region set by DECSTBM: rows
// [Start, End) scroll together; rows outside it are unaffected by
// scroll-region-bounded operations (IL/DL/SU/SD, linefeed at the bottom).
type ScrollRegion struct {
	Start, End int
}

// Contains reports whether row y falls inside the region.
func (r ScrollRegion) Contains(y int) bool {
	return y >= r.Start && y < r.End
}

// State bundles one screen's worth of mutable emulator knobs: its buffer,
// the active scroll region, the SGR-accumulated cell template used for the
// next write, the position of the last printable character written (used
// to place the end-of-line marker on CR/LF), and the DECSC/DECRC cursor
// save stack. The emulator keeps two of these — primary and alternate —
// and swaps which is active when the alternate screen mode is toggled.
type State struct {
	Buffer        *Buffer
	Cursor        Cursor
	Scroll        ScrollRegion
	Template      Cell
	LastCharacter Position
	HasLast       bool
	cursorStack   []cursorFrame
}

// NewState returns a state for a width x height screen, its buffer filled
// with the default cell resolved against p, scroll region spanning the
// whole screen, and cursor at the origin.
func NewState(width, height int, p *Palette) *State {
	def := DefaultCell(p)
	return &State{
		Buffer:   NewBuffer(width, height, def),
		Cursor:   NewCursor(),
		Scroll:   ScrollRegion{0, height},
		Template: def,
	}
}

// Reset restores the state to its just-constructed defaults in place,
// keeping the same buffer object but clearing its contents.
func (s *State) Reset(p *Palette) {
	def := DefaultCell(p)
	s.Buffer.Clear(def)
	s.Cursor = NewCursor()
	s.Scroll = ScrollRegion{0, s.Buffer.Height()}
	s.Template = def
	s.HasLast = false
	s.cursorStack = nil
}

// PushCursor saves the current cursor position and line-drawing-set bit
// (DECSC).
func (s *State) PushCursor(lineDrawingSet bool) {
	s.cursorStack = append(s.cursorStack, cursorFrame{
		Pos:            Position{X: s.Cursor.X, Y: s.Cursor.Y},
		LineDrawingSet: lineDrawingSet,
	})
}

// PopCursor restores the most recently saved cursor position, reporting
// its line-drawing-set bit. Does nothing (returns false) if the stack is
// empty, per DECRC's documented behavior with no prior DECSC.
func (s *State) PopCursor() (lineDrawingSet bool, ok bool) {
	if len(s.cursorStack) == 0 {
		return false, false
	}
	top := s.cursorStack[len(s.cursorStack)-1]
	s.cursorStack = s.cursorStack[:len(s.cursorStack)-1]
	s.Cursor.X, s.Cursor.Y = top.Pos.X, top.Pos.Y
	return top.LineDrawingSet, true
}
