package vt100

// lineDrawingTable remaps 0x6A..0x78 to their line-drawing glyphs when the
// DEC special graphics charset is selected (ESC ( 0). Zero entries are left
// unchanged (the source codepoint has no special-graphics mapping).
var lineDrawingTable = [15]rune{
	0x2518, 0x2510, 0x250C, 0x2514, 0x253C, 0, 0,
	0x2500, 0, 0, 0x251C, 0x2524, 0x2534, 0x252C, 0x2502,
}

// Control handles a recognized C0 control byte: BEL, BS, TAB, LF, CR.
func (t *AnsiTerminal) Control(b byte) {
	s := t.active
	switch b {
	case 0x07: // BEL
		t.renderer.OnNotification("", "")
	case 0x08: // BS
		if s.Cursor.X == 0 {
			if s.Cursor.Y > 0 {
				s.Cursor.Y--
				s.Cursor.X = s.Buffer.Width() - 1
			}
		} else {
			s.Cursor.X--
		}
	case 0x09: // TAB
		next := (s.Cursor.X/8 + 1) * 8
		if next > s.Buffer.Width() {
			next = s.Buffer.Width()
		}
		s.Cursor.X = next
	case 0x0A: // LF
		if s.HasLast {
			s.Buffer.At(s.LastCharacter.X, s.LastCharacter.Y).SetFlag(CellEndOfLine)
		}
		s.Template.Font.DoubleWidth = false
		s.Template.Font.DoubleHeightTop = false
		s.Template.Font.DoubleHeightBottom = false
		s.Cursor.Y++
		if s.Cursor.Y == s.Scroll.End {
			t.deleteLines(1, s.Scroll.Start, s.Scroll.End)
			s.Cursor.Y--
		}
	case 0x0D: // CR
		s.Cursor.X = 0
	}
}

// Print handles one decoded Unicode codepoint (§4.4 "Writing a printable
// codepoint").
func (t *AnsiTerminal) Print(r rune) {
	s := t.active

	if t.modes.LineDrawingSet && r >= 0x6A && r <= 0x78 {
		if mapped := lineDrawingTable[r-0x6A]; mapped != 0 {
			r = mapped
		}
	}

	t.normalizeCursor()

	cell := s.Template
	cell.Codepoint = r
	if isWideRune(r) && !cell.Font.DoubleWidth {
		cell.Font.DoubleWidth = true
	}
	*s.Buffer.At(s.Cursor.X, s.Cursor.Y) = cell

	s.Cursor.X++
}

// SaveCursor handles ESC 7 (DECSC).
func (t *AnsiTerminal) SaveCursor() {
	t.active.PushCursor(t.modes.LineDrawingSet)
}

// RestoreCursor handles ESC 8 (DECRC), clamping to buffer bounds.
func (t *AnsiTerminal) RestoreCursor() {
	s := t.active
	lineDrawing, ok := s.PopCursor()
	if !ok {
		return
	}
	t.modes.LineDrawingSet = lineDrawing
	if s.Cursor.X < 0 {
		s.Cursor.X = 0
	}
	if s.Cursor.X > s.Buffer.Width() {
		s.Cursor.X = s.Buffer.Width()
	}
	if s.Cursor.Y < 0 {
		s.Cursor.Y = 0
	}
	if s.Cursor.Y >= s.Buffer.Height() {
		s.Cursor.Y = s.Buffer.Height() - 1
	}
}

// ReverseIndex handles ESC M: move up one row, scrolling the scroll region
// down if already at its top.
func (t *AnsiTerminal) ReverseIndex() {
	s := t.active
	if s.Cursor.Y == s.Scroll.Start {
		t.insertLines(1, s.Scroll.Start, s.Scroll.End)
	} else {
		s.Cursor.Y--
	}
}

// SelectCharset handles ESC ( / ) / * / + <final>. Only the DEC special
// graphics set (ESC ( 0) and its exit (ESC ( B) are meaningful; other
// introducer/final combinations are consumed and otherwise ignored.
func (t *AnsiTerminal) SelectCharset(introducer, final byte) {
	if introducer != '(' {
		return
	}
	switch final {
	case '0':
		t.modes.LineDrawingSet = true
	case 'B':
		t.modes.LineDrawingSet = false
	}
}

// SetKeypadMode handles ESC = (application) and ESC > (normal).
func (t *AnsiTerminal) SetKeypadMode(application bool) {
	if application {
		t.modes.Keypad = KeypadApplication
	} else {
		t.modes.Keypad = KeypadNormal
	}
}

// AlignmentTest handles ESC # 8 (DECALN): fills the active screen with 'E',
// the classic screen-alignment test pattern, and homes the cursor.
func (t *AnsiTerminal) AlignmentTest() {
	s := t.active
	fill := s.Template
	fill.Codepoint = 'E'
	for y := 0; y < s.Buffer.Height(); y++ {
		s.Buffer.FillRow(y, fill, s.Buffer.Width())
	}
	s.Cursor.X, s.Cursor.Y = 0, 0
}

// FullReset handles ESC c (RIS): resets both screens to power-on defaults,
// drops the alternate screen, clears scrollback, and restores default modes.
func (t *AnsiTerminal) FullReset() {
	t.modes = NewModes()
	t.primary.Reset(t.palette)
	t.alternate.Reset(t.palette)
	t.active = t.primary
	t.history.Clear()
}

// Unknown logs an unrecognized escape sequence and otherwise ignores it.
func (t *AnsiTerminal) Unknown(raw []byte) {
	t.log.Warn().Str("seq", "unknown").Bytes("bytes", raw).Msg("unrecognized escape sequence")
}
