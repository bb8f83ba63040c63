package vt100

import "fmt"

// CSI dispatches a fully parsed Control Sequence Introducer to the matching
// operation (§4.4 "CSI semantics"). Unknown final bytes are logged and
// otherwise ignored.
func (t *AnsiTerminal) CSI(seq CSISequence) {
	if seq.Prefix == '?' {
		t.csiPrivateMode(seq)
		return
	}
	if seq.Prefix == '>' && seq.Final == 'c' {
		t.reply("\x1B[>0;0;0c")
		return
	}

	s := t.active
	switch seq.Final {
	case '@': // ICH
		n := seq.Arg(0, 1)
		t.insertBlanks(n)
	case 'A': // CUU
		s.Cursor.Y -= seq.Arg(0, 1)
		t.clampCursorRow()
	case 'B': // CUD
		s.Cursor.Y += seq.Arg(0, 1)
		t.clampCursorRow()
	case 'C': // CUF
		s.Cursor.X += seq.Arg(0, 1)
		t.clampCursorCol()
	case 'D': // CUB
		s.Cursor.X -= seq.Arg(0, 1)
		t.clampCursorCol()
	case 'G': // CHA
		s.Cursor.X = clamp(seq.Arg(0, 1)-1, 0, s.Buffer.Width()-1)
	case 'H', 'f': // CUP/HVP
		row := seq.Arg(0, 1)
		col := seq.Arg(1, 1)
		s.Cursor.Y = clamp(row-1, 0, s.Buffer.Height()-1)
		s.Cursor.X = clamp(col-1, 0, s.Buffer.Width())
	case 'J': // ED
		t.eraseDisplay(seq.Arg(0, 0))
	case 'K': // EL
		t.eraseLine(seq.Arg(0, 0))
	case 'L': // IL
		t.insertLines(seq.Arg(0, 1), s.Cursor.Y, s.Scroll.End)
	case 'M': // DL
		t.deleteLines(seq.Arg(0, 1), s.Cursor.Y, s.Scroll.End)
	case 'P': // DCH
		t.deleteChars(seq.Arg(0, 1))
	case 'S': // SU
		t.deleteLines(seq.Arg(0, 1), s.Scroll.Start, s.Scroll.End)
	case 'T': // SD
		t.insertLines(seq.Arg(0, 1), s.Scroll.Start, s.Scroll.End)
	case 'X': // ECH
		t.eraseChars(seq.Arg(0, 1))
	case 'b': // REP
		t.repeatLastChar(seq.Arg(0, 1))
	case 'c': // DA
		t.reply("\x1B[?6c")
	case 'd': // VPA
		s.Cursor.Y = clamp(seq.Arg(0, 1)-1, 0, s.Buffer.Height()-1)
	case 'h', 'l':
		// non-private mode set/reset: mostly no-ops. Mode 25 without the
		// '?' prefix is deliberately NOT treated as DECTCEM here (that
		// differs from some xterm implementations) and is logged instead.
		for _, arg := range seq.Args {
			if arg.Value == 25 {
				t.log.Warn().Str("seq", "unknown").Int("mode", 25).Bool("private", false).Msg("non-private mode 25 is not DECTCEM here")
			}
		}
	case 'm':
		t.sgr(seq)
	case 'n': // DSR
		switch seq.Arg(0, 0) {
		case 5:
			t.reply("\x1B[0n")
		case 6:
			t.reply(fmt.Sprintf("\x1B[%d;%dR", s.Cursor.Y+1, s.Cursor.X+1))
		}
	case 'r': // DECSTBM
		start := seq.Arg(0, 1) - 1
		end := seq.Arg(1, s.Buffer.Height())
		if start < 0 {
			start = 0
		}
		if end > s.Buffer.Height() {
			end = s.Buffer.Height()
		}
		if start < end {
			s.Scroll = ScrollRegion{Start: start, End: end}
		}
		s.Cursor.X, s.Cursor.Y = 0, 0
	case 't':
		// window manipulation: every variant, the save/restore title pair
		// included, is ignored without being logged.
	default:
		t.log.Warn().Str("seq", "unknown").Uint8("final", seq.Final).Msg("unsupported CSI final byte")
	}
}

func (t *AnsiTerminal) clampCursorRow() {
	s := t.active
	s.Cursor.Y = clamp(s.Cursor.Y, 0, s.Buffer.Height()-1)
}

func (t *AnsiTerminal) clampCursorCol() {
	s := t.active
	s.Cursor.X = clamp(s.Cursor.X, 0, s.Buffer.Width()-1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// insertBlanks implements ICH: insert n blank cells at the cursor, shifting
// the remainder of the row right and discarding overflow.
func (t *AnsiTerminal) insertBlanks(n int) {
	s := t.active
	row := s.Buffer.Row(s.Cursor.Y)
	w := s.Buffer.Width()
	for c := w - 1; c >= s.Cursor.X+n; c-- {
		row[c] = row[c-n]
	}
	for c := s.Cursor.X; c < s.Cursor.X+n && c < w; c++ {
		row[c] = s.Template
	}
}

// deleteChars implements DCH: remove n cells at the cursor, shifting the
// remainder of the row left and filling the vacated tail with the template.
func (t *AnsiTerminal) deleteChars(n int) {
	s := t.active
	row := s.Buffer.Row(s.Cursor.Y)
	w := s.Buffer.Width()
	for c := s.Cursor.X; c < w-n; c++ {
		row[c] = row[c+n]
	}
	for c := w - n; c < w; c++ {
		if c >= 0 {
			row[c] = s.Template
		}
	}
}

// eraseChars implements CSI X: erase n cells forward from the cursor,
// wrapping across row boundaries and bounded by the buffer.
func (t *AnsiTerminal) eraseChars(n int) {
	s := t.active
	x, y := s.Cursor.X, s.Cursor.Y
	w, h := s.Buffer.Width(), s.Buffer.Height()
	for ; n > 0 && y < h; n-- {
		*s.Buffer.At(x, y) = s.Template
		x++
		if x >= w {
			x = 0
			y++
		}
	}
}

// eraseDisplay implements ED: mode 0 cursor->end, 1 start->cursor, 2 all.
func (t *AnsiTerminal) eraseDisplay(mode int) {
	s := t.active
	w, h := s.Buffer.Width(), s.Buffer.Height()
	switch mode {
	case 0:
		s.Buffer.ClearRange(s.Cursor.Y, s.Cursor.X, w, s.Template)
		for y := s.Cursor.Y + 1; y < h; y++ {
			s.Buffer.FillRow(y, s.Template, w)
		}
	case 1:
		s.Buffer.ClearRange(s.Cursor.Y, 0, s.Cursor.X+1, s.Template)
		for y := 0; y < s.Cursor.Y; y++ {
			s.Buffer.FillRow(y, s.Template, w)
		}
	case 2:
		s.Buffer.Clear(s.Template)
	}
}

// eraseLine implements EL: mode 0 cursor->end-of-line, 1 start-of-line-
// >cursor, 2 whole line.
func (t *AnsiTerminal) eraseLine(mode int) {
	s := t.active
	w := s.Buffer.Width()
	switch mode {
	case 0:
		s.Buffer.ClearRange(s.Cursor.Y, s.Cursor.X, w, s.Template)
	case 1:
		s.Buffer.ClearRange(s.Cursor.Y, 0, s.Cursor.X+1, s.Template)
	case 2:
		s.Buffer.FillRow(s.Cursor.Y, s.Template, w)
	}
}

// repeatLastChar implements CSI b (REP): repeat the last printed codepoint
// n times. Both the row and buffer bounds are checked up front; an
// out-of-bounds request is logged and left entirely un-repeated (no
// partial repeat), per the decision recorded for this sequence.
func (t *AnsiTerminal) repeatLastChar(n int) {
	s := t.active
	if !s.HasLast {
		return
	}
	r := s.Buffer.At(s.LastCharacter.X, s.LastCharacter.Y).Codepoint

	w, h := s.Buffer.Width(), s.Buffer.Height()
	remaining := (h-s.Cursor.Y)*w - s.Cursor.X
	if n > remaining {
		t.log.Warn().Str("seq", "unsupported").Int("rep", n).Msg("CSI b repeat out of bounds")
		return
	}
	for i := 0; i < n; i++ {
		t.Print(r)
	}
}

// reply writes a wire-protocol response (DA/DSR) back through the PTY
// collaborator, if one is attached.
func (t *AnsiTerminal) reply(s string) {
	if t.pty == nil {
		return
	}
	_, _ = t.pty.Send([]byte(s))
}

// csiPrivateMode handles `?`-prefixed CSI private-mode setters/resetters
// (`h`=enable, `l`=disable).
func (t *AnsiTerminal) csiPrivateMode(seq CSISequence) {
	enable := seq.Final == 'h'
	if seq.Final != 'h' && seq.Final != 'l' {
		t.log.Warn().Str("seq", "unknown").Uint8("final", seq.Final).Msg("unsupported private-mode final byte")
		return
	}

	s := t.active
	for _, arg := range seq.Args {
		switch arg.Value {
		case 1:
			if enable {
				t.modes.CursorKey = CursorKeyApplication
			} else {
				t.modes.CursorKey = CursorKeyNormal
			}
		case 4:
			// smooth scrolling: ignore.
		case 7:
			// DECAWM autowrap must stay enabled; toggling it is refused.
		case 12:
			s.Cursor.Blink = enable
		case 25:
			s.Cursor.Visible = enable
		case 1000:
			if enable {
				t.modes.Mouse = MouseNormal
			} else {
				t.modes.Mouse = MouseOff
			}
		case 1001:
			t.log.Warn().Str("seq", "unsupported").Msg("highlight mouse mode refused")
		case 1002:
			if enable {
				t.modes.Mouse = MouseButtonEvent
			} else {
				t.modes.Mouse = MouseOff
			}
		case 1003:
			if enable {
				t.modes.Mouse = MouseAll
			} else {
				t.modes.Mouse = MouseOff
			}
		case 1005:
			t.log.Warn().Str("seq", "unsupported").Msg("UTF-8 mouse encoding refused")
		case 1006:
			if enable {
				t.modes.MouseEncoding = MouseEncodingSGR
			} else {
				t.modes.MouseEncoding = MouseEncodingDefault
			}
		case 47, 1049:
			t.setAlternateScreen(enable)
		case 2004:
			t.modes.BracketedPaste = enable
		default:
			t.log.Warn().Str("seq", "unknown").Int("mode", arg.Value).Msg("unsupported private mode")
		}
	}
}

// setAlternateScreen toggles between the primary and alternate States
// (§4.7). Entering clears any active selection and resets the new active
// state to defaults; leaving swaps back without touching the primary.
func (t *AnsiTerminal) setAlternateScreen(enable bool) {
	if enable == t.modes.AlternateMode {
		return
	}
	t.selection = Selection{}
	if enable {
		t.active = t.alternate
		t.active.Reset(t.palette)
	} else {
		t.active = t.primary
	}
	t.modes.AlternateMode = enable
}
