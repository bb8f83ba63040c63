package vt100

import (
	"strings"
	"testing"
)

func TestTerminalPrintAndSGR(t *testing.T) {
	term := New(10, 3)
	term.ProcessInput([]byte("\x1b[31mHi\x1b[0m"))
	if got := term.LineText(0); got != "Hi" {
		t.Fatalf("LineText(0) = %q, want %q", got, "Hi")
	}
	snap := term.Snapshot()
	if snap.Grid[0][0].Fg != NewPalette256().At(1) {
		t.Errorf("expected red foreground on first cell, got %+v", snap.Grid[0][0].Fg)
	}
	if snap.Grid[0][2].Fg == (NewPalette256().At(1)) {
		t.Errorf("expected SGR reset to clear foreground past 'Hi'")
	}
}

func TestTerminalCursorMovement(t *testing.T) {
	term := New(10, 5)
	term.ProcessInput([]byte("\x1b[3;4H"))
	snap := term.Snapshot()
	if snap.Cursor.Y != 2 || snap.Cursor.X != 3 {
		t.Fatalf("expected cursor at (3,2) after CUP 3;4, got (%d,%d)", snap.Cursor.X, snap.Cursor.Y)
	}
}

func TestTerminalLineWrapAndHistory(t *testing.T) {
	term := New(5, 2, WithHistoryLimit(10))
	term.ProcessInput([]byte("abcdefghij\r\n"))
	// first 10 chars fill both rows exactly (5 cols x 2 rows); the \r\n
	// that follows forces a scroll, evicting row 0 to history.
	if term.HistoryLen() == 0 {
		t.Fatalf("expected at least one row evicted to history after scroll")
	}
}

func TestTerminalAlternateScreenSwitch(t *testing.T) {
	term := New(10, 3)
	term.ProcessInput([]byte("primary"))
	if term.IsAlternateScreen() {
		t.Fatal("expected primary screen active initially")
	}
	term.ProcessInput([]byte("\x1b[?1049h"))
	if !term.IsAlternateScreen() {
		t.Fatal("expected alternate screen active after CSI ?1049h")
	}
	if got := strings.TrimRight(term.LineText(0), " "); got != "" {
		t.Errorf("expected blank alternate screen, got %q", got)
	}
	term.ProcessInput([]byte("\x1b[?1049l"))
	if term.IsAlternateScreen() {
		t.Fatal("expected primary screen restored after CSI ?1049l")
	}
	if got := term.LineText(0); got != "primary" {
		t.Errorf("expected primary content preserved, got %q", got)
	}
}

func TestTerminalCursorVisibilityPrivateModeOnly(t *testing.T) {
	term := New(10, 3)
	term.ProcessInput([]byte("\x1b[?25l"))
	if term.Snapshot().Cursor.Visible {
		t.Fatal("expected cursor hidden after CSI ?25l")
	}
	// Non-private "25 l" (no '?') must NOT toggle cursor visibility.
	term.ProcessInput([]byte("\x1b[?25h\x1b[25l"))
	if !term.Snapshot().Cursor.Visible {
		t.Fatal("expected cursor still visible: bare CSI 25l must not be DECTCEM")
	}
}

func TestTerminalResizeRewrapsPreservesContent(t *testing.T) {
	term := New(10, 3)
	term.ProcessInput([]byte("hi"))
	term.Resize(5, 3)
	if got := term.LineText(0); got != "hi" {
		t.Fatalf("expected content preserved across resize, got %q", got)
	}
}

func TestTerminalSelectionExtractsAcrossRows(t *testing.T) {
	term := New(10, 3)
	term.ProcessInput([]byte("foo\r\nbar"))
	term.SetSelection(Position{X: 0, Y: 0}, Position{X: 3, Y: 1})
	text := term.SelectionText()
	if text != "foo\nbar" {
		t.Fatalf("SelectionText() = %q, want %q", text, "foo\nbar")
	}
}

func TestTerminalSaveRestoreCursor(t *testing.T) {
	term := New(10, 5)
	term.ProcessInput([]byte("\x1b[3;3H\x1b7\x1b[1;1H\x1b8"))
	snap := term.Snapshot()
	if snap.Cursor.X != 2 || snap.Cursor.Y != 2 {
		t.Fatalf("expected cursor restored to (2,2), got (%d,%d)", snap.Cursor.X, snap.Cursor.Y)
	}
}

func TestTerminalRepeatLastCharOutOfBoundsIsNoop(t *testing.T) {
	term := New(5, 1)
	term.ProcessInput([]byte("x"))
	term.ProcessInput([]byte("\x1b[100b")) // far more repeats than fit
	if got := term.LineText(0); got != "x" {
		t.Fatalf("expected no partial repeat on out-of-bounds REP, got %q", got)
	}
}

func TestTerminalRepeatLastChar(t *testing.T) {
	term := New(5, 1)
	term.ProcessInput([]byte("x\x1b[3b"))
	if got := term.LineText(0); got != "xxxx" {
		t.Fatalf("expected 'x' repeated 3 extra times, got %q", got)
	}
}

func TestTerminalAlignmentTestFillsScreenWithE(t *testing.T) {
	term := New(4, 2)
	term.ProcessInput([]byte("\x1b#8"))
	snap := term.Snapshot()
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			if snap.Grid[y][x].Codepoint != 'E' {
				t.Fatalf("cell (%d,%d) = %q, want 'E'", x, y, snap.Grid[y][x].Codepoint)
			}
		}
	}
	if snap.Cursor.X != 0 || snap.Cursor.Y != 0 {
		t.Fatalf("expected cursor homed after DECALN, got (%d,%d)", snap.Cursor.X, snap.Cursor.Y)
	}
}

func TestTerminalFullResetClearsScreenModesAndHistory(t *testing.T) {
	term := New(5, 2, WithHistoryLimit(10))
	term.ProcessInput([]byte("abcdefghij\r\n\r\n")) // force a scroll into history
	if term.HistoryLen() == 0 {
		t.Fatal("expected history populated before reset")
	}
	term.ProcessInput([]byte("\x1b[?1049h")) // enter alternate screen
	term.ProcessInput([]byte("\x1bc"))       // RIS
	if term.IsAlternateScreen() {
		t.Fatal("expected primary screen active after RIS")
	}
	if term.HistoryLen() != 0 {
		t.Fatalf("expected history cleared after RIS, got %d rows", term.HistoryLen())
	}
	if got := strings.TrimRight(term.LineText(0), " "); got != "" {
		t.Fatalf("expected blank screen after RIS, got %q", got)
	}
}
