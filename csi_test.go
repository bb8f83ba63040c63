package vt100

import (
	"strings"
	"testing"
)

func TestCSIEraseDisplayModes(t *testing.T) {
	term := New(5, 2)
	term.ProcessInput([]byte("abcde\r\nfghij"))
	term.ProcessInput([]byte("\x1b[3;3H")) // clamps to the last row, col index 2
	term.ProcessInput([]byte("\x1b[0J"))   // erase from cursor to end of screen
	snap := term.Snapshot()
	if snap.Grid[1][0].Codepoint != 'f' || snap.Grid[1][1].Codepoint != 'g' {
		t.Errorf("expected content before cursor preserved, got %q%q", snap.Grid[1][0].Codepoint, snap.Grid[1][1].Codepoint)
	}
}

func TestCSIInsertDeleteLine(t *testing.T) {
	term := New(5, 3)
	term.ProcessInput([]byte("111\r\n222\r\n333"))
	term.ProcessInput([]byte("\x1b[1;1H\x1b[L")) // IL at top: insert one blank line
	if got := strings.TrimRight(term.LineText(0), " "); got != "" {
		t.Errorf("expected blank inserted row0, got %q", got)
	}
	if got := term.LineText(1); got != "111" {
		t.Errorf("expected row1 = 111, got %q", got)
	}
}

func TestCSIScrollRegionConfinesLinefeedScroll(t *testing.T) {
	term := New(5, 4)
	term.ProcessInput([]byte("\x1b[1;1Hr0\x1b[2;1Hr1\x1b[3;1Hr2\x1b[4;1Hr3"))
	term.ProcessInput([]byte("\x1b[2;3r")) // scroll region rows 2-3 (1-indexed) -> [1,3)
	term.ProcessInput([]byte("\x1b[3;1H\r\n"))
	if got := term.LineText(0); got != "r0" {
		t.Errorf("expected row0 untouched by region-scoped scroll, got %q", got)
	}
	if got := term.LineText(1); got != "r2" {
		t.Errorf("expected row1 to receive the shifted region content, got %q", got)
	}
	if got := term.LineText(3); got != "r3" {
		t.Errorf("expected row3 untouched by region-scoped scroll, got %q", got)
	}
}

func TestCSIEraseChars(t *testing.T) {
	term := New(5, 1)
	term.ProcessInput([]byte("abcde\x1b[1;1H\x1b[2X"))
	got := term.LineText(0)
	if len(got) < 2 || got[:2] != "  " {
		t.Errorf("expected first two chars erased to blank, got %q", got)
	}
}

func TestCSIDeviceAttributesReply(t *testing.T) {
	sink := &capturePTY{}
	term := New(5, 1, WithPTY(sink))
	term.ProcessInput([]byte("\x1b[c"))
	if len(sink.sent) != 1 || string(sink.sent[0]) != "\x1b[?6c" {
		t.Fatalf("expected DA reply, got %v", sink.sent)
	}
}

func TestCSICursorPositionReport(t *testing.T) {
	sink := &capturePTY{}
	term := New(5, 3, WithPTY(sink))
	term.ProcessInput([]byte("\x1b[2;3H\x1b[6n"))
	if len(sink.sent) != 1 || string(sink.sent[0]) != "\x1b[2;3R" {
		t.Fatalf("expected CPR reply, got %v", sink.sent)
	}
}
