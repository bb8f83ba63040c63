package vt100

import "testing"

func TestNewCellDefaults(t *testing.T) {
	c := NewCell()
	if c.Codepoint != ' ' {
		t.Errorf("expected default codepoint space, got %q", c.Codepoint)
	}
	if c.Font.Size != 1 {
		t.Errorf("expected default font size 1, got %d", c.Font.Size)
	}
}

func TestDefaultCellResolvesPaletteColors(t *testing.T) {
	p := NewPalette256()
	c := DefaultCell(p)
	if c.Fg != p.DefaultForeground() {
		t.Errorf("expected default cell fg to match palette default")
	}
	if c.Bg != p.DefaultBackground() {
		t.Errorf("expected default cell bg to match palette default")
	}
}

func TestCellFlags(t *testing.T) {
	var c Cell
	if c.HasFlag(CellEndOfLine) {
		t.Fatal("expected no flags set on zero value")
	}
	c.SetFlag(CellEndOfLine)
	if !c.IsEndOfLine() {
		t.Error("expected CellEndOfLine set")
	}
	c.ClearFlag(CellEndOfLine)
	if c.IsEndOfLine() {
		t.Error("expected CellEndOfLine cleared")
	}
}

func TestCellIsDefaultLooking(t *testing.T) {
	c := Cell{Codepoint: ' ', Bg: ColorNone}
	if !c.IsDefaultLooking() {
		t.Error("expected blank cell on none background to look default")
	}
	c.Font.Underline = true
	if c.IsDefaultLooking() {
		t.Error("expected underline to disqualify default-looking")
	}
	c2 := Cell{Codepoint: 'x', Bg: ColorNone}
	if c2.IsDefaultLooking() {
		t.Error("expected non-space codepoint to disqualify default-looking")
	}
}
