package vt100

import "testing"

func cellsOf(s string) []Cell {
	out := make([]Cell, len(s))
	for i, r := range s {
		out[i] = Cell{Codepoint: r}
	}
	return out
}

func TestHistoryAppendAndOrder(t *testing.T) {
	h := NewHistory(0)
	h.Append(cellsOf("first"), 80)
	h.Append(cellsOf("second"), 80)
	if h.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", h.Len())
	}
	if string(runesOf(h.Row(0).Cells)) != "first" {
		t.Errorf("expected oldest row first, got %q", string(runesOf(h.Row(0).Cells)))
	}
}

func TestHistoryEvictsOldestOverCap(t *testing.T) {
	h := NewHistory(2)
	h.Append(cellsOf("a"), 80)
	h.Append(cellsOf("b"), 80)
	h.Append(cellsOf("c"), 80)
	if h.Len() != 2 {
		t.Fatalf("expected cap enforced at 2 rows, got %d", h.Len())
	}
	if string(runesOf(h.Row(0).Cells)) != "b" {
		t.Errorf("expected oldest row evicted, row0=%q", string(runesOf(h.Row(0).Cells)))
	}
}

func TestHistorySetMaxTrimsImmediately(t *testing.T) {
	h := NewHistory(0)
	h.Append(cellsOf("a"), 80)
	h.Append(cellsOf("b"), 80)
	h.Append(cellsOf("c"), 80)
	h.SetMax(1)
	if h.Len() != 1 {
		t.Fatalf("expected immediate trim to 1 row, got %d", h.Len())
	}
	if string(runesOf(h.Row(0).Cells)) != "c" {
		t.Errorf("expected most recent row retained, got %q", string(runesOf(h.Row(0).Cells)))
	}
}

func TestHistoryAppendSplitsWideContent(t *testing.T) {
	h := NewHistory(0)
	h.Append(cellsOf("abcdefghij"), 4)
	if h.Len() != 3 {
		t.Fatalf("expected content split into 3 rows of width 4, got %d rows", h.Len())
	}
	if string(runesOf(h.Row(0).Cells)) != "abcd" {
		t.Errorf("row0 = %q, want abcd", string(runesOf(h.Row(0).Cells)))
	}
	if string(runesOf(h.Row(2).Cells)) != "ij" {
		t.Errorf("row2 = %q, want ij", string(runesOf(h.Row(2).Cells)))
	}
}

func TestHistoryClear(t *testing.T) {
	h := NewHistory(0)
	h.Append(cellsOf("x"), 80)
	h.Clear()
	if h.Len() != 0 {
		t.Errorf("expected 0 rows after Clear, got %d", h.Len())
	}
}
