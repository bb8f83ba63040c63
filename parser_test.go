package vt100

import (
	"reflect"
	"testing"
)

// recordingHandler captures every event the parser produces, for asserting
// against expected call sequences regardless of how the input bytes were
// chunked.
type recordingHandler struct {
	events []string
}

func (r *recordingHandler) Control(b byte)       { r.events = append(r.events, "Control") }
func (r *recordingHandler) Print(c rune)         { r.events = append(r.events, "Print:"+string(c)) }
func (r *recordingHandler) CSI(seq CSISequence)  { r.events = append(r.events, "CSI:"+string(seq.Final)) }
func (r *recordingHandler) OSC(seq OSCSequence)  { r.events = append(r.events, "OSC") }
func (r *recordingHandler) Tpp(seq TppSequence)  { r.events = append(r.events, "Tpp:"+seq.Kind) }
func (r *recordingHandler) SaveCursor()          { r.events = append(r.events, "SaveCursor") }
func (r *recordingHandler) RestoreCursor()       { r.events = append(r.events, "RestoreCursor") }
func (r *recordingHandler) ReverseIndex()        { r.events = append(r.events, "ReverseIndex") }
func (r *recordingHandler) SelectCharset(i, f byte) {
	r.events = append(r.events, "SelectCharset")
}
func (r *recordingHandler) SetKeypadMode(app bool) { r.events = append(r.events, "SetKeypadMode") }
func (r *recordingHandler) AlignmentTest()         { r.events = append(r.events, "AlignmentTest") }
func (r *recordingHandler) FullReset()             { r.events = append(r.events, "FullReset") }
func (r *recordingHandler) Unknown(raw []byte)     { r.events = append(r.events, "Unknown") }

func feedAll(t *testing.T, data []byte) []string {
	t.Helper()
	h := &recordingHandler{}
	var p Parser
	i := 0
	for i < len(data) {
		n := p.Feed(data[i:], h)
		if n == 0 {
			t.Fatalf("parser stalled at byte %d of %q", i, data)
		}
		i += n
	}
	return h.events
}

func TestParserCSIAndPrint(t *testing.T) {
	events := feedAll(t, []byte("\x1b[31mhi"))
	want := []string{"CSI:m", "Print:h", "Print:i"}
	if !reflect.DeepEqual(events, want) {
		t.Fatalf("got %v, want %v", events, want)
	}
}

func TestParserResumabilityAcrossArbitrarySplits(t *testing.T) {
	input := []byte("\x1b[1;31mHello\x1b]0;title\x07W\xE2\x82\xACrld\x1bP+Cap;payload\x07")

	full := feedAll(t, input)

	for split := 1; split < len(input); split++ {
		h := &recordingHandler{}
		var p Parser
		pending := append([]byte(nil), input[:split]...)
		rest := input[split:]
		consumed := p.Feed(pending, h)
		pending = pending[consumed:]

		for len(rest) > 0 {
			pending = append(pending, rest[0])
			rest = rest[1:]
			n := p.Feed(pending, h)
			pending = pending[n:]
		}
		// drain anything left (should be fully consumable once complete)
		for len(pending) > 0 {
			n := p.Feed(pending, h)
			if n == 0 {
				t.Fatalf("split at %d: parser stalled with leftover %q", split, pending)
			}
			pending = pending[n:]
		}

		if !reflect.DeepEqual(h.events, full) {
			t.Fatalf("split at %d: events differ.\n got:  %v\n want: %v", split, h.events, full)
		}
	}
}

func TestParserTruncatedUTF8NeedsMoreBytes(t *testing.T) {
	euro := []byte("\xE2\x82\xAC") // 3-byte rune
	h := &recordingHandler{}
	var p Parser
	for i := 1; i < len(euro); i++ {
		n := p.Feed(euro[:i], h)
		if n != 0 {
			t.Fatalf("expected 0 consumed on truncated rune (%d of %d bytes), got %d", i, len(euro), n)
		}
	}
	n := p.Feed(euro, h)
	if n != len(euro) {
		t.Fatalf("expected full rune consumed once complete, got %d", n)
	}
}

func TestParserTruncatedCSINeedsMoreBytes(t *testing.T) {
	seq := []byte("\x1b[38;2;255;0;0m")
	h := &recordingHandler{}
	var p Parser
	for i := 1; i < len(seq); i++ {
		if n := p.Feed(seq[:i], h); n != 0 {
			t.Fatalf("expected 0 consumed at truncation point %d, got %d", i, n)
		}
	}
}

func TestParserUnterminatedTppNeverSkipsBEL(t *testing.T) {
	// An embedded BEL inside what looks like a kind/payload separator must
	// not be mistaken for the envelope terminator while the envelope itself
	// is still unterminated overall -- only tested here via a truncated
	// feed that never completes, asserting 0 bytes consumed throughout.
	partial := []byte("\x1bP+Cap;pay")
	h := &recordingHandler{}
	var p Parser
	if n := p.Feed(partial, h); n != 0 {
		t.Fatalf("expected 0 consumed for unterminated t++ envelope, got %d", n)
	}
}

func TestParserCSIPrivatePrefix(t *testing.T) {
	h := &recordingHandler{}
	var p Parser
	n := p.Feed([]byte("\x1b[?25l"), h)
	if n != len("\x1b[?25l") {
		t.Fatalf("expected full sequence consumed, got %d", n)
	}
	if len(h.events) != 1 || h.events[0] != "CSI:l" {
		t.Fatalf("expected one CSI:l event, got %v", h.events)
	}
}
