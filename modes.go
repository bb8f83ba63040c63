package vt100

// CursorKeyMode selects whether arrow/Home/End keys send ANSI cursor
// sequences (Normal) or application sequences (Application, DECCKM).
type CursorKeyMode int

const (
	CursorKeyNormal CursorKeyMode = iota
	CursorKeyApplication
)

// KeypadMode selects whether the numeric keypad sends digits (Normal) or
// application sequences (Application, DECKPAM/DECKPNM).
type KeypadMode int

const (
	KeypadNormal KeypadMode = iota
	KeypadApplication
)

// MouseMode selects what mouse activity is reported, mirroring xterm's
// 1000/1002/1003 private modes.
type MouseMode int

const (
	MouseOff MouseMode = iota
	MouseNormal
	MouseButtonEvent
	MouseAll
)

// MouseEncoding selects the wire format used for reported mouse coordinates.
type MouseEncoding int

const (
	MouseEncodingDefault MouseEncoding = iota
	MouseEncodingUTF8
	MouseEncodingSGR
)

// Modes bundles the emulator's boolean and enumerated mode state, set by
// CSI private-mode sequences (DECSET/DECRST) and consulted throughout
// parsing, rendering, and input encoding.
type Modes struct {
	CursorKey      CursorKeyMode
	Keypad         KeypadMode
	Mouse          MouseMode
	MouseEncoding  MouseEncoding
	BracketedPaste bool
	LineDrawingSet bool
	InverseMode    bool
	AlternateMode  bool
	BoldIsBright   bool
}

// NewModes returns the default mode set: everything off/normal. DECAWM
// autowrap has no on/off flag here — per spec it must stay enabled, so
// Print/normalizeCursor always wrap unconditionally (csiPrivateMode refuses
// CSI ?7h/?7l rather than tracking a mode bit nothing would consult).
func NewModes() Modes {
	return Modes{}
}
