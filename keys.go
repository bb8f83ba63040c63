package vt100

import "fmt"

// Key identifies a non-printable key for KeyDown/KeyUp encoding.
type Key int

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyRight
	KeyLeft
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyDelete
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyEnter
	KeyTab
	KeyBackspace
)

// Modifiers is a bitmask of held modifier keys, used both for key encoding
// and mouse event encoding.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModAlt
	ModCtrl
)

// sgrModifier computes the "m" parameter of the ESC [ 1 ; m X modifier
// form: 1 + (Shift?1) + (Alt?2) + (Ctrl?4).
func (m Modifiers) sgrModifier() int {
	n := 1
	if m&ModShift != 0 {
		n += 1
	}
	if m&ModAlt != 0 {
		n += 2
	}
	if m&ModCtrl != 0 {
		n += 4
	}
	return n
}

// functionKeyFinal maps the named VT function keys to their plain (no
// modifier) CSI final byte or tilde-number, built once as pure data.
var functionKeyFinal = map[Key]string{
	KeyUp:       "A",
	KeyDown:     "B",
	KeyRight:    "C",
	KeyLeft:     "D",
	KeyHome:     "H",
	KeyEnd:      "F",
	KeyPageUp:   "5~",
	KeyPageDown: "6~",
	KeyInsert:   "2~",
	KeyDelete:   "3~",
	KeyF5:       "15~",
	KeyF6:       "17~",
	KeyF7:       "18~",
	KeyF8:       "19~",
	KeyF9:       "20~",
	KeyF10:      "21~",
	KeyF11:      "23~",
	KeyF12:      "24~",
}

// KeyDown encodes a key press into the byte sequence sent to the PTY,
// per §4.9's static (key, modifiers) table.
func (t *AnsiTerminal) KeyDown(key Key, mods Modifiers) []byte {
	switch key {
	case KeyEnter:
		return []byte{'\r'}
	case KeyTab:
		return []byte{'\t'}
	case KeyBackspace:
		return []byte{0x7F}
	case KeyF1, KeyF2, KeyF3, KeyF4:
		final := byte('P' + int(key-KeyF1))
		return []byte{0x1B, 'O', final}
	}

	if final, ok := functionKeyFinal[key]; ok {
		if mods == 0 {
			if key == KeyUp || key == KeyDown || key == KeyRight || key == KeyLeft {
				if t.modes.CursorKey == CursorKeyApplication {
					return []byte{0x1B, 'O', final[0]}
				}
			}
			return append([]byte{0x1B, '['}, final...)
		}
		m := mods.sgrModifier()
		if len(final) == 1 {
			return []byte(fmt.Sprintf("\x1B[1;%d%s", m, final))
		}
		// tilde form: "N~" -> "N;m~"
		num := final[:len(final)-1]
		return []byte(fmt.Sprintf("\x1B[%s;%d~", num, m))
	}
	return nil
}

// KeyUp is a no-op for this engine: key-up events are not encoded onto the
// wire (the PTY protocol has no "key release" notion for ordinary keys).
func (t *AnsiTerminal) KeyUp(key Key, mods Modifiers) {}

// KeyChar encodes a printable codepoint from the renderer, including
// Ctrl/Alt letter combinations. Ctrl-letter is letter - 'A' + 1; Alt
// prefixes the result with ESC.
func (t *AnsiTerminal) KeyChar(r rune, mods Modifiers) []byte {
	var out []byte
	switch {
	case mods&ModCtrl != 0 && r >= 'a' && r <= 'z':
		out = []byte{byte(r-'a') + 1}
	case mods&ModCtrl != 0 && r >= 'A' && r <= 'Z':
		out = []byte{byte(r-'A') + 1}
	default:
		buf := make([]byte, 4)
		n := encodeRune(buf, r)
		out = buf[:n]
	}
	if mods&ModAlt != 0 {
		out = append([]byte{0x1B}, out...)
	}
	return out
}

func encodeRune(buf []byte, r rune) int {
	return copy(buf, string(r))
}

// Paste encodes pasted text, bracketing it with ESC [ 200~ / ESC [ 201~
// when bracketed-paste mode is active.
func (t *AnsiTerminal) Paste(text string) []byte {
	if !t.modes.BracketedPaste {
		return []byte(text)
	}
	out := make([]byte, 0, len(text)+12)
	out = append(out, "\x1B[200~"...)
	out = append(out, text...)
	out = append(out, "\x1B[201~"...)
	return out
}

// InjectKeyDown encodes and sends a key press to the PTY.
func (t *AnsiTerminal) InjectKeyDown(key Key, mods Modifiers) {
	if b := t.KeyDown(key, mods); b != nil {
		t.reply(string(b))
	}
}

// InjectKeyChar encodes and sends a printable codepoint to the PTY.
func (t *AnsiTerminal) InjectKeyChar(r rune, mods Modifiers) {
	t.reply(string(t.KeyChar(r, mods)))
}

// InjectPaste encodes and sends pasted text to the PTY.
func (t *AnsiTerminal) InjectPaste(text string) {
	t.reply(string(t.Paste(text)))
}
