package vt100

import "fmt"

// MouseButton identifies which button a mouse event concerns.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonMiddle
	MouseButtonRight
	MouseButtonNone
)

func (mods Modifiers) mouseModifierBits() int {
	n := 0
	if mods&ModShift != 0 {
		n += 4
	}
	if mods&ModAlt != 0 {
		n += 8
	}
	if mods&ModCtrl != 0 {
		n += 16
	}
	return n
}

func mouseEncode(t *AnsiTerminal, button int, x, y int, release bool) []byte {
	switch t.modes.MouseEncoding {
	case MouseEncodingSGR:
		final := byte('M')
		if release {
			final = 'm'
		}
		return []byte(fmt.Sprintf("\x1B[<%d;%d;%d%c", button, x+1, y+1, final))
	case MouseEncodingUTF8:
		t.log.Warn().Str("seq", "unsupported").Msg("UTF-8 mouse encoding refused")
		return nil
	default:
		if x > 255-33 || y > 255-33 {
			return nil
		}
		b := button
		if release {
			b |= 3
		}
		return []byte{0x1B, '[', 'M', byte(b + 32), byte(x + 33), byte(y + 33)}
	}
}

// MouseDown encodes and sends a button-press event, if mouse reporting is
// enabled.
func (t *AnsiTerminal) MouseDown(button MouseButton, x, y int, mods Modifiers) {
	if t.modes.Mouse == MouseOff {
		return
	}
	code := int(button) + mods.mouseModifierBits()
	if b := mouseEncode(t, code, x, y, false); b != nil {
		t.reply(string(b))
	}
}

// MouseUp encodes and sends a button-release event, if mouse reporting is
// enabled.
func (t *AnsiTerminal) MouseUp(button MouseButton, x, y int, mods Modifiers) {
	if t.modes.Mouse == MouseOff {
		return
	}
	code := int(button) + mods.mouseModifierBits()
	if b := mouseEncode(t, code, x, y, true); b != nil {
		t.reply(string(b))
	}
}

// MouseMove encodes and sends a motion event, but only when mouseMode is
// ButtonEvent (with a button down, tracked by buttonDown) or All.
func (t *AnsiTerminal) MouseMove(buttonDown bool, x, y int, mods Modifiers) {
	switch t.modes.Mouse {
	case MouseAll:
	case MouseButtonEvent:
		if !buttonDown {
			return
		}
	default:
		return
	}
	code := int(MouseButtonNone) + 32 + mods.mouseModifierBits()
	if b := mouseEncode(t, code, x, y, false); b != nil {
		t.reply(string(b))
	}
}

// MouseWheel encodes and sends a wheel event, if mouse reporting is
// enabled. up selects scroll direction.
func (t *AnsiTerminal) MouseWheel(up bool, x, y int, mods Modifiers) {
	if t.modes.Mouse == MouseOff {
		return
	}
	code := 64 + mods.mouseModifierBits()
	if !up {
		code++
	}
	if b := mouseEncode(t, code, x, y, false); b != nil {
		t.reply(string(b))
	}
}
