package vt100

// OSC dispatches a fully parsed Operating System Command (§4.4 "OSC
// semantics").
func (t *AnsiTerminal) OSC(seq OSCSequence) {
	switch seq.Num {
	case 0, 2:
		t.renderer.OnTitleChange(string(seq.Value))
	case 1:
		// icon name change: ignore.
	case 52:
		t.oscClipboard(seq.Value)
	case 112:
		t.active.Cursor.Color = ColorNone
	default:
		t.log.Warn().Str("seq", "unknown").Int("osc", seq.Num).Msg("unsupported OSC number")
	}
}

// oscClipboard handles OSC 52: if the payload starts with "c;" the
// remainder is a clipboard write request for the 'c' (clipboard) selector.
func (t *AnsiTerminal) oscClipboard(payload []byte) {
	if len(payload) < 2 || payload[1] != ';' {
		t.log.Warn().Str("seq", "unsupported").Msg("OSC 52 payload missing selector")
		return
	}
	selector := payload[0]
	data := string(payload[2:])
	if selector == 'c' {
		t.renderer.OnClipboardSetRequest(selector, data)
		t.clipboard.Write(selector, data)
	}
}
