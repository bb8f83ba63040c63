package vt100

// Tpp dispatches a parsed t++ DCS envelope (ESC P + kind ; payload BEL,
// §6). The engine itself only answers Capabilities; every other kind is
// forwarded to the renderer unchanged.
func (t *AnsiTerminal) Tpp(seq TppSequence) {
	if seq.Kind == "Capabilities" {
		t.reply("\x1BP+Capabilities;0\a")
		return
	}
	t.renderer.OnTppSequence(seq.Kind, seq.Payload)
}
