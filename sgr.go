package vt100

// sgr applies a Select Graphic Rendition sequence to the active state's
// template cell (§4.5). The default argument is 0.
func (t *AnsiTerminal) sgr(seq CSISequence) {
	s := t.active
	args := seq.Args
	if len(args) == 0 {
		args = []CSIArg{{Value: 0, Given: false}}
	}

	for i := 0; i < len(args); i++ {
		v := args[i].Value
		switch {
		case v == 0:
			s.Template.Font.Reset()
			s.Template.Fg = t.palette.DefaultForeground()
			s.Template.Bg = t.palette.DefaultBackground()
			s.Template.Decor = ColorNone
			t.modes.InverseMode = false
		case v == 1:
			s.Template.Font.Bold = true
		case v == 2:
			// faint: ignore.
		case v == 3:
			s.Template.Font.Italic = true
		case v == 4:
			s.Template.Font.Underline = true
		case v == 5:
			s.Template.Font.Blink = true
		case v == 7:
			s.Template.Fg, s.Template.Bg = s.Template.Bg, s.Template.Fg
			t.modes.InverseMode = true
		case v == 9:
			s.Template.Font.Strikethrough = true
		case v == 21 || v == 22:
			s.Template.Font.Bold = false
		case v == 23:
			s.Template.Font.Italic = false
		case v == 24:
			s.Template.Font.Underline = false
		case v == 25:
			s.Template.Font.Blink = false
		case v == 27:
			s.Template.Fg, s.Template.Bg = s.Template.Bg, s.Template.Fg
			t.modes.InverseMode = false
		case v == 29:
			s.Template.Font.Strikethrough = false
		case v >= 30 && v <= 37:
			idx := v - 30
			if t.modes.BoldIsBright && s.Template.Font.Bold {
				idx += 8
			}
			s.Template.Fg = t.palette.At(idx)
		case v == 38:
			s.Template.Fg, i = t.extendedColor(args, i)
		case v == 39:
			s.Template.Fg = t.palette.DefaultForeground()
		case v >= 40 && v <= 47:
			s.Template.Bg = t.palette.At(v - 40)
		case v == 48:
			s.Template.Bg, i = t.extendedColor(args, i)
		case v == 49:
			s.Template.Bg = t.palette.DefaultBackground()
		case v >= 90 && v <= 97:
			s.Template.Fg = t.palette.At(8 + v - 90)
		case v >= 100 && v <= 107:
			s.Template.Bg = t.palette.At(8 + v - 100)
		default:
			t.log.Warn().Str("seq", "unsupported").Int("sgr", v).Msg("unsupported SGR argument")
		}
	}
}

// extendedColor parses the argument(s) following a 38/48 (extended
// foreground/background) SGR argument starting at index i (which is the
// index of the 38/48 itself). It returns the resolved color and the new
// index the caller's loop should continue from (the index of the last
// argument this call consumed). Out-of-range or missing arguments produce
// Color white and a warning, per §4.5.
func (t *AnsiTerminal) extendedColor(args []CSIArg, i int) (Color, int) {
	warn := func() (Color, int) {
		t.log.Warn().Str("sgr", "out_of_range").Msg("malformed extended SGR color")
		return RGB(255, 255, 255), i
	}
	if i+1 >= len(args) {
		return warn()
	}
	switch args[i+1].Value {
	case 5:
		if i+2 >= len(args) {
			return warn()
		}
		idx := args[i+2].Value
		if idx < 0 || idx >= t.palette.Size() {
			return warn()
		}
		return t.palette.At(idx), i + 2
	case 2:
		if i+4 >= len(args) {
			return warn()
		}
		r, g, b := args[i+2].Value, args[i+3].Value, args[i+4].Value
		if r < 0 || r > 255 || g < 0 || g > 255 || b < 0 || b > 255 {
			return warn()
		}
		return RGB(uint8(r), uint8(g), uint8(b)), i + 4
	default:
		return warn()
	}
}
