package vt100

// Palette is an indexed color table with configurable default foreground and
// background. Ground truth for the 256-entry xterm layout: 16 named ANSI
// colors, a 6x6x6 color cube, and a 24-step grayscale ramp. The cube and
// ramp values are bit-exact with xterm and must not be "rounded" to a
// uniform step.
type Palette struct {
	colors []Color
	fg     Color
	bg     Color
}

// Size returns the number of entries in the palette.
func (p *Palette) Size() int {
	return len(p.colors)
}

// DefaultForeground returns the palette's default text color.
func (p *Palette) DefaultForeground() Color {
	return p.fg
}

// DefaultBackground returns the palette's default background color.
func (p *Palette) DefaultBackground() Color {
	return p.bg
}

// At returns the color at index i, or ColorNone if i is out of bounds.
func (p *Palette) At(i int) Color {
	if i < 0 || i >= len(p.colors) {
		return ColorNone
	}
	return p.colors[i]
}

// SetDefaults overrides the default foreground/background colors.
func (p *Palette) SetDefaults(fg, bg Color) {
	p.fg = fg
	p.bg = bg
}

// standard16 holds the 16 base ANSI colors shared by both palette presets.
var standard16 = [16]Color{
	{0, 0, 0, 255},       // 0 black
	{128, 0, 0, 255},     // 1 red
	{0, 128, 0, 255},     // 2 green
	{128, 128, 0, 255},   // 3 yellow
	{0, 0, 128, 255},     // 4 blue
	{128, 0, 128, 255},   // 5 magenta
	{0, 128, 128, 255},   // 6 cyan
	{192, 192, 192, 255}, // 7 white
	{128, 128, 128, 255}, // 8 bright black
	{255, 0, 0, 255},     // 9 bright red
	{0, 255, 0, 255},     // 10 bright green
	{255, 255, 0, 255},   // 11 bright yellow
	{0, 0, 255, 255},     // 12 bright blue
	{255, 0, 255, 255},   // 13 bright magenta
	{0, 255, 255, 255},   // 14 bright cyan
	{255, 255, 255, 255}, // 15 bright white
}

// cube6 is the component value used at each of the 6 steps of the xterm
// 6x6x6 color cube (entries 16-231). These exact values, not a uniform
// 0/51/102/153/204/255 ramp, are what real xterm ships.
var cube6 = [6]uint8{0, 95, 135, 175, 215, 255}

// NewPalette16 returns the 16-color preset: indices 0-15 only.
func NewPalette16() *Palette {
	p := &Palette{colors: make([]Color, 16)}
	copy(p.colors, standard16[:])
	p.fg = Color{229, 229, 229, 255}
	p.bg = Color{0, 0, 0, 255}
	return p
}

// NewPalette256 returns the full xterm 256-color preset: 0-15 as the 16-color
// preset, 16-231 as the 6x6x6 color cube, 232-255 as a 24-step grayscale ramp
// from 8 to 238 in steps of 10.
func NewPalette256() *Palette {
	p := &Palette{colors: make([]Color, 256)}
	copy(p.colors[:16], standard16[:])

	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				p.colors[i] = Color{cube6[r], cube6[g], cube6[b], 255}
				i++
			}
		}
	}

	for j := 0; j < 24; j++ {
		gray := uint8(8 + j*10)
		p.colors[232+j] = Color{gray, gray, gray, 255}
	}

	p.fg = Color{229, 229, 229, 255}
	p.bg = Color{0, 0, 0, 255}
	return p
}
