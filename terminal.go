package vt100

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultCols is the column count used when no size option is given.
	DefaultCols = 80
	// DefaultRows is the row count used when no size option is given.
	DefaultRows = 24
)

var _ Handler = (*AnsiTerminal)(nil)

// Selection describes a text selection over the combined history+live grid:
// rows 0..History.Len()-1 are history rows, oldest first, and the primary
// screen's rows follow — see combinedRow in selection.go.
type Selection struct {
	Start, End Position
	Active     bool
}

// AnsiTerminal is the VT100/ANSI terminal emulation engine: it consumes an
// untrusted byte stream from a PTY, parses it incrementally, and mutates a
// 2D cell grid with scrollback history behind a priority lock so a
// renderer can read consistent snapshots concurrently with the PTY reader.
type AnsiTerminal struct {
	lock *PriorityLock

	palette *Palette
	modes   Modes
	history *History

	primary   *State
	alternate *State
	active    *State

	selection Selection

	titleStack []string

	pty      PTY
	renderer Renderer
	clipboard Clipboard
	log      zerolog.Logger

	cancel context.CancelFunc
	group  *errgroup.Group
}

// Option configures an AnsiTerminal during construction.
type Option func(*AnsiTerminal)

// WithPalette sets the color palette. Defaults to the 256-color preset.
func WithPalette(p *Palette) Option {
	return func(t *AnsiTerminal) { t.palette = p }
}

// WithHistoryLimit sets the maximum number of scrollback rows. 0 means
// unbounded; pass HistoryDisabled to turn scrollback capture off entirely.
func WithHistoryLimit(n int) Option {
	return func(t *AnsiTerminal) { t.history = NewHistory(n) }
}

// WithRenderer sets the renderer collaborator. Defaults to a no-op.
func WithRenderer(r Renderer) Option {
	return func(t *AnsiTerminal) { t.renderer = r }
}

// WithClipboard sets the clipboard collaborator. Defaults to a no-op.
func WithClipboard(c Clipboard) Option {
	return func(t *AnsiTerminal) { t.clipboard = c }
}

// WithPTY sets the PTY collaborator driving this engine's reader loop.
func WithPTY(p PTY) Option {
	return func(t *AnsiTerminal) { t.pty = p }
}

// WithLogger sets the structured logger used for SEQ_UNKNOWN,
// SEQ_WONT_SUPPORT, and out-of-range SGR diagnostics. Defaults to a
// disabled logger so the engine is silent unless a caller opts in.
func WithLogger(l zerolog.Logger) Option {
	return func(t *AnsiTerminal) { t.log = l }
}

// New returns an AnsiTerminal sized cols x rows (defaults 80x24), with a
// 256-color palette and unbounded history unless overridden by opts.
func New(cols, rows int, opts ...Option) *AnsiTerminal {
	if cols <= 0 {
		cols = DefaultCols
	}
	if rows <= 0 {
		rows = DefaultRows
	}

	t := &AnsiTerminal{
		lock:      NewPriorityLock(),
		palette:   NewPalette256(),
		history:   NewHistory(0),
		renderer:  NoopRenderer{},
		clipboard: NoopClipboard{},
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(t)
	}

	t.modes = NewModes()
	t.primary = NewState(cols, rows, t.palette)
	t.alternate = NewState(cols, rows, t.palette)
	t.active = t.primary
	return t
}

// Cols returns the active buffer's width.
func (t *AnsiTerminal) Cols() int {
	t.lock.LockPriority()
	defer t.lock.Unlock()
	return t.active.Buffer.Width()
}

// Rows returns the active buffer's height.
func (t *AnsiTerminal) Rows() int {
	t.lock.LockPriority()
	defer t.lock.Unlock()
	return t.active.Buffer.Height()
}

// IsAlternateScreen reports whether the alternate screen is active.
func (t *AnsiTerminal) IsAlternateScreen() bool {
	t.lock.LockPriority()
	defer t.lock.Unlock()
	return t.modes.AlternateMode
}

// ProcessInput feeds raw PTY output into the parser, mutating buffer/state
// as it decodes. Acquires the lock in normal mode for the call's duration,
// matching the "reader thread holds normal for one processInput call"
// contract (§5). Returns the number of bytes consumed; the caller must
// re-deliver any unconsumed tail, unchanged, with the next chunk.
func (t *AnsiTerminal) ProcessInput(data []byte) int {
	t.lock.LockNormal()
	defer t.lock.Unlock()
	var p Parser
	return p.Feed(data, t)
}

// Resize changes the terminal's dimensions, re-wrapping both the primary
// and alternate buffers so logical lines survive the width change.
func (t *AnsiTerminal) Resize(cols, rows int) {
	if cols <= 0 || rows <= 0 {
		return
	}
	t.lock.LockPriority()
	defer t.lock.Unlock()

	fill := DefaultCell(t.palette)
	for _, s := range []*State{t.primary, t.alternate} {
		evict := func([]Cell) {}
		if s == t.primary {
			evict = func(row []Cell) { t.history.Append(row, cols) }
		}
		nb, newX, newY := s.Buffer.Resize(cols, rows, s.Cursor.Y, fill, evict)
		s.Buffer = nb
		s.Cursor.X, s.Cursor.Y = newX, newY
		s.Scroll = ScrollRegion{0, rows}
	}

	if t.pty != nil {
		_ = t.pty.Resize(cols, rows)
	}
}

// normalizeCursor reconciles a transiently off-screen cursor (cursor.x may
// equal width right after a write to the last column) with the next write,
// scrolling the scroll region as needed. See §4.6.
func (t *AnsiTerminal) normalizeCursor() {
	s := t.active
	w, h := s.Buffer.Width(), s.Buffer.Height()
	for s.Cursor.X >= w {
		s.Cursor.X -= w
		s.Cursor.Y++
		if s.Cursor.Y == s.Scroll.End {
			t.deleteLines(1, s.Scroll.Start, s.Scroll.End)
			s.Cursor.Y--
		}
	}
	if s.Cursor.Y >= h {
		s.Cursor.Y = h - 1
	}
	s.LastCharacter = Position{X: s.Cursor.X, Y: s.Cursor.Y}
	s.HasLast = true
}

// deleteLines removes n lines at top within [top, bottom) of the active
// state's buffer, capturing scrollback per §4.8 when applicable.
func (t *AnsiTerminal) deleteLines(n, top, bottom int) {
	s := t.active
	fill := s.Template
	for i := 0; i < n; i++ {
		if top == 0 && s == t.primary && !t.modes.AlternateMode && t.history.Enabled() {
			content := s.Buffer.CopyRow(top, t.palette.DefaultBackground())
			t.history.Append(content, s.Buffer.Width())
		}
		s.Buffer.DeleteLine(top, bottom, fill)
	}
}

// insertLines opens n blank lines at top within [top, bottom).
func (t *AnsiTerminal) insertLines(n, top, bottom int) {
	s := t.active
	fill := s.Template
	for i := 0; i < n; i++ {
		s.Buffer.InsertLine(top, bottom, fill)
	}
}

// Close terminates the PTY collaborator and stops the reader loop, if one
// was started via Start.
func (t *AnsiTerminal) Close() error {
	if t.cancel != nil {
		t.cancel()
	}
	if t.pty == nil {
		return nil
	}
	err := t.pty.Terminate()
	if t.group != nil {
		_ = t.group.Wait()
	}
	return err
}
