package vt100

import "context"

// PTY is the emulator's collaborator interface to a pseudo-terminal: send
// bytes to the child process, receive bytes it produced, resize the window,
// and tear it down. Concrete adapters (e.g. the creack/pty-backed OSPTY in
// pty_unix.go) live outside this package's core; the core only ever talks
// to this interface.
type PTY interface {
	// Send writes bytes to the PTY's input (keystrokes, pastes, replies).
	Send(p []byte) (int, error)
	// Receive reads bytes the PTY produced (child process output). Blocks
	// until data is available, an error occurs, or ctx is done.
	Receive(ctx context.Context, p []byte) (int, error)
	// Resize notifies the PTY of a new terminal size in columns and rows.
	Resize(cols, rows int) error
	// Terminate ends the underlying process.
	Terminate() error
	// WaitFor blocks until the underlying process exits and returns its
	// exit status.
	WaitFor() error
}

// Renderer is the emulator's collaborator interface to whatever draws the
// screen: title/notification/clipboard callbacks and the t++ DCS escape
// hatch. Reading the current grid/cursor/history is done separately via
// AnsiTerminal's snapshot methods, not pushed through this interface — a
// concrete renderer (terminal UI widget, web canvas, ...) lives elsewhere.
type Renderer interface {
	// OnTitleChange is called when OSC 0/2 sets the window title (OSC 1,
	// the icon name, is ignored).
	OnTitleChange(title string)
	// OnNotification is called when a BEL byte arrives; the engine passes
	// empty title and body.
	OnNotification(title, body string)
	// OnClipboardSetRequest is called on an OSC 52 clipboard write request.
	// Only the 'c' (clipboard) selector is forwarded; other selectors are
	// dropped.
	OnClipboardSetRequest(selector byte, data string)
	// OnTppSequence is called for every t++ DCS sequence the engine doesn't
	// answer itself, with kind distinguishing the envelope's purpose (e.g.
	// "Open", "Close") and payload its raw bytes.
	OnTppSequence(kind string, payload []byte)
}

// NoopRenderer discards every callback. Useful for headless use of the
// emulator (tests, replay tools) where nobody is watching.
type NoopRenderer struct{}

func (NoopRenderer) OnTitleChange(title string)                    {}
func (NoopRenderer) OnNotification(title, body string)             {}
func (NoopRenderer) OnClipboardSetRequest(selector byte, data string) {}
func (NoopRenderer) OnTppSequence(kind string, payload []byte)     {}

// Clipboard stores OSC 52 clipboard contents. The engine calls Write for an
// OSC 52 write request and never calls Read (OSC 52 reads are not handled);
// actual clipboard storage is a caller concern.
type Clipboard interface {
	// Read returns the content of the given clipboard selector.
	Read(selector byte) string
	// Write stores data under the given clipboard selector.
	Write(selector byte, data string)
}

// NoopClipboard discards writes and returns empty reads.
type NoopClipboard struct{}

func (NoopClipboard) Read(selector byte) string        { return "" }
func (NoopClipboard) Write(selector byte, data string) {}

var (
	_ Renderer  = NoopRenderer{}
	_ Clipboard = NoopClipboard{}
)
