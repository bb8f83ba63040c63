// Package vt100 implements a VT100/ANSI/xterm-compatible terminal emulation
// engine: an incremental escape-sequence parser plus the cell grid, cursor,
// scroll regions, alternate screen, and scrollback history it drives.
//
// The engine is headless and transport-agnostic. It does not open a PTY,
// draw to a screen, or own a widget toolkit — those are collaborators,
// injected as interfaces (PTY, Renderer, Clipboard) so the engine can be
// embedded in a terminal multiplexer, a recorder, a web terminal backend, or
// a test harness equally well.
//
// # Quick start
//
//	term := vt100.New(80, 24)
//	term.ProcessInput([]byte("\x1b[31mHello \x1b[32mWorld\x1b[0m!"))
//	fmt.Println(term.LineText(0)) // "Hello World!"
//
// # Feeding bytes incrementally
//
// ProcessInput accepts partial escape sequences: it returns the number of
// bytes it consumed, which may be less than len(data) when the tail holds
// an incomplete sequence. The caller must re-deliver the unconsumed tail,
// byte for byte, prefixed to the next chunk:
//
//	n := term.ProcessInput(buf[:read])
//	copy(buf, buf[n:read])
//	pending := read - n
//
// Start wraps this loop around a PTY collaborator, running it on its own
// goroutine until the PTY closes or its context is canceled.
//
// # Buffers and history
//
// AnsiTerminal maintains a primary and an alternate Buffer (CSI ?1049h
// switches between them, per xterm convention) plus a bounded History of
// rows scrolled off the primary buffer's top. Buffer rows are independent
// slices, so scrolling is a pointer swap rather than a cell-by-cell copy.
//
// # Collaborators
//
// PTY, Renderer, and Clipboard are the engine's only points of contact with
// the outside world. Each has a Noop implementation so AnsiTerminal is
// usable standalone; OSPTY (pty_unix.go) is the concrete PTY backed by an
// OS pseudo-terminal via github.com/creack/pty.
//
// # Concurrency
//
// All engine methods take a PriorityLock: the PTY reader goroutine holds it
// in normal mode for the duration of one ProcessInput call, while readers
// like Snapshot or SelectionText acquire it in priority mode, which is
// always served ahead of a waiting normal acquisition. This keeps an
// interactive query (render a frame, extract a selection) from queuing
// behind a backlog of PTY output.
package vt100
