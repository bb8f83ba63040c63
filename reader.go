package vt100

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Start spawns the PTY-reader goroutine: it repeatedly calls pty.Receive
// and feeds whatever bytes arrive into ProcessInput, carrying forward any
// unconsumed tail per the parser's resumability contract. It returns
// immediately; the reader runs until the PTY is terminated or ctx is
// canceled. Calling Start without a PTY attached (WithPTY) is a no-op.
func (t *AnsiTerminal) Start(ctx context.Context) {
	if t.pty == nil {
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	g, gctx := errgroup.WithContext(ctx)
	t.group = g

	g.Go(func() error {
		buf := make([]byte, 4096)
		pending := buf[:0]
		for {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			n, err := t.pty.Receive(gctx, buf[len(pending):])
			if n > 0 {
				pending = buf[:len(pending)+n]
				consumed := t.ProcessInput(pending)
				remaining := len(pending) - consumed
				copy(buf, pending[consumed:])
				pending = buf[:remaining]
			}
			if err != nil {
				return err
			}
			if n == 0 {
				return nil
			}
		}
	})
}

// Wait blocks until the reader goroutine started by Start exits, returning
// its error (nil on clean EOF).
func (t *AnsiTerminal) Wait() error {
	if t.group == nil {
		return nil
	}
	return t.group.Wait()
}
