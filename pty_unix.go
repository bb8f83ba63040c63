//go:build !windows

package vt100

import (
	"context"
	"os"
	"os/exec"

	"github.com/creack/pty"
)

// OSPTY is the concrete PTY collaborator backed by an OS pseudo-terminal
// and a spawned child process, via github.com/creack/pty. This is the one
// place the core engine's PTY interface touches a real operating-system
// resource.
type OSPTY struct {
	cmd *exec.Cmd
	f   *os.File
}

// StartShell spawns shell (or the user's $SHELL if empty) attached to a new
// pseudo-terminal sized cols x rows.
func StartShell(shell string, cols, rows int) (*OSPTY, error) {
	if shell == "" {
		shell = os.Getenv("SHELL")
	}
	if shell == "" {
		shell = "/bin/sh"
	}

	cmd := exec.Command(shell)
	cmd.Env = append(os.Environ(), "TERM=xterm-256color")
	f, err := pty.StartWithSize(cmd, &pty.Winsize{Cols: uint16(cols), Rows: uint16(rows)})
	if err != nil {
		return nil, err
	}
	return &OSPTY{cmd: cmd, f: f}, nil
}

// Send writes p to the PTY's input, i.e. the child process's stdin.
func (p *OSPTY) Send(data []byte) (int, error) {
	return p.f.Write(data)
}

// Receive reads output the child process produced. It ignores ctx since
// the underlying file descriptor has no context-aware read; callers that
// need cancellation close the PTY instead (see Terminate).
func (p *OSPTY) Receive(ctx context.Context, buf []byte) (int, error) {
	return p.f.Read(buf)
}

// Resize notifies the PTY of a new terminal size.
func (p *OSPTY) Resize(cols, rows int) error {
	return pty.Setsize(p.f, &pty.Winsize{Cols: uint16(cols), Rows: uint16(rows)})
}

// Terminate kills the child process and closes the PTY file descriptor,
// which causes any blocked Receive to return with an error/EOF.
func (p *OSPTY) Terminate() error {
	_ = p.cmd.Process.Kill()
	return p.f.Close()
}

// WaitFor blocks until the child process exits.
func (p *OSPTY) WaitFor() error {
	return p.cmd.Wait()
}

var _ PTY = (*OSPTY)(nil)
