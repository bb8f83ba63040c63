// Command vtdemo spawns a shell behind the vt100 engine and dumps the
// resulting screen once the shell exits, demonstrating the library end to
// end without a real display attached.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	vt100 "github.com/terminalpp/vt100go"
)

type stdoutRenderer struct{}

func (stdoutRenderer) OnTitleChange(title string)                     { fmt.Fprintf(os.Stderr, "title: %s\n", title) }
func (stdoutRenderer) OnNotification(title, body string)              { fmt.Fprintf(os.Stderr, "notify: %s: %s\n", title, body) }
func (stdoutRenderer) OnClipboardSetRequest(selector byte, data string) {}
func (stdoutRenderer) OnTppSequence(kind string, payload []byte) {
	fmt.Fprintf(os.Stderr, "tpp: %s: %q\n", kind, payload)
}

func main() {
	cols := flag.Int("cols", vt100.DefaultCols, "terminal width in columns")
	rows := flag.Int("rows", vt100.DefaultRows, "terminal height in rows")
	history := flag.Int("history", 1000, "scrollback row limit, 0 for unbounded, negative to disable")
	shell := flag.String("shell", "", "shell to run, defaults to $SHELL")
	verbose := flag.Bool("verbose", false, "log unknown/unsupported sequences to stderr")
	flag.Parse()

	log := zerolog.Nop()
	if *verbose {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}

	p, err := vt100.StartShell(*shell, *cols, *rows)
	if err != nil {
		fmt.Fprintln(os.Stderr, "vtdemo:", err)
		os.Exit(1)
	}

	term := vt100.New(*cols, *rows,
		vt100.WithPTY(p),
		vt100.WithRenderer(stdoutRenderer{}),
		vt100.WithHistoryLimit(*history),
		vt100.WithLogger(log),
	)

	term.Start(context.Background())
	if err := p.WaitFor(); err != nil {
		fmt.Fprintln(os.Stderr, "vtdemo: shell exited:", err)
	}
	_ = term.Close()

	for y := 0; y < term.Rows(); y++ {
		fmt.Println(term.LineText(y))
	}
}
