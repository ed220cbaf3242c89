// Package terminal provides interactive prompts on the user's terminal.
package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/mikeevmm/eq/internal/core/domain"
	"github.com/mikeevmm/eq/internal/core/ports/driven"
)

// Ensure Acknowledger implements the interface.
var _ driven.Acknowledger = (*Acknowledger)(nil)

// keyInterrupt is Ctrl-C as read in raw mode, where it raises no signal.
const keyInterrupt = 0x03

// Acknowledger waits for a single key press.
// On a terminal any key will do; otherwise a full line is read.
type Acknowledger struct {
	in  io.Reader
	out io.Writer
	fd  int

	// lines buffers in across prompts when it is not a terminal.
	lines *bufio.Reader
}

// NewAcknowledger creates an acknowledger reading from in and prompting on out.
func NewAcknowledger(in *os.File, out io.Writer) *Acknowledger {
	return &Acknowledger{
		in:  in,
		out: out,
		fd:  int(in.Fd()),
	}
}

// Acknowledge prints prompt and blocks until the user responds.
func (a *Acknowledger) Acknowledge(ctx context.Context, prompt string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	fmt.Fprintln(a.out, prompt)

	if a.fd >= 0 && term.IsTerminal(a.fd) {
		return a.readKey()
	}
	return a.readLine()
}

func (a *Acknowledger) readKey() error {
	state, err := term.MakeRaw(a.fd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	defer func() { _ = term.Restore(a.fd, state) }()

	key := make([]byte, 1)
	if _, err := a.in.Read(key); err != nil {
		return err
	}
	if key[0] == keyInterrupt {
		return domain.ErrInterrupted
	}
	return nil
}

func (a *Acknowledger) readLine() error {
	if a.lines == nil {
		a.lines = bufio.NewReader(a.in)
	}
	_, err := a.lines.ReadString('\n')
	if err == io.EOF {
		// Nothing left to read; waiting longer would not help
		return nil
	}
	return err
}
