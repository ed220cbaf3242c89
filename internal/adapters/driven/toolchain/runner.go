package toolchain

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"
)

// waitDelay bounds how long Run waits for output after a cancelled command is killed.
const waitDelay = 2 * time.Second

// Command describes one external program invocation.
type Command struct {
	Name string
	Args []string

	// Dir is the working directory. Empty means the current one.
	Dir string

	// Interactive attaches the terminal's stdin. Interactive commands own the
	// terminal and are never killed on cancellation; the caller checks the
	// context once they exit.
	Interactive bool

	// Input is fed to stdin when set. It takes precedence over Interactive.
	Input io.Reader
}

// String returns the command line.
func (c Command) String() string {
	return fmt.Sprintf("%s %q", c.Name, c.Args)
}

// Runner runs a command to completion.
// It returns a non-nil error when the program cannot be started or exits non-zero.
type Runner interface {
	Run(ctx context.Context, cmd Command) error
}

// execCommand is swapped in tests.
var execCommand = exec.CommandContext

// ExecRunner runs commands with os/exec, passing output through.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner creates a runner wired to the process's standard streams.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run executes cmd and waits for it to exit.
func (r *ExecRunner) Run(ctx context.Context, cmd Command) error {
	if cmd.Interactive && cmd.Input == nil {
		ctx = context.WithoutCancel(ctx)
	}

	c := execCommand(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	c.WaitDelay = waitDelay
	c.Stdout = r.Stdout
	c.Stderr = r.Stderr

	switch {
	case cmd.Input != nil:
		c.Stdin = cmd.Input
	case cmd.Interactive:
		c.Stdin = r.Stdin
	}

	if err := c.Run(); err != nil {
		return fmt.Errorf("run %s: %w", cmd.Name, err)
	}
	return nil
}
