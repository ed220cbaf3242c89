package toolchain

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/mikeevmm/eq/internal/core/domain"
	"github.com/mikeevmm/eq/internal/core/ports/driven"
)

// Ensure Editor implements the interface.
var _ driven.Editor = (*Editor)(nil)

// Editor runs the user's text editor in the foreground.
type Editor struct {
	tool   domain.Tool
	runner Runner
}

// NewEditor creates an editor adapter for the resolved tool.
func NewEditor(tool domain.Tool, runner Runner) *Editor {
	return &Editor{tool: tool, runner: runner}
}

// Edit blocks until the editor exits.
// A non-zero exit is the user quitting without saving and is not an error.
func (e *Editor) Edit(ctx context.Context, path string) error {
	cmd := Command{
		Name:        e.tool.Name(),
		Args:        append(append([]string{}, e.tool.Args()...), path),
		Interactive: true,
	}

	err := e.runner.Run(ctx, cmd)
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return nil
	}
	return fmt.Errorf("%w: %w", domain.ErrEditorFailed, err)
}
