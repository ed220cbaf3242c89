package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/mikeevmm/eq/internal/core/domain"
	"github.com/mikeevmm/eq/internal/core/ports/driven"
	"github.com/mikeevmm/eq/internal/core/ports/driving"
	"github.com/mikeevmm/eq/internal/logger"
)

// Ensure EditCompileLoop implements the interface.
var _ driving.EditLoop = (*EditCompileLoop)(nil)

// acknowledgePrompt is shown after a conversion or copy failure.
const acknowledgePrompt = "Press any key to go back to edition."

// Toolchain groups the adapters the loop drives.
type Toolchain struct {
	Editor       driven.Editor
	Compiler     driven.Compiler
	Rasterizer   driven.Rasterizer
	Clipboard    driven.Clipboard
	Acknowledger driven.Acknowledger
}

func (t Toolchain) validate() error {
	switch {
	case t.Editor == nil:
		return fmt.Errorf("%w: editor not configured", domain.ErrInvalidInput)
	case t.Compiler == nil:
		return fmt.Errorf("%w: compiler not configured", domain.ErrInvalidInput)
	case t.Rasterizer == nil:
		return fmt.Errorf("%w: rasterizer not configured", domain.ErrInvalidInput)
	case t.Clipboard == nil:
		return fmt.Errorf("%w: clipboard not configured", domain.ErrInvalidInput)
	case t.Acknowledger == nil:
		return fmt.Errorf("%w: acknowledger not configured", domain.ErrInvalidInput)
	}
	return nil
}

// EditCompileLoop repeatedly lets the user edit the scratch document and,
// whenever it changed, compiles it, rasterizes it and copies the image to
// the clipboard. Stage failures return the user to editing.
type EditCompileLoop struct {
	tools     *domain.ToolSet
	workspace driven.Workspace
	chain     Toolchain

	state       domain.LoopState
	lastContent string
	passes      int
}

// NewEditCompileLoop creates a new loop over the workspace's scratch document.
func NewEditCompileLoop(tools *domain.ToolSet, workspace driven.Workspace, chain Toolchain) *EditCompileLoop {
	return &EditCompileLoop{
		tools:     tools,
		workspace: workspace,
		chain:     chain,
		state:     domain.StateEditing,
	}
}

// State returns the current loop state.
func (l *EditCompileLoop) State() domain.LoopState {
	return l.state
}

// Passes returns how many times the document was found changed.
func (l *EditCompileLoop) Passes() int {
	return l.passes
}

// Run loops until an editor session leaves the document unchanged.
func (l *EditCompileLoop) Run(ctx context.Context) error {
	if l.tools == nil {
		return fmt.Errorf("%w: tool set is nil", domain.ErrInvalidInput)
	}
	if err := l.tools.Validate(); err != nil {
		return err
	}
	if l.workspace == nil {
		return fmt.Errorf("%w: workspace not configured", domain.ErrInvalidInput)
	}
	if err := l.chain.validate(); err != nil {
		return err
	}

	doc, err := l.workspace.Read()
	if err != nil {
		return fmt.Errorf("read scratch document: %w", err)
	}
	l.lastContent = doc.Content
	l.state = domain.StateEditing

	for !l.state.IsTerminal() {
		if err := ctx.Err(); err != nil {
			return err
		}

		logger.Section(l.state.String())
		outcome, err := l.step(ctx)
		if err != nil {
			return err
		}

		next, ok := domain.Transition(l.state, outcome)
		if !ok {
			return fmt.Errorf("no transition from %s on %s", l.state, outcome)
		}

		if outcome == domain.OutcomeFailed && domain.RequiresAcknowledgment(l.state) {
			if err := l.acknowledge(ctx); err != nil {
				return err
			}
		}

		logger.Debug("%s -> %s (%s)", l.state, next, outcome)
		l.state = next
	}

	return nil
}

// step runs the current state and reports its outcome.
// A non-nil error is a fault the loop cannot recover from.
func (l *EditCompileLoop) step(ctx context.Context) (domain.Outcome, error) {
	switch l.state {
	case domain.StateEditing:
		return l.edit(ctx)
	case domain.StateCompiling:
		return l.compile(ctx), nil
	case domain.StateRasterizing:
		return l.rasterize(ctx), nil
	case domain.StateCopying:
		return l.copy(ctx), nil
	default:
		return "", fmt.Errorf("unexpected loop state %q", l.state)
	}
}

func (l *EditCompileLoop) edit(ctx context.Context) (domain.Outcome, error) {
	path := l.workspace.ScratchPath()
	err := l.chain.Editor.Edit(ctx, path)
	// An interrupted session must not read as an unchanged one.
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", ctxErr
	}
	if err != nil {
		if errors.Is(err, domain.ErrEditorFailed) {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", domain.ErrEditorFailed, err)
	}

	doc, err := l.workspace.Read()
	if err != nil {
		return "", fmt.Errorf("read scratch document: %w", err)
	}

	if doc.Content == l.lastContent {
		logger.Debug("no changes to %s", path)
		return domain.OutcomeUnchanged, nil
	}

	l.lastContent = doc.Content
	l.passes++
	return domain.OutcomeChanged, nil
}

func (l *EditCompileLoop) compile(ctx context.Context) domain.Outcome {
	if err := l.chain.Compiler.Compile(ctx, l.workspace.ScratchPath(), l.workspace.Dir()); err != nil {
		logger.Error("Something went wrong with compiling the project.")
		logger.Debug("compile: %v", err)
		return domain.OutcomeFailed
	}
	return domain.OutcomeSucceeded
}

func (l *EditCompileLoop) rasterize(ctx context.Context) domain.Outcome {
	artifacts := domain.ArtifactsFor(l.workspace.ScratchPath())
	if err := l.chain.Rasterizer.Rasterize(ctx, artifacts.PDF, artifacts.PNG, l.tools.Density); err != nil {
		logger.Error("Something went wrong with converting the PDF to a PNG.")
		logger.Debug("rasterize: %v", err)
		return domain.OutcomeFailed
	}
	return domain.OutcomeSucceeded
}

func (l *EditCompileLoop) copy(ctx context.Context) domain.Outcome {
	artifacts := domain.ArtifactsFor(l.workspace.ScratchPath())
	if err := l.chain.Clipboard.CopyImage(ctx, artifacts.PNG); err != nil {
		logger.Error("Something went wrong with copying the PNG to your clipboard.")
		logger.Debug("copy: %v", err)
		return domain.OutcomeFailed
	}
	logger.Info("Equation copied to the clipboard.")
	return domain.OutcomeSucceeded
}

// acknowledge waits for the user. A failed read only costs the pause;
// an interrupt or cancellation ends the loop.
func (l *EditCompileLoop) acknowledge(ctx context.Context) error {
	err := l.chain.Acknowledger.Acknowledge(ctx, acknowledgePrompt)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrInterrupted), ctx.Err() != nil:
		return err
	default:
		logger.Warn("Could not wait for acknowledgment: %v", err)
		return nil
	}
}
