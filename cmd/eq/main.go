// Command eq renders LaTeX equations into the clipboard.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/mikeevmm/eq/internal/adapters/driven/clipboard"
	"github.com/mikeevmm/eq/internal/adapters/driven/config/file"
	"github.com/mikeevmm/eq/internal/adapters/driven/toolchain"
	"github.com/mikeevmm/eq/internal/adapters/driven/workspace"
	"github.com/mikeevmm/eq/internal/adapters/driving/cli"
	"github.com/mikeevmm/eq/internal/adapters/driving/terminal"
	"github.com/mikeevmm/eq/internal/core/domain"
	"github.com/mikeevmm/eq/internal/core/ports/driven"
	"github.com/mikeevmm/eq/internal/core/ports/driving"
	"github.com/mikeevmm/eq/internal/core/services"
	"github.com/mikeevmm/eq/internal/logger"
)

// Exit codes.
const (
	exitOK          = 0
	exitError       = 1
	exitInterrupted = 130
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetRunConfig(newRunConfig())

	if err := cli.Execute(ctx); err != nil {
		return exitCode(err)
	}
	return exitOK
}

func newRunConfig() *cli.RunConfig {
	var settings driving.SettingsService
	if store, err := file.NewConfigStore(""); err != nil {
		logger.Warn("Ignoring configuration file: %v", err)
		settings = services.NewSettingsService(nil)
	} else {
		settings = services.NewSettingsService(store)
	}

	return &cli.RunConfig{
		Settings: settings,
		Locator:  services.NewToolLocator(toolchain.OSFinder{}),
		Getenv:   os.Getenv,
		NewWorkspace: func(parent string) (driven.Workspace, error) {
			return workspace.New(parent, workspace.Template)
		},
		NewLoop: newLoop,
	}
}

// newLoop builds the adapters for a resolved tool set. The clipboard
// implementation is chosen here, once.
func newLoop(tools *domain.ToolSet, ws driven.Workspace) (driving.EditLoop, error) {
	runner := toolchain.NewExecRunner()

	clip, err := clipboard.New(tools.Clipboard, runner)
	if err != nil {
		return nil, err
	}

	return services.NewEditCompileLoop(tools, ws, services.Toolchain{
		Editor:       toolchain.NewEditor(tools.Editor, runner),
		Compiler:     toolchain.NewLatexmk(tools.Compiler, runner),
		Rasterizer:   toolchain.NewMagick(tools.Rasterizer, runner),
		Clipboard:    clip,
		Acknowledger: terminal.NewAcknowledger(os.Stdin, os.Stdout),
	}), nil
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrInterrupted), errors.Is(err, context.Canceled):
		logger.Info("Interrupted.")
		return exitInterrupted
	default:
		logger.Error("%v", err)
		return exitError
	}
}
