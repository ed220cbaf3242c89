package toolchain

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/mikeevmm/eq/internal/core/domain"
	"github.com/mikeevmm/eq/internal/core/ports/driven"
)

// Ensure Latexmk implements the interface.
var _ driven.Compiler = (*Latexmk)(nil)

// Latexmk compiles LaTeX to PDF with latexmk, which reruns pdflatex
// until cross-references settle.
type Latexmk struct {
	tool   domain.Tool
	runner Runner
}

// NewLatexmk creates a compiler adapter for the resolved tool.
func NewLatexmk(tool domain.Tool, runner Runner) *Latexmk {
	return &Latexmk{tool: tool, runner: runner}
}

// Compile typesets sourcePath into outDir.
func (l *Latexmk) Compile(ctx context.Context, sourcePath, outDir string) error {
	args := append([]string{}, l.tool.Args()...)
	args = append(args,
		"-pdf",
		"-interaction=nonstopmode",
		"-halt-on-error",
		"-output-directory="+outDir,
		filepath.Base(sourcePath),
	)

	cmd := Command{
		Name: l.tool.Name(),
		Args: args,
		Dir:  filepath.Dir(sourcePath),
	}

	if err := l.runner.Run(ctx, cmd); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrCompileFailed, err)
	}
	return nil
}
