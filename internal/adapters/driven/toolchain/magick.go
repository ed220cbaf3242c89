package toolchain

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/mikeevmm/eq/internal/core/domain"
	"github.com/mikeevmm/eq/internal/core/ports/driven"
)

// Ensure Magick implements the interface.
var _ driven.Rasterizer = (*Magick)(nil)

// Magick converts PDFs to PNGs with ImageMagick.
type Magick struct {
	tool   domain.Tool
	runner Runner
}

// NewMagick creates a rasterizer adapter for the resolved tool,
// either "magick convert" or the legacy "convert".
func NewMagick(tool domain.Tool, runner Runner) *Magick {
	return &Magick{tool: tool, runner: runner}
}

// Rasterize renders pdfPath at density DPI onto an opaque white background.
func (m *Magick) Rasterize(ctx context.Context, pdfPath, pngPath string, density int) error {
	if density <= 0 {
		return fmt.Errorf("%w: %w: density %d", domain.ErrRasterizeFailed, domain.ErrInvalidInput, density)
	}

	// -density is a read setting and must come before the input file
	args := append([]string{}, m.tool.Args()...)
	args = append(args,
		"-density", strconv.Itoa(density),
		pdfPath,
		"-background", "white",
		"-alpha", "remove",
		"-flatten",
		"-colorspace", "sRGB",
		pngPath,
	)

	cmd := Command{
		Name: m.tool.Name(),
		Args: args,
		Dir:  filepath.Dir(pdfPath),
	}

	if err := m.runner.Run(ctx, cmd); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrRasterizeFailed, err)
	}
	return nil
}
