// Package clipboard places rendered equations on the system clipboard.
//
// Each platform has its own implementation behind driven.Clipboard;
// New picks one from the resolved clipboard tool, once, at startup.
package clipboard

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mikeevmm/eq/internal/adapters/driven/toolchain"
	"github.com/mikeevmm/eq/internal/core/domain"
	"github.com/mikeevmm/eq/internal/core/ports/driven"
)

const mimePNG = "image/png"

// New returns the clipboard implementation for the resolved tool.
func New(tool domain.Tool, runner toolchain.Runner) (driven.Clipboard, error) {
	if !tool.IsResolved() {
		return nil, fmt.Errorf("%w: %s", domain.ErrToolNotFound, domain.CapabilityClipboard)
	}

	switch executableName(tool.Name()) {
	case "nircmd", "nircmdc":
		return &NirCmd{tool: tool, runner: runner}, nil
	case "wl-copy":
		return &WlCopy{tool: tool, runner: runner}, nil
	case "xclip":
		return &XClip{tool: tool, runner: runner}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported clipboard tool %q", domain.ErrInvalidInput, tool.Name())
	}
}

// executableName strips the directory and any Windows extension.
// Both separators are accepted so Windows paths are handled on any host.
func executableName(path string) string {
	name := path[strings.LastIndexAny(path, `/\`)+1:]
	if ext := filepath.Ext(name); strings.EqualFold(ext, ".exe") {
		name = strings.TrimSuffix(name, ext)
	}
	return strings.ToLower(name)
}

func withArgs(tool domain.Tool, args ...string) []string {
	return append(append([]string{}, tool.Args()...), args...)
}

func copyFailed(err error) error {
	return fmt.Errorf("%w: %w", domain.ErrCopyFailed, err)
}

// Ensure implementations satisfy the interface.
var (
	_ driven.Clipboard = (*XClip)(nil)
	_ driven.Clipboard = (*WlCopy)(nil)
	_ driven.Clipboard = (*NirCmd)(nil)
)

// XClip copies through xclip on X11.
type XClip struct {
	tool   domain.Tool
	runner toolchain.Runner
}

// CopyImage implements driven.Clipboard.
func (c *XClip) CopyImage(ctx context.Context, pngPath string) error {
	cmd := toolchain.Command{
		Name: c.tool.Name(),
		Args: withArgs(c.tool, "-in", "-selection", "clipboard", "-target", mimePNG, pngPath),
	}
	if err := c.runner.Run(ctx, cmd); err != nil {
		return copyFailed(err)
	}
	return nil
}

// WlCopy copies through wl-copy on Wayland, streaming the image on stdin.
type WlCopy struct {
	tool   domain.Tool
	runner toolchain.Runner
}

// CopyImage implements driven.Clipboard.
func (c *WlCopy) CopyImage(ctx context.Context, pngPath string) error {
	f, err := os.Open(pngPath)
	if err != nil {
		return copyFailed(err)
	}
	defer f.Close()

	cmd := toolchain.Command{
		Name:  c.tool.Name(),
		Args:  withArgs(c.tool, "--type", mimePNG),
		Input: f,
	}
	if err := c.runner.Run(ctx, cmd); err != nil {
		return copyFailed(err)
	}
	return nil
}

// NirCmd copies through NirSoft's nircmd on Windows.
type NirCmd struct {
	tool   domain.Tool
	runner toolchain.Runner
}

// CopyImage implements driven.Clipboard.
// nircmd resolves relative paths against its own directory, so the path is made absolute.
func (c *NirCmd) CopyImage(ctx context.Context, pngPath string) error {
	abs, err := filepath.Abs(pngPath)
	if err != nil {
		return copyFailed(err)
	}

	cmd := toolchain.Command{
		Name: c.tool.Name(),
		Args: withArgs(c.tool, "clipboard", "copyimage", abs),
	}
	if err := c.runner.Run(ctx, cmd); err != nil {
		return copyFailed(err)
	}
	return nil
}
