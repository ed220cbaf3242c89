package services

import (
	"fmt"
	"strings"

	"github.com/mikeevmm/eq/internal/core/domain"
	"github.com/mikeevmm/eq/internal/core/ports/driven"
	"github.com/mikeevmm/eq/internal/core/ports/driving"
	"github.com/mikeevmm/eq/internal/logger"
)

// Operating system identifiers.
const (
	osLinux   = "linux"
	osWindows = "windows"
)

// Environment variables consulted when choosing an editor, in order.
const (
	envEqEditor = "EQ_EDITOR"
	envVisual   = "VISUAL"
	envEditor   = "EDITOR"
)

// Ensure ToolLocator implements the interface.
var _ driving.ToolLocator = (*ToolLocator)(nil)

// ToolLocator resolves the external programs eq drives.
// Lookups happen once; the resulting ToolSet is passed to the loop.
type ToolLocator struct {
	finder driven.ToolFinder
}

// NewToolLocator creates a new tool locator.
func NewToolLocator(finder driven.ToolFinder) *ToolLocator {
	return &ToolLocator{finder: finder}
}

// Locate resolves every capability and collects the ones that are missing.
func (l *ToolLocator) Locate(settings domain.Settings) (*domain.ToolSet, error) {
	if settings.Density <= 0 {
		return nil, fmt.Errorf("%w: density must be a positive integer, got %d",
			domain.ErrInvalidInput, settings.Density)
	}

	set := &domain.ToolSet{
		Compiler:   l.compiler(),
		Rasterizer: l.rasterizer(),
		Editor:     l.editor(settings.Editor),
		Clipboard:  l.clipboard(),
		Density:    settings.Density,
	}

	if err := set.Validate(); err != nil {
		return nil, err
	}

	for _, c := range domain.AllCapabilities() {
		logger.Debug("%s: %s", c, set.Tool(c))
	}
	return set, nil
}

func (l *ToolLocator) compiler() domain.Tool {
	return l.tool(domain.CapabilityCompiler, "latexmk")
}

// rasterizer prefers ImageMagick 7's "magick convert". Older installs only
// ship "convert", which on Windows is an unrelated system utility.
func (l *ToolLocator) rasterizer() domain.Tool {
	if path, err := l.finder.LookPath("magick"); err == nil {
		return domain.Tool{Capability: domain.CapabilityRasterizer, Command: []string{path, "convert"}}
	}
	if l.finder.GOOS() == osWindows {
		return domain.Tool{Capability: domain.CapabilityRasterizer}
	}
	return l.tool(domain.CapabilityRasterizer, "convert")
}

func (l *ToolLocator) editor(configured string) domain.Tool {
	type candidate struct {
		source  string
		command string
	}

	candidates := []candidate{
		{"configuration", configured},
		{"$" + envEqEditor, l.finder.Getenv(envEqEditor)},
		{"PATH", "editor"},
		{"$" + envVisual, l.finder.Getenv(envVisual)},
		{"$" + envEditor, l.finder.Getenv(envEditor)},
		{"PATH", "vim"},
		{"PATH", "nano"},
	}

	for _, c := range candidates {
		fields := strings.Fields(c.command)
		if len(fields) == 0 {
			continue
		}
		path, err := l.finder.LookPath(fields[0])
		if err != nil {
			if c.source != "PATH" {
				logger.Warn("Editor %q from %s could not be found, skipping.", c.command, c.source)
			}
			continue
		}
		return domain.Tool{
			Capability: domain.CapabilityEditor,
			Command:    append([]string{path}, fields[1:]...),
		}
	}
	return domain.Tool{Capability: domain.CapabilityEditor}
}

func (l *ToolLocator) clipboard() domain.Tool {
	goos := l.finder.GOOS()
	if goos == osWindows {
		return l.tool(domain.CapabilityClipboard, "nircmd")
	}

	if goos != osLinux {
		logger.Warn("Treating system as Linux")
	}
	if tool := l.tool(domain.CapabilityClipboard, "xclip"); tool.IsResolved() {
		return tool
	}
	return l.tool(domain.CapabilityClipboard, "wl-copy")
}

func (l *ToolLocator) tool(c domain.Capability, name string) domain.Tool {
	path, err := l.finder.LookPath(name)
	if err != nil {
		logger.Debug("%s: %s not found: %v", c, name, err)
		return domain.Tool{Capability: c}
	}
	return domain.Tool{Capability: c, Command: []string{path}}
}
