package domain

import (
	"errors"
	"strings"
)

// DefaultDensity is the rasterization density, in DPI, used when none is configured.
const DefaultDensity = 300

// Capability identifies a job the loop needs an external program for.
type Capability string

// Required capabilities.
const (
	// CapabilityEditor opens the scratch document for the user.
	CapabilityEditor Capability = "editor"

	// CapabilityCompiler typesets the scratch document into a PDF.
	CapabilityCompiler Capability = "compiler"

	// CapabilityRasterizer converts the PDF into a PNG.
	CapabilityRasterizer Capability = "rasterizer"

	// CapabilityClipboard places the PNG on the system clipboard.
	CapabilityClipboard Capability = "clipboard"
)

// AllCapabilities lists every capability in resolution order.
func AllCapabilities() []Capability {
	return []Capability{
		CapabilityCompiler,
		CapabilityRasterizer,
		CapabilityEditor,
		CapabilityClipboard,
	}
}

// String returns the string representation.
func (c Capability) String() string {
	return string(c)
}

// Hint returns what the user should install or configure to provide the capability.
func (c Capability) Hint() string {
	switch c {
	case CapabilityCompiler:
		return "The latexmk executable cannot be found. " +
			"eq needs latexmk to compile your equation, please make sure you have " +
			"a LaTeX distribution installed and available to run, and then install latexmk."
	case CapabilityRasterizer:
		return "The imagemagick executable (magick or convert) could not be found. " +
			"eq needs imagemagick to process your equation, please make sure you have " +
			"imagemagick installed and available to run."
	case CapabilityEditor:
		return "Could not find an editor to edit the equation with. " +
			"Tried $EQ_EDITOR, `editor`, $VISUAL, $EDITOR, `vim`, `nano`, in that order. " +
			"Please ensure one of these exists, or set $VISUAL/$EDITOR to your preferred editor."
	case CapabilityClipboard:
		return "No clipboard utility could be found (xclip on Linux, nircmd on Windows). " +
			"eq needs it to copy the equation image into your clipboard. " +
			"Please ensure it is installed and available."
	default:
		return unknownDescription
	}
}

const unknownDescription = "Unknown"

// Tool is a resolved external program.
// Command holds the executable followed by any fixed leading arguments,
// e.g. ["magick", "convert"] or ["code", "--wait"].
type Tool struct {
	Capability Capability
	Command    []string
}

// Name returns the executable of the tool.
func (t Tool) Name() string {
	if len(t.Command) == 0 {
		return ""
	}
	return t.Command[0]
}

// Args returns the fixed leading arguments of the tool.
func (t Tool) Args() []string {
	if len(t.Command) < 2 {
		return nil
	}
	return t.Command[1:]
}

// IsResolved returns true if the tool has an executable.
func (t Tool) IsResolved() bool {
	return t.Name() != ""
}

// String returns the command line of the tool.
func (t Tool) String() string {
	return strings.Join(t.Command, " ")
}

// ToolSet is the set of programs the loop drives, resolved once at startup.
// It is never mutated after construction.
type ToolSet struct {
	Editor     Tool
	Compiler   Tool
	Rasterizer Tool
	Clipboard  Tool

	// Density is the rasterization density in DPI.
	Density int
}

// Tool returns the tool providing the given capability.
func (s *ToolSet) Tool(c Capability) Tool {
	switch c {
	case CapabilityEditor:
		return s.Editor
	case CapabilityCompiler:
		return s.Compiler
	case CapabilityRasterizer:
		return s.Rasterizer
	case CapabilityClipboard:
		return s.Clipboard
	default:
		return Tool{}
	}
}

// Validate checks that every capability is resolved and the density is positive.
func (s *ToolSet) Validate() error {
	var missing []Capability
	for _, c := range AllCapabilities() {
		if !s.Tool(c).IsResolved() {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return &MissingToolsError{Missing: missing}
	}
	if s.Density <= 0 {
		return errors.Join(ErrInvalidInput, errors.New("density must be a positive integer"))
	}
	return nil
}

// MissingToolsError reports every capability that could not be resolved.
type MissingToolsError struct {
	Missing []Capability
}

// Error implements error.
func (e *MissingToolsError) Error() string {
	names := make([]string, 0, len(e.Missing))
	for _, c := range e.Missing {
		names = append(names, c.String())
	}
	return "missing required tools: " + strings.Join(names, ", ")
}

// Unwrap allows errors.Is(err, ErrToolNotFound).
func (e *MissingToolsError) Unwrap() error {
	return ErrToolNotFound
}

// Has returns true if the capability is among the missing ones.
func (e *MissingToolsError) Has(c Capability) bool {
	for _, m := range e.Missing {
		if m == c {
			return true
		}
	}
	return false
}
