package domain

import (
	"path/filepath"
	"strings"
)

// ScratchFileName is the fixed name of the scratch document inside the working directory.
const ScratchFileName = "eq.tex"

// Artifact extensions.
const (
	ExtPDF = ".pdf"
	ExtPNG = ".png"
)

// ScratchDocument is the LaTeX source the user edits.
// Only the editor writes it; the loop reads it back after every session.
type ScratchDocument struct {
	Path    string
	Content string
}

// Dir returns the working directory containing the document.
func (d ScratchDocument) Dir() string {
	return filepath.Dir(d.Path)
}

// Artifacts returns the derived files for the document.
func (d ScratchDocument) Artifacts() Artifacts {
	return ArtifactsFor(d.Path)
}

// Artifacts are the files derived from a scratch document on each pass.
type Artifacts struct {
	PDF string
	PNG string
}

// ArtifactsFor derives artifact paths from a scratch path by extension substitution.
// For "dir/X.tex" it returns "dir/X.pdf" and "dir/X.png".
func ArtifactsFor(scratchPath string) Artifacts {
	base := strings.TrimSuffix(scratchPath, filepath.Ext(scratchPath))
	return Artifacts{
		PDF: base + ExtPDF,
		PNG: base + ExtPNG,
	}
}
