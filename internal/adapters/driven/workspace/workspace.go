// Package workspace owns the ephemeral directory holding the scratch
// document and the files compiled from it.
package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/mikeevmm/eq/internal/core/domain"
	"github.com/mikeevmm/eq/internal/core/ports/driven"
)

// dirPattern is the os.MkdirTemp pattern for working directories.
const dirPattern = "eq-*"

// Ensure Workspace implements the interface.
var _ driven.Workspace = (*Workspace)(nil)

// Workspace is a freshly created directory containing the scratch document.
// Close removes it; callers defer Close immediately after New succeeds.
type Workspace struct {
	mu      sync.Mutex
	dir     string
	scratch string
	closed  bool
}

// New creates a working directory under parent (or the OS temp directory
// when parent is empty) and writes content to the scratch document.
func New(parent, content string) (*Workspace, error) {
	if parent == "" {
		parent = os.TempDir()
	}

	dir, err := os.MkdirTemp(parent, dirPattern)
	if err != nil {
		return nil, fmt.Errorf("create working directory: %w", err)
	}

	// LaTeX rejects the short "~" names Windows uses for the temp directory
	if resolved, err := filepath.EvalSymlinks(dir); err == nil {
		dir = resolved
	}

	ws := &Workspace{
		dir:     dir,
		scratch: filepath.Join(dir, domain.ScratchFileName),
	}

	if err := os.WriteFile(ws.scratch, []byte(content), 0600); err != nil {
		return nil, errors.Join(fmt.Errorf("write scratch document: %w", err), ws.Close())
	}

	return ws, nil
}

// Dir returns the working directory.
func (w *Workspace) Dir() string {
	return w.dir
}

// ScratchPath returns the path of the scratch document.
func (w *Workspace) ScratchPath() string {
	return w.scratch
}

// Read returns the current scratch document.
func (w *Workspace) Read() (domain.ScratchDocument, error) {
	data, err := os.ReadFile(w.scratch)
	if err != nil {
		return domain.ScratchDocument{}, err
	}
	return domain.ScratchDocument{Path: w.scratch, Content: string(data)}, nil
}

// Close removes the working directory and everything in it.
func (w *Workspace) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true

	if err := os.RemoveAll(w.dir); err != nil {
		return fmt.Errorf("remove working directory: %w", err)
	}
	return nil
}
