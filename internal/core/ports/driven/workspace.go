package driven

import "github.com/mikeevmm/eq/internal/core/domain"

// Workspace owns the ephemeral working directory for one process lifetime.
type Workspace interface {
	// Dir returns the working directory.
	Dir() string

	// ScratchPath returns the path of the scratch document.
	ScratchPath() string

	// Read returns the current scratch document.
	Read() (domain.ScratchDocument, error)

	// Close removes the working directory and everything in it.
	// It is safe to call more than once.
	Close() error
}
