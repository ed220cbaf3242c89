package toolchain

import (
	"os"
	"os/exec"
	"runtime"

	"github.com/mikeevmm/eq/internal/core/ports/driven"
)

// Ensure OSFinder implements the interface.
var _ driven.ToolFinder = OSFinder{}

// OSFinder looks tools up on the host's PATH and environment.
type OSFinder struct{}

// LookPath searches PATH for the named executable.
func (OSFinder) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Getenv reads an environment variable.
func (OSFinder) Getenv(key string) string {
	return os.Getenv(key)
}

// GOOS returns the running operating system.
func (OSFinder) GOOS() string {
	return runtime.GOOS
}
