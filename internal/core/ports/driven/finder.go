package driven

// ToolFinder looks up executables and environment variables on the host.
// Implementations wrap exec.LookPath and os.Getenv; tests supply fakes.
type ToolFinder interface {
	// LookPath returns the path of the named executable, or an error if
	// it is not installed.
	LookPath(name string) (string, error)

	// Getenv returns the value of an environment variable, or "" if unset.
	Getenv(key string) string

	// GOOS returns the operating system the tools run on.
	GOOS() string
}
