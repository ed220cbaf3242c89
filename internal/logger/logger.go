// Package logger provides status and diagnostic output for eq.
// Informational messages go to stdout; warnings and errors go to stderr
// and are always shown. When verbose mode is enabled via the --verbose
// flag, debug messages are printed to stderr as well.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var (
	mu      sync.RWMutex
	verbose bool
	stdout  io.Writer = os.Stdout
	output  io.Writer = os.Stderr
	styles            = newStyles(os.Stderr)
)

type prefixStyles struct {
	debug lipgloss.Style
	warn  lipgloss.Style
	err   lipgloss.Style
	title lipgloss.Style
}

// newStyles builds prefix styles for w. Colour is dropped when w is not a terminal.
func newStyles(w io.Writer) prefixStyles {
	r := lipgloss.NewRenderer(w)
	return prefixStyles{
		debug: r.NewStyle().Foreground(lipgloss.Color("#6C7086")),
		warn:  r.NewStyle().Foreground(lipgloss.Color("#F9E2AF")).Bold(true),
		err:   r.NewStyle().Foreground(lipgloss.Color("#F38BA8")).Bold(true),
		title: r.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true),
	}
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the writer for warnings, errors and debug logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	styles = newStyles(w)
}

// SetStdout sets the writer for informational messages.
// Defaults to os.Stdout.
func SetStdout(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	stdout = w
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "%s "+format+"\n", append([]any{styles.debug.Render("[DEBUG]")}, args...)...)
	}
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n%s\n", styles.title.Render("=== "+name+" ==="))
	}
}

// Info prints an informational message.
func Info(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	fmt.Fprintf(stdout, format+"\n", args...)
}

// Warn prints a warning message.
func Warn(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	fmt.Fprintf(output, "%s "+format+"\n", append([]any{styles.warn.Render("WARNING:")}, args...)...)
}

// Error prints an error message.
func Error(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	fmt.Fprintf(output, "%s "+format+"\n", append([]any{styles.err.Render("ERROR:")}, args...)...)
}
