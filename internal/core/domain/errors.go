package domain

import "errors"

// Domain errors represent failures the loop knows how to classify.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrToolNotFound indicates a required external program is not installed.
	// Setup cannot continue without it.
	ErrToolNotFound = errors.New("tool not found")

	// Stage Errors.

	// ErrCompileFailed indicates the typesetting compiler exited non-zero.
	// Usually caused by a mistake in the user's equation.
	ErrCompileFailed = errors.New("compilation failed")

	// ErrRasterizeFailed indicates the PDF could not be converted to an image.
	ErrRasterizeFailed = errors.New("conversion failed")

	// ErrCopyFailed indicates the image could not be placed on the clipboard.
	ErrCopyFailed = errors.New("copy failed")

	// ErrEditorFailed indicates the editor process could not be started.
	// An editor that starts and exits non-zero is not an error.
	ErrEditorFailed = errors.New("editor could not be started")

	// ErrInterrupted indicates the user pressed Ctrl-C at a prompt.
	ErrInterrupted = errors.New("interrupted")
)
