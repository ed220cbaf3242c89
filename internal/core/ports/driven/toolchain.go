package driven

import "context"

// Editor opens a document for interactive editing.
// Edit blocks until the user closes the editor. The editor's exit status
// is not an error; only a failure to start it is.
type Editor interface {
	Edit(ctx context.Context, path string) error
}

// Compiler typesets a LaTeX document.
// Compile writes its output into outDir and returns a non-nil error
// when the compiler exits non-zero.
type Compiler interface {
	Compile(ctx context.Context, sourcePath, outDir string) error
}

// Rasterizer converts a PDF into a PNG on a white, flattened background.
type Rasterizer interface {
	Rasterize(ctx context.Context, pdfPath, pngPath string, density int) error
}

// Clipboard places an image on the system clipboard.
type Clipboard interface {
	// CopyImage copies the PNG at path to the clipboard.
	CopyImage(ctx context.Context, pngPath string) error
}

// Acknowledger blocks until the user acknowledges a message.
type Acknowledger interface {
	// Acknowledge shows prompt and waits for any key.
	Acknowledge(ctx context.Context, prompt string) error
}
