// Package domain defines the core types for eq.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - ToolSet: The resolved external programs the loop drives
//   - ScratchDocument: The user-edited LaTeX source
//   - Artifacts: The PDF and PNG derived from the scratch document
//   - LoopState: The states of the edit/compile/convert/copy loop
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
