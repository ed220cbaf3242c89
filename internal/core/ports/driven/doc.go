// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - Editor: Lets the user edit the scratch document
//   - Compiler: Typesets the scratch document into a PDF
//   - Rasterizer: Converts the PDF into a PNG
//   - Clipboard: Places the PNG on the system clipboard
//   - Acknowledger: Waits for the user to acknowledge a failure
//   - Workspace: Owns the ephemeral working directory
//   - ToolFinder: Looks up executables and environment variables
//
// # Optional Interfaces
//
// These can be nil - the application falls back to defaults:
//
//   - ConfigStore: User configuration file
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
