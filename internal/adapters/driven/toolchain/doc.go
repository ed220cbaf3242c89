// Package toolchain provides exec-backed implementations of the driven
// ports that shell out to external programs.
//
// Adapters:
//   - Editor: The user's text editor, attached to the terminal
//   - Latexmk: LaTeX compilation via latexmk
//   - Magick: PDF to PNG conversion via ImageMagick
//   - OSFinder: PATH and environment lookups
//
// Every adapter judges success by exit status alone. Program output is
// passed through to the terminal so the user can read compiler errors.
package toolchain
