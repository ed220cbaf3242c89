package workspace

import (
	_ "embed"
)

// Template is the initial content of the scratch document: a standalone
// page with the common maths packages and an empty gather* block.
//
//go:embed template.tex
var Template string
