package scaffold

import "embed"

// templateFS holds the component stub templates.
//
//go:embed templates/*.tmpl
var templateFS embed.FS
