// Package renderer renders ledger reports to markdown strings.
//
// Renderers take engine values in and hand markdown out; formatting
// decisions (currency symbols, column layout) live here so the engine
// stays presentation-free.
package renderer

import (
	"strings"
	"text/template"
)

// renderTemplate executes a compiled template over a report struct and
// returns the markdown output.
func renderTemplate(tmpl *template.Template, data any) string {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		// A template failure is a programming error, not a user condition.
		return "rendering error: " + err.Error()
	}
	return sb.String()
}
