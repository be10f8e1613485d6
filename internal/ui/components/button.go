package components

import (
	"github.com/priyam/learnsphere/internal/ui/theme"
)

// Button renders a focusable action button.
func Button(label string, active bool) string {
	text := "  " + label + "  "
	if active {
		return theme.ButtonActive.Render(text)
	}
	return theme.ButtonInactive.Render(text)
}
