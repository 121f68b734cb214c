package components

import (
	"github.com/abhisek/kosakata/internal/ui/theme"
)

// Button renders a single action, highlighted when focused.
type Button struct {
	Label   string
	Focused bool
}

// View renders the button.
func (b Button) View() string {
	if b.Focused {
		return theme.ButtonActive.Render("▸ " + b.Label)
	}
	return theme.ButtonInactive.Render(b.Label)
}
