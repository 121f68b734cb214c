package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kosakata/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with a graded marker.
type TextInput struct {
	Model  textinput.Model
	graded bool
	ok     bool
}

// NewTextInput creates an unfocused input. A positive limit caps the
// number of characters.
func NewTextInput(placeholder string, limit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	if limit > 0 {
		ti.CharLimit = limit
	}
	return TextInput{Model: ti}
}

// Focus focuses the input and returns its cursor command.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes focus.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Focused reports whether the input has focus.
func (t TextInput) Focused() bool {
	return t.Model.Focused()
}

// Update forwards msg to the input. Graded inputs are read-only.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.graded {
		return t, nil
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the input followed by ✓ or ✗ once graded.
func (t TextInput) View() string {
	if !t.graded {
		return t.Model.View()
	}
	view := lipgloss.NewStyle().Foreground(theme.TextDim).Render("› " + t.Model.Value())
	if t.ok {
		return view + " " + theme.Correct.Render("✓")
	}
	return view + " " + theme.Incorrect.Render("✗")
}

// Value returns the current text.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the current text.
func (t *TextInput) SetValue(s string) {
	t.Model.SetValue(s)
}

// Grade freezes the input and marks it correct or wrong.
func (t *TextInput) Grade(correct bool) {
	t.graded = true
	t.ok = correct
	t.Model.Blur()
}
