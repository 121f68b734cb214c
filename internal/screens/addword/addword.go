// Package addword lets the learner add a word to the vocabulary for the
// rest of the run.
package addword

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/kosakata/internal/screen"
	"github.com/abhisek/kosakata/internal/ui/components"
	"github.com/abhisek/kosakata/internal/ui/layout"
	"github.com/abhisek/kosakata/internal/ui/theme"
	"github.com/abhisek/kosakata/internal/vocab"
)

const (
	fieldSource = iota
	fieldGloss
)

// AddWordScreen has two inputs and reports where the word was filed.
type AddWordScreen struct {
	env    *screen.Env
	inputs [2]components.TextInput
	focus  int

	added    *vocab.Entry
	replaced bool
	errMsg   string
}

var _ screen.Screen = (*AddWordScreen)(nil)
var _ screen.KeyHintProvider = (*AddWordScreen)(nil)

func New(env *screen.Env) *AddWordScreen {
	return &AddWordScreen{
		env: env,
		inputs: [2]components.TextInput{
			components.NewTextInput("Malay word, e.g. menulis", 60),
			components.NewTextInput("English meaning, e.g. write", 120),
		},
	}
}

func (s *AddWordScreen) Init() tea.Cmd {
	return s.inputs[s.focus].Focus()
}

func (s *AddWordScreen) Title() string { return "Add Word" }

func (s *AddWordScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Add"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *AddWordScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down", "shift+tab", "up":
			return s, s.setFocus(1 - s.focus)
		case "enter":
			if s.focus == fieldSource && strings.TrimSpace(s.inputs[fieldGloss].Value()) == "" {
				return s, s.setFocus(fieldGloss)
			}
			return s, s.add()
		}
	}
	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return s, cmd
}

func (s *AddWordScreen) setFocus(i int) tea.Cmd {
	s.inputs[s.focus].Blur()
	s.focus = i
	return s.inputs[i].Focus()
}

func (s *AddWordScreen) add() tea.Cmd {
	entry, replaced, err := s.env.Sessions.AddWord(s.inputs[fieldSource].Value(), s.inputs[fieldGloss].Value())
	if err != nil {
		s.added = nil
		if errors.Is(err, vocab.ErrEmptyWord) {
			s.errMsg = "Both the Malay word and its meaning are required."
		} else {
			s.errMsg = err.Error()
		}
		return nil
	}

	s.errMsg = ""
	s.added = &entry
	s.replaced = replaced
	s.inputs[fieldSource].SetValue("")
	s.inputs[fieldGloss].SetValue("")
	return s.setFocus(fieldSource)
}

func (s *AddWordScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("Malay") + "\n")
	b.WriteString(s.inputs[fieldSource].View() + "\n\n")
	b.WriteString(theme.Subtitle.Render("English") + "\n")
	b.WriteString(s.inputs[fieldGloss].View() + "\n\n")

	switch {
	case s.errMsg != "":
		b.WriteString(theme.ErrorBanner.Render(s.errMsg))
	case s.added != nil:
		b.WriteString(theme.Correct.Render(fmt.Sprintf("Added %q = %q", s.added.Source, s.added.Gloss)))
		b.WriteString("\n" + theme.Dim.Render("Category: ") + theme.Body.Render(s.added.Category))
		if s.replaced {
			b.WriteString("\n" + theme.Warning.Render(
				fmt.Sprintf("%q was already in the word list; its meaning was replaced.", s.added.Source)))
		}
	default:
		b.WriteString(theme.Hint.Render("New words last until you quit."))
	}
	return layout.Center(width, theme.Card.Render(b.String()))
}
