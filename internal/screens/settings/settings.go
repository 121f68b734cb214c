// Package settings is the configuration panel: direction, question count
// and the categories to draw from.
package settings

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/kosakata/internal/router"
	"github.com/abhisek/kosakata/internal/screen"
	"github.com/abhisek/kosakata/internal/screens/quiz"
	"github.com/abhisek/kosakata/internal/session"
	"github.com/abhisek/kosakata/internal/ui/components"
	"github.com/abhisek/kosakata/internal/ui/layout"
	"github.com/abhisek/kosakata/internal/ui/theme"
)

const (
	rowDirection = iota
	rowCount
	rowFirstCategory
)

// bigStep is the count change for shift+←/→.
const bigStep = 5

// SettingsScreen edits env.Settings in place, so leaving with Esc keeps the
// changes for the next quiz.
type SettingsScreen struct {
	env       *screen.Env
	limits    session.Limits
	settings  session.Settings
	checklist components.Checklist
	cursor    int
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

// New builds the panel from the current settings and vocabulary.
func New(env *screen.Env) *SettingsScreen {
	v := env.Sessions.Vocab()
	categories := v.Categories()
	sizes := v.CategorySizes()
	counts := make([]int, len(categories))
	for i, c := range categories {
		counts[i] = sizes[c]
	}

	current := env.CurrentSettings()
	return &SettingsScreen{
		env:       env,
		limits:    env.Sessions.Limits(),
		settings:  current,
		checklist: components.NewChecklist(categories, counts, current.Categories),
	}
}

func (s *SettingsScreen) Init() tea.Cmd { return nil }

func (s *SettingsScreen) Title() string { return "Settings" }

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "↑↓", Description: "Move"}}
	switch {
	case s.cursor == rowDirection:
		hints = append(hints, layout.KeyHint{Key: "←→", Description: "Switch"})
	case s.cursor == rowCount:
		hints = append(hints, layout.KeyHint{Key: "←→ / ⇧←→", Description: "±1 / ±5"})
	case s.cursor < s.startRow():
		hints = append(hints, layout.KeyHint{Key: "Space", Description: "Toggle"})
	}
	return append(hints,
		layout.KeyHint{Key: "A", Description: "All"},
		layout.KeyHint{Key: "Enter", Description: "Start"},
		layout.KeyHint{Key: "Esc", Description: "Back"},
	)
}

func (s *SettingsScreen) startRow() int {
	return rowFirstCategory + len(s.checklist.Options)
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch key.String() {
	case "up", "k", "shift+tab":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j", "tab":
		if s.cursor < s.startRow() {
			s.cursor++
		}
	case "left", "h":
		s.adjust(-1)
	case "right", "l":
		s.adjust(1)
	case "shift+left":
		s.adjust(-bigStep)
	case "shift+right":
		s.adjust(bigStep)
	case "space", " ":
		if s.cursor == rowDirection {
			s.settings.Direction = s.settings.Direction.Toggle()
		} else if i := s.cursor - rowFirstCategory; i >= 0 {
			s.checklist.Toggle(i)
		}
	case "a":
		s.checklist.ToggleAll()
	case "enter":
		if i := s.cursor - rowFirstCategory; i >= 0 && s.cursor < s.startRow() {
			s.checklist.Toggle(i)
			break
		}
		s.commit()
		return s, router.Replace(quiz.New(s.env))
	default:
		return s, nil
	}
	s.commit()
	return s, nil
}

// adjust applies a ←/→ press to the row under the cursor.
func (s *SettingsScreen) adjust(delta int) {
	switch s.cursor {
	case rowDirection:
		s.settings.Direction = s.settings.Direction.Toggle()
	case rowCount:
		s.settings.Count += delta
		s.settings = s.settings.Normalize(s.limits)
	}
}

func (s *SettingsScreen) commit() {
	s.settings.Categories = s.checklist.Selected()
	s.settings = s.settings.Normalize(s.limits)
	committed := s.settings
	s.env.Settings = &committed
}

func (s *SettingsScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(s.row(rowDirection, "Direction", s.settings.Direction.Label()))
	b.WriteString(s.row(rowCount, "Questions",
		fmt.Sprintf("◂ %d ▸", s.settings.Count)+
			theme.Dim.Render(fmt.Sprintf("  (%d–%d)", s.limits.MinCount, s.limits.MaxCount))))
	b.WriteString("\n")

	title := "Categories"
	if s.checklist.AllChecked() {
		title += theme.Dim.Render("  all selected")
	}
	b.WriteString(theme.Subtitle.Render(title) + "\n")
	b.WriteString(s.checklist.View(s.cursor - rowFirstCategory))
	if len(s.checklist.Selected()) == 0 {
		b.WriteString(theme.Warning.Render("No category selected: the quiz will be empty.") + "\n")
	}
	b.WriteString("\n")

	b.WriteString(components.Button{Label: "Start quiz", Focused: s.cursor == s.startRow()}.View())
	return layout.Center(width, b.String())
}

func (s *SettingsScreen) row(i int, label, value string) string {
	name := theme.Unselected.Width(12).Render(label)
	if s.cursor == i {
		name = theme.Selected.Width(12).Render(label)
	}
	return name + "  " + theme.Body.Render(value) + "\n"
}
