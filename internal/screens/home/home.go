// Package home is the landing screen.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kosakata/internal/router"
	"github.com/abhisek/kosakata/internal/screen"
	"github.com/abhisek/kosakata/internal/screens/addword"
	"github.com/abhisek/kosakata/internal/screens/history"
	"github.com/abhisek/kosakata/internal/screens/quiz"
	"github.com/abhisek/kosakata/internal/screens/settings"
	"github.com/abhisek/kosakata/internal/screens/stats"
	"github.com/abhisek/kosakata/internal/ui/components"
	"github.com/abhisek/kosakata/internal/ui/theme"
)

const title = "K · O · S · A · K · A · T · A"

// HomeScreen is the main menu.
type HomeScreen struct {
	env  *screen.Env
	menu components.Menu

	words   int
	seen    int
	correct int
	wrong   int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen.
func New(env *screen.Env) *HomeScreen {
	items := []components.MenuItem{
		{Label: "Start quiz", Action: func() tea.Cmd { return router.Push(quiz.New(env)) }},
		{Label: "Settings", Action: func() tea.Cmd { return router.Push(settings.New(env)) }},
		{Label: "Add word", Action: func() tea.Cmd { return router.Push(addword.New(env)) }},
		{Label: "Word stats", Action: func() tea.Cmd { return router.Push(stats.New(env)) }},
		{Label: "History", Action: func() tea.Cmd { return router.Push(history.New(env.Events)) }},
		{Label: "Exit", Action: func() tea.Cmd { return tea.Quit }},
	}
	h := &HomeScreen{env: env, menu: components.NewMenu(items)}
	h.refresh()
	return h
}

// Init recomputes the totals; it runs again whenever a screen above is
// popped.
func (h *HomeScreen) Init() tea.Cmd {
	h.refresh()
	return nil
}

func (h *HomeScreen) refresh() {
	l := h.env.Sessions.Ledger()
	h.words = h.env.Sessions.Vocab().Len()
	h.correct, h.wrong = l.Totals()
	h.seen = 0
	for _, r := range l.Records() {
		if r.Attempts() > 0 {
			h.seen++
		}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := min(max(width-6, 20), 60)
	block := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)

	var sections []string
	sections = append(sections, block.Render(
		theme.Title.Render(title)+"\n"+theme.Dim.Render("Malay ↔ English vocabulary")))
	sections = append(sections, h.renderStatsBar(cw))

	menu := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw).
		Padding(0, 2).
		Render(strings.TrimRight(h.menu.View(), "\n"))
	sections = append(sections, menu)

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) renderStatsBar(cw int) string {
	words := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	right := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	wrong := lipgloss.NewStyle().Foreground(theme.Error).Bold(true)

	stats := fmt.Sprintf("%s  %s  %s",
		words.Render(fmt.Sprintf("%d words (%d practised)", h.words, h.seen)),
		right.Render(fmt.Sprintf("✓ %d", h.correct)),
		wrong.Render(fmt.Sprintf("✗ %d", h.wrong)),
	)
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Border).
		Width(cw).
		Align(lipgloss.Center).
		Render(stats)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
