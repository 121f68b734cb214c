package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kosakata/internal/quiz"
	"github.com/abhisek/kosakata/internal/screen"
	"github.com/abhisek/kosakata/internal/store"
	"github.com/abhisek/kosakata/internal/ui/layout"
	"github.com/abhisek/kosakata/internal/ui/theme"
)

const pageSize = 50

type historyLoadedMsg struct {
	Sessions []store.SessionSummary
	Err      error
}

type answersLoadedMsg struct {
	SessionID string
	Answers   []store.AnswerRecord
	Err       error
}

// HistoryScreen displays past sessions. Enter expands a session into its
// missed words.
type HistoryScreen struct {
	eventRepo store.EventRepo
	sessions  []store.SessionSummary
	answers   map[string][]store.AnswerRecord
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a HistoryScreen. A nil repo shows a notice instead.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		answers:   make(map[string][]store.AnswerRecord),
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	if s.eventRepo == nil {
		s.loaded = true
		s.errMsg = "History is unavailable: the event database could not be opened."
		return nil
	}
	repo := s.eventRepo
	return func() tea.Msg {
		sessions, err := repo.QuerySessionSummaries(context.Background(), store.QueryOpts{Limit: pageSize})
		return historyLoadedMsg{Sessions: sessions, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
		}
		s.loaded = true
		return s, nil

	case answersLoadedMsg:
		if msg.Err == nil {
			s.answers[msg.SessionID] = msg.Answers
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			if len(s.sessions) == 0 {
				return s, nil
			}
			s.expanded[s.selected] = !s.expanded[s.selected]
			if s.expanded[s.selected] {
				return s, s.loadAnswers(s.sessions[s.selected].SessionID)
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) loadAnswers(sessionID string) tea.Cmd {
	if _, ok := s.answers[sessionID]; ok {
		return nil
	}
	repo := s.eventRepo
	return func() tea.Msg {
		answers, err := repo.SessionAnswers(context.Background(), sessionID)
		return answersLoadedMsg{SessionID: sessionID, Answers: answers, Err: err}
	}
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n%s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No quizzes yet. Start one from the home screen!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, sess := range s.sessions {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		label := sess.Direction
		if d, err := quiz.ParseDirection(sess.Direction); err == nil {
			label = d.Label()
		}
		secs := int(sess.Duration.Seconds())
		line := fmt.Sprintf("%s%s  %d:%02d  %s  %d/%d  %.0f%%",
			prefix, sess.Timestamp.Format("Jan 02 15:04"), secs/60, secs%60,
			label, sess.Correct, sess.Questions, sess.Accuracy()*100)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(layout.Center(width, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(s.renderDetails(sess, width))
		}
	}

	return b.String()
}

func (s *HistoryScreen) renderDetails(sess store.SessionSummary, width int) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)
	var lines []string
	lines = append(lines, dim.Render("    "+strings.Join(sess.Categories, ", ")))

	answers, ok := s.answers[sess.SessionID]
	switch {
	case !ok:
		lines = append(lines, dim.Render("    Loading answers..."))
	case len(answers) == 0:
		lines = append(lines, dim.Render("    No answers recorded"))
	default:
		missed := 0
		for _, a := range answers {
			if a.Correct {
				continue
			}
			missed++
			given := a.Given
			if strings.TrimSpace(given) == "" {
				given = "(blank)"
			}
			lines = append(lines, theme.Incorrect.Render(
				fmt.Sprintf("    ✗ %s: %s (you wrote %s)", a.Word, a.Expected, given)))
		}
		if missed == 0 {
			lines = append(lines, theme.Correct.Render("    ✓ No mistakes"))
		}
	}

	var b strings.Builder
	for _, l := range lines {
		b.WriteString(layout.Center(width, l))
		b.WriteString("\n")
	}
	return b.String()
}
