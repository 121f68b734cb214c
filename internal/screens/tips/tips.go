// Package tips shows the coach's explanations for the words missed in a
// quiz.
package tips

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kosakata/internal/coach"
	"github.com/abhisek/kosakata/internal/quiz"
	"github.com/abhisek/kosakata/internal/router"
	"github.com/abhisek/kosakata/internal/screen"
	"github.com/abhisek/kosakata/internal/session"
	"github.com/abhisek/kosakata/internal/ui/layout"
	"github.com/abhisek/kosakata/internal/ui/theme"
)

// requestTimeout bounds one Explain call, retries included.
const requestTimeout = 2 * time.Minute

const spinnerInterval = 120 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

type tipsReadyMsg struct {
	Tips *coach.Tips
	Err  error
}

type spinnerTickMsg time.Time

// TipsScreen requests tips once and displays them.
type TipsScreen struct {
	coach *coach.Service
	input coach.Input

	started bool
	loading bool
	frame   int
	tips    *coach.Tips
	err     error
	offset  int
}

var _ screen.Screen = (*TipsScreen)(nil)
var _ screen.KeyHintProvider = (*TipsScreen)(nil)

// Input builds the coach input for a graded quiz.
func Input(d quiz.Direction, misses []session.Miss) coach.Input {
	return coach.Input{Direction: d, Misses: misses}
}

// New creates the screen. svc may be nil, in which case it reports that no
// coach is configured.
func New(svc *coach.Service, in coach.Input) *TipsScreen {
	return &TipsScreen{coach: svc, input: in}
}

// Init sends the request the first time the screen is shown.
func (s *TipsScreen) Init() tea.Cmd {
	if s.started {
		return nil
	}
	s.started = true
	if s.coach == nil {
		s.err = errors.New("no language model is configured")
		return nil
	}
	s.loading = true
	return tea.Batch(s.explainCmd(), tick())
}

func (s *TipsScreen) Title() string {
	return "Coach"
}

func (s *TipsScreen) KeyHints() []layout.KeyHint {
	if s.tips != nil && len(s.tips.Words) > 0 {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Scroll"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
}

func (s *TipsScreen) explainCmd() tea.Cmd {
	svc, in := s.coach, s.input
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		t, err := svc.Explain(ctx, in)
		return tipsReadyMsg{Tips: t, Err: err}
	}
}

func tick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (s *TipsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tipsReadyMsg:
		s.loading = false
		s.tips = msg.Tips
		s.err = msg.Err
		return s, nil
	case spinnerTickMsg:
		if !s.loading {
			return s, nil
		}
		s.frame = (s.frame + 1) % len(spinnerFrames)
		return s, tick()
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "q":
			return s, router.Pop()
		case "down", "j":
			if s.tips != nil && s.offset < len(s.tips.Words)-1 {
				s.offset++
			}
		case "up", "k":
			if s.offset > 0 {
				s.offset--
			}
		}
	}
	return s, nil
}

func (s *TipsScreen) View(width, height int) string {
	switch {
	case s.loading:
		return "\n\n" + layout.Center(width,
			theme.Dim.Render(spinnerFrames[s.frame]+" Asking the coach about your mistakes..."))
	case s.err != nil:
		return "\n\n" + layout.Center(width, theme.ErrorBanner.Render(errorText(s.err)))
	case s.tips == nil || len(s.tips.Words) == 0:
		return "\n\n" + layout.Center(width, theme.Dim.Render("The coach had nothing to add."))
	}

	cardWidth := min(width-4, 76)
	var b strings.Builder
	if s.tips.Encouragement != "" {
		b.WriteString(theme.Subtitle.Render(s.tips.Encouragement))
		b.WriteString("\n\n")
	}

	used := lipgloss.Height(b.String())
	for i := s.offset; i < len(s.tips.Words); i++ {
		card := renderTip(s.tips.Words[i], cardWidth)
		if used+lipgloss.Height(card) > height-1 && i > s.offset {
			b.WriteString(theme.Hint.Render(fmt.Sprintf("… %d more", len(s.tips.Words)-i)))
			break
		}
		b.WriteString(card)
		b.WriteString("\n")
		used += lipgloss.Height(card) + 1
	}
	if s.tips.Model != "" {
		b.WriteString(theme.Hint.Render("tips by " + s.tips.Model))
	}
	return b.String()
}

func renderTip(t coach.Tip, width int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(t.Word))
	b.WriteString(theme.Dim.Render("  " + t.Gloss))
	if t.Example != "" {
		b.WriteString("\n" + theme.Body.Render(t.Example))
		if t.Translation != "" {
			b.WriteString("\n" + theme.Dim.Render(t.Translation))
		}
	}
	if t.MemoryHook != "" {
		b.WriteString("\n" + theme.Hint.Render("Remember: "+t.MemoryHook))
	}
	return theme.Card.Width(width).Render(b.String())
}

func errorText(err error) string {
	switch {
	case errors.Is(err, coach.ErrNoMisses):
		return "Nothing to explain: every answer was right."
	case errors.Is(err, context.DeadlineExceeded):
		return "The coach took too long to answer. Try again later."
	}
	return "Coach unavailable: " + err.Error()
}
