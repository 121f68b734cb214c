// Package quiz is the quiz panel: one text input per question, an explicit
// submit and a restart that re-samples with the current settings.
package quiz

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/kosakata/internal/router"
	"github.com/abhisek/kosakata/internal/screen"
	"github.com/abhisek/kosakata/internal/screens/tips"
	sess "github.com/abhisek/kosakata/internal/session"
	"github.com/abhisek/kosakata/internal/ui/components"
	"github.com/abhisek/kosakata/internal/ui/layout"
)

// QuizScreen implements screen.Screen for one quiz at a time.
type QuizScreen struct {
	env     *screen.Env
	session *sess.Session
	inputs  []components.TextInput
	focus   int
	offset  int // first visible row

	summary *sess.Summary
	saveErr string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a quiz that starts with env's current settings.
func New(env *screen.Env) *QuizScreen {
	return &QuizScreen{env: env}
}

// Init starts the first session. It is a no-op once a session exists, so
// returning from the tips screen keeps the graded quiz on display.
func (s *QuizScreen) Init() tea.Cmd {
	if s.session != nil {
		return nil
	}
	return s.startCmd(nil)
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.session == nil:
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	case s.session.Empty():
		return []layout.KeyHint{
			{Key: "Ctrl+R", Description: "Restart"},
			{Key: "Esc", Description: "Back"},
		}
	case s.summary != nil:
		hints := []layout.KeyHint{{Key: "↑↓", Description: "Scroll"}}
		if s.canCoach() {
			hints = append(hints, layout.KeyHint{Key: "C", Description: "Coach"})
		}
		return append(hints,
			layout.KeyHint{Key: "Ctrl+R", Description: "Restart"},
			layout.KeyHint{Key: "Esc", Description: "Back"},
		)
	}
	return []layout.KeyHint{
		{Key: "Tab/↑↓", Description: "Move"},
		{Key: "Ctrl+S", Description: "Submit"},
		{Key: "Ctrl+R", Description: "Restart"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startedMsg:
		return s, s.load(msg.Session)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, s.forward(msg)
}

func (s *QuizScreen) startCmd(old *sess.Session) tea.Cmd {
	svc := s.env.Sessions
	settings := s.env.CurrentSettings()
	return func() tea.Msg {
		ctx := context.Background()
		if old != nil {
			return startedMsg{Session: svc.Restart(ctx, old, settings)}
		}
		return startedMsg{Session: svc.Start(ctx, settings)}
	}
}

// load replaces all state with a new session.
func (s *QuizScreen) load(session *sess.Session) tea.Cmd {
	s.session = session
	s.summary = nil
	s.saveErr = ""
	s.focus = 0
	s.offset = 0
	s.inputs = make([]components.TextInput, len(session.Items))
	for i := range session.Items {
		s.inputs[i] = components.NewTextInput(session.Direction.Label(), 80)
	}
	if len(s.inputs) == 0 {
		return nil
	}
	return s.inputs[0].Focus()
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.session == nil {
		return s, nil
	}

	switch msg.String() {
	case "ctrl+r":
		return s, s.startCmd(s.session)
	case "ctrl+s":
		if s.summary == nil && !s.session.Empty() {
			s.submit()
		}
		return s, nil
	case "tab", "down":
		return s, s.move(1)
	case "shift+tab", "up":
		return s, s.move(-1)
	}

	if s.summary != nil {
		if msg.String() == "c" && s.canCoach() {
			in := tips.Input(s.session.Direction, s.summary.Missed)
			return s, router.Push(tips.New(s.env.Coach, in))
		}
		return s, nil
	}
	return s, s.forward(msg)
}

// forward sends msg to the focused input and mirrors its text into the
// session.
func (s *QuizScreen) forward(msg tea.Msg) tea.Cmd {
	if s.session == nil || s.summary != nil || s.focus >= len(s.inputs) {
		return nil
	}
	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	s.session.SetAnswer(s.focus, s.inputs[s.focus].Value())
	return cmd
}

func (s *QuizScreen) move(delta int) tea.Cmd {
	n := len(s.inputs)
	if n == 0 {
		return nil
	}
	if s.summary != nil {
		// Graded: arrows scroll the rows instead.
		s.offset = max(0, min(n-1, s.offset+delta))
		return nil
	}
	s.inputs[s.focus].Blur()
	s.focus = (s.focus + delta + n) % n
	return s.inputs[s.focus].Focus()
}

// submit grades every item. A persistence failure is shown as a banner;
// the grading itself stands.
func (s *QuizScreen) submit() {
	summary, err := s.env.Sessions.Submit(context.Background(), s.session)
	if err != nil {
		s.saveErr = err.Error()
	}
	s.summary = &summary
	for i := range s.inputs {
		if r := s.session.Results[i]; r != nil {
			s.inputs[i].Grade(r.Correct)
		}
	}
	s.offset = 0
}

func (s *QuizScreen) canCoach() bool {
	return s.env.Coach != nil && s.summary != nil && len(s.summary.Missed) > 0
}
