package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/kosakata/internal/ui/components"
	"github.com/abhisek/kosakata/internal/ui/layout"
	"github.com/abhisek/kosakata/internal/ui/theme"
)

// rowHeight is the number of lines one question occupies.
const rowHeight = 3

func (s *QuizScreen) View(width, height int) string {
	if s.session == nil {
		return layout.Center(width, theme.Dim.Render("\n\nPicking words..."))
	}
	if s.session.Empty() {
		return renderEmpty(width)
	}

	var b strings.Builder
	b.WriteString(s.renderHeading(width))
	b.WriteString("\n\n")
	used := lipgloss.Height(b.String())

	visible := max((height-used-1)/rowHeight, 1)
	first := s.firstVisible(visible)
	last := min(first+visible, len(s.inputs))

	promptWidth := s.promptWidth()
	for i := first; i < last; i++ {
		b.WriteString(s.renderRow(i, promptWidth))
	}
	if last < len(s.inputs) {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("  … %d more below", len(s.inputs)-last)))
	}
	return b.String()
}

func renderEmpty(width int) string {
	msg := theme.Body.Render("No questions to show.") + "\n\n" +
		theme.Hint.Render("Select at least one category in Settings, then press Ctrl+R.")
	return "\n\n" + layout.Center(width, theme.Card.Render(msg))
}

func (s *QuizScreen) renderHeading(width int) string {
	d := s.session.Direction
	line := theme.Title.Render(d.Label()) + theme.Dim.Render(fmt.Sprintf("   %d questions", len(s.inputs)))

	switch {
	case s.saveErr != "":
		return line + "\n" + theme.ErrorBanner.Render("Results not saved: "+s.saveErr) +
			"\n" + s.scoreBanner()
	case s.summary != nil:
		return line + "\n" + s.scoreBanner()
	}
	answered := 0
	for _, in := range s.inputs {
		if strings.TrimSpace(in.Value()) != "" {
			answered++
		}
	}
	label := fmt.Sprintf("%d of %d answered", answered, len(s.inputs))
	bar := components.NewProgressBar(label, float64(answered)/float64(len(s.inputs)), false, min(width, 60))
	return line + "\n" + bar.View()
}

func (s *QuizScreen) scoreBanner() string {
	if s.summary == nil {
		return ""
	}
	return theme.Banner.Render(fmt.Sprintf("You scored %d out of %d", s.summary.Correct, s.summary.Total))
}

// firstVisible keeps the focused row (or the scroll offset once graded)
// inside a window of n rows.
func (s *QuizScreen) firstVisible(n int) int {
	target := s.focus
	if s.summary != nil {
		return max(0, min(s.offset, len(s.inputs)-n))
	}
	if target < s.offset {
		s.offset = target
	}
	if target >= s.offset+n {
		s.offset = target - n + 1
	}
	return s.offset
}

func (s *QuizScreen) promptWidth() int {
	w := 0
	for i := range s.session.Items {
		w = max(w, lipgloss.Width(s.session.Prompt(i)))
	}
	return min(w, 40)
}

func (s *QuizScreen) renderRow(i, promptWidth int) string {
	num := theme.Dim.Render(fmt.Sprintf("%3d. ", i+1))
	prompt := lipgloss.NewStyle().Width(promptWidth).Bold(true).Render(s.session.Prompt(i))
	if s.summary == nil && i == s.focus {
		prompt = theme.Selected.Width(promptWidth).Render(s.session.Prompt(i))
	}

	line := num + prompt + "  " + s.inputs[i].View()
	detail := "     " + theme.Hint.Render(s.session.Items[i].Category)
	if r := s.session.Results[i]; r != nil && !r.Correct {
		detail = "     " + theme.Incorrect.Render("answer: ") + theme.Body.Render(r.Expected)
	}
	return line + "\n" + detail + "\n\n"
}
