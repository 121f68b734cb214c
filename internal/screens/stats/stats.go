// Package stats lists the ledger, hardest words first.
package stats

import (
	"fmt"
	"strconv"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/abhisek/kosakata/internal/ledger"
	"github.com/abhisek/kosakata/internal/screen"
	"github.com/abhisek/kosakata/internal/ui/layout"
	"github.com/abhisek/kosakata/internal/ui/theme"
	"github.com/abhisek/kosakata/internal/vocab"
)

// StatsScreen shows one row per ledger record.
type StatsScreen struct {
	env     *screen.Env
	rows    []ledger.Record
	offset  int
	visible int
	hideNew bool
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

func New(env *screen.Env) *StatsScreen {
	return &StatsScreen{env: env, hideNew: true}
}

// Init reloads the rows so the table reflects the latest quiz.
func (s *StatsScreen) Init() tea.Cmd {
	s.reload()
	return nil
}

func (s *StatsScreen) reload() {
	all := s.env.Sessions.Ledger().ByWrong()
	s.rows = s.rows[:0]
	for _, r := range all {
		if s.hideNew && r.Attempts() == 0 {
			continue
		}
		s.rows = append(s.rows, r)
	}
	s.offset = min(s.offset, max(0, len(s.rows)-1))
}

func (s *StatsScreen) Title() string { return "Word Stats" }

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	label := "Show unseen"
	if !s.hideNew {
		label = "Hide unseen"
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "U", Description: label},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch key.String() {
	case "down", "j":
		if s.offset+s.visible < len(s.rows) {
			s.offset++
		}
	case "up", "k":
		if s.offset > 0 {
			s.offset--
		}
	case "pgdown":
		s.offset = max(0, min(len(s.rows)-s.visible, s.offset+s.visible))
	case "pgup":
		s.offset = max(0, s.offset-s.visible)
	case "u":
		s.hideNew = !s.hideNew
		s.offset = 0
		s.reload()
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if len(s.rows) == 0 {
		return "\n\n" + layout.Center(width,
			theme.Dim.Render("No answers recorded yet. Finish a quiz to see your stats."))
	}

	// Header, borders and the summary line take six rows.
	s.visible = max(1, height-6)
	end := min(len(s.rows), s.offset+s.visible)

	v := s.env.Sessions.Vocab()
	rows := make([][]string, 0, end-s.offset)
	for _, r := range s.rows[s.offset:end] {
		rows = append(rows, Row(r, v))
	}

	t := Table(rows).Width(min(width-2, 96))
	correct, wrong := s.env.Sessions.Ledger().Totals()
	footer := theme.Dim.Render(fmt.Sprintf("%d–%d of %d words   %d correct, %d wrong overall",
		s.offset+1, end, len(s.rows), correct, wrong))
	return layout.Center(width, t.Render()+"\n"+footer)
}

// Row formats one record. v may be nil.
func Row(r ledger.Record, v *vocab.Store) []string {
	gloss, category := "", ""
	if v != nil {
		if e, ok := v.Lookup(r.Word); ok {
			gloss, category = e.Gloss, e.Category
		}
	}
	acc := "–"
	if r.Attempts() > 0 {
		acc = fmt.Sprintf("%.0f%%", 100*float64(r.Correct)/float64(r.Attempts()))
	}
	return []string{r.Word, gloss, category, strconv.Itoa(r.Wrong), strconv.Itoa(r.Correct), acc}
}

// Table renders rows produced by Row with the app's colours.
func Table(rows [][]string) *table.Table {
	header := lipgloss.NewStyle().Bold(true).Foreground(theme.Primary).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers("Word", "Meaning", "Category", "Wrong", "Right", "Accuracy").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case col == 3:
				return cell.Foreground(theme.Error)
			case col == 4:
				return cell.Foreground(theme.Success)
			}
			return cell
		})
}
