// Package session runs quizzes: it samples items, collects answers and
// grades them exactly once.
package session

import (
	"time"

	"github.com/abhisek/kosakata/internal/quiz"
)

// Session is one quiz. It is replaced wholesale on restart.
type Session struct {
	ID        string
	Items     []quiz.Item
	Direction quiz.Direction
	Settings  Settings
	Answers   []string
	Results   []*quiz.GradeResult
	StartedAt time.Time

	submittedAt time.Time
}

func newSession(id string, items []quiz.Item, settings Settings, now time.Time) *Session {
	return &Session{
		ID:        id,
		Items:     items,
		Direction: settings.Direction,
		Settings:  settings,
		Answers:   make([]string, len(items)),
		Results:   make([]*quiz.GradeResult, len(items)),
		StartedAt: now,
	}
}

// Empty reports whether the session has no questions.
func (s *Session) Empty() bool { return len(s.Items) == 0 }

// Prompt returns the text shown for item i.
func (s *Session) Prompt(i int) string {
	return s.Direction.Prompt(s.Items[i])
}

// SetAnswer stores the learner's text for item i. Answers to graded items
// are frozen and out-of-range indexes are ignored.
func (s *Session) SetAnswer(i int, text string) {
	if i < 0 || i >= len(s.Items) || s.IsGraded(i) {
		return
	}
	s.Answers[i] = text
}

// IsGraded reports whether item i has been graded.
func (s *Session) IsGraded(i int) bool {
	return i >= 0 && i < len(s.Results) && s.Results[i] != nil
}

// Submitted reports whether the session was submitted.
func (s *Session) Submitted() bool { return !s.submittedAt.IsZero() }

// Score returns the number of correct and graded items.
func (s *Session) Score() (correct, graded int) {
	for _, r := range s.Results {
		if r == nil {
			continue
		}
		graded++
		if r.Correct {
			correct++
		}
	}
	return correct, graded
}

// Miss is a wrongly answered item.
type Miss struct {
	Item     quiz.Item
	Prompt   string
	Expected string
	Given    string
}

// Summary is the outcome of a submitted session.
type Summary struct {
	Total    int
	Correct  int
	Accuracy float64
	Duration time.Duration
	Missed   []Miss
}

// Summarize builds the summary from the graded items.
func (s *Session) Summarize() Summary {
	correct, _ := s.Score()
	sum := Summary{
		Total:   len(s.Items),
		Correct: correct,
	}
	if sum.Total > 0 {
		sum.Accuracy = float64(correct) / float64(sum.Total)
	}
	if s.Submitted() {
		sum.Duration = s.submittedAt.Sub(s.StartedAt)
	}
	for i, r := range s.Results {
		if r == nil || r.Correct {
			continue
		}
		sum.Missed = append(sum.Missed, Miss{
			Item:     s.Items[i],
			Prompt:   s.Prompt(i),
			Expected: r.Expected,
			Given:    r.Given,
		})
	}
	return sum
}
