package quiz

import (
	"strings"

	"github.com/abhisek/kosakata/internal/ledger"
)

// Recorder receives exactly one attempt per graded item.
type Recorder interface {
	Record(word string, correct bool) ledger.Record
}

// GradeResult is the outcome of grading one answer.
type GradeResult struct {
	Correct  bool
	Expected string
	Given    string
}

// Grader compares answers and records the outcome.
type Grader struct {
	rec Recorder
}

// NewGrader returns a grader that reports to rec. rec may be nil.
func NewGrader(rec Recorder) *Grader {
	return &Grader{rec: rec}
}

// Grade checks answer against item in direction d and records one attempt
// for the item's source word.
func (g *Grader) Grade(item Item, answer string, d Direction) GradeResult {
	expected := d.Expected(item)
	res := GradeResult{
		Correct:  Check(answer, expected),
		Expected: expected,
		Given:    strings.TrimSpace(answer),
	}
	if g.rec != nil {
		g.rec.Record(item.Source, res.Correct)
	}
	return res
}

// Check reports whether answer matches expected after trimming surrounding
// whitespace and ignoring case. There is no partial credit.
func Check(answer, expected string) bool {
	return normalize(answer) == normalize(expected)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
