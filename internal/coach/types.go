// Package coach asks a language model to explain the words a learner just
// got wrong.
package coach

import (
	"time"

	"github.com/abhisek/kosakata/internal/quiz"
	"github.com/abhisek/kosakata/internal/session"
)

// Input is what the coach needs to know about a finished quiz.
type Input struct {
	Direction quiz.Direction
	Misses    []session.Miss
}

// Tip explains one missed word.
type Tip struct {
	Word        string // Malay source word
	Gloss       string
	Example     string // Malay example sentence
	Translation string // English translation of Example
	MemoryHook  string
}

// Tips is the coach's reply for one quiz.
type Tips struct {
	Words         []Tip
	Encouragement string
	Model         string
	GeneratedAt   time.Time
}
