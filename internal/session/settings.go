package session

import "github.com/abhisek/kosakata/internal/quiz"

// Limits bounds the question count a learner may choose.
type Limits struct {
	MinCount     int
	MaxCount     int
	DefaultCount int
	Direction    quiz.Direction
}

// DefaultLimits are used when no configuration overrides them.
var DefaultLimits = Limits{
	MinCount:     3,
	MaxCount:     100,
	DefaultCount: 20,
	Direction:    quiz.SourceToGloss,
}

// Settings are the choices made on the configuration panel.
type Settings struct {
	Direction  quiz.Direction
	Count      int
	Categories []string
}

// DefaultSettings selects every category with the default count and
// direction.
func DefaultSettings(lim Limits, categories []string) Settings {
	return Settings{
		Direction:  lim.Direction,
		Count:      lim.DefaultCount,
		Categories: append([]string(nil), categories...),
	}.Normalize(lim)
}

// Normalize clamps Count into the limits and replaces an unknown direction
// with the default one.
func (s Settings) Normalize(lim Limits) Settings {
	if lim.MinCount <= 0 {
		lim.MinCount = 1
	}
	if lim.MaxCount < lim.MinCount {
		lim.MaxCount = lim.MinCount
	}
	s.Count = max(lim.MinCount, min(lim.MaxCount, s.Count))
	if !s.Direction.Valid() {
		s.Direction = lim.Direction
		if !s.Direction.Valid() {
			s.Direction = quiz.SourceToGloss
		}
	}
	return s
}
