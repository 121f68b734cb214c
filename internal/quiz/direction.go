package quiz

import (
	"fmt"
	"strings"
)

// Direction selects which side of a word pair is shown and which is typed.
type Direction string

const (
	// SourceToGloss shows the Malay word and expects the English gloss.
	SourceToGloss Direction = "ms-en"
	// GlossToSource shows the English gloss and expects the Malay word.
	GlossToSource Direction = "en-ms"
)

// ParseDirection accepts the wire values plus a few spelled-out aliases.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ms-en", "malay-english", "source":
		return SourceToGloss, nil
	case "en-ms", "english-malay", "gloss":
		return GlossToSource, nil
	}
	return "", fmt.Errorf("unknown direction %q (want ms-en or en-ms)", s)
}

// Valid reports whether d is one of the known directions.
func (d Direction) Valid() bool {
	return d == SourceToGloss || d == GlossToSource
}

// Toggle returns the opposite direction.
func (d Direction) Toggle() Direction {
	if d == GlossToSource {
		return SourceToGloss
	}
	return GlossToSource
}

// Label is the human-readable name used in the UI.
func (d Direction) Label() string {
	if d == GlossToSource {
		return "English → Malay"
	}
	return "Malay → English"
}

// Prompt returns the side of item shown to the learner.
func (d Direction) Prompt(item Item) string {
	if d == GlossToSource {
		return item.Gloss
	}
	return item.Source
}

// Expected returns the side of item the learner must type.
func (d Direction) Expected(item Item) string {
	if d == GlossToSource {
		return item.Source
	}
	return item.Gloss
}
