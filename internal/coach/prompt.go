package coach

import (
	"fmt"
	"strings"

	"github.com/abhisek/kosakata/internal/quiz"
	"github.com/abhisek/kosakata/internal/session"
)

const systemPrompt = `You are a friendly Bahasa Melayu tutor helping an English-speaking secondary school student revise vocabulary. Keep every sentence short and use everyday Malaysian Malay.`

func buildUserMessage(d quiz.Direction, misses []session.Miss) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Quiz direction: %s\n\n", d.Label())
	b.WriteString("Missed words:\n")
	for _, m := range misses {
		given := m.Given
		if strings.TrimSpace(given) == "" {
			given = "(blank)"
		}
		fmt.Fprintf(&b, "- %s = %s [%s]; student answered %q\n",
			m.Item.Source, m.Item.Gloss, m.Item.Category, given)
	}

	b.WriteString(`
Instructions:
For every missed word, in the order given:
1. Repeat the Malay word exactly in "word".
2. Write one example sentence in Malay of at most 12 words.
3. Translate that sentence into English.
4. Give a one-sentence memory hook. For affixed words (meN-, peN-, ter-, ke-an) name the root word and what the affix adds. For idioms (simpulan bahasa) give the literal meaning.
Then add one short sentence of encouragement.`)

	return b.String()
}
