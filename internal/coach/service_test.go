package coach

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/kosakata/internal/llm"
	"github.com/abhisek/kosakata/internal/quiz"
	"github.com/abhisek/kosakata/internal/session"
)

func miss(source, gloss, category, given string) session.Miss {
	item := quiz.Item{Source: source, Gloss: gloss, Category: category}
	return session.Miss{Item: item, Prompt: source, Expected: gloss, Given: given}
}

const reply = `{
	"tips": [
		{"word": "terlupa", "example": "Saya terlupa membawa buku.", "translation": "I forgot to bring my book.", "memory_hook": "lupa means forget; ter- makes it accidental."},
		{"word": "makan", "example": "Kami makan nasi.", "translation": "We eat rice.", "memory_hook": "makanan is food."},
		{"word": "kereta", "example": "Kereta itu merah.", "translation": "That car is red.", "memory_hook": "not asked"}
	],
	"encouragement": "Bagus, teruskan!"
}`

func TestExplain(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(reply)})
	svc := NewService(mock, DefaultConfig())

	tips, err := svc.Explain(context.Background(), Input{
		Direction: quiz.SourceToGloss,
		Misses: []session.Miss{
			miss("makan", "eat", "Others", "drink"),
			miss("terlupa", "forgot", "ter- words", ""),
		},
	})
	require.NoError(t, err)

	require.Len(t, tips.Words, 2)
	assert.Equal(t, "makan", tips.Words[0].Word)
	assert.Equal(t, "eat", tips.Words[0].Gloss)
	assert.Equal(t, "We eat rice.", tips.Words[0].Translation)
	assert.Equal(t, "terlupa", tips.Words[1].Word)
	assert.Equal(t, "Bagus, teruskan!", tips.Encouragement)
	assert.Equal(t, "mock", tips.Model)
	assert.False(t, tips.GeneratedAt.IsZero())

	calls := mock.Calls()
	require.Len(t, calls, 1)
	req := calls[0]
	assert.Equal(t, TipsSchema, req.Schema)
	assert.Equal(t, systemPrompt, req.System)
	msg := req.Messages[0].Content
	assert.Contains(t, msg, "Malay → English")
	assert.Contains(t, msg, `- makan = eat [Others]; student answered "drink"`)
	assert.Contains(t, msg, `student answered "(blank)"`)
}

func TestExplain_NoMisses(t *testing.T) {
	mock := llm.NewMockProvider()
	_, err := NewService(mock, DefaultConfig()).Explain(context.Background(), Input{})
	assert.ErrorIs(t, err, ErrNoMisses)
	assert.Zero(t, mock.CallCount())
}

func TestExplain_CapsAndDedupes(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"tips":[],"encouragement":"ok"}`)})
	cfg := DefaultConfig()
	cfg.MaxWords = 3
	svc := NewService(mock, cfg)

	var misses []session.Miss
	for i := range 6 {
		misses = append(misses, miss(fmt.Sprintf("kata%d", i), "word", "Others", ""))
	}
	misses = append([]session.Miss{misses[0]}, misses...)

	tips, err := svc.Explain(context.Background(), Input{Direction: quiz.GlossToSource, Misses: misses})
	require.NoError(t, err)
	assert.Empty(t, tips.Words)

	msg := mock.Calls()[0].Messages[0].Content
	assert.Equal(t, 3, strings.Count(msg, "\n- kata"))
	assert.Equal(t, 1, strings.Count(msg, "- kata0 "))
	assert.NotContains(t, msg, "kata3")
}

func TestExplain_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("offline")})
	_, err := NewService(mock, DefaultConfig()).Explain(context.Background(), Input{
		Misses: []session.Miss{miss("makan", "eat", "Others", "")},
	})
	assert.ErrorContains(t, err, "offline")
}

func TestExplain_SchemaViolation(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"tips":[{"word":"makan"}],"encouragement":""}`)})
	_, err := NewService(mock, DefaultConfig()).Explain(context.Background(), Input{
		Misses: []session.Miss{miss("makan", "eat", "Others", "")},
	})
	var inv *llm.ErrInvalidResponse
	assert.ErrorAs(t, err, &inv)
}
