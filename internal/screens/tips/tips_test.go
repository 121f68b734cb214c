package tips

import (
	"encoding/json"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/kosakata/internal/coach"
	"github.com/abhisek/kosakata/internal/llm"
	"github.com/abhisek/kosakata/internal/quiz"
	"github.com/abhisek/kosakata/internal/session"
)

func testInput() coach.Input {
	return Input(quiz.SourceToGloss, []session.Miss{{
		Item:     quiz.Item{Source: "terlupa", Gloss: "forgot", Category: "ter- words"},
		Prompt:   "terlupa",
		Expected: "forgot",
		Given:    "forget",
	}})
}

func TestTipsScreen_LoadsAndRenders(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"tips": [{"word": "terlupa", "example": "Saya terlupa.", "translation": "I forgot.", "memory_hook": "ter- means it just happened"}],
		"encouragement": "Hampir!"
	}`)})
	s := New(coach.NewService(mock, coach.DefaultConfig()), testInput())

	require.NotNil(t, s.Init())
	assert.True(t, s.loading)
	assert.Contains(t, s.View(80, 24), "Asking the coach")

	msg := s.explainCmd()()
	s.Update(msg)
	assert.False(t, s.loading)
	require.NotNil(t, s.tips)

	view := s.View(80, 30)
	assert.Contains(t, view, "terlupa")
	assert.Contains(t, view, "Saya terlupa.")
	assert.Contains(t, view, "Hampir!")
	assert.Equal(t, 1, mock.CallCount())

	// Returning to the screen does not ask again.
	assert.Nil(t, s.Init())
}

func TestTipsScreen_ProviderError(t *testing.T) {
	s := New(coach.NewService(llm.NewMockProvider(), coach.DefaultConfig()), testInput())
	s.Init()
	s.Update(s.explainCmd()())

	assert.Error(t, s.err)
	assert.Contains(t, s.View(80, 24), "Coach unavailable")
}

func TestTipsScreen_NoCoach(t *testing.T) {
	s := New(nil, testInput())
	assert.Nil(t, s.Init())
	assert.Contains(t, s.View(80, 24), "no language model")
}

func TestTipsScreen_SpinnerStopsAfterLoad(t *testing.T) {
	s := New(nil, testInput())
	s.loading = true
	_, cmd := s.Update(spinnerTickMsg{})
	assert.NotNil(t, cmd)
	assert.Equal(t, 1, s.frame)

	s.loading = false
	_, cmd = s.Update(spinnerTickMsg{})
	assert.Nil(t, cmd)
}

func TestTipsScreen_EnterPops(t *testing.T) {
	s := New(nil, testInput())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.NotNil(t, cmd)
}
