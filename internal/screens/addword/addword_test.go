package addword

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/kosakata/internal/screen"
	"github.com/abhisek/kosakata/internal/session"
	"github.com/abhisek/kosakata/internal/vocab"
)

func testScreen() (*AddWordScreen, *session.Service) {
	svc := session.NewService(session.Options{Vocab: vocab.New(nil)})
	s := New(&screen.Env{Sessions: svc})
	s.Init()
	return s, svc
}

func typeText(s *AddWordScreen, text string) {
	for _, r := range text {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

var enter = tea.KeyPressMsg{Code: tea.KeyEnter}

func TestAddWord_AddsAndClassifies(t *testing.T) {
	s, svc := testScreen()
	typeText(s, "terlupa")
	s.Update(enter) // moves to the meaning field
	assert.Equal(t, fieldGloss, s.focus)
	typeText(s, "forgot")
	s.Update(enter)

	require.NotNil(t, s.added)
	assert.Equal(t, vocab.CategoryTer, s.added.Category)
	assert.False(t, s.replaced)
	assert.Equal(t, fieldSource, s.focus)
	assert.Empty(t, s.inputs[fieldSource].Value())

	e, ok := svc.Vocab().Lookup("terlupa")
	require.True(t, ok)
	assert.Equal(t, "forgot", e.Gloss)
	assert.Contains(t, s.View(80, 24), vocab.CategoryTer)
}

func TestAddWord_WarnsOnOverwrite(t *testing.T) {
	s, svc := testScreen()
	_, _, err := svc.AddWord("makan", "eat")
	require.NoError(t, err)

	typeText(s, "makan")
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	typeText(s, "to eat")
	s.Update(enter)

	assert.True(t, s.replaced)
	assert.Contains(t, s.View(100, 24), "already in the word list")
	e, _ := svc.Vocab().Lookup("makan")
	assert.Equal(t, "to eat", e.Gloss)
}

func TestAddWord_RejectsBlankMeaning(t *testing.T) {
	s, svc := testScreen()
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	typeText(s, "   ")
	s.Update(enter)

	assert.Nil(t, s.added)
	assert.NotEmpty(t, s.errMsg)
	assert.Equal(t, 0, svc.Vocab().Len())
}
