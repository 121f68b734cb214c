package settings

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	q "github.com/abhisek/kosakata/internal/quiz"
	"github.com/abhisek/kosakata/internal/router"
	"github.com/abhisek/kosakata/internal/screen"
	quizscreen "github.com/abhisek/kosakata/internal/screens/quiz"
	"github.com/abhisek/kosakata/internal/session"
	"github.com/abhisek/kosakata/internal/vocab"
)

func testEnv() *screen.Env {
	v := vocab.New(nil)
	v.Load([]vocab.Pair{
		{Source: "terlupa", Gloss: "forgot"},
		{Source: "menulis", Gloss: "write"},
		{Source: "buku", Gloss: "book"},
	})
	return &screen.Env{Sessions: session.NewService(session.Options{Vocab: v})}
}

func press(s *SettingsScreen, keys ...tea.KeyPressMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = s.Update(k)
	}
	return cmd
}

var (
	down       = tea.KeyPressMsg{Code: tea.KeyDown}
	right      = tea.KeyPressMsg{Code: tea.KeyRight}
	left       = tea.KeyPressMsg{Code: tea.KeyLeft}
	shiftRight = tea.KeyPressMsg{Code: tea.KeyRight, Mod: tea.ModShift}
	shiftLeft  = tea.KeyPressMsg{Code: tea.KeyLeft, Mod: tea.ModShift}
	space      = tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	enter      = tea.KeyPressMsg{Code: tea.KeyEnter}
	keyA       = tea.KeyPressMsg{Code: 'a', Text: "a"}
)

func TestSettings_DefaultsSelectEverything(t *testing.T) {
	env := testEnv()
	s := New(env)
	assert.True(t, s.checklist.AllChecked())
	assert.Equal(t, session.DefaultLimits.DefaultCount, s.settings.Count)
	assert.Equal(t, q.SourceToGloss, s.settings.Direction)
	assert.Contains(t, s.View(80, 24), "all selected")
}

func TestSettings_DirectionToggle(t *testing.T) {
	env := testEnv()
	s := New(env)
	press(s, right)
	assert.Equal(t, q.GlossToSource, env.Settings.Direction)
	press(s, space)
	assert.Equal(t, q.SourceToGloss, env.Settings.Direction)
}

func TestSettings_CountSteps(t *testing.T) {
	env := testEnv()
	s := New(env)
	press(s, down)

	press(s, right)
	assert.Equal(t, 21, env.Settings.Count)
	press(s, shiftRight)
	assert.Equal(t, 26, env.Settings.Count)
	press(s, shiftLeft, left)
	assert.Equal(t, 20, env.Settings.Count)

	for range 10 {
		press(s, shiftLeft)
	}
	assert.Equal(t, session.DefaultLimits.MinCount, env.Settings.Count)

	for range 30 {
		press(s, shiftRight)
	}
	assert.Equal(t, session.DefaultLimits.MaxCount, env.Settings.Count)
}

func TestSettings_CategoryToggles(t *testing.T) {
	env := testEnv()
	s := New(env)
	first := s.checklist.Options[0]

	press(s, down, down, space)
	assert.NotContains(t, env.Settings.Categories, first)
	assert.Len(t, env.Settings.Categories, len(s.checklist.Options)-1)

	// a selects everything when something is unchecked, then clears all.
	press(s, keyA)
	assert.Len(t, env.Settings.Categories, len(s.checklist.Options))
	press(s, keyA)
	assert.Empty(t, env.Settings.Categories)
	assert.Contains(t, s.View(80, 24), "No category selected")
}

func TestSettings_StartReplacesWithQuiz(t *testing.T) {
	env := testEnv()
	s := New(env)
	cmd := press(s, enter)
	require.NotNil(t, cmd)

	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &quizscreen.QuizScreen{}, msg.Screen)
	require.NotNil(t, env.Settings)
}

func TestSettings_EnterOnCategoryToggles(t *testing.T) {
	env := testEnv()
	s := New(env)
	cmd := press(s, down, down, enter)
	assert.Nil(t, cmd)
	assert.False(t, s.checklist.Checked(0))
}

func TestSettings_KeepsExistingSettings(t *testing.T) {
	env := testEnv()
	env.Settings = &session.Settings{Direction: q.GlossToSource, Count: 7, Categories: []string{vocab.CategoryTer}}
	s := New(env)
	assert.Equal(t, 7, s.settings.Count)
	assert.Equal(t, []string{vocab.CategoryTer}, s.checklist.Selected())
}
