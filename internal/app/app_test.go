package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/kosakata/internal/ledger"
	"github.com/abhisek/kosakata/internal/router"
	"github.com/abhisek/kosakata/internal/screen"
	"github.com/abhisek/kosakata/internal/screens/history"
	"github.com/abhisek/kosakata/internal/screens/home"
	"github.com/abhisek/kosakata/internal/session"
	"github.com/abhisek/kosakata/internal/ui/layout"
	"github.com/abhisek/kosakata/internal/vocab"
)

func testModel() AppModel {
	v := vocab.New(nil)
	v.Load([]vocab.Pair{{Source: "makan", Gloss: "eat"}})
	l := ledger.FromRecords([]ledger.Record{{Word: "makan", Correct: 4, Wrong: 2}})
	env := &screen.Env{Sessions: session.NewService(session.Options{Vocab: v, Ledger: l})}
	return newAppModel(env)
}

func resized(t *testing.T, m AppModel, w, h int) AppModel {
	t.Helper()
	next, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return next.(AppModel)
}

func TestApp_HeaderShowsTotals(t *testing.T) {
	m := resized(t, testModel(), 100, 30)
	stats := m.stats()
	assert.Equal(t, layout.Stats{Words: 1, Correct: 4, Wrong: 2}, stats)
	assert.NotNil(t, m.View())
}

func TestApp_TooSmall(t *testing.T) {
	m := resized(t, testModel(), 30, 10)
	assert.NotNil(t, m.View())
}

func TestApp_CtrlCQuits(t *testing.T) {
	m := testModel()
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_EscOnlyPopsAboveHome(t *testing.T) {
	m := testModel()
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd)

	m.router.Push(home.New(m.env))
	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}

func TestApp_SplashThenHome(t *testing.T) {
	m := testModel()
	require.NotNil(t, m.Init())

	next, cmd := m.Update(tea.KeyPressMsg{Code: ' ', Text: " "})
	require.NotNil(t, cmd)
	m = next.(AppModel)
	m.Update(cmd())
	assert.IsType(t, &home.HomeScreen{}, m.router.Active())
	assert.Equal(t, 1, m.router.Depth())
}

func TestApp_FooterUsesScreenHints(t *testing.T) {
	m := testModel()
	hints := m.footerHints(m.router.Active())
	assert.Equal(t, "Enter", hints[1].Key)

	m.router.Push(history.New(nil))
	hints = m.footerHints(m.router.Active())
	assert.Equal(t, "Enter", hints[0].Key)
	assert.Equal(t, "Ctrl+C", hints[len(hints)-1].Key)
}
