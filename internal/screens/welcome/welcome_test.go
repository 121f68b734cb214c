package welcome

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/kosakata/internal/router"
	"github.com/abhisek/kosakata/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return "home" }
func (s *stubScreen) Title() string                          { return "Home" }

func newTestWelcome() (*WelcomeScreen, *int) {
	callCount := 0
	factory := func() screen.Screen {
		callCount++
		return &stubScreen{}
	}
	return New(factory), &callCount
}

func sendTicks(w *WelcomeScreen, n int) tea.Cmd {
	var cmd tea.Cmd
	for i := 0; i < n; i++ {
		_, cmd = w.Update(tickMsg(time.Now()))
	}
	return cmd
}

func TestPhaseTransitions(t *testing.T) {
	w, _ := newTestWelcome()
	assert.NotContains(t, w.View(100, 30), tagline)

	sendTicks(w, 5)
	assert.Equal(t, 500*time.Millisecond, w.elapsed)

	sendTicks(w, 10)
	assert.Equal(t, 1500*time.Millisecond, w.elapsed)
	assert.Contains(t, w.View(100, 30), tagline)
}

func TestElapsedCapped(t *testing.T) {
	w, callCount := newTestWelcome()
	sendTicks(w, 45)
	assert.Equal(t, totalDur, w.elapsed)
	assert.Zero(t, *callCount, "no transition without a key press")
}

func TestKeypressReplacesWithHome(t *testing.T) {
	w, callCount := newTestWelcome()
	sendTicks(w, 3)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	assert.NotNil(t, msg.Screen)
	assert.Equal(t, 1, *callCount)

	// Later keys and ticks do nothing.
	_, cmd = w.Update(tea.KeyPressMsg{Code: 'b'})
	assert.Nil(t, cmd)
	assert.Nil(t, sendTicks(w, 1))
	assert.Equal(t, 1, *callCount)
}

func TestBannerFallsBackWhenNarrow(t *testing.T) {
	assert.Contains(t, RenderBanner(40), bannerCompact)
	assert.NotContains(t, RenderBanner(100), bannerCompact)
}

func TestTitleEmpty(t *testing.T) {
	w, _ := newTestWelcome()
	assert.Empty(t, w.Title())
}
