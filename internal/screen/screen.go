// Package screen defines the contract between the router and the screens.
package screen

import (
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/kosakata/internal/coach"
	"github.com/abhisek/kosakata/internal/session"
	"github.com/abhisek/kosakata/internal/store"
	"github.com/abhisek/kosakata/internal/ui/layout"
)

// Screen is one panel of the app.
type Screen interface {
	Init() tea.Cmd

	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content area between header and footer.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider is implemented by screens with their own footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Env carries the services shared by every screen.
type Env struct {
	Sessions *session.Service

	// Events is nil when the event store could not be opened.
	Events store.EventRepo

	// Coach is nil when no LLM provider is configured.
	Coach *coach.Service

	// Settings are the current quiz settings, edited by the settings screen
	// and read whenever a quiz starts or restarts.
	Settings *session.Settings

	Logger *zap.Logger
}

// CurrentSettings returns the configured settings, or the service defaults.
func (e *Env) CurrentSettings() session.Settings {
	if e.Settings == nil {
		s := e.Sessions.DefaultSettings()
		e.Settings = &s
	}
	return *e.Settings
}

// Log returns Logger, or a no-op logger.
func (e *Env) Log() *zap.Logger {
	if e == nil || e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}
