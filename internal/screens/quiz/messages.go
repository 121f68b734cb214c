package quiz

import sess "github.com/abhisek/kosakata/internal/session"

// startedMsg carries a freshly sampled session.
type startedMsg struct {
	Session *sess.Session
}
