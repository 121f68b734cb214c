package ledger

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// ErrCorrupt is returned when persisted ledger data cannot be parsed.
var ErrCorrupt = errors.New("ledger data is corrupt")

// Repo loads and saves a whole ledger.
type Repo interface {
	// Load returns the persisted ledger. A missing store yields an empty
	// ledger and no error.
	Load(ctx context.Context) (*Ledger, error)

	// Save replaces the persisted ledger with l.
	Save(ctx context.Context, l *Ledger) error
}

// LoadOrEmpty loads the ledger from repo. Any failure is logged and an empty
// ledger is returned so a broken file never blocks a quiz.
func LoadOrEmpty(ctx context.Context, repo Repo, logger *zap.Logger) *Ledger {
	if logger == nil {
		logger = zap.NewNop()
	}
	if repo == nil {
		return New()
	}
	l, err := repo.Load(ctx)
	if err != nil {
		logger.Warn("load ledger failed, starting empty", zap.Error(err))
		return New()
	}
	logger.Debug("ledger loaded", zap.Int("records", l.Len()))
	return l
}
