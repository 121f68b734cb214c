package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/kosakata/internal/config"
	"github.com/abhisek/kosakata/internal/ledger"
	"github.com/abhisek/kosakata/internal/logging"
	"github.com/abhisek/kosakata/internal/session"
	"github.com/abhisek/kosakata/internal/store"
	"github.com/abhisek/kosakata/internal/vocab"
)

// deps holds what every command needs. store is nil when the database
// could not be opened; storeErr says why.
type deps struct {
	cfg      *config.Config
	logger   *zap.Logger
	store    *store.Store
	storeErr error
}

// loadConfig reads the config file and applies the persistent flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.Data.DBPath = p
	}
	if p, _ := cmd.Flags().GetString("ledger"); p != "" {
		cfg.Ledger.Path = p
	}
	return cfg, nil
}

func openDeps(cmd *cobra.Command) (*deps, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}

	d := &deps{cfg: cfg, logger: logger}
	d.store, d.storeErr = store.Open(cfg.Data.DBPath)
	if d.storeErr != nil {
		logger.Warn("open event store failed", zap.String("path", cfg.Data.DBPath), zap.Error(d.storeErr))
	}
	return d, nil
}

// requireStore returns the open store or the reason it is missing.
func (d *deps) requireStore() (*store.Store, error) {
	if d.store == nil {
		return nil, fmt.Errorf("open database %s: %w", d.cfg.Data.DBPath, d.storeErr)
	}
	return d.store, nil
}

// events returns the event repo, or nil without a store.
func (d *deps) events() store.EventRepo {
	if d.store == nil {
		return nil
	}
	return d.store.EventRepo()
}

// ledgerRepo returns the configured backend, or nil when the sqlite backend
// is selected but the store is unavailable.
func (d *deps) ledgerRepo() ledger.Repo {
	if d.cfg.Ledger.Backend == config.BackendSQLite {
		if d.store == nil {
			return nil
		}
		return d.store.LedgerRepo()
	}
	return ledger.NewCSVRepo(d.cfg.Ledger.Path)
}

func (d *deps) limits() session.Limits {
	q := d.cfg.Quiz
	return session.Limits{
		MinCount:     q.MinCount,
		MaxCount:     q.MaxCount,
		DefaultCount: q.DefaultCount,
		Direction:    q.ParsedDirection(),
	}
}

// sessions builds the quiz service over the built-in vocabulary and the
// persisted ledger.
func (d *deps) sessions(ctx context.Context) *session.Service {
	repo := d.ledgerRepo()
	if repo == nil {
		d.logger.Warn("ledger backend unavailable, answers will not be saved",
			zap.String("backend", d.cfg.Ledger.Backend))
	}
	return session.NewService(session.Options{
		Vocab:  vocab.Default(),
		Ledger: ledger.LoadOrEmpty(ctx, repo, d.logger),
		Repo:   repo,
		Events: d.events(),
		Limits: d.limits(),
		Logger: d.logger,
	})
}

func (d *deps) Close() {
	if d.store != nil {
		d.store.Close()
	}
	_ = d.logger.Sync()
}
