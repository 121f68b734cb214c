package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/kosakata/internal/app"
	"github.com/abhisek/kosakata/internal/coach"
	"github.com/abhisek/kosakata/internal/llm"
	"github.com/abhisek/kosakata/internal/screen"
)

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	d, err := openDeps(cmd)
	if err != nil {
		return err
	}
	defer d.Close()

	if d.storeErr != nil {
		fmt.Fprintln(os.Stderr, "Event database unavailable:", d.storeErr)
		fmt.Fprintln(os.Stderr, "History will be unavailable.")
	}

	env := &screen.Env{
		Sessions: d.sessions(ctx),
		Events:   d.events(),
		Logger:   d.logger,
	}

	coachSvc, err := newCoach(ctx, d)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "The word coach will be unavailable.")
	}
	env.Coach = coachSvc

	return app.Run(ctx, env)
}

// newCoach returns nil and no error when no provider is configured.
func newCoach(ctx context.Context, d *deps) (*coach.Service, error) {
	provider, err := newProvider(ctx, d)
	if err != nil || provider == nil {
		return nil, err
	}
	return coach.NewService(provider, coach.DefaultConfig()), nil
}

func newProvider(ctx context.Context, d *deps) (llm.Provider, error) {
	cfg, ok, err := llm.Resolve()
	if err != nil {
		return nil, err
	}
	if !ok {
		d.logger.Info("no LLM provider configured")
		return nil, nil
	}
	var recorder llm.RequestRecorder
	if events := d.events(); events != nil {
		recorder = events
	}
	provider, err := llm.NewProvider(ctx, cfg, recorder, d.logger)
	if err != nil {
		return nil, err
	}
	d.logger.Info("LLM provider ready", zap.String("provider", cfg.Provider), zap.String("model", provider.ModelID()))
	return provider, nil
}
