package config

import (
	"fmt"
	"strings"

	"github.com/abhisek/kosakata/internal/quiz"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	switch c.Ledger.Backend {
	case BackendCSV, BackendSQLite:
	default:
		return fmt.Errorf("ledger.backend must be %q or %q (got %q)", BackendCSV, BackendSQLite, c.Ledger.Backend)
	}

	if err := c.Quiz.validate(); err != nil {
		return fmt.Errorf("quiz: %w", err)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error (got %q)", c.Log.Level)
	}
	return nil
}

func (q *QuizConfig) validate() error {
	if q.MinCount < 1 {
		return fmt.Errorf("min_count must be >= 1 (got %d)", q.MinCount)
	}
	if q.MaxCount < q.MinCount {
		return fmt.Errorf("max_count must be >= min_count (got %d < %d)", q.MaxCount, q.MinCount)
	}
	if q.DefaultCount < q.MinCount || q.DefaultCount > q.MaxCount {
		return fmt.Errorf("default_count must be within [%d, %d] (got %d)", q.MinCount, q.MaxCount, q.DefaultCount)
	}
	if _, err := quiz.ParseDirection(q.Direction); err != nil {
		return fmt.Errorf("direction: %w", err)
	}
	return nil
}

// ParsedDirection returns the configured default direction. It is only
// meaningful after Validate succeeded.
func (q QuizConfig) ParsedDirection() quiz.Direction {
	d, err := quiz.ParseDirection(q.Direction)
	if err != nil {
		return quiz.SourceToGloss
	}
	return d
}
