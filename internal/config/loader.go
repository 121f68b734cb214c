package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/abhisek/kosakata/internal/store"
)

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
//
// The file is path if non-empty, else $KOSAKATA_CONFIG, else
// $XDG_CONFIG_HOME/kosakata/config.yaml. Only the last one may be missing.
// Empty data paths are filled in from the data directory.
func Load(path string) (*Config, error) {
	var cfg Config

	explicitPath := path != ""
	if !explicitPath {
		path = os.Getenv("KOSAKATA_CONFIG")
		explicitPath = path != ""
	}
	if !explicitPath {
		path = DefaultPath()
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		// No file, load from ENV + defaults only.
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.resolvePaths(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// DefaultPath returns $XDG_CONFIG_HOME/kosakata/config.yaml, falling back
// to ~/.config.
func DefaultPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "kosakata", "config.yaml")
	}
	return "config.yaml"
}

func (c *Config) resolvePaths() error {
	if c.Data.Dir == "" {
		dir, err := store.DataDir()
		if err != nil {
			return err
		}
		c.Data.Dir = dir
	}
	if c.Data.DBPath == "" {
		c.Data.DBPath = filepath.Join(c.Data.Dir, "kosakata.db")
	}
	if c.Ledger.Path == "" {
		c.Ledger.Path = filepath.Join(c.Data.Dir, "ledger.csv")
	}
	if c.Log.File == "" {
		c.Log.File = filepath.Join(c.Data.Dir, "kosakata.log")
	}
	return nil
}
