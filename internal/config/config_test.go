package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/kosakata/internal/quiz"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

// isolate points every lookup at an empty temp tree.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("HOME", dir)
	for _, k := range []string{
		"KOSAKATA_CONFIG", "KOSAKATA_DATA_DIR", "KOSAKATA_DB", "KOSAKATA_LEDGER",
		"KOSAKATA_LEDGER_BACKEND", "KOSAKATA_QUIZ_MIN_COUNT", "KOSAKATA_QUIZ_MAX_COUNT",
		"KOSAKATA_QUIZ_DEFAULT_COUNT", "KOSAKATA_QUIZ_DIRECTION", "KOSAKATA_LOG_LEVEL", "KOSAKATA_LOG_FILE",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	dataDir := filepath.Join(dir, "data", "kosakata")
	assert.Equal(t, dataDir, cfg.Data.Dir)
	assert.Equal(t, filepath.Join(dataDir, "kosakata.db"), cfg.Data.DBPath)
	assert.Equal(t, filepath.Join(dataDir, "ledger.csv"), cfg.Ledger.Path)
	assert.Equal(t, filepath.Join(dataDir, "kosakata.log"), cfg.Log.File)
	assert.Equal(t, BackendCSV, cfg.Ledger.Backend)
	assert.Equal(t, QuizConfig{MinCount: 3, MaxCount: 100, DefaultCount: 20, Direction: "ms-en"}, cfg.Quiz)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := isolate(t)
	path := writeYAML(t, dir, `
data:
  dir: "/tmp/kk"
ledger:
  backend: sqlite
quiz:
  min_count: 5
  max_count: 30
  default_count: 10
  direction: en-ms
log:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/kk", cfg.Data.Dir)
	assert.Equal(t, filepath.Join("/tmp/kk", "kosakata.db"), cfg.Data.DBPath)
	assert.Equal(t, BackendSQLite, cfg.Ledger.Backend)
	assert.Equal(t, 10, cfg.Quiz.DefaultCount)
	assert.Equal(t, quiz.GlossToSource, cfg.Quiz.ParsedDirection())
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	dir := isolate(t)
	path := writeYAML(t, dir, "quiz:\n  default_count: 10\n")
	t.Setenv("KOSAKATA_CONFIG", path)
	t.Setenv("KOSAKATA_QUIZ_DEFAULT_COUNT", "15")
	t.Setenv("KOSAKATA_LEDGER", "/tmp/custom.csv")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 15, cfg.Quiz.DefaultCount)
	assert.Equal(t, "/tmp/custom.csv", cfg.Ledger.Path)
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	dir := isolate(t)
	_, err := Load(filepath.Join(dir, "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Ledger: LedgerConfig{Backend: BackendCSV},
			Quiz:   QuizConfig{MinCount: 3, MaxCount: 100, DefaultCount: 20, Direction: "ms-en"},
			Log:    LogConfig{Level: "info"},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"backend", func(c *Config) { c.Ledger.Backend = "postgres" }},
		{"min", func(c *Config) { c.Quiz.MinCount = 0 }},
		{"max below min", func(c *Config) { c.Quiz.MaxCount = 2 }},
		{"default out of range", func(c *Config) { c.Quiz.DefaultCount = 101 }},
		{"direction", func(c *Config) { c.Quiz.Direction = "fr-en" }},
		{"log level", func(c *Config) { c.Log.Level = "loud" }},
	}

	base := valid()
	require.NoError(t, base.Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}
