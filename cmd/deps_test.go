package cmd

import (
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/kosakata/internal/config"
	"github.com/abhisek/kosakata/internal/ledger"
	"github.com/abhisek/kosakata/internal/quiz"
	"github.com/abhisek/kosakata/internal/store"
)

func testCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	t.Setenv("KOSAKATA_DATA_DIR", t.TempDir())
	t.Setenv("KOSAKATA_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("config", "", "")
	cmd.Flags().String("db", "", "")
	cmd.Flags().String("ledger", "", "")
	require.NoError(t, cmd.Flags().Parse(args))
	return cmd
}

func TestLoadConfig_FlagsOverridePaths(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "x.db")
	csv := filepath.Join(dir, "x.csv")

	cfg, err := loadConfig(testCommand(t, "--db", db, "--ledger", csv))
	require.NoError(t, err)
	assert.Equal(t, db, cfg.Data.DBPath)
	assert.Equal(t, csv, cfg.Ledger.Path)
}

func TestDeps_LedgerBackend(t *testing.T) {
	dir := t.TempDir()
	st, err := store.Open(filepath.Join(dir, "k.db"))
	require.NoError(t, err)
	defer st.Close()

	cfg := &config.Config{}
	cfg.Ledger.Backend = config.BackendCSV
	cfg.Ledger.Path = filepath.Join(dir, "ledger.csv")
	d := &deps{cfg: cfg, store: st}
	assert.IsType(t, &ledger.CSVRepo{}, d.ledgerRepo())

	cfg.Ledger.Backend = config.BackendSQLite
	assert.IsType(t, &store.LedgerRepo{}, d.ledgerRepo())

	d.store = nil
	assert.Nil(t, d.ledgerRepo())
	assert.Nil(t, d.events())
}

func TestDeps_Limits(t *testing.T) {
	cfg := &config.Config{Quiz: config.QuizConfig{MinCount: 5, MaxCount: 50, DefaultCount: 10, Direction: "en-ms"}}
	d := &deps{cfg: cfg}
	lim := d.limits()
	assert.Equal(t, 5, lim.MinCount)
	assert.Equal(t, 50, lim.MaxCount)
	assert.Equal(t, 10, lim.DefaultCount)
	assert.Equal(t, quiz.GlossToSource, lim.Direction)
}
