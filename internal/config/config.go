// Package config loads kosakata settings from an optional YAML file and
// the environment.
package config

// Ledger backends.
const (
	BackendCSV    = "csv"
	BackendSQLite = "sqlite"
)

// Config is the root application configuration.
type Config struct {
	Data   DataConfig   `yaml:"data"`
	Ledger LedgerConfig `yaml:"ledger"`
	Quiz   QuizConfig   `yaml:"quiz"`
	Log    LogConfig    `yaml:"log"`
}

// DataConfig holds on-disk locations. Empty values are derived from Dir.
type DataConfig struct {
	Dir    string `yaml:"dir" env:"KOSAKATA_DATA_DIR"`
	DBPath string `yaml:"db"  env:"KOSAKATA_DB"`
}

// LedgerConfig selects where attempt tallies are kept.
type LedgerConfig struct {
	Backend string `yaml:"backend" env:"KOSAKATA_LEDGER_BACKEND" env-default:"csv"`
	Path    string `yaml:"path"    env:"KOSAKATA_LEDGER"`
}

// QuizConfig bounds the configuration panel.
type QuizConfig struct {
	MinCount     int    `yaml:"min_count"     env:"KOSAKATA_QUIZ_MIN_COUNT"     env-default:"3"`
	MaxCount     int    `yaml:"max_count"     env:"KOSAKATA_QUIZ_MAX_COUNT"     env-default:"100"`
	DefaultCount int    `yaml:"default_count" env:"KOSAKATA_QUIZ_DEFAULT_COUNT" env-default:"20"`
	Direction    string `yaml:"direction"     env:"KOSAKATA_QUIZ_DIRECTION"     env-default:"ms-en"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level" env:"KOSAKATA_LOG_LEVEL" env-default:"info"`
	File  string `yaml:"file"  env:"KOSAKATA_LOG_FILE"`
}
