package llm

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Provider names.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Config holds all LLM provider configuration.
type Config struct {
	Provider string `env:"KOSAKATA_LLM_PROVIDER"`

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds one Generate call including retries.
	Timeout time.Duration `env:"KOSAKATA_LLM_TIMEOUT" env-default:"30s"`
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string `env:"KOSAKATA_ANTHROPIC_API_KEY"`
	Model  string `env:"KOSAKATA_ANTHROPIC_MODEL" env-default:"claude-haiku"`
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string `env:"KOSAKATA_OPENAI_API_KEY"`
	Model   string `env:"KOSAKATA_OPENAI_MODEL" env-default:"gpt-4o-mini"`
	BaseURL string `env:"KOSAKATA_OPENAI_BASE_URL"`
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string `env:"KOSAKATA_GEMINI_API_KEY"`
	Model  string `env:"KOSAKATA_GEMINI_MODEL" env-default:"gemini-flash"`
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string `env:"KOSAKATA_OPENROUTER_API_KEY"`
	Model   string `env:"KOSAKATA_OPENROUTER_MODEL" env-default:"google/gemini-2.5-flash"`
	BaseURL string `env:"KOSAKATA_OPENROUTER_BASE_URL"`
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int           `env:"KOSAKATA_LLM_RETRY_ATTEMPTS" env-default:"3"`
	InitialWait time.Duration `env:"KOSAKATA_LLM_RETRY_WAIT" env-default:"1s"`
	MaxWait     time.Duration `env:"KOSAKATA_LLM_RETRY_MAX_WAIT" env-default:"10s"`
	Multiplier  float64       `env:"KOSAKATA_LLM_RETRY_MULTIPLIER" env-default:"2"`
}

// DefaultConfig returns a Config with sensible defaults and no provider.
func DefaultConfig() Config {
	return Config{
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.5-flash"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv reads KOSAKATA_* variables, applying defaults for unset ones.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read LLM env: %w", err)
	}
	return cfg, nil
}

// DiscoverConfig probes the vendors' own API key variables in priority
// order (Gemini, OpenAI, Anthropic, OpenRouter) and returns a Config for the
// first one found.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	switch {
	case os.Getenv("GEMINI_API_KEY") != "":
		cfg.Provider = ProviderGemini
		cfg.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	case os.Getenv("OPENAI_API_KEY") != "":
		cfg.Provider = ProviderOpenAI
		cfg.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	case os.Getenv("ANTHROPIC_API_KEY") != "":
		cfg.Provider = ProviderAnthropic
		cfg.Anthropic.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	case os.Getenv("OPENROUTER_API_KEY") != "":
		cfg.Provider = ProviderOpenRouter
		cfg.OpenRouter.APIKey = os.Getenv("OPENROUTER_API_KEY")
	default:
		return Config{}, false
	}
	return cfg, true
}

// Resolve returns the configuration to use: KOSAKATA_LLM_PROVIDER when set,
// otherwise whatever DiscoverConfig finds. ok is false when no provider is
// configured, which disables the coach.
func Resolve() (cfg Config, ok bool, err error) {
	cfg, err = ConfigFromEnv()
	if err != nil {
		return Config{}, false, err
	}
	if cfg.Provider != "" {
		return cfg, true, cfg.Validate()
	}
	cfg, ok = DiscoverConfig()
	return cfg, ok, nil
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	var key, envName string
	switch c.Provider {
	case ProviderAnthropic:
		key, envName = c.Anthropic.APIKey, "KOSAKATA_ANTHROPIC_API_KEY"
	case ProviderOpenAI:
		key, envName = c.OpenAI.APIKey, "KOSAKATA_OPENAI_API_KEY"
	case ProviderGemini:
		key, envName = c.Gemini.APIKey, "KOSAKATA_GEMINI_API_KEY"
	case ProviderOpenRouter:
		key, envName = c.OpenRouter.APIKey, "KOSAKATA_OPENROUTER_API_KEY"
	case ProviderMock:
		return nil
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("%s is required for the %s provider", envName, c.Provider)
	}
	return nil
}
