package coach

// Config holds generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64

	// MaxWords caps how many misses are sent in one request.
	MaxWords int
}

// DefaultConfig returns the settings used by the app.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.4,
		MaxWords:    10,
	}
}
