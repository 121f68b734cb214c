package llm

import (
	"fmt"
	"net/http"
)

const (
	defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"
	openRouterReferer        = "https://github.com/abhisek/kosakata"
	openRouterTitle          = "kosakata"
)

// OpenRouterProvider talks to OpenRouter, which speaks the OpenAI API.
// Requests carry the app attribution headers OpenRouter reads.
type OpenRouterProvider struct {
	*OpenAIProvider
}

// NewOpenRouterProvider creates a provider targeting the OpenRouter API.
// Model names are vendor-prefixed ("google/gemini-2.5-flash") and pass
// through unmapped.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}
	client := &http.Client{Transport: attribution{base: http.DefaultTransport}}
	return &OpenRouterProvider{OpenAIProvider: newOpenAICompatible(cfg.APIKey, baseURL, cfg.Model, client)}, nil
}

type attribution struct {
	base http.RoundTripper
}

func (a attribution) RoundTrip(r *http.Request) (*http.Response, error) {
	r = r.Clone(r.Context())
	r.Header.Set("HTTP-Referer", openRouterReferer)
	r.Header.Set("X-Title", openRouterTitle)
	return a.base.RoundTrip(r)
}
