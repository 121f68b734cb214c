package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenRouterProvider(t *testing.T) {
	t.Run("model passes through unmapped", func(t *testing.T) {
		p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or-test", Model: "anthropic/claude-haiku-4.5"})
		require.NoError(t, err)
		assert.Equal(t, "anthropic/claude-haiku-4.5", p.ModelID())
	})

	t.Run("empty API key", func(t *testing.T) {
		_, err := NewOpenRouterProvider(OpenRouterConfig{Model: "google/gemini-2.5-flash"})
		assert.Error(t, err)
	})
}

func TestOpenRouterProvider_UsesBaseURL(t *testing.T) {
	hit := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
		assert.Equal(t, "Bearer sk-or-test", r.Header.Get("Authorization"))
		assert.Equal(t, "kosakata", r.Header.Get("X-Title"))
		assert.Equal(t, openRouterReferer, r.Header.Get("HTTP-Referer"))
		openaiReply(`{"tips":[]}`, "stop")(w, r)
	}))
	defer server.Close()

	p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or-test", Model: "google/gemini-2.5-flash", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = p.Generate(context.Background(), UserRequest("", "x", testSchema))
	require.NoError(t, err)
	assert.True(t, hit)
}
