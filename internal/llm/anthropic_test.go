package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAnthropicProvider(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p, err := NewAnthropicProvider(
		AnthropicConfig{APIKey: "test-key", Model: "claude-haiku"},
		option.WithBaseURL(server.URL),
		option.WithMaxRetries(0),
	)
	require.NoError(t, err)
	return p
}

func anthropicReply(text, stop string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":          "msg_test",
			"type":        "message",
			"role":        "assistant",
			"content":     []map[string]any{{"type": "text", "text": text}},
			"model":       "claude-haiku-4-5",
			"stop_reason": stop,
			"usage":       map[string]any{"input_tokens": 50, "output_tokens": 30},
		})
	}
}

func anthropicError(status int, kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]any{
			"type":  "error",
			"error": map[string]any{"type": kind, "message": "nope"},
		})
	}
}

func TestAnthropicProvider_HappyPath(t *testing.T) {
	var body map[string]any
	p := newTestAnthropicProvider(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		anthropicReply(`{"tips":[{"word":"makan","tip":"think of makanan, food"}]}`, "end_turn")(w, r)
	})

	resp, err := p.Generate(context.Background(), Request{
		System:    "You are a Malay tutor.",
		Messages:  []Message{{Role: RoleUser, Content: "Explain my mistakes."}},
		Schema:    testSchema,
		MaxTokens: 256,
	})
	require.NoError(t, err)
	assert.Equal(t, 50, resp.Usage.InputTokens)
	assert.Equal(t, 80, resp.Usage.TotalTokens)
	assert.Equal(t, StopEnd, resp.StopReason)
	assert.Equal(t, "claude-haiku-4-5", resp.Model)

	assert.Equal(t, "claude-haiku-4-5", body["model"])
	assert.Contains(t, body, "system")
}

func TestAnthropicProvider_SchemaMismatch(t *testing.T) {
	p := newTestAnthropicProvider(t, anthropicReply(`{"tips":"none"}`, "end_turn"))
	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "x"}},
		Schema:    testSchema,
		MaxTokens: 100,
	})
	var inv *ErrInvalidResponse
	assert.ErrorAs(t, err, &inv)
}

func TestAnthropicProvider_Truncated(t *testing.T) {
	p := newTestAnthropicProvider(t, anthropicReply(`{"tips":[`, "max_tokens"))
	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "x"}},
		Schema:    testSchema,
		MaxTokens: 10,
	})
	var maxTok *ErrMaxTokensExceeded
	assert.ErrorAs(t, err, &maxTok)
}

func TestAnthropicProvider_Errors(t *testing.T) {
	t.Run("rate limit", func(t *testing.T) {
		p := newTestAnthropicProvider(t, anthropicError(http.StatusTooManyRequests, "rate_limit_error"))
		_, err := p.Generate(context.Background(), UserRequest("", "x", nil))
		var rl *ErrRateLimit
		assert.ErrorAs(t, err, &rl)
	})
	t.Run("rate limit with retry-after", func(t *testing.T) {
		p := newTestAnthropicProvider(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Retry-After", "7")
			anthropicError(http.StatusTooManyRequests, "rate_limit_error")(w, r)
		})
		_, err := p.Generate(context.Background(), UserRequest("", "x", nil))
		var rl *ErrRateLimit
		require.ErrorAs(t, err, &rl)
		assert.Equal(t, 7*time.Second, rl.RetryAfter)
	})
	t.Run("server error", func(t *testing.T) {
		p := newTestAnthropicProvider(t, anthropicError(http.StatusInternalServerError, "api_error"))
		_, err := p.Generate(context.Background(), UserRequest("", "x", nil))
		var unavail *ErrProviderUnavailable
		assert.ErrorAs(t, err, &unavail)
	})
}

func TestNewAnthropicProvider_RequiresKey(t *testing.T) {
	_, err := NewAnthropicProvider(AnthropicConfig{Model: "claude-haiku"})
	assert.Error(t, err)
}

func TestAnthropicModelMapping(t *testing.T) {
	assert.Equal(t, "claude-sonnet-4-5", resolveModel("claude-sonnet", anthropicModels))
	assert.Equal(t, "claude-haiku-4-5", resolveModel("claude-haiku", anthropicModels))
	assert.Equal(t, "claude-opus-4-5", resolveModel("claude-opus-4-5", anthropicModels))
}
