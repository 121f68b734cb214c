// Package llm talks to hosted language models behind one small interface.
// Providers return JSON that has already been checked against the request
// schema.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates one response per request.
type Provider interface {
	// Generate sends req and returns the model output. When req.Schema is
	// set the provider asks for structured output and validates it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID is the model the provider sends requests to.
	ModelID() string
}

// Request is a single-turn or multi-turn prompt.
type Request struct {
	System   string
	Messages []Message

	// Schema, when non-nil, is the JSON Schema the reply must satisfy.
	Schema *Schema

	MaxTokens   int
	Temperature float64 // 0 means the provider default
}

// UserRequest is a Request with a single user message.
func UserRequest(system, user string, schema *Schema) Request {
	return Request{
		System:   system,
		Messages: []Message{{Role: RoleUser, Content: user}},
		Schema:   schema,
	}
}

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema. Name doubles as the cache key for the
// compiled validator, so it must be unique per definition.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Stop reasons reported in Response.StopReason.
const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
)

// Response holds the LLM's output.
type Response struct {
	// Content is validated JSON when a schema was requested, raw model text
	// otherwise.
	Content    json.RawMessage
	Usage      Usage
	Model      string
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

func newUsage(in, out int) Usage {
	return Usage{InputTokens: in, OutputTokens: out, TotalTokens: in + out}
}

// finish validates content against the request schema and assembles the
// Response. Truncated structured output is reported as ErrMaxTokensExceeded.
func finish(req Request, content json.RawMessage, usage Usage, model, stop string) (*Response, error) {
	if req.Schema != nil {
		if stop == StopMaxTokens {
			return nil, &ErrMaxTokensExceeded{Content: content}
		}
		if err := validateResponse(req.Schema, content); err != nil {
			return nil, err
		}
	}
	return &Response{
		Content:    content,
		Usage:      usage,
		Model:      model,
		StopReason: stop,
	}, nil
}

// resolveModel maps a friendly model name to a provider model ID. Unknown
// names are used as given.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
