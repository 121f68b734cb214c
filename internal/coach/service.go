package coach

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/kosakata/internal/llm"
	"github.com/abhisek/kosakata/internal/session"
)

// ErrNoMisses is returned when there is nothing to explain.
var ErrNoMisses = errors.New("coach: no missed words")

// Service explains missed words with an LLM.
type Service struct {
	provider llm.Provider
	cfg      Config
	now      func() time.Time
}

// NewService creates a coach backed by provider.
func NewService(provider llm.Provider, cfg Config) *Service {
	if cfg.MaxWords <= 0 {
		cfg.MaxWords = DefaultConfig().MaxWords
	}
	return &Service{provider: provider, cfg: cfg, now: time.Now}
}

type tipsOutput struct {
	Tips []struct {
		Word        string `json:"word"`
		Example     string `json:"example"`
		Translation string `json:"translation"`
		MemoryHook  string `json:"memory_hook"`
	} `json:"tips"`
	Encouragement string `json:"encouragement"`
}

// Explain sends one request covering up to Config.MaxWords misses. Tips for
// words that were not asked about are dropped and the rest follow the
// order of in.Misses.
func (s *Service) Explain(ctx context.Context, in Input) (*Tips, error) {
	misses := dedupe(in.Misses)
	if len(misses) == 0 {
		return nil, ErrNoMisses
	}
	if len(misses) > s.cfg.MaxWords {
		misses = misses[:s.cfg.MaxWords]
	}

	ctx = llm.DefaultPurpose(ctx, "coach")
	req := llm.UserRequest(systemPrompt, buildUserMessage(in.Direction, misses), TipsSchema)
	req.MaxTokens = s.cfg.MaxTokens
	req.Temperature = s.cfg.Temperature

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("coach request: %w", err)
	}

	var out tipsOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse coach response: %w", err)
	}

	byWord := make(map[string]int, len(out.Tips))
	for i, t := range out.Tips {
		if _, dup := byWord[t.Word]; !dup {
			byWord[t.Word] = i
		}
	}

	tips := &Tips{
		Encouragement: out.Encouragement,
		Model:         resp.Model,
		GeneratedAt:   s.now(),
	}
	for _, m := range misses {
		i, ok := byWord[m.Item.Source]
		if !ok {
			continue
		}
		t := out.Tips[i]
		tips.Words = append(tips.Words, Tip{
			Word:        m.Item.Source,
			Gloss:       m.Item.Gloss,
			Example:     t.Example,
			Translation: t.Translation,
			MemoryHook:  t.MemoryHook,
		})
	}
	return tips, nil
}

func dedupe(misses []session.Miss) []session.Miss {
	seen := make(map[string]bool, len(misses))
	out := make([]session.Miss, 0, len(misses))
	for _, m := range misses {
		if seen[m.Item.Source] {
			continue
		}
		seen[m.Item.Source] = true
		out = append(out, m)
	}
	return out
}
