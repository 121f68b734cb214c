package llm

import "strings"

// ModelCost is USD per million tokens.
type ModelCost struct {
	InputPerMTok  float64
	OutputPerMTok float64
}

// Cost returns the USD cost of a request with the given token counts.
func (c ModelCost) Cost(inputTokens, outputTokens int) float64 {
	return float64(inputTokens)*c.InputPerMTok/1_000_000 +
		float64(outputTokens)*c.OutputPerMTok/1_000_000
}

// LookupCost returns the price of modelID, or nil when unknown. Dated
// snapshots ("claude-haiku-4-5-20251001") and vendor-prefixed OpenRouter
// IDs ("google/gemini-2.5-flash") resolve to their base model.
func LookupCost(modelID string) *ModelCost {
	if c, ok := modelCosts[modelID]; ok {
		return &c
	}
	if _, rest, ok := strings.Cut(modelID, "/"); ok {
		return LookupCost(rest)
	}
	best := ""
	for id := range modelCosts {
		if strings.HasPrefix(modelID, id+"-") && len(id) > len(best) {
			best = id
		}
	}
	if best == "" {
		return nil
	}
	c := modelCosts[best]
	return &c
}

// Prices for the models the providers resolve to, plus common alternatives.
var modelCosts = map[string]ModelCost{
	"claude-haiku-4-5":  {1, 5},
	"claude-sonnet-4-5": {3, 15},
	"claude-opus-4-5":   {5, 25},
	"claude-3-5-haiku":  {0.8, 4},

	"gpt-4o":       {2.5, 10},
	"gpt-4o-mini":  {0.15, 0.6},
	"gpt-4.1":      {2, 8},
	"gpt-4.1-mini": {0.4, 1.6},
	"gpt-4.1-nano": {0.1, 0.4},
	"gpt-5-mini":   {0.25, 2},

	"gemini-2.0-flash":      {0.1, 0.4},
	"gemini-2.5-flash":      {0.3, 2.5},
	"gemini-2.5-flash-lite": {0.1, 0.4},
	"gemini-2.5-pro":        {1.25, 10},
}
