// Package quiz selects quiz items from the vocabulary and grades answers.
package quiz

import (
	"math/rand/v2"
	"sync"

	"github.com/abhisek/kosakata/internal/vocab"
)

// Item is one question of a quiz.
type Item struct {
	Source   string
	Gloss    string
	Category string
}

// Source supplies the entries of a named category.
type Source interface {
	Category(name string) []vocab.Entry
}

// History supplies the wrong-answer tally used to weight selection.
type History interface {
	WrongCount(word string) int
}

// Sampler draws quiz items, favouring words that were missed before. It is
// safe for concurrent use.
type Sampler struct {
	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

// NewSampler returns a sampler drawing from rng. A nil rng uses a randomly
// seeded source.
func NewSampler(rng *rand.Rand) *Sampler {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Sampler{rng: rng}
}

// Sample returns up to count distinct items from the given categories.
//
// With one category the whole count is drawn from it by weight. With several,
// each contributes max(1, count/len(categories)) weighted picks and any
// shortfall is filled by an unweighted draw from everything not yet picked.
// The result is shuffled and truncated to count. Unknown or empty categories
// contribute nothing.
func (s *Sampler) Sample(src Source, categories []string, count int, hist History) []Item {
	if count <= 0 || len(categories) == 0 || src == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	pools := make([][]Item, 0, len(categories))
	seen := make(map[string]bool)
	for _, name := range categories {
		if seen[name] {
			continue
		}
		seen[name] = true
		pools = append(pools, toItems(src.Category(name)))
	}

	var selected []Item
	if len(pools) == 1 {
		selected = s.weighted(pools[0], count, hist)
	} else {
		share := max(1, count/len(pools))
		picked := make(map[string]bool)
		var rest []Item
		for _, pool := range pools {
			got := s.weighted(pool, share, hist)
			for _, it := range got {
				picked[it.Source] = true
			}
			selected = append(selected, got...)
		}
		if len(selected) < count {
			for _, pool := range pools {
				for _, it := range pool {
					if !picked[it.Source] {
						picked[it.Source] = true
						rest = append(rest, it)
					}
				}
			}
			selected = append(selected, s.uniform(rest, count-len(selected))...)
		}
	}

	s.rng.Shuffle(len(selected), func(i, j int) {
		selected[i], selected[j] = selected[j], selected[i]
	})
	if len(selected) > count {
		selected = selected[:count]
	}
	return selected
}

// weighted draws n items without replacement, each with weight wrong+1.
func (s *Sampler) weighted(pool []Item, n int, hist History) []Item {
	if n >= len(pool) {
		return append([]Item(nil), pool...)
	}
	remaining := append([]Item(nil), pool...)
	weights := make([]float64, len(remaining))
	for i, it := range remaining {
		weights[i] = float64(wrongCount(hist, it.Source) + 1)
	}

	out := make([]Item, 0, n)
	for len(out) < n && len(remaining) > 0 {
		i := s.pick(weights)
		out = append(out, remaining[i])
		last := len(remaining) - 1
		remaining[i], weights[i] = remaining[last], weights[last]
		remaining, weights = remaining[:last], weights[:last]
	}
	return out
}

// pick returns an index chosen proportionally to weights. A non-positive
// total falls back to a uniform choice.
func (s *Sampler) pick(weights []float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return s.rng.IntN(len(weights))
	}
	r := s.rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r < 0 {
			return i
		}
	}
	return len(weights) - 1
}

func (s *Sampler) uniform(pool []Item, n int) []Item {
	if n <= 0 || len(pool) == 0 {
		return nil
	}
	perm := s.rng.Perm(len(pool))
	if n > len(pool) {
		n = len(pool)
	}
	out := make([]Item, n)
	for i := range n {
		out[i] = pool[perm[i]]
	}
	return out
}

func wrongCount(hist History, word string) int {
	if hist == nil {
		return 0
	}
	if n := hist.WrongCount(word); n > 0 {
		return n
	}
	return 0
}

func toItems(entries []vocab.Entry) []Item {
	items := make([]Item, len(entries))
	for i, e := range entries {
		items[i] = Item{Source: e.Source, Gloss: e.Gloss, Category: e.Category}
	}
	return items
}
