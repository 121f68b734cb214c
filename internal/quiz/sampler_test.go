package quiz

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/kosakata/internal/ledger"
	"github.com/abhisek/kosakata/internal/vocab"
)

func seeded(seed uint64) *Sampler {
	return NewSampler(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

func storeWith(pairs ...vocab.Pair) *vocab.Store {
	s := vocab.New(nil)
	s.Load(pairs)
	return s
}

func sources(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Source
	}
	return out
}

func TestSample_TwoWordScenario(t *testing.T) {
	src := storeWith(vocab.Pair{Source: "makan", Gloss: "eat"}, vocab.Pair{Source: "minum", Gloss: "drink"})

	items := seeded(1).Sample(src, []string{vocab.CategoryOthers}, 2, ledger.New())
	require.Len(t, items, 2)
	assert.ElementsMatch(t, []string{"makan", "minum"}, sources(items))
}

func TestSample_EmptySelection(t *testing.T) {
	items := seeded(1).Sample(vocab.Default(), nil, 20, ledger.New())
	assert.Empty(t, items)

	items = seeded(1).Sample(vocab.Default(), []string{}, 20, ledger.New())
	assert.Empty(t, items)
}

func TestSample_NonPositiveCount(t *testing.T) {
	s := vocab.Default()
	assert.Empty(t, seeded(1).Sample(s, s.Categories(), 0, nil))
	assert.Empty(t, seeded(1).Sample(s, s.Categories(), -4, nil))
}

func TestSample_WholeCategoryWhenCountExceedsSize(t *testing.T) {
	s := vocab.Default()
	want := s.Category(vocab.CategoryTer)
	require.NotEmpty(t, want)

	items := seeded(7).Sample(s, []string{vocab.CategoryTer}, len(want)+10, ledger.New())
	var wantSources []string
	for _, e := range want {
		wantSources = append(wantSources, e.Source)
	}
	assert.ElementsMatch(t, wantSources, sources(items))
}

func TestSample_UnknownCategorySkipped(t *testing.T) {
	s := vocab.Default()
	items := seeded(3).Sample(s, []string{"nope", vocab.CategoryDiscourse}, 5, nil)
	require.Len(t, items, 5)
	for _, it := range items {
		assert.Equal(t, vocab.CategoryDiscourse, it.Category)
	}
}

func TestSample_LengthAndUniqueness(t *testing.T) {
	s := vocab.Default()
	all := s.Categories()
	hist := ledger.New()
	hist.Record("menulis", false)
	hist.Record("menulis", false)
	hist.Record("anak emas", false)

	total := 0
	for _, c := range all {
		total += len(s.Category(c))
	}

	selections := [][]string{
		all,
		all[:2],
		{vocab.CategoryMeN},
		{vocab.CategoryTer, vocab.CategoryPeN, vocab.CategoryIdiom},
	}
	for seed := uint64(0); seed < 20; seed++ {
		for _, cats := range selections {
			avail := 0
			for _, c := range cats {
				avail += len(s.Category(c))
			}
			for _, count := range []int{1, 3, 7, 20, 50, total + 5} {
				name := fmt.Sprintf("seed=%d/cats=%d/count=%d", seed, len(cats), count)
				items := seeded(seed).Sample(s, cats, count, hist)

				assert.Len(t, items, min(count, avail), name)
				seen := make(map[string]bool)
				for _, it := range items {
					assert.False(t, seen[it.Source], "%s: duplicate %q", name, it.Source)
					seen[it.Source] = true
				}
			}
		}
	}
}

func TestSample_SharePerCategory(t *testing.T) {
	s := vocab.Default()
	cats := []string{vocab.CategoryDiscourse, vocab.CategoryIdiom, vocab.CategoryMeN, vocab.CategoryTer}

	items := seeded(11).Sample(s, cats, 8, ledger.New())
	require.Len(t, items, 8)

	per := make(map[string]int)
	for _, it := range items {
		per[it.Category]++
	}
	for _, c := range cats {
		assert.Equal(t, 2, per[c], c)
	}
}

func TestSample_TopUpWhenCategoryIsSmall(t *testing.T) {
	src := storeWith(
		vocab.Pair{Source: "terlupa", Gloss: "forgot"},
		vocab.Pair{Source: "menulis", Gloss: "write"},
		vocab.Pair{Source: "melihat", Gloss: "see"},
		vocab.Pair{Source: "memasak", Gloss: "cook"},
		vocab.Pair{Source: "menjawab", Gloss: "answer"},
	)

	// share = 2, ter- only has one word, so one slot is topped up from meN-.
	items := seeded(5).Sample(src, []string{vocab.CategoryTer, vocab.CategoryMeN}, 4, nil)
	require.Len(t, items, 4)
	assert.Contains(t, sources(items), "terlupa")
}

func TestSample_MissedWordsDrawnMoreOften(t *testing.T) {
	src := storeWith(vocab.Pair{Source: "makan", Gloss: "eat"}, vocab.Pair{Source: "minum", Gloss: "drink"})
	hist := ledger.FromRecords([]ledger.Record{{Word: "makan", Wrong: 5}, {Word: "minum"}})
	sampler := seeded(42)

	makan := 0
	const draws = 1000
	for i := 0; i < draws; i++ {
		items := sampler.Sample(src, []string{vocab.CategoryOthers}, 1, hist)
		require.Len(t, items, 1)
		if items[0].Source == "makan" {
			makan++
		}
	}

	// Expected share is 6/7 (about 857 of 1000).
	assert.Greater(t, makan, 780)
	assert.Less(t, makan, 930)
}

func TestSample_MoreWrongMeansMoreLikely(t *testing.T) {
	src := storeWith(
		vocab.Pair{Source: "makan", Gloss: "eat"},
		vocab.Pair{Source: "minum", Gloss: "drink"},
		vocab.Pair{Source: "tidur", Gloss: "sleep"},
	)
	countFor := func(wrong int) int {
		hist := ledger.FromRecords([]ledger.Record{{Word: "makan", Wrong: wrong}})
		sampler := seeded(99)
		n := 0
		for i := 0; i < 2000; i++ {
			if sampler.Sample(src, []string{vocab.CategoryOthers}, 1, hist)[0].Source == "makan" {
				n++
			}
		}
		return n
	}

	low, high := countFor(0), countFor(4)
	assert.Greater(t, high, low)
}

func TestSample_CallsAreIndependent(t *testing.T) {
	s := vocab.Default()
	sampler := seeded(8)
	first := sources(sampler.Sample(s, s.Categories(), 10, nil))
	second := sources(sampler.Sample(s, s.Categories(), 10, nil))
	assert.Len(t, second, 10)
	assert.NotEqual(t, first, second)
}

func TestSample_ConcurrentCallsShareOneSampler(t *testing.T) {
	s := vocab.Default()
	cats := s.Categories()
	sampler := seeded(7)
	hist := ledger.New()

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				items := sampler.Sample(s, cats, 10, hist)
				assert.Len(t, items, 10)
			}
		}()
	}
	wg.Wait()
}
