package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/kosakata/internal/vocab"
)

func TestMatchCategory(t *testing.T) {
	categories := []string{vocab.CategoryMeNKan, vocab.CategoryMeN, vocab.CategoryTer, vocab.CategoryOthers}

	got, ok := matchCategory(categories, "ter- WORDS")
	assert.True(t, ok)
	assert.Equal(t, vocab.CategoryTer, got)

	got, ok = matchCategory(categories, "oth")
	assert.True(t, ok)
	assert.Equal(t, vocab.CategoryOthers, got)

	// An exact match wins over an earlier prefix match.
	got, ok = matchCategory(categories, "men- verbs")
	assert.True(t, ok)
	assert.Equal(t, vocab.CategoryMeN, got)

	_, ok = matchCategory(categories, "nouns")
	assert.False(t, ok)
}
