package vocab

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_DefaultRules(t *testing.T) {
	rules := DefaultRules()
	tests := []struct {
		word string
		want string
	}{
		{"selain itu", CategoryDiscourse},
		{"kemudian", CategoryDiscourse},
		{"pertama", CategoryDiscourse},
		{"anak emas", CategoryIdiom},
		{"pakwe", CategoryIdiom},
		{"kaki lima", CategoryIdiom}, // unknown phrase
		{"membesarkan", CategoryMeNKan},
		{"menaiki", CategoryMeNI},
		{"membeli", CategoryMeN},
		{"mencuci", CategoryMeN},
		{"menulis", CategoryMeN},
		{"pembacaan", CategoryPeNAn},
		{"kesakitan", CategoryPeNAn},
		{"pencuri", CategoryPeN},
		{"terlupa", CategoryTer},
		{"tetap", CategoryOthers},
		{"makanan", CategoryOthers},
		{"  MENULIS ", CategoryMeN},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(rules, tt.word))
		})
	}
}

func TestClassify_FirstMatchWins(t *testing.T) {
	// A phrase starting with "pe" belongs to exactly one category.
	rules := []Rule{
		{Category: "phrases", Match: IsPhrase},
		{Category: "pe", Match: Affix("pe", "")},
	}
	assert.Equal(t, "phrases", Classify(rules, "pergi sana"))
	assert.Equal(t, "pe", Classify(rules, "pergi"))
}

func TestClassify_NoMatchFallsBackToOthers(t *testing.T) {
	rules := []Rule{{Category: "me", Match: Affix("me", "")}}
	assert.Equal(t, CategoryOthers, Classify(rules, "buku"))
}

func TestAffix_RequiresStem(t *testing.T) {
	m := Affix("me", "kan")
	assert.False(t, m("mekan"))
	assert.True(t, m("mekkan"))
	assert.False(t, m("me kan"))
}

func TestBuiltinWords_CoverEveryCategory(t *testing.T) {
	s := Default()
	want := []string{
		CategoryDiscourse, CategoryIdiom, CategoryMeNKan, CategoryMeN,
		CategoryMeNI, CategoryPeNAn, CategoryPeN, CategoryTer, CategoryOthers,
	}
	assert.ElementsMatch(t, want, s.Categories())
}

func TestBuiltinWords_TerBlockHoldsOnlyTerWords(t *testing.T) {
	s := Default()
	for _, e := range s.Category(CategoryTer) {
		assert.True(t, strings.HasPrefix(e.Source, "ter"), e.Source)
	}

	tetap, ok := s.Lookup("tetap")
	assert.True(t, ok)
	assert.Equal(t, CategoryOthers, tetap.Category)
}
