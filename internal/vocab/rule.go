package vocab

import "strings"

// Category names produced by DefaultRules, in rule order.
const (
	CategoryDiscourse = "Penanda Wacana"
	CategoryIdiom     = "Simpulan Bahasa"
	CategoryMeNKan    = "meN-kan verbs"
	CategoryMeNI      = "meN-i verbs"
	CategoryMeN       = "meN- verbs"
	CategoryPeNAn     = "peN-/ke-an nouns"
	CategoryPeN       = "peN- nouns"
	CategoryTer       = "ter- words"
	CategoryOthers    = "Others"
)

// Rule assigns a category to every word its Match function accepts.
// Rules are evaluated in order and the first match wins.
type Rule struct {
	Category string
	Match    func(word string) bool
}

// DefaultRules returns the built-in classification for Malay vocabulary.
// Lexicon rules come first so that fixed expressions are never claimed by
// the prefix rules below them.
func DefaultRules() []Rule {
	return []Rule{
		{Category: CategoryDiscourse, Match: InLexicon(discourseMarkers...)},
		{Category: CategoryIdiom, Match: InLexicon(idioms...)},
		{Category: CategoryIdiom, Match: IsPhrase},
		{Category: CategoryMeNKan, Match: Affix("me", "kan")},
		{Category: CategoryMeN, Match: InLexicon(meNRootsEndingInI...)},
		{Category: CategoryMeNI, Match: Affix("me", "i")},
		{Category: CategoryMeN, Match: Affix("me", "")},
		{Category: CategoryPeNAn, Match: AnyOf(Affix("pe", "an"), Affix("ke", "an"))},
		{Category: CategoryPeN, Match: Affix("pe", "")},
		{Category: CategoryTer, Match: Affix("ter", "")},
		{Category: CategoryOthers, Match: func(string) bool { return true }},
	}
}

// Classify returns the category of the first rule matching word, or
// CategoryOthers when none does.
func Classify(rules []Rule, word string) string {
	w := normalize(word)
	for _, r := range rules {
		if r.Match != nil && r.Match(w) {
			return r.Category
		}
	}
	return CategoryOthers
}

// InLexicon matches words contained in the given list.
func InLexicon(words ...string) func(string) bool {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[normalize(w)] = struct{}{}
	}
	return func(word string) bool {
		_, ok := set[normalize(word)]
		return ok
	}
}

// IsPhrase matches multi-word entries.
func IsPhrase(word string) bool {
	return len(strings.Fields(word)) > 1
}

// Affix matches single words with the given prefix and suffix. An empty
// suffix matches any ending. The stem left between them must be non-empty.
func Affix(prefix, suffix string) func(string) bool {
	return func(word string) bool {
		w := normalize(word)
		if IsPhrase(w) {
			return false
		}
		if !strings.HasPrefix(w, prefix) || !strings.HasSuffix(w, suffix) {
			return false
		}
		return len(w) > len(prefix)+len(suffix)
	}
}

// AnyOf matches when any of the given matchers does.
func AnyOf(matchers ...func(string) bool) func(string) bool {
	return func(word string) bool {
		for _, m := range matchers {
			if m(word) {
				return true
			}
		}
		return false
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// categoryOrder returns the distinct category names of rules in order.
func categoryOrder(rules []Rule) []string {
	seen := make(map[string]bool, len(rules))
	var out []string
	for _, r := range rules {
		if seen[r.Category] {
			continue
		}
		seen[r.Category] = true
		out = append(out, r.Category)
	}
	if !seen[CategoryOthers] {
		out = append(out, CategoryOthers)
	}
	return out
}
