package vocab

import (
	"errors"
	"sort"
	"strings"
	"sync"
)

// ErrEmptyWord is returned when a source word or gloss is blank.
var ErrEmptyWord = errors.New("source word and gloss must not be empty")

// Entry is a classified vocabulary word.
type Entry struct {
	Source   string
	Gloss    string
	Category string
}

// Store is the in-memory vocabulary for one running process. Words are
// classified once, when they are inserted.
type Store struct {
	mu      sync.RWMutex
	rules   []Rule
	order   []string
	entries map[string]Entry
}

// New creates an empty Store that classifies words with rules.
func New(rules []Rule) *Store {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Store{
		rules:   rules,
		order:   categoryOrder(rules),
		entries: make(map[string]Entry),
	}
}

// Default creates a Store seeded with BuiltinWords and the default rules.
func Default() *Store {
	s := New(DefaultRules())
	s.Load(BuiltinWords)
	return s
}

// Load inserts every pair, skipping blank ones. Later duplicates replace
// earlier ones.
func (s *Store) Load(pairs []Pair) {
	for _, p := range pairs {
		_, _, _ = s.Add(p.Source, p.Gloss)
	}
}

// Add inserts or replaces a word. replaced reports whether an entry with the
// same source word existed before.
func (s *Store) Add(source, gloss string) (entry Entry, replaced bool, err error) {
	source = strings.TrimSpace(source)
	gloss = strings.TrimSpace(gloss)
	if source == "" || gloss == "" {
		return Entry{}, false, ErrEmptyWord
	}

	entry = Entry{
		Source:   source,
		Gloss:    gloss,
		Category: Classify(s.rules, source),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, replaced = s.entries[source]
	s.entries[source] = entry
	return entry, replaced, nil
}

// Lookup returns the entry for a source word.
func (s *Store) Lookup(source string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[strings.TrimSpace(source)]
	return e, ok
}

// Len returns the number of words.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Words returns every source word, sorted.
func (s *Store) Words() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	words := make([]string, 0, len(s.entries))
	for w := range s.entries {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Categories returns the names of all non-empty categories in rule order.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := s.countsLocked()
	var out []string
	for _, name := range s.order {
		if counts[name] > 0 {
			out = append(out, name)
		}
	}
	return out
}

// CategorySizes returns the number of words per category.
func (s *Store) CategorySizes() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.countsLocked()
}

// Category returns a copy of the entries in the named category, sorted by
// source word. Unknown categories yield nil.
func (s *Store) Category(name string) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Entry
	for _, e := range s.entries {
		if e.Category == name {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Source < out[j].Source })
	return out
}

func (s *Store) countsLocked() map[string]int {
	counts := make(map[string]int, len(s.order))
	for _, e := range s.entries {
		counts[e.Category]++
	}
	return counts
}
