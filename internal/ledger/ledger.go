// Package ledger tracks how often each word was answered correctly and
// wrongly, and persists those tallies between runs.
package ledger

import (
	"sort"
	"sync"
)

// Record is the attempt tally for one word. Counters never decrease.
type Record struct {
	Word    string
	Correct int
	Wrong   int
}

// Attempts returns the total number of graded attempts.
func (r Record) Attempts() int { return r.Correct + r.Wrong }

// Ledger holds at most one Record per word. All methods are safe for
// concurrent use.
type Ledger struct {
	mu      sync.Mutex
	records map[string]Record
	order   []string
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{records: make(map[string]Record)}
}

// FromRecords builds a ledger from persisted rows. A later row for the same
// word replaces an earlier one.
func FromRecords(rows []Record) *Ledger {
	l := New()
	for _, r := range rows {
		if r.Correct < 0 {
			r.Correct = 0
		}
		if r.Wrong < 0 {
			r.Wrong = 0
		}
		l.putLocked(r)
	}
	return l
}

// Get returns the record for word.
func (l *Ledger) Get(word string) (Record, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	r, ok := l.records[word]
	return r, ok
}

// WrongCount returns the wrong tally for word, or 0 when it has none.
func (l *Ledger) WrongCount(word string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.records[word].Wrong
}

// Record increments exactly one counter for word, creating its record on
// first use, and returns the updated record.
func (l *Ledger) Record(word string, correct bool) Record {
	l.mu.Lock()
	defer l.mu.Unlock()
	r, ok := l.records[word]
	if !ok {
		r = Record{Word: word}
	}
	if correct {
		r.Correct++
	} else {
		r.Wrong++
	}
	l.putLocked(r)
	return r
}

// Ensure adds zero records for words the ledger has never seen.
// It reports how many were added.
func (l *Ledger) Ensure(words ...string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	added := 0
	for _, w := range words {
		if _, ok := l.records[w]; ok || w == "" {
			continue
		}
		l.putLocked(Record{Word: w})
		added++
	}
	return added
}

// Len returns the number of records.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}

// Snapshot returns an independent copy of the ledger.
func (l *Ledger) Snapshot() *Ledger {
	l.mu.Lock()
	defer l.mu.Unlock()
	cp := &Ledger{
		records: make(map[string]Record, len(l.records)),
		order:   append([]string(nil), l.order...),
	}
	for k, v := range l.records {
		cp.records[k] = v
	}
	return cp
}

// Records returns every record sorted by word.
func (l *Ledger) Records() []Record {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Record, 0, len(l.records))
	for _, r := range l.records {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Word < out[j].Word })
	return out
}

// ByWrong returns every record, most wrong answers first. Ties go to the
// word with more attempts, then alphabetically.
func (l *Ledger) ByWrong() []Record {
	out := l.Records()
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Wrong != out[j].Wrong {
			return out[i].Wrong > out[j].Wrong
		}
		return out[i].Attempts() > out[j].Attempts()
	})
	return out
}

// Rows returns every record in insertion order, which is the order rows
// were read from storage followed by words first seen in this run.
func (l *Ledger) Rows() []Record {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Record, 0, len(l.order))
	for _, w := range l.order {
		out = append(out, l.records[w])
	}
	return out
}

// Totals sums the correct and wrong counters across all words.
func (l *Ledger) Totals() (correct, wrong int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, r := range l.records {
		correct += r.Correct
		wrong += r.Wrong
	}
	return correct, wrong
}

func (l *Ledger) putLocked(r Record) {
	if _, ok := l.records[r.Word]; !ok {
		l.order = append(l.order, r.Word)
	}
	l.records[r.Word] = r
}
