package ledger

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_LazyCreateAndIncrement(t *testing.T) {
	l := New()
	_, ok := l.Get("makan")
	assert.False(t, ok)
	assert.Equal(t, 0, l.WrongCount("makan"))

	r := l.Record("makan", false)
	assert.Equal(t, Record{Word: "makan", Wrong: 1}, r)

	r = l.Record("makan", true)
	assert.Equal(t, Record{Word: "makan", Correct: 1, Wrong: 1}, r)
	assert.Equal(t, 2, r.Attempts())
	assert.Equal(t, 1, l.Len())
}

func TestRecord_ConcurrentIncrementsAreNotLost(t *testing.T) {
	l := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			l.Record("minum", i%2 == 0)
		}(i)
	}
	wg.Wait()

	r, ok := l.Get("minum")
	require.True(t, ok)
	assert.Equal(t, 25, r.Correct)
	assert.Equal(t, 25, r.Wrong)
}

func TestSnapshot_IsIndependent(t *testing.T) {
	l := New()
	l.Record("makan", false)

	snap := l.Snapshot()
	l.Record("makan", false)
	l.Record("minum", true)

	assert.Equal(t, 1, snap.WrongCount("makan"))
	assert.Equal(t, 1, snap.Len())
	assert.Equal(t, 2, l.WrongCount("makan"))
}

func TestEnsure_AddsOnlyMissingWords(t *testing.T) {
	l := FromRecords([]Record{{Word: "makan", Correct: 2, Wrong: 1}})

	added := l.Ensure("makan", "minum", "", "tidur")
	assert.Equal(t, 2, added)

	r, _ := l.Get("makan")
	assert.Equal(t, Record{Word: "makan", Correct: 2, Wrong: 1}, r)
	r, _ = l.Get("minum")
	assert.Equal(t, Record{Word: "minum"}, r)
}

func TestRecordsSortedRowsInOrder(t *testing.T) {
	l := FromRecords([]Record{
		{Word: "tidur", Wrong: 1},
		{Word: "makan", Correct: 1},
	})
	l.Record("anak", true)

	var sorted, ordered []string
	for _, r := range l.Records() {
		sorted = append(sorted, r.Word)
	}
	for _, r := range l.Rows() {
		ordered = append(ordered, r.Word)
	}
	assert.Equal(t, []string{"anak", "makan", "tidur"}, sorted)
	assert.Equal(t, []string{"tidur", "makan", "anak"}, ordered)

	correct, wrong := l.Totals()
	assert.Equal(t, 2, correct)
	assert.Equal(t, 1, wrong)
}

func TestFromRecords_ClampsNegatives(t *testing.T) {
	l := FromRecords([]Record{{Word: "x", Correct: -3, Wrong: -1}})
	r, _ := l.Get("x")
	assert.Equal(t, Record{Word: "x"}, r)
}

func TestByWrong(t *testing.T) {
	l := FromRecords([]Record{
		{Word: "anak", Correct: 5},
		{Word: "makan", Wrong: 2},
		{Word: "tidur", Correct: 3, Wrong: 2},
		{Word: "buku", Wrong: 2},
	})

	var words []string
	for _, r := range l.ByWrong() {
		words = append(words, r.Word)
	}
	assert.Equal(t, []string{"tidur", "buku", "makan", "anak"}, words)
}
