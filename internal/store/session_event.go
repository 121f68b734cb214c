package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	cats := data.Categories
	if cats == nil {
		cats = []string{}
	}
	catsJSON, err := json.Marshal(cats)
	if err != nil {
		return fmt.Errorf("marshal categories: %w", err)
	}

	return r.insert(ctx, tableSessionEvents,
		[]string{"session_id", "action", "direction", "categories", "questions", "correct", "duration_ms"},
		[]any{data.SessionID, data.Action, data.Direction, string(catsJSON), data.Questions, data.Correct, data.Duration.Milliseconds()},
	)
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	return r.insert(ctx, tableAnswerEvents,
		[]string{"session_id", "word", "category", "direction", "prompt", "expected", "given", "correct"},
		[]any{data.SessionID, data.Word, data.Category, data.Direction, data.Prompt, data.Expected, data.Given, boolToInt(data.Correct)},
	)
}

func (r *eventRepo) QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummary, error) {
	sel := entsql.Dialect(r.drv.Dialect()).
		Select("sequence", "timestamp", "session_id", "direction", "categories", "questions", "correct", "duration_ms").
		From(entsql.Table(tableSessionEvents)).
		Where(entsql.EQ("action", ActionEnd)).
		OrderBy(entsql.Desc("sequence"))
	q, args := applyOpts(sel, opts).Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, q, args, &rows); err != nil {
		return nil, fmt.Errorf("query session summaries: %w", err)
	}
	defer rows.Close()

	var out []SessionSummary
	for rows.Next() {
		var (
			s          SessionSummary
			ts, durMs  int64
			categories string
		)
		if err := rows.Scan(&s.Sequence, &ts, &s.SessionID, &s.Direction, &categories, &s.Questions, &s.Correct, &durMs); err != nil {
			return nil, fmt.Errorf("scan session summary: %w", err)
		}
		s.Timestamp = time.UnixMilli(ts)
		s.Duration = time.Duration(durMs) * time.Millisecond
		if err := json.Unmarshal([]byte(categories), &s.Categories); err != nil {
			return nil, fmt.Errorf("decode categories of session %s: %w", s.SessionID, err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *eventRepo) WordHistory(ctx context.Context, word string, limit int) ([]AnswerRecord, error) {
	return r.queryAnswers(ctx, entsql.EQ("word", word), entsql.Desc("sequence"), limit)
}

func (r *eventRepo) SessionAnswers(ctx context.Context, sessionID string) ([]AnswerRecord, error) {
	return r.queryAnswers(ctx, entsql.EQ("session_id", sessionID), "sequence", 0)
}

func (r *eventRepo) queryAnswers(ctx context.Context, where *entsql.Predicate, order string, limit int) ([]AnswerRecord, error) {
	sel := entsql.Dialect(r.drv.Dialect()).
		Select("sequence", "timestamp", "session_id", "word", "direction", "expected", "given", "correct").
		From(entsql.Table(tableAnswerEvents)).
		Where(where).
		OrderBy(order)
	if limit > 0 {
		sel = sel.Limit(limit)
	}
	q, args := sel.Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, q, args, &rows); err != nil {
		return nil, fmt.Errorf("query answers: %w", err)
	}
	defer rows.Close()

	var out []AnswerRecord
	for rows.Next() {
		var (
			a       AnswerRecord
			ts      int64
			correct int
		)
		if err := rows.Scan(&a.Sequence, &ts, &a.SessionID, &a.Word, &a.Direction, &a.Expected, &a.Given, &correct); err != nil {
			return nil, fmt.Errorf("scan answer: %w", err)
		}
		a.Timestamp = time.UnixMilli(ts)
		a.Correct = correct != 0
		out = append(out, a)
	}
	return out, rows.Err()
}
