package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

var llmEventColumns = []string{
	"id", "sequence", "timestamp", "provider", "model", "purpose", "input_tokens",
	"output_tokens", "latency_ms", "success", "error_message", "request_body", "response_body",
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	return r.insert(ctx, tableLLMRequestEvents,
		[]string{"provider", "model", "purpose", "input_tokens", "output_tokens", "latency_ms", "success", "error_message", "request_body", "response_body"},
		[]any{data.Provider, data.Model, data.Purpose, data.InputTokens, data.OutputTokens, data.LatencyMs, boolToInt(data.Success), data.ErrorMessage, data.RequestBody, data.ResponseBody},
	)
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error) {
	sel := entsql.Dialect(r.drv.Dialect()).
		Select(llmEventColumns...).
		From(entsql.Table(tableLLMRequestEvents)).
		OrderBy(entsql.Desc("sequence"))
	q, args := applyOpts(sel, opts).Query()
	return r.scanLLMEvents(ctx, q, args)
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int64) (*LLMEvent, error) {
	q, args := entsql.Dialect(r.drv.Dialect()).
		Select(llmEventColumns...).
		From(entsql.Table(tableLLMRequestEvents)).
		Where(entsql.EQ("id", id)).
		Query()
	events, err := r.scanLLMEvents(ctx, q, args)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, nil
	}
	return &events[0], nil
}

func (r *eventRepo) LLMUsage(ctx context.Context, groupBy string) ([]LLMUsage, error) {
	if groupBy != "purpose" && groupBy != "model" {
		return nil, fmt.Errorf("unsupported grouping %q", groupBy)
	}
	q, args := entsql.Dialect(r.drv.Dialect()).
		Select(
			groupBy,
			entsql.Count("*"),
			entsql.Sum("input_tokens"),
			entsql.Sum("output_tokens"),
			entsql.Avg("latency_ms"),
		).
		From(entsql.Table(tableLLMRequestEvents)).
		GroupBy(groupBy).
		OrderBy(groupBy).
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, q, args, &rows); err != nil {
		return nil, fmt.Errorf("query LLM usage: %w", err)
	}
	defer rows.Close()

	var out []LLMUsage
	for rows.Next() {
		var (
			u   LLMUsage
			avg float64
		)
		if err := rows.Scan(&u.Key, &u.Calls, &u.InputTokens, &u.OutputTokens, &avg); err != nil {
			return nil, fmt.Errorf("scan LLM usage: %w", err)
		}
		u.AvgLatencyMs = int64(avg)
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *eventRepo) scanLLMEvents(ctx context.Context, q string, args []any) ([]LLMEvent, error) {
	var rows entsql.Rows
	if err := r.drv.Query(ctx, q, args, &rows); err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}
	defer rows.Close()

	var out []LLMEvent
	for rows.Next() {
		var (
			e       LLMEvent
			ts      int64
			success int
		)
		err := rows.Scan(&e.ID, &e.Sequence, &ts, &e.Provider, &e.Model, &e.Purpose,
			&e.InputTokens, &e.OutputTokens, &e.LatencyMs, &success, &e.ErrorMessage,
			&e.RequestBody, &e.ResponseBody)
		if err != nil {
			return nil, fmt.Errorf("scan LLM event: %w", err)
		}
		e.Timestamp = time.UnixMilli(ts)
		e.Success = success != 0
		out = append(out, e)
	}
	return out, rows.Err()
}
