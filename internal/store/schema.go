package store

import (
	"context"
	"database/sql"
	"fmt"
)

const (
	tableSessionEvents    = "session_events"
	tableAnswerEvents     = "answer_events"
	tableLLMRequestEvents = "llm_request_events"
	tableAttempts         = "attempts"
)

// Timestamps are unix milliseconds. Every event row carries the global
// sequence number assigned by sequenceCounter.
var ddl = []string{
	`CREATE TABLE IF NOT EXISTS session_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence INTEGER NOT NULL UNIQUE,
		timestamp INTEGER NOT NULL,
		session_id TEXT NOT NULL,
		action TEXT NOT NULL,
		direction TEXT NOT NULL DEFAULT '',
		categories TEXT NOT NULL DEFAULT '[]',
		questions INTEGER NOT NULL DEFAULT 0,
		correct INTEGER NOT NULL DEFAULT 0,
		duration_ms INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS session_events_session_id ON session_events (session_id)`,
	`CREATE TABLE IF NOT EXISTS answer_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence INTEGER NOT NULL UNIQUE,
		timestamp INTEGER NOT NULL,
		session_id TEXT NOT NULL,
		word TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		direction TEXT NOT NULL DEFAULT '',
		prompt TEXT NOT NULL DEFAULT '',
		expected TEXT NOT NULL DEFAULT '',
		given TEXT NOT NULL DEFAULT '',
		correct INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS answer_events_word ON answer_events (word)`,
	`CREATE TABLE IF NOT EXISTS llm_request_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence INTEGER NOT NULL UNIQUE,
		timestamp INTEGER NOT NULL,
		provider TEXT NOT NULL,
		model TEXT NOT NULL,
		purpose TEXT NOT NULL DEFAULT '',
		input_tokens INTEGER NOT NULL DEFAULT 0,
		output_tokens INTEGER NOT NULL DEFAULT 0,
		latency_ms INTEGER NOT NULL DEFAULT 0,
		success INTEGER NOT NULL DEFAULT 0,
		error_message TEXT NOT NULL DEFAULT '',
		request_body TEXT NOT NULL DEFAULT '',
		response_body TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS attempts (
		word TEXT PRIMARY KEY,
		correct INTEGER NOT NULL DEFAULT 0 CHECK (correct >= 0),
		wrong INTEGER NOT NULL DEFAULT 0 CHECK (wrong >= 0),
		position INTEGER NOT NULL DEFAULT 0,
		updated_at INTEGER NOT NULL DEFAULT 0
	)`,
}

// migrate creates missing tables and indexes. Statements are idempotent.
func migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range ddl {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
