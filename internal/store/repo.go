package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// Session event actions.
const (
	ActionStart   = "start"
	ActionRestart = "restart"
	ActionEnd     = "end"
)

// SessionEventData captures a quiz session lifecycle event.
type SessionEventData struct {
	SessionID  string
	Action     string
	Direction  string
	Categories []string
	Questions  int
	Correct    int
	Duration   time.Duration
}

// AnswerEventData captures one graded answer.
type AnswerEventData struct {
	SessionID string
	Word      string
	Category  string
	Direction string
	Prompt    string
	Expected  string
	Given     string
	Correct   bool
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID        int64
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates LLM events by purpose or model.
type LLMUsage struct {
	Key          string // purpose or model
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// SessionSummary is one finished quiz as shown in the history view.
type SessionSummary struct {
	Sequence   int64
	SessionID  string
	Timestamp  time.Time
	Direction  string
	Categories []string
	Questions  int
	Correct    int
	Duration   time.Duration
}

// Accuracy returns Correct/Questions, or 0 for an empty session.
func (s SessionSummary) Accuracy() float64 {
	if s.Questions == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Questions)
}

// AnswerRecord is one stored answer event.
type AnswerRecord struct {
	Sequence  int64
	Timestamp time.Time
	SessionID string
	Word      string
	Direction string
	Expected  string
	Given     string
	Correct   bool
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendSessionEvent records a session start, restart or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendAnswerEvent records one graded answer.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one LLM event, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int64) (*LLMEvent, error)

	// LLMUsage sums tokens and latency grouped by "purpose" or "model".
	LLMUsage(ctx context.Context, groupBy string) ([]LLMUsage, error)

	// QuerySessionSummaries returns finished sessions, newest first.
	QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummary, error)

	// WordHistory returns the most recent answers for word, newest first.
	WordHistory(ctx context.Context, word string, limit int) ([]AnswerRecord, error)

	// SessionAnswers returns the answers graded in one session, in order.
	SessionAnswers(ctx context.Context, sessionID string) ([]AnswerRecord, error)
}
