package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/kosakata/internal/store"
)

type fakeRecorder struct {
	events []store.LLMRequestEventData
	err    error
}

func (f *fakeRecorder) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	f.events = append(f.events, data)
	return f.err
}

func TestLoggingProvider_RecordsSuccess(t *testing.T) {
	rec := &fakeRecorder{}
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{"tips":[]}`), Usage: newUsage(12, 8)})
	p := WithLogging(mock, ProviderMock, rec, nil)

	ctx := WithPurpose(context.Background(), "coach")
	_, err := p.Generate(ctx, UserRequest("be brief", "makan → drink", testSchema))
	require.NoError(t, err)

	require.Len(t, rec.events, 1)
	ev := rec.events[0]
	assert.Equal(t, "mock", ev.Provider)
	assert.Equal(t, "mock", ev.Model)
	assert.Equal(t, "coach", ev.Purpose)
	assert.Equal(t, 12, ev.InputTokens)
	assert.Equal(t, 8, ev.OutputTokens)
	assert.True(t, ev.Success)
	assert.Contains(t, ev.RequestBody, "[system]\nbe brief")
	assert.Contains(t, ev.RequestBody, "[user]\nmakan → drink")
	assert.Contains(t, ev.RequestBody, "[schema: test-tips]")
	assert.Equal(t, `{"tips":[]}`, ev.ResponseBody)
}

func TestLoggingProvider_RecordsFailure(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	rec := &fakeRecorder{err: errors.New("disk full")}
	mock := NewMockProvider(MockResponse{Err: errors.New("boom")})
	p := WithLogging(mock, ProviderMock, rec, zap.New(core))

	_, err := p.Generate(context.Background(), UserRequest("", "x", nil))
	assert.EqualError(t, err, "boom")

	require.Len(t, rec.events, 1)
	assert.False(t, rec.events[0].Success)
	assert.Equal(t, "boom", rec.events[0].ErrorMessage)
	assert.Equal(t, "unknown", rec.events[0].Purpose)

	assert.Equal(t, 1, logs.FilterMessage("llm request failed").Len())
	assert.Equal(t, 1, logs.FilterMessage("record llm request event failed").Len())
}

func TestLoggingProvider_NilRecorder(t *testing.T) {
	p := WithLogging(NewMockProvider(MockResponse{Content: okContent}), ProviderMock, nil, nil)
	_, err := p.Generate(context.Background(), Request{})
	assert.NoError(t, err)
}

func TestDefaultPurpose(t *testing.T) {
	ctx := DefaultPurpose(context.Background(), "coach")
	assert.Equal(t, "coach", PurposeFrom(ctx))

	ctx = DefaultPurpose(WithPurpose(context.Background(), "test"), "coach")
	assert.Equal(t, "test", PurposeFrom(ctx))
}
