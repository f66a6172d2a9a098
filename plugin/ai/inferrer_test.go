package ai

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLLM returns canned responses for Chat.
type fakeLLM struct {
	response string
	err      error
	messages []Message
}

func (f *fakeLLM) Chat(_ context.Context, messages []Message) (string, error) {
	f.messages = messages
	return f.response, f.err
}

func TestInferrer_InferTime(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	require.NoError(t, err)
	ref := time.Date(2026, 1, 5, 0, 0, 0, 0, loc)

	tests := []struct {
		name     string
		response string
		chatErr  error
		want     time.Time
		wantErr  bool
	}{
		{
			name:     "plain json",
			response: `{"time": "2026-01-06 09:00:00"}`,
			want:     time.Date(2026, 1, 6, 9, 0, 0, 0, loc),
		},
		{
			name:     "fenced json",
			response: "```json\n{\"time\": \"2026-01-06 09:00:00\"}\n```",
			want:     time.Date(2026, 1, 6, 9, 0, 0, 0, loc),
		},
		{
			name:     "empty time means no match",
			response: `{"time": ""}`,
			wantErr:  true,
		},
		{
			name:     "malformed response",
			response: "tôi không hiểu",
			wantErr:  true,
		},
		{
			name:     "bad timestamp",
			response: `{"time": "mai"}`,
			wantErr:  true,
		},
		{
			name:    "chat error propagates as no match",
			chatErr: assert.AnError,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inf := NewInferrer(&fakeLLM{response: tt.response, err: tt.chatErr})
			got, err := inf.InferTime(context.Background(), "sáng mai họp", ref)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInferrer_PromptCarriesReference(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	require.NoError(t, err)
	ref := time.Date(2026, 1, 5, 0, 0, 0, 0, loc)

	llm := &fakeLLM{response: `{"time": "2026-01-06 09:00:00"}`}
	inf := NewInferrer(llm)

	_, err = inf.InferTime(context.Background(), "sáng mai họp", ref)
	require.NoError(t, err)
	require.Len(t, llm.messages, 2)
	assert.Contains(t, llm.messages[0].Content, "2026-01-05 00:00:00")
	assert.Equal(t, "sáng mai họp", llm.messages[1].Content)
}
