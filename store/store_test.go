package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhacviec/nhacviec/plugin/nlp"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "events.json"))
}

func testEvent(name string, start time.Time, reminder int) Event {
	return Event{
		ParsedEvent: nlp.ParsedEvent{
			Event:           name,
			StartTime:       start,
			ReminderMinutes: reminder,
		},
	}
}

func TestStoreCRUD(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	start := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)

	// Empty store, file not yet created.
	events, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, events)

	created, err := s.Create(ctx, testEvent("Họp nhóm", start, 10))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	_, err = s.Create(ctx, testEvent("Khám bệnh", start.Add(time.Hour), 0))
	require.NoError(t, err)

	events, err = s.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Họp nhóm", events[0].Event)

	updated := testEvent("Họp khoa", start, 5)
	require.NoError(t, s.Update(ctx, 0, updated))
	events, err = s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Họp khoa", events[0].Event)

	require.NoError(t, s.Delete(ctx, 0))
	events, err = s.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Khám bệnh", events[0].Event)
}

func TestStoreIndexErrors(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	assert.ErrorIs(t, s.Update(ctx, 0, Event{}), ErrIndexOutOfRange)
	assert.ErrorIs(t, s.Delete(ctx, -1), ErrIndexOutOfRange)
}

func TestStoreCorruptFileResets(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "events.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := New(path)
	events, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, events)

	// The file was rewritten as an empty list.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestStoreReplaceAll(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	start := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)

	_, err := s.Create(ctx, testEvent("cũ", start, 0))
	require.NoError(t, err)

	require.NoError(t, s.ReplaceAll(ctx, []Event{testEvent("mới", start, 0)}))
	events, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "mới", events[0].Event)
}

func TestDueReminders(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	now := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)

	// Reminder instant exactly now: due.
	_, err := s.Create(ctx, testEvent("due now", now.Add(10*time.Minute), 10))
	require.NoError(t, err)
	// Reminder instant inside the 65s window: due.
	_, err = s.Create(ctx, testEvent("due soon", now.Add(10*time.Minute+time.Minute), 10))
	require.NoError(t, err)
	// Reminder instant already passed: not due.
	_, err = s.Create(ctx, testEvent("missed", now.Add(-time.Minute), 0))
	require.NoError(t, err)
	// Reminder instant beyond the window: not due.
	_, err = s.Create(ctx, testEvent("later", now.Add(time.Hour), 0))
	require.NoError(t, err)

	due, err := s.DueReminders(ctx, now)
	require.NoError(t, err)
	require.Len(t, due, 2)
	assert.Equal(t, 0, due[0].Index)
	assert.Equal(t, "due now", due[0].Event.Event)
	assert.Equal(t, 1, due[1].Index)
}
