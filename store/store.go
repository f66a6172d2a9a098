// Package store persists events as a JSON array in a flat file. A single
// mutex guards every read-modify-write cycle; records are addressed by array
// position.
package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/nhacviec/nhacviec/plugin/nlp"
)

// ErrIndexOutOfRange is returned when an event index does not exist.
var ErrIndexOutOfRange = errors.New("event index out of range")

// dueWindow is how far ahead of a reminder instant the poller looks.
const dueWindow = 65 * time.Second

// Event is a stored record: the parsed fields plus caller-added metadata.
type Event struct {
	ID string `json:"id,omitempty"`
	nlp.ParsedEvent
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// DueEvent is an event whose reminder instant falls inside the polling window.
type DueEvent struct {
	Index int   `json:"index"`
	Event Event `json:"event"`
}

// Store is a flat-file event store.
type Store struct {
	path string
	mu   sync.Mutex
}

// New creates a store backed by the given file path. The file is created on
// first write.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// load reads the event list. A missing or empty file yields an empty list; a
// corrupt file is reset rather than treated as fatal. Callers must hold the
// lock.
func (s *Store) load() ([]Event, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Event{}, nil
		}
		return nil, errors.Wrap(err, "read events file")
	}
	if len(data) == 0 {
		return []Event{}, nil
	}

	var events []Event
	if err := json.Unmarshal(data, &events); err != nil {
		slog.Warn("events file corrupt, resetting", "path", s.path, "error", err)
		if err := s.save([]Event{}); err != nil {
			return nil, err
		}
		return []Event{}, nil
	}
	return events, nil
}

// save writes the event list. Callers must hold the lock.
func (s *Store) save(events []Event) error {
	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode events")
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return errors.Wrap(err, "write events file")
	}
	return nil
}

// List returns all stored events.
func (s *Store) List(_ context.Context) ([]Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Create appends an event, assigning an id when the caller did not.
func (s *Store) Create(_ context.Context, event Event) (Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if event.ID == "" {
		event.ID = uuid.NewString()
	}

	events, err := s.load()
	if err != nil {
		return Event{}, err
	}
	events = append(events, event)
	if err := s.save(events); err != nil {
		return Event{}, err
	}
	return event, nil
}

// Update replaces the event at the given index.
func (s *Store) Update(_ context.Context, index int, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	events, err := s.load()
	if err != nil {
		return err
	}
	if index < 0 || index >= len(events) {
		return ErrIndexOutOfRange
	}
	events[index] = event
	return s.save(events)
}

// Delete removes the event at the given index.
func (s *Store) Delete(_ context.Context, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	events, err := s.load()
	if err != nil {
		return err
	}
	if index < 0 || index >= len(events) {
		return ErrIndexOutOfRange
	}
	events = append(events[:index], events[index+1:]...)
	return s.save(events)
}

// ReplaceAll swaps the whole list, used by file import.
func (s *Store) ReplaceAll(_ context.Context, events []Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if events == nil {
		events = []Event{}
	}
	return s.save(events)
}

// DueReminders returns the events whose reminder instant
// (start_time - reminder_minutes) falls within [now, now+65s].
func (s *Store) DueReminders(ctx context.Context, now time.Time) ([]DueEvent, error) {
	events, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	due := []DueEvent{}
	for i, e := range events {
		if e.StartTime.IsZero() {
			continue
		}
		remindAt := e.StartTime.Add(-time.Duration(e.ReminderMinutes) * time.Minute)
		if !remindAt.Before(now) && !remindAt.After(now.Add(dueWindow)) {
			due = append(due, DueEvent{Index: i, Event: e})
		}
	}
	return due, nil
}
