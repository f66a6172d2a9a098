package nlp

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// MockInferrer is a test double for the inference capability.
type MockInferrer struct {
	// FixedTime is returned for every call when set.
	FixedTime *time.Time
	// Err is returned when set, taking precedence over FixedTime.
	Err error
	// Calls records the inputs InferTime was invoked with.
	Calls []string
}

// NewMockInferrer creates a MockInferrer that never matches.
func NewMockInferrer() *MockInferrer {
	return &MockInferrer{}
}

// InferTime returns the configured result.
func (m *MockInferrer) InferTime(_ context.Context, text string, _ time.Time) (time.Time, error) {
	m.Calls = append(m.Calls, text)
	if m.Err != nil {
		return time.Time{}, m.Err
	}
	if m.FixedTime != nil {
		return *m.FixedTime, nil
	}
	return time.Time{}, errors.New("mock: no match")
}

var _ Inferrer = (*MockInferrer)(nil)
