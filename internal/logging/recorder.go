package logging

import (
	"context"
	"sync"

	"ozzus/scicalc/internal/domain"
)

// Recorder keeps emitted events in memory in emission order.
type Recorder struct {
	mu     sync.Mutex
	events []domain.LogEvent
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Name() string {
	return "recorder"
}

func (r *Recorder) Write(_ context.Context, event domain.LogEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, event)
	return nil
}

func (r *Recorder) Events() []domain.LogEvent {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.LogEvent, len(r.events))
	copy(out, r.events)
	return out
}

// Last returns the most recent n events, or all of them if fewer exist.
func (r *Recorder) Last(n int) []domain.LogEvent {
	events := r.Events()
	if n >= len(events) {
		return events
	}
	return events[len(events)-n:]
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = nil
}
