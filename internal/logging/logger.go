package logging

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"ozzus/scicalc/internal/domain"
	"ozzus/scicalc/internal/lib/logger/sl"

	"github.com/google/uuid"
)

// Sink receives every emitted LogEvent.
type Sink interface {
	Name() string
	Write(ctx context.Context, event domain.LogEvent) error
}

// Logger stamps log events and hands them to its sinks. A failing sink is
// reported on the fallback slog logger and never surfaces to the caller.
type Logger struct {
	mu       sync.RWMutex
	sinks    []Sink
	fallback *slog.Logger
	now      func() time.Time
}

func New(fallback *slog.Logger, sinks ...Sink) *Logger {
	if fallback == nil {
		fallback = slog.Default()
	}

	return &Logger{
		sinks:    sinks,
		fallback: fallback,
		now:      time.Now,
	}
}

// AddSink registers an additional sink for subsequent events.
func (l *Logger) AddSink(sink Sink) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.sinks = append(l.sinks, sink)
	l.fallback.Debug("log sink registered", "sink", sink.Name(), "total_sinks", len(l.sinks))
}

// Log formats message with args printf-style and emits the resulting event.
func (l *Logger) Log(severity domain.Severity, message string, args ...any) {
	l.Emit(context.Background(), severity, message, args...)
}

// Emit is Log with a caller-supplied context, passed on to the sinks.
func (l *Logger) Emit(ctx context.Context, severity domain.Severity, message string, args ...any) domain.LogEvent {
	if len(args) > 0 {
		message = fmt.Sprintf(message, args...)
	}

	event := domain.LogEvent{
		ID:        uuid.NewString(),
		Severity:  severity,
		Message:   message,
		Timestamp: l.now(),
	}

	l.mu.RLock()
	sinks := make([]Sink, len(l.sinks))
	copy(sinks, l.sinks)
	l.mu.RUnlock()

	for _, sink := range sinks {
		if err := sink.Write(ctx, event); err != nil {
			l.fallback.Error("failed to write log event",
				"sink", sink.Name(),
				"event_id", event.ID,
				sl.Err(err),
			)
		}
	}

	return event
}
