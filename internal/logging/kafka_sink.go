package logging

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"ozzus/scicalc/internal/domain"
	"ozzus/scicalc/internal/lib/logger/sl"
)

var (
	ErrSinkFull   = errors.New("log event buffer is full")
	ErrSinkClosed = errors.New("log sink is closed")
)

// EventPublisher is satisfied by the kafka producer.
type EventPublisher interface {
	PublishEvent(ctx context.Context, key string, event interface{}) error
}

type KafkaSinkConfig struct {
	Timeout    time.Duration
	BufferSize int
}

// KafkaSink publishes events to the logs topic, keyed by event ID, from a
// background goroutine. Write only enqueues; when the buffer is full the
// event is dropped and ErrSinkFull returned.
type KafkaSink struct {
	publisher EventPublisher
	log       *slog.Logger
	timeout   time.Duration

	mu     sync.RWMutex
	closed bool
	events chan domain.LogEvent
	done   chan struct{}
}

func NewKafkaSink(publisher EventPublisher, log *slog.Logger, cfg KafkaSinkConfig) *KafkaSink {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 256
	}
	if log == nil {
		log = slog.Default()
	}

	s := &KafkaSink{
		publisher: publisher,
		log:       log,
		timeout:   cfg.Timeout,
		events:    make(chan domain.LogEvent, cfg.BufferSize),
		done:      make(chan struct{}),
	}

	go s.run()

	return s
}

func (s *KafkaSink) Name() string {
	return "kafka"
}

func (s *KafkaSink) Write(_ context.Context, event domain.LogEvent) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return ErrSinkClosed
	}

	select {
	case s.events <- event:
		return nil
	default:
		return ErrSinkFull
	}
}

// Close stops accepting events and waits until the queued ones are published
// or ctx expires.
func (s *KafkaSink) Close(ctx context.Context) error {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.events)
	}
	s.mu.Unlock()

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *KafkaSink) run() {
	defer close(s.done)

	for event := range s.events {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		if err := s.publisher.PublishEvent(ctx, event.ID, event); err != nil {
			s.log.Warn("failed to publish log event", "event_id", event.ID, sl.Err(err))
		}
		cancel()
	}
}
