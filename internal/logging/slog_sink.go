package logging

import (
	"context"
	"log/slog"

	"ozzus/scicalc/internal/domain"
)

// SlogSink writes events through a slog handler, keeping the event's own
// timestamp on the record.
type SlogSink struct {
	handler slog.Handler
}

func NewSlogSink(log *slog.Logger) *SlogSink {
	return &SlogSink{handler: log.Handler()}
}

func (s *SlogSink) Name() string {
	return "slog"
}

func (s *SlogSink) Write(ctx context.Context, event domain.LogEvent) error {
	level := LevelOf(event.Severity)
	if !s.handler.Enabled(ctx, level) {
		return nil
	}

	record := slog.NewRecord(event.Timestamp, level, event.Message, 0)
	record.AddAttrs(slog.String("event_id", event.ID))

	return s.handler.Handle(ctx, record)
}

// LevelOf maps a severity onto the matching slog level.
func LevelOf(severity domain.Severity) slog.Level {
	if severity == domain.SeverityError {
		return slog.LevelError
	}
	return slog.LevelInfo
}
