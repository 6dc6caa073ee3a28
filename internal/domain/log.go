package domain

import "time"

type Severity string

const (
	SeverityInfo  Severity = "info"
	SeverityError Severity = "error"
)

// LogEvent is a single observability record. ID and Timestamp are assigned
// when the event is emitted and the value is never mutated afterwards.
type LogEvent struct {
	ID        string    `json:"id"`
	Severity  Severity  `json:"severity"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
