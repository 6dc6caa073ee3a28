package domain

import "time"

// Calculation is a request to run one operation, as received over HTTP or Kafka.
type Calculation struct {
	ID        string    `json:"calculation_id"`
	Operation Operation `json:"operation"`
	Operands  []any     `json:"operands"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}
