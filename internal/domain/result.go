package domain

import "time"

type CalculationStatus string

const (
	StatusSuccess CalculationStatus = "success"
	StatusFailed  CalculationStatus = "failed"
)

type CalculationResult struct {
	CalculationID string            `json:"calculation_id"`
	Operation     Operation         `json:"operation"`
	Operands      []any             `json:"operands"`
	Status        CalculationStatus `json:"status"`
	// Result is nil on failure and for values JSON cannot carry (±Inf,
	// NaN). ResultText is always set on success.
	Result     *float64  `json:"result,omitempty"`
	ResultText string    `json:"result_text,omitempty"`
	ErrorKind  string    `json:"error_kind,omitempty"`
	Error      string    `json:"error,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}
