package history

import "time"

// Outcome values stored on each Entry.
const (
	// OutcomeSuccess marks a write the store accepted.
	OutcomeSuccess = "success"
	// OutcomeError marks a failed write; Detail holds the error text.
	OutcomeError = "error"
)

// Entry is one recorded preference write.
type Entry struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	Section   string    `json:"section"`
	Field     string    `json:"field"`
	Value     string    `json:"value"`
	Outcome   string    `json:"outcome"`
	Detail    string    `json:"detail,omitempty"`
}
