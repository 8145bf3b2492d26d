package payment

import "time"

// Status is the payment progress of one form session.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusApproved   Status = "approved"
	StatusCompleted  Status = "completed"
)

// State is the payment state of one form session.
// The zero value is NotStarted.
type State struct {
	UpdatedAt time.Time `json:"updated_at"`
	Status    Status    `json:"status"`
	OrderID   string    `json:"order_id,omitempty"`
	CaptureID string    `json:"capture_id,omitempty"`
}

// Completed reports whether the session may submit.
func (s State) Completed() bool {
	return s.Status == StatusCompleted
}

func (s State) status() Status {
	if s.Status == "" {
		return StatusNotStarted
	}
	return s.Status
}
