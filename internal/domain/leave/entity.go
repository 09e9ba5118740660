package leave

import "time"

// Decision is the outcome submitted for a pending leave request.
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionDeny    Decision = "deny"
)

// IsValid reports whether d is a known decision.
func (d Decision) IsValid() bool {
	return d == DecisionApprove || d == DecisionDeny
}

// Request is a leave application awaiting an approve/deny decision. Only
// pending requests are ever fetched; a decided request disappears from the
// list on the next fetch.
type Request struct {
	ID            string    `json:"id"`
	RequesterName string    `json:"requester_name"`
	Type          string    `json:"leave_type"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	Reason        *string   `json:"reason,omitempty"`
}
