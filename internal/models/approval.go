package models

import "time"

// ApprovalLog is the append-only audit record of each approve/decline
// decision. Rows are never updated or deleted.
type ApprovalLog struct {
	ID                int64        `json:"id" db:"id"`
	SpendingRequestID int64        `json:"spending_request_id" db:"spending_request_id"`
	DeciderID         int64        `json:"decider_id" db:"decider_id"`
	Role              ApproverRole `json:"role" db:"role"`
	Decision          Decision     `json:"decision" db:"decision"`
	Reason            string       `json:"reason,omitempty" db:"reason"`
	DecidedAt         time.Time    `json:"decided_at" db:"decided_at"`
}
