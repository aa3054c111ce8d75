package models

import "time"

type RequestStatus string

const (
	StatusPendingParent  RequestStatus = "pending_parent"
	StatusPendingMentor  RequestStatus = "pending_mentor"
	StatusApproved       RequestStatus = "approved"
	StatusFunded         RequestStatus = "funded"
	StatusCompleted      RequestStatus = "completed"
	StatusDeclinedParent RequestStatus = "declined_parent"
	StatusDeclinedMentor RequestStatus = "declined_mentor"
	StatusExpired        RequestStatus = "expired"
	StatusReversed       RequestStatus = "reversed"
)

type ApproverRole string

const (
	RoleParent ApproverRole = "parent"
	RoleMentor ApproverRole = "mentor"
)

type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionDecline Decision = "decline"
)

// SpendingRequest is one purchase request moving through dual approval,
// funding and completion. Amounts are integer minor units (pence).
type SpendingRequest struct {
	ID                 int64         `json:"id" db:"id"`
	CustodialAccountID int64         `json:"custodial_account_id" db:"custodial_account_id"`
	ProjectID          int64         `json:"project_id" db:"project_id"`
	MilestoneID        *int64        `json:"milestone_id,omitempty" db:"milestone_id"`
	StudentID          int64         `json:"student_id" db:"student_id"`
	ParentID           int64         `json:"parent_id" db:"parent_id"`
	MentorID           int64         `json:"mentor_id" db:"mentor_id"`
	VendorName         string        `json:"vendor_name" db:"vendor_name"`
	VendorURL          string        `json:"vendor_url,omitempty" db:"vendor_url"`
	VendorMCC          string        `json:"vendor_mcc,omitempty" db:"vendor_mcc"`
	Amount             int64         `json:"amount" db:"amount"`
	Currency           string        `json:"currency" db:"currency"`
	Reason             string        `json:"reason" db:"reason"`
	Status             RequestStatus `json:"status" db:"status"`
	ReceiptURL         string        `json:"receipt_url,omitempty" db:"receipt_url"`
	ReceiptUploadedAt  *time.Time    `json:"receipt_uploaded_at,omitempty" db:"receipt_uploaded_at"`
	ParentDecidedAt    *time.Time    `json:"parent_decided_at,omitempty" db:"parent_decided_at"`
	MentorDecidedAt    *time.Time    `json:"mentor_decided_at,omitempty" db:"mentor_decided_at"`
	CoolingOffEndsAt   *time.Time    `json:"cooling_off_ends_at,omitempty" db:"cooling_off_ends_at"`
	FundedAt           *time.Time    `json:"funded_at,omitempty" db:"funded_at"`
	CompletedAt        *time.Time    `json:"completed_at,omitempty" db:"completed_at"`
	AuthorizationRef   string        `json:"-" db:"authorization_ref"`
	CardUnfrozenAt     *time.Time    `json:"card_unfrozen_at,omitempty" db:"card_unfrozen_at"`
	CardWindowExpires  *time.Time    `json:"card_window_expires_at,omitempty" db:"card_window_expires_at"`
	CreatedAt          time.Time     `json:"created_at" db:"created_at"`
}

// Terminal reports whether no further transition may be applied.
func (r *SpendingRequest) Terminal() bool {
	switch r.Status {
	case StatusCompleted, StatusDeclinedParent, StatusDeclinedMentor, StatusExpired, StatusReversed:
		return true
	}
	return false
}

// CreateRequest is the payload a student submits for a new spending request.
type CreateRequest struct {
	CustodialAccountID int64  `json:"custodial_account_id"`
	ProjectID          int64  `json:"project_id"`
	MilestoneID        *int64 `json:"milestone_id,omitempty"`
	ParentID           int64  `json:"parent_id"`
	MentorID           int64  `json:"mentor_id"`
	VendorName         string `json:"vendor_name"`
	VendorURL          string `json:"vendor_url,omitempty"`
	VendorMCC          string `json:"vendor_mcc,omitempty"`
	Amount             int64  `json:"amount"`
	Reason             string `json:"reason"`
}

// DecisionRequest is the payload for a parent or mentor decision.
type DecisionRequest struct {
	Decision Decision `json:"decision"`
	Reason   string   `json:"reason,omitempty"`
}
