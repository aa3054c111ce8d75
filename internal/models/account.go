package models

import "time"

type KYCStatus string

const (
	KYCPending       KYCStatus = "pending"
	KYCAdultVerified KYCStatus = "adult_verified"
	KYCMinorVerified KYCStatus = "minor_verified"
	KYCFullyVerified KYCStatus = "fully_verified"
	KYCFailed        KYCStatus = "failed"
)

// CustodialAccount is one per (parent, student) pair. Accounts are never
// deleted, only deactivated.
type CustodialAccount struct {
	ID                   int64     `json:"id" db:"id"`
	ParentID             int64     `json:"parent_id" db:"parent_id"`
	StudentID            int64     `json:"student_id" db:"student_id"`
	ProcessorAccountRef  string    `json:"-" db:"processor_account_ref"`
	KYCStatus            KYCStatus `json:"kyc_status" db:"kyc_status"`
	RelationshipVerified bool      `json:"relationship_verified" db:"relationship_verified"`
	FirstDrawdownAcked   bool      `json:"first_drawdown_acked" db:"first_drawdown_acked"`
	EncryptedDOB         []byte    `json:"-" db:"encrypted_dob"`
	Active               bool      `json:"active" db:"active"`
	CreatedAt            time.Time `json:"created_at" db:"created_at"`
}
