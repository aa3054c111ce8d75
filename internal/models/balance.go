package models

// WalletBalance holds per (custodial account, project) running balances.
// All amounts are integer minor units (pence).
type WalletBalance struct {
	ID                 int64  `json:"id" db:"id"`
	CustodialAccountID int64  `json:"custodial_account_id" db:"custodial_account_id"`
	ProjectID          int64  `json:"project_id" db:"project_id"`
	AvailableBalance   int64  `json:"available_balance" db:"available_balance"`
	HeldBalance        int64  `json:"held_balance" db:"held_balance"`
	TotalDisbursed     int64  `json:"total_disbursed" db:"total_disbursed"`
	Currency           string `json:"currency" db:"currency"`
}

// WalletOverview is the aggregate view returned for one custodial account.
type WalletOverview struct {
	Balances     []WalletBalance `json:"balances"`
	Cards        []IssuedCard    `json:"cards"`
	PendingCount int             `json:"pending_count"`
}
