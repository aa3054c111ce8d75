package models

import "time"

type CardStatus string

const (
	CardActive    CardStatus = "active"
	CardFrozen    CardStatus = "frozen"
	CardCancelled CardStatus = "cancelled"
)

// IssuedCard is one virtual card per (custodial account, project). Cards
// default to frozen and are only unfrozen for a bounded spending window.
type IssuedCard struct {
	ID                 int64      `json:"id" db:"id"`
	CustodialAccountID int64      `json:"custodial_account_id" db:"custodial_account_id"`
	ProjectID          int64      `json:"project_id" db:"project_id"`
	CardRef            string     `json:"-" db:"card_ref"`
	Status             CardStatus `json:"status" db:"card_status"`
	LastFour           string     `json:"last_four" db:"last_four"`
	PerTxLimit         int64      `json:"per_tx_limit" db:"per_tx_limit"`
	DailyLimit         int64      `json:"daily_limit" db:"daily_limit"`
	WeeklyLimit        int64      `json:"weekly_limit" db:"weekly_limit"`
	CreatedAt          time.Time  `json:"created_at" db:"created_at"`
}
