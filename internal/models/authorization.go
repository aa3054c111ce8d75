package models

// AuthorizationRequest is the synchronous payload from the card network
// provider at swipe time.
type AuthorizationRequest struct {
	CardRef      string `json:"card_ref"`
	Amount       int64  `json:"amount"`
	MCC          string `json:"mcc"`
	MerchantName string `json:"merchant_name"`
}

// AuthorizationDecision is the answer returned within the provider's timeout.
type AuthorizationDecision struct {
	Approved bool   `json:"approved"`
	Reason   string `json:"reason,omitempty"`
}

// CardEvent is an asynchronous card-network event.
type CardEvent struct {
	Type             string `json:"type"`
	CardRef          string `json:"card_ref"`
	AuthorizationRef string `json:"authorization_ref,omitempty"`
	Amount           int64  `json:"amount,omitempty"`
	LastFour         string `json:"last_four,omitempty"`
	AccountID        int64  `json:"custodial_account_id,omitempty"`
	ProjectID        int64  `json:"project_id,omitempty"`
}

// VelocityResult reports whether a proposed spend fits the velocity limits.
type VelocityResult struct {
	Allowed     bool   `json:"allowed"`
	Reason      string `json:"reason,omitempty"`
	DailyUsed   int64  `json:"daily_used"`
	WeeklyUsed  int64  `json:"weekly_used"`
	DailyLimit  int64  `json:"daily_limit"`
	WeeklyLimit int64  `json:"weekly_limit"`
}

// PolicyResult reports whether a vendor passes the vendor policy.
type PolicyResult struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}
