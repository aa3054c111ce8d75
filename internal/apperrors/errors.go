package apperrors

import "errors"

var (
	ErrInvalidRequest     = errors.New("invalid request")
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrMissingVendor      = errors.New("vendor name is required")
	ErrVelocityExceeded   = errors.New("spending limit exceeded")
	ErrVendorNotAllowed   = errors.New("vendor not allowed for this project")
	ErrBlockedCategory    = errors.New("merchant category is blocked")
	ErrRequestNotFound    = errors.New("spending request not found")
	ErrAccountNotFound    = errors.New("custodial account not found")
	ErrWrongRole          = errors.New("decision not permitted for this role")
	ErrAlreadyProcessed   = errors.New("decision already processed for this request")
	ErrNotReversible      = errors.New("request can only be reversed while approved")
	ErrAckRequired        = errors.New("first drawdown acknowledgement required")
	ErrInsufficientFunds  = errors.New("insufficient available balance")
	ErrCardUnavailable    = errors.New("card network provider unavailable")
	ErrInternalServer     = errors.New("internal server error")
	ErrInvalidAuthHeader  = errors.New("invalid or missing Authorization header")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInvalidSweepSecret = errors.New("invalid scheduler secret")
)
