package apperrors

// PolicyError carries a user-facing reason for a policy rejection while
// still matching its sentinel via errors.Is.
type PolicyError struct {
	Err    error
	Reason string
}

func (e *PolicyError) Error() string {
	return e.Reason
}

func (e *PolicyError) Unwrap() error {
	return e.Err
}

func NewPolicyError(sentinel error, reason string) *PolicyError {
	return &PolicyError{Err: sentinel, Reason: reason}
}
