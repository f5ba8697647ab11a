package auth

import "errors"

// ErrUsernameTaken indicates a duplicate username, whether caught by the
// pre-insert count or by the store's own uniqueness constraint.
var ErrUsernameTaken = errors.New("username already taken")

// ValidationError is the structured rejection produced by the registration
// validator. Its JSON shape is part of the external API contract, so it is
// serialized as-is rather than through the generic error envelope.
type ValidationError struct {
	Code     int    `json:"code"`
	Reason   string `json:"reason"`
	Message  string `json:"message"`
	Location string `json:"location"`
}

func (e *ValidationError) Error() string {
	return e.Message + " (" + e.Location + ")"
}

func newValidationError(message, location string) *ValidationError {
	return &ValidationError{
		Code:     422,
		Reason:   "ValidationError",
		Message:  message,
		Location: location,
	}
}
