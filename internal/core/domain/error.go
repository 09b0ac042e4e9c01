package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInternal = errors.New("internal error")

	// * Validation errors, caught before any backend call.
	ErrInvalidOTP      = errors.New("otp must be exactly 5 digits")
	ErrInvalidDecision = errors.New("decision must be Accepted or Rejected")

	// * Conflict errors: the record no longer permits the action.
	ErrRequestDecided       = errors.New("order request is already decided")
	ErrOrderCompleted       = errors.New("order is already completed")
	ErrNotAdvanceable       = errors.New("order status does not permit advancing")
	ErrTransitionInFlight   = errors.New("a transition for this order is already in flight")
	ErrOtpSubmissionPending = errors.New("otp submission is waiting on the backend")
	ErrOTPNotRequired       = errors.New("transition does not require an otp")
	ErrChallengeClosed      = errors.New("otp challenge is closed")

	// * Authority errors.
	ErrNoToken      = errors.New("no session token found")
	ErrUnauthorized = errors.New("vendor session is unauthorized")

	// * Transport errors.
	ErrTransient = errors.New("backend is unreachable")

	ErrDataNotFound = errors.New("data not found")
	ErrBadRequest   = errors.New("error parsing request")
)

// BackendError carries a server-side rejection. The backend's own message is
// surfaced verbatim when present.
type BackendError struct {
	Status  int
	Message string
}

func (e *BackendError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend rejected the request (status %d)", e.Status)
}

// NewTransitionError wraps a failed transition with the generic fallback
// message when the backend supplied none.
func NewTransitionError(target OrderStatus, err error) error {
	var be *BackendError
	if errors.As(err, &be) && be.Message != "" {
		return err
	}
	return fmt.Errorf("failed to update order to %s: %w", target, err)
}
