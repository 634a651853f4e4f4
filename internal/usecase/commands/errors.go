package commands

import (
	"fmt"
	"time"

	"consultation-booking/internal/domain/booking"
	"consultation-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound        = errs.New("booking not found")
	ErrForbidden              = errs.New("actor may not act on this booking")
	ErrInvalidTransition      = errs.New("invalid booking transition")
	ErrNotReady               = errs.New("meeting not ready")
	ErrProfessionalNotFound   = errs.New("professional not found")
	ErrDomainValidation       = errs.New("domain validation error")
	ErrDuplicateRequest       = errs.New("idempotency key reused with a different request")
	ErrIdempotencyInProgress  = errs.New("idempotency in progress")
	ErrIdempotencyCheckFailed = errs.New("idempotency check failed")
)

// InvalidTransitionError carries the status the booking was found in so
// callers can explain why the action was refused.
type InvalidTransitionError struct {
	BookingID uuid.UUID
	Current   booking.Status
	Action    string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s booking %s in status %s", e.Action, e.BookingID, e.Current)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// NotReadyError is returned by JoinMeeting outside the join window.
type NotReadyError struct {
	Reason   booking.NotReadyReason
	OpensAt  time.Time
	ClosesAt time.Time
}

func (e *NotReadyError) Error() string {
	return fmt.Sprintf("meeting not ready: %s", e.Reason)
}

func (e *NotReadyError) Unwrap() error {
	return ErrNotReady
}
