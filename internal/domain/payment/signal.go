package payment

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidSignalStatus = errors.New("invalid payment signal status")
	ErrMissingSourceEvent  = errors.New("payment signal requires a source event id")
	ErrMissingBooking      = errors.New("payment signal requires a booking id")
)

const MaxSourceEventIDLength = 255

type SignalStatus string

const (
	SignalPaid    SignalStatus = "paid"
	SignalFailed  SignalStatus = "failed"
	SignalPending SignalStatus = "pending"
)

func ParseSignalStatus(s string) (SignalStatus, error) {
	st := SignalStatus(strings.ToLower(strings.TrimSpace(s)))
	switch st {
	case SignalPaid, SignalFailed, SignalPending:
		return st, nil
	default:
		return "", ErrInvalidSignalStatus
	}
}

// Signal is one delivery of the payment provider's status for a booking.
// Deliveries are at-least-once; SourceEventID identifies the provider event.
type Signal struct {
	BookingID     uuid.UUID
	Status        SignalStatus
	SourceEventID string
	ReceivedAt    time.Time
}

func NewSignal(bookingID uuid.UUID, status, sourceEventID string, receivedAt time.Time) (Signal, error) {
	if bookingID == uuid.Nil {
		return Signal{}, ErrMissingBooking
	}
	st, err := ParseSignalStatus(status)
	if err != nil {
		return Signal{}, err
	}
	sourceEventID = strings.TrimSpace(sourceEventID)
	if sourceEventID == "" || len(sourceEventID) > MaxSourceEventIDLength {
		return Signal{}, ErrMissingSourceEvent
	}
	return Signal{
		BookingID:     bookingID,
		Status:        st,
		SourceEventID: sourceEventID,
		ReceivedAt:    receivedAt,
	}, nil
}

// Outcome is what applying a signal did to the booking.
type Outcome string

const (
	OutcomeApplied   Outcome = "applied"
	OutcomeDuplicate Outcome = "duplicate"
	OutcomeIgnored   Outcome = "ignored"
	OutcomeRejected  Outcome = "rejected"
)
