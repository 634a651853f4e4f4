package booking

import (
	"errors"
	"fmt"
	"time"

	"consultation-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition       = errors.New("invalid booking status transition")
	ErrInvalidStatus           = errors.New("invalid booking status")
	ErrInvalidDuration         = errors.New("duration is outside the allowed range")
	ErrLeadTimeNotMet          = errors.New("lead time requirement not met")
	ErrSelfBooking             = errors.New("client cannot book themselves")
	ErrProfessionalUnavailable = errors.New("professional is not accepting bookings")
)

// TransitionError is returned when a status change is not an edge of the
// lifecycle graph. It matches ErrInvalidTransition with errors.Is.
type TransitionError struct {
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("booking cannot move from %s to %s", e.From, e.To)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

type ProfessionalSpec struct {
	ID              uuid.UUID
	HourlyRateCents int64
	Currency        string
	Active          bool
}

type Services struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
	Policy          Policy
}

type Cancellation struct {
	Reason     CancelReason
	CanceledAt time.Time
	// CanceledBy is nil when the system cancelled the booking.
	CanceledBy *uuid.UUID
}

type Booking struct {
	id             uuid.UUID
	clientID       uuid.UUID
	professionalID uuid.UUID
	schedule       Schedule
	price          Money
	status         Status
	note           Note
	cancellation   *Cancellation
	createdAt      time.Time
	updatedAt      time.Time
}

func NewBooking(
	services *Services,
	pro ProfessionalSpec,
	clientID uuid.UUID,
	schedule Schedule,
	note Note,
) (*Booking, error) {
	if clientID == pro.ID {
		return nil, ErrSelfBooking
	}
	if !pro.Active {
		return nil, ErrProfessionalUnavailable
	}

	now := services.Clock.Now()
	if err := services.Policy.validateSchedule(schedule, now); err != nil {
		return nil, err
	}

	price, err := services.PriceCalculator.CalculatePrice(pro, schedule)
	if err != nil {
		return nil, err
	}

	return &Booking{
		id:             uuid.New(),
		clientID:       clientID,
		professionalID: pro.ID,
		schedule:       schedule,
		price:          price,
		status:         StatusPendingPayment,
		note:           note,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructBooking(
	id, clientID, professionalID uuid.UUID,
	schedule Schedule,
	price Money,
	status Status,
	note Note,
	cancellation *Cancellation,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:             id,
		clientID:       clientID,
		professionalID: professionalID,
		schedule:       schedule,
		price:          price,
		status:         status,
		note:           note,
		cancellation:   cancellation,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (b *Booking) transition(to Status, now time.Time) error {
	if !b.status.CanTransitionTo(to) {
		return &TransitionError{From: b.status, To: to}
	}
	b.status = to
	b.updatedAt = now
	return nil
}

func (b *Booking) MarkPaid(now time.Time) error {
	return b.transition(StatusWaitingForProfessional, now)
}

func (b *Booking) Confirm(now time.Time) error {
	return b.transition(StatusConfirmed, now)
}

func (b *Booking) Start(now time.Time) error {
	return b.transition(StatusInProgress, now)
}

func (b *Booking) Complete(now time.Time) error {
	return b.transition(StatusCompleted, now)
}

func (b *Booking) MarkNoShow(now time.Time) error {
	return b.transition(StatusNoShow, now)
}

func (b *Booking) Cancel(now time.Time, reason CancelReason, by *uuid.UUID) error {
	if err := b.transition(StatusCancelled, now); err != nil {
		return err
	}
	b.cancellation = &Cancellation{
		Reason:     reason,
		CanceledAt: now,
		CanceledBy: by,
	}
	return nil
}

func (b *Booking) IsParty(userID uuid.UUID) bool {
	return userID == b.clientID || userID == b.professionalID
}

func (b *Booking) IsProfessional(userID uuid.UUID) bool {
	return userID == b.professionalID
}

func (b *Booking) ID() uuid.UUID               { return b.id }
func (b *Booking) ClientID() uuid.UUID         { return b.clientID }
func (b *Booking) ProfessionalID() uuid.UUID   { return b.professionalID }
func (b *Booking) Schedule() Schedule          { return b.schedule }
func (b *Booking) Price() Money                { return b.price }
func (b *Booking) Status() Status              { return b.status }
func (b *Booking) Note() Note                  { return b.note }
func (b *Booking) Cancellation() *Cancellation { return b.cancellation }
func (b *Booking) CreatedAt() time.Time        { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time        { return b.updatedAt }
