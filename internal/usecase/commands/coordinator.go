package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"consultation-booking/internal/domain/booking"
	"consultation-booking/internal/domain/meeting"
	"consultation-booking/internal/domain/payment"
	"consultation-booking/internal/domain/user"
	"consultation-booking/internal/infra"
	"consultation-booking/internal/pkg/clock"
	"consultation-booking/internal/pkg/errs"
	"consultation-booking/internal/usecase/queries"
	"consultation-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingCommands interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest, actor user.Actor, idempotencyKey uuid.UUID) (*CreateBookingResult, error)
	AcceptBooking(ctx context.Context, bookingID uuid.UUID, actor user.Actor) (*AcceptResult, error)
	RejectBooking(ctx context.Context, bookingID uuid.UUID, actor user.Actor, reason string) (*CancelResult, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID, actor user.Actor, reason string) (*CancelResult, error)
}

type PaymentCommands interface {
	ApplyPaymentSignal(ctx context.Context, in PaymentSignalInput) (*PaymentResult, error)
}

type MeetingCommands interface {
	JoinMeeting(ctx context.Context, bookingID uuid.UUID, actor user.Actor) (*JoinResult, error)
	LeaveMeeting(ctx context.Context, bookingID uuid.UUID, actor user.Actor) (*LeaveResult, error)
}

// LifecycleEnforcer is the system-only surface driven by the deadline monitor.
// Each method reports whether it changed anything; a false result with a nil
// error is a no-op on a booking that is no longer due.
type LifecycleEnforcer interface {
	ExpireSession(ctx context.Context, bookingID uuid.UUID) (bool, error)
	EvaluateNoShow(ctx context.Context, bookingID uuid.UUID) (bool, error)
	ExpireAcceptance(ctx context.Context, bookingID uuid.UUID) (bool, error)
	ExpireUnpaid(ctx context.Context, bookingID uuid.UUID) (bool, error)
}

type AcceptResult struct {
	BookingID     uuid.UUID
	BookingStatus booking.Status
	MeetingStatus meeting.Status
	RoomToken     meeting.RoomToken
	Replayed      bool
}

type JoinResult struct {
	BookingID     uuid.UUID
	BookingStatus booking.Status
	MeetingStatus meeting.Status
	RoomToken     meeting.RoomToken
	StartedAt     time.Time
	ExpiresAt     time.Time
	AlreadyActive bool
}

type LeaveResult struct {
	BookingID     uuid.UUID
	BookingStatus booking.Status
	MeetingStatus meeting.Status
	EndedAt       *time.Time
	Replayed      bool
}

type CancelResult struct {
	BookingID  uuid.UUID
	Status     booking.Status
	Reason     string
	CanceledAt time.Time
}

type PaymentSignalInput struct {
	BookingID     uuid.UUID
	Status        string
	SourceEventID string
}

type PaymentResult struct {
	BookingID     uuid.UUID
	Outcome       payment.Outcome
	BookingStatus booking.Status
}

// Coordinator owns every booking and meeting transition. Each operation locks
// the booking row first, so all transitions of one booking are serialized.
type Coordinator struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	policy   booking.Policy
	pricing  booking.PriceCalculator
	bookings queries.BookingQueries
	cache    StatusInvalidator
	timers   DeadlineScheduler
	metrics  LifecycleMetrics
}

func NewCoordinator(
	uow shared.UnitOfWork,
	clk clock.Clock,
	policy booking.Policy,
	pricing booking.PriceCalculator,
	bookings queries.BookingQueries,
	cache StatusInvalidator,
	timers DeadlineScheduler,
	metrics LifecycleMetrics,
) *Coordinator {
	return &Coordinator{
		uow:      uow,
		clock:    clk,
		policy:   policy,
		pricing:  pricing,
		bookings: bookings,
		cache:    cache,
		timers:   timers,
		metrics:  metrics,
	}
}

type move struct {
	kind string
	from string
	to   string
}

// changeSet collects what a transaction changed so side effects run only
// after commit. It is reset at the start of every attempt.
type changeSet struct {
	bookingID uuid.UUID
	actorID   *uuid.UUID
	moves     []move
	armAt     *time.Time
	disarm    bool
}

func (cs *changeSet) reset(bookingID uuid.UUID, actorID *uuid.UUID) {
	*cs = changeSet{bookingID: bookingID, actorID: actorID}
}

func (cs *changeSet) booking(from, to booking.Status) {
	cs.moves = append(cs.moves, move{kind: "booking", from: from.String(), to: to.String()})
}

func (cs *changeSet) meeting(from, to meeting.Status) {
	cs.moves = append(cs.moves, move{kind: "meeting", from: from.String(), to: to.String()})
}

func (c *Coordinator) afterCommit(ctx context.Context, cs *changeSet) {
	if len(cs.moves) == 0 && cs.armAt == nil && !cs.disarm {
		return
	}

	c.cache.Invalidate(ctx, cs.bookingID)

	for _, m := range cs.moves {
		if m.kind == "booking" {
			c.metrics.Transition(m.from, m.to)
		}
		attrs := []any{
			"booking_id", cs.bookingID,
			"kind", m.kind,
			"from", m.from,
			"to", m.to,
		}
		if cs.actorID != nil {
			attrs = append(attrs, "actor_id", *cs.actorID)
		} else {
			attrs = append(attrs, "actor_id", "system")
		}
		slog.Info("lifecycle transition", attrs...)
	}

	if cs.disarm {
		c.timers.Disarm(cs.bookingID)
	}
	if cs.armAt != nil {
		c.timers.Arm(cs.bookingID, *cs.armAt)
	}
}

func lockBooking(ctx context.Context, tx shared.Tx, id uuid.UUID) (*booking.Booking, error) {
	b, err := tx.Bookings().Lock(ctx, tx.DB(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, err
	}
	return b, nil
}

// lockSession returns nil without error when the booking has no session.
func lockSession(ctx context.Context, tx shared.Tx, bookingID uuid.UUID) (*meeting.Session, error) {
	s, err := tx.Sessions().LockByBookingID(ctx, tx.DB(), bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}

func saveBooking(ctx context.Context, tx shared.Tx, b *booking.Booking, from booking.Status) error {
	if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), b, from); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return errs.Mark(err, ErrInvalidTransition)
		}
		return err
	}
	return nil
}

func saveSession(ctx context.Context, tx shared.Tx, s *meeting.Session, from meeting.Status) error {
	if err := tx.Sessions().UpdateStatus(ctx, tx.DB(), s, from); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return errs.Mark(err, ErrInvalidTransition)
		}
		return err
	}
	return nil
}

func invalidTransition(b *booking.Booking, action string) error {
	return &InvalidTransitionError{BookingID: b.ID(), Current: b.Status(), Action: action}
}

// refuse converts a domain transition error into an InvalidTransitionError
// and passes every other error through.
func refuse(err error, b *booking.Booking, action string) error {
	if errors.Is(err, booking.ErrInvalidTransition) || errors.Is(err, meeting.ErrInvalidTransition) {
		return invalidTransition(b, action)
	}
	return err
}
