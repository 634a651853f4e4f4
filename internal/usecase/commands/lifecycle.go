package commands

import (
	"context"
	"time"

	"consultation-booking/internal/domain/booking"
	"consultation-booking/internal/domain/meeting"
	"consultation-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	acceptanceExpiredReason = "professional did not respond"
	paymentExpiredReason    = "payment not received"
)

// enforce runs one system transition under the booking lock. apply reports
// false when the booking is no longer due.
func (c *Coordinator) enforce(ctx context.Context, bookingID uuid.UUID, apply func(ctx context.Context, tx shared.Tx, b *booking.Booking, now time.Time, cs *changeSet) (bool, error)) (bool, error) {
	var (
		applied bool
		cs      changeSet
	)

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		applied = false
		cs.reset(bookingID, nil)

		b, err := lockBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		applied, err = apply(ctx, tx, b, c.clock.Now(), &cs)
		return err
	})
	if err != nil {
		return false, err
	}

	c.afterCommit(ctx, &cs)
	return applied, nil
}

// ExpireSession ends an overrun meeting. A timer that fired before the
// deadline re-arms itself.
func (c *Coordinator) ExpireSession(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	return c.enforce(ctx, bookingID, func(ctx context.Context, tx shared.Tx, b *booking.Booking, now time.Time, cs *changeSet) (bool, error) {
		if b.Status() != booking.StatusInProgress {
			return false, nil
		}
		s, err := lockSession(ctx, tx, bookingID)
		if err != nil || s == nil || s.Status() != meeting.StatusActive {
			return false, err
		}
		if !s.IsExpiredAt(now) {
			cs.armAt = s.ExpiresAt()
			return false, nil
		}
		return true, c.expireSession(ctx, tx, b, s, now, cs)
	})
}

// EvaluateNoShow closes a confirmed booking nobody joined once the join
// window has closed.
func (c *Coordinator) EvaluateNoShow(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	return c.enforce(ctx, bookingID, func(ctx context.Context, tx shared.Tx, b *booking.Booking, now time.Time, cs *changeSet) (bool, error) {
		if b.Status() != booking.StatusConfirmed || now.Before(c.policy.NoShowDeadline(b.Schedule())) {
			return false, nil
		}

		from := b.Status()
		if err := b.MarkNoShow(now); err != nil {
			return false, refuse(err, b, "mark no-show")
		}

		s, err := lockSession(ctx, tx, bookingID)
		if err != nil {
			return false, err
		}
		if s != nil && s.Status() == meeting.StatusWaiting {
			if err := s.Cancel(now); err != nil {
				return false, refuse(err, b, "mark no-show")
			}
			if err := saveSession(ctx, tx, s, meeting.StatusWaiting); err != nil {
				return false, err
			}
			cs.meeting(meeting.StatusWaiting, s.Status())
		}

		if err := saveBooking(ctx, tx, b, from); err != nil {
			return false, err
		}
		cs.booking(from, b.Status())
		return true, emit(ctx, tx, TopicBookingNoShow, newLifecycleEvent(b, s, now))
	})
}

func (c *Coordinator) ExpireAcceptance(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	return c.enforce(ctx, bookingID, func(ctx context.Context, tx shared.Tx, b *booking.Booking, now time.Time, cs *changeSet) (bool, error) {
		if b.Status() != booking.StatusWaitingForProfessional || now.Before(c.policy.AcceptanceDeadline(b.Schedule())) {
			return false, nil
		}
		return true, c.systemCancel(ctx, tx, b, acceptanceExpiredReason, now, cs)
	})
}

func (c *Coordinator) ExpireUnpaid(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	return c.enforce(ctx, bookingID, func(ctx context.Context, tx shared.Tx, b *booking.Booking, now time.Time, cs *changeSet) (bool, error) {
		if b.Status() != booking.StatusPendingPayment {
			return false, nil
		}
		deadline, ok := c.policy.PaymentDeadline(b.CreatedAt())
		if !ok || now.Before(deadline) {
			return false, nil
		}
		return true, c.systemCancel(ctx, tx, b, paymentExpiredReason, now, cs)
	})
}

func (c *Coordinator) systemCancel(ctx context.Context, tx shared.Tx, b *booking.Booking, reason string, now time.Time, cs *changeSet) error {
	cancelReason, err := booking.NewCancelReason(reason, reason)
	if err != nil {
		return err
	}
	from := b.Status()
	if err := b.Cancel(now, cancelReason, nil); err != nil {
		return refuse(err, b, "cancel")
	}
	if err := saveBooking(ctx, tx, b, from); err != nil {
		return err
	}
	cs.booking(from, b.Status())
	return emit(ctx, tx, TopicBookingCancelled, newLifecycleEvent(b, nil, now))
}
