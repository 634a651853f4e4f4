package commands

import (
	"context"

	"consultation-booking/internal/domain/booking"
	"consultation-booking/internal/domain/meeting"
	"consultation-booking/internal/domain/user"
	"consultation-booking/internal/pkg/errs"
	"consultation-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	cancelledByClientReason       = "cancelled by client"
	cancelledByProfessionalReason = "cancelled by professional"
	cancelledByAdminReason        = "cancelled by admin"
)

// CancelBooking is available to both parties and to admins until the meeting
// starts. Cancelling a confirmed booking also closes its waiting session.
func (c *Coordinator) CancelBooking(ctx context.Context, bookingID uuid.UUID, actor user.Actor, reason string) (*CancelResult, error) {
	var (
		result *CancelResult
		cs     changeSet
	)

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = nil
		cs.reset(bookingID, &actor.ID)

		b, err := lockBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if !b.IsParty(actor.ID) && !actor.IsAdmin() {
			return ErrForbidden
		}
		if b.Status().IsTerminal() || b.Status() == booking.StatusInProgress {
			return invalidTransition(b, "cancel")
		}

		cancelReason, err := booking.NewCancelReason(reason, defaultCancelReason(b, actor))
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		now := c.clock.Now()
		from := b.Status()
		if err := b.Cancel(now, cancelReason, &actor.ID); err != nil {
			return refuse(err, b, "cancel")
		}

		var s *meeting.Session
		if from == booking.StatusConfirmed {
			s, err = lockSession(ctx, tx, bookingID)
			if err != nil {
				return err
			}
			if s != nil && s.Status() == meeting.StatusWaiting {
				if err := s.Cancel(now); err != nil {
					return refuse(err, b, "cancel")
				}
				if err := saveSession(ctx, tx, s, meeting.StatusWaiting); err != nil {
					return err
				}
				cs.meeting(meeting.StatusWaiting, s.Status())
			}
		}

		if err := saveBooking(ctx, tx, b, from); err != nil {
			return err
		}
		cs.booking(from, b.Status())
		if err := emit(ctx, tx, TopicBookingCancelled, newLifecycleEvent(b, s, now)); err != nil {
			return err
		}

		result = cancelResult(b)
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.afterCommit(ctx, &cs)
	return result, nil
}

func defaultCancelReason(b *booking.Booking, actor user.Actor) string {
	switch {
	case actor.ID == b.ClientID():
		return cancelledByClientReason
	case actor.ID == b.ProfessionalID():
		return cancelledByProfessionalReason
	default:
		return cancelledByAdminReason
	}
}
