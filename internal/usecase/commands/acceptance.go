package commands

import (
	"context"

	"consultation-booking/internal/domain/booking"
	"consultation-booking/internal/domain/meeting"
	"consultation-booking/internal/domain/user"
	"consultation-booking/internal/infra"
	"consultation-booking/internal/pkg/errs"
	"consultation-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const rejectedByProfessionalReason = "rejected by professional"

// AcceptBooking confirms a paid booking and provisions its meeting session in
// the same transaction. Accepting again after success replays the original
// room token.
func (c *Coordinator) AcceptBooking(ctx context.Context, bookingID uuid.UUID, actor user.Actor) (*AcceptResult, error) {
	if actor.Role != user.RoleProfessional {
		return nil, ErrForbidden
	}

	var (
		result *AcceptResult
		cs     changeSet
	)

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = nil
		cs.reset(bookingID, &actor.ID)

		b, err := lockBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if !b.IsProfessional(actor.ID) {
			return ErrForbidden
		}

		if b.Status().IsLiveAfterAcceptance() {
			s, err := lockSession(ctx, tx, bookingID)
			if err != nil {
				return err
			}
			if s != nil {
				result = &AcceptResult{
					BookingID:     b.ID(),
					BookingStatus: b.Status(),
					MeetingStatus: s.Status(),
					RoomToken:     s.RoomToken(),
					Replayed:      true,
				}
				return nil
			}
		}
		if b.Status() != booking.StatusWaitingForProfessional {
			return invalidTransition(b, "accept")
		}

		now := c.clock.Now()
		from := b.Status()
		if err := b.Confirm(now); err != nil {
			return refuse(err, b, "accept")
		}

		s, err := meeting.NewSession(b.ID(), c.policy.MeetingMaxDuration, now)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		if err := tx.Sessions().Create(ctx, tx.DB(), s); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return invalidTransition(b, "accept")
			}
			return err
		}
		if err := saveBooking(ctx, tx, b, from); err != nil {
			return err
		}

		cs.booking(from, b.Status())
		cs.meeting(meeting.StatusPending, s.Status())

		if err := emit(ctx, tx, TopicBookingConfirmed, newLifecycleEvent(b, s, now)); err != nil {
			return err
		}
		provisioned := newLifecycleEvent(b, s, now)
		provisioned.RoomToken = s.RoomToken().String()
		if err := emit(ctx, tx, TopicMeetingRoomProvisioned, provisioned); err != nil {
			return err
		}

		result = &AcceptResult{
			BookingID:     b.ID(),
			BookingStatus: b.Status(),
			MeetingStatus: s.Status(),
			RoomToken:     s.RoomToken(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.afterCommit(ctx, &cs)
	return result, nil
}

func (c *Coordinator) RejectBooking(ctx context.Context, bookingID uuid.UUID, actor user.Actor, reason string) (*CancelResult, error) {
	if actor.Role != user.RoleProfessional {
		return nil, ErrForbidden
	}
	cancelReason, err := booking.NewCancelReason(reason, rejectedByProfessionalReason)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var (
		result *CancelResult
		cs     changeSet
	)

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = nil
		cs.reset(bookingID, &actor.ID)

		b, err := lockBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if !b.IsProfessional(actor.ID) {
			return ErrForbidden
		}
		if b.Status() != booking.StatusWaitingForProfessional {
			return invalidTransition(b, "reject")
		}

		now := c.clock.Now()
		from := b.Status()
		if err := b.Cancel(now, cancelReason, &actor.ID); err != nil {
			return refuse(err, b, "reject")
		}
		if err := saveBooking(ctx, tx, b, from); err != nil {
			return err
		}
		cs.booking(from, b.Status())
		if err := emit(ctx, tx, TopicBookingCancelled, newLifecycleEvent(b, nil, now)); err != nil {
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

func cancelResult(b *booking.Booking) *CancelResult {
	r := &CancelResult{BookingID: b.ID(), Status: b.Status()}
	if cn := b.Cancellation(); cn != nil {
		r.Reason = cn.Reason.String()
		r.CanceledAt = cn.CanceledAt
	}
	return r
}
