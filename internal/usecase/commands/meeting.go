package commands

import (
	"context"
	"time"

	"consultation-booking/internal/domain/booking"
	"consultation-booking/internal/domain/meeting"
	"consultation-booking/internal/domain/user"
	"consultation-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// JoinMeeting starts the meeting on the first join inside the window and lets
// the other party in while it is active. A join that finds an overrun session
// expires it first and is then refused.
func (c *Coordinator) JoinMeeting(ctx context.Context, bookingID uuid.UUID, actor user.Actor) (*JoinResult, error) {
	var (
		result  *JoinResult
		tooLate *NotReadyError
		cs      changeSet
	)

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result, tooLate = nil, nil
		cs.reset(bookingID, &actor.ID)

		b, err := lockBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if !b.IsParty(actor.ID) {
			return ErrForbidden
		}

		now := c.clock.Now()
		window := c.policy.JoinWindow(b.Schedule())

		switch b.Status() {
		case booking.StatusInProgress:
			s, err := lockSession(ctx, tx, bookingID)
			if err != nil {
				return err
			}
			if s == nil || s.Status() != meeting.StatusActive {
				return invalidTransition(b, "join")
			}
			if s.IsExpiredAt(now) {
				if err := c.expireSession(ctx, tx, b, s, now, &cs); err != nil {
					return err
				}
				tooLate = &NotReadyError{Reason: booking.NotReadyTooLate, OpensAt: window.OpensAt, ClosesAt: window.ClosesAt}
				return nil
			}
			result = joinResult(b, s, true)
			return nil

		case booking.StatusConfirmed:
			if reason := window.Check(now); reason != "" {
				return &NotReadyError{Reason: reason, OpensAt: window.OpensAt, ClosesAt: window.ClosesAt}
			}
			s, err := lockSession(ctx, tx, bookingID)
			if err != nil {
				return err
			}
			if s == nil {
				return invalidTransition(b, "join")
			}

			fromSession := s.Status()
			if err := s.Activate(now); err != nil {
				return refuse(err, b, "join")
			}
			from := b.Status()
			if err := b.Start(now); err != nil {
				return refuse(err, b, "join")
			}
			if err := saveSession(ctx, tx, s, fromSession); err != nil {
				return err
			}
			if err := saveBooking(ctx, tx, b, from); err != nil {
				return err
			}
			cs.meeting(fromSession, s.Status())
			cs.booking(from, b.Status())
			cs.armAt = s.ExpiresAt()

			if err := emit(ctx, tx, TopicMeetingStarted, newLifecycleEvent(b, s, now)); err != nil {
				return err
			}
			result = joinResult(b, s, false)
			return nil

		case booking.StatusCompleted, booking.StatusNoShow:
			return &NotReadyError{Reason: booking.NotReadyTooLate, OpensAt: window.OpensAt, ClosesAt: window.ClosesAt}

		default:
			return &NotReadyError{Reason: booking.NotReadyNotConfirmed, OpensAt: window.OpensAt, ClosesAt: window.ClosesAt}
		}
	})
	if err != nil {
		return nil, err
	}

	c.afterCommit(ctx, &cs)
	if tooLate != nil {
		return nil, tooLate
	}
	return result, nil
}

func joinResult(b *booking.Booking, s *meeting.Session, alreadyActive bool) *JoinResult {
	r := &JoinResult{
		BookingID:     b.ID(),
		BookingStatus: b.Status(),
		MeetingStatus: s.Status(),
		RoomToken:     s.RoomToken(),
		AlreadyActive: alreadyActive,
	}
	if at := s.StartedAt(); at != nil {
		r.StartedAt = *at
	}
	if at := s.ExpiresAt(); at != nil {
		r.ExpiresAt = *at
	}
	return r
}

// LeaveMeeting ends an active meeting for both parties. Leaving a completed
// meeting again is a replay.
func (c *Coordinator) LeaveMeeting(ctx context.Context, bookingID uuid.UUID, actor user.Actor) (*LeaveResult, error) {
	var (
		result *LeaveResult
		cs     changeSet
	)

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = nil
		cs.reset(bookingID, &actor.ID)

		b, err := lockBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if !b.IsParty(actor.ID) {
			return ErrForbidden
		}

		s, err := lockSession(ctx, tx, bookingID)
		if err != nil {
			return err
		}

		switch b.Status() {
		case booking.StatusInProgress:
			if s == nil {
				return invalidTransition(b, "leave")
			}
			now := c.clock.Now()
			fromSession := s.Status()
			if err := s.End(now); err != nil {
				return refuse(err, b, "leave")
			}
			from := b.Status()
			if err := b.Complete(now); err != nil {
				return refuse(err, b, "leave")
			}
			if err := saveSession(ctx, tx, s, fromSession); err != nil {
				return err
			}
			if err := saveBooking(ctx, tx, b, from); err != nil {
				return err
			}
			cs.meeting(fromSession, s.Status())
			cs.booking(from, b.Status())
			cs.disarm = true

			if err := emit(ctx, tx, TopicMeetingEnded, newLifecycleEvent(b, s, now)); err != nil {
				return err
			}
			result = leaveResult(b, s, false)
			return nil

		case booking.StatusCompleted:
			result = leaveResult(b, s, true)
			return nil

		default:
			return invalidTransition(b, "leave")
		}
	})
	if err != nil {
		return nil, err
	}

	c.afterCommit(ctx, &cs)
	return result, nil
}

func leaveResult(b *booking.Booking, s *meeting.Session, replayed bool) *LeaveResult {
	r := &LeaveResult{
		BookingID:     b.ID(),
		BookingStatus: b.Status(),
		MeetingStatus: meeting.StatusPending,
		Replayed:      replayed,
	}
	if s != nil {
		r.MeetingStatus = s.Status()
		r.EndedAt = s.EndedAt()
	}
	return r
}

// expireSession closes an overrun session and completes its booking. The
// caller holds the booking lock.
func (c *Coordinator) expireSession(ctx context.Context, tx shared.Tx, b *booking.Booking, s *meeting.Session, now time.Time, cs *changeSet) error {
	fromSession := s.Status()
	if err := s.Expire(now); err != nil {
		return refuse(err, b, "expire")
	}
	from := b.Status()
	if err := b.Complete(now); err != nil {
		return refuse(err, b, "expire")
	}
	if err := saveSession(ctx, tx, s, fromSession); err != nil {
		return err
	}
	if err := saveBooking(ctx, tx, b, from); err != nil {
		return err
	}
	cs.meeting(fromSession, s.Status())
	cs.booking(from, b.Status())
	cs.disarm = true
	return emit(ctx, tx, TopicMeetingEnded, newLifecycleEvent(b, s, now))
}
