package meeting

import (
	"time"

	"consultation-booking/internal/domain/booking"
)

// Snapshot is the persisted state the waiting room is derived from.
// MeetingStatus is StatusPending when no session exists.
type Snapshot struct {
	BookingStatus booking.Status
	MeetingStatus Status
	RoomToken     RoomToken
	ExpiresAt     *time.Time
}

type WaitingRoom struct {
	BookingStatus  booking.Status
	MeetingStatus  Status
	CanJoin        bool
	CanStart       bool
	IsActive       bool
	IsWaiting      bool
	IsCompleted    bool
	NotReadyReason booking.NotReadyReason
	RoomToken      *RoomToken
	OpensAt        time.Time
	ClosesAt       time.Time
	ExpiresAt      *time.Time
	ServerTime     time.Time
}

// Project computes the waiting-room view. It has no side effects, so clients
// may poll it freely. The room token is only revealed when revealToken is set,
// which callers do for the two parties.
func Project(s Snapshot, window booking.JoinWindow, now time.Time, revealToken bool) WaitingRoom {
	overrun := s.MeetingStatus == StatusActive && s.ExpiresAt != nil && !now.Before(*s.ExpiresAt)

	wr := WaitingRoom{
		BookingStatus: s.BookingStatus,
		MeetingStatus: s.MeetingStatus,
		OpensAt:       window.OpensAt,
		ClosesAt:      window.ClosesAt,
		ExpiresAt:     s.ExpiresAt,
		ServerTime:    now,
	}
	wr.IsActive = s.MeetingStatus == StatusActive && !overrun
	wr.IsWaiting = s.BookingStatus == booking.StatusConfirmed && s.MeetingStatus == StatusWaiting
	wr.IsCompleted = s.BookingStatus.IsTerminal() || s.MeetingStatus.IsTerminal() || overrun

	switch {
	case wr.IsCompleted, wr.IsActive:
	case wr.IsWaiting:
		wr.NotReadyReason = window.Check(now)
	default:
		wr.NotReadyReason = booking.NotReadyNotConfirmed
	}

	wr.CanStart = wr.IsWaiting && wr.NotReadyReason == ""
	wr.CanJoin = revealToken && (wr.CanStart || wr.IsActive)

	if wr.CanJoin && s.RoomToken != "" {
		token := s.RoomToken
		wr.RoomToken = &token
	}
	return wr
}
