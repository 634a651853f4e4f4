package booking

import "time"

const DefaultMeetingMaxDuration = 18 * time.Minute

// Policy holds the time rules the lifecycle is enforced with. A zero
// PaymentTimeout keeps unpaid bookings open indefinitely.
type Policy struct {
	MeetingMaxDuration time.Duration
	JoinEarly          time.Duration
	NoShowGrace        time.Duration
	AcceptanceCutoff   time.Duration
	PaymentTimeout     time.Duration
	MinLeadTime        time.Duration
	MinDurationMinutes int
	MaxDurationMinutes int
}

func DefaultPolicy() Policy {
	return Policy{
		MeetingMaxDuration: DefaultMeetingMaxDuration,
		JoinEarly:          10 * time.Minute,
		NoShowGrace:        5 * time.Minute,
		AcceptanceCutoff:   0,
		PaymentTimeout:     time.Hour,
		MinLeadTime:        30 * time.Minute,
		MinDurationMinutes: 15,
		MaxDurationMinutes: 240,
	}
}

type NotReadyReason string

const (
	NotReadyTooEarly     NotReadyReason = "too_early"
	NotReadyTooLate      NotReadyReason = "too_late"
	NotReadyNotConfirmed NotReadyReason = "not_confirmed"
)

// JoinWindow is the half-open interval [OpensAt, ClosesAt) in which a party may
// start the meeting.
type JoinWindow struct {
	OpensAt  time.Time
	ClosesAt time.Time
}

// Check returns the empty reason when now lies inside the window.
func (w JoinWindow) Check(now time.Time) NotReadyReason {
	switch {
	case now.Before(w.OpensAt):
		return NotReadyTooEarly
	case !now.Before(w.ClosesAt):
		return NotReadyTooLate
	default:
		return ""
	}
}

func (p Policy) JoinWindow(s Schedule) JoinWindow {
	return JoinWindow{
		OpensAt:  s.Start().Add(-p.JoinEarly),
		ClosesAt: p.NoShowDeadline(s),
	}
}

// NoShowDeadline is the end of the scheduled slot plus the grace period.
func (p Policy) NoShowDeadline(s Schedule) time.Time {
	return s.End().Add(p.NoShowGrace)
}

func (p Policy) AcceptanceDeadline(s Schedule) time.Time {
	return s.Start().Add(-p.AcceptanceCutoff)
}

func (p Policy) PaymentDeadline(createdAt time.Time) (time.Time, bool) {
	if p.PaymentTimeout <= 0 {
		return time.Time{}, false
	}
	return createdAt.Add(p.PaymentTimeout), true
}

func (p Policy) validateSchedule(s Schedule, now time.Time) error {
	if p.MinDurationMinutes > 0 && s.DurationMinutes() < p.MinDurationMinutes {
		return ErrInvalidDuration
	}
	if p.MaxDurationMinutes > 0 && s.DurationMinutes() > p.MaxDurationMinutes {
		return ErrInvalidDuration
	}
	if s.Start().Before(now.Add(p.MinLeadTime)) {
		return ErrLeadTimeNotMet
	}
	return nil
}
