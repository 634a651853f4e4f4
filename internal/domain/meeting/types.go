package meeting

import "errors"

var (
	ErrInvalidTransition = errors.New("invalid meeting status transition")
	ErrInvalidStatus     = errors.New("invalid meeting status")
)

type Status string

const (
	// StatusPending is never stored; it is the projected status of a booking
	// that has no session yet.
	StatusPending   Status = "PENDING"
	StatusWaiting   Status = "WAITING"
	StatusActive    Status = "ACTIVE"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
	StatusExpired   Status = "EXPIRED"
)

var transitions = map[Status][]Status{
	StatusWaiting: {StatusActive, StatusCancelled},
	StatusActive:  {StatusCompleted, StatusExpired},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusWaiting, StatusActive, StatusCompleted, StatusCancelled, StatusExpired:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusExpired:
		return true
	default:
		return false
	}
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() || st == StatusPending {
		return "", ErrInvalidStatus
	}
	return st, nil
}
