package booking

type Status string

const (
	StatusPendingPayment         Status = "PENDING_PAYMENT"
	StatusWaitingForProfessional Status = "WAITING_FOR_PROFESSIONAL"
	StatusConfirmed              Status = "CONFIRMED"
	StatusInProgress             Status = "IN_PROGRESS"
	StatusCompleted              Status = "COMPLETED"
	StatusCancelled              Status = "CANCELLED"
	StatusNoShow                 Status = "NO_SHOW"
)

// terminal statuses have no outgoing edges
var transitions = map[Status][]Status{
	StatusPendingPayment:         {StatusWaitingForProfessional, StatusCancelled},
	StatusWaitingForProfessional: {StatusConfirmed, StatusCancelled},
	StatusConfirmed:              {StatusInProgress, StatusCancelled, StatusNoShow},
	StatusInProgress:             {StatusCompleted},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPendingPayment, StatusWaitingForProfessional, StatusConfirmed,
		StatusInProgress, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusNoShow:
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

// IsLiveAfterAcceptance reports whether the booking went through CONFIRMED
// and still carries a usable meeting session.
func (s Status) IsLiveAfterAcceptance() bool {
	switch s {
	case StatusConfirmed, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}
