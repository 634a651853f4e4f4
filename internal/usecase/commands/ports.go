package commands

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// StatusInvalidator drops cached status projections after a committed change.
type StatusInvalidator interface {
	Invalidate(ctx context.Context, bookingID uuid.UUID)
}

// DeadlineScheduler observes session deadlines in-process. The periodic sweep
// stays authoritative, so a lost timer only delays expiry.
type DeadlineScheduler interface {
	Arm(bookingID uuid.UUID, at time.Time)
	Disarm(bookingID uuid.UUID)
}

type LifecycleMetrics interface {
	Transition(from, to string)
	PaymentSignal(outcome string)
}
