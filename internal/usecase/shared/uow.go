package shared

import (
	"context"
	"time"

	"consultation-booking/internal/domain/booking"
	"consultation-booking/internal/domain/meeting"
	"consultation-booking/internal/domain/payment"
	"consultation-booking/internal/infra/pgquery"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db pgquery.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Sessions() SessionRepository
	PaymentSignals() PaymentSignalRepository
	Idempotency() IdempotencyRepository
	Outbox() OutboxRepository
	Reads() CommandReads
	DB() pgquery.DBTX
}

type CommandReads interface {
	ProfessionalByID(ctx context.Context, id uuid.UUID) (*ProfessionalSnapshot, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
	DeadlineCandidates
}

// DeadlineCandidates lists the bookings whose time-based transition is due.
type DeadlineCandidates interface {
	UnpaidBookingIDs(ctx context.Context, createdBefore time.Time, limit int32) ([]uuid.UUID, error)
	AcceptanceOverdueBookingIDs(ctx context.Context, scheduledBefore time.Time, limit int32) ([]uuid.UUID, error)
	NoShowCandidateIDs(ctx context.Context, endedBefore time.Time, limit int32) ([]uuid.UUID, error)
	OverrunSessionBookingIDs(ctx context.Context, now time.Time, limit int32) ([]uuid.UUID, error)
	ActiveSessionDeadlines(ctx context.Context, limit int32) ([]SessionDeadline, error)
}

// BookingRepository writes bookings. Lock takes the row lock every transition
// of the booking is serialized on; UpdateStatus reports KindConflict when the
// stored status is no longer from.
type BookingRepository interface {
	Create(ctx context.Context, tx pgquery.DBTX, b *booking.Booking) error
	Lock(ctx context.Context, tx pgquery.DBTX, id uuid.UUID) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, tx pgquery.DBTX, b *booking.Booking, from booking.Status) error
}

type SessionRepository interface {
	Create(ctx context.Context, tx pgquery.DBTX, s *meeting.Session) error
	LockByBookingID(ctx context.Context, tx pgquery.DBTX, bookingID uuid.UUID) (*meeting.Session, error)
	UpdateStatus(ctx context.Context, tx pgquery.DBTX, s *meeting.Session, from meeting.Status) error
}

type PaymentSignalRepository interface {
	// Record returns false when the source event was already stored.
	Record(ctx context.Context, tx pgquery.DBTX, sig payment.Signal, outcome payment.Outcome) (bool, error)
}

type IdempotencyRepository interface {
	// TryInsert returns false when the key already exists for the user.
	TryInsert(ctx context.Context, tx pgquery.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	UpdateStatusCompleted(ctx context.Context, tx pgquery.DBTX, key, userID uuid.UUID, bookingID uuid.UUID) error
	ClaimExpiredIdempotencyKey(ctx context.Context, tx pgquery.DBTX, key, userID uuid.UUID, requestHash string, expiresAt time.Time) (int64, error)
}

type OutboxRepository interface {
	Append(ctx context.Context, tx pgquery.DBTX, evt OutboxEvent) error
	ClaimPending(ctx context.Context, tx pgquery.DBTX, now time.Time, limit int32) ([]OutboxEvent, error)
	MarkPublished(ctx context.Context, tx pgquery.DBTX, id uuid.UUID, at time.Time) error
	MarkFailed(ctx context.Context, tx pgquery.DBTX, id uuid.UUID, cause string, retryAt time.Time, maxAttempts int32) error
}
