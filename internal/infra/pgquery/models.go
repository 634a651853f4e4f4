package pgquery

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Bookings struct {
	ID              uuid.UUID
	ClientID        uuid.UUID
	ProfessionalID  uuid.UUID
	ScheduledAt     pgtype.Timestamptz
	DurationMinutes int32
	PriceCents      int64
	Currency        string
	Status          string
	Notes           pgtype.Text
	CancelReason    pgtype.Text
	CanceledAt      pgtype.Timestamptz
	CanceledBy      pgtype.UUID
	CreatedAt       pgtype.Timestamptz
	UpdatedAt       pgtype.Timestamptz
}

type MeetingSessions struct {
	ID            uuid.UUID
	BookingID     uuid.UUID
	RoomToken     string
	MeetingStatus string
	MaxDurationMs int64
	StartedAt     pgtype.Timestamptz
	EndedAt       pgtype.Timestamptz
	ExpiresAt     pgtype.Timestamptz
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

type Professionals struct {
	UserID          uuid.UUID
	DisplayName     string
	HourlyRateCents int64
	Currency        string
	IsActive        bool
}

type IdempotencyKeys struct {
	Key             uuid.UUID
	UserID          uuid.UUID
	Endpoint        string
	RequestHash     string
	Status          string
	ResultBookingID pgtype.UUID
	ExpiresAt       pgtype.Timestamptz
	CreatedAt       pgtype.Timestamptz
	UpdatedAt       pgtype.Timestamptz
}

type OutboxEvents struct {
	ID          uuid.UUID
	AggregateID uuid.UUID
	Topic       string
	Payload     []byte
	Status      string
	Attempts    int32
	LastError   pgtype.Text
	AvailableAt pgtype.Timestamptz
	CreatedAt   pgtype.Timestamptz
	PublishedAt pgtype.Timestamptz
}

// BookingViewRow is a booking joined with its session and professional profile.
type BookingViewRow struct {
	Bookings
	ProfessionalName string
	SessionID        pgtype.UUID
	RoomToken        pgtype.Text
	MeetingStatus    pgtype.Text
	StartedAt        pgtype.Timestamptz
	EndedAt          pgtype.Timestamptz
	ExpiresAt        pgtype.Timestamptz
}
