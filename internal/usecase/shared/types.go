package shared

import (
	"time"

	"github.com/google/uuid"
)

type ProfessionalSnapshot struct {
	ID              uuid.UUID
	DisplayName     string
	HourlyRateCents int64
	Currency        string
	Active          bool
}

type IdempotencyRecord struct {
	Key             uuid.UUID
	UserID          uuid.UUID
	Status          string
	RequestHash     string
	ResultBookingID *uuid.UUID
	ExpiresAt       time.Time
}

const (
	IdempotencyStatusProcessing = "processing"
	IdempotencyStatusCompleted  = "completed"
)

type SessionDeadline struct {
	BookingID uuid.UUID
	ExpiresAt time.Time
}

type OutboxEvent struct {
	ID          uuid.UUID
	AggregateID uuid.UUID
	Topic       string
	Payload     []byte
	Attempts    int32
	CreatedAt   time.Time
}
