package queries

import (
	"time"

	"github.com/google/uuid"
)

// BookingView is the read model of a booking together with its meeting session.
type BookingView struct {
	ID               uuid.UUID    `json:"id"`
	ClientID         uuid.UUID    `json:"client_id"`
	ProfessionalID   uuid.UUID    `json:"professional_id"`
	ProfessionalName string       `json:"professional_name"`
	ScheduledAt      time.Time    `json:"scheduled_at"`
	DurationMinutes  int32        `json:"duration_minutes"`
	PriceCents       int64        `json:"price_cents"`
	Currency         string       `json:"currency"`
	Status           string       `json:"status"`
	Notes            *string      `json:"notes,omitempty"`
	CancelReason     *string      `json:"cancel_reason,omitempty"`
	CanceledAt       *time.Time   `json:"canceled_at,omitempty"`
	CanceledBy       *uuid.UUID   `json:"canceled_by,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
	Session          *SessionView `json:"session,omitempty"`
}

type SessionView struct {
	ID            uuid.UUID  `json:"id"`
	RoomToken     string     `json:"room_token"`
	MeetingStatus string     `json:"meeting_status"`
	StartedAt     *time.Time `json:"started_at,omitempty"`
	EndedAt       *time.Time `json:"ended_at,omitempty"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
}

// BookingStatusView is the cached polling payload. RoomToken is cleared
// before it reaches anyone but the two parties.
type BookingStatusView struct {
	BookingID      uuid.UUID  `json:"booking_id"`
	ClientID       uuid.UUID  `json:"client_id"`
	ProfessionalID uuid.UUID  `json:"professional_id"`
	BookingStatus  string     `json:"booking_status"`
	MeetingStatus  string     `json:"meeting_status"`
	RoomToken      *string    `json:"room_token,omitempty"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
}

func (v *BookingView) IsParty(userID uuid.UUID) bool {
	return v.ClientID == userID || v.ProfessionalID == userID
}
