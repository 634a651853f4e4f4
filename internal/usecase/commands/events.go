package commands

import (
	"context"
	"encoding/json"
	"time"

	"consultation-booking/internal/domain/booking"
	"consultation-booking/internal/domain/meeting"
	"consultation-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// Outbox topics, used as AMQP routing keys by the relay.
const (
	TopicBookingCreated         = "booking.created"
	TopicBookingPaid            = "booking.paid"
	TopicBookingConfirmed       = "booking.confirmed"
	TopicMeetingRoomProvisioned = "meeting.room_provisioned"
	TopicBookingCancelled       = "booking.cancelled"
	TopicMeetingStarted         = "meeting.started"
	TopicMeetingEnded           = "meeting.ended"
	TopicBookingNoShow          = "booking.no_show"
)

type LifecycleEvent struct {
	BookingID      uuid.UUID  `json:"booking_id"`
	ClientID       uuid.UUID  `json:"client_id"`
	ProfessionalID uuid.UUID  `json:"professional_id"`
	BookingStatus  string     `json:"booking_status"`
	MeetingStatus  string     `json:"meeting_status,omitempty"`
	ScheduledAt    time.Time  `json:"scheduled_at"`
	RoomToken      string     `json:"room_token,omitempty"`
	StartedAt      *time.Time `json:"started_at,omitempty"`
	EndedAt        *time.Time `json:"ended_at,omitempty"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
	Reason         string     `json:"reason,omitempty"`
	OccurredAt     time.Time  `json:"occurred_at"`
}

func newLifecycleEvent(b *booking.Booking, s *meeting.Session, now time.Time) LifecycleEvent {
	evt := LifecycleEvent{
		BookingID:      b.ID(),
		ClientID:       b.ClientID(),
		ProfessionalID: b.ProfessionalID(),
		BookingStatus:  b.Status().String(),
		ScheduledAt:    b.Schedule().Start(),
		OccurredAt:     now,
	}
	if c := b.Cancellation(); c != nil {
		evt.Reason = c.Reason.String()
	}
	if s != nil {
		evt.MeetingStatus = s.Status().String()
		evt.StartedAt = s.StartedAt()
		evt.EndedAt = s.EndedAt()
		evt.ExpiresAt = s.ExpiresAt()
	}
	return evt
}

func emit(ctx context.Context, tx shared.Tx, topic string, evt LifecycleEvent) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	return tx.Outbox().Append(ctx, tx.DB(), shared.OutboxEvent{
		ID:          uuid.New(),
		AggregateID: evt.BookingID,
		Topic:       topic,
		Payload:     body,
		CreatedAt:   evt.OccurredAt,
	})
}
