package response

import (
	"time"

	"consultation-booking/internal/usecase/commands"
	"consultation-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SessionResponse struct {
	ID            uuid.UUID  `json:"id"`
	RoomToken     string     `json:"roomToken,omitempty"`
	MeetingStatus string     `json:"meetingStatus"`
	StartedAt     *time.Time `json:"startedAt,omitempty"`
	EndedAt       *time.Time `json:"endedAt,omitempty"`
	ExpiresAt     *time.Time `json:"expiresAt,omitempty"`
}

type BookingResponse struct {
	ID               uuid.UUID        `json:"id"`
	ClientID         uuid.UUID        `json:"clientId"`
	ProfessionalID   uuid.UUID        `json:"professionalId"`
	ProfessionalName string           `json:"professionalName"`
	ScheduledAt      time.Time        `json:"scheduledAt"`
	DurationMinutes  int32            `json:"durationMinutes"`
	PriceCents       int64            `json:"priceCents"`
	Currency         string           `json:"currency"`
	Status           string           `json:"status"`
	Notes            *string          `json:"notes,omitempty"`
	CancelReason     *string          `json:"cancelReason,omitempty"`
	CanceledAt       *time.Time       `json:"canceledAt,omitempty"`
	CanceledBy       *uuid.UUID       `json:"canceledBy,omitempty"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
	Session          *SessionResponse `json:"session,omitempty"`
}

type BookingListResponse struct {
	Items      []*BookingResponse `json:"items"`
	NextCursor *string            `json:"nextCursor,omitempty"`
}

type BookingStatusResponse struct {
	BookingID     uuid.UUID  `json:"bookingId"`
	BookingStatus string     `json:"bookingStatus"`
	MeetingStatus string     `json:"meetingStatus"`
	RoomToken     *string    `json:"roomToken,omitempty"`
	ExpiresAt     *time.Time `json:"expiresAt,omitempty"`
}

type CancelResponse struct {
	BookingID  uuid.UUID `json:"bookingId"`
	Status     string    `json:"status"`
	Reason     string    `json:"reason"`
	CanceledAt time.Time `json:"canceledAt"`
}

type AcceptResponse struct {
	BookingID     uuid.UUID `json:"bookingId"`
	BookingStatus string    `json:"bookingStatus"`
	MeetingStatus string    `json:"meetingStatus"`
	RoomToken     string    `json:"roomToken"`
	Replayed      bool      `json:"replayed"`
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	var out BookingResponse
	if err := copier.CopyWithOption(&out, v, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	return &out, nil
}

func FromBookingList(items []*queries.BookingView, next *queries.Cursor) (*BookingListResponse, error) {
	out := &BookingListResponse{Items: make([]*BookingResponse, 0, len(items))}
	for _, v := range items {
		r, err := FromBookingView(v)
		if err != nil {
			return nil, err
		}
		out.Items = append(out.Items, r)
	}
	if next != nil && next.After != "" {
		after := next.After
		out.NextCursor = &after
	}
	return out, nil
}

func FromBookingStatus(v *queries.BookingStatusView) (*BookingStatusResponse, error) {
	var out BookingStatusResponse
	if err := copier.Copy(&out, v); err != nil {
		return nil, err
	}
	return &out, nil
}

func FromCancelResult(r *commands.CancelResult) *CancelResponse {
	return &CancelResponse{
		BookingID:  r.BookingID,
		Status:     r.Status.String(),
		Reason:     r.Reason,
		CanceledAt: r.CanceledAt,
	}
}

func FromAcceptResult(r *commands.AcceptResult) *AcceptResponse {
	return &AcceptResponse{
		BookingID:     r.BookingID,
		BookingStatus: r.BookingStatus.String(),
		MeetingStatus: r.MeetingStatus.String(),
		RoomToken:     r.RoomToken.String(),
		Replayed:      r.Replayed,
	}
}
