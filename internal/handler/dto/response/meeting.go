package response

import (
	"time"

	"consultation-booking/internal/domain/meeting"
	"consultation-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type WaitingRoomResponse struct {
	BookingStatus  string     `json:"bookingStatus"`
	MeetingStatus  string     `json:"meetingStatus"`
	CanJoin        bool       `json:"canJoin"`
	CanStart       bool       `json:"canStart"`
	IsActive       bool       `json:"isActive"`
	IsWaiting      bool       `json:"isWaiting"`
	IsCompleted    bool       `json:"isCompleted"`
	NotReadyReason string     `json:"notReadyReason,omitempty"`
	RoomToken      *string    `json:"roomToken,omitempty"`
	OpensAt        time.Time  `json:"opensAt"`
	ClosesAt       time.Time  `json:"closesAt"`
	ExpiresAt      *time.Time `json:"expiresAt,omitempty"`
	ServerTime     time.Time  `json:"serverTime"`
}

type JoinResponse struct {
	BookingID     uuid.UUID `json:"bookingId"`
	BookingStatus string    `json:"bookingStatus"`
	MeetingStatus string    `json:"meetingStatus"`
	RoomToken     string    `json:"roomToken"`
	StartedAt     time.Time `json:"startedAt"`
	ExpiresAt     time.Time `json:"expiresAt"`
	AlreadyActive bool      `json:"alreadyActive"`
}

type LeaveResponse struct {
	BookingID     uuid.UUID  `json:"bookingId"`
	BookingStatus string     `json:"bookingStatus"`
	MeetingStatus string     `json:"meetingStatus"`
	EndedAt       *time.Time `json:"endedAt,omitempty"`
	Replayed      bool       `json:"replayed"`
}

// NotReadyDetail explains a refused join.
type NotReadyDetail struct {
	Reason     string    `json:"reason"`
	OpensAt    time.Time `json:"opensAt"`
	ClosesAt   time.Time `json:"closesAt"`
	ServerTime time.Time `json:"serverTime"`
}

func FromWaitingRoom(wr *meeting.WaitingRoom) *WaitingRoomResponse {
	out := &WaitingRoomResponse{
		BookingStatus:  wr.BookingStatus.String(),
		MeetingStatus:  wr.MeetingStatus.String(),
		CanJoin:        wr.CanJoin,
		CanStart:       wr.CanStart,
		IsActive:       wr.IsActive,
		IsWaiting:      wr.IsWaiting,
		IsCompleted:    wr.IsCompleted,
		NotReadyReason: string(wr.NotReadyReason),
		OpensAt:        wr.OpensAt,
		ClosesAt:       wr.ClosesAt,
		ExpiresAt:      wr.ExpiresAt,
		ServerTime:     wr.ServerTime,
	}
	if wr.RoomToken != nil {
		token := wr.RoomToken.String()
		out.RoomToken = &token
	}
	return out
}

func FromJoinResult(r *commands.JoinResult) *JoinResponse {
	return &JoinResponse{
		BookingID:     r.BookingID,
		BookingStatus: r.BookingStatus.String(),
		MeetingStatus: r.MeetingStatus.String(),
		RoomToken:     r.RoomToken.String(),
		StartedAt:     r.StartedAt,
		ExpiresAt:     r.ExpiresAt,
		AlreadyActive: r.AlreadyActive,
	}
}

func FromLeaveResult(r *commands.LeaveResult) *LeaveResponse {
	return &LeaveResponse{
		BookingID:     r.BookingID,
		BookingStatus: r.BookingStatus.String(),
		MeetingStatus: r.MeetingStatus.String(),
		EndedAt:       r.EndedAt,
		Replayed:      r.Replayed,
	}
}
