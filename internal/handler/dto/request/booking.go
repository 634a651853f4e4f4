package request

import (
	"time"

	"consultation-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ProfessionalID  uuid.UUID `json:"professionalId" binding:"required"`
	ScheduledAt     time.Time `json:"scheduledAt" binding:"required"`
	DurationMinutes int       `json:"durationMinutes" binding:"required,min=1"`
	Notes           string    `json:"notes" binding:"max=2000"`
}

func (r *CreateBookingRequest) ToCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		ProfessionalID:  r.ProfessionalID,
		ScheduledAt:     r.ScheduledAt,
		DurationMinutes: r.DurationMinutes,
		Notes:           r.Notes,
	}
}

// ReasonRequest is the optional body of cancel and reject. An empty reason
// falls back to a default chosen by the operation.
type ReasonRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

type ListBookingsQuery struct {
	Cursor string `form:"cursor"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=200"`
}
