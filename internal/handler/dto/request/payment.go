package request

import (
	"consultation-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

// PaymentSignalRequest is the provider payload, shared by the webhook and the
// broker consumer.
type PaymentSignalRequest struct {
	BookingID uuid.UUID `json:"bookingId" binding:"required"`
	Status    string    `json:"status" binding:"required,oneof=paid failed pending"`
	EventID   string    `json:"eventId" binding:"required,max=255"`
}

func (r *PaymentSignalRequest) ToCommand() commands.PaymentSignalInput {
	return commands.PaymentSignalInput{
		BookingID:     r.BookingID,
		Status:        r.Status,
		SourceEventID: r.EventID,
	}
}
