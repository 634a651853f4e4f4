package response

import (
	"consultation-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type PaymentSignalResponse struct {
	BookingID     uuid.UUID `json:"bookingId"`
	Outcome       string    `json:"outcome"`
	BookingStatus string    `json:"bookingStatus"`
}

func FromPaymentResult(r *commands.PaymentResult) *PaymentSignalResponse {
	return &PaymentSignalResponse{
		BookingID:     r.BookingID,
		Outcome:       string(r.Outcome),
		BookingStatus: r.BookingStatus.String(),
	}
}
