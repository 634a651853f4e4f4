package converter

import (
	"fmt"

	"consultation-booking/internal/domain/booking"
	"consultation-booking/internal/infra/pgquery"
	"consultation-booking/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) pgquery.CreateBookingParams {
	return pgquery.CreateBookingParams{
		ID:              b.ID(),
		ClientID:        b.ClientID(),
		ProfessionalID:  b.ProfessionalID(),
		ScheduledAt:     pgconv.TimeToPgtype(b.Schedule().Start()),
		DurationMinutes: pgconv.IntToInt32(b.Schedule().DurationMinutes()),
		PriceCents:      b.Price().Cents(),
		Currency:        b.Price().Currency(),
		Status:          b.Status().String(),
		Notes:           pgconv.OptionalText(b.Note().String()),
		CreatedAt:       pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingToStatusParams(b *booking.Booking, from booking.Status) pgquery.UpdateBookingStatusParams {
	params := pgquery.UpdateBookingStatusParams{
		ID:         b.ID(),
		FromStatus: from.String(),
		ToStatus:   b.Status().String(),
		UpdatedAt:  pgconv.TimeToPgtype(b.UpdatedAt()),
	}
	if c := b.Cancellation(); c != nil {
		params.CancelReason = pgconv.StringToPgtype(c.Reason.String())
		params.CanceledAt = pgconv.TimeToPgtype(c.CanceledAt)
		params.CanceledBy = pgconv.UUIDPtrToPgtype(c.CanceledBy)
	}
	return params
}

func BookingFromRow(row pgquery.Bookings) (*booking.Booking, error) {
	schedule, err := booking.NewSchedule(row.ScheduledAt.Time, int(row.DurationMinutes))
	if err != nil {
		return nil, fmt.Errorf("booking %s: %w", row.ID, err)
	}
	price, err := booking.NewMoney(row.PriceCents, row.Currency)
	if err != nil {
		return nil, fmt.Errorf("booking %s: %w", row.ID, err)
	}
	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return nil, fmt.Errorf("booking %s: %w", row.ID, err)
	}
	note, err := booking.NewNote(row.Notes.String)
	if err != nil {
		return nil, fmt.Errorf("booking %s: %w", row.ID, err)
	}

	var cancellation *booking.Cancellation
	if row.CanceledAt.Valid {
		reason, err := booking.NewCancelReason(row.CancelReason.String, "")
		if err != nil {
			return nil, fmt.Errorf("booking %s: %w", row.ID, err)
		}
		cancellation = &booking.Cancellation{
			Reason:     reason,
			CanceledAt: row.CanceledAt.Time,
			CanceledBy: pgconv.UUIDPtrFromPgtype(row.CanceledBy),
		}
	}

	return booking.ReconstructBooking(
		row.ID,
		row.ClientID,
		row.ProfessionalID,
		schedule,
		price,
		status,
		note,
		cancellation,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
