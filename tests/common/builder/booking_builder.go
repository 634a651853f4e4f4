//go:build unit || e2e

package builder

import (
	"time"

	"consultation-booking/internal/domain/booking"
	reqdto "consultation-booking/internal/handler/dto/request"
	"consultation-booking/internal/infra/pgquery"
	"consultation-booking/internal/pkg/clock"
	"consultation-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingBuilder struct {
	ClientID           uuid.UUID
	ProfessionalID     uuid.UUID
	ProfessionalName   string
	ProfessionalActive bool
	HourlyRateCents    int64
	Currency           string
	ScheduledAt        time.Time
	DurationMinutes    int
	Notes              string
	Status             booking.Status
	Now                time.Time
	Policy             booking.Policy
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ClientID:           uuid.New(),
		ProfessionalID:     uuid.New(),
		ProfessionalName:   "Dr. Test",
		ProfessionalActive: true,
		HourlyRateCents:    12000,
		Currency:           "usd",
		ScheduledAt:        now.Add(2 * time.Hour),
		DurationMinutes:    30,
		Notes:              "first consultation",
		Status:             booking.StatusPendingPayment,
		Now:                now,
		Policy:             booking.DefaultPolicy(),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) Professional() booking.ProfessionalSpec {
	return booking.ProfessionalSpec{
		ID:              b.ProfessionalID,
		HourlyRateCents: b.HourlyRateCents,
		Currency:        b.Currency,
		Active:          b.ProfessionalActive,
	}
}

// BuildDomain creates a fresh PENDING_PAYMENT booking through the factory.
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	schedule, err := booking.NewSchedule(b.ScheduledAt, b.DurationMinutes)
	if err != nil {
		return nil, err
	}
	note, err := booking.NewNote(b.Notes)
	if err != nil {
		return nil, err
	}
	services := &booking.Services{
		Clock:           clock.NewMockClock(b.Now),
		PriceCalculator: booking.NewHourlyRateCalculator(),
		Policy:          b.Policy,
	}
	return booking.NewBooking(services, b.Professional(), b.ClientID, schedule, note)
}

// BuildDomainInStatus reconstructs a booking already sitting in b.Status.
func (b *BookingBuilder) BuildDomainInStatus() *booking.Booking {
	schedule, _ := booking.NewSchedule(b.ScheduledAt, b.DurationMinutes)
	note, _ := booking.NewNote(b.Notes)
	price, _ := booking.NewMoney(b.price(), b.Currency)
	var cancellation *booking.Cancellation
	if b.Status == booking.StatusCancelled {
		reason, _ := booking.NewCancelReason("", "cancelled by client")
		cancellation = &booking.Cancellation{Reason: reason, CanceledAt: b.Now, CanceledBy: &b.ClientID}
	}
	return booking.ReconstructBooking(uuid.New(), b.ClientID, b.ProfessionalID, schedule, price, b.Status, note, cancellation, b.Now, b.Now)
}

func (b *BookingBuilder) BuildRow() pgquery.Bookings {
	row := pgquery.Bookings{
		ID:              uuid.New(),
		ClientID:        b.ClientID,
		ProfessionalID:  b.ProfessionalID,
		ScheduledAt:     pgtype.Timestamptz{Time: b.ScheduledAt, Valid: true},
		DurationMinutes: int32(b.DurationMinutes),
		PriceCents:      b.price(),
		Currency:        "USD",
		Status:          b.Status.String(),
		CreatedAt:       pgtype.Timestamptz{Time: b.Now, Valid: true},
		UpdatedAt:       pgtype.Timestamptz{Time: b.Now, Valid: true},
	}
	if b.Notes != "" {
		row.Notes = pgtype.Text{String: b.Notes, Valid: true}
	}
	return row
}

func (b *BookingBuilder) BuildViewRow() pgquery.BookingViewRow {
	return pgquery.BookingViewRow{
		Bookings:         b.BuildRow(),
		ProfessionalName: b.ProfessionalName,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	var notes *string
	if b.Notes != "" {
		n := b.Notes
		notes = &n
	}
	return &queries.BookingView{
		ID:               uuid.New(),
		ClientID:         b.ClientID,
		ProfessionalID:   b.ProfessionalID,
		ProfessionalName: b.ProfessionalName,
		ScheduledAt:      b.ScheduledAt,
		DurationMinutes:  int32(b.DurationMinutes),
		PriceCents:       b.price(),
		Currency:         "USD",
		Status:           b.Status.String(),
		Notes:            notes,
		CreatedAt:        b.Now,
		UpdatedAt:        b.Now,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ProfessionalID:  b.ProfessionalID,
		ScheduledAt:     b.ScheduledAt,
		DurationMinutes: b.DurationMinutes,
		Notes:           b.Notes,
	}
}

func (b *BookingBuilder) price() int64 {
	return (b.HourlyRateCents*int64(b.DurationMinutes) + 30) / 60
}
