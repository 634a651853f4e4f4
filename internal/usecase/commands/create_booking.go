package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"consultation-booking/internal/domain/booking"
	"consultation-booking/internal/domain/user"
	"consultation-booking/internal/infra"
	"consultation-booking/internal/pkg/errs"
	"consultation-booking/internal/usecase/queries"
	"consultation-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	createBookingEndpoint = "POST /bookings"
	idempotencyTTL        = 24 * time.Hour
)

type CreateBookingRequest struct {
	ProfessionalID  uuid.UUID
	ScheduledAt     time.Time
	DurationMinutes int
	Notes           string
}

type CreateBookingResult struct {
	Booking    *queries.BookingView
	IsReplayed bool
}

func (c *Coordinator) CreateBooking(ctx context.Context, req CreateBookingRequest, actor user.Actor, idempotencyKey uuid.UUID) (*CreateBookingResult, error) {
	if actor.Role != user.RoleClient {
		return nil, ErrForbidden
	}

	requestHash, err := hashCreateRequest(req)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}

	var (
		created    *booking.Booking
		replayedID uuid.UUID
		cs         changeSet
	)

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, replayedID = nil, uuid.Nil
		cs.reset(uuid.Nil, &actor.ID)

		now := c.clock.Now()
		expiresAt := now.Add(idempotencyTTL)

		inserted, err := tx.Idempotency().TryInsert(ctx, tx.DB(), idempotencyKey, actor.ID, createBookingEndpoint, requestHash, expiresAt)
		if err != nil {
			return errs.Mark(err, ErrIdempotencyCheckFailed)
		}
		if !inserted {
			id, err := c.resolveExistingKey(ctx, tx, idempotencyKey, actor.ID, requestHash, expiresAt)
			if err != nil {
				return err
			}
			if id != uuid.Nil {
				replayedID = id
				return nil
			}
		}

		b, err := c.newBooking(ctx, tx, req, actor)
		if err != nil {
			return err
		}
		if err := tx.Bookings().Create(ctx, tx.DB(), b); err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.Mark(err, ErrProfessionalNotFound)
			}
			return err
		}
		if err := tx.Idempotency().UpdateStatusCompleted(ctx, tx.DB(), idempotencyKey, actor.ID, b.ID()); err != nil {
			return err
		}
		if err := emit(ctx, tx, TopicBookingCreated, newLifecycleEvent(b, nil, now)); err != nil {
			return err
		}

		created = b
		cs.bookingID = b.ID()
		cs.booking("", b.Status())
		return nil
	})
	if err != nil {
		return nil, err
	}

	if replayedID != uuid.Nil {
		view, err := c.bookings.GetByIDSystem(ctx, replayedID)
		if err != nil {
			return nil, err
		}
		return &CreateBookingResult{Booking: view, IsReplayed: true}, nil
	}

	c.afterCommit(ctx, &cs)

	view, err := c.bookings.GetByIDSystem(ctx, created.ID())
	if err != nil {
		return nil, err
	}
	return &CreateBookingResult{Booking: view}, nil
}

// resolveExistingKey decides what a reused key means. It returns the booking
// to replay, or uuid.Nil when an expired key was reclaimed and the request
// should run again.
func (c *Coordinator) resolveExistingKey(ctx context.Context, tx shared.Tx, key, userID uuid.UUID, requestHash string, expiresAt time.Time) (uuid.UUID, error) {
	rec, err := tx.Reads().IdempotencyByKey(ctx, key, userID)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}

	expired := !rec.ExpiresAt.After(c.clock.Now())
	switch {
	case expired:
		claimed, err := tx.Idempotency().ClaimExpiredIdempotencyKey(ctx, tx.DB(), key, userID, requestHash, expiresAt)
		if err != nil {
			return uuid.Nil, errs.Mark(err, ErrIdempotencyCheckFailed)
		}
		if claimed == 0 {
			return uuid.Nil, ErrIdempotencyInProgress
		}
		return uuid.Nil, nil
	case rec.RequestHash != requestHash:
		return uuid.Nil, ErrDuplicateRequest
	case rec.Status == shared.IdempotencyStatusCompleted && rec.ResultBookingID != nil:
		return *rec.ResultBookingID, nil
	default:
		return uuid.Nil, ErrIdempotencyInProgress
	}
}

func (c *Coordinator) newBooking(ctx context.Context, tx shared.Tx, req CreateBookingRequest, actor user.Actor) (*booking.Booking, error) {
	pro, err := tx.Reads().ProfessionalByID(ctx, req.ProfessionalID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrProfessionalNotFound)
		}
		return nil, err
	}
	if !pro.Active {
		return nil, ErrProfessionalNotFound
	}

	schedule, err := booking.NewSchedule(req.ScheduledAt, req.DurationMinutes)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	note, err := booking.NewNote(req.Notes)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	services := &booking.Services{
		Clock:           c.clock,
		PriceCalculator: c.pricing,
		Policy:          c.policy,
	}
	spec := booking.ProfessionalSpec{
		ID:              pro.ID,
		HourlyRateCents: pro.HourlyRateCents,
		Currency:        pro.Currency,
		Active:          pro.Active,
	}
	b, err := booking.NewBooking(services, spec, actor.ID, schedule, note)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	return b, nil
}

func hashCreateRequest(req CreateBookingRequest) (string, error) {
	body, err := json.Marshal(struct {
		ProfessionalID  uuid.UUID `json:"professional_id"`
		ScheduledAt     time.Time `json:"scheduled_at"`
		DurationMinutes int       `json:"duration_minutes"`
		Notes           string    `json:"notes"`
	}{
		ProfessionalID:  req.ProfessionalID,
		ScheduledAt:     req.ScheduledAt.UTC(),
		DurationMinutes: req.DurationMinutes,
		Notes:           req.Notes,
	})
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:]), nil
}
