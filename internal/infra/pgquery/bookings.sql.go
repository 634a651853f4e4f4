package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingColumns = `id, client_id, professional_id, scheduled_at, duration_minutes, price_cents, currency,
       status, notes, cancel_reason, canceled_at, canceled_by, created_at, updated_at`

func scanBooking(row pgx.Row) (Bookings, error) {
	var i Bookings
	err := row.Scan(
		&i.ID,
		&i.ClientID,
		&i.ProfessionalID,
		&i.ScheduledAt,
		&i.DurationMinutes,
		&i.PriceCents,
		&i.Currency,
		&i.Status,
		&i.Notes,
		&i.CancelReason,
		&i.CanceledAt,
		&i.CanceledBy,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createBooking = `-- name: CreateBooking :exec
INSERT INTO bookings (
    id, client_id, professional_id, scheduled_at, duration_minutes, price_cents, currency,
    status, notes, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
`

type CreateBookingParams struct {
	ID              uuid.UUID
	ClientID        uuid.UUID
	ProfessionalID  uuid.UUID
	ScheduledAt     pgtype.Timestamptz
	DurationMinutes int32
	PriceCents      int64
	Currency        string
	Status          string
	Notes           pgtype.Text
	CreatedAt       pgtype.Timestamptz
	UpdatedAt       pgtype.Timestamptz
}

func (q *Queries) CreateBooking(ctx context.Context, db DBTX, arg CreateBookingParams) error {
	_, err := db.Exec(ctx, createBooking,
		arg.ID,
		arg.ClientID,
		arg.ProfessionalID,
		arg.ScheduledAt,
		arg.DurationMinutes,
		arg.PriceCents,
		arg.Currency,
		arg.Status,
		arg.Notes,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const getBookingByID = `-- name: GetBookingByID :one
SELECT ` + bookingColumns + `
FROM bookings
WHERE id = $1
`

func (q *Queries) GetBookingByID(ctx context.Context, db DBTX, id uuid.UUID) (Bookings, error) {
	return scanBooking(db.QueryRow(ctx, getBookingByID, id))
}

const lockBookingByID = `-- name: LockBookingByID :one
SELECT ` + bookingColumns + `
FROM bookings
WHERE id = $1
FOR UPDATE
`

// LockBookingByID takes the row lock that serializes every transition of one booking.
func (q *Queries) LockBookingByID(ctx context.Context, db DBTX, id uuid.UUID) (Bookings, error) {
	return scanBooking(db.QueryRow(ctx, lockBookingByID, id))
}

const updateBookingStatus = `-- name: UpdateBookingStatus :execrows
UPDATE bookings
SET status        = $3,
    cancel_reason = $4,
    canceled_at   = $5,
    canceled_by   = $6,
    updated_at    = $7
WHERE id = $1
  AND status = $2
`

type UpdateBookingStatusParams struct {
	ID           uuid.UUID
	FromStatus   string
	ToStatus     string
	CancelReason pgtype.Text
	CanceledAt   pgtype.Timestamptz
	CanceledBy   pgtype.UUID
	UpdatedAt    pgtype.Timestamptz
}

func (q *Queries) UpdateBookingStatus(ctx context.Context, db DBTX, arg UpdateBookingStatusParams) (int64, error) {
	result, err := db.Exec(ctx, updateBookingStatus,
		arg.ID,
		arg.FromStatus,
		arg.ToStatus,
		arg.CancelReason,
		arg.CanceledAt,
		arg.CanceledBy,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const listUnpaidBookingIDs = `-- name: ListUnpaidBookingIDs :many
SELECT id
FROM bookings
WHERE status = 'PENDING_PAYMENT'
  AND created_at <= $1
ORDER BY created_at ASC
LIMIT $2
`

type ListUnpaidBookingIDsParams struct {
	CreatedBefore pgtype.Timestamptz
	Limit         int32
}

func (q *Queries) ListUnpaidBookingIDs(ctx context.Context, db DBTX, arg ListUnpaidBookingIDsParams) ([]uuid.UUID, error) {
	return collectIDs(db.Query(ctx, listUnpaidBookingIDs, arg.CreatedBefore, arg.Limit))
}

const listAcceptanceOverdueBookingIDs = `-- name: ListAcceptanceOverdueBookingIDs :many
SELECT id
FROM bookings
WHERE status = 'WAITING_FOR_PROFESSIONAL'
  AND scheduled_at <= $1
ORDER BY scheduled_at ASC
LIMIT $2
`

type ListAcceptanceOverdueBookingIDsParams struct {
	ScheduledBefore pgtype.Timestamptz
	Limit           int32
}

func (q *Queries) ListAcceptanceOverdueBookingIDs(ctx context.Context, db DBTX, arg ListAcceptanceOverdueBookingIDsParams) ([]uuid.UUID, error) {
	return collectIDs(db.Query(ctx, listAcceptanceOverdueBookingIDs, arg.ScheduledBefore, arg.Limit))
}

const listNoShowCandidateIDs = `-- name: ListNoShowCandidateIDs :many
SELECT id
FROM bookings
WHERE status = 'CONFIRMED'
  AND scheduled_at + make_interval(mins => duration_minutes) <= $1
ORDER BY scheduled_at ASC
LIMIT $2
`

type ListNoShowCandidateIDsParams struct {
	EndedBefore pgtype.Timestamptz
	Limit       int32
}

// ListNoShowCandidateIDs returns confirmed bookings whose slot ended before EndedBefore.
// Callers subtract the grace period from now.
func (q *Queries) ListNoShowCandidateIDs(ctx context.Context, db DBTX, arg ListNoShowCandidateIDsParams) ([]uuid.UUID, error) {
	return collectIDs(db.Query(ctx, listNoShowCandidateIDs, arg.EndedBefore, arg.Limit))
}

func collectIDs(rows pgx.Rows, err error) ([]uuid.UUID, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		items = append(items, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
