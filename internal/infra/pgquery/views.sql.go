package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingViewSelect = `SELECT b.id, b.client_id, b.professional_id, b.scheduled_at, b.duration_minutes, b.price_cents,
       b.currency, b.status, b.notes, b.cancel_reason, b.canceled_at, b.canceled_by, b.created_at, b.updated_at,
       p.display_name,
       s.id, s.room_token, s.meeting_status, s.started_at, s.ended_at, s.expires_at
FROM bookings b
JOIN professionals p ON p.user_id = b.professional_id
LEFT JOIN meeting_sessions s ON s.booking_id = b.id
`

func scanBookingView(row pgx.Row) (BookingViewRow, error) {
	var i BookingViewRow
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
		&i.ProfessionalName,
		&i.SessionID,
		&i.RoomToken,
		&i.MeetingStatus,
		&i.StartedAt,
		&i.EndedAt,
		&i.ExpiresAt,
	)
	return i, err
}

func collectBookingViews(rows pgx.Rows, err error) ([]BookingViewRow, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []BookingViewRow
	for rows.Next() {
		i, err := scanBookingView(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getBookingView = `-- name: GetBookingView :one
` + bookingViewSelect + `WHERE b.id = $1
`

func (q *Queries) GetBookingView(ctx context.Context, db DBTX, id uuid.UUID) (BookingViewRow, error) {
	return scanBookingView(db.QueryRow(ctx, getBookingView, id))
}

const listAwaitingAcceptanceFirstPage = `-- name: ListAwaitingAcceptanceFirstPage :many
` + bookingViewSelect + `WHERE b.professional_id = $1
  AND b.status = 'WAITING_FOR_PROFESSIONAL'
ORDER BY b.scheduled_at ASC, b.id ASC
LIMIT $2
`

type ListAwaitingAcceptanceFirstPageParams struct {
	ProfessionalID uuid.UUID
	Limit          int32
}

func (q *Queries) ListAwaitingAcceptanceFirstPage(ctx context.Context, db DBTX, arg ListAwaitingAcceptanceFirstPageParams) ([]BookingViewRow, error) {
	return collectBookingViews(db.Query(ctx, listAwaitingAcceptanceFirstPage, arg.ProfessionalID, arg.Limit))
}

const listAwaitingAcceptanceKeyset = `-- name: ListAwaitingAcceptanceKeyset :many
` + bookingViewSelect + `WHERE b.professional_id = $1
  AND b.status = 'WAITING_FOR_PROFESSIONAL'
  AND (b.scheduled_at, b.id) > ($2, $3)
ORDER BY b.scheduled_at ASC, b.id ASC
LIMIT $4
`

type ListAwaitingAcceptanceKeysetParams struct {
	ProfessionalID uuid.UUID
	ScheduledAt    pgtype.Timestamptz
	ID             uuid.UUID
	Limit          int32
}

func (q *Queries) ListAwaitingAcceptanceKeyset(ctx context.Context, db DBTX, arg ListAwaitingAcceptanceKeysetParams) ([]BookingViewRow, error) {
	return collectBookingViews(db.Query(ctx, listAwaitingAcceptanceKeyset, arg.ProfessionalID, arg.ScheduledAt, arg.ID, arg.Limit))
}

const listUpcomingFirstPage = `-- name: ListUpcomingFirstPage :many
` + bookingViewSelect + `WHERE (b.client_id = $1 OR b.professional_id = $1)
  AND b.status IN ('PENDING_PAYMENT', 'WAITING_FOR_PROFESSIONAL', 'CONFIRMED', 'IN_PROGRESS')
ORDER BY b.scheduled_at ASC, b.id ASC
LIMIT $2
`

type ListUpcomingFirstPageParams struct {
	UserID uuid.UUID
	Limit  int32
}

func (q *Queries) ListUpcomingFirstPage(ctx context.Context, db DBTX, arg ListUpcomingFirstPageParams) ([]BookingViewRow, error) {
	return collectBookingViews(db.Query(ctx, listUpcomingFirstPage, arg.UserID, arg.Limit))
}

const listUpcomingKeyset = `-- name: ListUpcomingKeyset :many
` + bookingViewSelect + `WHERE (b.client_id = $1 OR b.professional_id = $1)
  AND b.status IN ('PENDING_PAYMENT', 'WAITING_FOR_PROFESSIONAL', 'CONFIRMED', 'IN_PROGRESS')
  AND (b.scheduled_at, b.id) > ($2, $3)
ORDER BY b.scheduled_at ASC, b.id ASC
LIMIT $4
`

type ListUpcomingKeysetParams struct {
	UserID      uuid.UUID
	ScheduledAt pgtype.Timestamptz
	ID          uuid.UUID
	Limit       int32
}

func (q *Queries) ListUpcomingKeyset(ctx context.Context, db DBTX, arg ListUpcomingKeysetParams) ([]BookingViewRow, error) {
	return collectBookingViews(db.Query(ctx, listUpcomingKeyset, arg.UserID, arg.ScheduledAt, arg.ID, arg.Limit))
}
