package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const sessionColumns = `id, booking_id, room_token, meeting_status, max_duration_ms, started_at, ended_at,
       expires_at, created_at, updated_at`

func scanSession(row pgx.Row) (MeetingSessions, error) {
	var i MeetingSessions
	err := row.Scan(
		&i.ID,
		&i.BookingID,
		&i.RoomToken,
		&i.MeetingStatus,
		&i.MaxDurationMs,
		&i.StartedAt,
		&i.EndedAt,
		&i.ExpiresAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createMeetingSession = `-- name: CreateMeetingSession :exec
INSERT INTO meeting_sessions (
    id, booking_id, room_token, meeting_status, max_duration_ms, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7)
`

type CreateMeetingSessionParams struct {
	ID            uuid.UUID
	BookingID     uuid.UUID
	RoomToken     string
	MeetingStatus string
	MaxDurationMs int64
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

func (q *Queries) CreateMeetingSession(ctx context.Context, db DBTX, arg CreateMeetingSessionParams) error {
	_, err := db.Exec(ctx, createMeetingSession,
		arg.ID,
		arg.BookingID,
		arg.RoomToken,
		arg.MeetingStatus,
		arg.MaxDurationMs,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const getMeetingSessionByBookingID = `-- name: GetMeetingSessionByBookingID :one
SELECT ` + sessionColumns + `
FROM meeting_sessions
WHERE booking_id = $1
`

func (q *Queries) GetMeetingSessionByBookingID(ctx context.Context, db DBTX, bookingID uuid.UUID) (MeetingSessions, error) {
	return scanSession(db.QueryRow(ctx, getMeetingSessionByBookingID, bookingID))
}

const lockMeetingSessionByBookingID = `-- name: LockMeetingSessionByBookingID :one
SELECT ` + sessionColumns + `
FROM meeting_sessions
WHERE booking_id = $1
FOR UPDATE
`

func (q *Queries) LockMeetingSessionByBookingID(ctx context.Context, db DBTX, bookingID uuid.UUID) (MeetingSessions, error) {
	return scanSession(db.QueryRow(ctx, lockMeetingSessionByBookingID, bookingID))
}

const updateMeetingSessionStatus = `-- name: UpdateMeetingSessionStatus :execrows
UPDATE meeting_sessions
SET meeting_status = $3,
    started_at     = $4,
    ended_at       = $5,
    expires_at     = $6,
    updated_at     = $7
WHERE id = $1
  AND meeting_status = $2
`

type UpdateMeetingSessionStatusParams struct {
	ID         uuid.UUID
	FromStatus string
	ToStatus   string
	StartedAt  pgtype.Timestamptz
	EndedAt    pgtype.Timestamptz
	ExpiresAt  pgtype.Timestamptz
	UpdatedAt  pgtype.Timestamptz
}

func (q *Queries) UpdateMeetingSessionStatus(ctx context.Context, db DBTX, arg UpdateMeetingSessionStatusParams) (int64, error) {
	result, err := db.Exec(ctx, updateMeetingSessionStatus,
		arg.ID,
		arg.FromStatus,
		arg.ToStatus,
		arg.StartedAt,
		arg.EndedAt,
		arg.ExpiresAt,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const listOverrunSessionBookingIDs = `-- name: ListOverrunSessionBookingIDs :many
SELECT booking_id
FROM meeting_sessions
WHERE meeting_status = 'ACTIVE'
  AND expires_at <= $1
ORDER BY expires_at ASC
LIMIT $2
`

type ListOverrunSessionBookingIDsParams struct {
	Now   pgtype.Timestamptz
	Limit int32
}

func (q *Queries) ListOverrunSessionBookingIDs(ctx context.Context, db DBTX, arg ListOverrunSessionBookingIDsParams) ([]uuid.UUID, error) {
	return collectIDs(db.Query(ctx, listOverrunSessionBookingIDs, arg.Now, arg.Limit))
}

const listActiveSessionDeadlines = `-- name: ListActiveSessionDeadlines :many
SELECT booking_id, expires_at
FROM meeting_sessions
WHERE meeting_status = 'ACTIVE'
ORDER BY expires_at ASC
LIMIT $1
`

type ListActiveSessionDeadlinesRow struct {
	BookingID uuid.UUID
	ExpiresAt pgtype.Timestamptz
}

// ListActiveSessionDeadlines feeds the timer wheel on startup.
func (q *Queries) ListActiveSessionDeadlines(ctx context.Context, db DBTX, limit int32) ([]ListActiveSessionDeadlinesRow, error) {
	rows, err := db.Query(ctx, listActiveSessionDeadlines, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListActiveSessionDeadlinesRow
	for rows.Next() {
		var i ListActiveSessionDeadlinesRow
		if err := rows.Scan(&i.BookingID, &i.ExpiresAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
