package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const insertOutboxEvent = `-- name: InsertOutboxEvent :exec
INSERT INTO outbox_events (id, aggregate_id, topic, payload, status, available_at, created_at)
VALUES ($1, $2, $3, $4, 'pending', $5, $5)
`

type InsertOutboxEventParams struct {
	ID          uuid.UUID
	AggregateID uuid.UUID
	Topic       string
	Payload     []byte
	CreatedAt   pgtype.Timestamptz
}

func (q *Queries) InsertOutboxEvent(ctx context.Context, db DBTX, arg InsertOutboxEventParams) error {
	_, err := db.Exec(ctx, insertOutboxEvent,
		arg.ID,
		arg.AggregateID,
		arg.Topic,
		arg.Payload,
		arg.CreatedAt,
	)
	return err
}

const claimPendingOutboxEvents = `-- name: ClaimPendingOutboxEvents :many
SELECT id, aggregate_id, topic, payload, status, attempts, last_error, available_at, created_at, published_at
FROM outbox_events
WHERE status = 'pending'
  AND available_at <= $1
ORDER BY available_at ASC, id ASC
LIMIT $2
FOR UPDATE SKIP LOCKED
`

type ClaimPendingOutboxEventsParams struct {
	Now   pgtype.Timestamptz
	Limit int32
}

func (q *Queries) ClaimPendingOutboxEvents(ctx context.Context, db DBTX, arg ClaimPendingOutboxEventsParams) ([]OutboxEvents, error) {
	rows, err := db.Query(ctx, claimPendingOutboxEvents, arg.Now, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []OutboxEvents
	for rows.Next() {
		var i OutboxEvents
		if err := rows.Scan(
			&i.ID,
			&i.AggregateID,
			&i.Topic,
			&i.Payload,
			&i.Status,
			&i.Attempts,
			&i.LastError,
			&i.AvailableAt,
			&i.CreatedAt,
			&i.PublishedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const markOutboxEventPublished = `-- name: MarkOutboxEventPublished :exec
UPDATE outbox_events
SET status = 'published',
    attempts = attempts + 1,
    published_at = $2
WHERE id = $1
`

type MarkOutboxEventPublishedParams struct {
	ID          uuid.UUID
	PublishedAt pgtype.Timestamptz
}

func (q *Queries) MarkOutboxEventPublished(ctx context.Context, db DBTX, arg MarkOutboxEventPublishedParams) error {
	_, err := db.Exec(ctx, markOutboxEventPublished, arg.ID, arg.PublishedAt)
	return err
}

const markOutboxEventFailed = `-- name: MarkOutboxEventFailed :exec
UPDATE outbox_events
SET attempts = attempts + 1,
    last_error = $2,
    available_at = $3,
    status = CASE WHEN attempts + 1 >= $4 THEN 'failed' ELSE 'pending' END
WHERE id = $1
`

type MarkOutboxEventFailedParams struct {
	ID          uuid.UUID
	LastError   pgtype.Text
	AvailableAt pgtype.Timestamptz
	MaxAttempts int32
}

func (q *Queries) MarkOutboxEventFailed(ctx context.Context, db DBTX, arg MarkOutboxEventFailedParams) error {
	_, err := db.Exec(ctx, markOutboxEventFailed, arg.ID, arg.LastError, arg.AvailableAt, arg.MaxAttempts)
	return err
}
