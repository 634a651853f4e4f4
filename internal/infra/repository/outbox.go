package repository

import (
	"context"
	"time"
	"unicode/utf8"

	"consultation-booking/internal/infra"
	"consultation-booking/internal/infra/pgquery"
	"consultation-booking/internal/pkg/pgconv"
	"consultation-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const maxLastErrorLength = 1000

type OutboxWriteQueries interface {
	InsertOutboxEvent(ctx context.Context, db pgquery.DBTX, arg pgquery.InsertOutboxEventParams) error
	ClaimPendingOutboxEvents(ctx context.Context, db pgquery.DBTX, arg pgquery.ClaimPendingOutboxEventsParams) ([]pgquery.OutboxEvents, error)
	MarkOutboxEventPublished(ctx context.Context, db pgquery.DBTX, arg pgquery.MarkOutboxEventPublishedParams) error
	MarkOutboxEventFailed(ctx context.Context, db pgquery.DBTX, arg pgquery.MarkOutboxEventFailedParams) error
}

type OutboxRepository struct {
	queries OutboxWriteQueries
}

func NewOutboxRepository(queries OutboxWriteQueries) *OutboxRepository {
	return &OutboxRepository{queries: queries}
}

func (r *OutboxRepository) Append(ctx context.Context, tx pgquery.DBTX, evt shared.OutboxEvent) error {
	params := pgquery.InsertOutboxEventParams{
		ID:          evt.ID,
		AggregateID: evt.AggregateID,
		Topic:       evt.Topic,
		Payload:     evt.Payload,
		CreatedAt:   pgconv.TimeToPgtype(evt.CreatedAt),
	}
	if err := r.queries.InsertOutboxEvent(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to append outbox event", err)
	}
	return nil
}

// ClaimPending locks due events with SKIP LOCKED so concurrent relays split the batch.
func (r *OutboxRepository) ClaimPending(ctx context.Context, tx pgquery.DBTX, now time.Time, limit int32) ([]shared.OutboxEvent, error) {
	rows, err := r.queries.ClaimPendingOutboxEvents(ctx, tx, pgquery.ClaimPendingOutboxEventsParams{
		Now:   pgconv.TimeToPgtype(now),
		Limit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim outbox events", err)
	}

	events := make([]shared.OutboxEvent, len(rows))
	for i, row := range rows {
		events[i] = shared.OutboxEvent{
			ID:          row.ID,
			AggregateID: row.AggregateID,
			Topic:       row.Topic,
			Payload:     row.Payload,
			Attempts:    row.Attempts,
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return events, nil
}

func (r *OutboxRepository) MarkPublished(ctx context.Context, tx pgquery.DBTX, id uuid.UUID, at time.Time) error {
	err := r.queries.MarkOutboxEventPublished(ctx, tx, pgquery.MarkOutboxEventPublishedParams{
		ID:          id,
		PublishedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark outbox event published", err)
	}
	return nil
}

func (r *OutboxRepository) MarkFailed(ctx context.Context, tx pgquery.DBTX, id uuid.UUID, cause string, retryAt time.Time, maxAttempts int32) error {
	if utf8.RuneCountInString(cause) > maxLastErrorLength {
		cause = string([]rune(cause)[:maxLastErrorLength])
	}
	err := r.queries.MarkOutboxEventFailed(ctx, tx, pgquery.MarkOutboxEventFailedParams{
		ID:          id,
		LastError:   pgconv.StringToPgtype(cause),
		AvailableAt: pgconv.TimeToPgtype(retryAt),
		MaxAttempts: maxAttempts,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark outbox event failed", err)
	}
	return nil
}
