package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const insertPaymentSignal = `-- name: InsertPaymentSignal :execrows
INSERT INTO payment_signals (source_event_id, booking_id, status, outcome, received_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (source_event_id) DO NOTHING
`

type InsertPaymentSignalParams struct {
	SourceEventID string
	BookingID     uuid.UUID
	Status        string
	Outcome       string
	ReceivedAt    pgtype.Timestamptz
}

// InsertPaymentSignal returns 0 when the source event was already recorded.
func (q *Queries) InsertPaymentSignal(ctx context.Context, db DBTX, arg InsertPaymentSignalParams) (int64, error) {
	result, err := db.Exec(ctx, insertPaymentSignal,
		arg.SourceEventID,
		arg.BookingID,
		arg.Status,
		arg.Outcome,
		arg.ReceivedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
