package readstore

import (
	"context"
	"time"

	"consultation-booking/internal/infra"
	"consultation-booking/internal/infra/pgquery"
	"consultation-booking/internal/pkg/pgconv"
	"consultation-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type DeadlineQueries interface {
	ListUnpaidBookingIDs(ctx context.Context, db pgquery.DBTX, arg pgquery.ListUnpaidBookingIDsParams) ([]uuid.UUID, error)
	ListAcceptanceOverdueBookingIDs(ctx context.Context, db pgquery.DBTX, arg pgquery.ListAcceptanceOverdueBookingIDsParams) ([]uuid.UUID, error)
	ListNoShowCandidateIDs(ctx context.Context, db pgquery.DBTX, arg pgquery.ListNoShowCandidateIDsParams) ([]uuid.UUID, error)
	ListOverrunSessionBookingIDs(ctx context.Context, db pgquery.DBTX, arg pgquery.ListOverrunSessionBookingIDsParams) ([]uuid.UUID, error)
	ListActiveSessionDeadlines(ctx context.Context, db pgquery.DBTX, limit int32) ([]pgquery.ListActiveSessionDeadlinesRow, error)
}

// DeadlineReadStore finds the bookings the deadline monitor has to act on.
type DeadlineReadStore struct {
	queries DeadlineQueries
	db      pgquery.DBTX
}

func NewDeadlineReadStore(queries DeadlineQueries, db pgquery.DBTX) *DeadlineReadStore {
	return &DeadlineReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *DeadlineReadStore) UnpaidBookingIDs(ctx context.Context, createdBefore time.Time, limit int32) ([]uuid.UUID, error) {
	ids, err := r.queries.ListUnpaidBookingIDs(ctx, r.db, pgquery.ListUnpaidBookingIDsParams{
		CreatedBefore: pgconv.TimeToPgtype(createdBefore),
		Limit:         limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list unpaid bookings", err)
	}
	return ids, nil
}

func (r *DeadlineReadStore) AcceptanceOverdueBookingIDs(ctx context.Context, scheduledBefore time.Time, limit int32) ([]uuid.UUID, error) {
	ids, err := r.queries.ListAcceptanceOverdueBookingIDs(ctx, r.db, pgquery.ListAcceptanceOverdueBookingIDsParams{
		ScheduledBefore: pgconv.TimeToPgtype(scheduledBefore),
		Limit:           limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list acceptance overdue bookings", err)
	}
	return ids, nil
}

func (r *DeadlineReadStore) NoShowCandidateIDs(ctx context.Context, endedBefore time.Time, limit int32) ([]uuid.UUID, error) {
	ids, err := r.queries.ListNoShowCandidateIDs(ctx, r.db, pgquery.ListNoShowCandidateIDsParams{
		EndedBefore: pgconv.TimeToPgtype(endedBefore),
		Limit:       limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list no-show candidates", err)
	}
	return ids, nil
}

func (r *DeadlineReadStore) OverrunSessionBookingIDs(ctx context.Context, now time.Time, limit int32) ([]uuid.UUID, error) {
	ids, err := r.queries.ListOverrunSessionBookingIDs(ctx, r.db, pgquery.ListOverrunSessionBookingIDsParams{
		Now:   pgconv.TimeToPgtype(now),
		Limit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overrun sessions", err)
	}
	return ids, nil
}

func (r *DeadlineReadStore) ActiveSessionDeadlines(ctx context.Context, limit int32) ([]shared.SessionDeadline, error) {
	rows, err := r.queries.ListActiveSessionDeadlines(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active session deadlines", err)
	}
	out := make([]shared.SessionDeadline, len(rows))
	for i, row := range rows {
		out[i] = shared.SessionDeadline{
			BookingID: row.BookingID,
			ExpiresAt: pgconv.TimeFromPgtype(row.ExpiresAt),
		}
	}
	return out, nil
}
