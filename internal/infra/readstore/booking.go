package readstore

import (
	"context"
	"time"

	"consultation-booking/internal/infra"
	"consultation-booking/internal/infra/pgquery"
	"consultation-booking/internal/pkg/pgconv"
	"consultation-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingViewQueries interface {
	GetBookingView(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.BookingViewRow, error)
	ListAwaitingAcceptanceFirstPage(ctx context.Context, db pgquery.DBTX, arg pgquery.ListAwaitingAcceptanceFirstPageParams) ([]pgquery.BookingViewRow, error)
	ListAwaitingAcceptanceKeyset(ctx context.Context, db pgquery.DBTX, arg pgquery.ListAwaitingAcceptanceKeysetParams) ([]pgquery.BookingViewRow, error)
	ListUpcomingFirstPage(ctx context.Context, db pgquery.DBTX, arg pgquery.ListUpcomingFirstPageParams) ([]pgquery.BookingViewRow, error)
	ListUpcomingKeyset(ctx context.Context, db pgquery.DBTX, arg pgquery.ListUpcomingKeysetParams) ([]pgquery.BookingViewRow, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      pgquery.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db pgquery.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return rowToBookingView(row), nil
}

func (r *BookingReadStore) FindAwaitingAcceptanceFirstPage(ctx context.Context, professionalID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListAwaitingAcceptanceFirstPage(ctx, r.db, pgquery.ListAwaitingAcceptanceFirstPageParams{
		ProfessionalID: professionalID,
		Limit:          limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings awaiting acceptance", err)
	}
	return rowsToBookingViews(rows), nil
}

func (r *BookingReadStore) FindAwaitingAcceptanceKeyset(ctx context.Context, professionalID uuid.UUID, lastScheduledAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListAwaitingAcceptanceKeyset(ctx, r.db, pgquery.ListAwaitingAcceptanceKeysetParams{
		ProfessionalID: professionalID,
		ScheduledAt:    pgconv.TimeToPgtype(lastScheduledAt),
		ID:             lastID,
		Limit:          limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings awaiting acceptance keyset", err)
	}
	return rowsToBookingViews(rows), nil
}

func (r *BookingReadStore) FindUpcomingFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListUpcomingFirstPage(ctx, r.db, pgquery.ListUpcomingFirstPageParams{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list upcoming bookings", err)
	}
	return rowsToBookingViews(rows), nil
}

func (r *BookingReadStore) FindUpcomingKeyset(ctx context.Context, userID uuid.UUID, lastScheduledAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListUpcomingKeyset(ctx, r.db, pgquery.ListUpcomingKeysetParams{
		UserID:      userID,
		ScheduledAt: pgconv.TimeToPgtype(lastScheduledAt),
		ID:          lastID,
		Limit:       limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list upcoming bookings keyset", err)
	}
	return rowsToBookingViews(rows), nil
}

func rowsToBookingViews(rows []pgquery.BookingViewRow) []*queries.BookingView {
	result := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		result[i] = rowToBookingView(row)
	}
	return result
}

func rowToBookingView(row pgquery.BookingViewRow) *queries.BookingView {
	view := &queries.BookingView{
		ID:               row.ID,
		ClientID:         row.ClientID,
		ProfessionalID:   row.ProfessionalID,
		ProfessionalName: row.ProfessionalName,
		ScheduledAt:      pgconv.TimeFromPgtype(row.ScheduledAt),
		DurationMinutes:  row.DurationMinutes,
		PriceCents:       row.PriceCents,
		Currency:         row.Currency,
		Status:           row.Status,
		Notes:            pgconv.StringPtrFromPgtype(row.Notes),
		CancelReason:     pgconv.StringPtrFromPgtype(row.CancelReason),
		CanceledAt:       pgconv.TimePtrFromPgtype(row.CanceledAt),
		CanceledBy:       pgconv.UUIDPtrFromPgtype(row.CanceledBy),
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
	}
	if row.SessionID.Valid {
		view.Session = &queries.SessionView{
			ID:            uuid.UUID(row.SessionID.Bytes),
			RoomToken:     row.RoomToken.String,
			MeetingStatus: row.MeetingStatus.String,
			StartedAt:     pgconv.TimePtrFromPgtype(row.StartedAt),
			EndedAt:       pgconv.TimePtrFromPgtype(row.EndedAt),
			ExpiresAt:     pgconv.TimePtrFromPgtype(row.ExpiresAt),
		}
	}
	return view
}
