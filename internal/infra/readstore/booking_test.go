//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"consultation-booking/internal/domain/booking"
	"consultation-booking/internal/infra"
	"consultation-booking/internal/infra/pgquery"
	"consultation-booking/internal/infra/readstore"
	"consultation-booking/tests/common/builder"
	readstoremock "consultation-booking/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use pgquery mock instead.")
}

func TestBookingReadStore_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success: booking without a session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		db := &mockDBTX{}
		bb := builder.NewBookingBuilder()
		row := bb.BuildViewRow()
		mockQueries.EXPECT().GetBookingView(ctx, db, row.ID).Return(row, nil)

		view, err := readstore.NewBookingReadStore(mockQueries, db).FindByID(ctx, row.ID)
		require.NoError(t, err)
		assert.Equal(t, row.ID, view.ID)
		assert.Equal(t, "Dr. Test", view.ProfessionalName)
		assert.Equal(t, bb.ScheduledAt, view.ScheduledAt)
		assert.Equal(t, int64(6000), view.PriceCents)
		assert.Equal(t, "PENDING_PAYMENT", view.Status)
		require.NotNil(t, view.Notes)
		assert.Equal(t, "first consultation", *view.Notes)
		assert.Nil(t, view.CancelReason)
		assert.Nil(t, view.Session)
	})

	t.Run("success: session columns are projected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		db := &mockDBTX{}
		row := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Status = booking.StatusInProgress
			b.Notes = ""
		}).BuildViewRow()
		sessionID := uuid.New()
		startedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		row.SessionID = pgtype.UUID{Bytes: sessionID, Valid: true}
		row.RoomToken = pgtype.Text{String: "room-token", Valid: true}
		row.MeetingStatus = pgtype.Text{String: "ACTIVE", Valid: true}
		row.StartedAt = pgtype.Timestamptz{Time: startedAt, Valid: true}
		row.ExpiresAt = pgtype.Timestamptz{Time: startedAt.Add(18 * time.Minute), Valid: true}
		mockQueries.EXPECT().GetBookingView(ctx, db, row.ID).Return(row, nil)

		view, err := readstore.NewBookingReadStore(mockQueries, db).FindByID(ctx, row.ID)
		require.NoError(t, err)
		assert.Nil(t, view.Notes)
		require.NotNil(t, view.Session)
		assert.Equal(t, sessionID, view.Session.ID)
		assert.Equal(t, "room-token", view.Session.RoomToken)
		assert.Equal(t, "ACTIVE", view.Session.MeetingStatus)
		require.NotNil(t, view.Session.ExpiresAt)
		assert.Equal(t, startedAt.Add(18*time.Minute), *view.Session.ExpiresAt)
		assert.Nil(t, view.Session.EndedAt)
	})

	testCases := []struct {
		name       string
		err        error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "error: booking not found", err: pgx.ErrNoRows, expectKind: infra.KindNotFound},
		{name: "error: database error occurs", err: errors.New("connection refused"), expectKind: infra.KindDBFailure},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
			db := &mockDBTX{}
			mockQueries.EXPECT().GetBookingView(ctx, db, gomock.Any()).Return(pgquery.BookingViewRow{}, tc.err)

			view, err := readstore.NewBookingReadStore(mockQueries, db).FindByID(ctx, uuid.New())
			require.Error(t, err)
			assert.Nil(t, view)
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
		})
	}
}

func TestBookingReadStore_Lists(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	lastAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	lastID := uuid.New()

	t.Run("upcoming first page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		db := &mockDBTX{}
		rows := []pgquery.BookingViewRow{builder.NewBookingBuilder().BuildViewRow(), builder.NewBookingBuilder().BuildViewRow()}
		mockQueries.EXPECT().ListUpcomingFirstPage(ctx, db, pgquery.ListUpcomingFirstPageParams{UserID: userID, Limit: 21}).Return(rows, nil)

		views, err := readstore.NewBookingReadStore(mockQueries, db).FindUpcomingFirstPage(ctx, userID, 21)
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, rows[1].ID, views[1].ID)
	})

	t.Run("upcoming keyset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		db := &mockDBTX{}
		mockQueries.EXPECT().ListUpcomingKeyset(ctx, db, pgquery.ListUpcomingKeysetParams{
			UserID:      userID,
			ScheduledAt: pgtype.Timestamptz{Time: lastAt, Valid: true},
			ID:          lastID,
			Limit:       21,
		}).Return(nil, nil)

		views, err := readstore.NewBookingReadStore(mockQueries, db).FindUpcomingKeyset(ctx, userID, lastAt, lastID, 21)
		require.NoError(t, err)
		assert.Empty(t, views)
	})

	t.Run("awaiting acceptance first page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		db := &mockDBTX{}
		row := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.ProfessionalID = userID
			b.Status = booking.StatusWaitingForProfessional
		}).BuildViewRow()
		mockQueries.EXPECT().ListAwaitingAcceptanceFirstPage(ctx, db, pgquery.ListAwaitingAcceptanceFirstPageParams{
			ProfessionalID: userID,
			Limit:          11,
		}).Return([]pgquery.BookingViewRow{row}, nil)

		views, err := readstore.NewBookingReadStore(mockQueries, db).FindAwaitingAcceptanceFirstPage(ctx, userID, 11)
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "WAITING_FOR_PROFESSIONAL", views[0].Status)
	})

	t.Run("awaiting acceptance keyset failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		db := &mockDBTX{}
		mockQueries.EXPECT().ListAwaitingAcceptanceKeyset(ctx, db, gomock.Any()).Return(nil, errors.New("timeout"))

		views, err := readstore.NewBookingReadStore(mockQueries, db).FindAwaitingAcceptanceKeyset(ctx, userID, lastAt, lastID, 11)
		require.Error(t, err)
		assert.Nil(t, views)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
