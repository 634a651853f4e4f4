//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"consultation-booking/internal/infra"
	"consultation-booking/internal/infra/pgquery"
	"consultation-booking/internal/infra/readstore"
	readstoremock "consultation-booking/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var deadlineNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func TestDeadlineReadStore_Candidates(t *testing.T) {
	ctx := context.Background()
	ids := []uuid.UUID{uuid.New(), uuid.New()}
	cutoff := pgtype.Timestamptz{Time: deadlineNow, Valid: true}

	testCases := []struct {
		name  string
		setup func(*readstoremock.MockDeadlineQueries, pgquery.DBTX, error)
		call  func(*readstore.DeadlineReadStore) ([]uuid.UUID, error)
	}{
		{
			name: "unpaid",
			setup: func(m *readstoremock.MockDeadlineQueries, db pgquery.DBTX, err error) {
				m.EXPECT().ListUnpaidBookingIDs(ctx, db, pgquery.ListUnpaidBookingIDsParams{CreatedBefore: cutoff, Limit: 100}).Return(ids, err)
			},
			call: func(r *readstore.DeadlineReadStore) ([]uuid.UUID, error) {
				return r.UnpaidBookingIDs(ctx, deadlineNow, 100)
			},
		},
		{
			name: "acceptance overdue",
			setup: func(m *readstoremock.MockDeadlineQueries, db pgquery.DBTX, err error) {
				m.EXPECT().ListAcceptanceOverdueBookingIDs(ctx, db, pgquery.ListAcceptanceOverdueBookingIDsParams{ScheduledBefore: cutoff, Limit: 100}).Return(ids, err)
			},
			call: func(r *readstore.DeadlineReadStore) ([]uuid.UUID, error) {
				return r.AcceptanceOverdueBookingIDs(ctx, deadlineNow, 100)
			},
		},
		{
			name: "no-show",
			setup: func(m *readstoremock.MockDeadlineQueries, db pgquery.DBTX, err error) {
				m.EXPECT().ListNoShowCandidateIDs(ctx, db, pgquery.ListNoShowCandidateIDsParams{EndedBefore: cutoff, Limit: 100}).Return(ids, err)
			},
			call: func(r *readstore.DeadlineReadStore) ([]uuid.UUID, error) {
				return r.NoShowCandidateIDs(ctx, deadlineNow, 100)
			},
		},
		{
			name: "overrun sessions",
			setup: func(m *readstoremock.MockDeadlineQueries, db pgquery.DBTX, err error) {
				m.EXPECT().ListOverrunSessionBookingIDs(ctx, db, pgquery.ListOverrunSessionBookingIDsParams{Now: cutoff, Limit: 100}).Return(ids, err)
			},
			call: func(r *readstore.DeadlineReadStore) ([]uuid.UUID, error) {
				return r.OverrunSessionBookingIDs(ctx, deadlineNow, 100)
			},
		},
	}

	for _, tc := range testCases {
		t.Run("success: "+tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := readstoremock.NewMockDeadlineQueries(ctrl)
			db := &mockDBTX{}
			tc.setup(m, db, nil)

			got, err := tc.call(readstore.NewDeadlineReadStore(m, db))
			require.NoError(t, err)
			assert.Equal(t, ids, got)
		})

		t.Run("error: "+tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := readstoremock.NewMockDeadlineQueries(ctrl)
			db := &mockDBTX{}
			tc.setup(m, db, errors.New("timeout"))

			got, err := tc.call(readstore.NewDeadlineReadStore(m, db))
			require.Error(t, err)
			assert.Nil(t, got)
			assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		})
	}
}

func TestDeadlineReadStore_ActiveSessionDeadlines(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	m := readstoremock.NewMockDeadlineQueries(ctrl)
	db := &mockDBTX{}
	bookingID := uuid.New()
	m.EXPECT().ListActiveSessionDeadlines(ctx, db, int32(500)).Return([]pgquery.ListActiveSessionDeadlinesRow{
		{BookingID: bookingID, ExpiresAt: pgtype.Timestamptz{Time: deadlineNow, Valid: true}},
	}, nil)

	got, err := readstore.NewDeadlineReadStore(m, db).ActiveSessionDeadlines(ctx, 500)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, bookingID, got[0].BookingID)
	assert.Equal(t, deadlineNow, got[0].ExpiresAt)
}

func TestProfessionalReadStore_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success: snapshot mapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := readstoremock.NewMockProfessionalReadQueries(ctrl)
		db := &mockDBTX{}
		id := uuid.New()
		m.EXPECT().GetProfessionalByUserID(ctx, db, id).Return(pgquery.Professionals{
			UserID:          id,
			DisplayName:     "Dr. Test",
			HourlyRateCents: 12000,
			Currency:        "USD",
			IsActive:        false,
		}, nil)

		got, err := readstore.NewProfessionalReadStore(m, db).FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, id, got.ID)
		assert.Equal(t, int64(12000), got.HourlyRateCents)
		assert.False(t, got.Active)
	})

	t.Run("error: professional not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := readstoremock.NewMockProfessionalReadQueries(ctrl)
		db := &mockDBTX{}
		m.EXPECT().GetProfessionalByUserID(ctx, db, gomock.Any()).Return(pgquery.Professionals{}, pgx.ErrNoRows)

		got, err := readstore.NewProfessionalReadStore(m, db).FindByID(ctx, uuid.New())
		require.Error(t, err)
		assert.Nil(t, got)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestIdempotencyReadStore_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("success: completed key carries the booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := readstoremock.NewMockIdempotencyReadQueries(ctrl)
		db := &mockDBTX{}
		key, userID, bookingID := uuid.New(), uuid.New(), uuid.New()
		m.EXPECT().GetIdempotencyKey(ctx, db, pgquery.GetIdempotencyKeyParams{Key: key, UserID: userID}).Return(pgquery.IdempotencyKeys{
			Key:             key,
			UserID:          userID,
			Status:          "completed",
			RequestHash:     "hash",
			ResultBookingID: pgtype.UUID{Bytes: bookingID, Valid: true},
			ExpiresAt:       pgtype.Timestamptz{Time: deadlineNow, Valid: true},
		}, nil)

		got, err := readstore.NewIdempotencyReadStore(m).Get(ctx, db, key, userID)
		require.NoError(t, err)
		assert.Equal(t, "completed", got.Status)
		require.NotNil(t, got.ResultBookingID)
		assert.Equal(t, bookingID, *got.ResultBookingID)
		assert.Equal(t, deadlineNow, got.ExpiresAt)
	})

	t.Run("success: processing key has no booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := readstoremock.NewMockIdempotencyReadQueries(ctrl)
		db := &mockDBTX{}
		m.EXPECT().GetIdempotencyKey(ctx, db, gomock.Any()).Return(pgquery.IdempotencyKeys{Status: "processing"}, nil)

		got, err := readstore.NewIdempotencyReadStore(m).Get(ctx, db, uuid.New(), uuid.New())
		require.NoError(t, err)
		assert.Nil(t, got.ResultBookingID)
	})

	t.Run("error: key not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := readstoremock.NewMockIdempotencyReadQueries(ctrl)
		db := &mockDBTX{}
		m.EXPECT().GetIdempotencyKey(ctx, db, gomock.Any()).Return(pgquery.IdempotencyKeys{}, pgx.ErrNoRows)

		got, err := readstore.NewIdempotencyReadStore(m).Get(ctx, db, uuid.New(), uuid.New())
		require.Error(t, err)
		assert.Nil(t, got)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
