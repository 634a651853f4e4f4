//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"consultation-booking/internal/infra"
	"consultation-booking/internal/infra/pgquery"
	"consultation-booking/internal/infra/repository"
	repositorymock "consultation-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestIdempotencyRepository_TryInsert(t *testing.T) {
	ctx := context.Background()
	expiresAt := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	testCases := []struct {
		name           string
		inserted       int64
		err            error
		expectInserted bool
		expectKind     infra.RepositoryErrorKind
	}{
		{name: "success: key claimed", inserted: 1, expectInserted: true},
		{name: "success: key already exists", inserted: 0, expectInserted: false},
		{name: "error: database error occurs", err: errors.New("database connection error"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			key, userID := uuid.New(), uuid.New()

			mockQueries.EXPECT().TryInsertIdempotencyKey(ctx, mockDB, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ pgquery.DBTX, arg pgquery.TryInsertIdempotencyKeyParams) (int64, error) {
					assert.Equal(t, key, arg.Key)
					assert.Equal(t, userID, arg.UserID)
					assert.Equal(t, "POST /api/bookings", arg.Endpoint)
					assert.Equal(t, "hash", arg.RequestHash)
					assert.Equal(t, expiresAt, arg.ExpiresAt.Time)
					return tc.inserted, tc.err
				})

			inserted, err := repository.NewIdempotencyRepository(mockQueries).
				TryInsert(ctx, mockDB, key, userID, "POST /api/bookings", "hash", expiresAt)
			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectInserted, inserted)
		})
	}
}

func TestIdempotencyRepository_UpdateStatusCompleted(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		affected   int64
		err        error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: key completed", affected: 1},
		{name: "error: key vanished", affected: 0, expectKind: infra.KindNotFound},
		{name: "error: database error occurs", err: errors.New("database connection error"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			bookingID := uuid.New()

			mockQueries.EXPECT().CompleteIdempotencyKey(ctx, mockDB, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ pgquery.DBTX, arg pgquery.CompleteIdempotencyKeyParams) (int64, error) {
					assert.True(t, arg.ResultBookingID.Valid)
					assert.Equal(t, [16]byte(bookingID), arg.ResultBookingID.Bytes)
					return tc.affected, tc.err
				})

			err := repository.NewIdempotencyRepository(mockQueries).
				UpdateStatusCompleted(ctx, mockDB, uuid.New(), uuid.New(), bookingID)
			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestIdempotencyRepository_ClaimExpired(t *testing.T) {
	ctx := context.Background()

	t.Run("success: claimed count is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().ClaimExpiredIdempotencyKey(ctx, mockDB, gomock.Any()).Return(int64(1), nil)

		claimed, err := repository.NewIdempotencyRepository(mockQueries).
			ClaimExpiredIdempotencyKey(ctx, mockDB, uuid.New(), uuid.New(), "hash", time.Now())
		require.NoError(t, err)
		assert.Equal(t, int64(1), claimed)
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().ClaimExpiredIdempotencyKey(ctx, mockDB, gomock.Any()).Return(int64(0), errors.New("boom"))

		claimed, err := repository.NewIdempotencyRepository(mockQueries).
			ClaimExpiredIdempotencyKey(ctx, mockDB, uuid.New(), uuid.New(), "hash", time.Now())
		require.Error(t, err)
		assert.Zero(t, claimed)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
