//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"consultation-booking/internal/domain/booking"
	"consultation-booking/internal/infra"
	"consultation-booking/internal/infra/pgquery"
	"consultation-booking/internal/infra/repository"
	"consultation-booking/tests/common/builder"
	repositorymock "consultation-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Booking Tests
// =============================================================================

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockBookingWriteQueries, *booking.Booking, pgquery.DBTX)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: booking created",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx pgquery.DBTX) {
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ pgquery.DBTX, arg pgquery.CreateBookingParams) error {
						assert.Equal(t, b.ID(), arg.ID)
						assert.Equal(t, "PENDING_PAYMENT", arg.Status)
						assert.Equal(t, int64(6000), arg.PriceCents)
						return nil
					})
			},
		},
		{
			name: "error: unknown professional",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx pgquery.DBTX) {
				fk := &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(fk)
			},
			expectKind: infra.KindForeignKeyViolated,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx pgquery.DBTX) {
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(errors.New("database connection error"))
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries)

			b, err := builder.NewBookingBuilder().BuildDomain()
			require.NoError(t, err)
			tc.setupMock(mockQueries, b, mockDB)

			actualError := repo.Create(ctx, mockDB, b)

			if tc.expectKind != "" {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
				return
			}
			assert.NoError(t, actualError)
		})
	}
}

// =============================================================================
// Lock Booking Tests
// =============================================================================

func TestBookingRepository_Lock(t *testing.T) {
	ctx := context.Background()

	t.Run("success: row is decoded into the aggregate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}

		bb := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Status = booking.StatusConfirmed
		})
		row := bb.BuildRow()
		mockQueries.EXPECT().LockBookingByID(ctx, mockDB, row.ID).Return(row, nil)

		got, err := repository.NewBookingRepository(mockQueries).Lock(ctx, mockDB, row.ID)
		require.NoError(t, err)
		assert.Equal(t, row.ID, got.ID())
		assert.Equal(t, booking.StatusConfirmed, got.Status())
		assert.Equal(t, bb.ScheduledAt, got.Schedule().Start())
		assert.Equal(t, 30, got.Schedule().DurationMinutes())
		assert.Equal(t, "first consultation", got.Note().String())
		assert.Nil(t, got.Cancellation())
	})

	t.Run("success: cancellation fields are restored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}

		row := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Status = booking.StatusCancelled
		}).BuildRow()
		canceledAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
		row.CancelReason.String, row.CancelReason.Valid = "payment failed", true
		row.CanceledAt.Time, row.CanceledAt.Valid = canceledAt, true
		mockQueries.EXPECT().LockBookingByID(ctx, mockDB, row.ID).Return(row, nil)

		got, err := repository.NewBookingRepository(mockQueries).Lock(ctx, mockDB, row.ID)
		require.NoError(t, err)
		require.NotNil(t, got.Cancellation())
		assert.Equal(t, "payment failed", got.Cancellation().Reason.String())
		assert.Equal(t, canceledAt, got.Cancellation().CanceledAt)
		assert.Nil(t, got.Cancellation().CanceledBy)
	})

	testCases := []struct {
		name       string
		err        error
		row        pgquery.Bookings
		expectKind infra.RepositoryErrorKind
	}{
		{name: "error: booking not found", err: pgx.ErrNoRows, expectKind: infra.KindNotFound},
		{name: "error: database error occurs", err: errors.New("connection reset"), expectKind: infra.KindDBFailure},
		{name: "error: corrupt status", row: pgquery.Bookings{ID: uuid.New(), Status: "ARCHIVED"}, expectKind: infra.KindDBFailure},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			mockQueries.EXPECT().LockBookingByID(ctx, mockDB, gomock.Any()).Return(tc.row, tc.err)

			got, err := repository.NewBookingRepository(mockQueries).Lock(ctx, mockDB, uuid.New())
			require.Error(t, err)
			assert.Nil(t, got)
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
		})
	}
}

// =============================================================================
// UpdateStatus Tests
// =============================================================================

func TestBookingRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		affected   int64
		err        error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: one row moved", affected: 1},
		{name: "error: status changed concurrently", affected: 0, expectKind: infra.KindConflict},
		{name: "error: database error occurs", err: errors.New("deadlock detected"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}

			b, err := builder.NewBookingBuilder().BuildDomain()
			require.NoError(t, err)
			require.NoError(t, b.MarkPaid(b.CreatedAt().Add(time.Minute)))

			mockQueries.EXPECT().UpdateBookingStatus(ctx, mockDB, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ pgquery.DBTX, arg pgquery.UpdateBookingStatusParams) (int64, error) {
					assert.Equal(t, "PENDING_PAYMENT", arg.FromStatus)
					assert.Equal(t, "WAITING_FOR_PROFESSIONAL", arg.ToStatus)
					return tc.affected, tc.err
				})

			err = repository.NewBookingRepository(mockQueries).UpdateStatus(ctx, mockDB, b, booking.StatusPendingPayment)
			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// =============================================================================
// Mock DB Implementation
// =============================================================================

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
