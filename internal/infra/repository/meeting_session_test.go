//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"consultation-booking/internal/domain/meeting"
	"consultation-booking/internal/infra"
	"consultation-booking/internal/infra/pgquery"
	"consultation-booking/internal/infra/repository"
	repositorymock "consultation-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var sessionNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func TestSessionRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		err        error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: session created"},
		{name: "error: booking already has a session", err: &pgconn.PgError{Code: "23505"}, expectKind: infra.KindDuplicateKey},
		{name: "error: database error occurs", err: errors.New("database connection error"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockSessionWriteQueries(ctrl)
			mockDB := &mockDBTX{}

			s, err := meeting.NewSession(uuid.New(), 18*time.Minute, sessionNow)
			require.NoError(t, err)

			mockQueries.EXPECT().CreateMeetingSession(ctx, mockDB, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ pgquery.DBTX, arg pgquery.CreateMeetingSessionParams) error {
					assert.Equal(t, s.BookingID(), arg.BookingID)
					assert.Equal(t, "WAITING", arg.MeetingStatus)
					assert.Equal(t, int64(18*60*1000), arg.MaxDurationMs)
					assert.NotEmpty(t, arg.RoomToken)
					return tc.err
				})

			err = repository.NewSessionRepository(mockQueries).Create(ctx, mockDB, s)
			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSessionRepository_LockByBookingID(t *testing.T) {
	ctx := context.Background()

	t.Run("success: active session keeps its expiry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockSessionWriteQueries(ctrl)
		mockDB := &mockDBTX{}

		bookingID := uuid.New()
		row := pgquery.MeetingSessions{
			ID:            uuid.New(),
			BookingID:     bookingID,
			RoomToken:     "room-token",
			MeetingStatus: "ACTIVE",
			MaxDurationMs: (18 * time.Minute).Milliseconds(),
			StartedAt:     pgtype.Timestamptz{Time: sessionNow, Valid: true},
			CreatedAt:     pgtype.Timestamptz{Time: sessionNow.Add(-time.Hour), Valid: true},
			UpdatedAt:     pgtype.Timestamptz{Time: sessionNow, Valid: true},
		}
		mockQueries.EXPECT().LockMeetingSessionByBookingID(ctx, mockDB, bookingID).Return(row, nil)

		s, err := repository.NewSessionRepository(mockQueries).LockByBookingID(ctx, mockDB, bookingID)
		require.NoError(t, err)
		assert.Equal(t, meeting.StatusActive, s.Status())
		assert.Equal(t, "room-token", s.RoomToken().String())
		require.NotNil(t, s.ExpiresAt())
		assert.Equal(t, sessionNow.Add(18*time.Minute), *s.ExpiresAt())
		assert.Nil(t, s.EndedAt())
	})

	testCases := []struct {
		name       string
		row        pgquery.MeetingSessions
		err        error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "error: session not found", err: pgx.ErrNoRows, expectKind: infra.KindNotFound},
		{name: "error: database error occurs", err: errors.New("connection reset"), expectKind: infra.KindDBFailure},
		{name: "error: corrupt status", row: pgquery.MeetingSessions{ID: uuid.New(), MeetingStatus: "PAUSED"}, expectKind: infra.KindDBFailure},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockSessionWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			mockQueries.EXPECT().LockMeetingSessionByBookingID(ctx, mockDB, gomock.Any()).Return(tc.row, tc.err)

			s, err := repository.NewSessionRepository(mockQueries).LockByBookingID(ctx, mockDB, uuid.New())
			require.Error(t, err)
			assert.Nil(t, s)
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
		})
	}
}

func TestSessionRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		affected   int64
		err        error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: session activated", affected: 1},
		{name: "error: status changed concurrently", affected: 0, expectKind: infra.KindConflict},
		{name: "error: database error occurs", err: errors.New("deadlock detected"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockSessionWriteQueries(ctrl)
			mockDB := &mockDBTX{}

			s, err := meeting.NewSession(uuid.New(), 18*time.Minute, sessionNow.Add(-time.Hour))
			require.NoError(t, err)
			require.NoError(t, s.Activate(sessionNow))

			mockQueries.EXPECT().UpdateMeetingSessionStatus(ctx, mockDB, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ pgquery.DBTX, arg pgquery.UpdateMeetingSessionStatusParams) (int64, error) {
					assert.Equal(t, "WAITING", arg.FromStatus)
					assert.Equal(t, "ACTIVE", arg.ToStatus)
					assert.True(t, arg.StartedAt.Valid)
					assert.Equal(t, sessionNow.Add(18*time.Minute), arg.ExpiresAt.Time)
					assert.False(t, arg.EndedAt.Valid)
					return tc.affected, tc.err
				})

			err = repository.NewSessionRepository(mockQueries).UpdateStatus(ctx, mockDB, s, meeting.StatusWaiting)
			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
