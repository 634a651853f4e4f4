package repository

import (
	"context"

	"consultation-booking/internal/domain/meeting"
	"consultation-booking/internal/infra"
	"consultation-booking/internal/infra/pgquery"
	"consultation-booking/internal/infra/repository/converter"
	"consultation-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SessionWriteQueries interface {
	CreateMeetingSession(ctx context.Context, db pgquery.DBTX, arg pgquery.CreateMeetingSessionParams) error
	LockMeetingSessionByBookingID(ctx context.Context, db pgquery.DBTX, bookingID uuid.UUID) (pgquery.MeetingSessions, error)
	UpdateMeetingSessionStatus(ctx context.Context, db pgquery.DBTX, arg pgquery.UpdateMeetingSessionStatusParams) (int64, error)
}

type SessionRepository struct {
	queries SessionWriteQueries
}

func NewSessionRepository(queries SessionWriteQueries) *SessionRepository {
	return &SessionRepository{queries: queries}
}

// Create reports KindDuplicateKey when the booking already has a session.
func (r *SessionRepository) Create(ctx context.Context, tx pgquery.DBTX, s *meeting.Session) error {
	if err := r.queries.CreateMeetingSession(ctx, tx, converter.SessionToCreateParams(s)); err != nil {
		return infra.WrapRepoErr("failed to create meeting session", err)
	}
	return nil
}

func (r *SessionRepository) LockByBookingID(ctx context.Context, tx pgquery.DBTX, bookingID uuid.UUID) (*meeting.Session, error) {
	row, err := r.queries.LockMeetingSessionByBookingID(ctx, tx, bookingID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("meeting session not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock meeting session", err)
	}

	s, err := converter.SessionFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode meeting session", err)
	}
	return s, nil
}

func (r *SessionRepository) UpdateStatus(ctx context.Context, tx pgquery.DBTX, s *meeting.Session, from meeting.Status) error {
	affected, err := r.queries.UpdateMeetingSessionStatus(ctx, tx, converter.SessionToStatusParams(s, from))
	if err != nil {
		return infra.WrapRepoErr("failed to update meeting session status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("meeting status changed concurrently", nil, infra.KindConflict)
	}
	return nil
}
