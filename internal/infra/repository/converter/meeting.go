package converter

import (
	"fmt"
	"time"

	"consultation-booking/internal/domain/meeting"
	"consultation-booking/internal/infra/pgquery"
	"consultation-booking/internal/pkg/pgconv"
)

func SessionToCreateParams(s *meeting.Session) pgquery.CreateMeetingSessionParams {
	return pgquery.CreateMeetingSessionParams{
		ID:            s.ID(),
		BookingID:     s.BookingID(),
		RoomToken:     s.RoomToken().String(),
		MeetingStatus: s.Status().String(),
		MaxDurationMs: s.MaxDuration().Milliseconds(),
		CreatedAt:     pgconv.TimeToPgtype(s.CreatedAt()),
		UpdatedAt:     pgconv.TimeToPgtype(s.UpdatedAt()),
	}
}

func SessionToStatusParams(s *meeting.Session, from meeting.Status) pgquery.UpdateMeetingSessionStatusParams {
	return pgquery.UpdateMeetingSessionStatusParams{
		ID:         s.ID(),
		FromStatus: from.String(),
		ToStatus:   s.Status().String(),
		StartedAt:  pgconv.TimePtrToPgtype(s.StartedAt()),
		EndedAt:    pgconv.TimePtrToPgtype(s.EndedAt()),
		ExpiresAt:  pgconv.TimePtrToPgtype(s.ExpiresAt()),
		UpdatedAt:  pgconv.TimeToPgtype(s.UpdatedAt()),
	}
}

func SessionFromRow(row pgquery.MeetingSessions) (*meeting.Session, error) {
	status, err := meeting.ParseStatus(row.MeetingStatus)
	if err != nil {
		return nil, fmt.Errorf("meeting session %s: %w", row.ID, err)
	}
	return meeting.ReconstructSession(
		row.ID,
		row.BookingID,
		meeting.RoomToken(row.RoomToken),
		status,
		time.Duration(row.MaxDurationMs)*time.Millisecond,
		pgconv.TimePtrFromPgtype(row.StartedAt),
		pgconv.TimePtrFromPgtype(row.EndedAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
