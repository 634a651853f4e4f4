package meeting

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotExpired         = errors.New("meeting session has not reached its deadline")
	ErrInvalidMaxDuration = errors.New("meeting max duration must be positive")
)

type TransitionError struct {
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("meeting cannot move from %s to %s", e.From, e.To)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// Session is the live-call record of a confirmed booking. At most one exists
// per booking and its room token never changes.
type Session struct {
	id          uuid.UUID
	bookingID   uuid.UUID
	roomToken   RoomToken
	status      Status
	maxDuration time.Duration
	startedAt   *time.Time
	endedAt     *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

func NewSession(bookingID uuid.UUID, maxDuration time.Duration, now time.Time) (*Session, error) {
	if maxDuration <= 0 {
		return nil, ErrInvalidMaxDuration
	}
	token, err := NewRoomToken()
	if err != nil {
		return nil, err
	}
	return &Session{
		id:          uuid.New(),
		bookingID:   bookingID,
		roomToken:   token,
		status:      StatusWaiting,
		maxDuration: maxDuration,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructSession(
	id, bookingID uuid.UUID,
	roomToken RoomToken,
	status Status,
	maxDuration time.Duration,
	startedAt, endedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Session {
	return &Session{
		id:          id,
		bookingID:   bookingID,
		roomToken:   roomToken,
		status:      status,
		maxDuration: maxDuration,
		startedAt:   startedAt,
		endedAt:     endedAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (s *Session) transition(to Status, now time.Time) error {
	if !s.status.CanTransitionTo(to) {
		return &TransitionError{From: s.status, To: to}
	}
	s.status = to
	s.updatedAt = now
	return nil
}

func (s *Session) Activate(now time.Time) error {
	if err := s.transition(StatusActive, now); err != nil {
		return err
	}
	started := now
	s.startedAt = &started
	return nil
}

// End closes an active session on an explicit leave. A leave that arrives
// after the deadline is recorded as EXPIRED.
func (s *Session) End(now time.Time) error {
	to := StatusCompleted
	if s.IsExpiredAt(now) {
		to = StatusExpired
	}
	return s.finish(to, now)
}

func (s *Session) Expire(now time.Time) error {
	if s.status == StatusActive && !s.IsExpiredAt(now) {
		return ErrNotExpired
	}
	return s.finish(StatusExpired, now)
}

func (s *Session) finish(to Status, now time.Time) error {
	if err := s.transition(to, now); err != nil {
		return err
	}
	ended := now
	s.endedAt = &ended
	return nil
}

func (s *Session) Cancel(now time.Time) error {
	return s.transition(StatusCancelled, now)
}

// ExpiresAt is nil until the session has started.
func (s *Session) ExpiresAt() *time.Time {
	if s.startedAt == nil {
		return nil
	}
	at := s.startedAt.Add(s.maxDuration)
	return &at
}

func (s *Session) IsExpiredAt(now time.Time) bool {
	at := s.ExpiresAt()
	return at != nil && !now.Before(*at)
}

func (s *Session) ID() uuid.UUID              { return s.id }
func (s *Session) BookingID() uuid.UUID       { return s.bookingID }
func (s *Session) RoomToken() RoomToken       { return s.roomToken }
func (s *Session) Status() Status             { return s.status }
func (s *Session) MaxDuration() time.Duration { return s.maxDuration }
func (s *Session) StartedAt() *time.Time      { return s.startedAt }
func (s *Session) EndedAt() *time.Time        { return s.endedAt }
func (s *Session) CreatedAt() time.Time       { return s.createdAt }
func (s *Session) UpdatedAt() time.Time       { return s.updatedAt }
