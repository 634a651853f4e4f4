package queries

import (
	"context"
	"log/slog"
	"time"

	"consultation-booking/internal/domain/booking"
	"consultation-booking/internal/domain/meeting"
	"consultation-booking/internal/domain/user"
	"consultation-booking/internal/infra"
	"consultation-booking/internal/pkg/clock"
	"consultation-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	// ErrBookingNotFound also covers bookings the actor may not see.
	ErrBookingNotFound = errs.New("booking not found")
	ErrListForbidden   = errs.New("list not available for role")
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindAwaitingAcceptanceFirstPage(ctx context.Context, professionalID uuid.UUID, limit int32) ([]*BookingView, error)
	FindAwaitingAcceptanceKeyset(ctx context.Context, professionalID uuid.UUID, lastScheduledAt time.Time, lastID uuid.UUID, limit int32) ([]*BookingView, error)
	FindUpcomingFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*BookingView, error)
	FindUpcomingKeyset(ctx context.Context, userID uuid.UUID, lastScheduledAt time.Time, lastID uuid.UUID, limit int32) ([]*BookingView, error)
}

// StatusCache holds BookingStatusView entries keyed by booking. Implementations
// must treat every failure as a miss.
type StatusCache interface {
	Get(ctx context.Context, bookingID uuid.UUID) (*BookingStatusView, bool)
	Set(ctx context.Context, view *BookingStatusView)
	Invalidate(ctx context.Context, bookingID uuid.UUID)
}

type BookingQueries interface {
	GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*BookingView, error)
	// GetByIDSystem skips the access check; used for idempotent replays.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error)
	GetStatus(ctx context.Context, actor user.Actor, id uuid.UUID) (*BookingStatusView, error)
	GetWaitingRoom(ctx context.Context, actor user.Actor, id uuid.UUID) (*meeting.WaitingRoom, error)
	ListAwaitingAcceptance(ctx context.Context, actor user.Actor, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error)
	ListUpcoming(ctx context.Context, actor user.Actor, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error)
}

type bookingQueriesImpl struct {
	store  BookingReadStore
	cache  StatusCache
	policy booking.Policy
	clock  clock.Clock
}

func NewBookingQueries(store BookingReadStore, cache StatusCache, policy booking.Policy, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{
		store:  store,
		cache:  cache,
		policy: policy,
		clock:  clk,
	}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*BookingView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && !view.IsParty(actor.ID) {
		return nil, ErrBookingNotFound
	}
	if !view.IsParty(actor.ID) && view.Session != nil {
		redacted := *view.Session
		redacted.RoomToken = ""
		view.Session = &redacted
	}
	return view, nil
}

func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

// GetStatus is the polling endpoint, served cache-aside.
func (q *bookingQueriesImpl) GetStatus(ctx context.Context, actor user.Actor, id uuid.UUID) (*BookingStatusView, error) {
	status, ok := q.cache.Get(ctx, id)
	if !ok {
		view, err := q.GetByIDSystem(ctx, id)
		if err != nil {
			return nil, err
		}
		status = toStatusView(view)
		q.cache.Set(ctx, status)
	}

	isParty := status.ClientID == actor.ID || status.ProfessionalID == actor.ID
	if !actor.IsAdmin() && !isParty {
		return nil, ErrBookingNotFound
	}

	out := *status
	if !isParty || !tokenVisible(out.BookingStatus) {
		out.RoomToken = nil
	}
	return &out, nil
}

func (q *bookingQueriesImpl) GetWaitingRoom(ctx context.Context, actor user.Actor, id uuid.UUID) (*meeting.WaitingRoom, error) {
	view, err := q.GetByID(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	snap, schedule, err := toSnapshot(view)
	if err != nil {
		return nil, err
	}

	wr := meeting.Project(snap, q.policy.JoinWindow(schedule), q.clock.Now(), view.IsParty(actor.ID))
	return &wr, nil
}

func (q *bookingQueriesImpl) ListAwaitingAcceptance(ctx context.Context, actor user.Actor, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error) {
	if actor.Role != user.RoleProfessional {
		return nil, nil, ErrListForbidden
	}

	limit = ValidateLimit(limit)
	var rows []*BookingView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.FindAwaitingAcceptanceFirstPage(ctx, actor.ID, int32(limit+1))
	} else {
		lastScheduledAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.store.FindAwaitingAcceptanceKeyset(ctx, actor.ID, lastScheduledAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	rows, next := nextCursor(rows, limit)
	return rows, next, nil
}

func (q *bookingQueriesImpl) ListUpcoming(ctx context.Context, actor user.Actor, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*BookingView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.FindUpcomingFirstPage(ctx, actor.ID, int32(limit+1))
	} else {
		lastScheduledAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.store.FindUpcomingKeyset(ctx, actor.ID, lastScheduledAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	rows, next := nextCursor(rows, limit)
	return rows, next, nil
}

func toStatusView(v *BookingView) *BookingStatusView {
	out := &BookingStatusView{
		BookingID:      v.ID,
		ClientID:       v.ClientID,
		ProfessionalID: v.ProfessionalID,
		BookingStatus:  v.Status,
		MeetingStatus:  meeting.StatusPending.String(),
	}
	if v.Session != nil {
		out.MeetingStatus = v.Session.MeetingStatus
		token := v.Session.RoomToken
		out.RoomToken = &token
		out.ExpiresAt = v.Session.ExpiresAt
	}
	return out
}

func tokenVisible(bookingStatus string) bool {
	st := booking.Status(bookingStatus)
	return st == booking.StatusConfirmed || st == booking.StatusInProgress
}

func toSnapshot(v *BookingView) (meeting.Snapshot, booking.Schedule, error) {
	schedule, err := booking.NewSchedule(v.ScheduledAt, int(v.DurationMinutes))
	if err != nil {
		return meeting.Snapshot{}, booking.Schedule{}, err
	}
	status, err := booking.ParseStatus(v.Status)
	if err != nil {
		return meeting.Snapshot{}, booking.Schedule{}, err
	}

	snap := meeting.Snapshot{
		BookingStatus: status,
		MeetingStatus: meeting.StatusPending,
	}
	if v.Session != nil {
		ms, err := meeting.ParseStatus(v.Session.MeetingStatus)
		if err != nil {
			slog.Warn("unknown meeting status in read model", "booking_id", v.ID, "status", v.Session.MeetingStatus)
			return meeting.Snapshot{}, booking.Schedule{}, err
		}
		snap.MeetingStatus = ms
		snap.RoomToken = meeting.RoomToken(v.Session.RoomToken)
		snap.ExpiresAt = v.Session.ExpiresAt
	}
	return snap, schedule, nil
}
