//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"consultation-booking/internal/domain/booking"
	"consultation-booking/internal/domain/meeting"
	"consultation-booking/internal/domain/user"
	"consultation-booking/internal/infra"
	"consultation-booking/internal/pkg/clock"
	"consultation-booking/internal/usecase/queries"
	"consultation-booking/tests/common/builder"
	queriesmock "consultation-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingQueriesTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	store   *queriesmock.MockBookingReadStore
	cache   *queriesmock.MockStatusCache
	clock   *clock.MockClock
	queries queries.BookingQueries

	client       user.Actor
	professional user.Actor
	admin        user.Actor
	stranger     user.Actor
}

func (s *BookingQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = queriesmock.NewMockBookingReadStore(s.ctrl)
	s.cache = queriesmock.NewMockStatusCache(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC))
	s.queries = queries.NewBookingQueries(s.store, s.cache, booking.DefaultPolicy(), s.clock)

	s.client = user.NewActor(uuid.New(), user.RoleClient)
	s.professional = user.NewActor(uuid.New(), user.RoleProfessional)
	s.admin = user.NewActor(uuid.New(), user.RoleAdmin)
	s.stranger = user.NewActor(uuid.New(), user.RoleClient)
}

func (s *BookingQueriesTestSuite) SetupSubTest() {
	s.SetupTest()
}

func (s *BookingQueriesTestSuite) view(status booking.Status, session *queries.SessionView) *queries.BookingView {
	v := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.ClientID = s.client.ID
		b.ProfessionalID = s.professional.ID
		b.Status = status
	}).BuildView()
	v.Session = session
	return v
}

func waitingSession() *queries.SessionView {
	return &queries.SessionView{ID: uuid.New(), RoomToken: "room-token", MeetingStatus: "WAITING"}
}

func TestBookingQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(BookingQueriesTestSuite))
}

func (s *BookingQueriesTestSuite) TestGetByID() {
	s.Run("party sees the room token", func() {
		v := s.view(booking.StatusConfirmed, waitingSession())
		s.store.EXPECT().FindByID(gomock.Any(), v.ID).Return(v, nil)

		got, err := s.queries.GetByID(context.Background(), s.professional, v.ID)
		s.Require().NoError(err)
		s.Equal("room-token", got.Session.RoomToken)
	})

	s.Run("admin sees the booking without the token", func() {
		v := s.view(booking.StatusConfirmed, waitingSession())
		s.store.EXPECT().FindByID(gomock.Any(), v.ID).Return(v, nil)

		got, err := s.queries.GetByID(context.Background(), s.admin, v.ID)
		s.Require().NoError(err)
		s.Require().NotNil(got.Session)
		s.Empty(got.Session.RoomToken)
		s.Equal("WAITING", got.Session.MeetingStatus)
	})

	s.Run("stranger gets not found", func() {
		v := s.view(booking.StatusConfirmed, nil)
		s.store.EXPECT().FindByID(gomock.Any(), v.ID).Return(v, nil)

		got, err := s.queries.GetByID(context.Background(), s.stranger, v.ID)
		s.Nil(got)
		s.ErrorIs(err, queries.ErrBookingNotFound)
	})

	s.Run("missing row maps to not found", func() {
		s.store.EXPECT().FindByID(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

		_, err := s.queries.GetByID(context.Background(), s.client, uuid.New())
		s.ErrorIs(err, queries.ErrBookingNotFound)
	})

	s.Run("store failure is passed through", func() {
		storeErr := errors.New("connection refused")
		s.store.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, storeErr)

		_, err := s.queries.GetByID(context.Background(), s.client, uuid.New())
		s.ErrorIs(err, storeErr)
		s.NotErrorIs(err, queries.ErrBookingNotFound)
	})
}

func (s *BookingQueriesTestSuite) TestGetStatus() {
	s.Run("cache miss loads and fills the cache", func() {
		v := s.view(booking.StatusConfirmed, waitingSession())
		s.cache.EXPECT().Get(gomock.Any(), v.ID).Return(nil, false)
		s.store.EXPECT().FindByID(gomock.Any(), v.ID).Return(v, nil)
		s.cache.EXPECT().Set(gomock.Any(), gomock.Any()).Do(func(_ context.Context, sv *queries.BookingStatusView) {
			s.Equal(v.ID, sv.BookingID)
			s.Require().NotNil(sv.RoomToken)
		})

		got, err := s.queries.GetStatus(context.Background(), s.client, v.ID)
		s.Require().NoError(err)
		s.Equal("CONFIRMED", got.BookingStatus)
		s.Equal("WAITING", got.MeetingStatus)
		s.Require().NotNil(got.RoomToken)
		s.Equal("room-token", *got.RoomToken)
	})

	s.Run("cache hit skips the store", func() {
		token := "room-token"
		cached := &queries.BookingStatusView{
			BookingID:      uuid.New(),
			ClientID:       s.client.ID,
			ProfessionalID: s.professional.ID,
			BookingStatus:  "IN_PROGRESS",
			MeetingStatus:  "ACTIVE",
			RoomToken:      &token,
		}
		s.cache.EXPECT().Get(gomock.Any(), cached.BookingID).Return(cached, true)

		got, err := s.queries.GetStatus(context.Background(), s.professional, cached.BookingID)
		s.Require().NoError(err)
		s.Equal("ACTIVE", got.MeetingStatus)
		s.NotNil(got.RoomToken)
		s.NotNil(cached.RoomToken, "cached entry must not be mutated")
	})

	s.Run("token hidden before confirmation", func() {
		v := s.view(booking.StatusWaitingForProfessional, nil)
		s.cache.EXPECT().Get(gomock.Any(), v.ID).Return(nil, false)
		s.store.EXPECT().FindByID(gomock.Any(), v.ID).Return(v, nil)
		s.cache.EXPECT().Set(gomock.Any(), gomock.Any())

		got, err := s.queries.GetStatus(context.Background(), s.client, v.ID)
		s.Require().NoError(err)
		s.Equal(meeting.StatusPending.String(), got.MeetingStatus)
		s.Nil(got.RoomToken)
	})

	s.Run("token hidden after completion", func() {
		token := "room-token"
		cached := &queries.BookingStatusView{
			BookingID:     uuid.New(),
			ClientID:      s.client.ID,
			BookingStatus: "COMPLETED",
			MeetingStatus: "COMPLETED",
			RoomToken:     &token,
		}
		s.cache.EXPECT().Get(gomock.Any(), cached.BookingID).Return(cached, true)

		got, err := s.queries.GetStatus(context.Background(), s.client, cached.BookingID)
		s.Require().NoError(err)
		s.Nil(got.RoomToken)
	})

	s.Run("admin sees status without token", func() {
		token := "room-token"
		cached := &queries.BookingStatusView{
			BookingID:     uuid.New(),
			ClientID:      s.client.ID,
			BookingStatus: "CONFIRMED",
			MeetingStatus: "WAITING",
			RoomToken:     &token,
		}
		s.cache.EXPECT().Get(gomock.Any(), cached.BookingID).Return(cached, true)

		got, err := s.queries.GetStatus(context.Background(), s.admin, cached.BookingID)
		s.Require().NoError(err)
		s.Nil(got.RoomToken)
	})

	s.Run("stranger gets not found", func() {
		cached := &queries.BookingStatusView{BookingID: uuid.New(), ClientID: s.client.ID, BookingStatus: "CONFIRMED"}
		s.cache.EXPECT().Get(gomock.Any(), cached.BookingID).Return(cached, true)

		_, err := s.queries.GetStatus(context.Background(), s.stranger, cached.BookingID)
		s.ErrorIs(err, queries.ErrBookingNotFound)
	})
}

func (s *BookingQueriesTestSuite) TestGetWaitingRoom() {
	s.Run("confirmed booking before the window", func() {
		v := s.view(booking.StatusConfirmed, waitingSession())
		s.store.EXPECT().FindByID(gomock.Any(), v.ID).Return(v, nil)

		wr, err := s.queries.GetWaitingRoom(context.Background(), s.client, v.ID)
		s.Require().NoError(err)
		s.True(wr.IsWaiting)
		s.False(wr.CanJoin)
		s.Equal(booking.NotReadyTooEarly, wr.NotReadyReason)
		s.Equal(v.ScheduledAt.Add(-10*time.Minute), wr.OpensAt)
		s.Nil(wr.RoomToken)
	})

	s.Run("inside the window the party gets the token", func() {
		v := s.view(booking.StatusConfirmed, waitingSession())
		s.store.EXPECT().FindByID(gomock.Any(), v.ID).Return(v, nil)
		s.clock.Set(v.ScheduledAt.Add(-5 * time.Minute))

		wr, err := s.queries.GetWaitingRoom(context.Background(), s.client, v.ID)
		s.Require().NoError(err)
		s.True(wr.CanStart)
		s.True(wr.CanJoin)
		s.Require().NotNil(wr.RoomToken)
		s.Equal("room-token", wr.RoomToken.String())
	})

	s.Run("admin can look but not join", func() {
		v := s.view(booking.StatusConfirmed, waitingSession())
		s.store.EXPECT().FindByID(gomock.Any(), v.ID).Return(v, nil)
		s.clock.Set(v.ScheduledAt)

		wr, err := s.queries.GetWaitingRoom(context.Background(), s.admin, v.ID)
		s.Require().NoError(err)
		s.True(wr.CanStart)
		s.False(wr.CanJoin)
		s.Nil(wr.RoomToken)
	})

	s.Run("unpaid booking is not confirmed", func() {
		v := s.view(booking.StatusPendingPayment, nil)
		s.store.EXPECT().FindByID(gomock.Any(), v.ID).Return(v, nil)

		wr, err := s.queries.GetWaitingRoom(context.Background(), s.client, v.ID)
		s.Require().NoError(err)
		s.Equal(booking.NotReadyNotConfirmed, wr.NotReadyReason)
		s.Equal(meeting.StatusPending, wr.MeetingStatus)
	})
}

func (s *BookingQueriesTestSuite) TestListAwaitingAcceptance() {
	s.Run("clients have no queue", func() {
		_, _, err := s.queries.ListAwaitingAcceptance(context.Background(), s.client, nil, 10)
		s.ErrorIs(err, queries.ErrListForbidden)
	})

	s.Run("full page returns a cursor", func() {
		rows := make([]*queries.BookingView, 3)
		for i := range rows {
			rows[i] = s.view(booking.StatusWaitingForProfessional, nil)
			rows[i].ScheduledAt = rows[i].ScheduledAt.Add(time.Duration(i) * time.Hour)
		}
		s.store.EXPECT().FindAwaitingAcceptanceFirstPage(gomock.Any(), s.professional.ID, int32(3)).Return(rows, nil)

		got, next, err := s.queries.ListAwaitingAcceptance(context.Background(), s.professional, nil, 2)
		s.Require().NoError(err)
		s.Len(got, 2)
		s.Require().NotNil(next)

		at, id, err := queries.DecodeAfterCursor(next.After)
		s.Require().NoError(err)
		s.Equal(rows[1].ID, id)
		s.True(rows[1].ScheduledAt.Equal(at))
	})

	s.Run("cursor continues with keyset", func() {
		last := s.view(booking.StatusWaitingForProfessional, nil)
		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(last.ScheduledAt, last.ID)}
		s.store.EXPECT().
			FindAwaitingAcceptanceKeyset(gomock.Any(), s.professional.ID, gomock.Any(), last.ID, int32(21)).
			Return([]*queries.BookingView{}, nil)

		got, next, err := s.queries.ListAwaitingAcceptance(context.Background(), s.professional, cursor, 0)
		s.Require().NoError(err)
		s.Empty(got)
		s.Nil(next)
	})

	s.Run("garbage cursor", func() {
		_, _, err := s.queries.ListAwaitingAcceptance(context.Background(), s.professional, &queries.Cursor{After: "not-a-cursor"}, 10)
		s.ErrorIs(err, queries.ErrInvalidCursor)
	})
}

func (s *BookingQueriesTestSuite) TestListUpcoming() {
	s.Run("short page has no cursor", func() {
		rows := []*queries.BookingView{s.view(booking.StatusConfirmed, nil)}
		s.store.EXPECT().FindUpcomingFirstPage(gomock.Any(), s.client.ID, int32(queries.MaxListLimit+1)).Return(rows, nil)

		got, next, err := s.queries.ListUpcoming(context.Background(), s.client, nil, 500)
		s.Require().NoError(err)
		s.Len(got, 1)
		s.Nil(next)
	})

	s.Run("store failure is passed through", func() {
		storeErr := errors.New("timeout")
		s.store.EXPECT().FindUpcomingFirstPage(gomock.Any(), s.client.ID, int32(21)).Return(nil, storeErr)

		_, _, err := s.queries.ListUpcoming(context.Background(), s.client, &queries.Cursor{}, 0)
		s.ErrorIs(err, storeErr)
	})
}

func TestCursor_RoundTrip(t *testing.T) {
	at := time.Date(2026, 3, 1, 10, 30, 0, 123456000, time.UTC)
	id := uuid.New()

	gotAt, gotID, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(at, id))
	require.NoError(t, err)
	assert.True(t, at.Equal(gotAt))
	assert.Equal(t, id, gotID)
}

func TestCursor_Invalid(t *testing.T) {
	for _, c := range []string{"", "abc", "123-not-a-uuid", "v1"} {
		_, _, err := queries.DecodeAfterCursor(c)
		assert.Error(t, err, "cursor %q", c)
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, 20, queries.ValidateLimit(0))
	assert.Equal(t, 20, queries.ValidateLimit(-5))
	assert.Equal(t, 50, queries.ValidateLimit(50))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(queries.MaxListLimit+1))
}
