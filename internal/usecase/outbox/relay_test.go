//go:build unit

package outbox_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"consultation-booking/internal/pkg/clock"
	"consultation-booking/internal/pkg/config"
	"consultation-booking/internal/usecase/outbox"
	"consultation-booking/internal/usecase/shared"
	"consultation-booking/tests/common/memuow"
	outboxmock "consultation-booking/tests/mock/outbox"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RelayTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	uow       *memuow.UoW
	publisher *outboxmock.MockPublisher
	metrics   *outboxmock.MockMetrics
	clock     *clock.MockClock
	relay     *outbox.Relay
	now       time.Time
}

func (s *RelayTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = memuow.New()
	s.publisher = outboxmock.NewMockPublisher(s.ctrl)
	s.metrics = outboxmock.NewMockMetrics(s.ctrl)
	s.now = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s.clock = clock.NewMockClock(s.now)
	s.relay = outbox.NewRelay(s.uow, s.publisher, s.clock, s.metrics, config.OutboxConfig{
		PollInterval: time.Second,
		BatchSize:    2,
		MaxAttempts:  2,
	})
}

func (s *RelayTestSuite) SetupSubTest() {
	s.SetupTest()
}

func (s *RelayTestSuite) appendEvent(topic string) shared.OutboxEvent {
	evt := shared.OutboxEvent{
		ID:          uuid.New(),
		AggregateID: uuid.New(),
		Topic:       topic,
		Payload:     []byte(`{"topic":"` + topic + `"}`),
		CreatedAt:   s.now,
	}
	err := s.uow.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		return tx.Outbox().Append(ctx, tx.DB(), evt)
	})
	s.Require().NoError(err)
	return evt
}

func (s *RelayTestSuite) record(id uuid.UUID) memuow.OutboxRecord {
	for _, rec := range s.uow.Outbox() {
		if rec.Event.ID == id {
			return rec
		}
	}
	s.FailNow("outbox record not found", id.String())
	return memuow.OutboxRecord{}
}

func TestRelayTestSuite(t *testing.T) {
	suite.Run(t, new(RelayTestSuite))
}

func (s *RelayTestSuite) TestRelayOnce() {
	s.Run("publishes claimed events and marks them", func() {
		first := s.appendEvent("booking.created")
		second := s.appendEvent("booking.paid")

		gomock.InOrder(
			s.publisher.EXPECT().Publish(gomock.Any(), "booking.created", first.ID.String(), first.Payload, s.now).Return(nil),
			s.publisher.EXPECT().Publish(gomock.Any(), "booking.paid", second.ID.String(), second.Payload, s.now).Return(nil),
		)
		s.metrics.EXPECT().OutboxPublished("published").Times(2)

		n, err := s.relay.RelayOnce(context.Background())
		s.Require().NoError(err)
		s.Equal(2, n)
		s.Equal("published", s.record(first.ID).Status)
		s.Equal("published", s.record(second.ID).Status)
	})

	s.Run("claims at most one batch", func() {
		s.appendEvent("booking.created")
		s.appendEvent("booking.paid")
		third := s.appendEvent("booking.confirmed")

		s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
		s.metrics.EXPECT().OutboxPublished("published").Times(2)

		n, err := s.relay.RelayOnce(context.Background())
		s.Require().NoError(err)
		s.Equal(2, n)
		s.Equal("pending", s.record(third.ID).Status)
	})

	s.Run("failed publish is retried after backoff", func() {
		evt := s.appendEvent("booking.cancelled")

		s.publisher.EXPECT().Publish(gomock.Any(), "booking.cancelled", evt.ID.String(), gomock.Any(), gomock.Any()).
			Return(errors.New("channel closed"))
		s.metrics.EXPECT().OutboxPublished("failed")

		n, err := s.relay.RelayOnce(context.Background())
		s.Require().NoError(err)
		s.Equal(1, n)
		rec := s.record(evt.ID)
		s.Equal("pending", rec.Status)
		s.Equal("channel closed", rec.LastError)
		s.Equal(s.now.Add(time.Second), rec.AvailableAt)

		// not due yet
		n, err = s.relay.RelayOnce(context.Background())
		s.Require().NoError(err)
		s.Zero(n)

		s.clock.Add(time.Second)
		s.publisher.EXPECT().Publish(gomock.Any(), "booking.cancelled", evt.ID.String(), gomock.Any(), gomock.Any()).Return(nil)
		s.metrics.EXPECT().OutboxPublished("published")

		n, err = s.relay.RelayOnce(context.Background())
		s.Require().NoError(err)
		s.Equal(1, n)
		s.Equal("published", s.record(evt.ID).Status)
	})

	s.Run("gives up after max attempts", func() {
		evt := s.appendEvent("meeting.started")

		s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("broker down")).Times(2)
		s.metrics.EXPECT().OutboxPublished("failed").Times(2)

		_, err := s.relay.RelayOnce(context.Background())
		s.Require().NoError(err)
		s.clock.Add(time.Hour)
		_, err = s.relay.RelayOnce(context.Background())
		s.Require().NoError(err)

		rec := s.record(evt.ID)
		s.Equal("failed", rec.Status)
		s.Equal(int32(2), rec.Event.Attempts)

		s.clock.Add(time.Hour)
		n, err := s.relay.RelayOnce(context.Background())
		s.Require().NoError(err)
		s.Zero(n)
	})

	s.Run("commit failure reports nothing", func() {
		evt := s.appendEvent("booking.created")
		s.uow.FailCommit = errors.New("serialization failure")

		s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		n, err := s.relay.RelayOnce(context.Background())
		s.Require().Error(err)
		s.Zero(n)
		s.Equal("pending", s.record(evt.ID).Status)
	})
}

func (s *RelayTestSuite) TestRun_StopsOnCancel() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s.NoError(s.relay.Run(ctx))
}
