//go:build e2e

package cache_test

import (
	"context"
	"testing"
	"time"

	"consultation-booking/internal/infra/cache"
	"consultation-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type StatusCacheSuite struct {
	suite.Suite
	client *redis.Client
}

func TestStatusCacheSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(StatusCacheSuite))
}

func (s *StatusCacheSuite) SetupSuite() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(time.Minute),
			Labels:       map[string]string{"purpose": "consultation-booking-e2e"},
		},
		Started: true,
	})
	require.NoError(t, err, "failed to start redis container")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379/tcp")
	require.NoError(t, err)

	s.client = redis.NewClient(&redis.Options{Addr: host + ":" + port.Port()})
	t.Cleanup(func() { _ = s.client.Close() })
}

func (s *StatusCacheSuite) SetupSubTest() {
	require.NoError(s.T(), s.client.FlushDB(context.Background()).Err())
}

func (s *StatusCacheSuite) TestStatusCache() {
	ctx := context.Background()

	s.Run("Normal case: cached view is served until invalidated", func() {
		c := cache.NewRedisStatusCache(s.client, time.Minute)
		id := uuid.New()

		c.Set(ctx, &queries.BookingStatusView{BookingID: id, BookingStatus: "CONFIRMED", MeetingStatus: "WAITING"})
		got, ok := c.Get(ctx, id)
		s.Require().True(ok)
		s.Equal("CONFIRMED", got.BookingStatus)

		c.Invalidate(ctx, id)
		_, ok = c.Get(ctx, id)
		s.False(ok)
	})

	s.Run("Normal case: a read from before the commit is not stored after invalidation", func() {
		c := cache.NewRedisStatusCache(s.client, time.Minute)
		id := uuid.New()

		// the reader loaded CONFIRMED, then the join committed and invalidated
		c.Invalidate(ctx, id)
		c.Set(ctx, &queries.BookingStatusView{BookingID: id, BookingStatus: "CONFIRMED", MeetingStatus: "WAITING"})

		_, ok := c.Get(ctx, id)
		s.False(ok)
	})

	s.Run("Normal case: caching resumes once the fence expires", func() {
		c := cache.NewRedisStatusCache(s.client, 200*time.Millisecond)
		id := uuid.New()

		c.Invalidate(ctx, id)
		s.Eventually(func() bool {
			c.Set(ctx, &queries.BookingStatusView{BookingID: id, BookingStatus: "IN_PROGRESS", MeetingStatus: "ACTIVE"})
			_, ok := c.Get(ctx, id)
			return ok
		}, 2*time.Second, 50*time.Millisecond)
	})
}
