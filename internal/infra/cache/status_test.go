//go:build unit

package cache_test

import (
	"context"
	"testing"
	"time"

	"consultation-booking/internal/infra/cache"
	"consultation-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestNoopStatusCache(t *testing.T) {
	ctx := context.Background()
	c := cache.NoopStatusCache{}
	id := uuid.New()

	c.Set(ctx, &queries.BookingStatusView{BookingID: id})
	_, ok := c.Get(ctx, id)
	assert.False(t, ok)
	c.Invalidate(ctx, id)
}

func TestRedisStatusCache_UnreachableServerIsAMiss(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	ctx := context.Background()
	c := cache.NewRedisStatusCache(client, time.Second)
	id := uuid.New()

	assert.NotPanics(t, func() {
		c.Set(ctx, &queries.BookingStatusView{BookingID: id, BookingStatus: "CONFIRMED"})
		c.Invalidate(ctx, id)
	})
	view, ok := c.Get(ctx, id)
	assert.False(t, ok)
	assert.Nil(t, view)
}
