// Package cache keeps short-lived booking status projections for polling clients.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"consultation-booking/internal/pkg/config"
	"consultation-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix   = "booking-status:"
	fenceSuffix = ":fence"
)

// setUnlessFenced refuses to store a projection while the booking's fence is
// up, so a read that started before a commit cannot repopulate the entry
// after the coordinator invalidated it.
var setUnlessFenced = redis.NewScript(`
if redis.call("EXISTS", KEYS[2]) == 1 then
	return 0
end
redis.call("SET", KEYS[1], ARGV[1], "PX", ARGV[2])
return 1
`)

func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	cleanup := func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err)
		}
	}
	return client, cleanup, nil
}

type RedisStatusCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRedisStatusCache(client redis.Cmdable, ttl time.Duration) *RedisStatusCache {
	return &RedisStatusCache{client: client, ttl: ttl}
}

func key(bookingID uuid.UUID) string {
	return keyPrefix + bookingID.String()
}

func fenceKey(bookingID uuid.UUID) string {
	return key(bookingID) + fenceSuffix
}

func (c *RedisStatusCache) Get(ctx context.Context, bookingID uuid.UUID) (*queries.BookingStatusView, bool) {
	data, err := c.client.Get(ctx, key(bookingID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("status cache get failed", "booking_id", bookingID, "error", err)
		}
		return nil, false
	}

	var view queries.BookingStatusView
	if err := json.Unmarshal(data, &view); err != nil {
		slog.Warn("status cache entry corrupt", "booking_id", bookingID, "error", err)
		return nil, false
	}
	return &view, true
}

func (c *RedisStatusCache) Set(ctx context.Context, view *queries.BookingStatusView) {
	data, err := json.Marshal(view)
	if err != nil {
		return
	}
	keys := []string{key(view.BookingID), fenceKey(view.BookingID)}
	if err := setUnlessFenced.Run(ctx, c.client, keys, data, c.ttl.Milliseconds()).Err(); err != nil {
		slog.Warn("status cache set failed", "booking_id", view.BookingID, "error", err)
	}
}

// Invalidate drops the entry and raises a fence for one TTL. Reads during
// that window go to the database.
func (c *RedisStatusCache) Invalidate(ctx context.Context, bookingID uuid.UUID) {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key(bookingID))
		pipe.Set(ctx, fenceKey(bookingID), 1, c.ttl)
		return nil
	})
	if err != nil {
		slog.Warn("status cache invalidate failed", "booking_id", bookingID, "error", err)
	}
}

// NoopStatusCache is used when Redis is not configured.
type NoopStatusCache struct{}

func (NoopStatusCache) Get(context.Context, uuid.UUID) (*queries.BookingStatusView, bool) {
	return nil, false
}

func (NoopStatusCache) Set(context.Context, *queries.BookingStatusView) {}

func (NoopStatusCache) Invalidate(context.Context, uuid.UUID) {}
