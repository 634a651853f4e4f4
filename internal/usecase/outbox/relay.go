package outbox

import (
	"context"
	"log/slog"
	"time"

	"consultation-booking/internal/pkg/clock"
	"consultation-booking/internal/pkg/config"
	"consultation-booking/internal/usecase/shared"
)

const (
	resultPublished = "published"
	resultFailed    = "failed"

	maxRetryDelay = 5 * time.Minute
)

type Publisher interface {
	Publish(ctx context.Context, routingKey, messageID string, body []byte, at time.Time) error
}

type Metrics interface {
	OutboxPublished(result string)
}

// Relay delivers committed outbox events to the broker at least once.
// Claimed rows stay locked until the batch commits, so several relays can run
// side by side.
type Relay struct {
	uow         shared.UnitOfWork
	publisher   Publisher
	clock       clock.Clock
	metrics     Metrics
	interval    time.Duration
	batchSize   int32
	maxAttempts int32
}

func NewRelay(uow shared.UnitOfWork, publisher Publisher, clk clock.Clock, metrics Metrics, cfg config.OutboxConfig) *Relay {
	return &Relay{
		uow:         uow,
		publisher:   publisher,
		clock:       clk,
		metrics:     metrics,
		interval:    cfg.PollInterval,
		batchSize:   cfg.BatchSize,
		maxAttempts: cfg.MaxAttempts,
	}
}

func (r *Relay) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			// drain while full batches keep coming back
			for {
				n, err := r.RelayOnce(ctx)
				if err != nil {
					slog.Error("outbox relay failed", "error", err)
					break
				}
				if n < int(r.batchSize) || ctx.Err() != nil {
					break
				}
			}
		}
	}
}

// RelayOnce publishes one batch and returns how many events it claimed.
func (r *Relay) RelayOnce(ctx context.Context) (int, error) {
	var published, failed, claimed int

	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		published, failed, claimed = 0, 0, 0

		now := r.clock.Now()
		events, err := tx.Outbox().ClaimPending(ctx, tx.DB(), now, r.batchSize)
		if err != nil {
			return err
		}
		claimed = len(events)

		for _, evt := range events {
			if err := r.publisher.Publish(ctx, evt.Topic, evt.ID.String(), evt.Payload, evt.CreatedAt); err != nil {
				slog.Warn("outbox publish failed",
					"event_id", evt.ID,
					"topic", evt.Topic,
					"attempt", evt.Attempts+1,
					"error", err)
				retryAt := now.Add(retryDelay(evt.Attempts))
				if err := tx.Outbox().MarkFailed(ctx, tx.DB(), evt.ID, err.Error(), retryAt, r.maxAttempts); err != nil {
					return err
				}
				failed++
				continue
			}
			if err := tx.Outbox().MarkPublished(ctx, tx.DB(), evt.ID, now); err != nil {
				return err
			}
			published++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	for range published {
		r.metrics.OutboxPublished(resultPublished)
	}
	for range failed {
		r.metrics.OutboxPublished(resultFailed)
	}
	return claimed, nil
}

func retryDelay(attempts int32) time.Duration {
	if attempts > 8 {
		return maxRetryDelay
	}
	d := time.Second << attempts
	if d > maxRetryDelay {
		return maxRetryDelay
	}
	return d
}
