package consumer

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	reqdto "consultation-booking/internal/handler/dto/request"
	"consultation-booking/internal/pkg/errs"
	"consultation-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin/binding"
	amqp "github.com/rabbitmq/amqp091-go"
)

type DeliverySource interface {
	Deliveries(ctx context.Context) (<-chan amqp.Delivery, error)
}

const (
	defaultReconnectMin = time.Second
	defaultReconnectMax = 30 * time.Second
)

// PaymentConsumer applies payment signals published by the provider bridge.
type PaymentConsumer struct {
	cmds   commands.PaymentCommands
	source DeliverySource

	reconnectMin time.Duration
	reconnectMax time.Duration
}

func NewPaymentConsumer(cmds commands.PaymentCommands, source DeliverySource) *PaymentConsumer {
	return &PaymentConsumer{
		cmds:         cmds,
		source:       source,
		reconnectMin: defaultReconnectMin,
		reconnectMax: defaultReconnectMax,
	}
}

// WithReconnectDelay bounds the backoff between reconnect attempts.
func (c *PaymentConsumer) WithReconnectDelay(minDelay, maxDelay time.Duration) *PaymentConsumer {
	c.reconnectMin = minDelay
	c.reconnectMax = maxDelay
	return c
}

// Run blocks until ctx is cancelled. A failed subscribe or a channel closed by
// the broker is logged and retried with exponential backoff.
func (c *PaymentConsumer) Run(ctx context.Context) error {
	delay := c.reconnectMin
	for {
		consumed, err := c.consume(ctx)
		if ctx.Err() != nil {
			return nil
		}
		if consumed {
			delay = c.reconnectMin
		}
		slog.Error("payment consumer disconnected, reconnecting",
			"error", err,
			"retry_in", delay)

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(delay):
		}
		delay = min(delay*2, c.reconnectMax)
	}
}

// consume reads one subscription until it ends. consumed reports whether any
// delivery arrived, which resets the backoff.
func (c *PaymentConsumer) consume(ctx context.Context) (consumed bool, err error) {
	deliveries, err := c.source.Deliveries(ctx)
	if err != nil {
		return false, errs.Wrap(err, "start payment consumer")
	}
	for {
		select {
		case <-ctx.Done():
			return consumed, nil
		case d, ok := <-deliveries:
			if !ok {
				return consumed, errs.New("payment delivery channel closed")
			}
			consumed = true
			c.Handle(ctx, d)
		}
	}
}

// Handle settles one delivery. Anything the booking lifecycle has an answer
// for is acked; only infrastructure failures are requeued.
func (c *PaymentConsumer) Handle(ctx context.Context, d amqp.Delivery) {
	var req reqdto.PaymentSignalRequest
	if err := json.Unmarshal(d.Body, &req); err != nil {
		slog.Warn("malformed payment signal dropped", "message_id", d.MessageId, "error", err)
		c.settle(d, d.Nack(false, false))
		return
	}
	if err := binding.Validator.ValidateStruct(&req); err != nil {
		slog.Warn("invalid payment signal dropped", "message_id", d.MessageId, "error", err)
		c.settle(d, d.Nack(false, false))
		return
	}

	result, err := c.cmds.ApplyPaymentSignal(ctx, req.ToCommand())
	switch {
	case err == nil:
		slog.Info("payment signal consumed",
			"booking_id", result.BookingID,
			"event_id", req.EventID,
			"outcome", result.Outcome)
		c.settle(d, d.Ack(false))
	case errs.Is(err, commands.ErrInvalidTransition):
		slog.Info("payment signal rejected", "booking_id", req.BookingID, "event_id", req.EventID, "error", err)
		c.settle(d, d.Ack(false))
	case errs.Is(err, commands.ErrBookingNotFound):
		slog.Warn("payment signal for unknown booking", "booking_id", req.BookingID, "event_id", req.EventID)
		c.settle(d, d.Ack(false))
	case errs.Is(err, commands.ErrDomainValidation):
		slog.Warn("invalid payment signal dropped", "booking_id", req.BookingID, "event_id", req.EventID, "error", err)
		c.settle(d, d.Nack(false, false))
	default:
		slog.Error("payment signal failed, requeueing", "booking_id", req.BookingID, "event_id", req.EventID, "error", err)
		c.settle(d, d.Nack(false, true))
	}
}

func (c *PaymentConsumer) settle(d amqp.Delivery, err error) {
	if err != nil {
		slog.Error("failed to settle delivery", "delivery_tag", d.DeliveryTag, "error", err)
	}
}
