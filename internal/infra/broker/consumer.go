package broker

import (
	"context"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Consumer owns one connection to the payment queue. Deliveries redials when
// the previous connection or channel was closed by the broker.
type Consumer struct {
	mu       sync.Mutex
	url      string
	exchange string
	queue    string
	keys     []string
	prefetch int

	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewConsumer(url, exchange, queue string, keys []string, prefetch int) (*Consumer, error) {
	c := &Consumer{url: url, exchange: exchange, queue: queue, keys: keys, prefetch: prefetch}
	if err := c.open(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Consumer) open() error {
	conn, err := amqp.Dial(c.url)
	if err != nil {
		return fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("open channel: %w", err)
	}
	fail := func(what string, err error) error {
		_ = ch.Close()
		_ = conn.Close()
		return fmt.Errorf("%s: %w", what, err)
	}

	if err := ch.ExchangeDeclare(c.exchange, "topic", true, false, false, false, nil); err != nil {
		return fail("declare exchange", err)
	}
	q, err := ch.QueueDeclare(c.queue, true, false, false, false, nil)
	if err != nil {
		return fail("declare queue", err)
	}
	for _, rk := range c.keys {
		if err := ch.QueueBind(q.Name, rk, c.exchange, false, nil); err != nil {
			return fail("bind "+rk, err)
		}
	}
	if c.prefetch > 0 {
		if err := ch.Qos(c.prefetch, 0, false); err != nil {
			return fail("set qos", err)
		}
	}

	c.conn, c.ch, c.queue = conn, ch, q.Name
	return nil
}

// Deliveries starts a manual-ack consumer. The channel closes when ctx is done
// or the connection drops; calling Deliveries again reconnects.
func (c *Consumer) Deliveries(ctx context.Context) (<-chan amqp.Delivery, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ch == nil || c.ch.IsClosed() || c.conn.IsClosed() {
		c.closeLocked()
		if err := c.open(); err != nil {
			return nil, err
		}
	}
	return c.ch.ConsumeWithContext(ctx, c.queue, "", false, false, false, false, nil)
}

func (c *Consumer) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closeLocked()
}

func (c *Consumer) closeLocked() error {
	var err error
	if c.ch != nil {
		_ = c.ch.Close()
		c.ch = nil
	}
	if c.conn != nil {
		err = c.conn.Close()
		c.conn = nil
	}
	return err
}
