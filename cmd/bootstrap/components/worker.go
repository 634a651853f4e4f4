package components

import (
	"context"
	"log/slog"
	"sync"

	"consultation-booking/internal/domain/booking"
	"consultation-booking/internal/handler/consumer"
	"consultation-booking/internal/infra/broker"
	"consultation-booking/internal/pkg/clock"
	"consultation-booking/internal/pkg/config"
	"consultation-booking/internal/pkg/metrics"
	"consultation-booking/internal/usecase/commands"
	"consultation-booking/internal/usecase/monitor"
	"consultation-booking/internal/usecase/outbox"
	"consultation-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewDeadlineMonitor,
	),
	fx.Invoke(RegisterWorkers),
)

type MonitorParams struct {
	fx.In

	Enforcer commands.LifecycleEnforcer
	UoW      shared.UnitOfWork
	Wheel    *monitor.TimerWheel
	Policy   booking.Policy
	Clock    clock.Clock
	Metrics  *metrics.Metrics
	Config   config.Config
}

func NewDeadlineMonitor(p MonitorParams) *monitor.DeadlineMonitor {
	return monitor.NewDeadlineMonitor(p.Enforcer, p.UoW, p.Wheel, p.Policy, p.Clock, p.Metrics, p.Config.Monitor)
}

type WorkerParams struct {
	fx.In

	Config   config.Config
	Monitor  *monitor.DeadlineMonitor
	Wheel    *monitor.TimerWheel
	Payments commands.PaymentCommands
	UoW      shared.UnitOfWork
	Clock    clock.Clock
	Metrics  *metrics.Metrics
}

type worker struct {
	name string
	run  func(ctx context.Context) error
}

// RegisterWorkers starts the background loops with the application and stops
// them before the database pool closes.
func RegisterWorkers(lc fx.Lifecycle, p WorkerParams) {
	if !p.Config.Server.WorkersEnabled {
		slog.Info("background workers disabled")
		return
	}

	var (
		cancel  context.CancelFunc
		wg      sync.WaitGroup
		closers []func() error
	)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			workers := []worker{{name: "deadline-monitor", run: p.Monitor.Run}}

			if p.Config.AMQP.Enabled() {
				amqpCfg := p.Config.AMQP

				pub, err := broker.NewPublisher(amqpCfg.URL, amqpCfg.Exchange)
				if err != nil {
					return err
				}
				closers = append(closers, pub.Close)
				relay := outbox.NewRelay(p.UoW, pub, p.Clock, p.Metrics, p.Config.Outbox)
				workers = append(workers, worker{name: "outbox-relay", run: relay.Run})

				sub, err := broker.NewConsumer(amqpCfg.URL, amqpCfg.Exchange, amqpCfg.PaymentQueue,
					[]string{amqpCfg.PaymentRoutingKey}, amqpCfg.ConsumerPrefetch)
				if err != nil {
					return err
				}
				closers = append(closers, sub.Close)
				payments := consumer.NewPaymentConsumer(p.Payments, sub)
				workers = append(workers, worker{name: "payment-consumer", run: payments.Run})
			} else {
				slog.Info("AMQP not configured, outbox relay and payment consumer disabled")
			}

			var ctx context.Context
			ctx, cancel = context.WithCancel(context.Background())
			for _, w := range workers {
				wg.Add(1)
				go func() {
					defer wg.Done()
					slog.Info("worker starting", "worker", w.name)
					if err := w.run(ctx); err != nil {
						slog.Error("worker exited with error", "worker", w.name, "error", err)
					}
				}()
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if cancel != nil {
				cancel()
			}
			p.Wheel.Stop()

			done := make(chan struct{})
			go func() {
				wg.Wait()
				close(done)
			}()
			select {
			case <-done:
			case <-ctx.Done():
				slog.Warn("workers did not stop in time")
			}

			for _, c := range closers {
				if err := c(); err != nil {
					slog.Warn("failed to close broker connection", "error", err)
				}
			}
			return nil
		},
	})
}
