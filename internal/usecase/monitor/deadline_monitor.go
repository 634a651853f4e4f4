package monitor

import (
	"context"
	"log/slog"
	"time"

	"consultation-booking/internal/domain/booking"
	"consultation-booking/internal/pkg/clock"
	"consultation-booking/internal/pkg/config"
	"consultation-booking/internal/usecase/commands"
	"consultation-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	KindSessionExpiry    = "session_expiry"
	KindNoShow           = "no_show"
	KindAcceptanceExpiry = "acceptance_expiry"
	KindUnpaidExpiry     = "unpaid_expiry"

	resultApplied = "applied"
	resultNoop    = "noop"
	resultError   = "error"
)

type Metrics interface {
	MonitorAction(kind, result string)
	ObserveSweep(d time.Duration)
}

// DeadlineMonitor enforces every time-based transition. The periodic sweep
// is authoritative and restart safe; the timer wheel only makes session
// expiry prompt.
type DeadlineMonitor struct {
	enforcer   commands.LifecycleEnforcer
	candidates shared.DeadlineCandidates
	wheel      *TimerWheel
	policy     booking.Policy
	clock      clock.Clock
	metrics    Metrics
	interval   time.Duration
	batchSize  int32
}

func NewDeadlineMonitor(
	enforcer commands.LifecycleEnforcer,
	uow shared.UnitOfWork,
	wheel *TimerWheel,
	policy booking.Policy,
	clk clock.Clock,
	metrics Metrics,
	cfg config.MonitorConfig,
) *DeadlineMonitor {
	return &DeadlineMonitor{
		enforcer:   enforcer,
		candidates: uow.CommandReads(),
		wheel:      wheel,
		policy:     policy,
		clock:      clk,
		metrics:    metrics,
		interval:   cfg.SweepInterval,
		batchSize:  cfg.BatchSize,
	}
}

// Run blocks until ctx is cancelled.
func (m *DeadlineMonitor) Run(ctx context.Context) error {
	m.rearm(ctx)
	m.Sweep(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			m.Sweep(ctx)
		case id := <-m.wheel.Fired():
			m.run(ctx, KindSessionExpiry, id, m.enforcer.ExpireSession)
		}
	}
}

// rearm restores timers for sessions that were active before a restart.
func (m *DeadlineMonitor) rearm(ctx context.Context) {
	deadlines, err := m.candidates.ActiveSessionDeadlines(ctx, m.batchSize)
	if err != nil {
		slog.Error("failed to load active session deadlines", "error", err)
		return
	}
	for _, d := range deadlines {
		m.wheel.Arm(d.BookingID, d.ExpiresAt)
	}
	slog.Info("session timers armed", "count", len(deadlines))
}

type sweep struct {
	kind  string
	list  func(ctx context.Context, now time.Time, limit int32) ([]uuid.UUID, error)
	apply func(ctx context.Context, bookingID uuid.UUID) (bool, error)
}

func (m *DeadlineMonitor) sweeps() []sweep {
	sweeps := []sweep{
		{
			kind:  KindSessionExpiry,
			list:  m.candidates.OverrunSessionBookingIDs,
			apply: m.enforcer.ExpireSession,
		},
		{
			kind: KindNoShow,
			list: func(ctx context.Context, now time.Time, limit int32) ([]uuid.UUID, error) {
				return m.candidates.NoShowCandidateIDs(ctx, now.Add(-m.policy.NoShowGrace), limit)
			},
			apply: m.enforcer.EvaluateNoShow,
		},
		{
			kind: KindAcceptanceExpiry,
			list: func(ctx context.Context, now time.Time, limit int32) ([]uuid.UUID, error) {
				return m.candidates.AcceptanceOverdueBookingIDs(ctx, now.Add(m.policy.AcceptanceCutoff), limit)
			},
			apply: m.enforcer.ExpireAcceptance,
		},
	}
	if m.policy.PaymentTimeout > 0 {
		sweeps = append(sweeps, sweep{
			kind: KindUnpaidExpiry,
			list: func(ctx context.Context, now time.Time, limit int32) ([]uuid.UUID, error) {
				return m.candidates.UnpaidBookingIDs(ctx, now.Add(-m.policy.PaymentTimeout), limit)
			},
			apply: m.enforcer.ExpireUnpaid,
		})
	}
	return sweeps
}

// Sweep runs one reconciliation pass. Each kind is listed and processed in
// its own goroutine; every booking is handled in its own transaction.
// Failures are logged and counted, never returned.
func (m *DeadlineMonitor) Sweep(ctx context.Context) {
	started := time.Now()
	now := m.clock.Now()

	g, gctx := errgroup.WithContext(ctx)
	for _, s := range m.sweeps() {
		g.Go(func() error {
			ids, err := s.list(gctx, now, m.batchSize)
			if err != nil {
				slog.Error("deadline sweep query failed", "kind", s.kind, "error", err)
				m.metrics.MonitorAction(s.kind, resultError)
				return nil
			}
			for _, id := range ids {
				if gctx.Err() != nil {
					return nil
				}
				m.run(gctx, s.kind, id, s.apply)
			}
			return nil
		})
	}
	_ = g.Wait()

	m.metrics.ObserveSweep(time.Since(started))
}

func (m *DeadlineMonitor) run(ctx context.Context, kind string, bookingID uuid.UUID, apply func(context.Context, uuid.UUID) (bool, error)) {
	applied, err := apply(ctx, bookingID)
	switch {
	case err != nil:
		slog.Error("deadline enforcement failed", "kind", kind, "booking_id", bookingID, "error", err)
		m.metrics.MonitorAction(kind, resultError)
	case applied:
		slog.Info("deadline enforced", "kind", kind, "booking_id", bookingID)
		m.metrics.MonitorAction(kind, resultApplied)
	default:
		slog.Debug("deadline not due", "kind", kind, "booking_id", bookingID)
		m.metrics.MonitorAction(kind, resultNoop)
	}
}
