package bootstrap

import (
	"consultation-booking/internal/domain/booking"
	"consultation-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewPolicy,
	),
)

func NewPolicy(cfg config.Config) booking.Policy {
	lc := cfg.Lifecycle
	return booking.Policy{
		MeetingMaxDuration: lc.MeetingMaxDuration,
		JoinEarly:          lc.JoinEarlyWindow,
		NoShowGrace:        lc.NoShowGrace,
		AcceptanceCutoff:   lc.AcceptanceCutoff,
		PaymentTimeout:     lc.PaymentTimeout,
		MinLeadTime:        lc.MinLeadTime,
		MinDurationMinutes: lc.MinDurationMinutes,
		MaxDurationMinutes: lc.MaxDurationMinutes,
	}
}
