package components

import (
	"consultation-booking/internal/domain/booking"
	"consultation-booking/internal/pkg/clock"
	"consultation-booking/internal/usecase"
	"consultation-booking/internal/usecase/commands"
	"consultation-booking/internal/usecase/monitor"
	"consultation-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		booking.NewHourlyRateCalculator,
		fx.As(new(booking.PriceCalculator)),
	),
	fx.Annotate(
		monitor.NewTimerWheel,
		fx.As(fx.Self()),
		fx.As(new(commands.DeadlineScheduler)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		fx.Annotate(
			commands.NewCoordinator,
			fx.As(new(commands.BookingCommands)),
			fx.As(new(commands.PaymentCommands)),
			fx.As(new(commands.MeetingCommands)),
			fx.As(new(commands.LifecycleEnforcer)),
		),
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
