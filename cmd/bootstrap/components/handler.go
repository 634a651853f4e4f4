package components

import (
	"consultation-booking/internal/handler"
	"consultation-booking/internal/handler/api"
	"consultation-booking/internal/handler/middleware"
	"consultation-booking/internal/pkg/metrics"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewMeetingHandler,
		api.NewPaymentHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type HandlerParams struct {
	fx.In

	Booking *api.BookingHandler
	Meeting *api.MeetingHandler
	Payment *api.PaymentHandler
	Metrics *metrics.Metrics
}

func NewHandlers(p HandlerParams) handler.Handlers {
	return handler.Handlers{
		Booking: p.Booking,
		Meeting: p.Meeting,
		Payment: p.Payment,
		Metrics: p.Metrics.Handler(),
	}
}
