package components

import (
	"salon-booking/internal/handler"
	"salon-booking/internal/handler/api"
	"salon-booking/internal/handler/middleware"
	"salon-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewAccountHandler,
		api.NewServiceHandler,
		api.NewAppointmentHandler,
		api.NewRatingHandler,
		api.NewNotificationHandler,
		middleware.NewAuthMiddleware,
		func(cfg config.Config) *middleware.RateLimiter {
			return middleware.NewRateLimiter(cfg.RateLimit)
		},
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Auth         *api.AuthHandler
	Account      *api.AccountHandler
	Service      *api.ServiceHandler
	Appointment  *api.AppointmentHandler
	Rating       *api.RatingHandler
	Notification *api.NotificationHandler
}

func newHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Auth:         p.Auth,
		Account:      p.Account,
		Service:      p.Service,
		Appointment:  p.Appointment,
		Rating:       p.Rating,
		Notification: p.Notification,
	}
}
