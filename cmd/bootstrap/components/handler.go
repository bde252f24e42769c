package components

import (
	"salon-booking/internal/handler"
	"salon-booking/internal/handler/api"
	"salon-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewAppointmentHandler,
		api.NewServiceHandler,
		middleware.NewAuthMiddleware,
		func(av *api.AvailabilityHandler, ap *api.AppointmentHandler, sv *api.ServiceHandler) handler.Handlers {
			return handler.Handlers{Availability: av, Appointment: ap, Service: sv}
		},
	),
	fx.Invoke(handler.NewRouter),
)
