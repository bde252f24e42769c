package notifier

import (
	"context"
	"log/slog"

	"salon-booking/internal/usecase/notification"
)

// LogGateway only logs events. It is used when no broker is configured.
type LogGateway struct {
	logger *slog.Logger
}

func NewLogGateway(logger *slog.Logger) *LogGateway {
	return &LogGateway{logger: logger}
}

func (g *LogGateway) NotifyConfirmation(_ context.Context, ev notification.Event) error {
	g.log("appointment confirmation", ev)
	return nil
}

func (g *LogGateway) NotifyCancellation(_ context.Context, ev notification.Event) error {
	g.log("appointment cancellation", ev)
	return nil
}

func (g *LogGateway) NotifyReminder(_ context.Context, ev notification.Event) error {
	g.log("appointment reminder", ev)
	return nil
}

func (g *LogGateway) log(msg string, ev notification.Event) {
	g.logger.Info(msg,
		"appointment_id", ev.AppointmentID.String(),
		"email", ev.Email,
		"service", ev.ServiceName,
		"start_time", ev.StartTime,
		"window", ev.Window,
	)
}
