package bootstrap

import (
	"context"
	"log/slog"

	"salon-booking/internal/infra/notifier"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/usecase/notification"

	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		NewNotificationGateway,
	),
)

// NewNotificationGateway publishes to Kafka behind a circuit breaker when
// brokers are configured, and only logs events otherwise.
func NewNotificationGateway(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) notification.Gateway {
	brokers := notifier.SplitBrokers(cfg.Notification.KafkaBrokers)
	if len(brokers) == 0 {
		logger.Warn("no kafka brokers configured, notifications are logged only")
		return notifier.NewLogGateway(logger)
	}

	writer := notifier.NewKafkaWriter(brokers)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return writer.Close()
		},
	})

	return notifier.NewBreakerGateway(
		notifier.NewKafkaGateway(writer, cfg.Notification.TopicPrefix),
		notifier.BreakerConfig{
			Name:                "kafka-notifications",
			ConsecutiveFailures: cfg.Notification.BreakerFailures,
			OpenDelay:           cfg.Notification.BreakerOpenDelay,
		},
		logger,
	)
}
