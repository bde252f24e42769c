package notifier

import (
	"context"
	"log/slog"
	"time"

	"salon-booking/internal/usecase/notification"

	"github.com/sony/gobreaker/v2"
)

// BreakerGateway stops calling a failing downstream gateway for a while so
// the dispatcher fails fast and reschedules instead of piling up timeouts.
type BreakerGateway struct {
	next notification.Gateway
	cb   *gobreaker.CircuitBreaker[struct{}]
}

type BreakerConfig struct {
	Name                string
	ConsecutiveFailures uint32
	OpenDelay           time.Duration
}

func NewBreakerGateway(next notification.Gateway, cfg BreakerConfig, logger *slog.Logger) *BreakerGateway {
	if cfg.ConsecutiveFailures == 0 {
		cfg.ConsecutiveFailures = 5
	}
	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: 1,
		Timeout:     cfg.OpenDelay,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.ConsecutiveFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("notification breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
		},
	}
	return &BreakerGateway{
		next: next,
		cb:   gobreaker.NewCircuitBreaker[struct{}](settings),
	}
}

func (g *BreakerGateway) NotifyConfirmation(ctx context.Context, ev notification.Event) error {
	return g.call(func() error { return g.next.NotifyConfirmation(ctx, ev) })
}

func (g *BreakerGateway) NotifyCancellation(ctx context.Context, ev notification.Event) error {
	return g.call(func() error { return g.next.NotifyCancellation(ctx, ev) })
}

func (g *BreakerGateway) NotifyReminder(ctx context.Context, ev notification.Event) error {
	return g.call(func() error { return g.next.NotifyReminder(ctx, ev) })
}

func (g *BreakerGateway) State() gobreaker.State {
	return g.cb.State()
}

func (g *BreakerGateway) call(fn func() error) error {
	_, err := g.cb.Execute(func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}
