package bootstrap

import (
	"context"
	"log/slog"
	"sync"

	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/metrics"
	"salon-booking/internal/pkg/scheduler"
	"salon-booking/internal/usecase/notification"
	"salon-booking/internal/usecase/reminder"
	"salon-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewDispatcher,
		func(d *notification.Dispatcher) notification.Waker { return d },
		NewReminderService,
		NewScheduler,
	),
	fx.Invoke(startWorkers),
)

func NewDispatcher(uow shared.UnitOfWork, gw notification.Gateway, clk clock.Clock, logger *slog.Logger, rec metrics.Recorder, cfg config.Config) *notification.Dispatcher {
	return notification.NewDispatcher(uow, gw, clk, logger.With("component", "dispatcher"), rec, notification.DispatcherConfig{
		PollEvery:    cfg.Notification.PollEvery,
		BatchSize:    cfg.Notification.BatchSize,
		MaxAttempts:  cfg.Notification.MaxAttempts,
		RetryBackoff: cfg.Notification.RetryBackoff,
	})
}

func NewReminderService(
	finder reminder.AppointmentFinder,
	uow shared.UnitOfWork,
	locker reminder.Locker,
	waker notification.Waker,
	policy *schedule.Policy,
	clk clock.Clock,
	logger *slog.Logger,
	rec metrics.Recorder,
	cfg config.Config,
) *reminder.Service {
	return reminder.NewService(finder, uow, locker, waker, policy, clk, logger.With("component", "reminder"), rec, reminder.Config{
		HourlyWindowFrom: cfg.Reminder.HourlyWindowFrom,
		HourlyWindowTo:   cfg.Reminder.HourlyWindowTo,
		DedupTTL:         cfg.Reminder.DedupTTL,
	})
}

// NewScheduler registers the daily and hourly reminder jobs. The runner is
// empty when reminders are disabled.
func NewScheduler(svc *reminder.Service, policy *schedule.Policy, clk clock.Clock, logger *slog.Logger, cfg config.Config) (*scheduler.Runner, error) {
	runner := scheduler.NewRunner(clk, logger.With("component", "scheduler"))
	if !cfg.Reminder.Enabled {
		return runner, nil
	}

	dailyAt, err := schedule.ParseTimeOfDay(cfg.Reminder.DailyAt)
	if err != nil {
		return nil, err
	}

	runner.Add(scheduler.Job{
		Name:     "daily-reminders",
		Schedule: scheduler.DailyAt(dailyAt, policy.Location()),
		Run: func(ctx context.Context) error {
			_, err := svc.RunDaily(ctx)
			return err
		},
	})
	runner.Add(scheduler.Job{
		Name:     "hourly-reminders",
		Schedule: scheduler.Every(cfg.Reminder.HourlyEvery),
		Run: func(ctx context.Context) error {
			_, err := svc.RunHourly(ctx)
			return err
		},
	})
	return runner, nil
}

func startWorkers(lc fx.Lifecycle, dispatcher *notification.Dispatcher, runner *scheduler.Runner, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			wg.Add(1)
			go func() {
				defer wg.Done()
				dispatcher.Run(ctx)
			}()
			runner.Start(ctx)
			logger.Info("background workers started")
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			done := make(chan struct{})
			go func() {
				wg.Wait()
				runner.Wait()
				close(done)
			}()
			select {
			case <-done:
				logger.Info("background workers stopped")
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}
