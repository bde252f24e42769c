package reminder

import (
	"context"
	"log/slog"
	"time"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/metrics"
	"salon-booking/internal/usecase/notification"
	"salon-booking/internal/usecase/queries"
	"salon-booking/internal/usecase/shared"
)

const (
	WindowDaily  = "daily"
	WindowHourly = "hourly"
)

type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

type AppointmentFinder interface {
	FindByStatusAndTimeRange(ctx context.Context, status string, start, end time.Time) ([]*queries.AppointmentView, error)
}

type Config struct {
	HourlyWindowFrom time.Duration
	HourlyWindowTo   time.Duration
	DedupTTL         time.Duration
}

// Result summarises one run.
type Result struct {
	Window  string
	Start   time.Time
	End     time.Time
	Found   int
	Queued  int
	Skipped int
	Failed  int
}

type Service struct {
	finder  AppointmentFinder
	uow     shared.UnitOfWork
	locker  Locker
	waker   notification.Waker
	policy  *schedule.Policy
	clock   clock.Clock
	logger  *slog.Logger
	metrics metrics.Recorder
	cfg     Config
}

func NewService(
	finder AppointmentFinder,
	uow shared.UnitOfWork,
	locker Locker,
	waker notification.Waker,
	policy *schedule.Policy,
	clk clock.Clock,
	logger *slog.Logger,
	rec metrics.Recorder,
	cfg Config,
) *Service {
	if cfg.HourlyWindowFrom == 0 && cfg.HourlyWindowTo == 0 {
		cfg.HourlyWindowFrom, cfg.HourlyWindowTo = 2*time.Hour, 3*time.Hour
	}
	if cfg.DedupTTL <= 0 {
		cfg.DedupTTL = 48 * time.Hour
	}
	if rec == nil {
		rec = metrics.Noop{}
	}
	return &Service{
		finder:  finder,
		uow:     uow,
		locker:  locker,
		waker:   waker,
		policy:  policy,
		clock:   clk,
		logger:  logger,
		metrics: rec,
		cfg:     cfg,
	}
}

// RunDaily queues reminders for confirmed appointments starting on the next
// calendar day in the salon's time zone.
func (s *Service) RunDaily(ctx context.Context) (Result, error) {
	now := s.clock.Now()
	start := s.policy.StartOfDay(now).AddDate(0, 0, 1)
	return s.run(ctx, WindowDaily, start, start.AddDate(0, 0, 1))
}

// RunHourly queues reminders for confirmed appointments starting in the
// configured lookahead window.
func (s *Service) RunHourly(ctx context.Context) (Result, error) {
	now := s.clock.Now()
	return s.run(ctx, WindowHourly, now.Add(s.cfg.HourlyWindowFrom), now.Add(s.cfg.HourlyWindowTo))
}

func (s *Service) run(ctx context.Context, window string, start, end time.Time) (Result, error) {
	res := Result{Window: window, Start: start, End: end}
	log := s.logger.With("window", window, "from", start, "to", end)

	runKey := "run:" + window + ":" + start.UTC().Format(time.RFC3339)
	ok, err := s.locker.Acquire(ctx, runKey, s.cfg.DedupTTL)
	if err != nil {
		return res, err
	}
	if !ok {
		log.Info("reminder run already handled by another instance")
		return res, nil
	}

	views, err := s.finder.FindByStatusAndTimeRange(ctx, appointment.StatusConfirmed.String(), start, end)
	if err != nil {
		_ = s.locker.Release(ctx, runKey)
		return res, err
	}
	res.Found = len(views)

	for _, v := range views {
		queued, err := s.remind(ctx, window, v)
		switch {
		case err != nil:
			res.Failed++
			log.Error("failed to queue reminder", "appointment_id", v.ID.String(), "error", err)
		case queued:
			res.Queued++
			s.metrics.ReminderQueued(window)
		default:
			res.Skipped++
		}
	}

	if res.Queued > 0 {
		s.waker.Wake()
	}
	log.Info("reminder run finished", "found", res.Found, "queued", res.Queued, "skipped", res.Skipped, "failed", res.Failed)
	return res, nil
}

func (s *Service) remind(ctx context.Context, window string, v *queries.AppointmentView) (bool, error) {
	key := "reminder:" + window + ":" + v.ID.String()
	ok, err := s.locker.Acquire(ctx, key, s.cfg.DedupTTL)
	if err != nil || !ok {
		return false, err
	}

	ev := notification.NewEvent(notification.KindReminder, detailsFromView(v), s.clock.Now())
	ev.Window = window
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return notification.Enqueue(ctx, tx, ev)
	})
	if err != nil {
		_ = s.locker.Release(ctx, key)
		return false, err
	}
	return true, nil
}

func detailsFromView(v *queries.AppointmentView) *shared.AppointmentDetails {
	d := &shared.AppointmentDetails{
		ID:            v.ID,
		UserID:        v.UserID,
		UserEmail:     v.UserEmail,
		UserFirstName: v.UserFirstName,
		UserLastName:  v.UserLastName,
		ServiceID:     v.ServiceID,
		ServiceName:   v.ServiceName,
		Start:         v.StartTime,
		End:           v.EndTime,
		Status:        v.Status,
	}
	if v.UserPhone != nil {
		d.UserPhone = *v.UserPhone
	}
	if v.Notes != nil {
		d.Notes = *v.Notes
	}
	return d
}
