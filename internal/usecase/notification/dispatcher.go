package notification

import (
	"context"
	"log/slog"
	"time"

	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/metrics"
	"salon-booking/internal/usecase/shared"
)

type DispatcherConfig struct {
	PollEvery    time.Duration
	BatchSize    int
	MaxAttempts  int
	RetryBackoff time.Duration
}

func (c DispatcherConfig) withDefaults() DispatcherConfig {
	if c.PollEvery <= 0 {
		c.PollEvery = 2 * time.Second
	}
	if c.BatchSize <= 0 {
		c.BatchSize = 50
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 5
	}
	if c.RetryBackoff <= 0 {
		c.RetryBackoff = 30 * time.Second
	}
	return c
}

// Dispatcher drains the outbox: it claims due jobs, hands them to the gateway
// and records the outcome on the job row.
type Dispatcher struct {
	uow     shared.UnitOfWork
	gateway Gateway
	clock   clock.Clock
	logger  *slog.Logger
	metrics metrics.Recorder
	cfg     DispatcherConfig
	wake    chan struct{}
}

func NewDispatcher(
	uow shared.UnitOfWork,
	gateway Gateway,
	clk clock.Clock,
	logger *slog.Logger,
	rec metrics.Recorder,
	cfg DispatcherConfig,
) *Dispatcher {
	if rec == nil {
		rec = metrics.Noop{}
	}
	return &Dispatcher{
		uow:     uow,
		gateway: gateway,
		clock:   clk,
		logger:  logger,
		metrics: rec,
		cfg:     cfg.withDefaults(),
		wake:    make(chan struct{}, 1),
	}
}

// Wake triggers a dispatch round without waiting for the next poll.
func (d *Dispatcher) Wake() {
	select {
	case d.wake <- struct{}{}:
	default:
	}
}

func (d *Dispatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(d.cfg.PollEvery)
	defer ticker.Stop()

	d.logger.Info("notification dispatcher started", "poll_every", d.cfg.PollEvery.String())
	for {
		select {
		case <-ctx.Done():
			d.logger.Info("notification dispatcher stopped")
			return
		case <-ticker.C:
		case <-d.wake:
		}
		if _, err := d.DispatchBatch(ctx); err != nil && ctx.Err() == nil {
			d.logger.Error("notification batch failed", "error", err)
		}
	}
}

// DispatchBatch settles up to BatchSize due jobs and returns how many were
// delivered. Each job is claimed and settled in its own transaction. Delivery
// is at least once: a crash between publish and commit republishes the job,
// and consumers dedupe on the event_id header.
func (d *Dispatcher) DispatchBatch(ctx context.Context) (int, error) {
	delivered := 0
	for range d.cfg.BatchSize {
		claimed, ok, err := d.dispatchOne(ctx)
		if err != nil {
			return delivered, err
		}
		if !claimed {
			break
		}
		if ok {
			delivered++
		}
	}
	return delivered, nil
}

func (d *Dispatcher) dispatchOne(ctx context.Context) (claimed, delivered bool, err error) {
	err = d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		claimed, delivered = false, false
		now := d.clock.Now()
		jobs, err := tx.Notifications().ClaimDue(ctx, tx.DB(), now, 1)
		if err != nil {
			return err
		}
		if len(jobs) == 0 {
			return nil
		}
		claimed = true
		delivered, err = d.process(ctx, tx, jobs[0], now)
		return err
	})
	if err != nil {
		return false, false, err
	}
	return claimed, delivered, nil
}

func (d *Dispatcher) process(ctx context.Context, tx shared.Tx, job shared.NotificationJob, now time.Time) (bool, error) {
	attempts := job.Attempts + 1
	log := d.logger.With("job_id", job.ID.String(), "topic", job.Topic, "attempt", attempts)

	ev, err := Decode(job.Payload)
	if err != nil {
		log.Error("dropping undecodable notification", "error", err)
		d.metrics.NotificationDispatched(job.Topic, "invalid")
		return false, d.update(ctx, tx, job, shared.JobStatusFailed, attempts, job.RunAt, err)
	}
	log = log.With("appointment_id", ev.AppointmentID.String())

	if err := Deliver(ctx, d.gateway, ev); err != nil {
		if attempts >= d.cfg.MaxAttempts {
			log.Error("notification failed permanently", "error", err)
			d.metrics.NotificationDispatched(job.Topic, "failed")
			return false, d.update(ctx, tx, job, shared.JobStatusFailed, attempts, job.RunAt, err)
		}
		next := now.Add(time.Duration(attempts) * d.cfg.RetryBackoff)
		log.Warn("notification delivery failed, will retry", "error", err, "next_run_at", next)
		d.metrics.NotificationDispatched(job.Topic, "retry")
		return false, d.update(ctx, tx, job, shared.JobStatusQueued, attempts, next, err)
	}

	log.Info("notification delivered")
	d.metrics.NotificationDispatched(job.Topic, "sent")
	return true, d.update(ctx, tx, job, shared.JobStatusSent, attempts, job.RunAt, nil)
}

func (d *Dispatcher) update(ctx context.Context, tx shared.Tx, job shared.NotificationJob, status string, attempts int, runAt time.Time, cause error) error {
	var lastErr *string
	if cause != nil {
		msg := cause.Error()
		lastErr = &msg
	}
	return tx.Notifications().UpdateJob(ctx, tx.DB(), shared.NotificationJobUpdate{
		ID:        job.ID,
		Status:    status,
		Attempts:  attempts,
		RunAt:     runAt,
		LastError: lastErr,
	})
}
