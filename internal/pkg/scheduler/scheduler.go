package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/errs"
)

type Schedule interface {
	// Next returns the first fire time strictly after t.
	Next(t time.Time) time.Time
}

type daily struct {
	offset time.Duration
	loc    *time.Location
}

// DailyAt fires once a day at offset past local midnight in loc.
func DailyAt(offset time.Duration, loc *time.Location) Schedule {
	if loc == nil {
		loc = time.UTC
	}
	return daily{offset: offset, loc: loc}
}

func (d daily) Next(t time.Time) time.Time {
	local := t.In(d.loc)
	y, m, day := local.Date()
	next := time.Date(y, m, day, 0, 0, 0, 0, d.loc).Add(d.offset)
	if !next.After(t) {
		next = time.Date(y, m, day+1, 0, 0, 0, 0, d.loc).Add(d.offset)
	}
	return next
}

type every struct {
	interval time.Duration
}

// Every fires on multiples of interval, so Every(time.Hour) runs on the hour.
func Every(interval time.Duration) Schedule {
	return every{interval: interval}
}

func (e every) Next(t time.Time) time.Time {
	return t.Truncate(e.interval).Add(e.interval)
}

type Job struct {
	Name     string
	Schedule Schedule
	Run      func(ctx context.Context) error
}

// Runner fires each registered job on its schedule until the context ends.
type Runner struct {
	clock  clock.Clock
	logger *slog.Logger
	after  func(time.Duration) <-chan time.Time

	mu   sync.Mutex
	jobs []Job
	wg   sync.WaitGroup
}

func NewRunner(clk clock.Clock, logger *slog.Logger) *Runner {
	return &Runner{clock: clk, logger: logger, after: time.After}
}

func (r *Runner) Add(job Job) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs = append(r.jobs, job)
}

func (r *Runner) Start(ctx context.Context) {
	r.mu.Lock()
	jobs := append([]Job(nil), r.jobs...)
	r.mu.Unlock()

	for _, job := range jobs {
		r.wg.Add(1)
		go func(job Job) {
			defer r.wg.Done()
			r.loop(ctx, job)
		}(job)
	}
}

// Wait blocks until every job loop has returned.
func (r *Runner) Wait() {
	r.wg.Wait()
}

func (r *Runner) loop(ctx context.Context, job Job) {
	for {
		now := r.clock.Now()
		next := job.Schedule.Next(now)
		r.logger.Debug("scheduled job armed", "job", job.Name, "next_run", next)

		select {
		case <-ctx.Done():
			return
		case <-r.after(next.Sub(now)):
		}

		if err := r.runOnce(ctx, job); err != nil {
			r.logger.Error("scheduled job failed", "job", job.Name, "error", err)
		}
	}
}

func (r *Runner) runOnce(ctx context.Context, job Job) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = errs.Newf("panic in job %s: %v", job.Name, rec)
		}
	}()
	start := time.Now()
	err = job.Run(ctx)
	r.logger.Info("scheduled job finished", "job", job.Name, "duration", time.Since(start).String())
	return err
}
