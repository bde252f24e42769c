//go:build unit

package reminder_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/usecase/notification"
	"salon-booking/internal/usecase/queries"
	"salon-booking/internal/usecase/reminder"
	"salon-booking/internal/usecase/shared"
	notificationmock "salon-booking/tests/mock/notification"
	remindermock "salon-booking/tests/mock/reminder"
	sharedmock "salon-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReminderTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	finder *remindermock.MockAppointmentFinder
	locker *remindermock.MockLocker
	waker  *notificationmock.MockWaker
	uow    *sharedmock.MockUnitOfWork
	tx     *sharedmock.MockTx
	jobs   *sharedmock.MockNotificationRepository
	clock  *clock.MockClock
	svc    *reminder.Service
}

func TestReminderSuite(t *testing.T) {
	suite.Run(t, new(ReminderTestSuite))
}

func (s *ReminderTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.finder = remindermock.NewMockAppointmentFinder(s.ctrl)
	s.locker = remindermock.NewMockLocker(s.ctrl)
	s.waker = notificationmock.NewMockWaker(s.ctrl)
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.jobs = sharedmock.NewMockNotificationRepository(s.ctrl)

	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()
	s.tx.EXPECT().Notifications().Return(s.jobs).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()

	policy, err := schedule.NewPolicy(schedule.DefaultPolicyConfig())
	s.Require().NoError(err)

	// Monday 2024-01-15 10:00 UTC
	s.clock = clock.NewMockClock(time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC))
	s.svc = reminder.NewService(s.finder, s.uow, s.locker, s.waker, policy, s.clock,
		slog.New(slog.NewTextHandler(io.Discard, nil)), nil,
		reminder.Config{HourlyWindowFrom: 2 * time.Hour, HourlyWindowTo: 3 * time.Hour, DedupTTL: 48 * time.Hour})
}

func (s *ReminderTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func view(start time.Time) *queries.AppointmentView {
	return &queries.AppointmentView{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		UserEmail:   "jane@example.com",
		ServiceID:   uuid.New(),
		ServiceName: "Haircut",
		StartTime:   start,
		EndTime:     start.Add(30 * time.Minute),
		Status:      "confirmed",
	}
}

func (s *ReminderTestSuite) TestRunDaily_QueriesNextCalendarDay() {
	from := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC)
	a, b := view(from.Add(10*time.Hour)), view(from.Add(15*time.Hour))

	s.locker.EXPECT().Acquire(gomock.Any(), "run:daily:2024-01-16T00:00:00Z", 48*time.Hour).Return(true, nil)
	s.finder.EXPECT().FindByStatusAndTimeRange(gomock.Any(), "confirmed", from, to).
		Return([]*queries.AppointmentView{a, b}, nil)
	s.locker.EXPECT().Acquire(gomock.Any(), "reminder:daily:"+a.ID.String(), gomock.Any()).Return(true, nil)
	s.locker.EXPECT().Acquire(gomock.Any(), "reminder:daily:"+b.ID.String(), gomock.Any()).Return(true, nil)
	s.jobs.EXPECT().CreateJob(gomock.Any(), gomock.Any(), "reminder", "appointment.reminder", gomock.Any(), s.clock.Now()).
		DoAndReturn(func(_ context.Context, _ any, _, _ string, payload []byte, _ time.Time) error {
			ev, err := notification.Decode(payload)
			s.Require().NoError(err)
			s.Equal(reminder.WindowDaily, ev.Window)
			return nil
		}).Times(2)
	s.waker.EXPECT().Wake()

	res, err := s.svc.RunDaily(context.Background())
	s.Require().NoError(err)
	s.Equal(2, res.Found)
	s.Equal(2, res.Queued)
	s.Zero(res.Failed)
}

func (s *ReminderTestSuite) TestRunHourly_UsesLookaheadWindow() {
	now := s.clock.Now()
	s.locker.EXPECT().Acquire(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	s.finder.EXPECT().FindByStatusAndTimeRange(gomock.Any(), "confirmed", now.Add(2*time.Hour), now.Add(3*time.Hour)).
		Return(nil, nil)

	res, err := s.svc.RunHourly(context.Background())
	s.Require().NoError(err)
	s.Zero(res.Found)
	s.Zero(res.Queued)
}

func (s *ReminderTestSuite) TestRun_FailureIsIsolatedPerAppointment() {
	now := s.clock.Now()
	failing, ok := view(now.Add(2*time.Hour)), view(now.Add(150*time.Minute))

	s.locker.EXPECT().Acquire(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil).Times(3)
	s.finder.EXPECT().FindByStatusAndTimeRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*queries.AppointmentView{failing, ok}, nil)
	gomock.InOrder(
		s.jobs.EXPECT().CreateJob(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("insert failed")),
		s.jobs.EXPECT().CreateJob(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil),
	)
	s.locker.EXPECT().Release(gomock.Any(), "reminder:hourly:"+failing.ID.String()).Return(nil)
	s.waker.EXPECT().Wake()

	res, err := s.svc.RunHourly(context.Background())
	s.Require().NoError(err)
	s.Equal(1, res.Failed)
	s.Equal(1, res.Queued)
}

func (s *ReminderTestSuite) TestRun_SkipsAlreadyReminded() {
	v := view(s.clock.Now().Add(2 * time.Hour))
	s.locker.EXPECT().Acquire(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	s.finder.EXPECT().FindByStatusAndTimeRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*queries.AppointmentView{v}, nil)
	s.locker.EXPECT().Acquire(gomock.Any(), "reminder:hourly:"+v.ID.String(), gomock.Any()).Return(false, nil)

	res, err := s.svc.RunHourly(context.Background())
	s.Require().NoError(err)
	s.Equal(1, res.Skipped)
	s.Zero(res.Queued)
}

func (s *ReminderTestSuite) TestRun_AnotherInstanceHoldsTheRun() {
	s.locker.EXPECT().Acquire(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

	res, err := s.svc.RunDaily(context.Background())
	s.Require().NoError(err)
	s.Zero(res.Found)
}

func (s *ReminderTestSuite) TestRun_FinderErrorReleasesRunLock() {
	s.locker.EXPECT().Acquire(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	s.finder.EXPECT().FindByStatusAndTimeRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("db down"))
	s.locker.EXPECT().Release(gomock.Any(), gomock.Any()).Return(nil)

	_, err := s.svc.RunDaily(context.Background())
	s.Error(err)
}

func TestRunDaily_SalonTimeZone(t *testing.T) {
	ctrl := gomock.NewController(t)
	paris, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)
	cfg := schedule.DefaultPolicyConfig()
	cfg.Location = paris
	policy, err := schedule.NewPolicy(cfg)
	require.NoError(t, err)

	finder := remindermock.NewMockAppointmentFinder(ctrl)
	locker := remindermock.NewMockLocker(ctrl)
	// 23:30 UTC on Jan 15 is already Jan 16 in Paris.
	clk := clock.NewMockClock(time.Date(2024, 1, 15, 23, 30, 0, 0, time.UTC))
	svc := reminder.NewService(finder, nil, locker, notification.NoopWaker{}, policy, clk,
		slog.New(slog.NewTextHandler(io.Discard, nil)), nil, reminder.Config{})

	locker.EXPECT().Acquire(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	finder.EXPECT().FindByStatusAndTimeRange(gomock.Any(), "confirmed", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, start, end time.Time) ([]*queries.AppointmentView, error) {
			assert.True(t, start.Equal(time.Date(2024, 1, 17, 0, 0, 0, 0, paris)), "start %s", start)
			assert.True(t, end.Equal(time.Date(2024, 1, 18, 0, 0, 0, 0, paris)), "end %s", end)
			return nil, nil
		})

	_, err = svc.RunDaily(context.Background())
	require.NoError(t, err)
}
