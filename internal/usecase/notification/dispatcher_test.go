//go:build unit

package notification_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/usecase/notification"
	"salon-booking/internal/usecase/shared"
	notificationmock "salon-booking/tests/mock/notification"
	sharedmock "salon-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	now        = time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	errGateway = errors.New("gateway unavailable")
)

type dispatcherMocks struct {
	commits *int
	uow     *sharedmock.MockUnitOfWork
	tx      *sharedmock.MockTx
	jobs    *sharedmock.MockNotificationRepository
	gateway *notificationmock.MockGateway
}

func setupDispatcher(t *testing.T, cfg notification.DispatcherConfig) (*notification.Dispatcher, dispatcherMocks) {
	ctrl := gomock.NewController(t)
	m := dispatcherMocks{
		commits: new(int),
		uow:     sharedmock.NewMockUnitOfWork(ctrl),
		tx:      sharedmock.NewMockTx(ctrl),
		jobs:    sharedmock.NewMockNotificationRepository(ctrl),
		gateway: notificationmock.NewMockGateway(ctrl),
	}
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			err := fn(ctx, m.tx)
			if err == nil {
				*m.commits++
			}
			return err
		}).AnyTimes()
	m.tx.EXPECT().Notifications().Return(m.jobs).AnyTimes()
	m.tx.EXPECT().DB().Return(nil).AnyTimes()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	d := notification.NewDispatcher(m.uow, m.gateway, clock.NewMockClock(now), logger, nil, cfg)
	return d, m
}

// expectClaims hands out jobs one per claim, then reports the outbox empty.
func expectClaims(m dispatcherMocks, jobs ...shared.NotificationJob) {
	calls := make([]any, 0, len(jobs)+1)
	for _, j := range jobs {
		calls = append(calls, m.jobs.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), now, 1).
			Return([]shared.NotificationJob{j}, nil))
	}
	calls = append(calls, m.jobs.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), now, 1).Return(nil, nil))
	gomock.InOrder(calls...)
}

func queuedJob(t *testing.T, kind notification.Kind, attempts int) shared.NotificationJob {
	t.Helper()
	ev := notification.Event{
		EventID:       uuid.New(),
		Kind:          kind,
		AppointmentID: uuid.New(),
		Email:         "jane@example.com",
		OccurredAt:    now.Add(-time.Minute),
	}
	payload, err := json.Marshal(ev)
	require.NoError(t, err)
	return shared.NotificationJob{
		ID:       uuid.New(),
		Kind:     string(kind),
		Topic:    kind.Topic(),
		Payload:  payload,
		RunAt:    now.Add(-time.Minute),
		Attempts: attempts,
		Status:   shared.JobStatusQueued,
	}
}

func TestDispatcher_DispatchBatch(t *testing.T) {
	cfg := notification.DispatcherConfig{BatchSize: 10, MaxAttempts: 3, RetryBackoff: time.Minute}

	t.Run("success: delivered jobs are marked sent", func(t *testing.T) {
		d, m := setupDispatcher(t, cfg)
		confirm := queuedJob(t, notification.KindConfirmation, 0)
		cancel := queuedJob(t, notification.KindCancellation, 0)

		expectClaims(m, confirm, cancel)
		m.gateway.EXPECT().NotifyConfirmation(gomock.Any(), gomock.Any()).Return(nil)
		m.gateway.EXPECT().NotifyCancellation(gomock.Any(), gomock.Any()).Return(nil)
		m.jobs.EXPECT().UpdateJob(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, u shared.NotificationJobUpdate) error {
				assert.Equal(t, shared.JobStatusSent, u.Status)
				assert.Equal(t, 1, u.Attempts)
				assert.Nil(t, u.LastError)
				return nil
			}).Times(2)

		n, err := d.DispatchBatch(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("failure: retry is scheduled with backoff", func(t *testing.T) {
		d, m := setupDispatcher(t, cfg)
		job := queuedJob(t, notification.KindReminder, 1)

		expectClaims(m, job)
		m.gateway.EXPECT().NotifyReminder(gomock.Any(), gomock.Any()).Return(errGateway)
		m.jobs.EXPECT().UpdateJob(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, u shared.NotificationJobUpdate) error {
				assert.Equal(t, job.ID, u.ID)
				assert.Equal(t, shared.JobStatusQueued, u.Status)
				assert.Equal(t, 2, u.Attempts)
				assert.Equal(t, now.Add(2*time.Minute), u.RunAt)
				require.NotNil(t, u.LastError)
				assert.Contains(t, *u.LastError, "gateway unavailable")
				return nil
			})

		n, err := d.DispatchBatch(context.Background())
		require.NoError(t, err, "delivery failures never fail the batch")
		assert.Zero(t, n)
	})

	t.Run("failure: max attempts marks the job failed", func(t *testing.T) {
		d, m := setupDispatcher(t, cfg)
		job := queuedJob(t, notification.KindConfirmation, 2)

		expectClaims(m, job)
		m.gateway.EXPECT().NotifyConfirmation(gomock.Any(), gomock.Any()).Return(errGateway)
		m.jobs.EXPECT().UpdateJob(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, u shared.NotificationJobUpdate) error {
				assert.Equal(t, shared.JobStatusFailed, u.Status)
				assert.Equal(t, 3, u.Attempts)
				return nil
			})

		_, err := d.DispatchBatch(context.Background())
		require.NoError(t, err)
	})

	t.Run("failure: one bad job does not stop the others", func(t *testing.T) {
		d, m := setupDispatcher(t, cfg)
		bad := queuedJob(t, notification.KindConfirmation, 0)
		bad.Payload = []byte("{not json")
		good := queuedJob(t, notification.KindReminder, 0)

		expectClaims(m, bad, good)
		m.gateway.EXPECT().NotifyReminder(gomock.Any(), gomock.Any()).Return(nil)
		gomock.InOrder(
			m.jobs.EXPECT().UpdateJob(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ any, u shared.NotificationJobUpdate) error {
					assert.Equal(t, bad.ID, u.ID)
					assert.Equal(t, shared.JobStatusFailed, u.Status)
					return nil
				}),
			m.jobs.EXPECT().UpdateJob(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ any, u shared.NotificationJobUpdate) error {
					assert.Equal(t, good.ID, u.ID)
					assert.Equal(t, shared.JobStatusSent, u.Status)
					return nil
				}),
		)

		n, err := d.DispatchBatch(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("error: claim failure is returned", func(t *testing.T) {
		d, m := setupDispatcher(t, cfg)
		m.jobs.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), now, 1).Return(nil, errors.New("db down"))

		_, err := d.DispatchBatch(context.Background())
		require.Error(t, err)
	})

	t.Run("failure: a settle error keeps earlier jobs committed", func(t *testing.T) {
		d, m := setupDispatcher(t, cfg)
		first := queuedJob(t, notification.KindConfirmation, 0)
		second := queuedJob(t, notification.KindCancellation, 0)

		gomock.InOrder(
			m.jobs.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), now, 1).Return([]shared.NotificationJob{first}, nil),
			m.jobs.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), now, 1).Return([]shared.NotificationJob{second}, nil),
		)
		m.gateway.EXPECT().NotifyConfirmation(gomock.Any(), gomock.Any()).Return(nil)
		m.gateway.EXPECT().NotifyCancellation(gomock.Any(), gomock.Any()).Return(nil)
		gomock.InOrder(
			m.jobs.EXPECT().UpdateJob(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
			m.jobs.EXPECT().UpdateJob(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection reset")),
		)

		n, err := d.DispatchBatch(context.Background())
		require.Error(t, err)
		assert.Equal(t, 1, n)
		assert.Equal(t, 1, *m.commits, "the first job's sent mark is committed on its own")
	})

	t.Run("batch size caps the number of claims", func(t *testing.T) {
		d, m := setupDispatcher(t, notification.DispatcherConfig{BatchSize: 2, MaxAttempts: 3})
		a := queuedJob(t, notification.KindReminder, 0)
		b := queuedJob(t, notification.KindReminder, 0)

		gomock.InOrder(
			m.jobs.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), now, 1).Return([]shared.NotificationJob{a}, nil),
			m.jobs.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), now, 1).Return([]shared.NotificationJob{b}, nil),
		)
		m.gateway.EXPECT().NotifyReminder(gomock.Any(), gomock.Any()).Return(nil).Times(2)
		m.jobs.EXPECT().UpdateJob(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

		n, err := d.DispatchBatch(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})
}

func TestDispatcher_WakeTriggersRun(t *testing.T) {
	d, m := setupDispatcher(t, notification.DispatcherConfig{PollEvery: time.Hour})

	claimed := make(chan struct{}, 1)
	m.jobs.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, any, time.Time, int) ([]shared.NotificationJob, error) {
			select {
			case claimed <- struct{}{}:
			default:
			}
			return nil, nil
		}).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		d.Run(ctx)
		close(done)
	}()

	d.Wake()
	select {
	case <-claimed:
	case <-time.After(5 * time.Second):
		t.Fatal("wake did not trigger a dispatch round")
	}
	cancel()
	<-done
}

func TestEnqueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	tx := sharedmock.NewMockTx(ctrl)
	jobs := sharedmock.NewMockNotificationRepository(ctrl)
	reads := sharedmock.NewMockCommandReads(ctrl)
	tx.EXPECT().Notifications().Return(jobs).AnyTimes()
	tx.EXPECT().Reads().Return(reads).AnyTimes()
	tx.EXPECT().DB().Return(nil).AnyTimes()

	id := uuid.New()
	reads.EXPECT().AppointmentDetails(gomock.Any(), id).Return(&shared.AppointmentDetails{
		ID:          id,
		UserEmail:   "jane@example.com",
		ServiceName: "Haircut",
		Start:       now.Add(24 * time.Hour),
		End:         now.Add(24*time.Hour + 30*time.Minute),
		Status:      "confirmed",
	}, nil)
	jobs.EXPECT().CreateJob(gomock.Any(), gomock.Any(), "confirmation", "appointment.confirmed", gomock.Any(), now).
		DoAndReturn(func(_ context.Context, _ any, _, _ string, payload []byte, _ time.Time) error {
			ev, err := notification.Decode(payload)
			require.NoError(t, err)
			assert.Equal(t, id, ev.AppointmentID)
			assert.Equal(t, "Haircut", ev.ServiceName)
			return nil
		})

	require.NoError(t, notification.EnqueueFor(context.Background(), tx, notification.KindConfirmation, id, now))
}

func TestDecode_UnknownKind(t *testing.T) {
	_, err := notification.Decode([]byte(`{"kind":"sms"}`))
	assert.ErrorIs(t, err, notification.ErrUnknownKind)
}
