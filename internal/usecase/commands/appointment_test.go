//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/domain/user"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/availability"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"
	"salon-booking/internal/usecase/shared"
	notificationmock "salon-booking/tests/mock/notification"
	queriesmock "salon-booking/tests/mock/queries"
	sharedmock "salon-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// Monday 2024-01-15 08:00 UTC; the salon opens at 09:00.
var testNow = time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return time.Date(2024, 1, 15, hour, minute, 0, 0, time.UTC)
}

type AppointmentCommandsTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	uow     *sharedmock.MockUnitOfWork
	tx      *sharedmock.MockTx
	reads   *sharedmock.MockCommandReads
	appts   *sharedmock.MockAppointmentRepository
	jobs    *sharedmock.MockNotificationRepository
	queries *queriesmock.MockAppointmentQueries
	waker   *notificationmock.MockWaker
	uc      commands.AppointmentCommands

	serviceID uuid.UUID
	customer  shared.Actor
	staff     shared.Actor
}

func TestAppointmentCommandsSuite(t *testing.T) {
	suite.Run(t, new(AppointmentCommandsTestSuite))
}

func (s *AppointmentCommandsTestSuite) SetupSuite() {
	s.serviceID = uuid.New()
	s.customer = shared.Actor{UserID: uuid.New(), Role: user.RoleCustomer}
	s.staff = shared.Actor{UserID: uuid.New(), Role: user.RoleStaff}
}

func (s *AppointmentCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.appts = sharedmock.NewMockAppointmentRepository(s.ctrl)
	s.jobs = sharedmock.NewMockNotificationRepository(s.ctrl)
	s.queries = queriesmock.NewMockAppointmentQueries(s.ctrl)
	s.waker = notificationmock.NewMockWaker(s.ctrl)

	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()
	s.tx.EXPECT().Reads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().Appointments().Return(s.appts).AnyTimes()
	s.tx.EXPECT().Notifications().Return(s.jobs).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()

	policy, err := schedule.NewPolicy(schedule.DefaultPolicyConfig())
	s.Require().NoError(err)
	clk := clock.NewMockClock(testNow)
	engine := availability.NewEngine(s.reads, policy, schedule.DefaultAlternativesConfig(), clk, nil)
	s.uc = commands.NewAppointmentUseCase(s.uow, engine, s.queries, s.waker, clk, nil)

}

func (s *AppointmentCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AppointmentCommandsTestSuite) expectService(active bool) {
	s.reads.EXPECT().ServiceByID(gomock.Any(), s.serviceID).Return(&shared.ServiceSnapshot{
		ID:       s.serviceID,
		Name:     "Haircut",
		Active:   active,
		Duration: 30 * time.Minute,
	}, nil).AnyTimes()
}

// expectBookings serves the overlap query from a fixed list of busy slots.
func (s *AppointmentCommandsTestSuite) expectBookings(busy ...appointment.TimeSlot) {
	s.reads.EXPECT().OverlappingAppointments(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, start, end time.Time, _ *uuid.UUID) ([]shared.AppointmentSnapshot, error) {
			q, _ := appointment.NewTimeSlot(start, end)
			var out []shared.AppointmentSnapshot
			for _, b := range busy {
				if b.Overlaps(q) {
					out = append(out, shared.AppointmentSnapshot{ID: uuid.New(), Start: b.Start(), End: b.End(), Status: "confirmed"})
				}
			}
			return out, nil
		}).AnyTimes()
}

func (s *AppointmentCommandsTestSuite) expectConfirmationJob(id uuid.UUID, kind, topic string) {
	s.reads.EXPECT().AppointmentDetails(gomock.Any(), id).Return(&shared.AppointmentDetails{ID: id, Status: "confirmed"}, nil)
	s.jobs.EXPECT().CreateJob(gomock.Any(), gomock.Any(), kind, topic, gomock.Any(), testNow).Return(nil)
}

func (s *AppointmentCommandsTestSuite) stored(owner uuid.UUID, status appointment.Status) *appointment.Appointment {
	slot, err := appointment.NewTimeSlot(at(10, 0), at(10, 30))
	s.Require().NoError(err)
	return appointment.Reconstruct(uuid.New(), owner, s.serviceID, slot, status, appointment.Notes{}, testNow, testNow)
}

// ================================================================================
// Create
// ================================================================================

func (s *AppointmentCommandsTestSuite) TestCreate_Success() {
	newID := uuid.New()
	s.expectService(true)
	s.expectBookings()
	s.reads.EXPECT().UserByID(gomock.Any(), s.customer.UserID).Return(&shared.UserSnapshot{ID: s.customer.UserID}, nil)
	s.appts.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, a *appointment.Appointment) (uuid.UUID, error) {
			s.Equal(s.customer.UserID, a.UserID())
			s.Equal(at(10, 30), a.Slot().End(), "end is derived from the service duration")
			s.Equal(appointment.StatusConfirmed, a.Status())
			return newID, nil
		})
	s.expectConfirmationJob(newID, "confirmation", "appointment.confirmed")
	s.waker.EXPECT().Wake()
	s.queries.EXPECT().GetByIDSystem(gomock.Any(), newID).Return(&queries.AppointmentView{ID: newID}, nil)

	view, err := s.uc.Create(context.Background(), s.customer, commands.CreateAppointmentRequest{
		ServiceID: s.serviceID,
		StartTime: at(10, 0),
		Notes:     "first visit",
	})
	s.Require().NoError(err)
	s.Equal(newID, view.ID)
}

func (s *AppointmentCommandsTestSuite) TestCreate_SlotTaken() {
	busy, _ := appointment.NewTimeSlot(at(10, 0), at(10, 30))
	s.expectService(true)
	s.expectBookings(busy)

	_, err := s.uc.Create(context.Background(), s.customer, commands.CreateAppointmentRequest{
		ServiceID: s.serviceID,
		StartTime: at(10, 0),
	})
	s.Require().Error(err)
	s.True(errs.Is(err, errs.ErrInvalidRequest))

	ue, ok := commands.AsUnavailable(err)
	s.Require().True(ok)
	s.Equal(availability.MessageAlreadyBooked, ue.Verdict.Message)
	s.Equal([]time.Time{at(11, 0), at(12, 0), at(13, 0), time.Date(2024, 1, 16, 10, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 16, 11, 0, 0, 0, time.UTC), time.Date(2024, 1, 16, 12, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 16, 13, 0, 0, 0, time.UTC)}, ue.Verdict.Alternatives)
}

func (s *AppointmentCommandsTestSuite) TestCreate_LostRaceReportsAlreadyBooked() {
	s.expectService(true)
	s.expectBookings()
	s.reads.EXPECT().UserByID(gomock.Any(), gomock.Any()).Return(&shared.UserSnapshot{}, nil)
	conflict := errs.Mark(errs.New("exclusion violation"), errs.ErrConflict)
	s.appts.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.Nil, conflict)

	_, err := s.uc.Create(context.Background(), s.customer, commands.CreateAppointmentRequest{
		ServiceID: s.serviceID,
		StartTime: at(10, 0),
	})
	ue, ok := commands.AsUnavailable(err)
	s.Require().True(ok)
	s.Equal(availability.MessageAlreadyBooked, ue.Verdict.Message)
	s.NotNil(ue.Verdict.Alternatives)
}

func (s *AppointmentCommandsTestSuite) TestCreate_Rejections() {
	other := uuid.New()
	end := at(11, 0)

	testCases := []struct {
		name   string
		actor  shared.Actor
		req    commands.CreateAppointmentRequest
		setup  func()
		assert func(error)
	}{
		{
			name:  "customer booking for someone else",
			actor: s.customer,
			req:   commands.CreateAppointmentRequest{UserID: &other, ServiceID: s.serviceID, StartTime: at(10, 0)},
			setup: func() {},
			assert: func(err error) {
				s.ErrorIs(err, commands.ErrBookingForOtherUser)
				s.True(errs.Is(err, errs.ErrForbidden))
			},
		},
		{
			name:  "end time does not match duration",
			actor: s.customer,
			req:   commands.CreateAppointmentRequest{ServiceID: s.serviceID, StartTime: at(10, 0), EndTime: &end},
			setup: func() {
				s.expectService(true)
				s.expectBookings()
			},
			assert: func(err error) { s.ErrorIs(err, appointment.ErrEndTimeMismatch) },
		},
		{
			name:  "staff booking for unknown user",
			actor: s.staff,
			req:   commands.CreateAppointmentRequest{UserID: &other, ServiceID: s.serviceID, StartTime: at(10, 0)},
			setup: func() {
				s.expectService(true)
				s.expectBookings()
				s.reads.EXPECT().UserByID(gomock.Any(), other).Return(nil, errs.NewNotFound("no rows"))
			},
			assert: func(err error) {
				s.ErrorIs(err, user.ErrNotFound)
				s.True(errs.Is(err, errs.ErrNotFound))
			},
		},
		{
			name:  "inactive service",
			actor: s.customer,
			req:   commands.CreateAppointmentRequest{ServiceID: s.serviceID, StartTime: at(10, 0)},
			setup: func() { s.expectService(false) },
			assert: func(err error) {
				ue, ok := commands.AsUnavailable(err)
				s.Require().True(ok)
				s.Equal(availability.MessageServiceInactive, ue.Verdict.Message)
				s.Empty(ue.Verdict.Alternatives)
			},
		},
		{
			name:   "notes too long",
			actor:  s.customer,
			req:    commands.CreateAppointmentRequest{ServiceID: s.serviceID, StartTime: at(10, 0), Notes: string(make([]rune, 1001))},
			setup:  func() {},
			assert: func(err error) { s.ErrorIs(err, appointment.ErrNotesTooLong) },
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			tc.setup()
			_, err := s.uc.Create(context.Background(), tc.actor, tc.req)
			s.Require().Error(err)
			tc.assert(err)
		})
	}
}

// ================================================================================
// UpdateStatus / Cancel
// ================================================================================

func (s *AppointmentCommandsTestSuite) TestUpdateStatus_StaffCompletes() {
	a := s.stored(s.customer.UserID, appointment.StatusConfirmed)
	s.appts.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), a.ID()).Return(a, nil)
	s.appts.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), a).Return(nil)
	s.queries.EXPECT().GetByIDSystem(gomock.Any(), a.ID()).Return(&queries.AppointmentView{ID: a.ID(), Status: "completed"}, nil)

	view, err := s.uc.UpdateStatus(context.Background(), s.staff, a.ID(), "COMPLETED")
	s.Require().NoError(err)
	s.Equal("completed", view.Status)
	s.Equal(appointment.StatusCompleted, a.Status())
}

func (s *AppointmentCommandsTestSuite) TestCancel_OwnerQueuesCancellation() {
	a := s.stored(s.customer.UserID, appointment.StatusConfirmed)
	s.appts.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), a.ID()).Return(a, nil)
	s.appts.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), a).Return(nil)
	s.expectConfirmationJob(a.ID(), "cancellation", "appointment.cancelled")
	s.waker.EXPECT().Wake()
	s.queries.EXPECT().GetByIDSystem(gomock.Any(), a.ID()).Return(&queries.AppointmentView{ID: a.ID()}, nil)

	_, err := s.uc.Cancel(context.Background(), s.customer, a.ID())
	s.Require().NoError(err)
	s.Equal(appointment.StatusCancelled, a.Status())
}

func (s *AppointmentCommandsTestSuite) TestUpdateStatus_SameStatusIsNoop() {
	a := s.stored(s.customer.UserID, appointment.StatusCancelled)
	s.appts.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), a.ID()).Return(a, nil)
	s.queries.EXPECT().GetByIDSystem(gomock.Any(), a.ID()).Return(&queries.AppointmentView{ID: a.ID()}, nil)

	_, err := s.uc.Cancel(context.Background(), s.customer, a.ID())
	s.Require().NoError(err)
}

func (s *AppointmentCommandsTestSuite) TestUpdateStatus_Rejections() {
	testCases := []struct {
		name   string
		actor  func() shared.Actor
		status string
		stored func() *appointment.Appointment
		want   error
	}{
		{
			name:   "customer cannot complete",
			actor:  func() shared.Actor { return s.customer },
			status: "completed",
			stored: func() *appointment.Appointment { return s.stored(s.customer.UserID, appointment.StatusConfirmed) },
			want:   commands.ErrStatusChangeForbidden,
		},
		{
			name:   "other customer's appointment is hidden",
			actor:  func() shared.Actor { return s.customer },
			status: "cancelled",
			stored: func() *appointment.Appointment { return s.stored(uuid.New(), appointment.StatusConfirmed) },
			want:   appointment.ErrNotFound,
		},
		{
			name:   "terminal status cannot change",
			actor:  func() shared.Actor { return s.staff },
			status: "confirmed",
			stored: func() *appointment.Appointment { return s.stored(s.customer.UserID, appointment.StatusCompleted) },
			want:   appointment.ErrTerminalStatus,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			a := tc.stored()
			s.appts.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), a.ID()).Return(a, nil)

			_, err := s.uc.UpdateStatus(context.Background(), tc.actor(), a.ID(), tc.status)
			s.ErrorIs(err, tc.want)
		})
	}
}

func (s *AppointmentCommandsTestSuite) TestUpdateStatus_InvalidStatus() {
	_, err := s.uc.UpdateStatus(context.Background(), s.staff, uuid.New(), "archived")
	s.ErrorIs(err, appointment.ErrInvalidStatus)
}

func (s *AppointmentCommandsTestSuite) TestUpdateStatus_NotFound() {
	id := uuid.New()
	s.appts.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), id).Return(nil, errs.NewNotFound("no rows"))

	_, err := s.uc.UpdateStatus(context.Background(), s.staff, id, "cancelled")
	s.ErrorIs(err, appointment.ErrNotFound)
}

// ================================================================================
// Update
// ================================================================================

func (s *AppointmentCommandsTestSuite) TestUpdate_RescheduleExcludesItself() {
	a := s.stored(s.customer.UserID, appointment.StatusConfirmed)
	newStart := at(14, 0)
	s.appts.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), a.ID()).Return(a, nil)
	s.expectService(true)
	s.reads.EXPECT().OverlappingAppointments(gomock.Any(), newStart, at(14, 30), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ time.Time, exclude *uuid.UUID) ([]shared.AppointmentSnapshot, error) {
			s.Require().NotNil(exclude)
			s.Equal(a.ID(), *exclude)
			return nil, nil
		})
	s.appts.EXPECT().Update(gomock.Any(), gomock.Any(), a).Return(nil)
	s.queries.EXPECT().GetByIDSystem(gomock.Any(), a.ID()).Return(&queries.AppointmentView{ID: a.ID()}, nil)

	_, err := s.uc.Update(context.Background(), s.customer, a.ID(), commands.UpdateAppointmentRequest{StartTime: &newStart})
	s.Require().NoError(err)
	s.Equal(newStart, a.Slot().Start())
	s.Equal(at(14, 30), a.Slot().End())
}

func (s *AppointmentCommandsTestSuite) TestUpdate_NotesOnlySkipsAvailability() {
	a := s.stored(s.customer.UserID, appointment.StatusConfirmed)
	notes := "allergic to lavender"
	s.appts.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), a.ID()).Return(a, nil)
	s.appts.EXPECT().Update(gomock.Any(), gomock.Any(), a).Return(nil)
	s.queries.EXPECT().GetByIDSystem(gomock.Any(), a.ID()).Return(&queries.AppointmentView{ID: a.ID()}, nil)

	_, err := s.uc.Update(context.Background(), s.customer, a.ID(), commands.UpdateAppointmentRequest{Notes: &notes})
	s.Require().NoError(err)
	s.Equal(notes, a.Notes().String())
}

func (s *AppointmentCommandsTestSuite) TestUpdate_TerminalCannotMove() {
	a := s.stored(s.customer.UserID, appointment.StatusCancelled)
	newStart := at(14, 0)
	s.appts.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), a.ID()).Return(a, nil)

	_, err := s.uc.Update(context.Background(), s.staff, a.ID(), commands.UpdateAppointmentRequest{StartTime: &newStart})
	s.ErrorIs(err, appointment.ErrTerminalSchedule)
}

func (s *AppointmentCommandsTestSuite) TestUpdate_CancelThroughUpdate() {
	a := s.stored(s.customer.UserID, appointment.StatusConfirmed)
	status := "cancelled"
	s.appts.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), a.ID()).Return(a, nil)
	s.appts.EXPECT().Update(gomock.Any(), gomock.Any(), a).Return(nil)
	s.expectConfirmationJob(a.ID(), "cancellation", "appointment.cancelled")
	s.waker.EXPECT().Wake()
	s.queries.EXPECT().GetByIDSystem(gomock.Any(), a.ID()).Return(&queries.AppointmentView{ID: a.ID()}, nil)

	_, err := s.uc.Update(context.Background(), s.customer, a.ID(), commands.UpdateAppointmentRequest{Status: &status})
	s.Require().NoError(err)
}

func (s *AppointmentCommandsTestSuite) TestUpdate_RepositoryError() {
	a := s.stored(s.customer.UserID, appointment.StatusConfirmed)
	notes := "x"
	dbErr := errors.New("connection reset")
	s.appts.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), a.ID()).Return(a, nil)
	s.appts.EXPECT().Update(gomock.Any(), gomock.Any(), a).Return(dbErr)

	_, err := s.uc.Update(context.Background(), s.customer, a.ID(), commands.UpdateAppointmentRequest{Notes: &notes})
	s.ErrorIs(err, dbErr)
}
