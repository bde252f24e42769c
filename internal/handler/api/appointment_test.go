//go:build unit

package api_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/domain/user"
	"salon-booking/internal/handler/api"
	reqdto "salon-booking/internal/handler/dto/request"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/handler/httperr"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/availability"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"
	"salon-booking/internal/usecase/shared"
	"salon-booking/tests/common/builder"
	"salon-booking/tests/common/httptest"
	"salon-booking/tests/common/testutil"
	commandsmock "salon-booking/tests/mock/commands"
	queriesmock "salon-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AppointmentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAppointmentCommands
	mockQueries  *queriesmock.MockAppointmentQueries
	handler      *api.AppointmentHandler
	actor        shared.Actor
}

func (s *AppointmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAppointmentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAppointmentQueries(s.mockCtrl)
	s.handler = api.NewAppointmentHandler(s.mockCommands, s.mockQueries)
	s.actor = builder.NewUserBuilder().BuildActor()

	auth := fakeAuth(&s.actor)
	s.router.POST("/appointments", auth, s.handler.Create)
	s.router.GET("/appointments", auth, s.handler.ListMine)
	s.router.GET("/appointments/range", auth, s.handler.Range)
	s.router.GET("/appointments/:id", auth, s.handler.Get)
	s.router.PUT("/appointments/:id", auth, s.handler.Update)
	s.router.PATCH("/appointments/:id/status", auth, s.handler.UpdateStatus)
	s.router.POST("/appointments/:id/cancel", auth, s.handler.Cancel)
	s.router.GET("/users/:id/appointments", auth, s.handler.ListByUser)
}

func (s *AppointmentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAppointmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AppointmentHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestCreate() {
	path := "/appointments"
	b := builder.NewAppointmentBuilder().ForUser(s.actor.UserID)
	reqBody := b.BuildCreateRequestDTO()
	view := b.BuildView()

	s.Run("success: returns 201 with the booked appointment", func() {
		want := commands.CreateAppointmentRequest{
			ServiceID: reqBody.ServiceID,
			StartTime: reqBody.StartTime,
			Notes:     reqBody.Notes,
		}
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, want).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, reqBody, bearer)

		var body resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID, body.ID)
		s.Equal("CONFIRMED", body.Status)
		s.True(view.StartTime.Equal(body.StartTime))
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/appointments/" + view.ID.String()})
	})

	s.Run("error: 400 with alternatives when the slot is taken", func() {
		alt := []time.Time{
			reqBody.StartTime.Add(time.Hour),
			reqBody.StartTime.Add(2 * time.Hour),
		}
		unavailable := &commands.UnavailableError{Verdict: &availability.Verdict{
			Available:    false,
			Message:      "Requested time slot is not available",
			Alternatives: alt,
		}}
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, unavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, reqBody, bearer)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Requested time slot is not available")
		var detail httperr.AvailabilityDetail
		httptest.DecodeErrorDetail(s.T(), rec, &detail)
		s.False(detail.Available)
		want := []string{alt[0].Format(time.RFC3339), alt[1].Format(time.RFC3339)}
		s.Empty(cmp.Diff(want, detail.AlternativeSlots))
	})

	s.Run("error: 400 on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing serviceId", mutate: testutil.Field("serviceId", nil)},
			{name: "missing startTime", mutate: testutil.Field("startTime", nil)},
			{name: "malformed startTime", mutate: testutil.Field("startTime", "tomorrow at noon")},
			{name: "malformed serviceId", mutate: testutil.Field("serviceId", "not-a-uuid")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, body, bearer)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 400 on malformed JSON", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, path, `{"serviceId":`, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: 403 when a customer books for someone else", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrBookingForOtherUser).Times(1)

		other := uuid.New()
		body := reqdto.CreateAppointmentRequest{UserID: &other, ServiceID: reqBody.ServiceID, StartTime: reqBody.StartTime}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, body, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "only staff")
	})

	s.Run("error: 400 slot already booked on a lost race without verdict", func() {
		conflict := errs.Mark(errs.New("exclusion violation"), errs.ErrConflict)
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, conflict).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, reqBody, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "slot already booked")
	})

	s.Run("error: 500 hides unexpected errors", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.New("connection reset")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, reqBody, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
		s.NotContains(rec.Body.String(), "connection reset")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestGet() {
	view := builder.NewAppointmentBuilder().ForUser(s.actor.UserID).BuildView()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments/"+view.ID.String(), nil, bearer)

		var body resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ServiceName, body.ServiceName)
		s.Equal(s.actor.UserID, body.UserID)
	})

	s.Run("error: 404 when missing or owned by someone else", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrAppointmentNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments/"+uuid.NewString(), nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "appointment not found")
	})

	s.Run("error: 400 on invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments/not-a-uuid", nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestListMine() {
	views := []*queries.AppointmentView{
		builder.NewAppointmentBuilder().ForUser(s.actor.UserID).BuildView(),
		builder.NewAppointmentBuilder().ForUser(s.actor.UserID).WithStatus(appointment.StatusScheduled).BuildView(),
	}

	s.Run("upcoming flag is forwarded", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.actor, s.actor.UserID, true).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments?upcoming=true", nil, bearer)

		var body []resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
		s.Equal("SCHEDULED", body[1].Status)
	})

	s.Run("defaults to all appointments", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.actor, s.actor.UserID, false).
			Return([]*queries.AppointmentView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments", nil, bearer)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("error: 400 on a non-boolean flag", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments?upcoming=soon", nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "upcoming")
	})
}

func (s *AppointmentHandlerTestSuite) TestListByUser() {
	other := uuid.New()

	s.Run("error: 403 for another customer's list", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.actor, other, false).
			Return(nil, queries.ErrAppointmentAccess).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/"+other.String()+"/appointments", nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "access denied")
	})

	s.Run("error: 404 for an unknown user", func() {
		s.actor.Role = user.RoleStaff
		defer func() { s.actor.Role = user.RoleCustomer }()

		s.mockQueries.EXPECT().ListByUser(gomock.Any(), gomock.Any(), other, false).
			Return(nil, errs.Wrapf(user.ErrNotFound, "user %s", other)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/"+other.String()+"/appointments", nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "user not found")
	})

	s.Run("staff can list any user", func() {
		s.actor.Role = user.RoleStaff
		defer func() { s.actor.Role = user.RoleCustomer }()

		view := builder.NewAppointmentBuilder().ForUser(other).BuildView()
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), gomock.Any(), other, true).
			Return([]*queries.AppointmentView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/"+other.String()+"/appointments?upcoming=1", nil, bearer)

		var body []resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(other, body[0].UserID)
	})
}

func (s *AppointmentHandlerTestSuite) TestRange() {
	start := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)
	query := url.Values{}
	query.Set("start", start.Format(time.RFC3339))
	query.Set("end", end.Format(time.RFC3339))

	s.Run("status filter is parsed from the upper-case form", func() {
		q := url.Values{}
		for k, v := range query {
			q[k] = v
		}
		q.Set("status", "CONFIRMED")
		confirmed := appointment.StatusConfirmed

		s.mockQueries.EXPECT().ListByTimeRange(gomock.Any(), s.actor, gomock.Any()).
			DoAndReturn(func(_ any, _ shared.Actor, f queries.TimeRangeFilter) ([]*queries.AppointmentView, error) {
				s.True(start.Equal(f.Start))
				s.True(end.Equal(f.End))
				s.Equal(&confirmed, f.Status)
				return nil, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments/range?"+q.Encode(), nil, bearer)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 on unknown status", func() {
		q := url.Values{}
		for k, v := range query {
			q[k] = v
		}
		q.Set("status", "LOST")

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments/range?"+q.Encode(), nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid appointment status")
	})

	s.Run("error: 400 when end is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments/range?start="+url.QueryEscape(start.Format(time.RFC3339)), nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "RFC3339")
	})

	s.Run("error: 400 on inverted range", func() {
		s.mockQueries.EXPECT().ListByTimeRange(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrInvalidTimeRange).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments/range?"+query.Encode(), nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "range start must be before range end")
	})
}

// ================================================================================
// TestUpdate / TestUpdateStatus / TestCancel
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestUpdate() {
	view := builder.NewAppointmentBuilder().ForUser(s.actor.UserID).BuildView()
	path := "/appointments/" + view.ID.String()

	s.Run("absent fields stay nil", func() {
		notes := "bring photos"
		s.mockCommands.EXPECT().Update(gomock.Any(), s.actor, view.ID, commands.UpdateAppointmentRequest{Notes: &notes}).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, path, map[string]any{"notes": notes}, bearer)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 when moving a terminal appointment", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, appointment.ErrTerminalSchedule).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, path, map[string]any{"startTime": time.Now().UTC()}, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "cannot be moved")
	})
}

func (s *AppointmentHandlerTestSuite) TestUpdateStatus() {
	view := builder.NewAppointmentBuilder().ForUser(s.actor.UserID).WithStatus(appointment.StatusCompleted).BuildView()
	path := "/appointments/" + view.ID.String() + "/status"

	s.Run("success", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), s.actor, view.ID, "COMPLETED").Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, path, reqdto.UpdateStatusRequest{Status: "COMPLETED"}, bearer)

		var body resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("COMPLETED", body.Status)
	})

	s.Run("error: 403 when a customer completes", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrStatusChangeForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, path, reqdto.UpdateStatusRequest{Status: "COMPLETED"}, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "only cancel")
	})

	s.Run("error: 400 when status is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, path, map[string]any{}, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *AppointmentHandlerTestSuite) TestCancel() {
	view := builder.NewAppointmentBuilder().ForUser(s.actor.UserID).WithStatus(appointment.StatusCancelled).BuildView()

	s.Run("success", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.actor, view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/appointments/"+view.ID.String()+"/cancel", nil, bearer)

		var body resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("CANCELLED", body.Status)
	})

	s.Run("error: 404", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Wrapf(appointment.ErrNotFound, "appointment %s", view.ID)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/appointments/"+view.ID.String()+"/cancel", nil, bearer)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}
