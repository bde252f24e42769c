//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"salon-booking/internal/handler/api"
	reqdto "salon-booking/internal/handler/dto/request"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/usecase/availability"
	"salon-booking/internal/usecase/queries"
	"salon-booking/tests/common/httptest"
	"salon-booking/tests/common/testutil"
	availabilitymock "salon-booking/tests/mock/availability"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupAvailabilityRouter(t *testing.T) (*gin.Engine, *availabilitymock.MockChecker) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	checker := availabilitymock.NewMockChecker(ctrl)

	r := gin.New()
	r.POST("/availability", api.NewAvailabilityHandler(checker).Check)
	return r, checker
}

func TestAvailabilityHandler_Check(t *testing.T) {
	serviceID := uuid.New()
	start := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)
	reqBody := reqdto.CheckAvailabilityRequest{ServiceID: serviceID, StartTime: start}

	t.Run("available slot", func(t *testing.T) {
		router, checker := setupAvailabilityRouter(t)
		checker.EXPECT().Check(gomock.Any(), availability.Request{ServiceID: serviceID, Start: start}).
			Return(&availability.Verdict{Available: true, Message: "Time slot is available"}, nil).Times(1)

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/availability", reqBody, "")

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.True(t, body.Available)
		assert.Equal(t, "Time slot is available", body.Message)
		assert.Empty(t, body.AlternativeSlots)
	})

	t.Run("unavailable slot is still a 200 with alternatives", func(t *testing.T) {
		router, checker := setupAvailabilityRouter(t)
		paris, err := time.LoadLocation("Europe/Paris")
		if err != nil {
			t.Skip("tzdata not available")
		}
		alt := []time.Time{
			time.Date(2025, 6, 10, 17, 0, 0, 0, paris),
			time.Date(2025, 6, 11, 10, 0, 0, 0, paris),
		}
		checker.EXPECT().Check(gomock.Any(), gomock.Any()).
			Return(&availability.Verdict{Available: false, Message: "Requested time slot is not available", Alternatives: alt}, nil).Times(1)

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/availability", reqBody, "")

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.False(t, body.Available)
		want := []string{"2025-06-10T17:00:00+02:00", "2025-06-11T10:00:00+02:00"}
		assert.Empty(t, cmp.Diff(want, body.AlternativeSlots))
	})

	t.Run("unknown service is a 404", func(t *testing.T) {
		router, checker := setupAvailabilityRouter(t)
		checker.EXPECT().Check(gomock.Any(), gomock.Any()).Return(nil, queries.ErrServiceNotFound).Times(1)

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/availability", reqBody, "")
		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "service not found")
	})

	t.Run("validation errors", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing serviceId", mutate: testutil.Field("serviceId", nil)},
			{name: "missing startTime", mutate: testutil.Field("startTime", nil)},
			{name: "startTime without zone", mutate: testutil.Field("startTime", "2025-06-10T14:00:00")},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				router, _ := setupAvailabilityRouter(t)
				body := testutil.DtoMap(t, reqBody, tc.mutate)
				rec := httptest.PerformRequest(t, router, http.MethodPost, "/availability", body, "")
				httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})
}
