package api

import (
	"net/http"

	reqdto "salon-booking/internal/handler/dto/request"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/handler/httperr"
	"salon-booking/internal/usecase/availability"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	checker availability.Checker
}

func NewAvailabilityHandler(checker availability.Checker) *AvailabilityHandler {
	return &AvailabilityHandler{checker: checker}
}

// @Summary Check availability
// @Description Check whether a service can be booked at a start time. Unavailable slots come with up to seven alternatives.
// @Tags availability
// @Accept json
// @Produce json
// @Param request body reqdto.CheckAvailabilityRequest true "Availability request"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /availability [post]
func (h *AvailabilityHandler) Check(c *gin.Context) {
	var req reqdto.CheckAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	verdict, err := h.checker.Check(c.Request.Context(), req.ToQuery())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVerdict(verdict))
}
