package api

import (
	"net/http"
	"strconv"

	reqdto "salon-booking/internal/handler/dto/request"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/handler/httperr"
	"salon-booking/internal/handler/middleware"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"
	"salon-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errNoActor = errs.New("no authenticated actor on request")

type AppointmentHandler struct {
	cmds commands.AppointmentCommands
	q    queries.AppointmentQueries
}

func NewAppointmentHandler(cmds commands.AppointmentCommands, q queries.AppointmentQueries) *AppointmentHandler {
	return &AppointmentHandler{cmds: cmds, q: q}
}

// @Summary Book appointment
// @Description Book a service. Customers book for themselves, staff may pass userId. A rejected slot returns 400 with alternatives in detail.
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAppointmentRequest true "Create appointment request"
// @Success 201 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /appointments [post]
func (h *AppointmentHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), actor, req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/api/appointments/"+view.ID.String())
	c.JSON(http.StatusCreated, resdto.FromAppointmentView(view))
}

// @Summary Get appointment
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) Get(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

// @Summary List my appointments
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param upcoming query bool false "Only appointments that have not started yet"
// @Success 200 {array} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Router /appointments [get]
func (h *AppointmentHandler) ListMine(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	upcoming, ok := boolQuery(c, "upcoming")
	if !ok {
		return
	}
	views, err := h.q.ListByUser(c.Request.Context(), actor, actor.UserID, upcoming)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentViews(views))
}

// @Summary List a user's appointments
// @Description Customers may only list their own appointments.
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param upcoming query bool false "Only appointments that have not started yet"
// @Success 200 {array} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /users/{id}/appointments [get]
func (h *AppointmentHandler) ListByUser(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	userID, ok := pathID(c)
	if !ok {
		return
	}
	upcoming, ok := boolQuery(c, "upcoming")
	if !ok {
		return
	}
	views, err := h.q.ListByUser(c.Request.Context(), actor, userID, upcoming)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentViews(views))
}

// @Summary List appointments in a time range
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param start query string true "Range start (RFC3339)"
// @Param end query string true "Range end, exclusive (RFC3339)"
// @Param status query string false "Status filter"
// @Success 200 {array} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /appointments/range [get]
func (h *AppointmentHandler) Range(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var query reqdto.AppointmentRangeQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "start and end must be RFC3339 timestamps", nil)
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	views, err := h.q.ListByTimeRange(c.Request.Context(), actor, filter)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentViews(views))
}

// @Summary Update appointment
// @Description Change service, start time, notes or status. A new slot is re-validated excluding the appointment itself.
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param request body reqdto.UpdateAppointmentRequest true "Update appointment request"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /appointments/{id} [put]
func (h *AppointmentHandler) Update(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.Update(c.Request.Context(), actor, id, req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

// @Summary Change appointment status
// @Description Staff may set any status. Customers may only cancel their own appointments.
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param request body reqdto.UpdateStatusRequest true "New status"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /appointments/{id}/status [patch]
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.UpdateStatus(c.Request.Context(), actor, id, req.Status)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

// @Summary Cancel appointment
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /appointments/{id}/cancel [post]
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.cmds.Cancel(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

func requireActor(c *gin.Context) (shared.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoActor, "Unauthorized", nil)
	}
	return actor, ok
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func boolQuery(c *gin.Context, key string) (bool, bool) {
	raw := c.Query(key)
	if raw == "" {
		return false, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+key+" parameter", nil)
		return false, false
	}
	return v, true
}
