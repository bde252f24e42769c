package api

import (
	"net/http"

	reqdto "salon-booking/internal/handler/dto/request"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/handler/httperr"
	"salon-booking/internal/handler/middleware"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ServiceHandler struct {
	cmds commands.ServiceCommands
	q    queries.ServiceQueries
}

func NewServiceHandler(cmds commands.ServiceCommands, q queries.ServiceQueries) *ServiceHandler {
	return &ServiceHandler{cmds: cmds, q: q}
}

// @Summary List services
// @Description Active services. Staff may pass all=true to include inactive ones.
// @Tags services
// @Produce json
// @Param all query bool false "Include inactive services (staff only)"
// @Success 200 {array} resdto.ServiceResponse
// @Failure 400 {object} httperr.Response
// @Router /services [get]
func (h *ServiceHandler) List(c *gin.Context) {
	all, ok := boolQuery(c, "all")
	if !ok {
		return
	}
	// anonymous callers get the zero actor, which never sees inactive services
	actor, _ := middleware.GetActor(c)
	views, err := h.q.List(c.Request.Context(), actor, all)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceViews(views))
}

// @Summary Get service
// @Tags services
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} resdto.ServiceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /services/{id} [get]
func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceView(view))
}

// @Summary Create service
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateServiceRequest true "Create service request"
// @Success 201 {object} resdto.ServiceResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /services [post]
func (h *ServiceHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.Create(c.Request.Context(), actor, req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/api/services/"+view.ID.String())
	c.JSON(http.StatusCreated, resdto.FromServiceView(view))
}

// @Summary Update service
// @Description Partial update. Deactivating a service makes it unbookable.
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Param request body reqdto.UpdateServiceRequest true "Update service request"
// @Success 200 {object} resdto.ServiceResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /services/{id} [patch]
func (h *ServiceHandler) Update(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.Update(c.Request.Context(), actor, id, req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceView(view))
}
