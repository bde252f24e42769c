package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"salon-booking/internal/domain/user"
	"salon-booking/internal/handler/api"
	"salon-booking/internal/handler/middleware"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Availability *api.AvailabilityHandler
	Appointment  *api.AppointmentHandler
	Service      *api.ServiceHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, collector *metrics.Collector) {
	setupMiddleware(engine, cfg, collector)
	setupRoutes(engine, h, authMiddleware, middleware.NewRateLimiter(cfg.RateLimit), collector)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, collector *metrics.Collector) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.MetricsMiddleware(collector))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.RateLimiter, collector *metrics.Collector) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(collector.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/availability", Handler: h.Availability.Check, Mw: []gin.HandlerFunc{limiter.Middleware()}},
		})

		services := apiGroup.Group("/services")
		{
			addRoutes(services, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Service.List, Mw: []gin.HandlerFunc{authMiddleware.OptionalAuth()}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Service.Get},
			})

			admin := services.Group("")
			admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Service.Create},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Service.Update},
			})
		}

		appointments := apiGroup.Group("/appointments")
		appointments.Use(authMiddleware.RequireAuth())
		{
			addRoutes(appointments, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Appointment.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Appointment.ListMine},
				{Method: http.MethodGet, Path: "/range", Handler: h.Appointment.Range, Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleStaff)}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Appointment.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Appointment.Update},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Appointment.UpdateStatus},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Appointment.Cancel},
			})
		}

		users := apiGroup.Group("/users")
		users.Use(authMiddleware.RequireAuth())
		addRoutes(users, []route{
			{Method: http.MethodGet, Path: "/:id/appointments", Handler: h.Appointment.ListByUser},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
