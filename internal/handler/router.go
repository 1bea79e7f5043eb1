package handler

import (
	"log/slog"
	"net/http"

	"salon-booking/internal/handler/api"
	"salon-booking/internal/handler/middleware"
	"salon-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	Account      *api.AccountHandler
	Service      *api.ServiceHandler
	Appointment  *api.AppointmentHandler
	Rating       *api.RatingHandler
	Notification *api.NotificationHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.RateLimiter) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, h, authMiddleware, limiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger))
	if cfg.Metrics.Enabled {
		engine.Use(middleware.MetricsMiddleware())
	}
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.RateLimiter) {
	engine.GET("/health", healthCheck)

	if cfg.Metrics.Enabled {
		engine.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	limited := []gin.HandlerFunc{limiter.Limit()}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		addRoutes(auth, []route{
			{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register, Mw: limited},
			{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: limited},
			{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
		})

		services := apiGroup.Group("/services")
		addRoutes(services, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Service.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Service.Get},
			{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Service.Availability},
		})

		authed := apiGroup.Group("")
		authed.Use(authMiddleware.RequireAuth())
		{
			addRoutes(authed.Group("/me"), []route{
				{Method: http.MethodGet, Path: "", Handler: h.Account.Me},
				{Method: http.MethodPatch, Path: "", Handler: h.Account.UpdateProfile},
				{Method: http.MethodDelete, Path: "", Handler: h.Account.Delete},
				{Method: http.MethodPut, Path: "/password", Handler: h.Account.ChangePassword},
				{Method: http.MethodPost, Path: "/deactivate", Handler: h.Account.Deactivate},
			})

			addRoutes(authed.Group("/appointments"), []route{
				{Method: http.MethodPost, Path: "", Handler: h.Appointment.Book, Mw: limited},
				{Method: http.MethodGet, Path: "/mine", Handler: h.Appointment.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Appointment.Get},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Appointment.Cancel},
				{Method: http.MethodPost, Path: "/:id/feedback", Handler: h.Appointment.SubmitFeedback},
			})

			addRoutes(authed.Group("/notifications"), []route{
				{Method: http.MethodGet, Path: "", Handler: h.Notification.List},
				{Method: http.MethodPost, Path: "/read-all", Handler: h.Notification.MarkAllRead},
				{Method: http.MethodPost, Path: "/:id/read", Handler: h.Notification.MarkRead},
			})

			staff := authed.Group("/staff")
			staff.Use(authMiddleware.RequireStaff())
			addRoutes(staff, []route{
				{Method: http.MethodGet, Path: "/appointments", Handler: h.Appointment.List},
				{Method: http.MethodPost, Path: "/appointments/:id/confirm", Handler: h.Appointment.Confirm},
				{Method: http.MethodPost, Path: "/appointments/:id/complete", Handler: h.Appointment.Complete},
				{Method: http.MethodGet, Path: "/ratings", Handler: h.Rating.ServiceRatings},
				{Method: http.MethodGet, Path: "/services/:id/feedback", Handler: h.Rating.ServiceFeedback},
			})

			admin := authed.Group("/admin")
			admin.Use(authMiddleware.RequireAdmin())
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/services", Handler: h.Service.Create},
				{Method: http.MethodPut, Path: "/services/:id", Handler: h.Service.Update},
				{Method: http.MethodDelete, Path: "/services/:id", Handler: h.Service.Delete},
				{Method: http.MethodPut, Path: "/users/:id/role", Handler: h.Account.ChangeRole},
			})
		}
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
