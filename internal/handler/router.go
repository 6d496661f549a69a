package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"registrar/internal/domain/actor"
	"registrar/internal/handler/api"
	"registrar/internal/handler/middleware"
	"registrar/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Cart         *api.CartHandler
	Registration *api.RegistrationHandler
	Offering     *api.OfferingHandler
	Override     *api.OverrideHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		cartGroup := apiGroup.Group("/cart")
		cartGroup.Use(authMiddleware.RequireRole(actor.RoleStudent))
		{
			addRoutes(cartGroup, []route{
				{Method: http.MethodGet, Path: "", Handler: handlers.Cart.GetCart},
				{Method: http.MethodDelete, Path: "", Handler: handlers.Cart.ClearCart},
				{Method: http.MethodPost, Path: "/items", Handler: handlers.Cart.AddItem},
				{Method: http.MethodDelete, Path: "/items/:offeringId", Handler: handlers.Cart.RemoveItem},
				{Method: http.MethodPost, Path: "/validate", Handler: handlers.Cart.ValidateCart},
			})
		}

		registrations := apiGroup.Group("/registrations")
		{
			student := registrations.Group("")
			student.Use(authMiddleware.RequireRole(actor.RoleStudent))
			addRoutes(student, []route{
				{Method: http.MethodPost, Path: "", Handler: handlers.Registration.Submit},
				{Method: http.MethodGet, Path: "", Handler: handlers.Registration.ListRegistrations},
				{Method: http.MethodGet, Path: "/:id", Handler: handlers.Registration.GetRegistration},
				{Method: http.MethodDelete, Path: "/:id", Handler: handlers.Registration.Withdraw},
				{Method: http.MethodPost, Path: "/credit-check", Handler: handlers.Registration.CheckCreditLoad},
			})
		}

		offerings := apiGroup.Group("/offerings")
		{
			addRoutes(offerings, []route{
				{Method: http.MethodGet, Path: "/:id/seats", Handler: handlers.Offering.GetSeats},
			})

			registrarOnly := offerings.Group("")
			registrarOnly.Use(authMiddleware.RequireRole(actor.RoleRegistrar))
			addRoutes(registrarOnly, []route{
				{Method: http.MethodPatch, Path: "/:id/capacity", Handler: handlers.Offering.ResizeOffering},
				{Method: http.MethodPost, Path: "/:id/promote", Handler: handlers.Offering.PromoteFromWaitlist},
			})
		}

		exceptions := apiGroup.Group("/exceptions")
		{
			student := exceptions.Group("")
			student.Use(authMiddleware.RequireRole(actor.RoleStudent))
			addRoutes(student, []route{
				{Method: http.MethodPost, Path: "", Handler: handlers.Override.RequestOverride},
				{Method: http.MethodGet, Path: "", Handler: handlers.Override.ListOverrides},
			})

			instructor := exceptions.Group("")
			instructor.Use(authMiddleware.RequireRole(actor.RoleInstructor))
			addRoutes(instructor, []route{
				{Method: http.MethodPost, Path: "/:id/review", Handler: handlers.Override.ReviewOverride},
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
