package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/MAGNO9/SchoolTrack/internal/domain/user"
	"github.com/MAGNO9/SchoolTrack/internal/handler/api"
	"github.com/MAGNO9/SchoolTrack/internal/handler/middleware"
	"github.com/MAGNO9/SchoolTrack/internal/pkg/config"
	"github.com/MAGNO9/SchoolTrack/internal/stream"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	locationHandler *api.LocationHandler,
	checkinHandler *api.CheckinHandler,
	notificationHandler *api.NotificationHandler,
	gate *stream.Gate,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, locationHandler, checkinHandler, notificationHandler, gate, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	locationHandler *api.LocationHandler,
	checkinHandler *api.CheckinHandler,
	notificationHandler *api.NotificationHandler,
	gate *stream.Gate,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Streaming endpoints authenticate on the handshake inside the gate.
	ws := engine.Group("/ws")
	{
		addRoutes(ws, []route{
			{Method: http.MethodGet, Path: "/driver", Handler: gate.ServeDriver},
			{Method: http.MethodGet, Path: "/observe", Handler: gate.ServeObserver},
		})
	}

	apiGroup := engine.Group("/api")
	{
		locations := apiGroup.Group("/locations")
		locations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(locations, []route{
				{Method: http.MethodGet, Path: "/current", Handler: locationHandler.GetCurrent},
				{Method: http.MethodGet, Path: "/history", Handler: locationHandler.GetHistory},
				{Method: http.MethodGet, Path: "/eta", Handler: locationHandler.GetETA},
				{Method: http.MethodGet, Path: "/route/:routeId", Handler: locationHandler.GetRouteVehicles},
				{Method: http.MethodGet, Path: "/area", Handler: locationHandler.GetInArea},
			})
		}

		checkin := apiGroup.Group("/checkin")
		checkin.Use(authMiddleware.RequireAuth())
		{
			addRoutes(checkin, []route{
				{
					Method: http.MethodPost, Path: "/scan", Handler: checkinHandler.Scan,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleDriver)},
				},
				{Method: http.MethodGet, Path: "/vehicle/:vehicleId/students", Handler: checkinHandler.GetStudentsOnBoard},
			})
		}

		notifications := apiGroup.Group("/notifications")
		notifications.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleAdmin))
		{
			addRoutes(notifications, []route{
				{Method: http.MethodPost, Path: "/delay", Handler: notificationHandler.AnnounceDelay},
				{Method: http.MethodPost, Path: "/emergency", Handler: notificationHandler.AnnounceEmergency},
				{Method: http.MethodPost, Path: "/route-change", Handler: notificationHandler.AnnounceRouteChange},
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
