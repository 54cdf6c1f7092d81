package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"campus-reservation/internal/handler/api"
	"campus-reservation/internal/handler/dto/request"
	"campus-reservation/internal/handler/middleware"
	"campus-reservation/internal/pkg/config"
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
	authHandler *api.AuthHandler,
	reservationHandler *api.ReservationHandler,
	statusHandler *api.StatusHandler,
	facilityHandler *api.FacilityHandler,
	authMiddleware *middleware.AuthMiddleware,
) error {
	if err := request.RegisterValidators(); err != nil {
		return err
	}
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, reservationHandler, statusHandler, facilityHandler, authMiddleware)
	return nil
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
	authHandler *api.AuthHandler,
	reservationHandler *api.ReservationHandler,
	statusHandler *api.StatusHandler,
	facilityHandler *api.FacilityHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "/seats", Handler: reservationHandler.CreateSeat},
				{Method: http.MethodPost, Path: "/meeting-rooms", Handler: reservationHandler.CreateMeetingRoom},
				{Method: http.MethodGet, Path: "/me", Handler: reservationHandler.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.Get},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: reservationHandler.Cancel},
			})
		}

		status := apiGroup.Group("/status")
		{
			addRoutes(status, []route{
				{Method: http.MethodGet, Path: "/meeting-rooms", Handler: statusHandler.MeetingRooms},
				{Method: http.MethodGet, Path: "/seats", Handler: statusHandler.Seats},
				{Method: http.MethodGet, Path: "/seats/slots", Handler: statusHandler.SeatSlots},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/seats", Handler: facilityHandler.ListSeats},
			{Method: http.MethodGet, Path: "/meeting-rooms", Handler: facilityHandler.ListMeetingRooms},
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
