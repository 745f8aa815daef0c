package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"toolshare/internal/domain/user"
	"toolshare/internal/handler/api"
	"toolshare/internal/handler/middleware"
	"toolshare/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	User        *api.UserHandler
	Tool        *api.ToolHandler
	Reservation *api.ReservationHandler
	Review      *api.ReviewHandler
	Admin       *api.AdminHandler
	Report      *api.ReportHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		addRoutes(auth, []route{
			{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
			{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: []gin.HandlerFunc{requireAuth}},
		})

		users := apiGroup.Group("/users")
		users.Use(requireAuth)
		addRoutes(users, []route{
			{Method: http.MethodPut, Path: "/me", Handler: h.User.UpdateProfile},
			{Method: http.MethodPut, Path: "/me/password", Handler: h.User.ChangePassword},
			{Method: http.MethodGet, Path: "/me/stats", Handler: h.User.Stats},
		})

		tools := apiGroup.Group("/tools")
		addRoutes(tools, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Tool.List},
			{Method: http.MethodGet, Path: "/search", Handler: h.Tool.Search},
			{Method: http.MethodGet, Path: "/my", Handler: h.Tool.Mine, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Tool.Get},
			{Method: http.MethodGet, Path: "/:id/reviews", Handler: h.Tool.Reviews},
			{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Tool.Availability},
			{Method: http.MethodPost, Path: "/:id/availability/check", Handler: h.Tool.CheckAvailability, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodPost, Path: "", Handler: h.Tool.Create, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Tool.Update, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Tool.Delete, Mw: []gin.HandlerFunc{requireAuth}},
		})

		reservations := apiGroup.Group("/reservations")
		addRoutes(reservations, []route{
			{Method: http.MethodGet, Path: "/price", Handler: h.Reservation.Price},
			{Method: http.MethodPost, Path: "", Handler: h.Reservation.CreateReservation, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodGet, Path: "", Handler: h.Reservation.GetUserReservations, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.GetReservation, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodPut, Path: "/:id/status", Handler: h.Reservation.UpdateStatus, Mw: []gin.HandlerFunc{requireAuth}},
		})

		reviews := apiGroup.Group("/reviews")
		reviews.Use(requireAuth)
		addRoutes(reviews, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Review.Create},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(requireAuth, authMiddleware.RequireRole(user.RoleAdmin))
		addRoutes(admin, []route{
			{Method: http.MethodGet, Path: "/users", Handler: h.Admin.ListUsers},
			{Method: http.MethodGet, Path: "/tools", Handler: h.Admin.ListTools},
			{Method: http.MethodDelete, Path: "/users/:id", Handler: h.Admin.DeleteUser},
			{Method: http.MethodGet, Path: "/stats", Handler: h.Admin.Stats},
			{Method: http.MethodGet, Path: "/activity", Handler: h.Admin.Activity},
		})

		reports := apiGroup.Group("/reports")
		reports.Use(requireAuth)
		addRoutes(reports, []route{
			{Method: http.MethodGet, Path: "/activity", Handler: h.Report.Activity},
			{Method: http.MethodGet, Path: "/stats", Handler: h.Report.TopOwners},
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
