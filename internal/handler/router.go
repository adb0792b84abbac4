package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"dealswap/internal/handler/api"
	"dealswap/internal/handler/middleware"
	"dealswap/internal/pkg/config"
	"dealswap/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth  *api.AuthHandler
	Deal  *api.DealHandler
	Trade *api.TradeHandler
}

type Middlewares struct {
	Auth      *middleware.AuthMiddleware
	RateLimit *middleware.RateLimiter
	Logger    *middleware.Logger
	Metrics   *metrics.Registry
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, mw Middlewares) {
	setupMiddleware(engine, cfg, mw)
	setupRoutes(engine, cfg, h, mw)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, mw Middlewares) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(mw.Logger.LoggingMiddleware())
	if cfg.Metrics.Enabled {
		engine.Use(middleware.Metrics(mw.Metrics))
	}
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, mw Middlewares) {
	engine.GET("/health", healthCheck)

	if cfg.Metrics.Enabled {
		engine.GET(cfg.Metrics.Path, gin.WrapH(mw.Metrics.Handler()))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	limited := []gin.HandlerFunc{mw.RateLimit.Middleware()}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/signup", Handler: h.Auth.Signup, Mw: limited},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: limited},
			})

			authRequired := auth.Group("")
			authRequired.Use(mw.Auth.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		deals := apiGroup.Group("/deals")
		deals.Use(mw.Auth.RequireAuth())
		{
			addRoutes(deals, []route{
				{Method: http.MethodPost, Path: "/daily", Handler: h.Deal.IssueDailyDeal},
				{Method: http.MethodGet, Path: "/candidates", Handler: h.Deal.Candidates},
			})
		}

		items := apiGroup.Group("/items")
		items.Use(mw.Auth.RequireAuth())
		{
			addRoutes(items, []route{
				{Method: http.MethodGet, Path: "/mine", Handler: h.Deal.Mine},
				{Method: http.MethodPost, Path: "/:id/claim", Handler: h.Deal.Claim, Mw: limited},
			})
		}

		trades := apiGroup.Group("/trades")
		trades.Use(mw.Auth.RequireAuth())
		{
			addRoutes(trades, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Trade.Propose, Mw: limited},
				{Method: http.MethodGet, Path: "", Handler: h.Trade.List},
				{Method: http.MethodGet, Path: "/budget", Handler: h.Trade.Budget},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Trade.Get},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: h.Trade.Confirm, Mw: limited},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Trade.Cancel, Mw: limited},
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
