package components

import (
	"dealswap/internal/handler"
	"dealswap/internal/handler/api"
	"dealswap/internal/handler/middleware"
	"dealswap/internal/pkg/config"
	"dealswap/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewDealHandler,
		api.NewTradeHandler,
		middleware.NewAuthMiddleware,
		func(cfg config.Config) *middleware.RateLimiter {
			return middleware.NewRateLimiter(cfg.RateLimit)
		},
	),
	fx.Invoke(registerRoutes),
)

type routeDeps struct {
	fx.In

	Engine    *gin.Engine
	Config    config.Config
	Auth      *api.AuthHandler
	Deal      *api.DealHandler
	Trade     *api.TradeHandler
	AuthMw    *middleware.AuthMiddleware
	RateLimit *middleware.RateLimiter
	Logger    *middleware.Logger
	Metrics   *metrics.Registry
}

func registerRoutes(d routeDeps) {
	handler.NewRouter(d.Engine, d.Config,
		handler.Handlers{Auth: d.Auth, Deal: d.Deal, Trade: d.Trade},
		handler.Middlewares{Auth: d.AuthMw, RateLimit: d.RateLimit, Logger: d.Logger, Metrics: d.Metrics},
	)
}
