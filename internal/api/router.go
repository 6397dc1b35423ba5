package api

import (
	v1 "github.com/flexprice/rewardengine/internal/api/v1"
	"github.com/flexprice/rewardengine/internal/config"
	ierr "github.com/flexprice/rewardengine/internal/errors"
	"github.com/flexprice/rewardengine/internal/logger"
	"github.com/flexprice/rewardengine/internal/rest/middleware"
	"github.com/flexprice/rewardengine/internal/sentry"
	"github.com/flexprice/rewardengine/internal/types"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Health *v1.HealthHandler
	Reward *v1.RewardHandler
}

func NewRouter(handlers Handlers, cfg *config.Configuration, logger *logger.Logger, sentryService *sentry.Service) *gin.Engine {
	if cfg.Deployment.Mode != types.ModeLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.SentryMiddleware(cfg),
		middleware.CORSMiddleware(cfg),
		middleware.RequestIDMiddleware,
		middleware.RequestLogger(logger),
		middleware.ErrorHandler(sentryService),
	)

	router.NoRoute(func(c *gin.Context) {
		c.Error(ierr.NewError("route not found").
			WithHint("The requested resource was not found").
			WithReportableDetails(map[string]any{
				"method": c.Request.Method,
				"path":   c.Request.URL.Path,
			}).
			Mark(ierr.ErrNotFound))
	})

	router.GET("/health", handlers.Health.Health)

	v1Group := router.Group("/v1")
	registerV1Routes(v1Group, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	carts := router.Group("/carts")
	{
		carts.POST("/rewards/apply", handlers.Reward.ApplyRewards)
	}
}
