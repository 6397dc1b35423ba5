package service

import (
	"github.com/flexprice/rewardengine/internal/config"
	"github.com/flexprice/rewardengine/internal/logger"
	"github.com/flexprice/rewardengine/internal/sentry"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	Sentry *sentry.Service
}

func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	sentryService *sentry.Service,
) ServiceParams {
	return ServiceParams{
		Logger: logger,
		Config: config,
		Sentry: sentryService,
	}
}
