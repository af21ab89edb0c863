package middlewares

import (
	"patient-viewer-service/internal/app/config"
	"patient-viewer-service/internal/app/services/shared/viewstate"
	"patient-viewer-service/internal/pkg/metrics"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	SessionStore   *viewstate.Store
	Metrics        *metrics.Metrics
}

func NewMiddlewares(logger *zap.Logger, internalConfig *config.InternalConfig, sessionStore *viewstate.Store, m *metrics.Metrics) *Middlewares {
	return &Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
		SessionStore:   sessionStore,
		Metrics:        m,
	}
}
