package controllers

import (
	"net/http"
	"patient-viewer-service/internal/app/config"
	"patient-viewer-service/internal/app/services/shared/viewstate"
	"patient-viewer-service/internal/pkg/constvars"
	"patient-viewer-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type HealthController struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	SessionStore   *viewstate.Store
}

type healthStatus struct {
	Version        string `json:"version"`
	Env            string `json:"env"`
	FhirBaseUrl    string `json:"fhir_base_url"`
	ActiveSessions int    `json:"active_sessions"`
}

func NewHealthController(logger *zap.Logger, internalConfig *config.InternalConfig, sessionStore *viewstate.Store) *HealthController {
	return &HealthController{
		Log:            logger,
		InternalConfig: internalConfig,
		SessionStore:   sessionStore,
	}
}

func (ctrl *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	status := healthStatus{
		Version:     ctrl.InternalConfig.App.Version,
		Env:         ctrl.InternalConfig.App.Env,
		FhirBaseUrl: ctrl.InternalConfig.FHIR.BaseUrl,
	}
	if ctrl.SessionStore != nil {
		status.ActiveSessions = ctrl.SessionStore.Count()
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthCheckSuccessMessage, status)
}
