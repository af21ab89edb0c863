package config

import (
	"patient-viewer-service/internal/pkg/constvars"
	"patient-viewer-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                      utils.GetEnvString("APP_ENV", "development"),
			Port:                     utils.GetEnvString("APP_PORT", ":8080"),
			Version:                  utils.GetEnvString("APP_VERSION", "v1"),
			EndpointPrefix:           utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:              utils.GetEnvInt("APP_MAX_REQUESTS", 20),
			ShutdownTimeoutInSeconds: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds:  utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 15),
			SessionTTLInMinutes:      utils.GetEnvInt("APP_SESSION_TTL_IN_MINUTES", 30),
			NotificationAutoHideMs:   utils.GetEnvInt("APP_NOTIFICATION_AUTO_HIDE_MS", 6000),
			DefaultRetrieveCount:     utils.GetEnvInt("APP_DEFAULT_RETRIEVE_COUNT", constvars.PatientListDefaultRetrieve),
		},
		FHIR: AppFHIR{
			BaseUrl:                 utils.GetEnvString("FHIR_BASE_URL", constvars.DefaultFhirBaseUrl),
			RequestTimeoutInSeconds: utils.GetEnvInt("FHIR_REQUEST_TIMEOUT_IN_SECONDS", 10),
			MaxRequestsPerSecond:    utils.GetEnvFloat("FHIR_MAX_REQUESTS_PER_SECOND", 0),
		},
	}
}
