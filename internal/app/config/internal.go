package config

type InternalConfig struct {
	App  App     `mapstructure:"app"`
	FHIR AppFHIR `mapstructure:"fhir"`
}

type App struct {
	Env                      string `mapstructure:"env"`
	Port                     string `mapstructure:"port"`
	Version                  string `mapstructure:"version"`
	EndpointPrefix           string `mapstructure:"endpoint_prefix"`
	MaxRequests              int    `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds int    `mapstructure:"shutdown_timeout_in_seconds"`
	RequestTimeoutInSeconds  int    `mapstructure:"request_timeout_in_seconds"`
	SessionTTLInMinutes      int    `mapstructure:"session_ttl_in_minutes"`
	// NotificationAutoHideMs is how long the detail error notification stays visible
	NotificationAutoHideMs int `mapstructure:"notification_auto_hide_ms"`
	// DefaultRetrieveCount is the retrieve count a new viewer session starts with
	DefaultRetrieveCount int `mapstructure:"default_retrieve_count"`
}

type AppFHIR struct {
	BaseUrl                 string `mapstructure:"base_url"`
	RequestTimeoutInSeconds int    `mapstructure:"request_timeout_in_seconds"`
	// MaxRequestsPerSecond throttles outbound FHIR calls, 0 disables throttling
	MaxRequestsPerSecond float64 `mapstructure:"max_requests_per_second"`
}
