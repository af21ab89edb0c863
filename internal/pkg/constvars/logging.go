package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingPatientIDKey      = "patient_id"
	LoggingPatientCountKey   = "patient_count"
	LoggingRetrieveCountKey  = "retrieve_count"
	LoggingSearchTermKey     = "search_term"
	LoggingPageKey           = "page"
	LoggingGenerationKey     = "generation"
	LoggingStatusCodeKey     = "status_code"
	LoggingBundleTotalKey    = "bundle_total"
	LoggingDiagnosticsKey    = "diagnostics"
	LoggingSessionIDKey      = "session_id"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingErrorTypeKey      = "error_type"
	LoggingResponseLengthKey = "response_length"
)
