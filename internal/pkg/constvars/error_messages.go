package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s",
	"max":      "must be at most %s",
	"oneof":    "must be one of [%s]",
	"gte":      "must be greater than or equal to %s",
	"numeric":  "must be a number",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gte":   true,
}

// Messages shown to viewers of a failed fetch
const (
	ErrClientResourceNotFound              = "Resource not found."
	ErrClientServerError                   = "Server error. Please try again later."
	ErrClientRequestFailed                 = "Request failed (%d)."
	ErrClientNetworkError                  = "Network error. Please check your connection."
	ErrClientUnexpectedError               = "An unexpected error occurred."
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientTooManyRequests               = "too many requests, please slow down"
)

// Error messages for developers
const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevValidationFailed           = "validation failed"
	ErrDevURLParamIDValidationFailed = "parameter %s validation failed"
	ErrDevCreateHTTPRequest          = "failed to create HTTP request"
	ErrDevSendHTTPRequest            = "failed to send HTTP request"
	ErrDevReadResponseBody           = "failed to read FHIR %s response body"
	ErrDevFhirUnexpectedStatus       = "FHIR %s request returned status %d"
	ErrDevFhirDecodeResourceResponse = "failed to decode FHIR %s response"
	ErrDevFhirInvalidArgument        = "invalid argument for FHIR %s request: %s"
	ErrDevFhirFetchFailed            = "failed to fetch FHIR %s"
	ErrDevFhirUnexpectedResourceType = "FHIR %s response carried resourceType %q"
	ErrDevFhirRateLimiterWait        = "FHIR %s request was not admitted by the rate limiter"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevServerProcess              = "server failed to process the request"
	ErrDevTooManyRequests            = "client exceeded the request rate limit"
	ErrDevViewerSessionMissing       = "viewer session not found in request context"
	ErrDevTemplateRender             = "failed to render %s template"
)
