package constvars

const (
	MethodGet  = "GET"
	MethodPost = "POST"
)

const (
	MIMETextHTML            = "text/html"
	MIMEApplicationJSON     = "application/json"
	MIMEApplicationFHIRJSON = "application/fhir+json"

	MIMETextHTMLCharsetUTF8 = "text/html; charset=utf-8"
)

const (
	StatusOK                  = 200
	StatusSeeOther            = 303
	StatusBadRequest          = 400
	StatusNotFound            = 404
	StatusTeapot              = 418
	StatusTooManyRequests     = 429
	StatusInternalServerError = 500
	StatusBadGateway          = 502
	StatusGatewayTimeout      = 504
)

const (
	HeaderAccept      = "Accept"
	HeaderContentType = "Content-Type"
	HeaderLocation    = "Location"
	HeaderXRequestID  = "X-Request-ID"
)

const (
	URLParamPatientID = "patient_id"
)

const (
	QueryParamSearchTerm    = "q"
	QueryParamRetrieveCount = "count"
	QueryParamPage          = "page"
)
