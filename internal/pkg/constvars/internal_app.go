package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_VIEWER_SESSION_KEY       ContextKey = "viewer_session"
)

const (
	REQUEST_ID_PREFIX = "PTVWR_"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&count=%d"
)

const (
	ViewerSessionCookieName = "pv_session"
)

const (
	// PatientListPageSize is the number of rows shown per screen, independent
	// of how many records were retrieved from the source.
	PatientListPageSize           = 10
	PatientListDefaultRetrieve    = 50
	PatientListPageButtonsShown   = 5
	PatientListPageWindowLeadSize = 2
)

var PatientListRetrieveOptions = []int{10, 20, 30, 50, 100}
