package utils

import (
	"context"
	"net/http"
	"patient-viewer-service/internal/pkg/constvars"
	"patient-viewer-service/internal/pkg/dto/requests"
	"strconv"
	"strings"
)

// BuildPatientListRequest reads the list query. Absent or non-numeric numbers
// are left at zero so callers can tell "not given" from a bad value.
func BuildPatientListRequest(r *http.Request) *requests.PatientList {
	query := r.URL.Query()
	request := &requests.PatientList{
		SearchTerm:    query.Get(constvars.QueryParamSearchTerm),
		HasSearchTerm: query.Has(constvars.QueryParamSearchTerm),
	}

	if raw := strings.TrimSpace(query.Get(constvars.QueryParamRetrieveCount)); raw != "" {
		request.HasRetrieveCount = true
		request.RetrieveCount, _ = strconv.Atoi(raw)
	}
	if raw := strings.TrimSpace(query.Get(constvars.QueryParamPage)); raw != "" {
		request.HasPage = true
		request.Page, _ = strconv.Atoi(raw)
	}
	return request
}

func RequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}
