package utils

import (
	"errors"
	"net/http/httptest"
	"patient-viewer-service/internal/pkg/constvars"
	"patient-viewer-service/internal/pkg/exceptions"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBuildPaginationResponse(t *testing.T) {
	t.Run("Middle Page Links Both Ways", func(t *testing.T) {
		pagination := BuildPaginationResponse(25, 2, 3, 50, "", "/api/v1/patients")
		assert.Equal(t, constvars.PatientListPageSize, pagination.PageSize)
		assert.Equal(t, "/api/v1/patients?page=3&count=50", pagination.NextURL)
		assert.Equal(t, "/api/v1/patients?page=1&count=50", pagination.PrevURL)
	})

	t.Run("Single Page Has No Links", func(t *testing.T) {
		pagination := BuildPaginationResponse(3, 1, 1, 10, "smith", "/api/v1/patients")
		assert.Empty(t, pagination.NextURL)
		assert.Empty(t, pagination.PrevURL)
	})

	t.Run("Keeps Escaped Search Term", func(t *testing.T) {
		pagination := BuildPaginationResponse(30, 1, 3, 100, "van der", "/p")
		assert.Equal(t, "/p?page=2&count=100&q=van+der", pagination.NextURL)
	})
}

func TestBuildErrorResponse(t *testing.T) {
	t.Run("Custom Error Keeps Status And Message", func(t *testing.T) {
		rec := httptest.NewRecorder()
		fetchErr := exceptions.NewHTTPStatusError(404, constvars.ResourcePatient, nil)

		BuildErrorResponse(zap.NewNop(), rec, exceptions.ErrFetchFHIRResource(fetchErr, constvars.ResourcePatient))

		assert.Equal(t, 404, rec.Code)
		assert.Equal(t, constvars.MIMEApplicationJSON, rec.Header().Get(constvars.HeaderContentType))

		var body exceptions.CustomError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, "Resource not found.", body.ClientMessage)
	})

	t.Run("Plain Error Is Internal", func(t *testing.T) {
		rec := httptest.NewRecorder()

		BuildErrorResponse(zap.NewNop(), rec, errors.New("boom"))

		assert.Equal(t, 500, rec.Code)
		var body exceptions.CustomError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, constvars.ErrClientSomethingWrongWithApplication, body.ClientMessage)
		assert.Empty(t, body.DevMessage)
	})
}
