package utils

import (
	"context"
	"net/http/httptest"
	"patient-viewer-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPatientListRequest(t *testing.T) {
	t.Run("All Parameters", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/?q=smith&count=20&page=3", nil)
		request := BuildPatientListRequest(req)

		assert.Equal(t, "smith", request.SearchTerm)
		assert.True(t, request.HasSearchTerm)
		assert.Equal(t, 20, request.RetrieveCount)
		assert.True(t, request.HasRetrieveCount)
		assert.Equal(t, 3, request.Page)
		assert.True(t, request.HasPage)
	})

	t.Run("Nothing Given", func(t *testing.T) {
		request := BuildPatientListRequest(httptest.NewRequest("GET", "/", nil))

		assert.False(t, request.HasSearchTerm)
		assert.False(t, request.HasRetrieveCount)
		assert.False(t, request.HasPage)
	})

	t.Run("Empty Search Term Is Still Given", func(t *testing.T) {
		request := BuildPatientListRequest(httptest.NewRequest("GET", "/?q=", nil))

		assert.True(t, request.HasSearchTerm)
		assert.Equal(t, "", request.SearchTerm)
	})

	t.Run("Non Numeric Values", func(t *testing.T) {
		request := BuildPatientListRequest(httptest.NewRequest("GET", "/?count=abc&page=x", nil))

		assert.True(t, request.HasRetrieveCount)
		assert.Equal(t, 0, request.RetrieveCount)
		assert.True(t, request.HasPage)
		assert.Equal(t, 0, request.Page)
	})
}

func TestRequestIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "abc")
	assert.Equal(t, "abc", RequestIDFromContext(ctx))
	assert.Equal(t, "", RequestIDFromContext(context.Background()))
}

func TestGenerateRequestID(t *testing.T) {
	first := GenerateRequestID()
	second := GenerateRequestID()

	assert.Contains(t, first, constvars.REQUEST_ID_PREFIX)
	assert.NotEqual(t, first, second)
}
