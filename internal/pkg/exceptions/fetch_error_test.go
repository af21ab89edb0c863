package exceptions

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribeError(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected string
	}{
		{"not found", NewHTTPStatusError(404, "Patient", nil), "Resource not found."},
		{"internal server error", NewHTTPStatusError(500, "Patient", nil), "Server error. Please try again later."},
		{"bad gateway", NewHTTPStatusError(503, "Patient", nil), "Server error. Please try again later."},
		{"teapot", NewHTTPStatusError(418, "Patient", nil), "Request failed (418)."},
		{"unauthorized", NewHTTPStatusError(401, "Patient", nil), "Request failed (401)."},
		{"no response", NewTransportError(context.DeadlineExceeded, "Patient"), "Network error. Please check your connection."},
		{"plain error", errors.New("boom"), "boom"},
		{"unknown fetch error", NewUnknownError(errors.New("unexpected end of JSON input"), "Patient"), "unexpected end of JSON input"},
		{"unknown fetch error without cause", NewUnknownError(nil, "Patient"), "An unexpected error occurred."},
		{"wrapped status error", fmt.Errorf("loading: %w", NewHTTPStatusError(404, "Patient", nil)), "Resource not found."},
		{"nil", nil, "An unexpected error occurred."},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, DescribeError(tc.err))
		})
	}
}

func TestDescribeErrorIsPure(t *testing.T) {
	err := NewHTTPStatusError(418, "Patient", nil)
	first := DescribeError(err)
	second := DescribeError(err)

	assert.Equal(t, first, second)
	assert.Equal(t, FetchErrorHTTPStatus, err.Kind)
	assert.Equal(t, 418, err.StatusCode)
}

func TestFetchErrorUnwrap(t *testing.T) {
	err := NewTransportError(context.Canceled, "Patient")

	assert.True(t, errors.Is(err, context.Canceled))
	assert.True(t, IsFetchErrorKind(err, FetchErrorTransport))
	assert.False(t, IsFetchErrorKind(err, FetchErrorHTTPStatus))
	assert.False(t, IsFetchErrorKind(errors.New("boom"), FetchErrorUnknown))
}

func TestErrFetchFHIRResourceStatusMapping(t *testing.T) {
	notFound := ErrFetchFHIRResource(NewHTTPStatusError(404, "Patient", nil), "Patient")
	assert.Equal(t, 404, notFound.StatusCode)
	assert.Equal(t, "Resource not found.", notFound.ClientMessage)

	serverErr := ErrFetchFHIRResource(NewHTTPStatusError(500, "Patient", nil), "Patient")
	assert.Equal(t, 502, serverErr.StatusCode)
	assert.Equal(t, "Server error. Please try again later.", serverErr.ClientMessage)

	network := ErrFetchFHIRResource(NewTransportError(errors.New("dial tcp: refused"), "Patient"), "Patient")
	assert.Equal(t, 502, network.StatusCode)
	assert.Equal(t, "Network error. Please check your connection.", network.ClientMessage)
}
