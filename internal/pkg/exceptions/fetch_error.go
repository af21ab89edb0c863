package exceptions

import (
	"errors"
	"fmt"
	"patient-viewer-service/internal/pkg/constvars"
)

type FetchErrorKind int

const (
	// FetchErrorUnknown covers everything that is neither a transport failure
	// nor a non-2xx answer, malformed responses included.
	FetchErrorUnknown FetchErrorKind = iota
	// FetchErrorTransport means the request was sent but no response came back.
	FetchErrorTransport
	// FetchErrorHTTPStatus means a response arrived with a status outside 2xx.
	FetchErrorHTTPStatus
)

func (k FetchErrorKind) String() string {
	switch k {
	case FetchErrorTransport:
		return "transport"
	case FetchErrorHTTPStatus:
		return "http_status"
	default:
		return "unknown"
	}
}

// FetchError is the only error type returned by the FHIR fetch client.
type FetchError struct {
	Kind       FetchErrorKind
	StatusCode int
	Resource   string
	Err        error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case FetchErrorHTTPStatus:
		return fmt.Sprintf(constvars.ErrDevFhirUnexpectedStatus, e.Resource, e.StatusCode)
	case FetchErrorTransport:
		return fmt.Sprintf("%s: %v", fmt.Sprintf(constvars.ErrDevFhirFetchFailed, e.Resource), e.Err)
	default:
		if e.Err != nil {
			return e.Err.Error()
		}
		return fmt.Sprintf(constvars.ErrDevFhirFetchFailed, e.Resource)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func NewTransportError(err error, resource string) *FetchError {
	return &FetchError{Kind: FetchErrorTransport, Resource: resource, Err: err}
}

func NewHTTPStatusError(statusCode int, resource string, cause error) *FetchError {
	return &FetchError{Kind: FetchErrorHTTPStatus, StatusCode: statusCode, Resource: resource, Err: cause}
}

func NewUnknownError(err error, resource string) *FetchError {
	return &FetchError{Kind: FetchErrorUnknown, Resource: resource, Err: err}
}

// DescribeError maps any error to the sentence shown to a viewer. It has no
// side effects and never returns an empty string for a non-nil error with a message.
func DescribeError(err error) string {
	if err == nil {
		return constvars.ErrClientUnexpectedError
	}

	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		switch fetchErr.Kind {
		case FetchErrorHTTPStatus:
			return describeStatus(fetchErr.StatusCode)
		case FetchErrorTransport:
			return constvars.ErrClientNetworkError
		default:
			if fetchErr.Err != nil {
				return fetchErr.Err.Error()
			}
			return constvars.ErrClientUnexpectedError
		}
	}

	if message := err.Error(); message != "" {
		return message
	}
	return constvars.ErrClientUnexpectedError
}

func describeStatus(statusCode int) string {
	switch {
	case statusCode == constvars.StatusNotFound:
		return constvars.ErrClientResourceNotFound
	case statusCode >= constvars.StatusInternalServerError:
		return constvars.ErrClientServerError
	default:
		return fmt.Sprintf(constvars.ErrClientRequestFailed, statusCode)
	}
}

// IsFetchErrorKind reports whether err carries a FetchError of the given kind.
func IsFetchErrorKind(err error, kind FetchErrorKind) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr) && fetchErr.Kind == kind
}
