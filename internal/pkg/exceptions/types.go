package exceptions

import (
	"errors"
	"fmt"
	"patient-viewer-service/internal/pkg/constvars"
)

var (
	ErrURLParamIDValidation = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevURLParamIDValidationFailed, paramName))
	}
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrMissingViewerSession = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevViewerSessionMissing)
	}
	ErrRenderTemplate = func(err error, templateName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevTemplateRender, templateName))
	}

	// ErrFetchFHIRResource converts a fetch failure into an API error. A 404 from
	// the source stays a 404; every other failure is reported as a bad gateway.
	ErrFetchFHIRResource = func(err error, resource string) *CustomError {
		statusCode := constvars.StatusBadGateway
		var fetchErr *FetchError
		if errors.As(err, &fetchErr) && fetchErr.Kind == FetchErrorHTTPStatus && fetchErr.StatusCode == constvars.StatusNotFound {
			statusCode = constvars.StatusNotFound
		}
		return BuildNewCustomError(err, statusCode, DescribeError(err), fmt.Sprintf(constvars.ErrDevFhirFetchFailed, resource))
	}

	ErrTooManyRequests = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusTooManyRequests, constvars.ErrClientTooManyRequests, constvars.ErrDevTooManyRequests)
	}

	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevServerProcess)
	}
)
