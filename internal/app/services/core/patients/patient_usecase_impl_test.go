package patients

import (
	"context"
	"errors"
	"patient-viewer-service/internal/pkg/constvars"
	"patient-viewer-service/internal/pkg/dto/requests"
	"patient-viewer-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPatientUsecase_ListPatients(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns Requested Page", func(t *testing.T) {
		client := new(MockPatientFhirClient)
		client.On("ListPatients", mock.Anything, 30).Return(newDirectory(25), nil).Once()

		usecase := NewPatientUsecase(client, zap.NewNop())
		view, err := usecase.ListPatients(ctx, &requests.PatientList{RetrieveCount: 30, Page: 2})

		require.NoError(t, err)
		assert.Equal(t, 2, view.Page)
		assert.Equal(t, 3, view.TotalPages)
		require.Len(t, view.Rows, 10)
		assert.Equal(t, "p-10", view.Rows[0].ID)
	})

	t.Run("Fetch Failure Becomes Bad Gateway", func(t *testing.T) {
		client := new(MockPatientFhirClient)
		client.On("ListPatients", mock.Anything, 50).
			Return(nil, exceptions.NewHTTPStatusError(500, constvars.ResourcePatient, nil)).Once()

		usecase := NewPatientUsecase(client, zap.NewNop())
		view, err := usecase.ListPatients(ctx, &requests.PatientList{RetrieveCount: 50, Page: 1})

		assert.Nil(t, view)
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusBadGateway, customErr.StatusCode)
		assert.Equal(t, "Server error. Please try again later.", customErr.ClientMessage)
	})
}

func TestPatientUsecase_FindPatientByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Not Found Stays 404", func(t *testing.T) {
		client := new(MockPatientFhirClient)
		client.On("FindPatientByID", mock.Anything, "missing").
			Return(nil, exceptions.NewHTTPStatusError(404, constvars.ResourcePatient, nil)).Once()

		usecase := NewPatientUsecase(client, zap.NewNop())
		view, err := usecase.FindPatientByID(ctx, "missing")

		assert.Nil(t, view)
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		assert.Equal(t, "Resource not found.", customErr.ClientMessage)
	})

	t.Run("Returns Record", func(t *testing.T) {
		patient := newPatient("42", "Ada", "Byron", "female")
		client := new(MockPatientFhirClient)
		client.On("FindPatientByID", mock.Anything, "42").Return(&patient, nil).Once()

		usecase := NewPatientUsecase(client, zap.NewNop())
		view, err := usecase.FindPatientByID(ctx, "42")

		require.NoError(t, err)
		require.NotNil(t, view.Patient)
		assert.Equal(t, "Ada Byron", view.Patient.Name)
	})
}
