package patients

import (
	"context"
	"patient-viewer-service/internal/app/contracts"
	"patient-viewer-service/internal/pkg/constvars"
	"patient-viewer-service/internal/pkg/dto/requests"
	"patient-viewer-service/internal/pkg/dto/responses"
	"patient-viewer-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientFhirClient contracts.PatientFhirClient
	Log               *zap.Logger
}

func NewPatientUsecase(patientFhirClient contracts.PatientFhirClient, logger *zap.Logger) contracts.PatientUsecase {
	return &patientUsecase{
		PatientFhirClient: patientFhirClient,
		Log:               logger,
	}
}

func (uc *patientUsecase) ListPatients(ctx context.Context, request *requests.PatientList) (*responses.PatientListView, error) {
	controller := NewListController(uc.PatientFhirClient, uc.Log, request.RetrieveCount)
	defer controller.Close()

	controller.Sync(ctx, ListParams{
		RetrieveCount: request.RetrieveCount,
		SearchTerm:    request.SearchTerm,
	})
	if err := controller.Err(); err != nil {
		return nil, exceptions.ErrFetchFHIRResource(err, constvars.ResourcePatient)
	}

	view := controller.SetPage(request.Page)
	return &view, nil
}

func (uc *patientUsecase) FindPatientByID(ctx context.Context, patientID string) (*responses.PatientDetailView, error) {
	controller := NewDetailController(uc.PatientFhirClient, uc.Log)
	defer controller.Close()

	view := controller.Navigate(ctx, patientID)
	if err := controller.Err(); err != nil {
		return nil, exceptions.ErrFetchFHIRResource(err, constvars.ResourcePatient)
	}
	return &view, nil
}
