package contracts

import (
	"context"
	"patient-viewer-service/internal/pkg/dto/requests"
	"patient-viewer-service/internal/pkg/dto/responses"
	"patient-viewer-service/internal/pkg/fhir_dto"
)

type PatientFhirClient interface {
	ListPatients(ctx context.Context, limit int) ([]fhir_dto.Patient, error)
	FindPatientByID(ctx context.Context, patientID string) (*fhir_dto.Patient, error)
}

// PatientUsecase serves the stateless JSON API. Each call mounts its own
// controller so nothing is shared between requests.
type PatientUsecase interface {
	ListPatients(ctx context.Context, request *requests.PatientList) (*responses.PatientListView, error)
	FindPatientByID(ctx context.Context, patientID string) (*responses.PatientDetailView, error)
}

type PatientListController interface {
	Sync(ctx context.Context, params requests.PatientListParams) responses.PatientListView
	SetPage(page int) responses.PatientListView
	NextPage() responses.PatientListView
	PrevPage() responses.PatientListView
	View() responses.PatientListView
	Err() error
	Close()
}

type PatientDetailController interface {
	Navigate(ctx context.Context, patientID string) responses.PatientDetailView
	Dismiss() responses.PatientDetailView
	View() responses.PatientDetailView
	Err() error
	Close()
}
