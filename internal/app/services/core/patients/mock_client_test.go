package patients

import (
	"context"
	"fmt"
	"patient-viewer-service/internal/pkg/fhir_dto"

	"github.com/stretchr/testify/mock"
)

type MockPatientFhirClient struct {
	mock.Mock
}

func (m *MockPatientFhirClient) ListPatients(ctx context.Context, limit int) ([]fhir_dto.Patient, error) {
	args := m.Called(ctx, limit)
	patients, _ := args.Get(0).([]fhir_dto.Patient)
	return patients, args.Error(1)
}

func (m *MockPatientFhirClient) FindPatientByID(ctx context.Context, patientID string) (*fhir_dto.Patient, error) {
	args := m.Called(ctx, patientID)
	patient, _ := args.Get(0).(*fhir_dto.Patient)
	return patient, args.Error(1)
}

func newPatient(id, given, family, gender string) fhir_dto.Patient {
	return fhir_dto.Patient{
		ResourceType: "Patient",
		ID:           id,
		Name:         []fhir_dto.HumanName{{Given: []string{given}, Family: family}},
		Gender:       gender,
	}
}

// newDirectory builds count patients named "Patient <i> Jones", with the
// positions in smiths renamed to Smith.
func newDirectory(count int, smiths ...int) []fhir_dto.Patient {
	patients := make([]fhir_dto.Patient, 0, count)
	for i := 0; i < count; i++ {
		patients = append(patients, newPatient(fmt.Sprintf("p-%d", i), fmt.Sprintf("Patient%d", i), "Jones", "female"))
	}
	for _, i := range smiths {
		patients[i].Name[0].Family = "Smith"
	}
	return patients
}
