package routers

import (
	"patient-viewer-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachPatientViewRoutes(router chi.Router, patientViewController *controllers.PatientViewController) {
	router.Get("/", patientViewController.List)
	router.Post("/refresh", patientViewController.Refresh)
	router.Get("/patients/{patient_id}", patientViewController.Detail)
	router.Post("/patients/{patient_id}/dismiss", patientViewController.Dismiss)
}
