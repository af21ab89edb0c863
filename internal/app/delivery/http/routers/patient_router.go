package routers

import (
	"patient-viewer-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, patientController *controllers.PatientController) {
	router.Get("/", patientController.FindAll)
	router.Get("/{patient_id}", patientController.FindByID)
}
