package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	GetPatientsSuccessMessage = "get patients successfully"
	GetPatientSuccessMessage  = "get patient successfully"
	HealthCheckSuccessMessage = "service is healthy"
)

// Texts rendered by the patient views
const (
	ViewUnknownName          = "Unknown Name"
	ViewUnnamed              = "Unnamed"
	ViewUnknown              = "Unknown"
	ViewNotAvailable         = "N/A"
	ViewUnspecified          = "Unspecified"
	ViewUnableToLoadPatient  = "Unable to load patient data."
	ViewPatientNotFound      = "Patient not found."
	ViewNoPatientsFound      = "No patients found."
	ViewLoadingPatients      = "Loading patients..."
	ViewLoadingPatientDetail = "Loading details..."
)
