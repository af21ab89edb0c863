package constvars

const (
	ResourcePatient          = "Patient"
	ResourceBundle           = "Bundle"
	ResourceOperationOutcome = "OperationOutcome"
)

const (
	FhirQueryCount = "_count"

	FhirBundleLinkSelf     = "self"
	FhirBundleLinkNext     = "next"
	FhirBundleLinkPrevious = "previous"
)

// HAPI public R4 sandbox.
const DefaultFhirBaseUrl = "https://hapi.fhir.org/baseR4"
