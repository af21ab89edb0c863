package patients

import (
	"patient-viewer-service/internal/pkg/constvars"
	"patient-viewer-service/internal/pkg/fhir_dto"
	"patient-viewer-service/internal/pkg/utils"
	"strings"
)

// PageSize is the number of rows per screen. It does not follow the retrieve count.
const PageSize = constvars.PatientListPageSize

// FilterPatients keeps the patients whose display name, id or gender contains
// term, ignoring case. A blank term returns patients as is.
func FilterPatients(patients []fhir_dto.Patient, term string) []fhir_dto.Patient {
	if strings.TrimSpace(term) == "" {
		return patients
	}

	needle := strings.ToLower(term)
	filtered := make([]fhir_dto.Patient, 0, len(patients))
	for i := range patients {
		if patientMatches(&patients[i], needle) {
			filtered = append(filtered, patients[i])
		}
	}
	return filtered
}

func patientMatches(patient *fhir_dto.Patient, needle string) bool {
	return strings.Contains(strings.ToLower(utils.DisplayName(patient)), needle) ||
		strings.Contains(strings.ToLower(patient.ID), needle) ||
		strings.Contains(strings.ToLower(patient.Gender), needle)
}

// TotalPages is never below 1, an empty list still has one page.
func TotalPages(count int) int {
	pages := (count + PageSize - 1) / PageSize
	if pages < 1 {
		return 1
	}
	return pages
}

func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// PageWindow returns at most five page numbers, starting two before the
// current page and shrinking near the last page.
func PageWindow(currentPage, totalPages int) []int {
	currentPage = ClampPage(currentPage, totalPages)
	start := currentPage - constvars.PatientListPageWindowLeadSize - 1
	if start < 0 {
		start = 0
	}
	end := start + constvars.PatientListPageButtonsShown
	if end > totalPages {
		end = totalPages
	}

	window := make([]int, 0, end-start)
	for page := start + 1; page <= end; page++ {
		window = append(window, page)
	}
	return window
}

// Paginate slices out the given page after clamping it.
func Paginate(patients []fhir_dto.Patient, page int) []fhir_dto.Patient {
	page = ClampPage(page, TotalPages(len(patients)))
	start := (page - 1) * PageSize
	if start >= len(patients) {
		return []fhir_dto.Patient{}
	}
	end := start + PageSize
	if end > len(patients) {
		end = len(patients)
	}
	return patients[start:end]
}
