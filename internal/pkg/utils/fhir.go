package utils

import (
	"patient-viewer-service/internal/pkg/constvars"
	"patient-viewer-service/internal/pkg/fhir_dto"
	"strings"
)

// DisplayName builds a readable name from the first HumanName only.
func DisplayName(patient *fhir_dto.Patient) string {
	if patient == nil || len(patient.Name) == 0 {
		return constvars.ViewUnknownName
	}

	name := patient.Name[0]
	given := strings.Join(name.Given, " ")
	fullname := strings.TrimSpace(given + " " + name.Family)
	if fullname == "" {
		return constvars.ViewUnnamed
	}
	return fullname
}

// FormatAddress joins lines, city, state, postal code and country in that
// order, skipping parts that are empty.
func FormatAddress(address fhir_dto.Address) string {
	candidates := []string{
		strings.Join(address.Line, ", "),
		address.City,
		address.State,
		address.PostalCode,
		address.Country,
	}

	parts := make([]string, 0, len(candidates))
	for _, part := range candidates {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}

func GenderOrDefault(gender, fallback string) string {
	if gender == "" {
		return fallback
	}
	return gender
}

func BirthDateOrDefault(birthDate, fallback string) string {
	if birthDate == "" {
		return fallback
	}
	return birthDate
}

func AddressUseOrDefault(address fhir_dto.Address) string {
	if address.Use == "" {
		return constvars.ViewUnspecified
	}
	return address.Use
}
