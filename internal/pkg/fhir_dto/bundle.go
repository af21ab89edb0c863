package fhir_dto

import (
	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

// FHIRBundle is the searchset container returned by GET /Patient. Entries keep
// their resource raw so callers can discard non-Patient resources before decoding.
type FHIRBundle struct {
	ResourceType string       `json:"resourceType"`
	ID           string       `json:"id,omitempty"`
	Type         string       `json:"type"`
	Total        *int         `json:"total,omitempty"`
	Entry        []Entry      `json:"entry,omitempty"`
	Link         []BundleLink `json:"link,omitempty"`
}

type Entry struct {
	FullUrl  string          `json:"fullUrl,omitempty"`
	Resource json.RawMessage `json:"resource"`
}

type BundleLink struct {
	Relation string `json:"relation"`
	Url      string `json:"url"`
}

// ResourceType reports the resourceType tag of the wrapped resource, or an
// empty string when the resource is missing or not a JSON object.
func (e Entry) ResourceType() string {
	resourceType := gjson.GetBytes(e.Resource, "resourceType")
	if resourceType.Type != gjson.String {
		return ""
	}
	return resourceType.String()
}

func (b *FHIRBundle) LinkURL(relation string) string {
	for _, link := range b.Link {
		if link.Relation == relation {
			return link.Url
		}
	}
	return ""
}
