package responses

// View states shared by the list and detail screens
const (
	ViewStateLoading = "loading"
	ViewStateReady   = "ready"
	ViewStateFailed  = "failed"
)

type PatientRow struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Gender    string `json:"gender"`
	BirthDate string `json:"birth_date"`
}

type PatientListView struct {
	State          string       `json:"state"`
	Error          string       `json:"error,omitempty"`
	Rows           []PatientRow `json:"rows"`
	Empty          bool         `json:"empty"`
	RetrievedCount int          `json:"retrieved_count"`
	FilteredCount  int          `json:"filtered_count"`
	Page           int          `json:"page"`
	TotalPages     int          `json:"total_pages"`
	PageSize       int          `json:"page_size"`
	PageWindow     []int        `json:"page_window"`
	HasPrev        bool         `json:"has_prev"`
	HasNext        bool         `json:"has_next"`
	RetrieveCount  int          `json:"retrieve_count"`
	SearchTerm     string       `json:"search_term"`
	Generation     uint64       `json:"-"`
}

type PatientRecord struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Gender    string   `json:"gender"`
	BirthDate string   `json:"birth_date"`
	Active    *bool    `json:"active,omitempty"`
	Addresses []string `json:"addresses"`
}

type PatientDetailView struct {
	State     string         `json:"state"`
	PatientID string         `json:"patient_id"`
	Error     string         `json:"error,omitempty"`
	Fallback  string         `json:"fallback,omitempty"`
	Patient   *PatientRecord `json:"patient,omitempty"`
}
