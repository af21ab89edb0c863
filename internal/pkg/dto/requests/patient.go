package requests

type PatientList struct {
	SearchTerm       string `json:"q"`
	RetrieveCount    int    `json:"count" validate:"oneof=10 20 30 50 100"`
	Page             int    `json:"page" validate:"min=1"`
	HasSearchTerm    bool   `json:"-"`
	HasRetrieveCount bool   `json:"-"`
	HasPage          bool   `json:"-"`
}

type PatientDetail struct {
	PatientID string `json:"id" validate:"required"`
}

// PatientListParams is the top-level viewer state the list screen reacts to.
type PatientListParams struct {
	RetrieveCount int
	RefreshKey    int
	SearchTerm    string
}
