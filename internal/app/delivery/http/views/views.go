package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"patient-viewer-service/internal/pkg/constvars"
	"patient-viewer-service/internal/pkg/dto/responses"

	"github.com/Masterminds/sprig/v3"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	PageList   = "list"
	PageDetail = "detail"
)

type basePage struct {
	Title      string
	SearchTerm string
}

type ListPage struct {
	basePage
	View            responses.PatientListView
	RetrieveOptions []int
	LoadingText     string
	EmptyText       string
}

type DetailPage struct {
	basePage
	View                   responses.PatientDetailView
	DismissURL             string
	NotificationAutoHideMs int
	LoadingText            string
}

func NewListPage(view responses.PatientListView) ListPage {
	return ListPage{
		basePage:        basePage{Title: "Patients", SearchTerm: view.SearchTerm},
		View:            view,
		RetrieveOptions: constvars.PatientListRetrieveOptions,
		LoadingText:     constvars.ViewLoadingPatients,
		EmptyText:       constvars.ViewNoPatientsFound,
	}
}

func NewDetailPage(view responses.PatientDetailView, searchTerm string, autoHideMs int) DetailPage {
	title := "Patient"
	if view.Patient != nil {
		title = view.Patient.Name
	}
	return DetailPage{
		basePage:               basePage{Title: title, SearchTerm: searchTerm},
		View:                   view,
		DismissURL:             fmt.Sprintf("/patients/%s/dismiss", view.PatientID),
		NotificationAutoHideMs: autoHideMs,
		LoadingText:            constvars.ViewLoadingPatientDetail,
	}
}

// Renderer holds one parsed template set per page, each page layered over the layout.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	renderer := &Renderer{pages: make(map[string]*template.Template)}
	for _, page := range []string{PageList, PageDetail} {
		tmpl, err := template.New(page).
			Funcs(sprig.FuncMap()).
			ParseFS(templateFS, "templates/layout.html", fmt.Sprintf("templates/%s.html", page))
		if err != nil {
			return nil, err
		}
		renderer.pages[page] = tmpl
	}
	return renderer, nil
}

// Render executes the page into a buffer first so a failing template never
// leaves a half-written response.
func (r *Renderer) Render(w http.ResponseWriter, statusCode int, page string, data interface{}) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	err := tmpl.ExecuteTemplate(&buf, "layout", data)
	if err != nil {
		return err
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextHTMLCharsetUTF8)
	w.WriteHeader(statusCode)
	_, err = buf.WriteTo(w)
	return err
}
