package patients

import (
	"context"
	"patient-viewer-service/internal/app/contracts"
	"patient-viewer-service/internal/pkg/constvars"
	"patient-viewer-service/internal/pkg/dto/requests"
	"patient-viewer-service/internal/pkg/dto/responses"
	"patient-viewer-service/internal/pkg/exceptions"
	"patient-viewer-service/internal/pkg/fhir_dto"
	"patient-viewer-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

type (
	ListParams = requests.PatientListParams
	ListView   = responses.PatientListView
)

// ListController owns the patient directory screen: the fetched batch, the
// filtered view of it and the current page.
type ListController struct {
	Log    *zap.Logger
	Client contracts.PatientFhirClient

	mu         sync.Mutex
	state      string
	started    bool
	params     ListParams
	patients   []fhir_dto.Patient
	filtered   []fhir_dto.Patient
	page       int
	err        error
	errMessage string
	generation uint64
	cancel     context.CancelFunc
}

func NewListController(client contracts.PatientFhirClient, logger *zap.Logger, retrieveCount int) *ListController {
	return &ListController{
		Log:      logger,
		Client:   client,
		state:    responses.ViewStateLoading,
		params:   ListParams{RetrieveCount: retrieveCount},
		patients: []fhir_dto.Patient{},
		filtered: []fhir_dto.Patient{},
		page:     1,
	}
}

// Sync applies the top-level viewer state. A changed retrieve count or
// refresh key (or the first call) fetches a new batch; a changed search term
// only refilters. A load superseded by a newer one is dropped on completion.
func (c *ListController) Sync(ctx context.Context, params ListParams) ListView {
	requestID := utils.RequestIDFromContext(ctx)

	c.mu.Lock()
	needsLoad := !c.started ||
		params.RetrieveCount != c.params.RetrieveCount ||
		params.RefreshKey != c.params.RefreshKey
	termChanged := params.SearchTerm != c.params.SearchTerm
	c.params = params

	if !needsLoad {
		if termChanged {
			c.refilterLocked()
			c.Log.Debug("ListController.Sync refiltered",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSearchTermKey, params.SearchTerm),
				zap.Int(constvars.LoggingPatientCountKey, len(c.filtered)),
			)
		}
		view := c.viewLocked()
		c.mu.Unlock()
		return view
	}

	c.started = true
	generation, loadCtx := c.beginLoadLocked(ctx)
	c.mu.Unlock()

	c.Log.Info("ListController.Sync loading patients",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRetrieveCountKey, params.RetrieveCount),
		zap.Uint64(constvars.LoggingGenerationKey, generation),
	)
	patients, err := c.Client.ListPatients(loadCtx, params.RetrieveCount)

	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.generation {
		c.Log.Info("ListController.Sync discarded stale result",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Uint64(constvars.LoggingGenerationKey, generation),
		)
		return c.viewLocked()
	}
	c.finishLoadLocked()

	if err != nil {
		c.state = responses.ViewStateFailed
		c.err = err
		c.errMessage = exceptions.DescribeError(err)
		c.patients = []fhir_dto.Patient{}
		c.refilterLocked()
		c.Log.Error("ListController.Sync failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return c.viewLocked()
	}

	c.state = responses.ViewStateReady
	c.patients = patients
	c.refilterLocked()
	c.Log.Info("ListController.Sync succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientCountKey, len(patients)),
	)
	return c.viewLocked()
}

func (c *ListController) SetPage(page int) ListView {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.page = ClampPage(page, TotalPages(len(c.filtered)))
	return c.viewLocked()
}

func (c *ListController) NextPage() ListView {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := TotalPages(len(c.filtered))
	c.page = ClampPage(ClampPage(c.page, total)+1, total)
	return c.viewLocked()
}

func (c *ListController) PrevPage() ListView {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := TotalPages(len(c.filtered))
	c.page = ClampPage(ClampPage(c.page, total)-1, total)
	return c.viewLocked()
}

func (c *ListController) View() ListView {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

// Err returns the raw failure of the last applied load, if any.
func (c *ListController) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Close cancels any in-flight load; its result will be dropped.
func (c *ListController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.finishLoadLocked()
}

func (c *ListController) beginLoadLocked(ctx context.Context) (uint64, context.Context) {
	c.generation++
	c.finishLoadLocked()

	loadCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.state = responses.ViewStateLoading
	c.err = nil
	c.errMessage = ""
	return c.generation, loadCtx
}

func (c *ListController) finishLoadLocked() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func (c *ListController) refilterLocked() {
	c.filtered = FilterPatients(c.patients, c.params.SearchTerm)
	c.page = 1
}

func (c *ListController) viewLocked() ListView {
	totalPages := TotalPages(len(c.filtered))
	page := ClampPage(c.page, totalPages)

	visible := Paginate(c.filtered, page)
	rows := make([]responses.PatientRow, 0, len(visible))
	for i := range visible {
		rows = append(rows, responses.PatientRow{
			ID:        visible[i].ID,
			Name:      utils.DisplayName(&visible[i]),
			Gender:    utils.GenderOrDefault(visible[i].Gender, constvars.ViewUnknown),
			BirthDate: utils.BirthDateOrDefault(visible[i].BirthDate, constvars.ViewNotAvailable),
		})
	}

	return ListView{
		State:          c.state,
		Error:          c.errMessage,
		Rows:           rows,
		Empty:          c.state == responses.ViewStateReady && len(c.filtered) == 0 && c.errMessage == "",
		RetrievedCount: len(c.patients),
		FilteredCount:  len(c.filtered),
		Page:           page,
		TotalPages:     totalPages,
		PageSize:       PageSize,
		PageWindow:     PageWindow(page, totalPages),
		HasPrev:        page > 1,
		HasNext:        page < totalPages,
		RetrieveCount:  c.params.RetrieveCount,
		SearchTerm:     c.params.SearchTerm,
		Generation:     c.generation,
	}
}
