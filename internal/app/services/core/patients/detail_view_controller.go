package patients

import (
	"context"
	"fmt"
	"patient-viewer-service/internal/app/contracts"
	"patient-viewer-service/internal/pkg/constvars"
	"patient-viewer-service/internal/pkg/dto/responses"
	"patient-viewer-service/internal/pkg/exceptions"
	"patient-viewer-service/internal/pkg/fhir_dto"
	"patient-viewer-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

type DetailView = responses.PatientDetailView

// DetailController owns one patient detail screen, keyed by patient id.
type DetailController struct {
	Log    *zap.Logger
	Client contracts.PatientFhirClient

	mu         sync.Mutex
	state      string
	navigated  bool
	patientID  string
	patient    *fhir_dto.Patient
	err        error
	errMessage string
	generation uint64
	cancel     context.CancelFunc
}

func NewDetailController(client contracts.PatientFhirClient, logger *zap.Logger) *DetailController {
	return &DetailController{
		Log:    logger,
		Client: client,
		state:  responses.ViewStateLoading,
	}
}

// Navigate loads patientID unless it is already the current key. An empty id
// is a finished screen with nothing to show.
func (c *DetailController) Navigate(ctx context.Context, patientID string) DetailView {
	requestID := utils.RequestIDFromContext(ctx)

	c.mu.Lock()
	if c.navigated && patientID == c.patientID {
		view := c.viewLocked()
		c.mu.Unlock()
		return view
	}

	c.navigated = true
	c.patientID = patientID
	c.generation++
	generation := c.generation
	c.finishLoadLocked()
	c.patient = nil
	c.err = nil
	c.errMessage = ""

	if patientID == "" {
		c.state = responses.ViewStateReady
		view := c.viewLocked()
		c.mu.Unlock()
		return view
	}

	c.state = responses.ViewStateLoading
	loadCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.mu.Unlock()

	c.Log.Info("DetailController.Navigate loading patient",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.Uint64(constvars.LoggingGenerationKey, generation),
	)
	patient, err := c.Client.FindPatientByID(loadCtx, patientID)

	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.generation {
		c.Log.Info("DetailController.Navigate discarded stale result",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Uint64(constvars.LoggingGenerationKey, generation),
		)
		return c.viewLocked()
	}
	c.finishLoadLocked()

	if err != nil {
		c.state = responses.ViewStateFailed
		c.err = err
		c.errMessage = exceptions.DescribeError(err)
		c.Log.Error("DetailController.Navigate failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return c.viewLocked()
	}

	c.state = responses.ViewStateReady
	c.patient = patient
	c.Log.Info("DetailController.Navigate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return c.viewLocked()
}

// Dismiss hides the notification. The record is not fetched again.
func (c *DetailController) Dismiss() DetailView {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = nil
	c.errMessage = ""
	return c.viewLocked()
}

func (c *DetailController) View() DetailView {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

func (c *DetailController) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

func (c *DetailController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.finishLoadLocked()
}

func (c *DetailController) finishLoadLocked() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func (c *DetailController) viewLocked() DetailView {
	view := DetailView{
		State:     c.state,
		PatientID: c.patientID,
		Error:     c.errMessage,
	}

	if c.patient != nil {
		view.Patient = buildPatientRecord(c.patient)
		return view
	}

	if c.state != responses.ViewStateLoading {
		if c.errMessage != "" {
			view.Fallback = constvars.ViewUnableToLoadPatient
		} else {
			view.Fallback = constvars.ViewPatientNotFound
		}
	}
	return view
}

func buildPatientRecord(patient *fhir_dto.Patient) *responses.PatientRecord {
	addresses := make([]string, 0, len(patient.Address))
	for _, address := range patient.Address {
		addresses = append(addresses, fmt.Sprintf("%s (%s)", utils.FormatAddress(address), utils.AddressUseOrDefault(address)))
	}

	return &responses.PatientRecord{
		ID:        patient.ID,
		Name:      utils.DisplayName(patient),
		Gender:    utils.GenderOrDefault(patient.Gender, constvars.ViewUnknown),
		BirthDate: utils.BirthDateOrDefault(patient.BirthDate, constvars.ViewUnknown),
		Active:    patient.Active,
		Addresses: addresses,
	}
}
