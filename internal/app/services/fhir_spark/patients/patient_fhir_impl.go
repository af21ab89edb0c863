package patients

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"patient-viewer-service/internal/app/contracts"
	"patient-viewer-service/internal/pkg/constvars"
	"patient-viewer-service/internal/pkg/exceptions"
	"patient-viewer-service/internal/pkg/fhir_dto"
	"patient-viewer-service/internal/pkg/metrics"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	operationListPatients = "list_patients"
	operationFindPatient  = "find_patient_by_id"
	outcomeSuccess        = "success"
)

const maxErrorBodyBytes int64 = 64 << 10

type patientFhirClient struct {
	BaseUrl    string
	Log        *zap.Logger
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	Metrics    *metrics.Metrics
}

type Option func(*patientFhirClient)

// WithTimeout bounds a whole FHIR exchange, connection and body included.
func WithTimeout(timeout time.Duration) Option {
	return func(c *patientFhirClient) {
		if timeout > 0 {
			c.HTTPClient = &http.Client{Timeout: timeout}
		}
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(c *patientFhirClient) {
		if client != nil {
			c.HTTPClient = client
		}
	}
}

// WithRateLimit throttles outbound calls. A non-positive rate disables it.
func WithRateLimit(requestsPerSecond float64) Option {
	return func(c *patientFhirClient) {
		if requestsPerSecond > 0 {
			burst := int(requestsPerSecond)
			if burst < 1 {
				burst = 1
			}
			c.Limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), burst)
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *patientFhirClient) {
		c.Metrics = m
	}
}

func NewPatientFhirClient(baseUrl string, logger *zap.Logger, options ...Option) contracts.PatientFhirClient {
	client := &patientFhirClient{
		BaseUrl:    strings.TrimRight(baseUrl, "/") + "/" + constvars.ResourcePatient,
		Log:        logger,
		HTTPClient: &http.Client{},
	}
	for _, option := range options {
		option(client)
	}
	return client
}

func (c *patientFhirClient) ListPatients(ctx context.Context, limit int) ([]fhir_dto.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientFhirClient.ListPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRetrieveCountKey, limit),
	)

	if limit < 0 {
		err := exceptions.NewUnknownError(
			fmt.Errorf(constvars.ErrDevFhirInvalidArgument, constvars.ResourcePatient, fmt.Sprintf("negative limit %d", limit)),
			constvars.ResourcePatient,
		)
		c.Log.Error("patientFhirClient.ListPatients invalid limit",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	started := time.Now()
	endpoint := fmt.Sprintf("%s?%s=%d", c.BaseUrl, constvars.FhirQueryCount, limit)

	bundle := new(fhir_dto.FHIRBundle)
	err := c.get(ctx, "ListPatients", requestID, endpoint, bundle)
	if err != nil {
		c.observe(operationListPatients, started, err)
		return nil, err
	}

	if bundle.ResourceType != constvars.ResourceBundle {
		err = exceptions.NewUnknownError(
			fmt.Errorf(constvars.ErrDevFhirUnexpectedResourceType, constvars.ResourceBundle, bundle.ResourceType),
			constvars.ResourcePatient,
		)
		c.Log.Error("patientFhirClient.ListPatients unexpected resource type",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		c.observe(operationListPatients, started, err)
		return nil, err
	}

	patients := make([]fhir_dto.Patient, 0, len(bundle.Entry))
	for _, entry := range bundle.Entry {
		if entry.ResourceType() != constvars.ResourcePatient {
			continue
		}

		var patient fhir_dto.Patient
		err = json.Unmarshal(entry.Resource, &patient)
		if err != nil {
			fetchErr := exceptions.NewUnknownError(err, constvars.ResourcePatient)
			c.Log.Error("patientFhirClient.ListPatients error decoding bundle entry",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			c.observe(operationListPatients, started, fetchErr)
			return nil, fetchErr
		}
		patients = append(patients, patient)
	}

	c.observe(operationListPatients, started, nil)
	if c.Metrics != nil {
		c.Metrics.AddPatientsFetched(len(patients))
	}

	fields := []zap.Field{
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientCountKey, len(patients)),
	}
	if bundle.Total != nil {
		fields = append(fields, zap.Int(constvars.LoggingBundleTotalKey, *bundle.Total))
	}
	c.Log.Info("patientFhirClient.ListPatients succeeded", fields...)
	return patients, nil
}

func (c *patientFhirClient) FindPatientByID(ctx context.Context, patientID string) (*fhir_dto.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientFhirClient.FindPatientByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	if strings.TrimSpace(patientID) == "" {
		err := exceptions.NewUnknownError(
			fmt.Errorf(constvars.ErrDevFhirInvalidArgument, constvars.ResourcePatient, "empty patient id"),
			constvars.ResourcePatient,
		)
		c.Log.Error("patientFhirClient.FindPatientByID invalid patient id",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	started := time.Now()
	endpoint := fmt.Sprintf("%s/%s", c.BaseUrl, url.PathEscape(patientID))

	patientFhir := new(fhir_dto.Patient)
	err := c.get(ctx, "FindPatientByID", requestID, endpoint, patientFhir)
	if err != nil {
		c.observe(operationFindPatient, started, err)
		return nil, err
	}

	if patientFhir.ResourceType != constvars.ResourcePatient {
		err = exceptions.NewUnknownError(
			fmt.Errorf(constvars.ErrDevFhirUnexpectedResourceType, constvars.ResourcePatient, patientFhir.ResourceType),
			constvars.ResourcePatient,
		)
		c.Log.Error("patientFhirClient.FindPatientByID unexpected resource type",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		c.observe(operationFindPatient, started, err)
		return nil, err
	}

	c.observe(operationFindPatient, started, nil)
	c.Log.Info("patientFhirClient.FindPatientByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientFhir.ID),
	)
	return patientFhir, nil
}

// get performs one GET exchange and decodes a 2xx body into out. Every
// returned error is a *exceptions.FetchError.
func (c *patientFhirClient) get(ctx context.Context, method, requestID, endpoint string, out interface{}) error {
	if c.Limiter != nil {
		err := c.Limiter.Wait(ctx)
		if err != nil {
			c.Log.Error(fmt.Sprintf("patientFhirClient.%s rate limiter rejected request", method),
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return exceptions.NewUnknownError(
				fmt.Errorf("%s: %w", fmt.Sprintf(constvars.ErrDevFhirRateLimiterWait, constvars.ResourcePatient), err),
				constvars.ResourcePatient,
			)
		}
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		c.Log.Error(fmt.Sprintf("patientFhirClient.%s error creating HTTP request", method),
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.NewUnknownError(fmt.Errorf("%s: %w", constvars.ErrDevCreateHTTPRequest, err), constvars.ResourcePatient)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationFHIRJSON)
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationFHIRJSON)
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error(fmt.Sprintf("patientFhirClient.%s error sending HTTP request", method),
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, endpoint),
			zap.Error(err),
		)
		return exceptions.NewTransportError(fmt.Errorf("%s: %w", constvars.ErrDevSendHTTPRequest, err), constvars.ResourcePatient)
	}
	defer resp.Body.Close()

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300 {
		return c.statusError(method, requestID, resp)
	}

	err = json.NewDecoder(resp.Body).Decode(out)
	if err != nil {
		c.Log.Error(fmt.Sprintf("patientFhirClient.%s error decoding response", method),
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.NewUnknownError(
			fmt.Errorf("%s: %w", fmt.Sprintf(constvars.ErrDevFhirDecodeResourceResponse, constvars.ResourcePatient), err),
			constvars.ResourcePatient,
		)
	}
	return nil
}

// statusError builds the HTTP status failure, attaching the first
// OperationOutcome diagnostics as cause when the server sent one.
func (c *patientFhirClient) statusError(method, requestID string, resp *http.Response) error {
	var cause error

	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	if err != nil {
		c.Log.Warn(fmt.Sprintf("patientFhirClient.%s error reading response body", method),
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	} else {
		resourceType := gjson.GetBytes(bodyBytes, "resourceType").String()
		diagnostics := gjson.GetBytes(bodyBytes, "issue.0.diagnostics").String()
		if resourceType == constvars.ResourceOperationOutcome && diagnostics != "" {
			cause = errors.New(diagnostics)
		}
	}

	fields := []zap.Field{
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
	}
	if cause != nil {
		fields = append(fields, zap.String(constvars.LoggingDiagnosticsKey, cause.Error()))
	}
	c.Log.Error(fmt.Sprintf("patientFhirClient.%s FHIR error", method), fields...)

	return exceptions.NewHTTPStatusError(resp.StatusCode, constvars.ResourcePatient, cause)
}

func (c *patientFhirClient) observe(operation string, started time.Time, err error) {
	if c.Metrics == nil {
		return
	}
	outcome := outcomeSuccess
	if err != nil {
		outcome = exceptions.FetchErrorUnknown.String()
		var fetchErr *exceptions.FetchError
		if errors.As(err, &fetchErr) {
			outcome = fetchErr.Kind.String()
		}
	}
	c.Metrics.ObserveFhirRequest(operation, outcome, started)
}
