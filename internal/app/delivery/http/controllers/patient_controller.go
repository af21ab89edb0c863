package controllers

import (
	"context"
	"errors"
	"net/http"
	"patient-viewer-service/internal/app/config"
	"patient-viewer-service/internal/app/contracts"
	"patient-viewer-service/internal/pkg/constvars"
	"patient-viewer-service/internal/pkg/exceptions"
	"patient-viewer-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// PatientController serves the read-only JSON API.
type PatientController struct {
	Log            *zap.Logger
	PatientUsecase contracts.PatientUsecase
	InternalConfig *config.InternalConfig
}

func NewPatientController(logger *zap.Logger, patientUsecase contracts.PatientUsecase, internalConfig *config.InternalConfig) *PatientController {
	return &PatientController{
		Log:            logger,
		PatientUsecase: patientUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *PatientController) FindAll(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := utils.RequestIDFromContext(r.Context())

	ctrl.Log.Info("PatientController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEndpointKey, r.URL.Path),
	)

	request := utils.BuildPatientListRequest(r)
	if !request.HasRetrieveCount {
		request.RetrieveCount = ctrl.InternalConfig.App.DefaultRetrieveCount
	}
	if !request.HasPage {
		request.Page = 1
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("PatientController.FindAll validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorTypeKey, "validation"),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	view, err := ctrl.PatientUsecase.ListPatients(ctx, request)
	if err != nil {
		ctrl.Log.Error("PatientController.FindAll error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(ctx.Err()))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(
		view.FilteredCount,
		view.Page,
		view.TotalPages,
		view.RetrieveCount,
		view.SearchTerm,
		r.URL.Path,
	)

	ctrl.Log.Info("PatientController.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientCountKey, view.FilteredCount),
		zap.Int(constvars.LoggingPageKey, view.Page),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetPatientsSuccessMessage, pagination, view.Rows)
}

func (ctrl *PatientController) FindByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := utils.RequestIDFromContext(r.Context())
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctrl.Log.Info("PatientController.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	if patientID == "" {
		ctrl.Log.Error("PatientController.FindByID missing patient id",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamPatientID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	view, err := ctrl.PatientUsecase.FindPatientByID(ctx, patientID)
	if err != nil {
		ctrl.Log.Error("PatientController.FindByID error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(ctx.Err()))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("PatientController.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPatientSuccessMessage, view.Patient)
}

func (ctrl *PatientController) requestTimeout() time.Duration {
	return time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds) * time.Second
}
