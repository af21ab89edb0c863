package controllers

import (
	"context"
	"fmt"
	"net/http"
	"patient-viewer-service/internal/app/config"
	"patient-viewer-service/internal/app/delivery/http/views"
	"patient-viewer-service/internal/app/services/shared/viewstate"
	"patient-viewer-service/internal/pkg/constvars"
	"patient-viewer-service/internal/pkg/exceptions"
	"patient-viewer-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// PatientViewController renders the HTML screens. It drives the controllers
// mounted on the caller's viewer session, so paging and dismissing reuse the
// data already loaded for the screen.
type PatientViewController struct {
	Log            *zap.Logger
	Renderer       *views.Renderer
	InternalConfig *config.InternalConfig
}

func NewPatientViewController(logger *zap.Logger, renderer *views.Renderer, internalConfig *config.InternalConfig) *PatientViewController {
	return &PatientViewController{
		Log:            logger,
		Renderer:       renderer,
		InternalConfig: internalConfig,
	}
}

func (ctrl *PatientViewController) List(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())

	session, ok := viewstate.FromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingViewerSession(nil))
		return
	}

	request := utils.BuildPatientListRequest(r)
	if request.HasSearchTerm {
		session.SetSearchTerm(request.SearchTerm)
	}
	if request.HasRetrieveCount {
		if err := utils.ValidateStructPartial(request, "RetrieveCount"); err != nil {
			ctrl.Log.Warn("PatientViewController.List ignored retrieve count",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int(constvars.LoggingRetrieveCountKey, request.RetrieveCount),
				zap.Error(err),
			)
		} else {
			session.SetRetrieveCount(request.RetrieveCount)
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	controller := session.MountList()
	view := controller.Sync(ctx, session.ListParams())

	if request.HasPage {
		if err := utils.ValidateStructPartial(request, "Page"); err != nil {
			ctrl.Log.Warn("PatientViewController.List ignored page",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int(constvars.LoggingPageKey, request.Page),
				zap.Error(err),
			)
		} else {
			view = controller.SetPage(request.Page)
		}
	}

	ctrl.Log.Info("PatientViewController.List rendering",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.ID),
		zap.String("state", view.State),
		zap.Int(constvars.LoggingPageKey, view.Page),
	)
	ctrl.render(w, requestID, views.PageList, views.NewListPage(view))
}

// Refresh bumps the session refresh key so the next list render refetches.
func (ctrl *PatientViewController) Refresh(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())

	session, ok := viewstate.FromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingViewerSession(nil))
		return
	}

	refreshKey := session.Refresh()
	ctrl.Log.Info("PatientViewController.Refresh succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.ID),
		zap.Int("refresh_key", refreshKey),
	)
	http.Redirect(w, r, "/", constvars.StatusSeeOther)
}

func (ctrl *PatientViewController) Detail(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	session, ok := viewstate.FromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingViewerSession(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	view := session.MountDetail().Navigate(ctx, patientID)

	ctrl.Log.Info("PatientViewController.Detail rendering",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.ID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.String("state", view.State),
	)
	page := views.NewDetailPage(view, session.ListParams().SearchTerm, ctrl.InternalConfig.App.NotificationAutoHideMs)
	ctrl.render(w, requestID, views.PageDetail, page)
}

// Dismiss hides the failure notification of the mounted detail screen. The
// record is not fetched again.
func (ctrl *PatientViewController) Dismiss(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	session, ok := viewstate.FromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingViewerSession(nil))
		return
	}

	if controller, mounted := session.MountedDetail(); mounted {
		controller.Dismiss()
		ctrl.Log.Info("PatientViewController.Dismiss succeeded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
		)
	}
	http.Redirect(w, r, fmt.Sprintf("/patients/%s", patientID), constvars.StatusSeeOther)
}

func (ctrl *PatientViewController) render(w http.ResponseWriter, requestID, page string, data interface{}) {
	if err := ctrl.Renderer.Render(w, constvars.StatusOK, page, data); err != nil {
		ctrl.Log.Error("PatientViewController.render error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("page", page),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrRenderTemplate(err, page))
	}
}

func (ctrl *PatientViewController) requestTimeout() time.Duration {
	return time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds) * time.Second
}
