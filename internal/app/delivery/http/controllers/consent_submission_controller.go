package controllers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kralluz/imec-formularios-app/internal/app/config"
	"github.com/kralluz/imec-formularios-app/internal/app/contracts"
	"github.com/kralluz/imec-formularios-app/internal/pkg/constvars"
	"github.com/kralluz/imec-formularios-app/internal/pkg/dto/requests"
	"github.com/kralluz/imec-formularios-app/internal/pkg/exceptions"
	"github.com/kralluz/imec-formularios-app/internal/pkg/utils"
	"go.uber.org/zap"
)

type ConsentSubmissionController struct {
	Log                      *zap.Logger
	ConsentSubmissionUsecase contracts.ConsentSubmissionUsecase
	InternalConfig           *config.InternalConfig
}

func NewConsentSubmissionController(logger *zap.Logger, consentSubmissionUsecase contracts.ConsentSubmissionUsecase, internalConfig *config.InternalConfig) *ConsentSubmissionController {
	return &ConsentSubmissionController{
		Log:                      logger,
		ConsentSubmissionUsecase: consentSubmissionUsecase,
		InternalConfig:           internalConfig,
	}
}

// SubmitConsent leaves field validation to the usecase so identity fields and
// answers are reported together.
func (ctrl *ConsentSubmissionController) SubmitConsent(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ConsentSubmissionController.SubmitConsent requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("ConsentSubmissionController.SubmitConsent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.SubmitConsent)
	if err := decodeJSONBody(r, request); err != nil {
		ctrl.Log.Error("ConsentSubmissionController.SubmitConsent error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request.FormID = chi.URLParam(r, constvars.URLParamConsentFormID)
	request.IPAddress = utils.GetClientIP(r, ctrl.InternalConfig.App.TrustedProxies)
	request.UserAgent = r.UserAgent()

	utils.SanitizeSubmitConsentRequest(request)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	response, err := ctrl.ConsentSubmissionUsecase.SubmitConsent(ctx, request)
	if err != nil {
		ctrl.Log.Error("ConsentSubmissionController.SubmitConsent error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	message := constvars.SubmitConsentSuccessMessage
	if response.ExportStatus != constvars.ExportStatusExported {
		message = constvars.SubmitConsentExportPendingMessage
	}

	ctrl.Log.Info("ConsentSubmissionController.SubmitConsent succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSubmissionIDKey, response.SubmissionID),
		zap.String(constvars.LoggingExportStatusKey, response.ExportStatus),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, message, response)
}

func (ctrl *ConsentSubmissionController) FindSubmissionByID(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ConsentSubmissionController.FindSubmissionByID requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	submissionID := chi.URLParam(r, constvars.URLParamSubmissionID)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	response, err := ctrl.ConsentSubmissionUsecase.FindSubmissionByID(ctx, submissionID)
	if err != nil {
		ctrl.Log.Error("ConsentSubmissionController.FindSubmissionByID error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSubmissionIDKey, submissionID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindConsentSubmissionSuccessMessage, response)
}

func (ctrl *ConsentSubmissionController) FindSubmissionsByForm(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ConsentSubmissionController.FindSubmissionsByForm requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	request := &requests.FindSubmissionsByForm{
		FormID: chi.URLParam(r, constvars.URLParamConsentFormID),
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	response, err := ctrl.ConsentSubmissionUsecase.FindSubmissionsByForm(ctx, request)
	if err != nil {
		ctrl.Log.Error("ConsentSubmissionController.FindSubmissionsByForm error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingConsentFormIDKey, request.FormID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindConsentSubmissionsSuccessMessage, response)
}
