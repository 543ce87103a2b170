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

type ConsentFormController struct {
	Log                *zap.Logger
	ConsentFormUsecase contracts.ConsentFormUsecase
	InternalConfig     *config.InternalConfig
}

func NewConsentFormController(logger *zap.Logger, consentFormUsecase contracts.ConsentFormUsecase, internalConfig *config.InternalConfig) *ConsentFormController {
	return &ConsentFormController{
		Log:                logger,
		ConsentFormUsecase: consentFormUsecase,
		InternalConfig:     internalConfig,
	}
}

func (ctrl *ConsentFormController) CreateConsentForm(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ConsentFormController.CreateConsentForm requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("ConsentFormController.CreateConsentForm called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CreateConsentForm)
	if err := decodeJSONBody(r, request); err != nil {
		ctrl.Log.Error("ConsentFormController.CreateConsentForm error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.SanitizeCreateConsentFormRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("ConsentFormController.CreateConsentForm validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	response, err := ctrl.ConsentFormUsecase.CreateConsentForm(ctx, request)
	if err != nil {
		ctrl.Log.Error("ConsentFormController.CreateConsentForm error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ConsentFormController.CreateConsentForm succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsentFormIDKey, response.FormID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateConsentFormSuccessMessage, response)
}

func (ctrl *ConsentFormController) UpdateConsentForm(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ConsentFormController.UpdateConsentForm requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("ConsentFormController.UpdateConsentForm called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.UpdateConsentForm)
	if err := decodeJSONBody(r, request); err != nil {
		ctrl.Log.Error("ConsentFormController.UpdateConsentForm error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request.FormID = chi.URLParam(r, constvars.URLParamConsentFormID)

	utils.SanitizeUpdateConsentFormRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("ConsentFormController.UpdateConsentForm validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	response, err := ctrl.ConsentFormUsecase.UpdateConsentForm(ctx, request)
	if err != nil {
		ctrl.Log.Error("ConsentFormController.UpdateConsentForm error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ConsentFormController.UpdateConsentForm succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsentFormIDKey, request.FormID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateConsentFormSuccessMessage, response)
}

func (ctrl *ConsentFormController) FindConsentFormByID(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ConsentFormController.FindConsentFormByID requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	formID := chi.URLParam(r, constvars.URLParamConsentFormID)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	response, err := ctrl.ConsentFormUsecase.FindConsentFormByID(ctx, formID)
	if err != nil {
		ctrl.Log.Error("ConsentFormController.FindConsentFormByID error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingConsentFormIDKey, formID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindConsentFormSuccessMessage, response)
}

func (ctrl *ConsentFormController) FindAllConsentForms(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ConsentFormController.FindAllConsentForms requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	response, err := ctrl.ConsentFormUsecase.FindAllConsentForms(ctx)
	if err != nil {
		ctrl.Log.Error("ConsentFormController.FindAllConsentForms error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindAllConsentFormsSuccessMessage, response)
}

func (ctrl *ConsentFormController) DeleteConsentFormByID(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ConsentFormController.DeleteConsentFormByID requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	formID := chi.URLParam(r, constvars.URLParamConsentFormID)
	ctrl.Log.Info("ConsentFormController.DeleteConsentFormByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsentFormIDKey, formID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	err := ctrl.ConsentFormUsecase.DeleteConsentFormByID(ctx, formID)
	if err != nil {
		ctrl.Log.Error("ConsentFormController.DeleteConsentFormByID error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteConsentFormSuccessMessage, nil)
}

func (ctrl *ConsentFormController) GetConsentFormSchema(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ConsentFormController.GetConsentFormSchema requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	formID := chi.URLParam(r, constvars.URLParamConsentFormID)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	response, err := ctrl.ConsentFormUsecase.GetConsentFormSchema(ctx, formID)
	if err != nil {
		ctrl.Log.Error("ConsentFormController.GetConsentFormSchema error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingConsentFormIDKey, formID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindConsentFormSchemaSuccessMessage, response)
}
