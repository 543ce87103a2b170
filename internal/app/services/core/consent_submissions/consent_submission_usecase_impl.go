package consentSubmissions

import (
	"context"
	"fmt"
	"time"

	"github.com/kralluz/imec-formularios-app/internal/app/config"
	"github.com/kralluz/imec-formularios-app/internal/app/contracts"
	"github.com/kralluz/imec-formularios-app/internal/app/models"
	"github.com/kralluz/imec-formularios-app/internal/pkg/constvars"
	"github.com/kralluz/imec-formularios-app/internal/pkg/dto/requests"
	"github.com/kralluz/imec-formularios-app/internal/pkg/dto/responses"
	"github.com/kralluz/imec-formularios-app/internal/pkg/exceptions"
	"github.com/kralluz/imec-formularios-app/internal/pkg/formschema"
	"github.com/kralluz/imec-formularios-app/internal/pkg/utils"
	"go.uber.org/zap"
)

const defaultExportTimeout = 30 * time.Second

type consentSubmissionUsecase struct {
	ConsentSubmissionRepository contracts.ConsentSubmissionRepository
	ConsentFormUsecase          contracts.ConsentFormUsecase
	Storage                     contracts.Storage
	Exporter                    contracts.ConsentExporter
	InternalConfig              *config.InternalConfig
	Log                         *zap.Logger
	now                         func() time.Time
}

func NewConsentSubmissionUsecase(
	consentSubmissionRepository contracts.ConsentSubmissionRepository,
	consentFormUsecase contracts.ConsentFormUsecase,
	storage contracts.Storage,
	exporter contracts.ConsentExporter,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ConsentSubmissionUsecase {
	return &consentSubmissionUsecase{
		ConsentSubmissionRepository: consentSubmissionRepository,
		ConsentFormUsecase:          consentFormUsecase,
		Storage:                     storage,
		Exporter:                    exporter,
		InternalConfig:              internalConfig,
		Log:                         logger,
		now:                         time.Now,
	}
}

// SubmitConsent validates an answer record against the form it answers,
// stores it and exports it. A failed export does not fail the submission:
// the record is kept with a failed export status for the retry worker.
func (uc *consentSubmissionUsecase) SubmitConsent(ctx context.Context, request *requests.SubmitConsent) (*responses.ConsentSubmission, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("consentSubmissionUsecase.SubmitConsent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsentFormIDKey, request.FormID),
	)

	schema, err := uc.ConsentFormUsecase.GetConsentFormSchema(ctx, request.FormID)
	if err != nil {
		return nil, err
	}

	violations := baseFieldViolations(request).Merge(
		formschema.Validate(schema.Fields, request.Responses, uc.InternalConfig.ConsentForm.UnknownFieldPolicy()),
	)
	if len(violations) > 0 {
		uc.Log.Info("consentSubmissionUsecase.SubmitConsent rejected answer record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Strings(constvars.LoggingViolationFieldsKey, violations.Fields()),
		)
		return nil, exceptions.ErrAnswerValidation(violations)
	}

	submittedAt := uc.now().In(utils.LoadLocation(uc.InternalConfig.App.Timezone))
	submission := &models.ConsentSubmission{
		ID:           utils.GenerateSubmissionID(),
		FormID:       request.FormID,
		Header:       buildConsentHeader(submittedAt, request.IPAddress, request.UserAgent),
		PatientName:  request.PatientName,
		CPF:          request.CPF,
		RG:           request.RG,
		BirthDate:    request.BirthDate,
		Responses:    request.Responses,
		ExportStatus: constvars.ExportStatusPending,
		CreatedAt:    submittedAt.UTC().Truncate(time.Millisecond),
	}
	if submission.Responses == nil {
		submission.Responses = map[string]any{}
	}

	if request.Signature != "" {
		submission.SignatureObjectKey, err = uc.uploadSignature(ctx, submission.ID, request.Signature)
		if err != nil {
			return nil, err
		}
	}

	err = uc.ConsentSubmissionRepository.CreateSubmission(ctx, submission)
	if err != nil {
		uc.Log.Error("consentSubmissionUsecase.SubmitConsent error storing submission",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSubmissionIDKey, submission.ID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.export(ctx, submission)

	uc.Log.Info("consentSubmissionUsecase.SubmitConsent succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSubmissionIDKey, submission.ID),
		zap.String(constvars.LoggingExportStatusKey, submission.ExportStatus),
	)
	response := submission.ConvertIntoResponse()
	return &response, nil
}

func (uc *consentSubmissionUsecase) FindSubmissionByID(ctx context.Context, submissionID string) (*responses.ConsentSubmission, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("consentSubmissionUsecase.FindSubmissionByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSubmissionIDKey, submissionID),
	)

	submission, err := uc.ConsentSubmissionRepository.FindByID(ctx, submissionID)
	if err != nil {
		uc.Log.Error("consentSubmissionUsecase.FindSubmissionByID error fetching submission",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if submission == nil {
		return nil, exceptions.ErrSubmissionNotFound(nil, submissionID)
	}

	response := submission.ConvertIntoResponse()
	return &response, nil
}

func (uc *consentSubmissionUsecase) FindSubmissionsByForm(ctx context.Context, request *requests.FindSubmissionsByForm) ([]responses.ConsentSubmission, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("consentSubmissionUsecase.FindSubmissionsByForm called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsentFormIDKey, request.FormID),
	)

	_, err := uc.ConsentFormUsecase.FindConsentFormByID(ctx, request.FormID)
	if err != nil {
		return nil, err
	}

	submissions, err := uc.ConsentSubmissionRepository.FindByFormID(ctx, request.FormID)
	if err != nil {
		uc.Log.Error("consentSubmissionUsecase.FindSubmissionsByForm error fetching submissions",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.ConsentSubmission, len(submissions))
	for i, eachSubmission := range submissions {
		response[i] = eachSubmission.ConvertIntoResponse()
	}
	return response, nil
}

// RetryFailedExports exports again up to batchSize submissions, oldest first,
// and returns how many succeeded. Besides failed exports it picks up pending
// ones older than a whole submit request could take.
func (uc *consentSubmissionUsecase) RetryFailedExports(ctx context.Context, batchSize int) (int, error) {
	staleBefore := uc.now().UTC().Add(-uc.pendingExportStaleAfter())
	submissions, err := uc.ConsentSubmissionRepository.FindRetryableExports(ctx, staleBefore, batchSize)
	if err != nil {
		uc.Log.Error("consentSubmissionUsecase.RetryFailedExports error fetching retryable exports",
			zap.Int(constvars.LoggingBatchSizeKey, batchSize),
			zap.Error(err),
		)
		return 0, err
	}

	exported := 0
	for i := range submissions {
		if ctx.Err() != nil {
			break
		}
		if uc.export(ctx, &submissions[i]) {
			exported++
		}
	}

	uc.Log.Info("consentSubmissionUsecase.RetryFailedExports finished",
		zap.Int(constvars.LoggingBatchSizeKey, len(submissions)),
		zap.Int(constvars.LoggingExportedCountKey, exported),
	)
	return exported, nil
}

// export runs the exporter and records the outcome on submission and in the
// repository. It reports whether the export succeeded.
func (uc *consentSubmissionUsecase) export(ctx context.Context, submission *models.ConsentSubmission) bool {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	exportCtx, cancel := context.WithTimeout(ctx, uc.exportTimeout())
	defer cancel()

	submission.ExportAttempts++
	documentObjectKey, err := uc.Exporter.Export(exportCtx, submission)
	if err != nil {
		exportErr := exceptions.ErrExportConsentSubmission(err, submission.ID)
		uc.Log.Warn("consentSubmissionUsecase.export error exporting submission",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSubmissionIDKey, submission.ID),
			zap.Error(exportErr),
		)
		submission.ExportStatus = constvars.ExportStatusFailed
		submission.ExportError = err.Error()

		markErr := uc.ConsentSubmissionRepository.MarkExportFailed(ctx, submission.ID, submission.ExportError)
		if markErr != nil {
			uc.Log.Error("consentSubmissionUsecase.export error marking export as failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSubmissionIDKey, submission.ID),
				zap.Error(markErr),
			)
		}
		return false
	}

	exportedAt := uc.now().UTC().Truncate(time.Millisecond)
	err = uc.ConsentSubmissionRepository.MarkExported(ctx, submission.ID, documentObjectKey, exportedAt)
	if err != nil {
		// the document is out; a later retry overwrites the same object
		uc.Log.Error("consentSubmissionUsecase.export error marking submission as exported",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSubmissionIDKey, submission.ID),
			zap.Error(err),
		)
		return false
	}

	submission.ExportStatus = constvars.ExportStatusExported
	submission.ExportError = ""
	submission.DocumentObjectKey = documentObjectKey
	submission.ExportedAt = &exportedAt
	return true
}

func (uc *consentSubmissionUsecase) uploadSignature(ctx context.Context, submissionID, rawSignature string) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	signature, err := utils.ParseSignature(rawSignature)
	if err != nil {
		uc.Log.Info("consentSubmissionUsecase.uploadSignature invalid signature",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrInvalidSignature(err)
	}

	objectName, err := uc.Storage.UploadObject(ctx, &requests.UploadObject{
		BucketName:  uc.InternalConfig.Minio.SignatureBucketName,
		ObjectName:  utils.GenerateSignatureObjectName(submissionID, signature.FileExtension),
		ContentType: signature.ContentType,
		Data:        signature.Data,
	})
	if err != nil {
		uc.Log.Error("consentSubmissionUsecase.uploadSignature error uploading signature",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketNameKey, uc.InternalConfig.Minio.SignatureBucketName),
			zap.Error(err),
		)
		return "", err
	}
	return objectName, nil
}

// pendingExportStaleAfter bounds how long SubmitConsent may keep a record
// pending: its request deadline plus the export deadline.
func (uc *consentSubmissionUsecase) pendingExportStaleAfter() time.Duration {
	requestTimeout := time.Duration(uc.InternalConfig.App.RequestTimeoutInSeconds) * time.Second
	return requestTimeout + uc.exportTimeout()
}

func (uc *consentSubmissionUsecase) exportTimeout() time.Duration {
	if seconds := uc.InternalConfig.ConsentForm.ExportTimeoutInSeconds; seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	return defaultExportTimeout
}

// baseFieldViolations validates the identity fields of request and reports
// them keyed by their JSON names, the same keys the form schema reserves.
func baseFieldViolations(request *requests.SubmitConsent) formschema.Violations {
	violations := make(formschema.Violations)
	err := utils.ValidateStruct(request)
	if err == nil {
		return violations
	}

	messages := exceptions.FormatValidationErrors(err)
	if len(messages) == 0 {
		violations["request"] = formschema.Violation{Field: "request", Message: err.Error()}
		return violations
	}
	for field, message := range messages {
		violations[field] = formschema.Violation{Field: field, Message: message}
	}
	return violations
}

func buildConsentHeader(submittedAt time.Time, ipAddress, userAgent string) models.ConsentHeader {
	date := utils.FormatPortugueseDate(submittedAt)
	clock := utils.FormatConsentTime(submittedAt)
	return models.ConsentHeader{
		Date:      date,
		Time:      clock,
		IP:        ipAddress,
		Formatted: fmt.Sprintf(constvars.ConsentHeaderFormattedFormat, date, clock),
		UserAgent: userAgent,
	}
}
