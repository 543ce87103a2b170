package exporter

import (
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/kralluz/imec-formularios-app/internal/app/contracts"
	"github.com/kralluz/imec-formularios-app/internal/app/models"
	"github.com/kralluz/imec-formularios-app/internal/pkg/constvars"
	"github.com/kralluz/imec-formularios-app/internal/pkg/dto/requests"
	"github.com/kralluz/imec-formularios-app/internal/pkg/exceptions"
	"github.com/kralluz/imec-formularios-app/internal/pkg/utils"
	"go.uber.org/zap"
)

// ConsentDocument is the exported form of a submission. The signature image
// itself is never embedded, only its object key.
type ConsentDocument struct {
	SubmissionID       string               `json:"submissionId"`
	FormID             string               `json:"formId"`
	Header             models.ConsentHeader `json:"header"`
	PatientName        string               `json:"patientName"`
	CPF                string               `json:"cpf"`
	RG                 string               `json:"rg"`
	BirthDate          string               `json:"birthDate"`
	Responses          map[string]any       `json:"responses"`
	SignatureObjectKey string               `json:"signatureObjectKey,omitempty"`
	GeneratedAt        time.Time            `json:"generatedAt"`
}

type consentExporter struct {
	Storage    contracts.Storage
	Publisher  contracts.MessagePublisher
	BucketName string
	Log        *zap.Logger
}

func NewConsentExporter(storage contracts.Storage, publisher contracts.MessagePublisher, bucketName string, logger *zap.Logger) contracts.ConsentExporter {
	return &consentExporter{
		Storage:    storage,
		Publisher:  publisher,
		BucketName: bucketName,
		Log:        logger,
	}
}

// Export uploads the document and then announces it. A failed announcement
// fails the export so the retry worker publishes again; re-uploading the
// document overwrites the same object.
func (e *consentExporter) Export(ctx context.Context, submission *models.ConsentSubmission) (string, error) {
	requestID := utils.GetRequestID(ctx)
	e.Log.Info("consentExporter.Export called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSubmissionIDKey, submission.ID),
	)

	generatedAt := time.Now().UTC()
	document := ConsentDocument{
		SubmissionID:       submission.ID,
		FormID:             submission.FormID,
		Header:             submission.Header,
		PatientName:        submission.PatientName,
		CPF:                submission.CPF,
		RG:                 submission.RG,
		BirthDate:          submission.BirthDate,
		Responses:          submission.Responses,
		SignatureObjectKey: submission.SignatureObjectKey,
		GeneratedAt:        generatedAt,
	}
	if document.Responses == nil {
		document.Responses = map[string]any{}
	}

	body, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		e.Log.Error("consentExporter.Export error marshaling document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	objectName, err := e.Storage.UploadObject(ctx, &requests.UploadObject{
		BucketName:  e.BucketName,
		ObjectName:  utils.GenerateDocumentObjectName(submission.ID),
		ContentType: constvars.MIMEApplicationJSON,
		Data:        body,
	})
	if err != nil {
		e.Log.Error("consentExporter.Export error uploading document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketNameKey, e.BucketName),
			zap.Error(err),
		)
		return "", err
	}

	err = e.Publisher.Publish(ctx, constvars.ConsentSubmissionExportedEvent, requests.ConsentSubmissionExported{
		SubmissionID:      submission.ID,
		FormID:            submission.FormID,
		BucketName:        e.BucketName,
		DocumentObjectKey: objectName,
		ExportedAt:        generatedAt,
	})
	if err != nil {
		e.Log.Error("consentExporter.Export error publishing export event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return "", err
	}

	e.Log.Info("consentExporter.Export succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSubmissionIDKey, submission.ID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)
	return objectName, nil
}
