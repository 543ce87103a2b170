package utils

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/kralluz/imec-formularios-app/internal/pkg/constvars"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func GenerateSubmissionID() string {
	return uuid.NewString()
}

func GenerateSignatureObjectName(submissionID, fileExtension string) string {
	return fmt.Sprintf(constvars.ConsentSignatureObjectFormat, submissionID, fileExtension)
}

func GenerateDocumentObjectName(submissionID string) string {
	return fmt.Sprintf(constvars.ConsentDocumentObjectFormat, submissionID)
}

func GenerateConsentFormSchemaCacheKey(formID string, updatedAtUnixNano int64) string {
	return fmt.Sprintf(constvars.ConsentFormSchemaCacheKeyFormat, formID, updatedAtUnixNano)
}
