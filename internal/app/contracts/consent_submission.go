package contracts

import (
	"context"
	"time"

	"github.com/kralluz/imec-formularios-app/internal/app/models"
	"github.com/kralluz/imec-formularios-app/internal/pkg/dto/requests"
	"github.com/kralluz/imec-formularios-app/internal/pkg/dto/responses"
)

type ConsentSubmissionUsecase interface {
	SubmitConsent(ctx context.Context, request *requests.SubmitConsent) (*responses.ConsentSubmission, error)
	FindSubmissionByID(ctx context.Context, submissionID string) (*responses.ConsentSubmission, error)
	FindSubmissionsByForm(ctx context.Context, request *requests.FindSubmissionsByForm) ([]responses.ConsentSubmission, error)
	RetryFailedExports(ctx context.Context, batchSize int) (exported int, err error)
}

type ConsentSubmissionRepository interface {
	CreateSubmission(ctx context.Context, submission *models.ConsentSubmission) error
	FindByID(ctx context.Context, submissionID string) (*models.ConsentSubmission, error)
	FindByFormID(ctx context.Context, formID string) ([]models.ConsentSubmission, error)
	FindRetryableExports(ctx context.Context, staleBefore time.Time, limit int) ([]models.ConsentSubmission, error)
	MarkExported(ctx context.Context, submissionID, documentObjectKey string, exportedAt time.Time) error
	MarkExportFailed(ctx context.Context, submissionID, exportError string) error
}
