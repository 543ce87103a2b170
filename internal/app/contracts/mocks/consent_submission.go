package mocks

import (
	"context"
	"time"

	"github.com/kralluz/imec-formularios-app/internal/app/models"
	"github.com/kralluz/imec-formularios-app/internal/pkg/dto/requests"
	"github.com/kralluz/imec-formularios-app/internal/pkg/dto/responses"
	"github.com/stretchr/testify/mock"
)

type ConsentSubmissionRepository struct {
	mock.Mock
}

func (m *ConsentSubmissionRepository) CreateSubmission(ctx context.Context, submission *models.ConsentSubmission) error {
	args := m.Called(ctx, submission)
	return args.Error(0)
}

func (m *ConsentSubmissionRepository) FindByID(ctx context.Context, submissionID string) (*models.ConsentSubmission, error) {
	args := m.Called(ctx, submissionID)
	submission, _ := args.Get(0).(*models.ConsentSubmission)
	return submission, args.Error(1)
}

func (m *ConsentSubmissionRepository) FindByFormID(ctx context.Context, formID string) ([]models.ConsentSubmission, error) {
	args := m.Called(ctx, formID)
	submissions, _ := args.Get(0).([]models.ConsentSubmission)
	return submissions, args.Error(1)
}

func (m *ConsentSubmissionRepository) FindRetryableExports(ctx context.Context, staleBefore time.Time, limit int) ([]models.ConsentSubmission, error) {
	args := m.Called(ctx, staleBefore, limit)
	submissions, _ := args.Get(0).([]models.ConsentSubmission)
	return submissions, args.Error(1)
}

func (m *ConsentSubmissionRepository) MarkExported(ctx context.Context, submissionID, documentObjectKey string, exportedAt time.Time) error {
	args := m.Called(ctx, submissionID, documentObjectKey, exportedAt)
	return args.Error(0)
}

func (m *ConsentSubmissionRepository) MarkExportFailed(ctx context.Context, submissionID, exportError string) error {
	args := m.Called(ctx, submissionID, exportError)
	return args.Error(0)
}

type ConsentSubmissionUsecase struct {
	mock.Mock
}

func (m *ConsentSubmissionUsecase) SubmitConsent(ctx context.Context, request *requests.SubmitConsent) (*responses.ConsentSubmission, error) {
	args := m.Called(ctx, request)
	submission, _ := args.Get(0).(*responses.ConsentSubmission)
	return submission, args.Error(1)
}

func (m *ConsentSubmissionUsecase) FindSubmissionByID(ctx context.Context, submissionID string) (*responses.ConsentSubmission, error) {
	args := m.Called(ctx, submissionID)
	submission, _ := args.Get(0).(*responses.ConsentSubmission)
	return submission, args.Error(1)
}

func (m *ConsentSubmissionUsecase) FindSubmissionsByForm(ctx context.Context, request *requests.FindSubmissionsByForm) ([]responses.ConsentSubmission, error) {
	args := m.Called(ctx, request)
	submissions, _ := args.Get(0).([]responses.ConsentSubmission)
	return submissions, args.Error(1)
}

func (m *ConsentSubmissionUsecase) RetryFailedExports(ctx context.Context, batchSize int) (int, error) {
	args := m.Called(ctx, batchSize)
	return args.Int(0), args.Error(1)
}
