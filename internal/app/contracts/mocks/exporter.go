package mocks

import (
	"context"

	"github.com/kralluz/imec-formularios-app/internal/app/models"
	"github.com/stretchr/testify/mock"
)

type ConsentExporter struct {
	mock.Mock
}

func (m *ConsentExporter) Export(ctx context.Context, submission *models.ConsentSubmission) (string, error) {
	args := m.Called(ctx, submission)
	return args.String(0), args.Error(1)
}
