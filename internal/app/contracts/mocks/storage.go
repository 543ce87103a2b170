package mocks

import (
	"context"

	"github.com/kralluz/imec-formularios-app/internal/pkg/dto/requests"
	"github.com/stretchr/testify/mock"
)

type Storage struct {
	mock.Mock
}

func (m *Storage) EnsureBucket(ctx context.Context, bucketName string) error {
	args := m.Called(ctx, bucketName)
	return args.Error(0)
}

func (m *Storage) UploadObject(ctx context.Context, request *requests.UploadObject) (string, error) {
	args := m.Called(ctx, request)
	return args.String(0), args.Error(1)
}
