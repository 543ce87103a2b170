package contracts

import (
	"context"

	"github.com/kralluz/imec-formularios-app/internal/pkg/dto/requests"
)

type Storage interface {
	EnsureBucket(ctx context.Context, bucketName string) error
	UploadObject(ctx context.Context, request *requests.UploadObject) (string, error)
}
