package storage

import (
	"bytes"
	"context"

	"github.com/kralluz/imec-formularios-app/internal/app/contracts"
	"github.com/kralluz/imec-formularios-app/internal/pkg/constvars"
	"github.com/kralluz/imec-formularios-app/internal/pkg/dto/requests"
	"github.com/kralluz/imec-formularios-app/internal/pkg/exceptions"
	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
}

func NewMinioStorage(minioClient *minio.Client) contracts.Storage {
	return &minioStorage{
		MinioClient: minioClient,
	}
}

func (m *minioStorage) EnsureBucket(ctx context.Context, bucketName string) error {
	exists, err := m.MinioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return exceptions.ErrMinioEnsureBucket(err, bucketName)
	}
	if exists {
		return nil
	}

	err = m.MinioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
	if err != nil {
		return exceptions.ErrMinioEnsureBucket(err, bucketName)
	}
	return nil
}

func (m *minioStorage) UploadObject(ctx context.Context, request *requests.UploadObject) (string, error) {
	contentType := request.ContentType
	if contentType == "" {
		contentType = constvars.MIMEOctetStream
	}

	_, err := m.MinioClient.PutObject(
		ctx,
		request.BucketName,
		request.ObjectName,
		bytes.NewReader(request.Data),
		int64(len(request.Data)),
		minio.PutObjectOptions{
			ContentType: contentType,
		},
	)
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, request.BucketName)
	}

	return request.ObjectName, nil
}
