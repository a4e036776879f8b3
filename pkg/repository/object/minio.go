package object

import (
	"context"
	"fmt"
	"io"
	"net"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	errorsx "github.com/instill-ai/x/errors"

	"github.com/instill-ai/knowledge-backend/config"
)

type minioStorage struct {
	client *minio.Client
	bucket string
	logger *zap.Logger
}

// NewMinIOStorage creates a new object.Storage implementation using MinIO
func NewMinIOStorage(ctx context.Context, cfg config.MinioConfig, bucket string, logger *zap.Logger) (Storage, error) {
	endpoint := net.JoinHostPort(cfg.Host, cfg.Port)
	logger = logger.With(
		zap.String("host:port", endpoint),
		zap.String("user", cfg.User),
		zap.String("bucket", bucket),
	)

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.User, cfg.Password, ""),
		Secure: cfg.Secure,
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to MinIO: %w", err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	switch {
	case err != nil:
		logger.Warn("Couldn't check bucket existence", zap.Error(err))
	case !exists:
		logger.Warn("Bucket doesn't exist, downloads will fail until it is created")
	default:
		logger.Info("Connected to MinIO")
	}

	return &minioStorage{
		client: client,
		bucket: bucket,
		logger: logger,
	}, nil
}

// GetFile implements object.Storage.GetFile
func (m *minioStorage) GetFile(ctx context.Context, bucket string, filePath string) ([]byte, error) {
	if bucket == "" {
		bucket = m.bucket
	}

	object, err := m.client.GetObject(ctx, bucket, filePath, minio.GetObjectOptions{})
	if err != nil {
		return nil, errorsx.AddMessage(
			fmt.Errorf("getting object from MinIO: %w", err),
			minioMessage(err),
		)
	}
	defer object.Close()

	content, err := io.ReadAll(object)
	if err != nil {
		m.logger.Error("Failed to read object", zap.String("filePath", filePath), zap.Error(err))
		return nil, errorsx.AddMessage(
			fmt.Errorf("reading object from MinIO: %w", err),
			minioMessage(err),
		)
	}

	return content, nil
}

// GetBucket implements object.Storage.GetBucket
func (m *minioStorage) GetBucket() string {
	return m.bucket
}

func minioMessage(err error) string {
	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "NoSuchKey":
		return "Object not found in storage"
	case "NoSuchBucket":
		return "Storage bucket not found"
	case "":
		return err.Error()
	}
	return resp.Message
}
