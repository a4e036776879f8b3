package object

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	errorsx "github.com/instill-ai/x/errors"

	"github.com/instill-ai/knowledge-backend/config"
)

// gcsStorage implements Storage interface for Google Cloud Storage
type gcsStorage struct {
	client *storage.Client
	bucket string
	logger *zap.Logger
}

// NewGCSStorage creates a new object.Storage implementation using GCS
func NewGCSStorage(ctx context.Context, cfg config.GCSConfig, logger *zap.Logger) (Storage, error) {
	if cfg.Bucket == "" {
		return nil, errorsx.AddMessage(
			errorsx.ErrInvalidArgument,
			"GCS bucket name is required",
		)
	}

	var opts []option.ClientOption
	if cfg.SAKey != "" {
		key, err := unwrapServiceAccountKey([]byte(cfg.SAKey))
		if err != nil {
			return nil, errorsx.AddMessage(
				fmt.Errorf("parsing service account key: %w", err),
				"Unable to process service account credentials.",
			)
		}
		opts = append(opts, option.WithCredentialsJSON(key))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, errorsx.AddMessage(
			fmt.Errorf("creating GCS client: %w", err),
			"Unable to connect to Google Cloud Storage.",
		)
	}

	return &gcsStorage{
		client: client,
		bucket: cfg.Bucket,
		logger: logger.With(zap.String("bucket", cfg.Bucket), zap.String("projectID", cfg.ProjectID)),
	}, nil
}

// unwrapServiceAccountKey extracts the credentials from a Vault response
// (data.data) when the key is stored that way.
func unwrapServiceAccountKey(key []byte) ([]byte, error) {
	var vault struct {
		Data struct {
			Data map[string]any `json:"data"`
		} `json:"data"`
	}
	if err := json.Unmarshal(key, &vault); err != nil {
		return nil, err
	}
	if vault.Data.Data == nil {
		return key, nil
	}
	return json.Marshal(vault.Data.Data)
}

// GetFile implements object.Storage.GetFile
func (g *gcsStorage) GetFile(ctx context.Context, bucket string, filePath string) ([]byte, error) {
	if bucket == "" {
		bucket = g.bucket
	}

	reader, err := g.client.Bucket(bucket).Object(filePath).NewReader(ctx)
	if err != nil {
		msg := "Unable to read file from GCS."
		if errors.Is(err, storage.ErrObjectNotExist) {
			msg = "Object not found in storage"
		}
		return nil, errorsx.AddMessage(fmt.Errorf("reading GCS object: %w", err), msg)
	}
	defer reader.Close()

	content, err := io.ReadAll(reader)
	if err != nil {
		g.logger.Error("Failed to read object", zap.String("filePath", filePath), zap.Error(err))
		return nil, errorsx.AddMessage(
			fmt.Errorf("reading GCS object content: %w", err),
			"Failed to read file content from GCS.",
		)
	}

	return content, nil
}

// GetBucket implements object.Storage.GetBucket
func (g *gcsStorage) GetBucket() string {
	return g.bucket
}
