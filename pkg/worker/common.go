package worker

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/instill-ai/knowledge-backend/config"
	"github.com/instill-ai/knowledge-backend/pkg/ai"
	"github.com/instill-ai/knowledge-backend/pkg/repository"
	"github.com/instill-ai/knowledge-backend/pkg/repository/object"
)

// Storage providers.
const (
	StorageProviderMinIO = "minio"
	StorageProviderGCS   = "gcs"
)

// NewFromConfig builds a worker and its collaborators from the application
// configuration. The returned function releases the clients it opened.
func NewFromConfig(ctx context.Context, cfg config.AppConfig, db *gorm.DB, logger *zap.Logger) (*Worker, func(), error) {
	storage, err := newStorage(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	embedder, err := ai.NewEmbedder(ctx, cfg.Embedding, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("creating embedder: %w", err)
	}

	cleanup := func() {}

	var locker Locker
	if cfg.Pipeline.Lock.Enabled {
		redisClient := redis.NewClient(&cfg.Cache.Redis.RedisOptions)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			_ = redisClient.Close()
			return nil, nil, fmt.Errorf("connecting to redis: %w", err)
		}
		locker = NewRedisLocker(redisClient, cfg.Pipeline.Lock.TTL)
		cleanup = func() { _ = redisClient.Close() }
		logger.Info("Per-document lock enabled", zap.Duration("ttl", cfg.Pipeline.Lock.TTL))
	}

	w, err := New(Config{
		Repository:      repository.NewRepository(db),
		Storage:         storage,
		Embedder:        embedder,
		Locker:          locker,
		Bucket:          cfg.Storage.Bucket,
		ChunkSize:       cfg.Pipeline.ChunkSize,
		ChunkOverlap:    cfg.Pipeline.ChunkOverlap,
		EmbedBatchSize:  cfg.Pipeline.EmbedBatchSize,
		InsertBatchSize: cfg.Pipeline.InsertBatchSize,
	}, logger)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	return w, cleanup, nil
}

func newStorage(ctx context.Context, cfg config.AppConfig, logger *zap.Logger) (object.Storage, error) {
	switch cfg.Storage.Provider {
	case StorageProviderMinIO, "":
		bucket := cfg.Storage.Bucket
		if bucket == "" {
			bucket = cfg.Minio.BucketName
		}
		storage, err := object.NewMinIOStorage(ctx, cfg.Minio, bucket, logger)
		if err != nil {
			return nil, fmt.Errorf("creating MinIO storage: %w", err)
		}
		return storage, nil
	case StorageProviderGCS:
		gcsConfig := cfg.GCS
		if cfg.Storage.Bucket != "" {
			gcsConfig.Bucket = cfg.Storage.Bucket
		}
		storage, err := object.NewGCSStorage(ctx, gcsConfig, logger)
		if err != nil {
			return nil, fmt.Errorf("creating GCS storage: %w", err)
		}
		return storage, nil
	}

	return nil, fmt.Errorf("unknown storage provider %q", cfg.Storage.Provider)
}
