package worker

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/instill-ai/knowledge-backend/pkg/ai"
	"github.com/instill-ai/knowledge-backend/pkg/constant"
	"github.com/instill-ai/knowledge-backend/pkg/pipeline"
	"github.com/instill-ai/knowledge-backend/pkg/repository"
	"github.com/instill-ai/knowledge-backend/pkg/repository/object"
)

// Config defines the collaborators and tunables of the worker.
type Config struct {
	Repository repository.Repository
	Storage    object.Storage
	Embedder   ai.Embedder
	// Locker is optional. Runs on the same document aren't serialized when
	// it is nil.
	Locker Locker

	// Bucket holds the document binaries. Defaults to the storage bucket.
	Bucket string

	ChunkSize       int
	ChunkOverlap    int
	EmbedBatchSize  int
	InsertBatchSize int
}

// Worker runs the ingestion pipeline on knowledge base documents.
type Worker struct {
	repository repository.Repository
	storage    object.Storage
	embedder   ai.Embedder
	locker     Locker
	splitter   *pipeline.TextSplitter

	bucket          string
	embedBatchSize  int
	insertBatchSize int

	log *zap.Logger
}

// New creates a new worker instance
func New(config Config, log *zap.Logger) (*Worker, error) {
	if config.Repository == nil || config.Storage == nil || config.Embedder == nil {
		return nil, fmt.Errorf("worker requires a repository, a storage and an embedder")
	}

	w := &Worker{
		repository:      config.Repository,
		storage:         config.Storage,
		embedder:        config.Embedder,
		locker:          config.Locker,
		splitter:        pipeline.NewTextSplitter(config.ChunkSize, config.ChunkOverlap),
		bucket:          config.Bucket,
		embedBatchSize:  config.EmbedBatchSize,
		insertBatchSize: config.InsertBatchSize,
		log:             log,
	}

	if w.locker == nil {
		w.locker = noopLocker{}
	}
	if w.bucket == "" {
		w.bucket = config.Storage.GetBucket()
	}
	if w.embedBatchSize <= 0 {
		w.embedBatchSize = constant.EmbedBatchSize
	}
	if w.insertBatchSize <= 0 {
		w.insertBatchSize = constant.InsertBatchSize
	}

	return w, nil
}
