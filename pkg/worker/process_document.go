package worker

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/instill-ai/knowledge-backend/pkg/logger"
	"github.com/instill-ai/knowledge-backend/pkg/pipeline"
	"github.com/instill-ai/knowledge-backend/pkg/repository"
	"github.com/instill-ai/knowledge-backend/pkg/repository/object"
	"github.com/instill-ai/knowledge-backend/pkg/types"

	kberrors "github.com/instill-ai/knowledge-backend/pkg/errors"
)

// ProcessDocumentResult is the outcome of a successful pipeline run.
type ProcessDocumentResult struct {
	DocumentUID types.DocumentUIDType
	ChunkCount  int
}

// ProcessDocument runs the ingestion pipeline on a document: the binary is
// fetched from the object storage, its text extracted and split into chunks,
// the chunks embedded and stored in place of the previous chunk set.
//
// The document moves to processing before any work starts and ends in ready
// or failed. A failed document carries the failure message under the "error"
// metadata key. An unknown document is reported with ErrNotFound and no status
// is written.
func (w *Worker) ProcessDocument(ctx context.Context, documentUID types.DocumentUIDType) (*ProcessDocumentResult, error) {
	logger, _ := logger.GetZapLogger(ctx)
	logger = logger.With(zap.String("documentUID", documentUID.String()))

	doc, err := w.repository.GetDocument(ctx, documentUID)
	if err != nil {
		if errors.Is(err, kberrors.ErrNotFound) {
			return nil, kberrors.Messagef(kberrors.ErrNotFound, "Document not found", err)
		}
		return nil, kberrors.Messagef(kberrors.ErrInternal, "Unable to load document", err)
	}

	release, err := w.locker.Acquire(ctx, documentUID)
	if err != nil {
		return nil, err
	}
	defer release()

	if _, err := w.repository.UpdateDocumentStatus(ctx, documentUID, repository.DocumentStatusUpdate{
		Status: types.DocumentStatusProcessing,
	}); err != nil {
		return nil, kberrors.Messagef(kberrors.ErrInternal, "Unable to update document status", err)
	}

	start := time.Now()
	logger.Info("Processing document", zap.String("fileName", doc.FileName), zap.String("fileType", doc.FileType))

	chunkCount, err := w.runSafely(ctx, doc)
	if err != nil {
		logger.Error("Document processing failed", zap.Error(err))
		w.markFailed(ctx, documentUID, err, logger)
		return nil, err
	}

	if _, err := w.repository.UpdateDocumentStatus(ctx, documentUID, repository.DocumentStatusUpdate{
		Status:     types.DocumentStatusReady,
		ChunkCount: chunkCount,
	}); err != nil {
		err = kberrors.Messagef(kberrors.ErrInternal, "Unable to update document status", err)
		logger.Error("Failed to mark document as ready", zap.Error(err))
		w.markFailed(ctx, documentUID, err, logger)
		return nil, err
	}

	logger.Info("Document processed",
		zap.Int("chunkCount", chunkCount),
		zap.Duration("duration", time.Since(start)),
	)

	return &ProcessDocumentResult{DocumentUID: documentUID, ChunkCount: chunkCount}, nil
}

// markFailed records the failure on the document. The failure must be
// recorded even if the caller has gone away.
func (w *Worker) markFailed(ctx context.Context, documentUID types.DocumentUIDType, cause error, logger *zap.Logger) {
	if _, err := w.repository.UpdateDocumentStatus(context.WithoutCancel(ctx), documentUID, repository.DocumentStatusUpdate{
		Status: types.DocumentStatusFailed,
		Error:  kberrors.Message(cause),
	}); err != nil {
		logger.Error("Failed to mark document as failed", zap.Error(err))
	}
}

func (w *Worker) runSafely(ctx context.Context, doc *repository.DocumentModel) (chunkCount int, err error) {
	defer func() {
		if r := recover(); r != nil {
			w.log.Error("Panic while processing document",
				zap.String("documentUID", doc.UID.String()),
				zap.Any("panic", r),
				zap.ByteString("stack", debug.Stack()),
			)
			err = kberrors.Messagef(kberrors.ErrInternal, "Internal error while processing document", fmt.Errorf("panic: %v", r))
		}
	}()

	return w.run(ctx, doc)
}

func (w *Worker) run(ctx context.Context, doc *repository.DocumentModel) (int, error) {
	raw, err := w.fetch(ctx, doc)
	if err != nil {
		return 0, err
	}

	text := pipeline.ExtractText(raw, doc.FileType)
	chunks := w.splitter.SplitChunks(text)
	if len(chunks) == 0 {
		return 0, kberrors.ErrNoExtractableText
	}

	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}

	vectors, err := BatchWithFallback(ctx, texts, w.embedBatchSize, w.embedder.EmbedTexts, w.embedder.EmbedText)
	if err != nil {
		return 0, kberrors.Messagef(
			kberrors.ErrEmbeddingFailed,
			"Failed to generate embeddings: "+kberrors.Message(err),
			err,
		)
	}

	metadata := repository.ChunkMetadata{
		FileName:   doc.FileName,
		Title:      doc.Title,
		ChunkTotal: len(chunks),
	}
	records := make([]repository.EmbeddingChunkModel, len(chunks))
	for i, c := range chunks {
		records[i] = repository.EmbeddingChunkModel{
			KnowledgeBaseUID: doc.UID,
			TenantUID:        doc.TenantUID,
			ChunkIndex:       c.Index,
			Content:          c.Text,
			Embedding:        vectors[i],
			Tokens:           c.Tokens,
			Metadata:         datatypes.NewJSONType(metadata),
		}
	}

	if err := w.repository.ReplaceEmbeddingChunks(ctx, doc.UID, records, w.insertBatchSize); err != nil {
		return 0, kberrors.Messagef(kberrors.ErrPersistFailed, "Failed to store document chunks", err)
	}

	return len(records), nil
}

func (w *Worker) fetch(ctx context.Context, doc *repository.DocumentModel) ([]byte, error) {
	if doc.FileURL == nil || *doc.FileURL == "" {
		return nil, kberrors.Messagef(kberrors.ErrFetchFailed, "Document has no source location", nil)
	}

	path := object.ResolveStoragePath(*doc.FileURL, w.bucket)
	raw, err := w.storage.GetFile(ctx, w.bucket, path)
	if err != nil {
		return nil, kberrors.Messagef(
			kberrors.ErrFetchFailed,
			"Failed to download document: "+kberrors.Message(err),
			err,
		)
	}

	return raw, nil
}
