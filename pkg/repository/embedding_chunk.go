package repository

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/instill-ai/knowledge-backend/pkg/logger"
	"github.com/instill-ai/knowledge-backend/pkg/types"
)

// EmbeddingChunkTableName is the table holding the embedded chunks of the
// knowledge base documents.
const EmbeddingChunkTableName = "knowledge_base_embedding"

// EmbeddingChunk is the interface for the embedding chunk repository
type EmbeddingChunk interface {
	ReplaceEmbeddingChunks(ctx context.Context, documentUID types.DocumentUIDType, chunks []EmbeddingChunkModel, batchSize int) error
	ListEmbeddingChunks(ctx context.Context, documentUID types.DocumentUIDType) ([]EmbeddingChunkModel, error)
	CountEmbeddingChunks(ctx context.Context, documentUID types.DocumentUIDType) (int64, error)
}

// EmbeddingChunkModel is a chunk of document text along with its embedding.
type EmbeddingChunkModel struct {
	UID              types.ChunkUIDType                `gorm:"column:uid;type:uuid;primaryKey" json:"uid"`
	KnowledgeBaseUID types.DocumentUIDType             `gorm:"column:knowledge_base_uid;type:uuid;not null;uniqueIndex:idx_knowledge_base_embedding_position" json:"knowledge_base_uid"`
	TenantUID        types.TenantUIDType               `gorm:"column:tenant_uid;type:uuid" json:"tenant_uid"`
	ChunkIndex       int                               `gorm:"column:chunk_index;not null;uniqueIndex:idx_knowledge_base_embedding_position" json:"chunk_index"`
	Content          string                            `gorm:"column:content;type:text;not null" json:"content"`
	Embedding        Vector                            `gorm:"column:embedding;type:jsonb;not null" json:"embedding"`
	Tokens           int                               `gorm:"column:tokens" json:"tokens"`
	Metadata         datatypes.JSONType[ChunkMetadata] `gorm:"column:metadata;type:jsonb" json:"metadata"`
	CreateTime       time.Time                         `gorm:"column:create_time;not null;autoCreateTime" json:"create_time"`
}

// ChunkMetadata is the document information copied onto every chunk so
// retrieval doesn't need to join the document table.
type ChunkMetadata struct {
	FileName   string `json:"file_name"`
	Title      string `json:"title"`
	ChunkTotal int    `json:"chunk_total"`
}

// EmbeddingChunkColumns is the columns for the embedding chunk table
type EmbeddingChunkColumns struct {
	UID              string
	KnowledgeBaseUID string
	TenantUID        string
	ChunkIndex       string
	Content          string
	Embedding        string
	Tokens           string
	Metadata         string
	CreateTime       string
}

// EmbeddingChunkColumn is the column for the embedding chunk table
var EmbeddingChunkColumn = EmbeddingChunkColumns{
	UID:              "uid",
	KnowledgeBaseUID: "knowledge_base_uid",
	TenantUID:        "tenant_uid",
	ChunkIndex:       "chunk_index",
	Content:          "content",
	Embedding:        "embedding",
	Tokens:           "tokens",
	Metadata:         "metadata",
	CreateTime:       "create_time",
}

// TableName returns the table name of the embedding chunk
func (EmbeddingChunkModel) TableName() string {
	return EmbeddingChunkTableName
}

// BeforeCreate assigns a UID to new records.
func (e *EmbeddingChunkModel) BeforeCreate(tx *gorm.DB) error {
	if e.UID != uuid.Nil {
		return nil
	}
	uid, err := uuid.NewV4()
	if err != nil {
		return fmt.Errorf("generating chunk uid: %w", err)
	}
	e.UID = uid
	return nil
}

// Vector is the type for the embedding column
type Vector []float32

// Value implements the driver.Valuer interface
func (v Vector) Value() (driver.Value, error) {
	if v == nil {
		return nil, nil
	}
	r, err := json.Marshal([]float32(v))
	if err != nil {
		return nil, err
	}
	return string(r), nil
}

// Scan implements the sql.Scanner interface
func (v *Vector) Scan(value any) error {
	switch b := value.(type) {
	case nil:
		*v = nil
		return nil
	case []byte:
		return json.Unmarshal(b, (*[]float32)(v))
	case string:
		return json.Unmarshal([]byte(b), (*[]float32)(v))
	default:
		return fmt.Errorf("unsupported vector column type %T", value)
	}
}

// ReplaceEmbeddingChunks swaps the chunk set of a document. The existing
// chunks are deleted and the new ones inserted in batches of batchSize, all
// within one transaction: if any batch fails, the previous chunk set is kept.
func (r *repository) ReplaceEmbeddingChunks(
	ctx context.Context,
	documentUID types.DocumentUIDType,
	chunks []EmbeddingChunkModel,
	batchSize int,
) error {
	logger, _ := logger.GetZapLogger(ctx)

	if batchSize <= 0 {
		batchSize = len(chunks)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(EmbeddingChunkColumn.KnowledgeBaseUID+" = ?", documentUID).
			Delete(&EmbeddingChunkModel{}).Error; err != nil {
			return fmt.Errorf("deleting existing chunks: %w", err)
		}

		if len(chunks) == 0 {
			logger.Warn("No chunks to insert.", zap.String("documentUID", documentUID.String()))
			return nil
		}

		totalBatches := (len(chunks) + batchSize - 1) / batchSize
		for start := 0; start < len(chunks); start += batchSize {
			end := min(start+batchSize, len(chunks))
			batch := chunks[start:end]

			if err := tx.Create(&batch).Error; err != nil {
				return fmt.Errorf("inserting chunk batch %d/%d: %w", start/batchSize+1, totalBatches, err)
			}
		}

		logger.Debug("Chunks replaced.",
			zap.String("documentUID", documentUID.String()),
			zap.Int("chunkCount", len(chunks)),
			zap.Int("totalBatches", totalBatches),
		)

		return nil
	})
}

// ListEmbeddingChunks returns the chunks of a document in chunk order.
func (r *repository) ListEmbeddingChunks(ctx context.Context, documentUID types.DocumentUIDType) ([]EmbeddingChunkModel, error) {
	var chunks []EmbeddingChunkModel
	err := r.db.WithContext(ctx).
		Where(EmbeddingChunkColumn.KnowledgeBaseUID+" = ?", documentUID).
		Order(EmbeddingChunkColumn.ChunkIndex).
		Find(&chunks).Error
	if err != nil {
		return nil, fmt.Errorf("listing chunks: %w", err)
	}
	return chunks, nil
}

// CountEmbeddingChunks returns the number of chunks stored for a document.
func (r *repository) CountEmbeddingChunks(ctx context.Context, documentUID types.DocumentUIDType) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&EmbeddingChunkModel{}).
		Where(EmbeddingChunkColumn.KnowledgeBaseUID+" = ?", documentUID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("counting chunks: %w", err)
	}
	return count, nil
}
