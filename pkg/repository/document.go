package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/instill-ai/knowledge-backend/pkg/constant"
	"github.com/instill-ai/knowledge-backend/pkg/types"

	errorsx "github.com/instill-ai/x/errors"
)

// DocumentTableName is the table holding the knowledge base document records.
const DocumentTableName = "knowledge_base"

// Document is the interface for the document record repository.
type Document interface {
	CreateDocument(ctx context.Context, doc DocumentModel) (*DocumentModel, error)
	GetDocument(ctx context.Context, uid types.DocumentUIDType) (*DocumentModel, error)
	UpdateDocumentStatus(ctx context.Context, uid types.DocumentUIDType, update DocumentStatusUpdate) (*DocumentModel, error)
	ListDocumentUIDsByStatus(ctx context.Context, statuses []types.DocumentStatus, limit int) ([]types.DocumentUIDType, error)
}

// DocumentModel is a knowledge base document. The upload flow creates it in
// pending status with its source location in FileURL.
type DocumentModel struct {
	UID        types.DocumentUIDType `gorm:"column:uid;type:uuid;primaryKey" json:"uid"`
	TenantUID  types.TenantUIDType   `gorm:"column:tenant_uid;type:uuid" json:"tenant_uid"`
	Title      string                `gorm:"column:title;size:255" json:"title"`
	FileName   string                `gorm:"column:file_name;size:255" json:"file_name"`
	FileType   string                `gorm:"column:file_type;size:255" json:"file_type"`
	FileURL    *string               `gorm:"column:file_url" json:"file_url"`
	Status     types.DocumentStatus  `gorm:"column:status;size:32;not null" json:"status"`
	ChunkCount *int                  `gorm:"column:chunk_count" json:"chunk_count"`
	Metadata   datatypes.JSONMap     `gorm:"column:metadata;type:jsonb" json:"metadata"`
	CreateTime time.Time             `gorm:"column:create_time;not null;autoCreateTime" json:"create_time"`
	UpdateTime time.Time             `gorm:"column:update_time;not null;autoUpdateTime" json:"update_time"`
}

// DocumentColumns is the columns for the document table
type DocumentColumns struct {
	UID        string
	TenantUID  string
	Title      string
	FileName   string
	FileType   string
	FileURL    string
	Status     string
	ChunkCount string
	Metadata   string
	CreateTime string
	UpdateTime string
}

// DocumentColumn is the column for the document table
var DocumentColumn = DocumentColumns{
	UID:        "uid",
	TenantUID:  "tenant_uid",
	Title:      "title",
	FileName:   "file_name",
	FileType:   "file_type",
	FileURL:    "file_url",
	Status:     "status",
	ChunkCount: "chunk_count",
	Metadata:   "metadata",
	CreateTime: "create_time",
	UpdateTime: "update_time",
}

// TableName returns the table name of the document
func (DocumentModel) TableName() string {
	return DocumentTableName
}

// BeforeCreate assigns a UID and an initial status to new records.
func (d *DocumentModel) BeforeCreate(tx *gorm.DB) error {
	if d.UID == uuid.Nil {
		uid, err := uuid.NewV4()
		if err != nil {
			return fmt.Errorf("generating document uid: %w", err)
		}
		d.UID = uid
	}
	if d.Status == "" {
		d.Status = types.DocumentStatusPending
	}
	if d.Metadata == nil {
		d.Metadata = datatypes.JSONMap{}
	}
	return nil
}

// ErrorMessage returns the failure reason stored in the metadata, if any.
func (d *DocumentModel) ErrorMessage() string {
	if d.Metadata == nil {
		return ""
	}
	msg, _ := d.Metadata[constant.MetadataErrorKey].(string)
	return msg
}

// DocumentStatusUpdate describes a status transition.
type DocumentStatusUpdate struct {
	Status types.DocumentStatus
	// ChunkCount is written when the target status is ready.
	ChunkCount int
	// Error is merged into the metadata when the target status is failed.
	Error string
}

// ErrInvalidTransition is returned when a status update isn't allowed from
// the document's current status.
var ErrInvalidTransition = errors.New("invalid status transition")

// CreateDocument inserts a document record.
func (r *repository) CreateDocument(ctx context.Context, doc DocumentModel) (*DocumentModel, error) {
	if err := r.db.WithContext(ctx).Create(&doc).Error; err != nil {
		return nil, fmt.Errorf("creating document: %w", err)
	}
	return &doc, nil
}

// GetDocument fetches a document record by UID.
func (r *repository) GetDocument(ctx context.Context, uid types.DocumentUIDType) (*DocumentModel, error) {
	var doc DocumentModel
	err := r.db.WithContext(ctx).
		Where(DocumentColumn.UID+" = ?", uid).
		First(&doc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("document %s: %w", uid, errorsx.ErrNotFound)
		}
		return nil, fmt.Errorf("fetching document: %w", err)
	}
	return &doc, nil
}

// UpdateDocumentStatus is the only write path for the status, chunk_count and
// metadata.error fields of a document.
//
// Moving to ready records the chunk count and clears a previous failure
// reason. Moving to failed merges the reason into the metadata and keeps the
// other keys.
func (r *repository) UpdateDocumentStatus(
	ctx context.Context,
	uid types.DocumentUIDType,
	update DocumentStatusUpdate,
) (*DocumentModel, error) {
	var updated DocumentModel

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(DocumentColumn.UID+" = ?", uid).First(&updated).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("document %s: %w", uid, errorsx.ErrNotFound)
			}
			return err
		}

		if !updated.Status.CanTransitionTo(update.Status) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, updated.Status, update.Status)
		}

		metadata := datatypes.JSONMap{}
		for k, v := range updated.Metadata {
			metadata[k] = v
		}

		updateMap := map[string]any{
			DocumentColumn.Status:     update.Status,
			DocumentColumn.UpdateTime: time.Now().UTC(),
		}

		switch update.Status {
		case types.DocumentStatusReady:
			updateMap[DocumentColumn.ChunkCount] = update.ChunkCount
			if _, ok := metadata[constant.MetadataErrorKey]; ok {
				delete(metadata, constant.MetadataErrorKey)
				updateMap[DocumentColumn.Metadata] = metadata
			}
		case types.DocumentStatusFailed:
			metadata[constant.MetadataErrorKey] = truncate(update.Error, constant.MaxErrorMessageLength)
			updateMap[DocumentColumn.Metadata] = metadata
		}

		if err := tx.Model(&DocumentModel{}).
			Where(DocumentColumn.UID+" = ?", uid).
			Updates(updateMap).Error; err != nil {
			return err
		}

		return tx.Where(DocumentColumn.UID+" = ?", uid).First(&updated).Error
	})
	if err != nil {
		return nil, fmt.Errorf("updating document status: %w", err)
	}

	return &updated, nil
}

// ListDocumentUIDsByStatus returns the UIDs of the documents in any of the
// given statuses, oldest first.
func (r *repository) ListDocumentUIDsByStatus(
	ctx context.Context,
	statuses []types.DocumentStatus,
	limit int,
) ([]types.DocumentUIDType, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	limit = min(limit, MaxListLimit)

	var uids []types.DocumentUIDType
	err := r.db.WithContext(ctx).
		Model(&DocumentModel{}).
		Where(DocumentColumn.Status+" IN ?", statuses).
		Order(DocumentColumn.CreateTime).
		Limit(limit).
		Pluck(DocumentColumn.UID, &uids).Error
	if err != nil {
		return nil, fmt.Errorf("listing documents by status: %w", err)
	}
	return uids, nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
