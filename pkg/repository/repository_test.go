package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	qt "github.com/frankban/quicktest"
	errorsx "github.com/instill-ai/x/errors"

	"github.com/instill-ai/knowledge-backend/pkg/repository"
	"github.com/instill-ai/knowledge-backend/pkg/types"
)

func newTestRepository(t *testing.T) (repository.Repository, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every connection to ":memory:" opens a distinct database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&repository.DocumentModel{}, &repository.EmbeddingChunkModel{}))

	return repository.NewRepository(db), db
}

func createDocument(t *testing.T, repo repository.Repository, metadata datatypes.JSONMap) *repository.DocumentModel {
	t.Helper()

	fileURL := "docs/handbook.txt"
	doc, err := repo.CreateDocument(context.Background(), repository.DocumentModel{
		TenantUID: uuid.Must(uuid.NewV4()),
		Title:     "Handbook",
		FileName:  "handbook.txt",
		FileType:  "text/plain",
		FileURL:   &fileURL,
		Metadata:  metadata,
	})
	require.NoError(t, err)
	return doc
}

func TestRepository_GetDocument(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	repo, _ := newTestRepository(t)

	c.Run("ok", func(c *qt.C) {
		created := createDocument(t, repo, nil)

		got, err := repo.GetDocument(ctx, created.UID)
		c.Assert(err, qt.IsNil)
		c.Check(got.UID, qt.Equals, created.UID)
		c.Check(got.Status, qt.Equals, types.DocumentStatusPending)
		c.Check(got.ChunkCount, qt.IsNil)
		c.Check(*got.FileURL, qt.Equals, "docs/handbook.txt")
	})

	c.Run("nok - not found", func(c *qt.C) {
		_, err := repo.GetDocument(ctx, uuid.Must(uuid.NewV4()))
		c.Check(errors.Is(err, errorsx.ErrNotFound), qt.IsTrue)
	})
}

func TestRepository_UpdateDocumentStatus(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	repo, _ := newTestRepository(t)

	doc := createDocument(t, repo, datatypes.JSONMap{"source": "upload"})

	updated, err := repo.UpdateDocumentStatus(ctx, doc.UID, repository.DocumentStatusUpdate{
		Status: types.DocumentStatusProcessing,
	})
	c.Assert(err, qt.IsNil)
	c.Check(updated.Status, qt.Equals, types.DocumentStatusProcessing)

	updated, err = repo.UpdateDocumentStatus(ctx, doc.UID, repository.DocumentStatusUpdate{
		Status: types.DocumentStatusFailed,
		Error:  "storage unavailable",
	})
	c.Assert(err, qt.IsNil)
	c.Check(updated.Status, qt.Equals, types.DocumentStatusFailed)
	c.Check(updated.ErrorMessage(), qt.Equals, "storage unavailable")
	c.Check(updated.Metadata["source"], qt.Equals, "upload")
	c.Check(updated.ChunkCount, qt.IsNil)

	_, err = repo.UpdateDocumentStatus(ctx, doc.UID, repository.DocumentStatusUpdate{
		Status: types.DocumentStatusProcessing,
	})
	c.Assert(err, qt.IsNil)

	updated, err = repo.UpdateDocumentStatus(ctx, doc.UID, repository.DocumentStatusUpdate{
		Status:     types.DocumentStatusReady,
		ChunkCount: 3,
	})
	c.Assert(err, qt.IsNil)
	c.Check(updated.Status, qt.Equals, types.DocumentStatusReady)
	c.Assert(updated.ChunkCount, qt.IsNotNil)
	c.Check(*updated.ChunkCount, qt.Equals, 3)
	c.Check(updated.ErrorMessage(), qt.Equals, "")
	c.Check(updated.Metadata["source"], qt.Equals, "upload")
}

func TestRepository_UpdateDocumentStatus_InvalidTransition(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	repo, _ := newTestRepository(t)

	doc := createDocument(t, repo, nil)

	_, err := repo.UpdateDocumentStatus(ctx, doc.UID, repository.DocumentStatusUpdate{
		Status:     types.DocumentStatusReady,
		ChunkCount: 1,
	})
	c.Check(errors.Is(err, repository.ErrInvalidTransition), qt.IsTrue)

	got, err := repo.GetDocument(ctx, doc.UID)
	c.Assert(err, qt.IsNil)
	c.Check(got.Status, qt.Equals, types.DocumentStatusPending)

	_, err = repo.UpdateDocumentStatus(ctx, uuid.Must(uuid.NewV4()), repository.DocumentStatusUpdate{
		Status: types.DocumentStatusProcessing,
	})
	c.Check(errors.Is(err, errorsx.ErrNotFound), qt.IsTrue)
}

func TestRepository_ListDocumentUIDsByStatus(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	repo, _ := newTestRepository(t)

	pending := createDocument(t, repo, nil)
	failed := createDocument(t, repo, nil)
	_, err := repo.UpdateDocumentStatus(ctx, failed.UID, repository.DocumentStatusUpdate{Status: types.DocumentStatusProcessing})
	c.Assert(err, qt.IsNil)
	_, err = repo.UpdateDocumentStatus(ctx, failed.UID, repository.DocumentStatusUpdate{Status: types.DocumentStatusFailed, Error: "boom"})
	c.Assert(err, qt.IsNil)

	uids, err := repo.ListDocumentUIDsByStatus(ctx, []types.DocumentStatus{types.DocumentStatusFailed}, 0)
	c.Assert(err, qt.IsNil)
	c.Check(uids, qt.DeepEquals, []types.DocumentUIDType{failed.UID})

	uids, err = repo.ListDocumentUIDsByStatus(ctx, []types.DocumentStatus{types.DocumentStatusPending, types.DocumentStatusFailed}, 10)
	c.Assert(err, qt.IsNil)
	c.Check(uids, qt.HasLen, 2)
	c.Check(uids, qt.Contains, pending.UID)
}

func newChunks(documentUID types.DocumentUIDType, n int) []repository.EmbeddingChunkModel {
	chunks := make([]repository.EmbeddingChunkModel, n)
	for i := range chunks {
		chunks[i] = repository.EmbeddingChunkModel{
			KnowledgeBaseUID: documentUID,
			ChunkIndex:       i,
			Content:          "chunk",
			Embedding:        repository.Vector{float32(i), 0.5},
			Tokens:           1,
			Metadata: datatypes.NewJSONType(repository.ChunkMetadata{
				FileName:   "handbook.txt",
				Title:      "Handbook",
				ChunkTotal: n,
			}),
		}
	}
	return chunks
}

func TestRepository_ReplaceEmbeddingChunks(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	repo, _ := newTestRepository(t)

	doc := createDocument(t, repo, nil)
	other := createDocument(t, repo, nil)

	c.Assert(repo.ReplaceEmbeddingChunks(ctx, other.UID, newChunks(other.UID, 2), 50), qt.IsNil)

	c.Run("inserts across several batches", func(c *qt.C) {
		err := repo.ReplaceEmbeddingChunks(ctx, doc.UID, newChunks(doc.UID, 120), 50)
		c.Assert(err, qt.IsNil)

		count, err := repo.CountEmbeddingChunks(ctx, doc.UID)
		c.Assert(err, qt.IsNil)
		c.Check(count, qt.Equals, int64(120))
	})

	c.Run("re-run replaces the previous set", func(c *qt.C) {
		err := repo.ReplaceEmbeddingChunks(ctx, doc.UID, newChunks(doc.UID, 2), 50)
		c.Assert(err, qt.IsNil)

		chunks, err := repo.ListEmbeddingChunks(ctx, doc.UID)
		c.Assert(err, qt.IsNil)
		c.Assert(chunks, qt.HasLen, 2)
		for i, chunk := range chunks {
			c.Check(chunk.ChunkIndex, qt.Equals, i)
			c.Check(chunk.Embedding, qt.DeepEquals, repository.Vector{float32(i), 0.5})
			c.Check(chunk.Metadata.Data().ChunkTotal, qt.Equals, 2)
			c.Check(chunk.UID, qt.Not(qt.Equals), uuid.Nil)
		}
	})

	c.Run("other documents are untouched", func(c *qt.C) {
		count, err := repo.CountEmbeddingChunks(ctx, other.UID)
		c.Assert(err, qt.IsNil)
		c.Check(count, qt.Equals, int64(2))
	})
}

func TestRepository_ReplaceEmbeddingChunks_RollsBack(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	repo, _ := newTestRepository(t)

	doc := createDocument(t, repo, nil)
	c.Assert(repo.ReplaceEmbeddingChunks(ctx, doc.UID, newChunks(doc.UID, 3), 50), qt.IsNil)

	// The duplicated position in the second batch violates the unique index.
	chunks := newChunks(doc.UID, 4)
	chunks[3].ChunkIndex = 0
	err := repo.ReplaceEmbeddingChunks(ctx, doc.UID, chunks, 2)
	c.Check(err, qt.IsNotNil)

	count, err := repo.CountEmbeddingChunks(ctx, doc.UID)
	c.Assert(err, qt.IsNil)
	c.Check(count, qt.Equals, int64(3))
}
