package worker_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/gojuno/minimock/v3"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	qt "github.com/frankban/quicktest"
	errorsx "github.com/instill-ai/x/errors"

	"github.com/instill-ai/knowledge-backend/pkg/mock"
	"github.com/instill-ai/knowledge-backend/pkg/repository"
	"github.com/instill-ai/knowledge-backend/pkg/types"
	"github.com/instill-ai/knowledge-backend/pkg/worker"

	kberrors "github.com/instill-ai/knowledge-backend/pkg/errors"
)

const (
	testBucket = "knowledge-base"
	testPath   = "docs/handbook.txt"
)

func vectorOf(text string) []float32 {
	return []float32{float32(len(text)), float32(strings.Count(text, " ")), 1}
}

func vectorsOf(texts []string) [][]float32 {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		out[i] = vectorOf(t)
	}
	return out
}

// recordingRepository records the status writes and can fail chunk writes or
// the write of a given status.
type recordingRepository struct {
	repository.Repository

	statuses    []types.DocumentStatus
	failReplace bool
	failStatus  types.DocumentStatus
}

func (r *recordingRepository) UpdateDocumentStatus(
	ctx context.Context,
	uid types.DocumentUIDType,
	update repository.DocumentStatusUpdate,
) (*repository.DocumentModel, error) {
	r.statuses = append(r.statuses, update.Status)
	if r.failStatus != "" && update.Status == r.failStatus {
		return nil, errors.New("connection reset")
	}
	return r.Repository.UpdateDocumentStatus(ctx, uid, update)
}

func (r *recordingRepository) ReplaceEmbeddingChunks(
	ctx context.Context,
	uid types.DocumentUIDType,
	chunks []repository.EmbeddingChunkModel,
	batchSize int,
) error {
	if r.failReplace {
		return errors.New("connection reset")
	}
	return r.Repository.ReplaceEmbeddingChunks(ctx, uid, chunks, batchSize)
}

type testEnv struct {
	repo     *recordingRepository
	storage  *mock.StorageMock
	embedder *mock.EmbedderMock
	locker   *mock.LockerMock
	worker   *worker.Worker

	files      map[string][]byte
	storageErr error
	released   int
}

func newTestDB(c *qt.C) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	c.Assert(err, qt.IsNil)
	sqlDB, err := db.DB()
	c.Assert(err, qt.IsNil)
	sqlDB.SetMaxOpenConns(1)
	c.Cleanup(func() { _ = sqlDB.Close() })
	c.Assert(db.AutoMigrate(&repository.DocumentModel{}, &repository.EmbeddingChunkModel{}), qt.IsNil)
	return db
}

// newTestEnv builds a worker on an in-memory database. The storage serves
// env.files and the lock is always free; the embedder has no behaviour until
// a test sets one.
func newTestEnv(c *qt.C) *testEnv {
	mc := minimock.NewController(c)

	env := &testEnv{
		repo:     &recordingRepository{Repository: repository.NewRepository(newTestDB(c))},
		storage:  mock.NewStorageMock(mc),
		embedder: mock.NewEmbedderMock(mc),
		locker:   mock.NewLockerMock(mc),
		files:    map[string][]byte{},
	}

	env.storage.GetBucketMock.Return(testBucket)
	env.storage.GetFileMock.Optional().Set(func(_ context.Context, bucket, filePath string) ([]byte, error) {
		c.Check(bucket, qt.Equals, testBucket)
		if env.storageErr != nil {
			return nil, env.storageErr
		}
		b, ok := env.files[filePath]
		if !ok {
			return nil, errorsx.AddMessage(errors.New("no such key"), "Object not found in storage")
		}
		return b, nil
	})
	env.locker.AcquireMock.Optional().Set(func(context.Context, types.DocumentUIDType) (worker.ReleaseFunc, error) {
		return func() { env.released++ }, nil
	})

	w, err := worker.New(worker.Config{
		Repository:      env.repo,
		Storage:         env.storage,
		Embedder:        env.embedder,
		Locker:          env.locker,
		EmbedBatchSize:  10,
		InsertBatchSize: 50,
	}, zap.NewNop())
	c.Assert(err, qt.IsNil)
	env.worker = w

	return env
}

func (env *testEnv) embedInBatches() {
	env.embedder.EmbedTextsMock.Set(func(_ context.Context, texts []string) ([][]float32, error) {
		return vectorsOf(texts), nil
	})
}

// twoChunkText splits into exactly two chunks with the default splitter.
func twoChunkText() string {
	return strings.Repeat("a", 900) + "\n\n" + strings.Repeat("b", 900) + "\n\n" + strings.Repeat("c", 1696)
}

// manyChunkText splits into n chunks, one per paragraph.
func manyChunkText(n int) string {
	ps := make([]string, n)
	for i := range ps {
		ps[i] = strings.Repeat(string(rune('a'+i%26)), 1500)
	}
	return strings.Join(ps, "\n\n")
}

func (env *testEnv) createDocument(c *qt.C, fileURL *string, content string) *repository.DocumentModel {
	if fileURL != nil {
		env.files[testPath] = []byte(content)
	}
	doc, err := env.repo.CreateDocument(context.Background(), repository.DocumentModel{
		TenantUID: uuid.Must(uuid.NewV4()),
		Title:     "Handbook",
		FileName:  "handbook.txt",
		FileType:  "text/plain",
		FileURL:   fileURL,
	})
	c.Assert(err, qt.IsNil)
	return doc
}

func location() *string {
	s := "https://storage.example.com/object/public/" + testBucket + "/" + testPath + "?token=abc"
	return &s
}

func (env *testEnv) reload(c *qt.C, uid types.DocumentUIDType) *repository.DocumentModel {
	doc, err := env.repo.GetDocument(context.Background(), uid)
	c.Assert(err, qt.IsNil)
	return doc
}

func TestProcessDocument(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	env := newTestEnv(c)
	env.embedInBatches()

	doc := env.createDocument(c, location(), twoChunkText())

	res, err := env.worker.ProcessDocument(ctx, doc.UID)
	c.Assert(err, qt.IsNil)
	c.Check(res.DocumentUID, qt.Equals, doc.UID)
	c.Check(res.ChunkCount, qt.Equals, 2)

	c.Check(env.storage.AfterGetFileCounter(), qt.Equals, uint64(1))
	c.Check(env.embedder.AfterEmbedTextsCounter(), qt.Equals, uint64(1))
	c.Check(env.repo.statuses, qt.DeepEquals, []types.DocumentStatus{
		types.DocumentStatusProcessing,
		types.DocumentStatusReady,
	})
	c.Check(env.released, qt.Equals, 1)

	got := env.reload(c, doc.UID)
	c.Check(got.Status, qt.Equals, types.DocumentStatusReady)
	c.Assert(got.ChunkCount, qt.IsNotNil)
	c.Check(*got.ChunkCount, qt.Equals, 2)

	chunks, err := env.repo.ListEmbeddingChunks(ctx, doc.UID)
	c.Assert(err, qt.IsNil)
	c.Assert(chunks, qt.HasLen, 2)
	for i, chunk := range chunks {
		c.Check(chunk.ChunkIndex, qt.Equals, i)
		c.Check(chunk.KnowledgeBaseUID, qt.Equals, doc.UID)
		c.Check(chunk.TenantUID, qt.Equals, doc.TenantUID)
		c.Check([]float32(chunk.Embedding), qt.DeepEquals, vectorOf(chunk.Content))
		c.Check(chunk.Tokens > 0, qt.IsTrue)
		c.Check(chunk.Metadata.Data(), qt.DeepEquals, repository.ChunkMetadata{
			FileName:   "handbook.txt",
			Title:      "Handbook",
			ChunkTotal: 2,
		})
	}
	c.Check(strings.HasPrefix(chunks[0].Content, "aaa"), qt.IsTrue)
	c.Check(strings.HasSuffix(chunks[1].Content, "ccc"), qt.IsTrue)
}

func TestProcessDocument_CallSequence(t *testing.T) {
	c := qt.New(t)
	mc := minimock.NewController(c)
	ctx := context.Background()

	doc := &repository.DocumentModel{
		UID:       uuid.Must(uuid.NewV4()),
		TenantUID: uuid.Must(uuid.NewV4()),
		FileName:  "handbook.txt",
		FileType:  "text/plain",
		FileURL:   location(),
	}

	var calls []string
	record := func(s string) { calls = append(calls, s) }

	repo := mock.NewRepositoryMock(mc)
	repo.GetDocumentMock.Expect(ctx, doc.UID).Return(doc, nil)
	repo.UpdateDocumentStatusMock.Times(2).Set(func(_ context.Context, uid types.DocumentUIDType, update repository.DocumentStatusUpdate) (*repository.DocumentModel, error) {
		c.Check(uid, qt.Equals, doc.UID)
		record("status:" + string(update.Status))
		if update.Status == types.DocumentStatusReady {
			c.Check(update.ChunkCount, qt.Equals, 12)
		}
		return doc, nil
	})
	repo.ReplaceEmbeddingChunksMock.Set(func(_ context.Context, uid types.DocumentUIDType, chunks []repository.EmbeddingChunkModel, batchSize int) error {
		record("replace")
		c.Check(uid, qt.Equals, doc.UID)
		c.Check(chunks, qt.HasLen, 12)
		c.Check(batchSize, qt.Equals, 50)
		return nil
	})

	storage := mock.NewStorageMock(mc)
	storage.GetBucketMock.Return(testBucket)
	storage.GetFileMock.
		ExpectBucketParam2(testBucket).
		ExpectFilePathParam3(testPath).
		Inspect(func(context.Context, string, string) { record("fetch") }).
		Return([]byte(manyChunkText(12)), nil)

	// The first batch of ten fails and is embedded one text at a time; the
	// remaining two go through the batch call.
	embedder := mock.NewEmbedderMock(mc)
	embedder.EmbedTextsMock.Times(2).Set(func(_ context.Context, texts []string) ([][]float32, error) {
		record(fmt.Sprintf("batch:%d", len(texts)))
		if len(texts) == 10 {
			return nil, errors.New("batch endpoint unavailable")
		}
		return vectorsOf(texts), nil
	})
	embedder.EmbedTextMock.Times(10).Set(func(_ context.Context, text string) ([]float32, error) {
		return vectorOf(text), nil
	})

	locker := mock.NewLockerMock(mc)
	locker.AcquireMock.
		Expect(ctx, doc.UID).
		Inspect(func(context.Context, types.DocumentUIDType) { record("acquire") }).
		Return(func() { record("release") }, nil)

	w, err := worker.New(worker.Config{
		Repository: repo,
		Storage:    storage,
		Embedder:   embedder,
		Locker:     locker,
	}, zap.NewNop())
	c.Assert(err, qt.IsNil)

	res, err := w.ProcessDocument(ctx, doc.UID)
	c.Assert(err, qt.IsNil)
	c.Check(res.ChunkCount, qt.Equals, 12)

	c.Check(calls, qt.DeepEquals, []string{
		"acquire",
		"status:processing",
		"fetch",
		"batch:10",
		"batch:2",
		"replace",
		"status:ready",
		"release",
	})
}

func TestProcessDocument_ReadyUpdateFails(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()

	c.Run("status sequence", func(c *qt.C) {
		mc := minimock.NewController(c)
		doc := &repository.DocumentModel{
			UID:      uuid.Must(uuid.NewV4()),
			FileType: "text/plain",
			FileURL:  location(),
		}

		var updates []repository.DocumentStatusUpdate
		repo := mock.NewRepositoryMock(mc)
		repo.GetDocumentMock.Return(doc, nil)
		repo.ReplaceEmbeddingChunksMock.Return(nil)
		repo.UpdateDocumentStatusMock.Times(3).Set(func(_ context.Context, _ types.DocumentUIDType, update repository.DocumentStatusUpdate) (*repository.DocumentModel, error) {
			updates = append(updates, update)
			if update.Status == types.DocumentStatusReady {
				return nil, errors.New("connection reset")
			}
			return doc, nil
		})

		storage := mock.NewStorageMock(mc)
		storage.GetBucketMock.Return(testBucket)
		storage.GetFileMock.Return([]byte(twoChunkText()), nil)

		embedder := mock.NewEmbedderMock(mc)
		embedder.EmbedTextsMock.Set(func(_ context.Context, texts []string) ([][]float32, error) {
			return vectorsOf(texts), nil
		})

		w, err := worker.New(worker.Config{Repository: repo, Storage: storage, Embedder: embedder}, zap.NewNop())
		c.Assert(err, qt.IsNil)

		res, err := w.ProcessDocument(ctx, doc.UID)
		c.Check(res, qt.IsNil)
		c.Assert(err, qt.ErrorIs, kberrors.ErrInternal)
		c.Check(kberrors.Message(err), qt.Equals, "Unable to update document status")

		c.Assert(updates, qt.HasLen, 3)
		c.Check(updates[0].Status, qt.Equals, types.DocumentStatusProcessing)
		c.Check(updates[1].Status, qt.Equals, types.DocumentStatusReady)
		c.Check(updates[2].Status, qt.Equals, types.DocumentStatusFailed)
		c.Check(updates[2].Error, qt.Equals, "Unable to update document status")
	})

	c.Run("document doesn't stay in processing", func(c *qt.C) {
		env := newTestEnv(c)
		env.embedInBatches()
		env.repo.failStatus = types.DocumentStatusReady

		doc := env.createDocument(c, location(), twoChunkText())

		_, err := env.worker.ProcessDocument(ctx, doc.UID)
		c.Assert(err, qt.ErrorIs, kberrors.ErrInternal)
		c.Check(env.released, qt.Equals, 1)

		got := env.reload(c, doc.UID)
		c.Check(got.Status, qt.Equals, types.DocumentStatusFailed)
		c.Check(got.ErrorMessage(), qt.Equals, "Unable to update document status")
	})
}

func TestProcessDocument_Idempotent(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	env := newTestEnv(c)
	env.embedInBatches()

	doc := env.createDocument(c, location(), twoChunkText())

	first, err := env.worker.ProcessDocument(ctx, doc.UID)
	c.Assert(err, qt.IsNil)
	firstChunks, err := env.repo.ListEmbeddingChunks(ctx, doc.UID)
	c.Assert(err, qt.IsNil)

	second, err := env.worker.ProcessDocument(ctx, doc.UID)
	c.Assert(err, qt.IsNil)
	c.Check(second.ChunkCount, qt.Equals, first.ChunkCount)

	secondChunks, err := env.repo.ListEmbeddingChunks(ctx, doc.UID)
	c.Assert(err, qt.IsNil)
	c.Assert(secondChunks, qt.HasLen, len(firstChunks))
	for i := range secondChunks {
		c.Check(secondChunks[i].Content, qt.Equals, firstChunks[i].Content)
		c.Check(secondChunks[i].Embedding, qt.DeepEquals, firstChunks[i].Embedding)
	}

	count, err := env.repo.CountEmbeddingChunks(ctx, doc.UID)
	c.Assert(err, qt.IsNil)
	c.Check(count, qt.Equals, int64(2))
}

func TestProcessDocument_BatchFallback(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()

	batched := newTestEnv(c)
	batched.embedInBatches()
	doc := batched.createDocument(c, location(), twoChunkText())
	_, err := batched.worker.ProcessDocument(ctx, doc.UID)
	c.Assert(err, qt.IsNil)
	want, err := batched.repo.ListEmbeddingChunks(ctx, doc.UID)
	c.Assert(err, qt.IsNil)

	fallback := newTestEnv(c)
	fallback.embedder.EmbedTextsMock.Return(nil, errors.New("batch endpoint unavailable"))
	fallback.embedder.EmbedTextMock.Set(func(_ context.Context, text string) ([]float32, error) {
		return vectorOf(text), nil
	})
	doc = fallback.createDocument(c, location(), twoChunkText())
	res, err := fallback.worker.ProcessDocument(ctx, doc.UID)
	c.Assert(err, qt.IsNil)
	c.Check(res.ChunkCount, qt.Equals, len(want))
	c.Check(fallback.embedder.AfterEmbedTextsCounter(), qt.Equals, uint64(1))
	c.Check(fallback.embedder.AfterEmbedTextCounter(), qt.Equals, uint64(len(want)))

	got, err := fallback.repo.ListEmbeddingChunks(ctx, doc.UID)
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.HasLen, len(want))
	for i := range got {
		c.Check(got[i].Content, qt.Equals, want[i].Content)
		c.Check(got[i].Embedding, qt.DeepEquals, want[i].Embedding)
	}
}

func TestProcessDocument_Failures(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()

	testCases := []struct {
		name    string
		fileURL *string
		content string
		setup   func(*testEnv)
		wantErr error
		wantMsg string
	}{
		{
			name:    "no source location",
			fileURL: nil,
			wantErr: kberrors.ErrFetchFailed,
			wantMsg: "Document has no source location",
		},
		{
			name:    "empty source location",
			fileURL: func() *string { s := ""; return &s }(),
			wantErr: kberrors.ErrFetchFailed,
			wantMsg: "Document has no source location",
		},
		{
			name:    "storage error",
			fileURL: location(),
			content: twoChunkText(),
			setup: func(env *testEnv) {
				env.storageErr = errorsx.AddMessage(errors.New("dial tcp: refused"), "Storage unavailable")
			},
			wantErr: kberrors.ErrFetchFailed,
			wantMsg: "Failed to download document: Storage unavailable",
		},
		{
			name: "object not found",
			fileURL: func() *string {
				s := "docs/missing.txt"
				return &s
			}(),
			setup:   func(env *testEnv) { delete(env.files, testPath) },
			wantErr: kberrors.ErrFetchFailed,
			wantMsg: "Failed to download document: Object not found in storage",
		},
		{
			name:    "whitespace only",
			fileURL: location(),
			content: " \n\n\t \n",
			wantErr: kberrors.ErrNoExtractableText,
			wantMsg: "No text content could be extracted from document",
		},
		{
			name:    "embedding count mismatch",
			fileURL: location(),
			content: twoChunkText(),
			setup: func(env *testEnv) {
				env.embedder.EmbedTextsMock.Set(func(_ context.Context, texts []string) ([][]float32, error) {
					return vectorsOf(texts[1:]), nil
				})
			},
			wantErr: kberrors.ErrEmbeddingFailed,
			wantMsg: "Failed to generate embeddings: Embedding count mismatch: expected 2, got 1",
		},
		{
			name:    "individual embedding failure",
			fileURL: location(),
			content: twoChunkText(),
			setup: func(env *testEnv) {
				env.embedder.EmbedTextsMock.Return(nil, errors.New("batch endpoint unavailable"))
				env.embedder.EmbedTextMock.Return(nil, errorsx.AddMessage(errors.New("status 503"), "Embedding service error: overloaded"))
			},
			wantErr: kberrors.ErrEmbeddingFailed,
			wantMsg: "Failed to generate embeddings: Embedding service error: overloaded",
		},
		{
			name:    "persist failure",
			fileURL: location(),
			content: twoChunkText(),
			setup: func(env *testEnv) {
				env.embedInBatches()
				env.repo.failReplace = true
			},
			wantErr: kberrors.ErrPersistFailed,
			wantMsg: "Failed to store document chunks",
		},
		{
			name:    "panic",
			fileURL: location(),
			content: twoChunkText(),
			setup: func(env *testEnv) {
				env.embedder.EmbedTextsMock.Set(func(context.Context, []string) ([][]float32, error) {
					panic("embedder exploded")
				})
			},
			wantErr: kberrors.ErrInternal,
			wantMsg: "Internal error while processing document",
		},
	}

	for _, tc := range testCases {
		c.Run(tc.name, func(c *qt.C) {
			env := newTestEnv(c)
			doc := env.createDocument(c, tc.fileURL, tc.content)
			if tc.setup != nil {
				tc.setup(env)
			}

			res, err := env.worker.ProcessDocument(ctx, doc.UID)
			c.Check(res, qt.IsNil)
			c.Assert(err, qt.ErrorIs, tc.wantErr)
			c.Check(kberrors.Message(err), qt.Equals, tc.wantMsg)

			c.Check(env.repo.statuses, qt.DeepEquals, []types.DocumentStatus{
				types.DocumentStatusProcessing,
				types.DocumentStatusFailed,
			})
			c.Check(env.released, qt.Equals, 1)

			got := env.reload(c, doc.UID)
			c.Check(got.Status, qt.Equals, types.DocumentStatusFailed)
			c.Check(got.ErrorMessage(), qt.Equals, tc.wantMsg)
			c.Check(got.ChunkCount, qt.IsNil)
		})
	}
}

func TestProcessDocument_PersistFailureKeepsChunks(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	env := newTestEnv(c)
	env.embedInBatches()

	doc := env.createDocument(c, location(), twoChunkText())
	_, err := env.worker.ProcessDocument(ctx, doc.UID)
	c.Assert(err, qt.IsNil)

	env.repo.failReplace = true
	_, err = env.worker.ProcessDocument(ctx, doc.UID)
	c.Assert(err, qt.ErrorIs, kberrors.ErrPersistFailed)

	got := env.reload(c, doc.UID)
	c.Check(got.Status, qt.Equals, types.DocumentStatusFailed)
	// The count of the previous successful run is left in place.
	c.Assert(got.ChunkCount, qt.IsNotNil)
	c.Check(*got.ChunkCount, qt.Equals, 2)

	count, err := env.repo.CountEmbeddingChunks(ctx, doc.UID)
	c.Assert(err, qt.IsNil)
	c.Check(count, qt.Equals, int64(2))

	// A later successful run clears the failure.
	env.repo.failReplace = false
	_, err = env.worker.ProcessDocument(ctx, doc.UID)
	c.Assert(err, qt.IsNil)
	got = env.reload(c, doc.UID)
	c.Check(got.Status, qt.Equals, types.DocumentStatusReady)
	c.Check(got.ErrorMessage(), qt.Equals, "")
}

func TestProcessDocument_NotFound(t *testing.T) {
	c := qt.New(t)
	env := newTestEnv(c)

	_, err := env.worker.ProcessDocument(context.Background(), uuid.Must(uuid.NewV4()))
	c.Assert(err, qt.ErrorIs, kberrors.ErrNotFound)
	c.Check(kberrors.Message(err), qt.Equals, "Document not found")
	c.Check(env.repo.statuses, qt.HasLen, 0)
	c.Check(env.storage.AfterGetFileCounter(), qt.Equals, uint64(0))
	c.Check(env.locker.AfterAcquireCounter(), qt.Equals, uint64(0))
}

func TestProcessDocument_Locked(t *testing.T) {
	c := qt.New(t)
	mc := minimock.NewController(c)
	env := newTestEnv(c)

	locker := mock.NewLockerMock(mc)
	locker.AcquireMock.Return(nil, kberrors.ErrAlreadyProcessing)
	w, err := worker.New(worker.Config{
		Repository: env.repo,
		Storage:    env.storage,
		Embedder:   env.embedder,
		Locker:     locker,
	}, zap.NewNop())
	c.Assert(err, qt.IsNil)

	doc := env.createDocument(c, location(), twoChunkText())

	_, err = w.ProcessDocument(context.Background(), doc.UID)
	c.Assert(err, qt.ErrorIs, kberrors.ErrAlreadyProcessing)
	c.Check(env.repo.statuses, qt.HasLen, 0)
	c.Check(env.storage.AfterGetFileCounter(), qt.Equals, uint64(0))
	c.Check(env.reload(c, doc.UID).Status, qt.Equals, types.DocumentStatusPending)
}
