package worker_test

import (
	"testing"

	"github.com/gojuno/minimock/v3"
	"go.uber.org/zap"

	qt "github.com/frankban/quicktest"

	"github.com/instill-ai/knowledge-backend/pkg/mock"
	"github.com/instill-ai/knowledge-backend/pkg/worker"
)

func TestNew(t *testing.T) {
	c := qt.New(t)

	c.Run("nok - missing collaborators", func(c *qt.C) {
		_, err := worker.New(worker.Config{}, zap.NewNop())
		c.Check(err, qt.IsNotNil)
	})

	c.Run("defaults", func(c *qt.C) {
		mc := minimock.NewController(c)
		storage := mock.NewStorageMock(mc)
		storage.GetBucketMock.Return(testBucket)

		w, err := worker.New(worker.Config{
			Repository: mock.NewRepositoryMock(mc),
			Storage:    storage,
			Embedder:   mock.NewEmbedderMock(mc),
		}, zap.NewNop())
		c.Assert(err, qt.IsNil)

		bucket, embedBatchSize, insertBatchSize, locked := w.Settings()
		c.Check(bucket, qt.Equals, testBucket)
		c.Check(embedBatchSize, qt.Equals, 10)
		c.Check(insertBatchSize, qt.Equals, 50)
		c.Check(locked, qt.IsFalse)
	})

	c.Run("explicit bucket and locker", func(c *qt.C) {
		mc := minimock.NewController(c)

		w, err := worker.New(worker.Config{
			Repository:      mock.NewRepositoryMock(mc),
			Storage:         mock.NewStorageMock(mc),
			Embedder:        mock.NewEmbedderMock(mc),
			Locker:          mock.NewLockerMock(mc),
			Bucket:          "documents",
			EmbedBatchSize:  4,
			InsertBatchSize: 20,
		}, zap.NewNop())
		c.Assert(err, qt.IsNil)

		bucket, embedBatchSize, insertBatchSize, locked := w.Settings()
		c.Check(bucket, qt.Equals, "documents")
		c.Check(embedBatchSize, qt.Equals, 4)
		c.Check(insertBatchSize, qt.Equals, 20)
		c.Check(locked, qt.IsTrue)
	})
}
