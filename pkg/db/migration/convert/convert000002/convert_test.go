package convert000002

import (
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	qt "github.com/frankban/quicktest"

	"github.com/instill-ai/knowledge-backend/pkg/db/migration/convert"
	"github.com/instill-ai/knowledge-backend/pkg/repository"
)

func TestBackfillChunkTokens(t *testing.T) {
	c := qt.New(t)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&repository.EmbeddingChunkModel{}))

	docUID := uuid.Must(uuid.NewV4())
	chunks := make([]repository.EmbeddingChunkModel, 0, 150)
	for i := range 150 {
		chunks = append(chunks, repository.EmbeddingChunkModel{
			KnowledgeBaseUID: docUID,
			ChunkIndex:       i,
			Content:          "The quick brown fox jumps over the lazy dog.",
			Embedding:        repository.Vector{0.1, 0.2},
		})
	}
	require.NoError(t, db.CreateInBatches(chunks, 50).Error)
	require.NoError(t, db.Exec("UPDATE knowledge_base_embedding SET tokens = NULL WHERE chunk_index >= 20").Error)

	m := &BackfillChunkTokens{Basic: convert.Basic{DB: db, Logger: zap.NewNop()}}
	c.Assert(m.Migrate(), qt.IsNil)

	var missing int64
	c.Assert(db.Model(&repository.EmbeddingChunkModel{}).Where("tokens IS NULL").Count(&missing).Error, qt.IsNil)
	c.Check(missing, qt.Equals, int64(0))

	var backfilled int64
	c.Assert(db.Model(&repository.EmbeddingChunkModel{}).Where("tokens > 0").Count(&backfilled).Error, qt.IsNil)
	c.Check(backfilled, qt.Equals, int64(130))
}
