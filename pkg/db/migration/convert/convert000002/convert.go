package convert000002

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/instill-ai/knowledge-backend/pkg/db/migration/convert"
	"github.com/instill-ai/knowledge-backend/pkg/pipeline"
	"github.com/instill-ai/knowledge-backend/pkg/repository"
)

const batchSize = 100

// BackfillChunkTokens fills the token count of the chunks stored before the
// tokens column existed.
type BackfillChunkTokens struct {
	convert.Basic
}

// Migrate computes the missing token counts in batches.
func (c *BackfillChunkTokens) Migrate() error {
	chunks := make([]*repository.EmbeddingChunkModel, 0, batchSize)
	q := c.DB.Select(repository.EmbeddingChunkColumn.UID, repository.EmbeddingChunkColumn.Content).
		Where(repository.EmbeddingChunkColumn.Tokens + " IS NULL")

	var updated int
	err := q.FindInBatches(&chunks, batchSize, func(tx *gorm.DB, _ int) error {
		for _, chunk := range chunks {
			tokens := pipeline.CountTokens(chunk.Content)
			if err := tx.Model(&repository.EmbeddingChunkModel{}).
				Where(repository.EmbeddingChunkColumn.UID+" = ?", chunk.UID).
				Update(repository.EmbeddingChunkColumn.Tokens, tokens).Error; err != nil {
				return fmt.Errorf("updating chunk %s: %w", chunk.UID.String(), err)
			}
			updated++
		}

		return nil
	}).Error
	if err != nil {
		return err
	}

	c.Logger.Info("Chunk token counts backfilled", zap.Int("chunks", updated))
	return nil
}
