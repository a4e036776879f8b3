package worker

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	errorsx "github.com/instill-ai/x/errors"

	"github.com/instill-ai/knowledge-backend/pkg/logger"
)

// ErrBatchSizeMismatch is returned when a successful batch call yields a
// different number of results than the number of items sent.
var ErrBatchSizeMismatch = errors.New("batch result count mismatch")

// BatchFunc processes a group of items, returning one result per item in
// order.
type BatchFunc[T, R any] func(context.Context, []T) ([]R, error)

// SingleFunc processes one item.
type SingleFunc[T, R any] func(context.Context, T) (R, error)

// BatchWithFallback processes items in consecutive groups of batchSize. When
// a group call fails, its items are processed one by one instead; a failure
// there is final. A group call that succeeds with the wrong number of results
// is final as well, since results can't be matched back to items. Results are
// returned in item order.
func BatchWithFallback[T, R any](
	ctx context.Context,
	items []T,
	batchSize int,
	batchFn BatchFunc[T, R],
	singleFn SingleFunc[T, R],
) ([]R, error) {
	logger, _ := logger.GetZapLogger(ctx)

	if batchSize <= 0 {
		batchSize = 1
	}

	results := make([]R, 0, len(items))
	totalBatches := (len(items) + batchSize - 1) / batchSize

	for start := 0; start < len(items); start += batchSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		end := min(start+batchSize, len(items))
		batch := items[start:end]
		batchNumber := start/batchSize + 1

		batchResults, err := batchFn(ctx, batch)
		if err == nil {
			if len(batchResults) != len(batch) {
				return nil, errorsx.AddMessage(
					fmt.Errorf("%w: batch %d/%d returned %d results for %d items",
						ErrBatchSizeMismatch, batchNumber, totalBatches, len(batchResults), len(batch)),
					fmt.Sprintf("Embedding count mismatch: expected %d, got %d", len(batch), len(batchResults)),
				)
			}
			results = append(results, batchResults...)
			continue
		}

		logger.Warn("Batch call failed, falling back to individual calls",
			zap.Int("batchNumber", batchNumber),
			zap.Int("totalBatches", totalBatches),
			zap.Int("batchSize", len(batch)),
			zap.Error(err),
		)

		for i, item := range batch {
			r, err := singleFn(ctx, item)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", start+i, err)
			}
			results = append(results, r)
		}
	}

	return results, nil
}
