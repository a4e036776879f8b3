package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gofrs/uuid"
	"github.com/panjf2000/ants/v2"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/instill-ai/knowledge-backend/config"
	"github.com/instill-ai/knowledge-backend/pkg/logger"
	"github.com/instill-ai/knowledge-backend/pkg/repository"
	"github.com/instill-ai/knowledge-backend/pkg/types"
	"github.com/instill-ai/knowledge-backend/pkg/worker"

	database "github.com/instill-ai/knowledge-backend/pkg/db"
)

type documentProcessor interface {
	ProcessDocument(ctx context.Context, documentUID types.DocumentUIDType) (*worker.ProcessDocumentResult, error)
}

type summary struct {
	processed int64
	failed    int64
}

func main() {
	app := &cli.App{
		Name:  "reprocess",
		Usage: "Run the ingestion pipeline again on knowledge base documents",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Path to the configuration file",
				Value:   "config/config.yaml",
			},
			&cli.StringSliceFlag{
				Name:  "id",
				Usage: "UID of a document to process (repeatable)",
			},
			&cli.StringSliceFlag{
				Name:  "status",
				Usage: "Process the documents in this status (repeatable: pending, processing, ready, failed)",
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of documents selected by --status",
				Value: repository.DefaultListLimit,
			},
			&cli.IntFlag{
				Name:    "concurrency",
				Aliases: []string{"c"},
				Usage:   "Number of documents processed at the same time",
				Value:   4,
			},
		},
		Action: reprocessCommand,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func reprocessCommand(c *cli.Context) error {
	// gorm's autoUpdate will use local timezone by default, so we need to set it to UTC
	time.Local = time.UTC

	if err := config.Init(c.String("file")); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	ctx := c.Context
	logger, _ := logger.GetZapLogger(ctx)
	defer func() { _ = logger.Sync() }()

	ids, err := parseIDs(c.StringSlice("id"))
	if err != nil {
		return err
	}
	statuses, err := parseStatuses(c.StringSlice("status"))
	if err != nil {
		return err
	}
	if len(ids) == 0 && len(statuses) == 0 {
		return fmt.Errorf("either --id or --status is required")
	}

	db, err := database.GetConnection(config.Config.Database)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if len(statuses) > 0 {
		listed, err := repository.NewRepository(db).ListDocumentUIDsByStatus(ctx, statuses, c.Int("limit"))
		if err != nil {
			return err
		}
		ids = append(ids, listed...)
	}
	if len(ids) == 0 {
		logger.Info("No documents to process")
		return nil
	}

	w, cleanup, err := worker.NewFromConfig(ctx, config.Config, db, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	s, err := reprocess(ctx, w, ids, c.Int("concurrency"), logger)
	if err != nil {
		return err
	}

	logger.Info("Reprocessing finished",
		zap.Int64("processed", s.processed),
		zap.Int64("failed", s.failed),
	)
	if s.failed > 0 {
		return cli.Exit(fmt.Sprintf("%d of %d documents failed", s.failed, len(ids)), 1)
	}
	return nil
}

// reprocess runs the pipeline on each document. Up to concurrency documents
// are processed at a time; each run stays sequential.
func reprocess(
	ctx context.Context,
	p documentProcessor,
	ids []types.DocumentUIDType,
	concurrency int,
	logger *zap.Logger,
) (summary, error) {
	var s summary

	pool, err := ants.NewPool(max(concurrency, 1))
	if err != nil {
		return s, fmt.Errorf("creating worker pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for _, id := range ids {
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()

			res, err := p.ProcessDocument(ctx, id)
			if err != nil {
				atomic.AddInt64(&s.failed, 1)
				logger.Error("Document failed", zap.String("documentUID", id.String()), zap.Error(err))
				return
			}

			atomic.AddInt64(&s.processed, 1)
			logger.Info("Document processed",
				zap.String("documentUID", id.String()),
				zap.Int("chunkCount", res.ChunkCount),
			)
		}); err != nil {
			wg.Done()
			atomic.AddInt64(&s.failed, 1)
			logger.Error("Couldn't schedule document", zap.String("documentUID", id.String()), zap.Error(err))
		}
	}
	wg.Wait()

	return s, ctx.Err()
}

func parseIDs(raw []string) ([]types.DocumentUIDType, error) {
	ids := make([]types.DocumentUIDType, 0, len(raw))
	seen := make(map[types.DocumentUIDType]bool, len(raw))
	for _, r := range raw {
		id, err := uuid.FromString(r)
		if err != nil {
			return nil, fmt.Errorf("invalid document UID %q: %w", r, err)
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids, nil
}

var errInvalidStatus = errors.New("invalid status")

func parseStatuses(raw []string) ([]types.DocumentStatus, error) {
	statuses := make([]types.DocumentStatus, 0, len(raw))
	for _, r := range raw {
		s := types.DocumentStatus(r)
		if !s.Valid() {
			return nil, fmt.Errorf("%w: %q", errInvalidStatus, r)
		}
		statuses = append(statuses, s)
	}
	return statuses, nil
}
