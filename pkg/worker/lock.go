package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/instill-ai/knowledge-backend/pkg/logger"
	"github.com/instill-ai/knowledge-backend/pkg/types"

	kberrors "github.com/instill-ai/knowledge-backend/pkg/errors"
)

const (
	lockPrefix     = "knowledge-base-processing-"
	defaultLockTTL = 10 * time.Minute
)

// ReleaseFunc releases a document lock.
type ReleaseFunc func()

// Locker serializes pipeline runs on the same document.
type Locker interface {
	// Acquire returns ErrAlreadyProcessing if another run holds the lock.
	Acquire(ctx context.Context, documentUID types.DocumentUIDType) (ReleaseFunc, error)
}

type noopLocker struct{}

func (noopLocker) Acquire(context.Context, types.DocumentUIDType) (ReleaseFunc, error) {
	return func() {}, nil
}

// The lock value is a token per acquisition, so a run only extends or deletes
// the key while it still owns it.
var (
	releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

	extendScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0`)
)

type redisLocker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisLocker returns a Locker that holds a Redis key per document for the
// duration of a run. The key expires after ttl and is extended while the run
// is alive, so a crashed process doesn't block the document forever.
func NewRedisLocker(client *redis.Client, ttl time.Duration) Locker {
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	return &redisLocker{client: client, ttl: ttl}
}

func lockKey(documentUID types.DocumentUIDType) string {
	return lockPrefix + documentUID.String()
}

func (l *redisLocker) Acquire(ctx context.Context, documentUID types.DocumentUIDType) (ReleaseFunc, error) {
	logger, _ := logger.GetZapLogger(ctx)
	key := lockKey(documentUID)

	token, err := uuid.NewV4()
	if err != nil {
		return nil, kberrors.Messagef(kberrors.ErrInternal, "Unable to lock document", fmt.Errorf("generating lock token: %w", err))
	}

	ok, err := l.client.SetNX(ctx, key, token.String(), l.ttl).Result()
	if err != nil {
		return nil, kberrors.Messagef(kberrors.ErrInternal, "Unable to lock document", fmt.Errorf("setting lock key: %w", err))
	}
	if !ok {
		logger.Warn("Document is locked by another run", zap.String("documentUID", documentUID.String()))
		return nil, kberrors.ErrAlreadyProcessing
	}

	extendCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	go func() {
		ticker := time.NewTicker(l.ttl / 3)
		defer ticker.Stop()
		for {
			select {
			case <-extendCtx.Done():
				return
			case <-ticker.C:
				owned, err := extendScript.Run(extendCtx, l.client, []string{key}, token.String(), l.ttl.Milliseconds()).Int()
				if err != nil {
					logger.Error("Failed to extend document lock", zap.String("key", key), zap.Error(err))
					return
				}
				if owned == 0 {
					logger.Warn("Document lock was lost", zap.String("key", key))
					return
				}
			}
		}
	}()

	return func() {
		cancel()
		deleted, err := releaseScript.Run(context.WithoutCancel(ctx), l.client, []string{key}, token.String()).Int()
		if err != nil {
			logger.Warn("Failed to release document lock", zap.String("key", key), zap.Error(err))
			return
		}
		if deleted == 0 {
			logger.Warn("Document lock was held by another run on release", zap.String("key", key))
		}
	}, nil
}
