package main

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/instill-ai/knowledge-backend/pkg/mock"
	"github.com/instill-ai/knowledge-backend/pkg/types"
	"github.com/instill-ai/knowledge-backend/pkg/worker"
)

// processor tracks how many documents are processed at the same time. When
// release is set, each run waits on it.
type processor struct {
	*mock.DocumentProcessorMock

	mu      sync.Mutex
	seen    []types.DocumentUIDType
	running int64
	peak    int64
}

func newProcessor(t *testing.T, fail map[types.DocumentUIDType]bool, release chan struct{}) *processor {
	p := &processor{DocumentProcessorMock: mock.NewDocumentProcessorMock(minimock.NewController(t))}
	p.ProcessDocumentMock.Optional().Set(func(_ context.Context, uid types.DocumentUIDType) (*worker.ProcessDocumentResult, error) {
		n := atomic.AddInt64(&p.running, 1)
		defer atomic.AddInt64(&p.running, -1)
		for {
			peak := atomic.LoadInt64(&p.peak)
			if n <= peak || atomic.CompareAndSwapInt64(&p.peak, peak, n) {
				break
			}
		}
		if release != nil {
			<-release
		}

		p.mu.Lock()
		p.seen = append(p.seen, uid)
		p.mu.Unlock()

		if fail[uid] {
			return nil, errors.New("embedding service unavailable")
		}
		return &worker.ProcessDocumentResult{DocumentUID: uid, ChunkCount: 3}, nil
	})
	return p
}

func newIDs(n int) []types.DocumentUIDType {
	ids := make([]types.DocumentUIDType, n)
	for i := range ids {
		ids[i] = uuid.Must(uuid.NewV4())
	}
	return ids
}

func TestReprocess(t *testing.T) {
	ids := newIDs(10)
	p := newProcessor(t, map[types.DocumentUIDType]bool{ids[3]: true, ids[7]: true}, nil)

	s, err := reprocess(context.Background(), p, ids, 4, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, int64(8), s.processed)
	assert.Equal(t, int64(2), s.failed)
	assert.ElementsMatch(t, ids, p.seen)
	assert.Equal(t, uint64(len(ids)), p.AfterProcessDocumentCounter())
}

func TestReprocess_Concurrency(t *testing.T) {
	ids := newIDs(6)
	release := make(chan struct{})
	p := newProcessor(t, nil, release)

	done := make(chan summary)
	go func() {
		s, _ := reprocess(context.Background(), p, ids, 2, zap.NewNop())
		done <- s
	}()

	for range ids {
		release <- struct{}{}
	}
	s := <-done

	assert.Equal(t, int64(6), s.processed)
	assert.LessOrEqual(t, p.peak, int64(2))
}

func TestReprocess_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := mock.NewDocumentProcessorMock(minimock.NewController(t))
	s, err := reprocess(ctx, p, newIDs(3), 2, zap.NewNop())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, s.processed)
	assert.Zero(t, p.BeforeProcessDocumentCounter())
}

func TestParseIDs(t *testing.T) {
	id := uuid.Must(uuid.NewV4())

	got, err := parseIDs([]string{id.String(), id.String()})
	require.NoError(t, err)
	assert.Equal(t, []types.DocumentUIDType{id}, got)

	_, err = parseIDs([]string{"not-a-uuid"})
	assert.Error(t, err)
}

func TestParseStatuses(t *testing.T) {
	got, err := parseStatuses([]string{"failed", "pending"})
	require.NoError(t, err)
	assert.Equal(t, []types.DocumentStatus{types.DocumentStatusFailed, types.DocumentStatusPending}, got)

	_, err = parseStatuses([]string{"done"})
	assert.ErrorIs(t, err, errInvalidStatus)
}
