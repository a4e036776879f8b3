package worker

import (
	"context"
	"errors"
	"fmt"
	"testing"

	qt "github.com/frankban/quicktest"
)

type fakeService struct {
	failBatch    bool
	failSingleOn string
	batchDrop    bool
	batchCalls   [][]string
	singleCalls  []string
}

func (f *fakeService) batch(_ context.Context, items []string) ([]int, error) {
	f.batchCalls = append(f.batchCalls, items)
	if f.failBatch {
		return nil, fmt.Errorf("batch unavailable")
	}
	out := make([]int, 0, len(items))
	for _, it := range items {
		out = append(out, len(it))
	}
	if f.batchDrop {
		out = out[1:]
	}
	return out, nil
}

func (f *fakeService) single(_ context.Context, item string) (int, error) {
	f.singleCalls = append(f.singleCalls, item)
	if item == f.failSingleOn {
		return 0, fmt.Errorf("single unavailable")
	}
	return len(item), nil
}

func items(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("item-%d", i)
	}
	return out
}

func TestBatchWithFallback(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()

	c.Run("ok - batches", func(c *qt.C) {
		svc := &fakeService{}
		got, err := BatchWithFallback(ctx, items(23), 10, svc.batch, svc.single)
		c.Assert(err, qt.IsNil)
		c.Check(got, qt.HasLen, 23)
		c.Check(svc.batchCalls, qt.HasLen, 3)
		c.Check(svc.batchCalls[2], qt.HasLen, 3)
		c.Check(svc.singleCalls, qt.HasLen, 0)
	})

	c.Run("ok - fallback gives the same results", func(c *qt.C) {
		healthy := &fakeService{}
		want, err := BatchWithFallback(ctx, items(23), 10, healthy.batch, healthy.single)
		c.Assert(err, qt.IsNil)

		degraded := &fakeService{failBatch: true}
		got, err := BatchWithFallback(ctx, items(23), 10, degraded.batch, degraded.single)
		c.Assert(err, qt.IsNil)
		c.Check(got, qt.DeepEquals, want)
		c.Check(degraded.singleCalls, qt.DeepEquals, items(23))
	})

	c.Run("nok - single failure is final", func(c *qt.C) {
		svc := &fakeService{failBatch: true, failSingleOn: items(5)[3]}
		_, err := BatchWithFallback(ctx, items(5), 10, svc.batch, svc.single)
		c.Check(err, qt.ErrorMatches, "item 3: single unavailable")
		c.Check(svc.singleCalls, qt.HasLen, 4)
	})

	c.Run("nok - count mismatch is final", func(c *qt.C) {
		svc := &fakeService{batchDrop: true}
		_, err := BatchWithFallback(ctx, items(5), 10, svc.batch, svc.single)
		c.Check(errors.Is(err, ErrBatchSizeMismatch), qt.IsTrue)
		c.Check(svc.singleCalls, qt.HasLen, 0)
	})

	c.Run("ok - no items", func(c *qt.C) {
		svc := &fakeService{}
		got, err := BatchWithFallback(ctx, nil, 10, svc.batch, svc.single)
		c.Assert(err, qt.IsNil)
		c.Check(got, qt.HasLen, 0)
		c.Check(svc.batchCalls, qt.HasLen, 0)
	})

	c.Run("nok - cancelled context", func(c *qt.C) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		svc := &fakeService{}
		_, err := BatchWithFallback(cctx, items(3), 10, svc.batch, svc.single)
		c.Check(errors.Is(err, context.Canceled), qt.IsTrue)
	})
}
