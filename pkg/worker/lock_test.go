package worker

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofrs/uuid"
	"github.com/redis/go-redis/v9"

	qt "github.com/frankban/quicktest"

	kberrors "github.com/instill-ai/knowledge-backend/pkg/errors"
)

func TestRedisLocker(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c.Cleanup(func() { _ = client.Close() })

	locker := NewRedisLocker(client, time.Minute)

	c.Run("held lock is rejected", func(c *qt.C) {
		uid := uuid.Must(uuid.NewV4())

		release, err := locker.Acquire(ctx, uid)
		c.Assert(err, qt.IsNil)
		c.Check(mr.Exists(lockKey(uid)), qt.IsTrue)

		_, err = locker.Acquire(ctx, uid)
		c.Check(err, qt.ErrorIs, kberrors.ErrAlreadyProcessing)

		release()
		c.Check(mr.Exists(lockKey(uid)), qt.IsFalse)

		release, err = locker.Acquire(ctx, uid)
		c.Assert(err, qt.IsNil)
		release()
	})

	c.Run("expired lock isn't released by its former owner", func(c *qt.C) {
		uid := uuid.Must(uuid.NewV4())
		key := lockKey(uid)

		releaseFirst, err := locker.Acquire(ctx, uid)
		c.Assert(err, qt.IsNil)

		mr.FastForward(2 * time.Minute)
		c.Assert(mr.Exists(key), qt.IsFalse)

		releaseSecond, err := locker.Acquire(ctx, uid)
		c.Assert(err, qt.IsNil)
		owner, err := mr.Get(key)
		c.Assert(err, qt.IsNil)

		releaseFirst()
		got, err := mr.Get(key)
		c.Assert(err, qt.IsNil)
		c.Check(got, qt.Equals, owner)

		_, err = locker.Acquire(ctx, uid)
		c.Check(err, qt.ErrorIs, kberrors.ErrAlreadyProcessing)

		releaseSecond()
		c.Check(mr.Exists(key), qt.IsFalse)
	})
}
