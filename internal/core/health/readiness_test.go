package health

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestReadiness(t *testing.T) {
	t.Run("not ready until every component is marked", func(t *testing.T) {
		r := newReadiness(zap.NewNop())
		markMongo := r.AddComponent("mongo")
		markHTTP := r.AddComponent("http-server")

		assert.False(t, r.IsReady())

		markMongo()
		assert.False(t, r.IsReady())

		markHTTP()
		assert.True(t, r.IsReady())
	})

	t.Run("marking twice is harmless", func(t *testing.T) {
		r := newReadiness(zap.NewNop())
		mark := r.AddComponent("mongo")
		mark()
		mark()
		assert.True(t, r.IsReady())
	})

	t.Run("status lists every component", func(t *testing.T) {
		r := newReadiness(zap.NewNop())
		mark := r.AddComponent("mongo")
		r.AddComponent("http-server")
		mark()

		status := r.GetStatus()
		assert.False(t, status.Ready)
		assert.Len(t, status.Components, 2)
	})

	t.Run("WaitReady unblocks once ready", func(t *testing.T) {
		r := newReadiness(zap.NewNop())
		mark := r.AddComponent("mongo")

		done := make(chan error, 1)
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			done <- r.WaitReady(ctx)
		}()

		mark()
		require.NoError(t, <-done)
	})

	t.Run("WaitReady respects cancellation", func(t *testing.T) {
		r := newReadiness(zap.NewNop())
		r.AddComponent("mongo")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.ErrorIs(t, r.WaitReady(ctx), context.Canceled)
	})
}
