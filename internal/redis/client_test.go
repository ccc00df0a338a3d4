package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/theta-arc/internal/errors"
	"github.com/KirkDiggler/theta-arc/internal/redis"
)

func TestConnect(t *testing.T) {
	ctx := context.Background()

	t.Run("requires an endpoint", func(t *testing.T) {
		_, err := redis.Connect(ctx, nil, nil)
		assert.True(t, errors.IsInvalidArgument(err))
	})

	t.Run("single node", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client, err := redis.Connect(ctx, []string{mr.Addr()}, &redis.Options{PoolSize: 2, ConnMaxIdleTime: time.Minute})
		require.NoError(t, err)
		defer func() { _ = client.Close() }()

		require.NoError(t, client.Set(ctx, "account:42", "{}", 0).Err())
		assert.True(t, mr.Exists("account:42"))
	})

	t.Run("unreachable", func(t *testing.T) {
		mr := miniredis.RunT(t)
		addr := mr.Addr()
		mr.Close()

		_, err := redis.Connect(ctx, []string{addr}, &redis.Options{MaxRetries: -1})
		assert.Equal(t, errors.CodeUnavailable, errors.GetCode(err))
	})
}
