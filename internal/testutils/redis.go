// Package testutils holds helpers shared by package tests.
package testutils

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/theta-arc/internal/redis"
)

// CreateTestRedisClient connects to a fresh miniredis
func CreateTestRedisClient(t *testing.T) (redis.Client, func()) {
	return CreateTestRedisClientWithContext(t, nil)
}

// CreateTestRedisClientWithContext lets the caller seed raw keys before
// the client connects
func CreateTestRedisClientWithContext(t *testing.T, seed func(mr *miniredis.Miniredis)) (redis.Client, func()) {
	mr := miniredis.RunT(t)
	if seed != nil {
		seed(mr)
	}

	client, err := redis.Connect(context.Background(), []string{mr.Addr()}, nil)
	require.NoError(t, err, "failed to connect to miniredis")

	return client, func() { _ = client.Close() }
}
