// Package redis wraps the go-redis client so storage code depends on a
// small interface that miniredis-backed tests can satisfy.
package redis

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/theta-arc/internal/errors"
)

// Options configures pool behavior for the account store connection
type Options struct {
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
	UseTLS          bool
}

// universalOptions maps Options onto go-redis. One address yields a
// single-node client and several yield a cluster client.
func universalOptions(endpoints []string, opts *Options) *redis.UniversalOptions {
	if opts == nil {
		opts = &Options{}
	}

	out := &redis.UniversalOptions{
		Addrs:           endpoints,
		PoolSize:        opts.PoolSize,
		MinIdleConns:    opts.MinIdleConns,
		ConnMaxIdleTime: opts.ConnMaxIdleTime,
		MaxRetries:      opts.MaxRetries,
	}
	if opts.UseTLS {
		out.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	return out
}

// Connect opens the account store connection and pings it once
func Connect(ctx context.Context, endpoints []string, opts *Options) (Client, error) {
	if len(endpoints) == 0 {
		return nil, errors.InvalidArgument("redis: at least one endpoint is required")
	}

	client := redis.NewUniversalClient(universalOptions(endpoints, opts))
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "redis: ping failed")
	}
	return client, nil
}
