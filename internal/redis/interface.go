package redis

import "github.com/redis/go-redis/v9"

// Client is what the account repository needs from go-redis. Single-node
// and cluster clients both satisfy it.
type Client interface {
	redis.UniversalClient
}
