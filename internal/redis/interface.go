package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so repositories can be handed any of the
// single, cluster or failover clients
type Client interface {
	redis.UniversalClient
}
