package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisOnce sync.Once
var redisConn *redis.Client

// NewRedis starts an embedded redis server and returns a connected client.
func NewRedis() *redis.Client {
	redisOnce.Do(func() {
		server, err := miniredis.Run()
		if err != nil {
			panic("failed to start embedded redis: " + err.Error())
		}

		redisConn = redis.NewClient(&redis.Options{
			Addr: server.Addr(),
		})
	})

	return redisConn
}

// ClearRedis wipes every key.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.Background()).Err()
}
