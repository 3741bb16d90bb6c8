package queue

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisDriver persists the queue in a Redis list so jobs survive process
// restarts and can be shared between the server and queue:work processes.
type RedisDriver struct {
	client *redis.Client
	key    string
}

// NewRedisDriver wraps an existing Redis client. key is the list name,
// defaulting to "freshbasket:queue" when empty.
func NewRedisDriver(client *redis.Client, key string) *RedisDriver {
	if key == "" {
		key = "freshbasket:queue"
	}
	return &RedisDriver{client: client, key: key}
}

func (d *RedisDriver) Push(payload []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return d.client.RPush(ctx, d.key, payload).Err()
}

func (d *RedisDriver) Pop(ctx context.Context) ([]byte, error) {
	res, err := d.client.BLPop(ctx, 2*time.Second, d.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	// BLPop returns [key, value].
	if len(res) < 2 {
		return nil, nil
	}
	return []byte(res[1]), nil
}
