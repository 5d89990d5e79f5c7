package redis

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

var client *goredis.Client

const cacheTTL = 30 * time.Minute

// Connect initializes the redis client. Caching is optional: when REDIS_ADDR
// is unset or the server is unreachable, every cache call becomes a no-op.
func Connect() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR not set, cache disabled")
		return
	}
	client = goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Println("Redis unreachable, cache disabled: ", err)
		client = nil
	}
}

func SetCache(ctx context.Context, key string, value interface{}) error {
	if client == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return client.Set(ctx, key, data, cacheTTL).Err()
}

// GetCache decodes the cached value into result. The second return reports
// whether the key existed.
func GetCache(ctx context.Context, key string, result interface{}) (bool, error) {
	if client == nil {
		return false, nil
	}
	data, err := client.Get(ctx, key).Bytes()
	if err == goredis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(data, result)
}

func DeleteCache(ctx context.Context, key string) error {
	if client == nil {
		return nil
	}
	return client.Del(ctx, key).Err()
}
