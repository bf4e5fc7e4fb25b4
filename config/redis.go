package config

import (
	"fmt"

	"github.com/go-redis/redis/v8"
	"golang.org/x/net/context"
)

var ctx = context.Background()

// NewRedisClient creates the Redis client used for token revocation.
func NewRedisClient(config Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.GetRedisConnString(),
		Password: config.RedisPassword,
		DB:       config.RedisDB,
	})

	// Verify the connection
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("redis connection test failed: %v", err)
	}

	return client, nil
}
