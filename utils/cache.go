package utils

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"frontdesk/config"
)

// StateCacheClient is the Redis client backing the conversation-state cache.
var StateCacheClient *redis.Client

// InitStateCache initializes the Redis client for conversation-state snapshots.
func InitStateCache() {
	StateCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisStateDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := StateCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (state cache): %v", err)
	}
}

// GetStateCacheClient returns the conversation-state cache client.
func GetStateCacheClient() *redis.Client {
	if StateCacheClient == nil {
		InitStateCache()
	}
	return StateCacheClient
}
