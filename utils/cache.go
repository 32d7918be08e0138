// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"geecurly/config"

	"github.com/go-redis/redis/v8"
)

var (
	// SessionClient backs chat conversation sessions.
	SessionClient *redis.Client
	// MemoryClient backs long-lived customer preference memory.
	MemoryClient *redis.Client
)

// InitSessionStore initializes the Redis client for conversation sessions.
func InitSessionStore() {
	SessionClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := SessionClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Sessions): %v", err)
	}
}

// GetSessionClient returns the Redis client for conversation sessions.
func GetSessionClient() *redis.Client {
	if SessionClient == nil {
		InitSessionStore()
	}
	return SessionClient
}

// InitMemoryStore initializes the Redis client for customer memory.
func InitMemoryStore() {
	MemoryClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMemoryDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := MemoryClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Customer Memory): %v", err)
	}
}

// GetMemoryClient returns the Redis client for customer memory.
func GetMemoryClient() *redis.Client {
	if MemoryClient == nil {
		InitMemoryStore()
	}
	return MemoryClient
}
